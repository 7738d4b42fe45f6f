package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func createTestTopic(t *testing.T, s *Store, name string) *Topic {
	t.Helper()
	topic, err := s.Topics().Create(context.Background(), name, "", "")
	if err != nil {
		t.Fatalf("create topic %q: %v", name, err)
	}
	return topic
}

func saveTestQuestion(t *testing.T, s *Store, topicID int, text, subtopic string) *Question {
	t.Helper()
	q, err := s.Questions().Save(context.Background(), &Question{
		TopicID:       topicID,
		QuestionText:  text,
		CorrectAnswer: "answer",
		Subtopic:      subtopic,
	})
	if err != nil {
		t.Fatalf("save question: %v", err)
	}
	return q
}

func TestTopicCreateValidation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Topics().Create(ctx, "  ", "", "")
	if !errors.Is(err, ErrEmptyTopicName) {
		t.Fatalf("expected ErrEmptyTopicName, got %v", err)
	}

	createTestTopic(t, s, "Photosynthesis")
	_, err = s.Topics().Create(ctx, "Photosynthesis", "", "")
	if !errors.Is(err, ErrTopicExists) {
		t.Fatalf("expected ErrTopicExists, got %v", err)
	}
}

func TestTopicGetAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	topic := createTestTopic(t, s, "Chemistry")

	got, err := s.Topics().Get(ctx, topic.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Chemistry" {
		t.Errorf("name = %q, want Chemistry", got.Name)
	}

	byName, err := s.Topics().GetByName(ctx, "Chemistry")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	if byName.ID != topic.ID {
		t.Errorf("id = %d, want %d", byName.ID, topic.ID)
	}

	_, err = s.Topics().Get(ctx, 9999)
	if !errors.Is(err, ErrTopicNotFound) {
		t.Fatalf("expected ErrTopicNotFound, got %v", err)
	}

	all, err := s.Topics().List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 topic, got %d", len(all))
	}
}

func TestQuestionSaveBatch(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	topic := createTestTopic(t, s, "Biology")

	saved, err := s.Questions().SaveBatch(ctx, []*Question{
		{TopicID: topic.ID, QuestionText: "q1", CorrectAnswer: "a1"},
		{TopicID: topic.ID, QuestionText: "q2", CorrectAnswer: "a2", Subtopic: "Cells"},
	})
	if err != nil {
		t.Fatalf("save batch: %v", err)
	}
	if len(saved) != 2 {
		t.Fatalf("expected 2 saved, got %d", len(saved))
	}
	for _, q := range saved {
		if q.ID == 0 {
			t.Error("expected assigned ID")
		}
	}

	qs, err := s.Questions().ForTopic(ctx, topic.ID)
	if err != nil {
		t.Fatalf("for topic: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}
}

func TestAnswerStatsZeroOneMany(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	topic := createTestTopic(t, s, "Physics")

	q1 := saveTestQuestion(t, s, topic.ID, "q1", "")
	q2 := saveTestQuestion(t, s, topic.ID, "q2", "")
	q3 := saveTestQuestion(t, s, topic.ID, "q3", "")

	base := time.Now().UTC().Truncate(time.Second)
	score3, score5 := 3, 5

	// q2: one incorrect answer.
	mustAppend(t, s, &Answer{QuestionID: q2.ID, UserAnswer: "x", IsCorrect: false, UnderstandingScore: &score3, Timestamp: base})

	// q3: wrong first, then right. Most recent wins.
	mustAppend(t, s, &Answer{QuestionID: q3.ID, UserAnswer: "x", IsCorrect: false, Timestamp: base})
	mustAppend(t, s, &Answer{QuestionID: q3.ID, UserAnswer: "y", IsCorrect: true, UnderstandingScore: &score5, Timestamp: base.Add(time.Minute)})

	stats, err := s.Answers().StatsForTopic(ctx, topic.ID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("expected stats for 3 questions, got %d", len(stats))
	}

	st1 := stats[q1.ID]
	if st1.HasAnswers || st1.LastAnswerCorrect != nil || st1.TotalAnswers != 0 {
		t.Errorf("q1 stats = %+v, want zero values", st1)
	}

	st2 := stats[q2.ID]
	if !st2.HasAnswers || st2.TotalAnswers != 1 || st2.CorrectAnswers != 0 {
		t.Errorf("q2 stats = %+v", st2)
	}
	if st2.LastAnswerCorrect == nil || *st2.LastAnswerCorrect {
		t.Error("q2 last answer should be incorrect")
	}
	if st2.LastScore == nil || *st2.LastScore != 3 {
		t.Errorf("q2 last score = %v, want 3", st2.LastScore)
	}

	st3 := stats[q3.ID]
	if st3.TotalAnswers != 2 || st3.CorrectAnswers != 1 {
		t.Errorf("q3 counts = %d/%d, want 2/1", st3.CorrectAnswers, st3.TotalAnswers)
	}
	if st3.LastAnswerCorrect == nil || !*st3.LastAnswerCorrect {
		t.Error("q3 last answer should be correct")
	}
	if st3.LastScore == nil || *st3.LastScore != 5 {
		t.Errorf("q3 last score = %v, want 5", st3.LastScore)
	}
}

func TestAnswerStatsTieBrokenByInsertionOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	topic := createTestTopic(t, s, "Math")
	q := saveTestQuestion(t, s, topic.ID, "q", "")

	ts := time.Now().UTC().Truncate(time.Second)
	mustAppend(t, s, &Answer{QuestionID: q.ID, UserAnswer: "a", IsCorrect: false, Timestamp: ts})
	mustAppend(t, s, &Answer{QuestionID: q.ID, UserAnswer: "b", IsCorrect: true, Timestamp: ts})

	stats, err := s.Answers().StatsForTopic(ctx, topic.ID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	st := stats[q.ID]
	if st.LastAnswerCorrect == nil || !*st.LastAnswerCorrect {
		t.Error("later insertion should win the timestamp tie")
	}
}

func TestAnswerHistory(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	topic := createTestTopic(t, s, "Geography")
	other := createTestTopic(t, s, "Astronomy")

	q1 := saveTestQuestion(t, s, topic.ID, "capital of France?", "")
	q2 := saveTestQuestion(t, s, other.ID, "closest star?", "")

	base := time.Now().UTC().Truncate(time.Second)
	mustAppend(t, s, &Answer{QuestionID: q1.ID, UserAnswer: "Paris", IsCorrect: true, Timestamp: base})
	mustAppend(t, s, &Answer{QuestionID: q2.ID, UserAnswer: "Sun", IsCorrect: true, Timestamp: base.Add(time.Minute)})

	all, err := s.Answers().History(ctx, 0, 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(all))
	}
	if all[0].TopicName != "Astronomy" {
		t.Errorf("newest first: got %q", all[0].TopicName)
	}

	filtered, err := s.Answers().History(ctx, topic.ID, 10)
	if err != nil {
		t.Fatalf("filtered history: %v", err)
	}
	if len(filtered) != 1 || filtered[0].QuestionText != "capital of France?" {
		t.Errorf("filtered = %+v", filtered)
	}
}

func TestSubtopicGraphRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	topic := createTestTopic(t, s, "Algebra")

	err := s.Subtopics().SaveGraph(ctx, topic.ID, []SubtopicInput{
		{Name: "Variables", Description: "Symbols for values"},
		{Name: "Equations", Prerequisites: []string{"Variables"}, Related: []string{"Inequalities"}},
		{Name: "Inequalities", Prerequisites: []string{"Variables", "Inequalities"}}, // self-prereq skipped
	})
	if err != nil {
		t.Fatalf("save graph: %v", err)
	}

	subtopics, err := s.Subtopics().ForTopic(ctx, topic.ID)
	if err != nil {
		t.Fatalf("for topic: %v", err)
	}
	if len(subtopics) != 3 {
		t.Fatalf("expected 3 subtopics, got %d", len(subtopics))
	}

	prereqs, err := s.Subtopics().Prerequisites(ctx, topic.ID, "Equations")
	if err != nil {
		t.Fatalf("prerequisites: %v", err)
	}
	if len(prereqs) != 1 || prereqs[0] != "Variables" {
		t.Errorf("prerequisites = %v, want [Variables]", prereqs)
	}

	selfPrereqs, err := s.Subtopics().Prerequisites(ctx, topic.ID, "Inequalities")
	if err != nil {
		t.Fatalf("prerequisites: %v", err)
	}
	if len(selfPrereqs) != 1 || selfPrereqs[0] != "Variables" {
		t.Errorf("self relation should be skipped, got %v", selfPrereqs)
	}

	// RELATED_TO stored once, visible from both sides.
	for _, name := range []string{"Equations", "Inequalities"} {
		related, err := s.Subtopics().Related(ctx, topic.ID, name)
		if err != nil {
			t.Fatalf("related(%s): %v", name, err)
		}
		if len(related) != 1 {
			t.Errorf("related(%s) = %v, want one entry", name, related)
		}
	}

	// Missing subtopic name yields no results and no error.
	none, err := s.Subtopics().Related(ctx, topic.ID, "Nonexistent")
	if err != nil {
		t.Fatalf("related missing: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected empty, got %v", none)
	}
}

func TestSubtopicGraphIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	topic := createTestTopic(t, s, "Music")

	graph := []SubtopicInput{
		{Name: "Rhythm"},
		{Name: "Melody", Related: []string{"Rhythm"}},
	}
	for range 2 {
		if err := s.Subtopics().SaveGraph(ctx, topic.ID, graph); err != nil {
			t.Fatalf("save graph: %v", err)
		}
	}

	subtopics, err := s.Subtopics().ForTopic(ctx, topic.ID)
	if err != nil {
		t.Fatalf("for topic: %v", err)
	}
	if len(subtopics) != 2 {
		t.Fatalf("expected 2 subtopics after resave, got %d", len(subtopics))
	}

	related, err := s.Subtopics().Related(ctx, topic.ID, "Rhythm")
	if err != nil {
		t.Fatalf("related: %v", err)
	}
	if len(related) != 1 {
		t.Errorf("expected 1 relation after resave, got %v", related)
	}
}

func TestLLMRequestEventAppend(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.Events().AppendLLMRequest(ctx, LLMRequestEventData{
		RequestID:    "9f6a1f48-1f62-4a0e-9f6b-1c2d3e4f5a6b",
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "grading",
		InputTokens:  10,
		OutputTokens: 5,
		LatencyMs:    12,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append event: %v", err)
	}
}

func mustAppend(t *testing.T, s *Store, a *Answer) *Answer {
	t.Helper()
	saved, err := s.Answers().Append(context.Background(), a)
	if err != nil {
		t.Fatalf("append answer: %v", err)
	}
	if saved.ID == 0 {
		t.Fatal("expected assigned answer ID")
	}
	return saved
}

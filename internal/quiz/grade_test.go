package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/inkling-app/inkling/internal/llm"
	"github.com/inkling-app/inkling/internal/store"
)

func newGradeHarness(t *testing.T, mock *llm.MockProvider) (*Service, *store.Store, *store.Question) {
	t.Helper()

	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	ctx := context.Background()
	topic, err := s.Topics().Create(ctx, "Photosynthesis", "", "")
	if err != nil {
		t.Fatalf("create topic: %v", err)
	}
	q, err := s.Questions().Save(ctx, &store.Question{
		TopicID:       topic.ID,
		QuestionText:  "What gas do plants absorb?",
		CorrectAnswer: "Carbon dioxide",
	})
	if err != nil {
		t.Fatalf("save question: %v", err)
	}

	svc := NewService(s.Topics(), s.Questions(), s.Answers(), s.Subtopics(), mock, nil, Options{
		Grading: Params{Temperature: 0.3, MaxTokens: 1000},
	})
	return svc, s, q
}

func gradingJSON(isCorrect bool, score any, feedback string) json.RawMessage {
	payload := map[string]any{
		"is_correct": isCorrect,
		"feedback":   feedback,
	}
	if score != nil {
		payload["understanding_score"] = score
	}
	raw, _ := json.Marshal(payload)
	return raw
}

func TestGradePersistsAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: gradingJSON(true, 5, "Exactly right."),
	})
	svc, s, q := newGradeHarness(t, mock)

	a, err := svc.Grade(context.Background(), q, "CO2")
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if !a.IsCorrect || a.ID == 0 {
		t.Errorf("answer = %+v", a)
	}
	if a.UnderstandingScore == nil || *a.UnderstandingScore != 5 {
		t.Errorf("score = %v, want 5", a.UnderstandingScore)
	}
	if a.Feedback != "Exactly right." {
		t.Errorf("feedback = %q", a.Feedback)
	}
	if a.Timestamp.IsZero() {
		t.Error("expected timestamp to be stamped")
	}

	stats, err := s.Answers().StatsForTopic(context.Background(), q.TopicID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats[q.ID].TotalAnswers != 1 {
		t.Errorf("persisted answers = %d, want 1", stats[q.ID].TotalAnswers)
	}
}

func TestGradeClampsScore(t *testing.T) {
	cases := []struct {
		name string
		in   int
		want int
	}{
		{"below range", 0, 1},
		{"above range", 7, 5},
		{"in range", 3, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{
				Content: gradingJSON(true, tc.in, "ok"),
			})
			svc, _, q := newGradeHarness(t, mock)

			a, err := svc.Grade(context.Background(), q, "answer")
			if err != nil {
				t.Fatalf("grade: %v", err)
			}
			if a.UnderstandingScore == nil || *a.UnderstandingScore != tc.want {
				t.Errorf("score = %v, want %d", a.UnderstandingScore, tc.want)
			}
		})
	}
}

func TestGradeMissingScoreStaysMissing(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: gradingJSON(false, nil, "Not quite."),
	})
	svc, _, q := newGradeHarness(t, mock)

	a, err := svc.Grade(context.Background(), q, "oxygen")
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if a.UnderstandingScore != nil {
		t.Errorf("score = %v, want nil", *a.UnderstandingScore)
	}
}

func TestGradeAppendsOnRegrade(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: gradingJSON(false, 2, "wrong")},
		llm.MockResponse{Content: gradingJSON(true, 4, "right")},
	)
	svc, s, q := newGradeHarness(t, mock)
	ctx := context.Background()

	if _, err := svc.Grade(ctx, q, "oxygen"); err != nil {
		t.Fatalf("first grade: %v", err)
	}
	if _, err := svc.Grade(ctx, q, "carbon dioxide"); err != nil {
		t.Fatalf("second grade: %v", err)
	}

	stats, err := s.Answers().StatsForTopic(ctx, q.TopicID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	st := stats[q.ID]
	if st.TotalAnswers != 2 || st.CorrectAnswers != 1 {
		t.Errorf("counts = %d/%d, want 2 total, 1 correct", st.CorrectAnswers, st.TotalAnswers)
	}
	if st.LastAnswerCorrect == nil || !*st.LastAnswerCorrect {
		t.Error("latest answer should be the correct one")
	}
}

func TestGradeParsesFencedResponse(t *testing.T) {
	fenced := "```json\n" + string(gradingJSON(true, 4, "good")) + "\n```"
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(fenced),
	})
	svc, _, q := newGradeHarness(t, mock)

	a, err := svc.Grade(context.Background(), q, "CO2")
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if !a.IsCorrect {
		t.Error("expected correct answer")
	}
}

func TestGradeUnparsableResponsePersistsNothing(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("The answer is correct, I would say."),
	})
	svc, s, q := newGradeHarness(t, mock)

	_, err := svc.Grade(context.Background(), q, "CO2")
	if !errors.Is(err, ErrGradingFailed) {
		t.Fatalf("expected ErrGradingFailed, got %v", err)
	}

	stats, err := s.Answers().StatsForTopic(context.Background(), q.TopicID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats[q.ID].TotalAnswers != 0 {
		t.Errorf("persisted answers = %d, want 0", stats[q.ID].TotalAnswers)
	}
}

func TestGradeProviderErrorWrapped(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc, _, q := newGradeHarness(t, mock)

	_, err := svc.Grade(context.Background(), q, "CO2")
	if !errors.Is(err, ErrGradingFailed) {
		t.Fatalf("expected ErrGradingFailed, got %v", err)
	}
}

package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/inkling-app/inkling/internal/knowledge"
	"github.com/inkling-app/inkling/internal/llm"
	"github.com/inkling-app/inkling/internal/store"
)

func newServiceHarness(t *testing.T, mock *llm.MockProvider) (*Service, *store.Store) {
	t.Helper()

	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	svc := NewService(s.Topics(), s.Questions(), s.Answers(), s.Subtopics(), mock, nil, Options{
		Generation:          Params{Temperature: 0.8, MaxTokens: 4000},
		Grading:             Params{Temperature: 0.3, MaxTokens: 1000},
		QuestionsPerSession: 5,
		GenerateCount:       10,
	})
	return svc, s
}

func TestStartQuizNoQuestions(t *testing.T) {
	svc, s := newServiceHarness(t, llm.NewMockProvider())
	ctx := context.Background()

	topic, err := s.Topics().Create(ctx, "Empty Topic", "", "")
	if err != nil {
		t.Fatalf("create topic: %v", err)
	}

	_, err = svc.StartQuiz(ctx, topic.ID, 5)
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestStartQuizPrioritizesWeakQuestions(t *testing.T) {
	svc, s := newServiceHarness(t, llm.NewMockProvider())
	ctx := context.Background()

	topic, err := s.Topics().Create(ctx, "Photosynthesis", "", "")
	if err != nil {
		t.Fatalf("create topic: %v", err)
	}

	var qs []*store.Question
	for _, text := range []string{"q1", "q2", "q3"} {
		q, err := s.Questions().Save(ctx, &store.Question{
			TopicID: topic.ID, QuestionText: text, CorrectAnswer: "a",
		})
		if err != nil {
			t.Fatalf("save question: %v", err)
		}
		qs = append(qs, q)
	}

	// q1 unanswered, q2 last wrong, q3 last right.
	now := time.Now().UTC().Truncate(time.Second)
	for _, a := range []*store.Answer{
		{QuestionID: qs[1].ID, UserAnswer: "x", IsCorrect: false, Timestamp: now},
		{QuestionID: qs[2].ID, UserAnswer: "y", IsCorrect: true, Timestamp: now},
	} {
		if _, err := s.Answers().Append(ctx, a); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}

	for range 10 {
		selected, err := svc.StartQuiz(ctx, topic.ID, 2)
		if err != nil {
			t.Fatalf("start quiz: %v", err)
		}
		if len(selected) != 2 {
			t.Fatalf("expected 2 questions, got %d", len(selected))
		}
		ids := map[int]bool{selected[0].ID: true, selected[1].ID: true}
		if !ids[qs[0].ID] || !ids[qs[1].ID] {
			t.Fatalf("expected unanswered and last-wrong questions, got %v", ids)
		}
	}
}

func TestStartQuizDefaultSessionLength(t *testing.T) {
	svc, s := newServiceHarness(t, llm.NewMockProvider())
	ctx := context.Background()

	topic, err := s.Topics().Create(ctx, "History", "", "")
	if err != nil {
		t.Fatalf("create topic: %v", err)
	}
	for i := range 8 {
		_, err := s.Questions().Save(ctx, &store.Question{
			TopicID: topic.ID, QuestionText: "q", CorrectAnswer: "a", Subtopic: string(rune('a' + i)),
		})
		if err != nil {
			t.Fatalf("save question: %v", err)
		}
	}

	selected, err := svc.StartQuiz(ctx, topic.ID, 0)
	if err != nil {
		t.Fatalf("start quiz: %v", err)
	}
	if len(selected) != 5 {
		t.Fatalf("expected configured default of 5 questions, got %d", len(selected))
	}
}

func questionBatchJSON(t *testing.T, texts ...string) json.RawMessage {
	t.Helper()
	type item struct {
		QuestionText  string `json:"question_text"`
		CorrectAnswer string `json:"correct_answer"`
		Subtopic      string `json:"subtopic"`
		Difficulty    string `json:"difficulty"`
	}
	batch := struct {
		Questions []item `json:"questions"`
	}{}
	for _, text := range texts {
		batch.Questions = append(batch.Questions, item{
			QuestionText: text, CorrectAnswer: "a", Subtopic: "General", Difficulty: "medium",
		})
	}
	raw, err := json.Marshal(batch)
	if err != nil {
		t.Fatalf("marshal batch: %v", err)
	}
	return raw
}

func TestGenerateInitialPersistsBatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: questionBatchJSON(t, "q1", "q2", "q3"),
	})
	svc, s := newServiceHarness(t, mock)
	ctx := context.Background()

	topic, err := s.Topics().Create(ctx, "Cell Biology", "", "")
	if err != nil {
		t.Fatalf("create topic: %v", err)
	}
	g := &knowledge.Graph{Subtopics: []store.SubtopicInput{
		{Name: "Membranes", Description: "Lipid bilayers"},
	}}

	saved, err := svc.GenerateInitial(ctx, topic, g, 3)
	if err != nil {
		t.Fatalf("generate initial: %v", err)
	}
	if len(saved) != 3 {
		t.Fatalf("expected 3 saved questions, got %d", len(saved))
	}
	for _, q := range saved {
		if q.TopicID != topic.ID {
			t.Errorf("question %d has topic %d, want %d", q.ID, q.TopicID, topic.ID)
		}
	}

	persisted, err := s.Questions().ForTopic(ctx, topic.ID)
	if err != nil {
		t.Fatalf("for topic: %v", err)
	}
	if len(persisted) != 3 {
		t.Fatalf("persisted = %d, want 3", len(persisted))
	}
}

func TestGenerateAdditionalBiasesTowardGaps(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: questionBatchJSON(t, "new question"),
	})
	svc, s := newServiceHarness(t, mock)
	ctx := context.Background()

	topic, err := s.Topics().Create(ctx, "Optics", "", "")
	if err != nil {
		t.Fatalf("create topic: %v", err)
	}
	err = s.Subtopics().SaveGraph(ctx, topic.ID, []store.SubtopicInput{
		{Name: "Refraction"},
		{Name: "Diffraction"},
	})
	if err != nil {
		t.Fatalf("save graph: %v", err)
	}
	q, err := s.Questions().Save(ctx, &store.Question{
		TopicID: topic.ID, QuestionText: "What is Snell's law?",
		CorrectAnswer: "n1 sin a = n2 sin b", Subtopic: "Refraction",
	})
	if err != nil {
		t.Fatalf("save question: %v", err)
	}
	if _, err := s.Answers().Append(ctx, &store.Answer{
		QuestionID: q.ID, UserAnswer: "no idea", IsCorrect: false, Timestamp: time.Now(),
	}); err != nil {
		t.Fatalf("append answer: %v", err)
	}

	saved, err := svc.GenerateAdditional(ctx, topic.ID, 1)
	if err != nil {
		t.Fatalf("generate additional: %v", err)
	}
	if len(saved) != 1 || saved[0].QuestionText != "new question" {
		t.Fatalf("saved = %+v", saved)
	}

	// The synthesis prompt carries existing questions and both gap kinds.
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{
		"What is Snell's law?",
		"Refraction",
		"Diffraction: no questions yet for this subtopic",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("synthesis prompt missing %q", want)
		}
	}
}

func TestGenerateAdditionalParseFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("I could not think of any questions."),
	})
	svc, s := newServiceHarness(t, mock)
	ctx := context.Background()

	topic, err := s.Topics().Create(ctx, "Thermodynamics", "", "")
	if err != nil {
		t.Fatalf("create topic: %v", err)
	}

	_, err = svc.GenerateAdditional(ctx, topic.ID, 3)
	if !errors.Is(err, ErrGenerationParse) {
		t.Fatalf("expected ErrGenerationParse, got %v", err)
	}

	persisted, err := s.Questions().ForTopic(ctx, topic.ID)
	if err != nil {
		t.Fatalf("for topic: %v", err)
	}
	if len(persisted) != 0 {
		t.Fatalf("expected nothing persisted, got %d", len(persisted))
	}
}

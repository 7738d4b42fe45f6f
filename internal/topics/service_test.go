package topics

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/inkling-app/inkling/internal/knowledge"
	"github.com/inkling-app/inkling/internal/llm"
	"github.com/inkling-app/inkling/internal/quiz"
	"github.com/inkling-app/inkling/internal/store"
)

const graphJSON = `{
	"subtopics": [
		{"name": "Light Reactions", "description": "Light to chemical energy"},
		{"name": "Calvin Cycle", "description": "Carbon fixation", "prerequisites": ["Light Reactions"]}
	]
}`

const questionsJSON = `{
	"questions": [
		{"question_text": "What absorbs light?", "correct_answer": "Chlorophyll", "subtopic": "Light Reactions", "difficulty": "easy"},
		{"question_text": "What fixes carbon?", "correct_answer": "RuBisCO", "subtopic": "Calvin Cycle", "difficulty": "medium"}
	]
}`

func newCreateHarness(t *testing.T, mock *llm.MockProvider) (*Service, *store.Store) {
	t.Helper()

	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	quizSvc := quiz.NewService(s.Topics(), s.Questions(), s.Answers(), s.Subtopics(), mock, nil, quiz.Options{
		Generation:    quiz.Params{Temperature: 0.8, MaxTokens: 4000},
		GenerateCount: 10,
	})
	gen := knowledge.NewGenerator(mock, knowledge.Params{Temperature: 0.7, MaxTokens: 2000})
	return NewService(s.Topics(), s.Subtopics(), gen, quizSvc, nil), s
}

func TestCreateEndToEnd(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(graphJSON)},
		llm.MockResponse{Content: json.RawMessage(questionsJSON)},
	)
	svc, s := newCreateHarness(t, mock)
	ctx := context.Background()

	res, err := svc.Create(ctx, "Photosynthesis", "How plants make food", 2)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if res.Topic.Name != "Photosynthesis" {
		t.Errorf("topic = %+v", res.Topic)
	}
	if res.Topic.KnowledgeGraphID != "Photosynthesis" {
		t.Errorf("graph ID = %q, want topic name", res.Topic.KnowledgeGraphID)
	}
	if len(res.Subtopics) != 2 || len(res.Questions) != 2 {
		t.Fatalf("got %d subtopics, %d questions", len(res.Subtopics), len(res.Questions))
	}

	// Graph and questions are persisted, not just returned.
	subtopics, err := s.Subtopics().ForTopic(ctx, res.Topic.ID)
	if err != nil {
		t.Fatalf("subtopics: %v", err)
	}
	if len(subtopics) != 2 {
		t.Errorf("persisted subtopics = %d", len(subtopics))
	}
	prereqs, err := s.Subtopics().Prerequisites(ctx, res.Topic.ID, "Calvin Cycle")
	if err != nil {
		t.Fatalf("prerequisites: %v", err)
	}
	if len(prereqs) != 1 || prereqs[0] != "Light Reactions" {
		t.Errorf("prerequisites = %v", prereqs)
	}
	questions, err := s.Questions().ForTopic(ctx, res.Topic.ID)
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if len(questions) != 2 {
		t.Errorf("persisted questions = %d", len(questions))
	}

	// One call for the graph, one for the question batch.
	if mock.CallCount() != 2 {
		t.Errorf("LLM calls = %d, want 2", mock.CallCount())
	}
}

func TestCreateValidatesBeforeGenerating(t *testing.T) {
	mock := llm.NewMockProvider()
	svc, _ := newCreateHarness(t, mock)

	_, err := svc.Create(context.Background(), "   ", "", 2)
	if !errors.Is(err, store.ErrEmptyTopicName) {
		t.Fatalf("expected ErrEmptyTopicName, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("no LLM call should happen for an invalid name, got %d", mock.CallCount())
	}
}

func TestCreateDuplicateName(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(graphJSON)},
		llm.MockResponse{Content: json.RawMessage(questionsJSON)},
	)
	svc, _ := newCreateHarness(t, mock)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "Photosynthesis", "", 2); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(ctx, "Photosynthesis", "", 2)
	if !errors.Is(err, store.ErrTopicExists) {
		t.Fatalf("expected ErrTopicExists, got %v", err)
	}
}

func TestCreateGraphGenerationFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	svc, s := newCreateHarness(t, mock)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Photosynthesis", "", 2)
	if err == nil {
		t.Fatal("expected error")
	}

	// The topic row exists but has no subtopics or questions.
	topic, err := s.Topics().GetByName(ctx, "Photosynthesis")
	if err != nil {
		t.Fatalf("topic should be persisted: %v", err)
	}
	subtopics, err := s.Subtopics().ForTopic(ctx, topic.ID)
	if err != nil {
		t.Fatalf("subtopics: %v", err)
	}
	if len(subtopics) != 0 {
		t.Errorf("expected no subtopics after graph failure, got %d", len(subtopics))
	}
}

package quiz

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/inkling-app/inkling/internal/store"
)

func TestParseQuestionsValidBatch(t *testing.T) {
	raw := json.RawMessage(`{
		"questions": [
			{"question_text": "q1", "correct_answer": "a1", "subtopic": "s1", "difficulty": "easy"},
			{"question_text": "q2", "correct_answer": "a2"}
		]
	}`)

	qs, err := parseQuestions(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}
	if qs[0].Subtopic != "s1" || qs[0].Difficulty != "easy" {
		t.Errorf("first question = %+v", qs[0])
	}
}

func TestParseQuestionsFencedPayload(t *testing.T) {
	raw := json.RawMessage("```json\n{\"questions\":[{\"question_text\":\"q\",\"correct_answer\":\"a\"}]}\n```")

	qs, err := parseQuestions(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
}

func TestParseQuestionsErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "here are your questions"},
		{"empty batch", `{"questions": []}`},
		{"blank question text", `{"questions": [{"question_text": " ", "correct_answer": "a"}]}`},
		{"missing answer", `{"questions": [{"question_text": "q", "correct_answer": ""}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseQuestions(json.RawMessage(tc.raw))
			if !errors.Is(err, ErrGenerationParse) {
				t.Fatalf("expected ErrGenerationParse, got %v", err)
			}
		})
	}
}

func TestBuildSynthesisPromptIncludesContext(t *testing.T) {
	existing := []*store.Question{
		{QuestionText: "What is chlorophyll?", Subtopic: "Pigments", Difficulty: "easy"},
	}
	gaps := []Gap{
		{Subtopic: "Calvin Cycle", Reason: "no questions yet for this subtopic"},
	}

	prompt := buildSynthesisPrompt("Photosynthesis", "- Pigments: ...", existing, gaps, 5)

	for _, want := range []string{
		"Generate 5 new quiz questions",
		`"Photosynthesis"`,
		"What is chlorophyll?",
		"[subtopic: Pigments]",
		"[difficulty: easy]",
		"Calvin Cycle: no questions yet for this subtopic",
		"do NOT duplicate",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildSynthesisPromptEmptyContext(t *testing.T) {
	prompt := buildSynthesisPrompt("Photosynthesis", "", nil, nil, 3)

	if !strings.Contains(prompt, "(none)") {
		t.Error("expected placeholder for empty existing questions")
	}
	if !strings.Contains(prompt, "(none identified; cover the topic broadly)") {
		t.Error("expected placeholder for empty gaps")
	}
}

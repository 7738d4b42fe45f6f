package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/inkling-app/inkling/internal/llm"
	"github.com/inkling-app/inkling/internal/store"
)

const gradingSystemPrompt = "You are an educational quiz grader. Always return valid JSON only."

const gradingPromptTemplate = `You are grading a quiz answer. Evaluate the user's answer for correctness.

Question: %s
Correct Answer: %s
User's Answer: %s

Evaluate whether the user's answer is correct. Consider:
- Conceptual understanding (not just exact word matching)
- Partial correctness
- Common misconceptions

Return a JSON object with:
{
    "is_correct": true/false,
    "understanding_score": 1-5,
    "feedback": "Brief explanation of why the answer is correct or incorrect, and what the correct answer should be"
}

The understanding_score rates depth of comprehension: 1 = none, 2 = some,
3 = partial, 4 = correct with gaps, 5 = perfect.

Only return the JSON object, no additional text.`

var gradingSchema = &llm.Schema{
	Name:        "grading-result",
	Description: "Structured judgment of a quiz answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_correct": map[string]any{"type": "boolean"},
			"understanding_score": map[string]any{
				"type": "integer",
			},
			"feedback": map[string]any{"type": "string"},
		},
		"required": []any{"is_correct", "feedback"},
	},
}

// gradingResult is the decoded grader judgment before validation.
type gradingResult struct {
	IsCorrect          bool   `json:"is_correct"`
	UnderstandingScore *int   `json:"understanding_score"`
	Feedback           string `json:"feedback"`
}

// Grade asks the grader to judge a free-text answer, clamps the
// understanding score into [1,5], stamps the current time and appends
// the answer to the store. Grading the same question again appends a
// new record; prior answers are never touched. A response that cannot
// be parsed fails with ErrGradingFailed and persists nothing.
func (s *Service) Grade(ctx context.Context, question *store.Question, userAnswer string) (*store.Answer, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeGrading)

	prompt := fmt.Sprintf(gradingPromptTemplate,
		question.QuestionText, question.CorrectAnswer, userAnswer)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: gradingSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		Schema:      gradingSchema,
		MaxTokens:   s.opts.Grading.MaxTokens,
		Temperature: s.opts.Grading.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGradingFailed, err)
	}

	var result gradingResult
	if err := json.Unmarshal(llm.StripCodeFences(resp.Content), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGradingFailed, err)
	}

	answer := &store.Answer{
		QuestionID:         question.ID,
		UserAnswer:         userAnswer,
		IsCorrect:          result.IsCorrect,
		UnderstandingScore: clampScore(result.UnderstandingScore),
		Feedback:           result.Feedback,
		Timestamp:          time.Now(),
	}

	saved, err := s.answers.Append(ctx, answer)
	if err != nil {
		return nil, fmt.Errorf("persist answer: %w", err)
	}

	// The graph view is best-effort and must never fail grading.
	if err := s.mirror.SyncAnswer(ctx, question.ID, saved); err != nil {
		fmt.Fprintf(os.Stderr, "warning: graph mirror update failed: %v\n", err)
	}

	return saved, nil
}

// clampScore truncates an out-of-range understanding score to the
// nearest bound. A missing score stays missing.
func clampScore(score *int) *int {
	if score == nil {
		return nil
	}
	v := *score
	if v < 1 {
		v = 1
	}
	if v > 5 {
		v = 5
	}
	return &v
}

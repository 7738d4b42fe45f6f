package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/inkling-app/inkling/internal/knowledge"
	"github.com/inkling-app/inkling/internal/llm"
	"github.com/inkling-app/inkling/internal/store"
)

const questionSystemPrompt = "You are a quiz question generator. Always return valid JSON only."

const questionPromptTemplate = `Generate %d quiz questions for the topic: %q.

Knowledge Graph:
%s

For each question, provide:
- question_text: The question
- correct_answer: The correct answer
- subtopic: Which subtopic this question relates to
- difficulty: easy, medium, or hard

Return a JSON object with a "questions" array:
{
    "questions": [
        {
            "question_text": "Question here?",
            "correct_answer": "Correct answer",
            "subtopic": "Subtopic name",
            "difficulty": "medium"
        }
    ]
}

Only return the JSON, no additional text.`

const additionalQuestionsPromptTemplate = `Generate %d new quiz questions for the topic: %q.

Knowledge Graph:
%s

Existing questions (do NOT duplicate any of these):
%s

Identified learning gaps (bias new questions toward these subtopics):
%s

For each question, provide:
- question_text: The question
- correct_answer: The correct answer
- subtopic: Which subtopic this question relates to
- difficulty: easy, medium, or hard

Return a JSON object with a "questions" array:
{
    "questions": [
        {
            "question_text": "Question here?",
            "correct_answer": "Correct answer",
            "subtopic": "Subtopic name",
            "difficulty": "medium"
        }
    ]
}

Only return the JSON, no additional text.`

var questionSchema = &llm.Schema{
	Name:        "question-batch",
	Description: "A batch of generated quiz questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_text":  map[string]any{"type": "string"},
						"correct_answer": map[string]any{"type": "string"},
						"subtopic":       map[string]any{"type": "string"},
						"difficulty":     map[string]any{"type": "string"},
					},
					"required": []any{"question_text", "correct_answer"},
				},
			},
		},
		"required": []any{"questions"},
	},
}

// buildQuestionPrompt is the prompt for a topic's initial question batch.
func buildQuestionPrompt(topicName string, graph *knowledge.Graph, count int) string {
	return fmt.Sprintf(questionPromptTemplate, count, topicName, graph.Render())
}

// buildSynthesisPrompt combines gap analysis, existing-question summaries
// and the knowledge graph into a prompt for targeted question generation.
// Existing questions are serialized compactly (text, subtopic, difficulty)
// to keep the dedup context small.
func buildSynthesisPrompt(topicName string, graphText string, existing []*store.Question, gaps []Gap, count int) string {
	var qb strings.Builder
	if len(existing) == 0 {
		qb.WriteString("(none)\n")
	}
	for _, q := range existing {
		qb.WriteString("- ")
		qb.WriteString(q.QuestionText)
		if q.Subtopic != "" {
			qb.WriteString(" [subtopic: ")
			qb.WriteString(q.Subtopic)
			qb.WriteString("]")
		}
		if q.Difficulty != "" {
			qb.WriteString(" [difficulty: ")
			qb.WriteString(q.Difficulty)
			qb.WriteString("]")
		}
		qb.WriteString("\n")
	}

	var gb strings.Builder
	if len(gaps) == 0 {
		gb.WriteString("(none identified; cover the topic broadly)\n")
	}
	for _, g := range gaps {
		gb.WriteString("- ")
		gb.WriteString(g.Subtopic)
		gb.WriteString(": ")
		gb.WriteString(g.Reason)
		gb.WriteString("\n")
	}

	return fmt.Sprintf(additionalQuestionsPromptTemplate,
		count, topicName, graphText, qb.String(), gb.String())
}

// parseQuestions decodes a generated question batch. Entries without
// question text or a correct answer are invalid; an unparsable payload
// or an empty batch is an ErrGenerationParse.
func parseQuestions(raw json.RawMessage) ([]*store.Question, error) {
	var payload struct {
		Questions []struct {
			QuestionText  string `json:"question_text"`
			CorrectAnswer string `json:"correct_answer"`
			Subtopic      string `json:"subtopic"`
			Difficulty    string `json:"difficulty"`
		} `json:"questions"`
	}
	if err := json.Unmarshal(llm.StripCodeFences(raw), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationParse, err)
	}

	var questions []*store.Question
	for _, q := range payload.Questions {
		if strings.TrimSpace(q.QuestionText) == "" || strings.TrimSpace(q.CorrectAnswer) == "" {
			return nil, fmt.Errorf("%w: question with empty text or answer", ErrGenerationParse)
		}
		questions = append(questions, &store.Question{
			QuestionText:  q.QuestionText,
			CorrectAnswer: q.CorrectAnswer,
			Subtopic:      q.Subtopic,
			Difficulty:    q.Difficulty,
		})
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: empty question batch", ErrGenerationParse)
	}
	return questions, nil
}

// generateQuestions sends a question generation prompt and parses the batch.
func generateQuestions(ctx context.Context, provider llm.Provider, prompt string, params Params) ([]*store.Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionGen)

	resp, err := provider.Generate(ctx, llm.Request{
		System: questionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		Schema:      questionSchema,
		MaxTokens:   params.MaxTokens,
		Temperature: params.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	return parseQuestions(resp.Content)
}

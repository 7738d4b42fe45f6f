// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/inkling-app/inkling/ent/answer"
	"github.com/inkling-app/inkling/ent/llmrequestevent"
	"github.com/inkling-app/inkling/ent/question"
	"github.com/inkling-app/inkling/ent/schema"
	"github.com/inkling-app/inkling/ent/subtopic"
	"github.com/inkling-app/inkling/ent/topic"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answerFields := schema.Answer{}.Fields()
	_ = answerFields
	// answerDescUserAnswer is the schema descriptor for user_answer field.
	answerDescUserAnswer := answerFields[1].Descriptor()
	// answer.UserAnswerValidator is a validator for the "user_answer" field. It is called by the builders before save.
	answer.UserAnswerValidator = answerDescUserAnswer.Validators[0].(func(string) error)
	// answerDescUnderstandingScore is the schema descriptor for understanding_score field.
	answerDescUnderstandingScore := answerFields[3].Descriptor()
	// answer.UnderstandingScoreValidator is a validator for the "understanding_score" field. It is called by the builders before save.
	answer.UnderstandingScoreValidator = func() func(int) error {
		validators := answerDescUnderstandingScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(understanding_score int) error {
			for _, fn := range fns {
				if err := fn(understanding_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// answerDescFeedback is the schema descriptor for feedback field.
	answerDescFeedback := answerFields[4].Descriptor()
	// answer.DefaultFeedback holds the default value on creation for the feedback field.
	answer.DefaultFeedback = answerDescFeedback.Default.(string)
	// answerDescTimestamp is the schema descriptor for timestamp field.
	answerDescTimestamp := answerFields[5].Descriptor()
	// answer.DefaultTimestamp holds the default value on creation for the timestamp field.
	answer.DefaultTimestamp = answerDescTimestamp.Default.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescQuestionText is the schema descriptor for question_text field.
	questionDescQuestionText := questionFields[1].Descriptor()
	// question.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	question.QuestionTextValidator = questionDescQuestionText.Validators[0].(func(string) error)
	// questionDescCorrectAnswer is the schema descriptor for correct_answer field.
	questionDescCorrectAnswer := questionFields[2].Descriptor()
	// question.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	question.CorrectAnswerValidator = questionDescCorrectAnswer.Validators[0].(func(string) error)
	// questionDescSubtopic is the schema descriptor for subtopic field.
	questionDescSubtopic := questionFields[3].Descriptor()
	// question.DefaultSubtopic holds the default value on creation for the subtopic field.
	question.DefaultSubtopic = questionDescSubtopic.Default.(string)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[4].Descriptor()
	// question.DefaultDifficulty holds the default value on creation for the difficulty field.
	question.DefaultDifficulty = questionDescDifficulty.Default.(string)
	subtopicFields := schema.Subtopic{}.Fields()
	_ = subtopicFields
	// subtopicDescName is the schema descriptor for name field.
	subtopicDescName := subtopicFields[1].Descriptor()
	// subtopic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	subtopic.NameValidator = subtopicDescName.Validators[0].(func(string) error)
	// subtopicDescDescription is the schema descriptor for description field.
	subtopicDescDescription := subtopicFields[2].Descriptor()
	// subtopic.DefaultDescription holds the default value on creation for the description field.
	subtopic.DefaultDescription = subtopicDescDescription.Default.(string)
	// subtopicDescCreatedAt is the schema descriptor for created_at field.
	subtopicDescCreatedAt := subtopicFields[3].Descriptor()
	// subtopic.DefaultCreatedAt holds the default value on creation for the created_at field.
	subtopic.DefaultCreatedAt = subtopicDescCreatedAt.Default.(func() time.Time)
	topicFields := schema.Topic{}.Fields()
	_ = topicFields
	// topicDescName is the schema descriptor for name field.
	topicDescName := topicFields[0].Descriptor()
	// topic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	topic.NameValidator = topicDescName.Validators[0].(func(string) error)
	// topicDescDescription is the schema descriptor for description field.
	topicDescDescription := topicFields[1].Descriptor()
	// topic.DefaultDescription holds the default value on creation for the description field.
	topic.DefaultDescription = topicDescDescription.Default.(string)
	// topicDescCreatedAt is the schema descriptor for created_at field.
	topicDescCreatedAt := topicFields[2].Descriptor()
	// topic.DefaultCreatedAt holds the default value on creation for the created_at field.
	topic.DefaultCreatedAt = topicDescCreatedAt.Default.(func() time.Time)
	// topicDescKnowledgeGraphID is the schema descriptor for knowledge_graph_id field.
	topicDescKnowledgeGraphID := topicFields[3].Descriptor()
	// topic.DefaultKnowledgeGraphID holds the default value on creation for the knowledge_graph_id field.
	topic.DefaultKnowledgeGraphID = topicDescKnowledgeGraphID.Default.(string)
}

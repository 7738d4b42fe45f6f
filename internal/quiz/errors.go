package quiz

import "errors"

var (
	// ErrNoQuestions is returned when a quiz is requested for a topic
	// with zero stored questions.
	ErrNoQuestions = errors.New("no questions available for this topic")

	// ErrGradingFailed is returned when the grader's response cannot be
	// parsed. Nothing is persisted in that case.
	ErrGradingFailed = errors.New("grading failed")

	// ErrGenerationParse is returned when a question generation response
	// cannot be parsed as structured question data.
	ErrGenerationParse = errors.New("could not parse generated questions")
)

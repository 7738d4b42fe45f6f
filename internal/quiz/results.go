package quiz

import "github.com/inkling-app/inkling/internal/store"

// Results aggregates one quiz session's graded answers.
type Results struct {
	TotalQuestions       int
	CorrectAnswers       int
	IncorrectAnswers     int
	ScorePercent         float64
	AverageUnderstanding float64
}

// Aggregate computes session results as a pure function over the graded
// answers. An empty list yields all zeros. Answers without an
// understanding score count as zero toward the average, matching the
// session summary semantics rather than the gap analyzer's.
func Aggregate(answers []*store.Answer) Results {
	r := Results{TotalQuestions: len(answers)}
	if len(answers) == 0 {
		return r
	}

	scoreSum := 0
	for _, a := range answers {
		if a.IsCorrect {
			r.CorrectAnswers++
		}
		if a.UnderstandingScore != nil {
			scoreSum += *a.UnderstandingScore
		}
	}

	r.IncorrectAnswers = r.TotalQuestions - r.CorrectAnswers
	r.ScorePercent = float64(r.CorrectAnswers) / float64(r.TotalQuestions) * 100
	r.AverageUnderstanding = float64(scoreSum) / float64(r.TotalQuestions)
	return r
}

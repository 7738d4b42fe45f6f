package quiz

import (
	"testing"

	"github.com/inkling-app/inkling/internal/store"
)

func intPtr(v int) *int { return &v }

func TestAggregateEmpty(t *testing.T) {
	r := Aggregate(nil)
	if r.TotalQuestions != 0 || r.ScorePercent != 0.0 || r.AverageUnderstanding != 0.0 {
		t.Errorf("empty aggregate = %+v, want zeros", r)
	}
}

func TestAggregateThreeOfFour(t *testing.T) {
	answers := []*store.Answer{
		{IsCorrect: true, UnderstandingScore: intPtr(5)},
		{IsCorrect: true, UnderstandingScore: intPtr(4)},
		{IsCorrect: true, UnderstandingScore: intPtr(4)},
		{IsCorrect: false, UnderstandingScore: intPtr(2)},
	}

	r := Aggregate(answers)
	if r.TotalQuestions != 4 || r.CorrectAnswers != 3 || r.IncorrectAnswers != 1 {
		t.Errorf("counts = %+v", r)
	}
	if r.ScorePercent != 75.0 {
		t.Errorf("score = %.1f, want 75.0", r.ScorePercent)
	}
	if r.AverageUnderstanding != 3.75 {
		t.Errorf("average understanding = %v, want 3.75", r.AverageUnderstanding)
	}
}

func TestAggregateMissingScoresCountAsZero(t *testing.T) {
	answers := []*store.Answer{
		{IsCorrect: true, UnderstandingScore: intPtr(4)},
		{IsCorrect: false},
	}

	r := Aggregate(answers)
	if r.AverageUnderstanding != 2.0 {
		t.Errorf("average understanding = %v, want 2.0", r.AverageUnderstanding)
	}
	if r.ScorePercent != 50.0 {
		t.Errorf("score = %.1f, want 50.0", r.ScorePercent)
	}
}

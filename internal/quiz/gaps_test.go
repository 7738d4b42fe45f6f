package quiz

import (
	"strings"
	"testing"

	"github.com/inkling-app/inkling/internal/store"
)

func TestAnalyzeGapsLowUnderstanding(t *testing.T) {
	qs := []*store.Question{
		{ID: 1, Subtopic: "Light Reactions"},
	}
	stats := map[int]store.QuestionStats{
		1: answeredStats(true, 2),
	}

	gaps := AnalyzeGaps(nil, qs, stats)
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}
	if gaps[0].Subtopic != "Light Reactions" {
		t.Errorf("subtopic = %q", gaps[0].Subtopic)
	}
	if !strings.Contains(gaps[0].Reason, "1 low-understanding") {
		t.Errorf("reason = %q", gaps[0].Reason)
	}
}

func TestAnalyzeGapsIncorrectLatestAnswer(t *testing.T) {
	qs := []*store.Question{
		{ID: 1, Subtopic: "Calvin Cycle"},
	}
	stats := map[int]store.QuestionStats{
		1: answeredStats(false, 4),
	}

	gaps := AnalyzeGaps(nil, qs, stats)
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}
	if !strings.Contains(gaps[0].Reason, "1 incorrect") {
		t.Errorf("reason = %q", gaps[0].Reason)
	}
}

func TestAnalyzeGapsLowAverage(t *testing.T) {
	// Correct answers with mixed scores pulling the mean below 3.0.
	qs := []*store.Question{
		{ID: 1, Subtopic: "Stomata"},
		{ID: 2, Subtopic: "Stomata"},
	}
	stats := map[int]store.QuestionStats{
		1: answeredStats(true, 2),
		2: answeredStats(true, 3),
	}

	gaps := AnalyzeGaps(nil, qs, stats)
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}
	if !strings.Contains(gaps[0].Reason, "average understanding score 2.5") {
		t.Errorf("reason = %q", gaps[0].Reason)
	}
}

func TestAnalyzeGapsHealthySubtopicNotFlagged(t *testing.T) {
	qs := []*store.Question{
		{ID: 1, Subtopic: "Chlorophyll"},
		{ID: 2, Subtopic: "Chlorophyll"},
	}
	stats := map[int]store.QuestionStats{
		1: answeredStats(true, 4),
		2: answeredStats(true, 3),
	}
	subtopics := []store.Subtopic{{Name: "Chlorophyll"}}

	gaps := AnalyzeGaps(subtopics, qs, stats)
	if len(gaps) != 0 {
		t.Fatalf("expected no gaps, got %v", gaps)
	}
}

func TestAnalyzeGapsUnansweredQuestionsNotFlagged(t *testing.T) {
	// Questions exist but have no scored answers: average defaults to
	// 5.0 and nothing is flagged.
	qs := []*store.Question{
		{ID: 1, Subtopic: "Xylem"},
	}

	gaps := AnalyzeGaps(nil, qs, map[int]store.QuestionStats{})
	if len(gaps) != 0 {
		t.Fatalf("expected no gaps for untested subtopic, got %v", gaps)
	}
}

func TestAnalyzeGapsUncoveredSubtopicsAppended(t *testing.T) {
	subtopics := []store.Subtopic{
		{Name: "Covered"},
		{Name: "Uncovered"},
	}
	qs := []*store.Question{
		{ID: 1, Subtopic: "Covered"},
	}
	stats := map[int]store.QuestionStats{
		1: answeredStats(false, 1),
	}

	gaps := AnalyzeGaps(subtopics, qs, stats)
	if len(gaps) != 2 {
		t.Fatalf("expected 2 gaps, got %d", len(gaps))
	}
	// Performance gaps come first, coverage gaps after.
	if gaps[0].Subtopic != "Covered" {
		t.Errorf("first gap = %q, want Covered", gaps[0].Subtopic)
	}
	if gaps[1].Subtopic != "Uncovered" || gaps[1].Reason != "no questions yet for this subtopic" {
		t.Errorf("second gap = %+v", gaps[1])
	}
}

func TestAnalyzeGapsDeterministicOrder(t *testing.T) {
	qs := []*store.Question{
		{ID: 1, Subtopic: "B"},
		{ID: 2, Subtopic: "A"},
		{ID: 3, Subtopic: "C"},
	}
	stats := map[int]store.QuestionStats{
		1: answeredStats(false, 1),
		2: answeredStats(false, 1),
		3: answeredStats(false, 1),
	}

	first := AnalyzeGaps(nil, qs, stats)
	for range 10 {
		again := AnalyzeGaps(nil, qs, stats)
		for i := range first {
			if again[i].Subtopic != first[i].Subtopic {
				t.Fatalf("gap order not stable: %v vs %v", again, first)
			}
		}
	}
	if first[0].Subtopic != "B" || first[1].Subtopic != "A" || first[2].Subtopic != "C" {
		t.Errorf("expected question insertion order B, A, C; got %v", first)
	}
}

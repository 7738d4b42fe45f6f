package quiz

import (
	"fmt"

	"github.com/inkling-app/inkling/internal/store"
)

// Gap marks a subtopic needing reinforcement or question coverage.
type Gap struct {
	Subtopic string
	Reason   string
}

// subtopicPerf accumulates per-subtopic performance while folding over
// a topic's questions.
type subtopicPerf struct {
	totalQuestions   int
	lowUnderstanding int
	incorrect        int
	scores           []int
}

// AnalyzeGaps folds question stats into per-subtopic aggregates and
// flags subtopics that need attention. A subtopic is a gap when it has
// a low-understanding answer (score <= 2), an incorrect latest answer,
// or an average understanding score below 3.0. Subtopics with no
// covering questions are appended after the performance gaps.
//
// When a subtopic has questions but none of them carry scores, the
// average defaults to 5.0 so untested material is not flagged through
// the average path.
func AnalyzeGaps(subtopics []store.Subtopic, questions []*store.Question, stats map[int]store.QuestionStats) []Gap {
	perf := make(map[string]*subtopicPerf)
	var order []string

	for _, q := range questions {
		if q.Subtopic == "" {
			continue
		}
		p, ok := perf[q.Subtopic]
		if !ok {
			p = &subtopicPerf{}
			perf[q.Subtopic] = p
			order = append(order, q.Subtopic)
		}
		p.totalQuestions++

		st := stats[q.ID]
		if st.HasAnswers && st.LastAnswerCorrect != nil && !*st.LastAnswerCorrect {
			p.incorrect++
		}
		if st.LastScore != nil {
			p.scores = append(p.scores, *st.LastScore)
			if *st.LastScore <= 2 {
				p.lowUnderstanding++
			}
		}
	}

	var gaps []Gap
	for _, name := range order {
		p := perf[name]
		avg := 5.0
		if len(p.scores) > 0 {
			sum := 0
			for _, s := range p.scores {
				sum += s
			}
			avg = float64(sum) / float64(len(p.scores))
		}
		if p.lowUnderstanding > 0 || p.incorrect > 0 || avg < 3.0 {
			gaps = append(gaps, Gap{
				Subtopic: name,
				Reason: fmt.Sprintf("average understanding score %.1f (%d incorrect, %d low-understanding answers)",
					avg, p.incorrect, p.lowUnderstanding),
			})
		}
	}

	for _, s := range subtopics {
		if _, covered := perf[s.Name]; !covered {
			gaps = append(gaps, Gap{
				Subtopic: s.Name,
				Reason:   "no questions yet for this subtopic",
			})
		}
	}

	return gaps
}

package quiz

import (
	"math/rand/v2"

	"github.com/inkling-app/inkling/internal/store"
)

// selectQuestions picks up to n questions ordered by priority tier:
// never answered first, then questions whose most recent answer was
// wrong, then questions last answered correctly. Order within a tier is
// uniformly random. Questions with ambiguous stats fall into the last
// tier.
func selectQuestions(questions []*store.Question, stats map[int]store.QuestionStats, n int) []*store.Question {
	if n >= len(questions) {
		out := shuffled(questions)
		return out
	}

	var unanswered, lastWrong, lastRight []*store.Question
	for _, q := range questions {
		st, ok := stats[q.ID]
		switch {
		case !ok || !st.HasAnswers:
			unanswered = append(unanswered, q)
		case st.LastAnswerCorrect != nil && !*st.LastAnswerCorrect:
			lastWrong = append(lastWrong, q)
		default:
			lastRight = append(lastRight, q)
		}
	}

	out := make([]*store.Question, 0, n)
	for _, tier := range [][]*store.Question{unanswered, lastWrong, lastRight} {
		for _, q := range shuffled(tier) {
			if len(out) == n {
				return out
			}
			out = append(out, q)
		}
	}
	return out
}

func shuffled(questions []*store.Question) []*store.Question {
	out := make([]*store.Question, len(questions))
	copy(out, questions)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

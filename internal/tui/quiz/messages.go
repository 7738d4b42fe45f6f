package quiz

import "github.com/inkling-app/inkling/internal/store"

// gradedMsg delivers the result of an async grading call.
type gradedMsg struct {
	Answer *store.Answer
	Err    error
}

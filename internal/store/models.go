package store

import "time"

// Topic is a subject the learner studies.
type Topic struct {
	ID               int
	Name             string
	Description      string
	CreatedAt        time.Time
	KnowledgeGraphID string
}

// Subtopic is a named sub-concept within a topic's knowledge structure.
type Subtopic struct {
	Name        string
	Description string
}

// SubtopicInput describes one subtopic and its relations, as produced by
// knowledge-graph generation.
type SubtopicInput struct {
	Name          string
	Description   string
	Prerequisites []string
	Related       []string
}

// Question is a single quiz question belonging to a topic.
type Question struct {
	ID            int
	TopicID       int
	QuestionText  string
	CorrectAnswer string
	Subtopic      string // weak reference to a subtopic name; may be empty or dangle
	Difficulty    string // free-form, conventionally easy/medium/hard
}

// Answer is one graded attempt at a question. Append-only.
type Answer struct {
	ID                 int
	QuestionID         int
	UserAnswer         string
	IsCorrect          bool
	UnderstandingScore *int // 1-5, nil when the grader returned none
	Feedback           string
	Timestamp          time.Time
}

// QuestionStats summarizes the answer history of a single question.
// Derived, never persisted; computed fresh on each request.
type QuestionStats struct {
	HasAnswers        bool
	LastAnswerCorrect *bool // nil when the question has never been answered
	TotalAnswers      int
	CorrectAnswers    int
	LastScore         *int // understanding score of the most recent answer
}

// HistoryEntry is one row of quiz history: an answer joined with its
// question and topic.
type HistoryEntry struct {
	Answer
	QuestionText string
	TopicName    string
}

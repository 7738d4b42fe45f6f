package store

import "errors"

var (
	// ErrTopicNotFound is returned when a referenced topic does not exist.
	ErrTopicNotFound = errors.New("topic not found")

	// ErrQuestionNotFound is returned when a referenced question does not exist.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrTopicExists is returned when creating a topic whose name is taken.
	ErrTopicExists = errors.New("topic already exists")

	// ErrEmptyTopicName is returned when creating a topic with a blank name.
	ErrEmptyTopicName = errors.New("topic name cannot be empty")
)

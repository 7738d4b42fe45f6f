// Package graph mirrors the knowledge graph into Neo4j.
//
// The SQLite store is the source of truth. The mirror is an optional,
// best-effort secondary view for graph exploration; every method is
// safe to call with the mirror disabled, and callers treat errors as
// warnings rather than failures.
package graph

import (
	"context"

	"github.com/inkling-app/inkling/internal/store"
)

// Mirror receives graph updates as topics, questions and answers are
// written to the primary store.
type Mirror interface {
	// SyncTopic upserts a topic node, its subtopic nodes and their
	// prerequisite and related edges.
	SyncTopic(ctx context.Context, topic *store.Topic, subtopics []store.SubtopicInput) error

	// SyncQuestion upserts a question node linked to its topic and subtopic.
	SyncQuestion(ctx context.Context, topicName string, q *store.Question) error

	// SyncAnswer upserts an answer node linked to its question.
	SyncAnswer(ctx context.Context, questionID int, a *store.Answer) error

	Close(ctx context.Context) error
}

// Disabled is a Mirror that does nothing. Used when Neo4j is not
// configured.
type Disabled struct{}

func (Disabled) SyncTopic(context.Context, *store.Topic, []store.SubtopicInput) error { return nil }
func (Disabled) SyncQuestion(context.Context, string, *store.Question) error          { return nil }
func (Disabled) SyncAnswer(context.Context, int, *store.Answer) error                 { return nil }
func (Disabled) Close(context.Context) error                                          { return nil }

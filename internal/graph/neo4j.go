package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/inkling-app/inkling/internal/store"
)

// Neo4jMirror implements Mirror against a Neo4j instance.
//
// Node labels: Topic, Subtopic, Question, Answer.
// Edges: (Topic)-[:HAS_SUBTOPIC]->(Subtopic),
// (Subtopic)-[:PREREQUISITE]->(Subtopic),
// (Subtopic)-[:RELATED_TO]->(Subtopic),
// (Topic)-[:HAS_QUESTION]->(Question),
// (Answer)-[:ANSWERS]->(Question).
type Neo4jMirror struct {
	driver neo4j.DriverWithContext
}

// Neo4jOptions configures the mirror connection.
type Neo4jOptions struct {
	URI      string
	User     string
	Password string
}

// NewNeo4jMirror connects to Neo4j and verifies connectivity.
func NewNeo4jMirror(ctx context.Context, opts Neo4jOptions) (*Neo4jMirror, error) {
	driver, err := neo4j.NewDriverWithContext(opts.URI, neo4j.BasicAuth(opts.User, opts.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("init neo4j driver: %w", err)
	}

	vctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := driver.VerifyConnectivity(vctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("verify neo4j connectivity: %w", err)
	}

	return &Neo4jMirror{driver: driver}, nil
}

func (m *Neo4jMirror) Close(ctx context.Context) error {
	return m.driver.Close(ctx)
}

func (m *Neo4jMirror) SyncTopic(ctx context.Context, topic *store.Topic, subtopics []store.SubtopicInput) error {
	session := m.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	nodes := make([]map[string]any, 0, len(subtopics))
	prereqs := make([]map[string]any, 0)
	related := make([]map[string]any, 0)
	for _, s := range subtopics {
		nodes = append(nodes, map[string]any{
			"name":        s.Name,
			"description": s.Description,
		})
		for _, p := range s.Prerequisites {
			prereqs = append(prereqs, map[string]any{"from": p, "to": s.Name})
		}
		for _, r := range s.Related {
			related = append(related, map[string]any{"from": s.Name, "to": r})
		}
	}

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		if _, err := tx.Run(ctx, `
			MERGE (t:Topic {name: $topic})
			SET t.description = $description`,
			map[string]any{"topic": topic.Name, "description": topic.Description}); err != nil {
			return nil, err
		}

		if _, err := tx.Run(ctx, `
			UNWIND $nodes AS node
			MATCH (t:Topic {name: $topic})
			MERGE (s:Subtopic {name: node.name, topic: $topic})
			SET s.description = node.description
			MERGE (t)-[:HAS_SUBTOPIC]->(s)`,
			map[string]any{"topic": topic.Name, "nodes": nodes}); err != nil {
			return nil, err
		}

		if _, err := tx.Run(ctx, `
			UNWIND $edges AS edge
			MATCH (a:Subtopic {name: edge.from, topic: $topic})
			MATCH (b:Subtopic {name: edge.to, topic: $topic})
			MERGE (a)-[:PREREQUISITE]->(b)`,
			map[string]any{"topic": topic.Name, "edges": prereqs}); err != nil {
			return nil, err
		}

		if _, err := tx.Run(ctx, `
			UNWIND $edges AS edge
			MATCH (a:Subtopic {name: edge.from, topic: $topic})
			MATCH (b:Subtopic {name: edge.to, topic: $topic})
			MERGE (a)-[:RELATED_TO]->(b)`,
			map[string]any{"topic": topic.Name, "edges": related}); err != nil {
			return nil, err
		}

		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("sync topic %q to neo4j: %w", topic.Name, err)
	}
	return nil
}

func (m *Neo4jMirror) SyncQuestion(ctx context.Context, topicName string, q *store.Question) error {
	session := m.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		_, err := tx.Run(ctx, `
			MATCH (t:Topic {name: $topic})
			MERGE (q:Question {id: $id})
			SET q.text = $text, q.subtopic = $subtopic, q.difficulty = $difficulty
			MERGE (t)-[:HAS_QUESTION]->(q)`,
			map[string]any{
				"topic":      topicName,
				"id":         q.ID,
				"text":       q.QuestionText,
				"subtopic":   q.Subtopic,
				"difficulty": q.Difficulty,
			})
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("sync question %d to neo4j: %w", q.ID, err)
	}
	return nil
}

func (m *Neo4jMirror) SyncAnswer(ctx context.Context, questionID int, a *store.Answer) error {
	session := m.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	params := map[string]any{
		"question_id": questionID,
		"id":          a.ID,
		"is_correct":  a.IsCorrect,
		"timestamp":   a.Timestamp.UTC().Format(time.RFC3339),
	}
	if a.UnderstandingScore != nil {
		params["score"] = *a.UnderstandingScore
	} else {
		params["score"] = nil
	}

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		_, err := tx.Run(ctx, `
			MATCH (q:Question {id: $question_id})
			MERGE (a:Answer {id: $id})
			SET a.is_correct = $is_correct, a.understanding_score = $score, a.timestamp = $timestamp
			MERGE (a)-[:ANSWERS]->(q)`,
			params)
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("sync answer %d to neo4j: %w", a.ID, err)
	}
	return nil
}

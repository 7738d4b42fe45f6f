// Package topics owns the topic lifecycle: creation with knowledge
// graph and question generation, lookup, and graph queries.
package topics

import (
	"context"
	"fmt"
	"os"

	"github.com/inkling-app/inkling/internal/graph"
	"github.com/inkling-app/inkling/internal/knowledge"
	"github.com/inkling-app/inkling/internal/store"
)

// QuestionGenerator produces and persists a topic's initial question
// batch. Implemented by the quiz service.
type QuestionGenerator interface {
	GenerateInitial(ctx context.Context, topic *store.Topic, g *knowledge.Graph, count int) ([]*store.Question, error)
}

// Service creates and queries topics.
type Service struct {
	topics    store.TopicRepo
	subtopics store.SubtopicRepo
	generator *knowledge.Generator
	questions QuestionGenerator
	mirror    graph.Mirror
}

// NewService creates a topic Service.
func NewService(
	topics store.TopicRepo,
	subtopics store.SubtopicRepo,
	generator *knowledge.Generator,
	questions QuestionGenerator,
	mirror graph.Mirror,
) *Service {
	if mirror == nil {
		mirror = graph.Disabled{}
	}
	return &Service{
		topics:    topics,
		subtopics: subtopics,
		generator: generator,
		questions: questions,
		mirror:    mirror,
	}
}

// CreateResult reports what topic creation produced.
type CreateResult struct {
	Topic     *store.Topic
	Subtopics []store.SubtopicInput
	Questions []*store.Question
}

// Create builds a new topic end to end: validates and persists the
// topic, generates its knowledge graph, stores the subtopics and their
// relations, and generates the initial question batch. Name validation
// happens before any persistence or LLM call.
func (s *Service) Create(ctx context.Context, name, description string, questionCount int) (*CreateResult, error) {
	topic, err := s.topics.Create(ctx, name, description, "")
	if err != nil {
		return nil, err
	}

	g, err := s.generator.Generate(ctx, topic.Name)
	if err != nil {
		return nil, fmt.Errorf("create topic %q: %w", topic.Name, err)
	}

	if err := s.subtopics.SaveGraph(ctx, topic.ID, g.Subtopics); err != nil {
		return nil, fmt.Errorf("create topic %q: %w", topic.Name, err)
	}

	// The topic name doubles as the knowledge graph identifier.
	if err := s.topics.UpdateDescription(ctx, topic.ID, topic.Description, topic.Name); err != nil {
		return nil, fmt.Errorf("create topic %q: %w", topic.Name, err)
	}
	topic.KnowledgeGraphID = topic.Name

	if err := s.mirror.SyncTopic(ctx, topic, g.Subtopics); err != nil {
		fmt.Fprintf(os.Stderr, "warning: graph mirror update failed: %v\n", err)
	}

	questions, err := s.questions.GenerateInitial(ctx, topic, g, questionCount)
	if err != nil {
		return nil, fmt.Errorf("create topic %q: %w", topic.Name, err)
	}

	return &CreateResult{
		Topic:     topic,
		Subtopics: g.Subtopics,
		Questions: questions,
	}, nil
}

// Get returns a topic by ID.
func (s *Service) Get(ctx context.Context, id int) (*store.Topic, error) {
	return s.topics.Get(ctx, id)
}

// GetByName returns a topic by its unique name.
func (s *Service) GetByName(ctx context.Context, name string) (*store.Topic, error) {
	return s.topics.GetByName(ctx, name)
}

// List returns all topics, newest first.
func (s *Service) List(ctx context.Context) ([]*store.Topic, error) {
	return s.topics.List(ctx)
}

// Subtopics returns a topic's subtopics, ordered by name.
func (s *Service) Subtopics(ctx context.Context, topicID int) ([]store.Subtopic, error) {
	return s.subtopics.ForTopic(ctx, topicID)
}

// Prerequisites returns the prerequisite subtopics of the named subtopic.
func (s *Service) Prerequisites(ctx context.Context, topicID int, name string) ([]string, error) {
	return s.subtopics.Prerequisites(ctx, topicID, name)
}

// Related returns the subtopics related to the named subtopic.
func (s *Service) Related(ctx context.Context, topicID int, name string) ([]string, error) {
	return s.subtopics.Related(ctx, topicID, name)
}

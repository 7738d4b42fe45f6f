package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/inkling-app/inkling/ent"
	"github.com/inkling-app/inkling/ent/topic"
)

// TopicRepo manages topic rows.
type TopicRepo interface {
	// Create persists a new topic and returns it with its assigned ID.
	// Returns ErrEmptyTopicName or ErrTopicExists before any write occurs.
	Create(ctx context.Context, name, description, graphID string) (*Topic, error)

	// Get returns the topic with the given ID, or ErrTopicNotFound.
	Get(ctx context.Context, id int) (*Topic, error)

	// GetByName returns the topic with the given name, or ErrTopicNotFound.
	GetByName(ctx context.Context, name string) (*Topic, error)

	// List returns all topics, newest first.
	List(ctx context.Context) ([]*Topic, error)

	// UpdateDescription updates the description and graph ID of a topic.
	// All other fields are immutable after creation.
	UpdateDescription(ctx context.Context, id int, description, graphID string) error
}

type topicRepo struct {
	client *ent.Client
}

func (r *topicRepo) Create(ctx context.Context, name, description, graphID string) (*Topic, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyTopicName
	}

	exists, err := r.client.Topic.Query().
		Where(topic.NameEQ(name)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check topic name: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %q", ErrTopicExists, name)
	}

	t, err := r.client.Topic.Create().
		SetName(name).
		SetDescription(description).
		SetKnowledgeGraphID(graphID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: %q", ErrTopicExists, name)
		}
		return nil, fmt.Errorf("save topic: %w", err)
	}

	return entTopic(t), nil
}

func (r *topicRepo) Get(ctx context.Context, id int) (*Topic, error) {
	t, err := r.client.Topic.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: id %d", ErrTopicNotFound, id)
		}
		return nil, fmt.Errorf("get topic: %w", err)
	}
	return entTopic(t), nil
}

func (r *topicRepo) GetByName(ctx context.Context, name string) (*Topic, error) {
	t, err := r.client.Topic.Query().
		Where(topic.NameEQ(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %q", ErrTopicNotFound, name)
		}
		return nil, fmt.Errorf("get topic by name: %w", err)
	}
	return entTopic(t), nil
}

func (r *topicRepo) List(ctx context.Context) ([]*Topic, error) {
	rows, err := r.client.Topic.Query().
		Order(ent.Desc(topic.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	topics := make([]*Topic, len(rows))
	for i, t := range rows {
		topics[i] = entTopic(t)
	}
	return topics, nil
}

func (r *topicRepo) UpdateDescription(ctx context.Context, id int, description, graphID string) error {
	err := r.client.Topic.UpdateOneID(id).
		SetDescription(description).
		SetKnowledgeGraphID(graphID).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: id %d", ErrTopicNotFound, id)
		}
		return fmt.Errorf("update topic: %w", err)
	}
	return nil
}

func entTopic(t *ent.Topic) *Topic {
	return &Topic{
		ID:               t.ID,
		Name:             t.Name,
		Description:      t.Description,
		CreatedAt:        t.CreatedAt,
		KnowledgeGraphID: t.KnowledgeGraphID,
	}
}

package store

import (
	"context"
	"fmt"

	"github.com/inkling-app/inkling/ent"
	"github.com/inkling-app/inkling/ent/question"
)

// QuestionRepo manages question rows. Questions are immutable after
// creation; there is deliberately no update method.
type QuestionRepo interface {
	// Save persists one question and returns it with its assigned ID.
	Save(ctx context.Context, q *Question) (*Question, error)

	// SaveBatch persists a batch of questions in one transaction.
	SaveBatch(ctx context.Context, qs []*Question) ([]*Question, error)

	// Get returns the question with the given ID, or ErrQuestionNotFound.
	Get(ctx context.Context, id int) (*Question, error)

	// ForTopic returns all questions belonging to a topic.
	ForTopic(ctx context.Context, topicID int) ([]*Question, error)
}

type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) Save(ctx context.Context, q *Question) (*Question, error) {
	row, err := r.client.Question.Create().
		SetTopicID(q.TopicID).
		SetQuestionText(q.QuestionText).
		SetCorrectAnswer(q.CorrectAnswer).
		SetSubtopic(q.Subtopic).
		SetDifficulty(q.Difficulty).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save question: %w", err)
	}
	return entQuestion(row), nil
}

func (r *questionRepo) SaveBatch(ctx context.Context, qs []*Question) ([]*Question, error) {
	if len(qs) == 0 {
		return nil, nil
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	saved := make([]*Question, 0, len(qs))
	for _, q := range qs {
		row, err := tx.Question.Create().
			SetTopicID(q.TopicID).
			SetQuestionText(q.QuestionText).
			SetCorrectAnswer(q.CorrectAnswer).
			SetSubtopic(q.Subtopic).
			SetDifficulty(q.Difficulty).
			Save(ctx)
		if err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("save question batch: %w", err)
		}
		saved = append(saved, entQuestion(row))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit question batch: %w", err)
	}
	return saved, nil
}

func (r *questionRepo) Get(ctx context.Context, id int) (*Question, error) {
	row, err := r.client.Question.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: id %d", ErrQuestionNotFound, id)
		}
		return nil, fmt.Errorf("get question: %w", err)
	}
	return entQuestion(row), nil
}

func (r *questionRepo) ForTopic(ctx context.Context, topicID int) ([]*Question, error) {
	rows, err := r.client.Question.Query().
		Where(question.TopicIDEQ(topicID)).
		Order(ent.Asc(question.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("questions for topic: %w", err)
	}

	qs := make([]*Question, len(rows))
	for i, row := range rows {
		qs[i] = entQuestion(row)
	}
	return qs, nil
}

func entQuestion(row *ent.Question) *Question {
	return &Question{
		ID:            row.ID,
		TopicID:       row.TopicID,
		QuestionText:  row.QuestionText,
		CorrectAnswer: row.CorrectAnswer,
		Subtopic:      row.Subtopic,
		Difficulty:    row.Difficulty,
	}
}

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/inkling-app/inkling/ent"
)

// AnswerRepo manages the append-only answer log.
type AnswerRepo interface {
	// Append persists a new answer and returns it with its assigned ID.
	// Existing answers are never updated.
	Append(ctx context.Context, a *Answer) (*Answer, error)

	// StatsForTopic computes per-question answer statistics for every
	// question belonging to the topic, including questions with no
	// answers. The most recent answer decides LastAnswerCorrect and
	// LastScore; ties on timestamp are broken by insertion order.
	StatsForTopic(ctx context.Context, topicID int) (map[int]QuestionStats, error)

	// History returns recent answers joined with question text and topic
	// name, newest first. topicID 0 means all topics.
	History(ctx context.Context, topicID, limit int) ([]HistoryEntry, error)
}

type answerRepo struct {
	client *ent.Client
	db     *sql.DB
}

func (r *answerRepo) Append(ctx context.Context, a *Answer) (*Answer, error) {
	create := r.client.Answer.Create().
		SetQuestionID(a.QuestionID).
		SetUserAnswer(a.UserAnswer).
		SetIsCorrect(a.IsCorrect).
		SetFeedback(a.Feedback)

	if a.UnderstandingScore != nil {
		create = create.SetUnderstandingScore(*a.UnderstandingScore)
	}
	if !a.Timestamp.IsZero() {
		create = create.SetTimestamp(a.Timestamp)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("append answer: %w", err)
	}
	return entAnswer(row), nil
}

// statsQuery computes, in a single pass, the most recent answer per question
// (window function, timestamp then row id as tiebreak) and the all-time
// total/correct counts. Raw SQL because ent has no window function support.
const statsQuery = `
WITH latest AS (
	SELECT
		question_id,
		is_correct,
		understanding_score,
		ROW_NUMBER() OVER (PARTITION BY question_id ORDER BY timestamp DESC, id DESC) AS rn
	FROM answers
	WHERE question_id IN (SELECT id FROM questions WHERE topic_id = ?)
),
counts AS (
	SELECT
		question_id,
		COUNT(*) AS total_answers,
		SUM(CASE WHEN is_correct THEN 1 ELSE 0 END) AS correct_answers
	FROM answers
	WHERE question_id IN (SELECT id FROM questions WHERE topic_id = ?)
	GROUP BY question_id
)
SELECT
	q.id,
	l.is_correct,
	l.understanding_score,
	COALESCE(c.total_answers, 0),
	COALESCE(c.correct_answers, 0)
FROM questions q
LEFT JOIN latest l ON q.id = l.question_id AND l.rn = 1
LEFT JOIN counts c ON q.id = c.question_id
WHERE q.topic_id = ?`

func (r *answerRepo) StatsForTopic(ctx context.Context, topicID int) (map[int]QuestionStats, error) {
	rows, err := r.db.QueryContext(ctx, statsQuery, topicID, topicID, topicID)
	if err != nil {
		return nil, fmt.Errorf("query answer stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[int]QuestionStats)
	for rows.Next() {
		var (
			questionID  int
			lastCorrect sql.NullBool
			lastScore   sql.NullInt64
			total       int
			correct     int
		)
		if err := rows.Scan(&questionID, &lastCorrect, &lastScore, &total, &correct); err != nil {
			return nil, fmt.Errorf("scan answer stats: %w", err)
		}

		qs := QuestionStats{
			HasAnswers:     total > 0,
			TotalAnswers:   total,
			CorrectAnswers: correct,
		}
		if lastCorrect.Valid {
			v := lastCorrect.Bool
			qs.LastAnswerCorrect = &v
		}
		if lastScore.Valid {
			v := int(lastScore.Int64)
			qs.LastScore = &v
		}
		stats[questionID] = qs
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answer stats: %w", err)
	}

	return stats, nil
}

const historyQuery = `
SELECT
	a.id, a.question_id, a.user_answer, a.is_correct,
	a.understanding_score, a.feedback, a.timestamp,
	q.question_text, t.name
FROM answers a
JOIN questions q ON a.question_id = q.id
JOIN topics t ON q.topic_id = t.id
%s
ORDER BY a.timestamp DESC, a.id DESC
LIMIT ?`

func (r *answerRepo) History(ctx context.Context, topicID, limit int) ([]HistoryEntry, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if topicID > 0 {
		rows, err = r.db.QueryContext(ctx, fmt.Sprintf(historyQuery, "WHERE t.id = ?"), topicID, limit)
	} else {
		rows, err = r.db.QueryContext(ctx, fmt.Sprintf(historyQuery, ""), limit)
	}
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var (
			e     HistoryEntry
			score sql.NullInt64
		)
		err := rows.Scan(
			&e.ID, &e.QuestionID, &e.UserAnswer, &e.IsCorrect,
			&score, &e.Feedback, &e.Timestamp,
			&e.QuestionText, &e.TopicName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		if score.Valid {
			v := int(score.Int64)
			e.UnderstandingScore = &v
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	return entries, nil
}

func entAnswer(row *ent.Answer) *Answer {
	a := &Answer{
		ID:         row.ID,
		QuestionID: row.QuestionID,
		UserAnswer: row.UserAnswer,
		IsCorrect:  row.IsCorrect,
		Feedback:   row.Feedback,
		Timestamp:  row.Timestamp,
	}
	if row.UnderstandingScore != nil {
		v := *row.UnderstandingScore
		a.UnderstandingScore = &v
	}
	return a
}

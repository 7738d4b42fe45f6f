package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Answer records one graded attempt at a question. The answers table is
// append-only: re-attempts create new rows, and the most recent row per
// question is what performance logic treats as current.
type Answer struct {
	ent.Schema
}

func (Answer) Fields() []ent.Field {
	return []ent.Field{
		field.Int("question_id"),
		field.Text("user_answer").
			NotEmpty(),
		field.Bool("is_correct"),
		field.Int("understanding_score").
			Optional().
			Nillable().
			Min(1).
			Max(5).
			Comment("1 = no understanding, 5 = perfect; nil when the grader returned none"),
		field.Text("feedback").
			Default(""),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (Answer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
		index.Fields("question_id", "timestamp"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is a single quiz question. Questions are created in batches at
// topic creation or gap-filling time and never mutated afterwards.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.Int("topic_id").
			Comment("Owning topic"),
		field.Text("question_text").
			NotEmpty(),
		field.Text("correct_answer").
			NotEmpty(),
		field.String("subtopic").
			Default("").
			Comment("Weak reference to a subtopic name; may dangle"),
		field.String("difficulty").
			Default("").
			Comment("Free-form label, conventionally easy/medium/hard"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Topic is a subject the learner studies. Its knowledge structure and
// question bank are generated at creation time.
type Topic struct {
	ent.Schema
}

func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique().
			Comment("Display name, unique across all topics"),
		field.String("description").
			Default("").
			Comment("Short generated summary of the knowledge structure"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.String("knowledge_graph_id").
			Default("").
			Comment("Identifier of the generated knowledge graph"),
	}
}

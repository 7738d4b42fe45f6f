package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubtopicRelation links two subtopics of the same topic.
//
// PREREQUISITE is directed: the subtopic is a prerequisite for the related
// subtopic. RELATED_TO is symmetric and stored once; queries must check
// both directions.
type SubtopicRelation struct {
	ent.Schema
}

func (SubtopicRelation) Fields() []ent.Field {
	return []ent.Field{
		field.Int("subtopic_id"),
		field.Int("related_subtopic_id"),
		field.Enum("relation_type").
			Values("PREREQUISITE", "RELATED_TO"),
	}
}

func (SubtopicRelation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subtopic_id"),
		index.Fields("related_subtopic_id"),
		index.Fields("subtopic_id", "related_subtopic_id", "relation_type").
			Unique(),
	}
}

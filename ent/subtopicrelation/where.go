// Code generated by ent, DO NOT EDIT.

package subtopicrelation

import (
	"entgo.io/ent/dialect/sql"
	"github.com/inkling-app/inkling/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldLTE(FieldID, id))
}

// SubtopicID applies equality check predicate on the "subtopic_id" field. It's identical to SubtopicIDEQ.
func SubtopicID(v int) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldEQ(FieldSubtopicID, v))
}

// RelatedSubtopicID applies equality check predicate on the "related_subtopic_id" field. It's identical to RelatedSubtopicIDEQ.
func RelatedSubtopicID(v int) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldEQ(FieldRelatedSubtopicID, v))
}

// SubtopicIDEQ applies the EQ predicate on the "subtopic_id" field.
func SubtopicIDEQ(v int) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldEQ(FieldSubtopicID, v))
}

// SubtopicIDNEQ applies the NEQ predicate on the "subtopic_id" field.
func SubtopicIDNEQ(v int) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldNEQ(FieldSubtopicID, v))
}

// SubtopicIDIn applies the In predicate on the "subtopic_id" field.
func SubtopicIDIn(vs ...int) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldIn(FieldSubtopicID, vs...))
}

// SubtopicIDNotIn applies the NotIn predicate on the "subtopic_id" field.
func SubtopicIDNotIn(vs ...int) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldNotIn(FieldSubtopicID, vs...))
}

// SubtopicIDGT applies the GT predicate on the "subtopic_id" field.
func SubtopicIDGT(v int) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldGT(FieldSubtopicID, v))
}

// SubtopicIDGTE applies the GTE predicate on the "subtopic_id" field.
func SubtopicIDGTE(v int) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldGTE(FieldSubtopicID, v))
}

// SubtopicIDLT applies the LT predicate on the "subtopic_id" field.
func SubtopicIDLT(v int) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldLT(FieldSubtopicID, v))
}

// SubtopicIDLTE applies the LTE predicate on the "subtopic_id" field.
func SubtopicIDLTE(v int) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldLTE(FieldSubtopicID, v))
}

// RelatedSubtopicIDEQ applies the EQ predicate on the "related_subtopic_id" field.
func RelatedSubtopicIDEQ(v int) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldEQ(FieldRelatedSubtopicID, v))
}

// RelatedSubtopicIDNEQ applies the NEQ predicate on the "related_subtopic_id" field.
func RelatedSubtopicIDNEQ(v int) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldNEQ(FieldRelatedSubtopicID, v))
}

// RelatedSubtopicIDIn applies the In predicate on the "related_subtopic_id" field.
func RelatedSubtopicIDIn(vs ...int) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldIn(FieldRelatedSubtopicID, vs...))
}

// RelatedSubtopicIDNotIn applies the NotIn predicate on the "related_subtopic_id" field.
func RelatedSubtopicIDNotIn(vs ...int) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldNotIn(FieldRelatedSubtopicID, vs...))
}

// RelatedSubtopicIDGT applies the GT predicate on the "related_subtopic_id" field.
func RelatedSubtopicIDGT(v int) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldGT(FieldRelatedSubtopicID, v))
}

// RelatedSubtopicIDGTE applies the GTE predicate on the "related_subtopic_id" field.
func RelatedSubtopicIDGTE(v int) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldGTE(FieldRelatedSubtopicID, v))
}

// RelatedSubtopicIDLT applies the LT predicate on the "related_subtopic_id" field.
func RelatedSubtopicIDLT(v int) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldLT(FieldRelatedSubtopicID, v))
}

// RelatedSubtopicIDLTE applies the LTE predicate on the "related_subtopic_id" field.
func RelatedSubtopicIDLTE(v int) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldLTE(FieldRelatedSubtopicID, v))
}

// RelationTypeEQ applies the EQ predicate on the "relation_type" field.
func RelationTypeEQ(v RelationType) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldEQ(FieldRelationType, v))
}

// RelationTypeNEQ applies the NEQ predicate on the "relation_type" field.
func RelationTypeNEQ(v RelationType) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldNEQ(FieldRelationType, v))
}

// RelationTypeIn applies the In predicate on the "relation_type" field.
func RelationTypeIn(vs ...RelationType) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldIn(FieldRelationType, vs...))
}

// RelationTypeNotIn applies the NotIn predicate on the "relation_type" field.
func RelationTypeNotIn(vs ...RelationType) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.FieldNotIn(FieldRelationType, vs...))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubtopicRelation) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubtopicRelation) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubtopicRelation) predicate.SubtopicRelation {
	return predicate.SubtopicRelation(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package subtopicrelation

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the subtopicrelation type in the database.
	Label = "subtopic_relation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSubtopicID holds the string denoting the subtopic_id field in the database.
	FieldSubtopicID = "subtopic_id"
	// FieldRelatedSubtopicID holds the string denoting the related_subtopic_id field in the database.
	FieldRelatedSubtopicID = "related_subtopic_id"
	// FieldRelationType holds the string denoting the relation_type field in the database.
	FieldRelationType = "relation_type"
	// Table holds the table name of the subtopicrelation in the database.
	Table = "subtopic_relations"
)

// Columns holds all SQL columns for subtopicrelation fields.
var Columns = []string{
	FieldID,
	FieldSubtopicID,
	FieldRelatedSubtopicID,
	FieldRelationType,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// RelationType defines the type for the "relation_type" enum field.
type RelationType string

// RelationType values.
const (
	RelationTypePREREQUISITE RelationType = "PREREQUISITE"
	RelationTypeRELATED_TO   RelationType = "RELATED_TO"
)

func (rt RelationType) String() string {
	return string(rt)
}

// RelationTypeValidator is a validator for the "relation_type" field enum values. It is called by the builders before save.
func RelationTypeValidator(rt RelationType) error {
	switch rt {
	case RelationTypePREREQUISITE, RelationTypeRELATED_TO:
		return nil
	default:
		return fmt.Errorf("subtopicrelation: invalid enum value for relation_type field: %q", rt)
	}
}

// OrderOption defines the ordering options for the SubtopicRelation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySubtopicID orders the results by the subtopic_id field.
func BySubtopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtopicID, opts...).ToFunc()
}

// ByRelatedSubtopicID orders the results by the related_subtopic_id field.
func ByRelatedSubtopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelatedSubtopicID, opts...).ToFunc()
}

// ByRelationType orders the results by the relation_type field.
func ByRelationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelationType, opts...).ToFunc()
}

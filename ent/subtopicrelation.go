// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/inkling-app/inkling/ent/subtopicrelation"
)

// SubtopicRelation is the model entity for the SubtopicRelation schema.
type SubtopicRelation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SubtopicID holds the value of the "subtopic_id" field.
	SubtopicID int `json:"subtopic_id,omitempty"`
	// RelatedSubtopicID holds the value of the "related_subtopic_id" field.
	RelatedSubtopicID int `json:"related_subtopic_id,omitempty"`
	// RelationType holds the value of the "relation_type" field.
	RelationType subtopicrelation.RelationType `json:"relation_type,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SubtopicRelation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subtopicrelation.FieldID, subtopicrelation.FieldSubtopicID, subtopicrelation.FieldRelatedSubtopicID:
			values[i] = new(sql.NullInt64)
		case subtopicrelation.FieldRelationType:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SubtopicRelation fields.
func (_m *SubtopicRelation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subtopicrelation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case subtopicrelation.FieldSubtopicID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subtopic_id", values[i])
			} else if value.Valid {
				_m.SubtopicID = int(value.Int64)
			}
		case subtopicrelation.FieldRelatedSubtopicID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field related_subtopic_id", values[i])
			} else if value.Valid {
				_m.RelatedSubtopicID = int(value.Int64)
			}
		case subtopicrelation.FieldRelationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relation_type", values[i])
			} else if value.Valid {
				_m.RelationType = subtopicrelation.RelationType(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SubtopicRelation.
// This includes values selected through modifiers, order, etc.
func (_m *SubtopicRelation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SubtopicRelation.
// Note that you need to call SubtopicRelation.Unwrap() before calling this method if this SubtopicRelation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SubtopicRelation) Update() *SubtopicRelationUpdateOne {
	return NewSubtopicRelationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SubtopicRelation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SubtopicRelation) Unwrap() *SubtopicRelation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SubtopicRelation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SubtopicRelation) String() string {
	var builder strings.Builder
	builder.WriteString("SubtopicRelation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("subtopic_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubtopicID))
	builder.WriteString(", ")
	builder.WriteString("related_subtopic_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelatedSubtopicID))
	builder.WriteString(", ")
	builder.WriteString("relation_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelationType))
	builder.WriteByte(')')
	return builder.String()
}

// SubtopicRelations is a parsable slice of SubtopicRelation.
type SubtopicRelations []*SubtopicRelation

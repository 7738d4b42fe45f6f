package store

import (
	"context"
	"fmt"

	"github.com/inkling-app/inkling/ent"
	"github.com/inkling-app/inkling/ent/subtopic"
	"github.com/inkling-app/inkling/ent/subtopicrelation"
)

// SubtopicRepo manages subtopics and their relations.
type SubtopicRepo interface {
	// SaveGraph persists the subtopics of a knowledge-graph structure and
	// their PREREQUISITE/RELATED_TO relations in one transaction.
	// Self-relations and relations to unknown subtopic names are skipped.
	SaveGraph(ctx context.Context, topicID int, subtopics []SubtopicInput) error

	// ForTopic returns all subtopics of a topic, ordered by name.
	ForTopic(ctx context.Context, topicID int) ([]Subtopic, error)

	// Prerequisites returns the names of subtopics that are prerequisites
	// for the named subtopic.
	Prerequisites(ctx context.Context, topicID int, name string) ([]string, error)

	// Related returns the names of subtopics related to the named
	// subtopic. RELATED_TO is stored once but queried in both directions.
	Related(ctx context.Context, topicID int, name string) ([]string, error)
}

type subtopicRepo struct {
	client *ent.Client
}

func (r *subtopicRepo) SaveGraph(ctx context.Context, topicID int, subtopics []SubtopicInput) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := saveGraphTx(ctx, tx, topicID, subtopics); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit subtopic graph: %w", err)
	}
	return nil
}

func saveGraphTx(ctx context.Context, tx *ent.Tx, topicID int, subtopics []SubtopicInput) error {
	// First pass: upsert subtopics, building a name -> id map.
	ids := make(map[string]int, len(subtopics))
	for _, st := range subtopics {
		if st.Name == "" {
			continue
		}
		existing, err := tx.Subtopic.Query().
			Where(subtopic.TopicIDEQ(topicID), subtopic.NameEQ(st.Name)).
			Only(ctx)
		switch {
		case err == nil:
			if err := tx.Subtopic.UpdateOne(existing).
				SetDescription(st.Description).
				Exec(ctx); err != nil {
				return fmt.Errorf("update subtopic %q: %w", st.Name, err)
			}
			ids[st.Name] = existing.ID
		case ent.IsNotFound(err):
			created, err := tx.Subtopic.Create().
				SetTopicID(topicID).
				SetName(st.Name).
				SetDescription(st.Description).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("save subtopic %q: %w", st.Name, err)
			}
			ids[st.Name] = created.ID
		default:
			return fmt.Errorf("query subtopic %q: %w", st.Name, err)
		}
	}

	// Second pass: relations, now that all IDs are known.
	for _, st := range subtopics {
		id, ok := ids[st.Name]
		if !ok {
			continue
		}

		// A prerequisite points at the subtopic that requires it.
		for _, prereq := range st.Prerequisites {
			prereqID, ok := ids[prereq]
			if !ok || prereqID == id {
				continue
			}
			if err := saveRelation(ctx, tx, prereqID, id, subtopicrelation.RelationTypePREREQUISITE); err != nil {
				return err
			}
		}

		// RELATED_TO is symmetric, stored once.
		for _, rel := range st.Related {
			relID, ok := ids[rel]
			if !ok || relID == id {
				continue
			}
			if err := saveRelation(ctx, tx, id, relID, subtopicrelation.RelationTypeRELATED_TO); err != nil {
				return err
			}
		}
	}

	return nil
}

func saveRelation(ctx context.Context, tx *ent.Tx, fromID, toID int, typ subtopicrelation.RelationType) error {
	exists, err := tx.SubtopicRelation.Query().
		Where(
			subtopicrelation.SubtopicIDEQ(fromID),
			subtopicrelation.RelatedSubtopicIDEQ(toID),
			subtopicrelation.RelationTypeEQ(typ),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check relation: %w", err)
	}
	if exists {
		return nil
	}

	err = tx.SubtopicRelation.Create().
		SetSubtopicID(fromID).
		SetRelatedSubtopicID(toID).
		SetRelationType(typ).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save relation: %w", err)
	}
	return nil
}

func (r *subtopicRepo) ForTopic(ctx context.Context, topicID int) ([]Subtopic, error) {
	rows, err := r.client.Subtopic.Query().
		Where(subtopic.TopicIDEQ(topicID)).
		Order(ent.Asc(subtopic.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("subtopics for topic: %w", err)
	}

	subtopics := make([]Subtopic, len(rows))
	for i, row := range rows {
		subtopics[i] = Subtopic{Name: row.Name, Description: row.Description}
	}
	return subtopics, nil
}

func (r *subtopicRepo) Prerequisites(ctx context.Context, topicID int, name string) ([]string, error) {
	target, err := r.lookup(ctx, topicID, name)
	if err != nil || target == nil {
		return nil, err
	}

	rels, err := r.client.SubtopicRelation.Query().
		Where(
			subtopicrelation.RelatedSubtopicIDEQ(target.ID),
			subtopicrelation.RelationTypeEQ(subtopicrelation.RelationTypePREREQUISITE),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query prerequisites: %w", err)
	}

	ids := make([]int, len(rels))
	for i, rel := range rels {
		ids[i] = rel.SubtopicID
	}
	return r.namesByID(ctx, topicID, ids)
}

func (r *subtopicRepo) Related(ctx context.Context, topicID int, name string) ([]string, error) {
	target, err := r.lookup(ctx, topicID, name)
	if err != nil || target == nil {
		return nil, err
	}

	rels, err := r.client.SubtopicRelation.Query().
		Where(
			subtopicrelation.RelationTypeEQ(subtopicrelation.RelationTypeRELATED_TO),
			subtopicrelation.Or(
				subtopicrelation.SubtopicIDEQ(target.ID),
				subtopicrelation.RelatedSubtopicIDEQ(target.ID),
			),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query related: %w", err)
	}

	var ids []int
	for _, rel := range rels {
		if rel.SubtopicID == target.ID {
			ids = append(ids, rel.RelatedSubtopicID)
		} else {
			ids = append(ids, rel.SubtopicID)
		}
	}
	return r.namesByID(ctx, topicID, ids)
}

// lookup finds a subtopic by name within a topic. Returns (nil, nil) when
// the subtopic does not exist, matching the weak-reference semantics of
// question subtopic labels.
func (r *subtopicRepo) lookup(ctx context.Context, topicID int, name string) (*ent.Subtopic, error) {
	row, err := r.client.Subtopic.Query().
		Where(subtopic.TopicIDEQ(topicID), subtopic.NameEQ(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup subtopic %q: %w", name, err)
	}
	return row, nil
}

func (r *subtopicRepo) namesByID(ctx context.Context, topicID int, ids []int) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.client.Subtopic.Query().
		Where(subtopic.TopicIDEQ(topicID), subtopic.IDIn(ids...)).
		Order(ent.Asc(subtopic.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve subtopic names: %w", err)
	}

	names := make([]string, len(rows))
	for i, row := range rows {
		names[i] = row.Name
	}
	return names, nil
}

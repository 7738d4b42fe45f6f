// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswersColumns holds the columns for the "answers" table.
	AnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_id", Type: field.TypeInt},
		{Name: "user_answer", Type: field.TypeString, Size: 2147483647},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "understanding_score", Type: field.TypeInt, Nullable: true},
		{Name: "feedback", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// AnswersTable holds the schema information for the "answers" table.
	AnswersTable = &schema.Table{
		Name:       "answers",
		Columns:    AnswersColumns,
		PrimaryKey: []*schema.Column{AnswersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answer_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswersColumns[1]},
			},
			{
				Name:    "answer_question_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswersColumns[1], AnswersColumns[6]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "request_id", Type: field.TypeString, Unique: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[10]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic_id", Type: field.TypeInt},
		{Name: "question_text", Type: field.TypeString, Size: 2147483647},
		{Name: "correct_answer", Type: field.TypeString, Size: 2147483647},
		{Name: "subtopic", Type: field.TypeString, Default: ""},
		{Name: "difficulty", Type: field.TypeString, Default: ""},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_topic_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1]},
			},
		},
	}
	// SubtopicsColumns holds the columns for the "subtopics" table.
	SubtopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic_id", Type: field.TypeInt},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SubtopicsTable holds the schema information for the "subtopics" table.
	SubtopicsTable = &schema.Table{
		Name:       "subtopics",
		Columns:    SubtopicsColumns,
		PrimaryKey: []*schema.Column{SubtopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subtopic_topic_id",
				Unique:  false,
				Columns: []*schema.Column{SubtopicsColumns[1]},
			},
			{
				Name:    "subtopic_topic_id_name",
				Unique:  true,
				Columns: []*schema.Column{SubtopicsColumns[1], SubtopicsColumns[2]},
			},
		},
	}
	// SubtopicRelationsColumns holds the columns for the "subtopic_relations" table.
	SubtopicRelationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "subtopic_id", Type: field.TypeInt},
		{Name: "related_subtopic_id", Type: field.TypeInt},
		{Name: "relation_type", Type: field.TypeEnum, Enums: []string{"PREREQUISITE", "RELATED_TO"}},
	}
	// SubtopicRelationsTable holds the schema information for the "subtopic_relations" table.
	SubtopicRelationsTable = &schema.Table{
		Name:       "subtopic_relations",
		Columns:    SubtopicRelationsColumns,
		PrimaryKey: []*schema.Column{SubtopicRelationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subtopicrelation_subtopic_id",
				Unique:  false,
				Columns: []*schema.Column{SubtopicRelationsColumns[1]},
			},
			{
				Name:    "subtopicrelation_related_subtopic_id",
				Unique:  false,
				Columns: []*schema.Column{SubtopicRelationsColumns[2]},
			},
			{
				Name:    "subtopicrelation_subtopic_id_related_subtopic_id_relation_type",
				Unique:  true,
				Columns: []*schema.Column{SubtopicRelationsColumns[1], SubtopicRelationsColumns[2], SubtopicRelationsColumns[3]},
			},
		},
	}
	// TopicsColumns holds the columns for the "topics" table.
	TopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "knowledge_graph_id", Type: field.TypeString, Default: ""},
	}
	// TopicsTable holds the schema information for the "topics" table.
	TopicsTable = &schema.Table{
		Name:       "topics",
		Columns:    TopicsColumns,
		PrimaryKey: []*schema.Column{TopicsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswersTable,
		LlmRequestEventsTable,
		QuestionsTable,
		SubtopicsTable,
		SubtopicRelationsTable,
		TopicsTable,
	}
)

func init() {
}

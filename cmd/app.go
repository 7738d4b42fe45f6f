package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkling-app/inkling/internal/config"
	"github.com/inkling-app/inkling/internal/graph"
	"github.com/inkling-app/inkling/internal/knowledge"
	"github.com/inkling-app/inkling/internal/llm"
	"github.com/inkling-app/inkling/internal/quiz"
	"github.com/inkling-app/inkling/internal/store"
	"github.com/inkling-app/inkling/internal/topics"
)

// app bundles the wired services behind every command.
type app struct {
	store  *store.Store
	cfg    *config.Config
	mirror graph.Mirror

	quiz   *quiz.Service
	topics *topics.Service
}

// newApp opens the store, loads configuration, builds the LLM provider
// and wires the services. Callers must call close when done.
func newApp(cmd *cobra.Command) (*app, error) {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load config: %w", err)
	}

	llmCfg := cfg.LLM()
	if err := llmCfg.Validate(); err != nil {
		st.Close()
		return nil, err
	}

	provider, err := llm.NewProvider(ctx, llmCfg, st.Events())
	if err != nil {
		st.Close()
		return nil, err
	}

	var mirror graph.Mirror = graph.Disabled{}
	if cfg.Neo4j.Enabled {
		m, err := graph.NewNeo4jMirror(ctx, graph.Neo4jOptions{
			URI:      cfg.Neo4j.URI,
			User:     cfg.Neo4j.User,
			Password: cfg.Neo4j.Password,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: graph mirror unavailable: %v\n", err)
		} else {
			mirror = m
		}
	}

	quizSvc := quiz.NewService(
		st.Topics(), st.Questions(), st.Answers(), st.Subtopics(),
		provider, mirror,
		quiz.Options{
			Generation:          quiz.Params(cfg.Generation.Questions),
			Grading:             quiz.Params(cfg.Generation.Grading),
			QuestionsPerSession: cfg.Quiz.QuestionsPerSession,
			GenerateCount:       cfg.Quiz.DefaultQuestionCount,
		},
	)

	generator := knowledge.NewGenerator(provider, knowledge.Params(cfg.Generation.KnowledgeGraph))
	topicSvc := topics.NewService(st.Topics(), st.Subtopics(), generator, quizSvc, mirror)

	return &app{
		store:  st,
		cfg:    cfg,
		mirror: mirror,
		quiz:   quizSvc,
		topics: topicSvc,
	}, nil
}

func (a *app) close(ctx context.Context) {
	if err := a.mirror.Close(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: close graph mirror: %v\n", err)
	}
	_ = a.store.Close()
}

// topicByName resolves a topic argument to a stored topic.
func (a *app) topicByName(ctx context.Context, name string) (*store.Topic, error) {
	return a.topics.GetByName(ctx, name)
}

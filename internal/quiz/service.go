// Package quiz implements the adaptive quiz engine: prioritized
// question selection, LLM grading, learning-gap analysis and targeted
// question synthesis.
package quiz

import (
	"context"
	"fmt"
	"os"

	"github.com/inkling-app/inkling/internal/graph"
	"github.com/inkling-app/inkling/internal/knowledge"
	"github.com/inkling-app/inkling/internal/llm"
	"github.com/inkling-app/inkling/internal/store"
)

// Params are LLM sampling parameters for one request purpose.
type Params struct {
	Temperature float64
	MaxTokens   int
}

// Options configures a quiz Service.
type Options struct {
	// Generation parameters for question synthesis.
	Generation Params

	// Grading parameters for answer judgment.
	Grading Params

	// QuestionsPerSession is the default quiz length.
	QuestionsPerSession int

	// GenerateCount is the default batch size for question generation.
	GenerateCount int
}

// Service is the quiz engine. All state lives in the store; every
// operation is an independent request/response cycle.
type Service struct {
	topics    store.TopicRepo
	questions store.QuestionRepo
	answers   store.AnswerRepo
	subtopics store.SubtopicRepo
	provider  llm.Provider
	mirror    graph.Mirror
	opts      Options
}

// NewService creates a quiz Service.
func NewService(
	topics store.TopicRepo,
	questions store.QuestionRepo,
	answers store.AnswerRepo,
	subtopics store.SubtopicRepo,
	provider llm.Provider,
	mirror graph.Mirror,
	opts Options,
) *Service {
	if mirror == nil {
		mirror = graph.Disabled{}
	}
	return &Service{
		topics:    topics,
		questions: questions,
		answers:   answers,
		subtopics: subtopics,
		provider:  provider,
		mirror:    mirror,
		opts:      opts,
	}
}

// StartQuiz returns a prioritized, randomized selection of the topic's
// questions. numQuestions <= 0 uses the configured session default.
// Fails with ErrNoQuestions when the topic has no stored questions.
func (s *Service) StartQuiz(ctx context.Context, topicID, numQuestions int) ([]*store.Question, error) {
	if numQuestions <= 0 {
		numQuestions = s.opts.QuestionsPerSession
	}

	questions, err := s.questions.ForTopic(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w (topic %d)", ErrNoQuestions, topicID)
	}

	stats, err := s.answers.StatsForTopic(ctx, topicID)
	if err != nil {
		return nil, err
	}

	return selectQuestions(questions, stats, numQuestions), nil
}

// Gaps analyzes the topic's performance and returns its learning gaps.
func (s *Service) Gaps(ctx context.Context, topicID int) ([]Gap, error) {
	subtopics, err := s.subtopics.ForTopic(ctx, topicID)
	if err != nil {
		return nil, err
	}
	questions, err := s.questions.ForTopic(ctx, topicID)
	if err != nil {
		return nil, err
	}
	stats, err := s.answers.StatsForTopic(ctx, topicID)
	if err != nil {
		return nil, err
	}
	return AnalyzeGaps(subtopics, questions, stats), nil
}

// GenerateInitial produces and persists a topic's first question batch
// from its freshly generated knowledge graph.
func (s *Service) GenerateInitial(ctx context.Context, topic *store.Topic, g *knowledge.Graph, count int) ([]*store.Question, error) {
	if count <= 0 {
		count = s.opts.GenerateCount
	}

	prompt := buildQuestionPrompt(topic.Name, g, count)
	generated, err := generateQuestions(ctx, s.provider, prompt, s.opts.Generation)
	if err != nil {
		return nil, err
	}

	return s.persistGenerated(ctx, topic, generated)
}

// GenerateAdditional analyzes the topic's learning gaps and generates a
// batch of new questions biased toward them, avoiding duplicates of
// existing questions.
func (s *Service) GenerateAdditional(ctx context.Context, topicID, count int) ([]*store.Question, error) {
	if count <= 0 {
		count = s.opts.GenerateCount
	}

	topic, err := s.topics.Get(ctx, topicID)
	if err != nil {
		return nil, err
	}

	subtopics, err := s.subtopics.ForTopic(ctx, topicID)
	if err != nil {
		return nil, err
	}
	existing, err := s.questions.ForTopic(ctx, topicID)
	if err != nil {
		return nil, err
	}
	stats, err := s.answers.StatsForTopic(ctx, topicID)
	if err != nil {
		return nil, err
	}

	gaps := AnalyzeGaps(subtopics, existing, stats)

	prompt := buildSynthesisPrompt(topic.Name, renderSubtopics(subtopics), existing, gaps, count)
	generated, err := generateQuestions(ctx, s.provider, prompt, s.opts.Generation)
	if err != nil {
		return nil, err
	}

	return s.persistGenerated(ctx, topic, generated)
}

func (s *Service) persistGenerated(ctx context.Context, topic *store.Topic, generated []*store.Question) ([]*store.Question, error) {
	for _, q := range generated {
		q.TopicID = topic.ID
	}

	saved, err := s.questions.SaveBatch(ctx, generated)
	if err != nil {
		return nil, fmt.Errorf("persist generated questions: %w", err)
	}

	for _, q := range saved {
		if err := s.mirror.SyncQuestion(ctx, topic.Name, q); err != nil {
			fmt.Fprintf(os.Stderr, "warning: graph mirror update failed: %v\n", err)
			break
		}
	}

	return saved, nil
}

// History returns recent graded answers, newest first. topicID 0 means
// all topics.
func (s *Service) History(ctx context.Context, topicID, limit int) ([]store.HistoryEntry, error) {
	return s.answers.History(ctx, topicID, limit)
}

func renderSubtopics(subtopics []store.Subtopic) string {
	g := &knowledge.Graph{}
	for _, s := range subtopics {
		g.Subtopics = append(g.Subtopics, store.SubtopicInput{
			Name:        s.Name,
			Description: s.Description,
		})
	}
	return g.Render()
}

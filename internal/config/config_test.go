package config

import (
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.Generation.KnowledgeGraph.Temperature != 0.7 || cfg.Generation.KnowledgeGraph.MaxTokens != 2000 {
		t.Errorf("knowledge graph params = %+v", cfg.Generation.KnowledgeGraph)
	}
	if cfg.Generation.Grading.Temperature != 0.3 || cfg.Generation.Grading.MaxTokens != 1000 {
		t.Errorf("grading params = %+v", cfg.Generation.Grading)
	}
	if cfg.Quiz.QuestionsPerSession != 5 || cfg.Quiz.DefaultQuestionCount != 10 {
		t.Errorf("quiz config = %+v", cfg.Quiz)
	}
	if cfg.Neo4j.Enabled {
		t.Error("graph mirror should be disabled by default")
	}
}

func TestNormalizeFillsZeroValues(t *testing.T) {
	cfg := &Config{
		Provider: "anthropic",
		Generation: GenerationConfig{
			Questions: PurposeParams{Temperature: 0.5},
		},
	}
	cfg.normalize()

	if cfg.Provider != "anthropic" {
		t.Errorf("explicit provider overwritten: %q", cfg.Provider)
	}
	if cfg.Generation.Questions.Temperature != 0.5 {
		t.Errorf("explicit temperature overwritten: %v", cfg.Generation.Questions.Temperature)
	}
	if cfg.Generation.Questions.MaxTokens != 4000 {
		t.Errorf("max tokens not defaulted: %d", cfg.Generation.Questions.MaxTokens)
	}
	if cfg.Generation.Grading.Temperature != 0.3 {
		t.Errorf("grading temperature not defaulted: %v", cfg.Generation.Grading.Temperature)
	}
	if cfg.Quiz.QuestionsPerSession != 5 {
		t.Errorf("session length not defaulted: %d", cfg.Quiz.QuestionsPerSession)
	}
	if cfg.Neo4j.URI != "bolt://localhost:7687" {
		t.Errorf("neo4j URI not defaulted: %q", cfg.Neo4j.URI)
	}
}

func TestEnvKeysOverrideFile(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-env")

	cfg := Default()
	cfg.Anthropic.APIKey = "sk-file"
	applyEnvKey(&cfg.Anthropic.APIKey, "ANTHROPIC_API_KEY")

	if cfg.Anthropic.APIKey != "sk-env" {
		t.Errorf("api key = %q, want env value", cfg.Anthropic.APIKey)
	}
}

func TestLLMMapping(t *testing.T) {
	cfg := Default()
	cfg.Provider = "anthropic"
	cfg.Anthropic.APIKey = "sk-ant"
	cfg.Anthropic.Model = "claude-haiku"
	cfg.OpenRouter.BaseURL = "https://example.com/api/v1"

	out := cfg.LLM()
	if out.Provider != "anthropic" {
		t.Errorf("provider = %q", out.Provider)
	}
	if out.Anthropic.APIKey != "sk-ant" || out.Anthropic.Model != "claude-haiku" {
		t.Errorf("anthropic = %+v", out.Anthropic)
	}
	if out.OpenRouter.BaseURL != "https://example.com/api/v1" {
		t.Errorf("openrouter base URL = %q", out.OpenRouter.BaseURL)
	}
	// Unset models keep the llm package defaults.
	if out.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("openai model = %q", out.OpenAI.Model)
	}
	if out.Retry.MaxAttempts != 3 {
		t.Errorf("retry attempts = %d", out.Retry.MaxAttempts)
	}
}

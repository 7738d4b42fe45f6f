package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/inkling-app/inkling/internal/llm"
)

// Config is the full application configuration. Values come from
// config.yaml in the XDG config directory, overridden by INKLING_*
// environment variables. API keys are read from the provider's standard
// environment variable when not set in the file.
type Config struct {
	Provider string `yaml:"provider" mapstructure:"provider"`

	Anthropic  ProviderConfig `yaml:"anthropic" mapstructure:"anthropic"`
	OpenAI     ProviderConfig `yaml:"openai" mapstructure:"openai"`
	Gemini     ProviderConfig `yaml:"gemini" mapstructure:"gemini"`
	OpenRouter ProviderConfig `yaml:"openrouter" mapstructure:"openrouter"`

	Generation GenerationConfig `yaml:"generation" mapstructure:"generation"`
	Quiz       QuizConfig       `yaml:"quiz" mapstructure:"quiz"`
	Neo4j      Neo4jConfig      `yaml:"neo4j" mapstructure:"neo4j"`
}

// ProviderConfig holds per-provider settings.
type ProviderConfig struct {
	APIKey  string `yaml:"api_key" mapstructure:"api_key"`
	Model   string `yaml:"model" mapstructure:"model"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// GenerationConfig holds per-purpose LLM sampling parameters.
type GenerationConfig struct {
	KnowledgeGraph PurposeParams `yaml:"knowledge_graph" mapstructure:"knowledge_graph"`
	Questions      PurposeParams `yaml:"questions" mapstructure:"questions"`
	Grading        PurposeParams `yaml:"grading" mapstructure:"grading"`
}

// PurposeParams are the sampling parameters for one request purpose.
type PurposeParams struct {
	Temperature float64 `yaml:"temperature" mapstructure:"temperature"`
	MaxTokens   int     `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// QuizConfig holds quiz behavior settings.
type QuizConfig struct {
	QuestionsPerSession  int `yaml:"questions_per_session" mapstructure:"questions_per_session"`
	DefaultQuestionCount int `yaml:"default_question_count" mapstructure:"default_question_count"`
}

// Neo4jConfig holds settings for the optional knowledge graph mirror.
type Neo4jConfig struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	URI      string `yaml:"uri" mapstructure:"uri"`
	User     string `yaml:"user" mapstructure:"user"`
	Password string `yaml:"password" mapstructure:"password"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Provider: "openai",
		Generation: GenerationConfig{
			KnowledgeGraph: PurposeParams{Temperature: 0.7, MaxTokens: 2000},
			Questions:      PurposeParams{Temperature: 0.8, MaxTokens: 4000},
			Grading:        PurposeParams{Temperature: 0.3, MaxTokens: 1000},
		},
		Quiz: QuizConfig{
			QuestionsPerSession:  5,
			DefaultQuestionCount: 10,
		},
		Neo4j: Neo4jConfig{
			URI:  "bolt://localhost:7687",
			User: "neo4j",
		},
	}
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "inkling")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "inkling")
}

// Load reads configuration from config.yaml and the environment.
// A missing config file is not an error.
func Load() (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir())
	v.AddConfigPath(".")

	v.SetEnvPrefix("INKLING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	// Standard provider env vars win over the file so keys stay out of it.
	applyEnvKey(&cfg.Anthropic.APIKey, "ANTHROPIC_API_KEY")
	applyEnvKey(&cfg.OpenAI.APIKey, "OPENAI_API_KEY")
	applyEnvKey(&cfg.Gemini.APIKey, "GEMINI_API_KEY")
	applyEnvKey(&cfg.OpenRouter.APIKey, "OPENROUTER_API_KEY")

	cfg.normalize()
	return cfg, nil
}

func applyEnvKey(dst *string, env string) {
	if val := os.Getenv(env); val != "" {
		*dst = val
	}
}

// normalize fills zero values with defaults so a sparse config file
// does not break generation.
func (c *Config) normalize() {
	def := Default()
	if c.Provider == "" {
		c.Provider = def.Provider
	}
	normalizeParams(&c.Generation.KnowledgeGraph, def.Generation.KnowledgeGraph)
	normalizeParams(&c.Generation.Questions, def.Generation.Questions)
	normalizeParams(&c.Generation.Grading, def.Generation.Grading)
	if c.Quiz.QuestionsPerSession < 1 {
		c.Quiz.QuestionsPerSession = def.Quiz.QuestionsPerSession
	}
	if c.Quiz.DefaultQuestionCount < 1 {
		c.Quiz.DefaultQuestionCount = def.Quiz.DefaultQuestionCount
	}
	if c.Neo4j.URI == "" {
		c.Neo4j.URI = def.Neo4j.URI
	}
	if c.Neo4j.User == "" {
		c.Neo4j.User = def.Neo4j.User
	}
}

func normalizeParams(p *PurposeParams, def PurposeParams) {
	if p.Temperature <= 0 {
		p.Temperature = def.Temperature
	}
	if p.MaxTokens <= 0 {
		p.MaxTokens = def.MaxTokens
	}
}

// LLM builds the provider configuration for the llm package.
func (c *Config) LLM() llm.Config {
	out := llm.DefaultConfig()
	out.Provider = c.Provider

	out.Anthropic.APIKey = c.Anthropic.APIKey
	if c.Anthropic.Model != "" {
		out.Anthropic.Model = c.Anthropic.Model
	}

	out.OpenAI.APIKey = c.OpenAI.APIKey
	if c.OpenAI.Model != "" {
		out.OpenAI.Model = c.OpenAI.Model
	}
	out.OpenAI.BaseURL = c.OpenAI.BaseURL

	out.Gemini.APIKey = c.Gemini.APIKey
	if c.Gemini.Model != "" {
		out.Gemini.Model = c.Gemini.Model
	}

	out.OpenRouter.APIKey = c.OpenRouter.APIKey
	if c.OpenRouter.Model != "" {
		out.OpenRouter.Model = c.OpenRouter.Model
	}
	out.OpenRouter.BaseURL = c.OpenRouter.BaseURL

	return out
}

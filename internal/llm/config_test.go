package llm

import (
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"default missing openai key", func(c *Config) {}, "OPENAI_API_KEY"},
		{"openai with key", func(c *Config) { c.OpenAI.APIKey = "sk-test" }, ""},
		{"anthropic missing key", func(c *Config) { c.Provider = "anthropic" }, "ANTHROPIC_API_KEY"},
		{"anthropic with key", func(c *Config) {
			c.Provider = "anthropic"
			c.Anthropic.APIKey = "sk-ant"
		}, ""},
		{"gemini missing key", func(c *Config) { c.Provider = "gemini" }, "GEMINI_API_KEY"},
		{"openrouter missing key", func(c *Config) { c.Provider = "openrouter" }, "OPENROUTER_API_KEY"},
		{"mock needs no key", func(c *Config) { c.Provider = "mock" }, ""},
		{"unknown provider", func(c *Config) { c.Provider = "llama-at-home" }, "unknown LLM provider"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error = %v, want mention of %s", err, tc.wantErr)
			}
		})
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := WithPurpose(t.Context(), PurposeGrading)
	if got := PurposeFrom(ctx); got != PurposeGrading {
		t.Errorf("purpose = %q, want %q", got, PurposeGrading)
	}
	if got := PurposeFrom(t.Context()); got != "unknown" {
		t.Errorf("missing purpose = %q, want unknown", got)
	}
}

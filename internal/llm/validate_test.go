package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "validate-test",
	Description: "Schema used by validation tests",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":  map[string]any{"type": "string"},
			"count": map[string]any{"type": "integer"},
		},
		"required": []any{"name"},
	},
}

func TestValidateResponseAccepts(t *testing.T) {
	err := validateResponse(testSchema, json.RawMessage(`{"name":"x","count":2}`))
	if err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}

func TestValidateResponseRejects(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "plain text"},
		{"missing required", `{"count":2}`},
		{"wrong type", `{"name":"x","count":"two"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateResponse(testSchema, json.RawMessage(tc.raw))
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Fatalf("expected ErrInvalidResponse, got %v", err)
			}
			if string(invalid.Content) != tc.raw {
				t.Errorf("error should carry the raw content")
			}
		})
	}
}

func TestValidateResponseCachesCompiledSchema(t *testing.T) {
	// Two validations against the same named schema must reuse the
	// compiled form; the second call hits the cache.
	for range 2 {
		if err := validateResponse(testSchema, json.RawMessage(`{"name":"x"}`)); err != nil {
			t.Fatalf("validate: %v", err)
		}
	}
	if _, ok := schemaCache.Load(testSchema.Name); !ok {
		t.Error("expected compiled schema in cache")
	}
}

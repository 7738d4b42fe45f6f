package knowledge

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/inkling-app/inkling/internal/llm"
)

const validGraphJSON = `{
	"subtopics": [
		{"name": "Light Reactions", "description": "Converting light to chemical energy"},
		{"name": "Calvin Cycle", "description": "Carbon fixation", "prerequisites": ["Light Reactions"]},
		{"name": "Chlorophyll", "description": "The green pigment", "related": ["Light Reactions"]}
	]
}`

func TestParseGraph(t *testing.T) {
	g, err := ParseGraph(json.RawMessage(validGraphJSON))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(g.Subtopics) != 3 {
		t.Fatalf("expected 3 subtopics, got %d", len(g.Subtopics))
	}
	if g.Subtopics[1].Prerequisites[0] != "Light Reactions" {
		t.Errorf("prerequisites = %v", g.Subtopics[1].Prerequisites)
	}

	names := g.SubtopicNames()
	if names[0] != "Light Reactions" || names[2] != "Chlorophyll" {
		t.Errorf("names = %v", names)
	}
}

func TestParseGraphFenced(t *testing.T) {
	fenced := "```json\n" + validGraphJSON + "\n```"
	g, err := ParseGraph(json.RawMessage(fenced))
	if err != nil {
		t.Fatalf("parse fenced: %v", err)
	}
	if len(g.Subtopics) != 3 {
		t.Fatalf("expected 3 subtopics, got %d", len(g.Subtopics))
	}
}

func TestParseGraphDropsEmptyAndDuplicateNames(t *testing.T) {
	raw := `{
		"subtopics": [
			{"name": "  ", "description": "blank"},
			{"name": "Osmosis", "description": "first"},
			{"name": "Osmosis", "description": "duplicate"}
		]
	}`

	g, err := ParseGraph(json.RawMessage(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(g.Subtopics) != 1 {
		t.Fatalf("expected 1 subtopic, got %d", len(g.Subtopics))
	}
	if g.Subtopics[0].Description != "first" {
		t.Errorf("duplicate should keep first occurrence, got %q", g.Subtopics[0].Description)
	}
}

func TestParseGraphErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "Here is your knowledge graph!"},
		{"no subtopics", `{"subtopics": []}`},
		{"only unusable subtopics", `{"subtopics": [{"name": "", "description": "x"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseGraph(json.RawMessage(tc.raw)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestGeneratorGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(validGraphJSON),
	})
	gen := NewGenerator(mock, Params{Temperature: 0.7, MaxTokens: 2000})

	g, err := gen.Generate(context.Background(), "Photosynthesis")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(g.Subtopics) != 3 {
		t.Fatalf("expected 3 subtopics, got %d", len(g.Subtopics))
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Temperature != 0.7 || req.MaxTokens != 2000 {
		t.Errorf("params = %.1f/%d", req.Temperature, req.MaxTokens)
	}
	if !strings.Contains(req.Messages[0].Content, `"Photosynthesis"`) {
		t.Error("prompt should name the topic")
	}
	if req.Schema == nil || req.Schema.Name != "knowledge-graph" {
		t.Error("expected the graph schema on the request")
	}
}

func TestGeneratorProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	gen := NewGenerator(mock, Params{})

	_, err := gen.Generate(context.Background(), "Photosynthesis")
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected wrapped provider error, got %v", err)
	}
}

func TestGraphRender(t *testing.T) {
	g, err := ParseGraph(json.RawMessage(validGraphJSON))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	text := g.Render()
	for _, want := range []string{
		"- Light Reactions: Converting light to chemical energy",
		"  prerequisites: Light Reactions",
		"  related: Light Reactions",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("render missing %q in:\n%s", want, text)
		}
	}
}

// Package knowledge generates and parses topic knowledge graphs.
//
// A knowledge graph is a flat list of subtopics with prerequisite and
// related-to edges between them. The LLM produces it as JSON; this
// package owns the prompt, the response schema, and the parsing.
package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/inkling-app/inkling/internal/llm"
	"github.com/inkling-app/inkling/internal/store"
)

const graphSystemPrompt = "You are a knowledge graph generator. Always return valid JSON only."

const graphPromptTemplate = `Generate a knowledge graph structure for the topic: %q.

Create a hierarchical structure with:
1. Main subtopics (3-7 subtopics)
2. Relationships between subtopics (prerequisites, related topics)
3. Brief descriptions for each subtopic

Return a JSON object with this structure:
{
    "subtopics": [
        {
            "name": "Subtopic Name",
            "description": "Brief description",
            "prerequisites": ["Other subtopic name"],
            "related": ["Related subtopic name"]
        }
    ]
}

Only return the JSON, no additional text.`

// graphSchema constrains the LLM response for graph generation.
var graphSchema = &llm.Schema{
	Name:        "knowledge-graph",
	Description: "Subtopics of a learning topic with prerequisite and related edges",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"subtopics": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":        map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"prerequisites": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"related": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required": []any{"name", "description"},
				},
			},
		},
		"required": []any{"subtopics"},
	},
}

// Graph is a parsed knowledge graph.
type Graph struct {
	Subtopics []store.SubtopicInput
}

// Generator produces knowledge graphs through an LLM provider.
type Generator struct {
	provider llm.Provider
	params   Params
}

// Params are the sampling parameters for graph generation.
type Params struct {
	Temperature float64
	MaxTokens   int
}

// NewGenerator creates a Generator.
func NewGenerator(provider llm.Provider, params Params) *Generator {
	return &Generator{provider: provider, params: params}
}

// Generate asks the LLM for a knowledge graph of the given topic.
func (g *Generator) Generate(ctx context.Context, topicName string) (*Graph, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeKnowledgeGraph)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: graphSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf(graphPromptTemplate, topicName)},
		},
		Schema:      graphSchema,
		MaxTokens:   g.params.MaxTokens,
		Temperature: g.params.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate knowledge graph for %q: %w", topicName, err)
	}

	graph, err := ParseGraph(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("parse knowledge graph for %q: %w", topicName, err)
	}
	return graph, nil
}

// ParseGraph decodes a knowledge graph from LLM output.
// Subtopics with empty names are dropped; duplicate names keep the
// first occurrence.
func ParseGraph(raw json.RawMessage) (*Graph, error) {
	var payload struct {
		Subtopics []struct {
			Name          string   `json:"name"`
			Description   string   `json:"description"`
			Prerequisites []string `json:"prerequisites"`
			Related       []string `json:"related"`
		} `json:"subtopics"`
	}
	if err := json.Unmarshal(llm.StripCodeFences(raw), &payload); err != nil {
		return nil, fmt.Errorf("decode graph JSON: %w", err)
	}
	if len(payload.Subtopics) == 0 {
		return nil, fmt.Errorf("graph has no subtopics")
	}

	graph := &Graph{}
	seen := make(map[string]bool)
	for _, s := range payload.Subtopics {
		name := strings.TrimSpace(s.Name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		graph.Subtopics = append(graph.Subtopics, store.SubtopicInput{
			Name:          name,
			Description:   s.Description,
			Prerequisites: s.Prerequisites,
			Related:       s.Related,
		})
	}
	if len(graph.Subtopics) == 0 {
		return nil, fmt.Errorf("graph has no usable subtopics")
	}
	return graph, nil
}

// SubtopicNames returns the graph's subtopic names in order.
func (g *Graph) SubtopicNames() []string {
	names := make([]string, len(g.Subtopics))
	for i, s := range g.Subtopics {
		names[i] = s.Name
	}
	return names
}

// Render produces a compact text form of the graph for inclusion in
// question generation prompts.
func (g *Graph) Render() string {
	var b strings.Builder
	for _, s := range g.Subtopics {
		b.WriteString("- ")
		b.WriteString(s.Name)
		if s.Description != "" {
			b.WriteString(": ")
			b.WriteString(s.Description)
		}
		b.WriteString("\n")
		if len(s.Prerequisites) > 0 {
			b.WriteString("  prerequisites: ")
			b.WriteString(strings.Join(s.Prerequisites, ", "))
			b.WriteString("\n")
		}
		if len(s.Related) > 0 {
			b.WriteString("  related: ")
			b.WriteString(strings.Join(s.Related, ", "))
			b.WriteString("\n")
		}
	}
	return b.String()
}

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/inkling-app/inkling/internal/store"
)

type recordingEventRepo struct {
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestLoggingRecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 34},
	})
	repo := &recordingEventRepo{}
	p := WithLogging(mock, "openai", repo)

	ctx := WithPurpose(context.Background(), PurposeGrading)
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.RequestID == "" {
		t.Error("expected a generated request ID")
	}
	if e.Provider != "openai" || e.Model != "mock" {
		t.Errorf("provider/model = %q/%q", e.Provider, e.Model)
	}
	if e.Purpose != PurposeGrading {
		t.Errorf("purpose = %q", e.Purpose)
	}
	if !e.Success || e.InputTokens != 12 || e.OutputTokens != 34 {
		t.Errorf("event = %+v", e)
	}
}

func TestLoggingRecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Err: &ErrProviderUnavailable{Err: errors.New("down")},
	})
	repo := &recordingEventRepo{}
	p := WithLogging(mock, "anthropic", repo)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Success {
		t.Error("event should record failure")
	}
	if e.ErrorMessage == "" {
		t.Error("expected error message in event")
	}
	if e.Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown", e.Purpose)
	}
}

func TestLoggingFailureDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	repo := &recordingEventRepo{err: errors.New("disk full")}
	p := WithLogging(mock, "openai", repo)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("logging failure must not surface: %v", err)
	}
}

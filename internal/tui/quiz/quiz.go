// Package quiz is the interactive quiz session screen.
//
// The session is a client-side loop over one quiz's worth of questions:
// show a question, grade the free-text answer through the quiz engine,
// show feedback, then move on. Results are aggregated at the end.
package quiz

import (
	"context"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	engine "github.com/inkling-app/inkling/internal/quiz"
	"github.com/inkling-app/inkling/internal/store"
)

type phase int

const (
	phaseAnswering phase = iota
	phaseGrading
	phaseFeedback
	phaseSummary
)

// Model is the bubbletea model for a quiz session.
type Model struct {
	service   *engine.Service
	topic     *store.Topic
	questions []*store.Question

	index    int
	phase    phase
	input    textinput.Model
	answers  []*store.Answer
	feedback *store.Answer
	errMsg   string
	width    int
}

// New creates a quiz session model over an already-selected question list.
func New(service *engine.Service, topic *store.Topic, questions []*store.Question) *Model {
	ti := textinput.New()
	ti.Placeholder = "Type your answer..."
	ti.Focus()

	return &Model{
		service:   service,
		topic:     topic,
		questions: questions,
		input:     ti,
	}
}

// Answers returns the graded answers collected so far. Used by the CLI
// after the program exits to print the session summary.
func (m *Model) Answers() []*store.Answer {
	return m.answers
}

func (m *Model) Init() tea.Cmd {
	return m.input.Focus()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case gradedMsg:
		return m.handleGraded(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.phase == phaseAnswering {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch m.phase {
	case phaseAnswering:
		switch key {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if m.input.Value() == "" {
				return m, nil
			}
			m.phase = phaseGrading
			return m, m.gradeCurrent(m.input.Value())
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case phaseGrading:
		if key == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil

	case phaseFeedback:
		if key == "ctrl+c" {
			return m, tea.Quit
		}
		return m.advance()

	case phaseSummary:
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) handleGraded(msg gradedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.errMsg = msg.Err.Error()
		m.phase = phaseFeedback
		return m, nil
	}

	m.answers = append(m.answers, msg.Answer)
	m.feedback = msg.Answer
	m.phase = phaseFeedback
	return m, nil
}

// advance moves to the next question or to the summary.
func (m *Model) advance() (tea.Model, tea.Cmd) {
	m.feedback = nil
	m.errMsg = ""
	m.index++

	if m.index >= len(m.questions) {
		m.phase = phaseSummary
		return m, nil
	}

	ti := textinput.New()
	ti.Placeholder = "Type your answer..."
	ti.Focus()
	m.input = ti
	m.phase = phaseAnswering
	return m, m.input.Focus()
}

// gradeCurrent grades the answer asynchronously so typing stays
// responsive while the LLM call is in flight.
func (m *Model) gradeCurrent(userAnswer string) tea.Cmd {
	question := m.questions[m.index]
	service := m.service
	return func() tea.Msg {
		answer, err := service.Grade(context.Background(), question, userAnswer)
		return gradedMsg{Answer: answer, Err: err}
	}
}

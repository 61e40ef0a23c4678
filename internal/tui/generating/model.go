// Package generating provides the TUI model shown while content is generated.
package generating

import (
	"context"
	"fmt"

	"github.com/alkime/fastgenius/internal/generation"
	"github.com/alkime/fastgenius/internal/tui/components/labeledspinner"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Generator turns a rendered prompt into a title/content pair.
type Generator interface {
	Generate(ctx context.Context, prompt string) generation.Outcome
}

// CompleteMsg carries the finished generation outcome.
type CompleteMsg struct {
	Outcome generation.Outcome
}

// Model represents the generating UI state.
type Model struct {
	ctx      context.Context
	spinner  labeledspinner.Model
	gen      Generator
	prompt   string
	outcome  generation.Outcome
	done     bool
	canceled bool
}

// New creates a new generating model for one prompt.
func New(ctx context.Context, gen Generator, templateName, prompt string) Model {
	return Model{
		ctx: ctx,
		spinner: labeledspinner.New(
			spinner.Pulse,
			"Generating content...",
			fmt.Sprintf("Template: %s", templateName),
			"ctrl+c to cancel",
		),
		gen:    gen,
		prompt: prompt,
	}
}

// Init starts the spinner and the generation request.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Init(),
		m.generateCmd(),
	)
}

// Update handles messages for the generating model.
func (m Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := teaMsg.(type) {
	case CompleteMsg:
		m.outcome = msg.Outcome
		m.done = true

		return m, tea.Quit

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			m.canceled = true

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(teaMsg)

	return m, cmd
}

// View renders the spinner until generation finishes.
func (m Model) View() string {
	if m.done || m.canceled {
		return ""
	}

	return m.spinner.View() + "\n"
}

// Outcome returns the generation outcome once it has arrived.
func (m Model) Outcome() (generation.Outcome, bool) {
	return m.outcome, m.done
}

// Canceled reports whether the user quit before generation finished.
func (m Model) Canceled() bool {
	return m.canceled
}

// generateCmd returns a command that performs the upstream call.
func (m Model) generateCmd() tea.Cmd {
	return func() tea.Msg {
		return CompleteMsg{Outcome: m.gen.Generate(m.ctx, m.prompt)}
	}
}

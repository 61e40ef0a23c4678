// Package labeledspinner renders a spinner with a title, subtitle and help line.
package labeledspinner

import (
	"github.com/alkime/fastgenius/internal/tui/style"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model displays a spinner with title, subtitle, and help text.
type Model struct {
	Spinner  spinner.Model
	Title    string
	Subtitle string
	Help     string
}

// New creates a new labeled spinner with the given configuration.
func New(s spinner.Spinner, title, subtitle, help string) Model {
	sp := spinner.New()
	sp.Spinner = s
	sp.Style = style.Progress

	return Model{
		Spinner:  sp,
		Title:    title,
		Subtitle: subtitle,
		Help:     help,
	}
}

// Init returns the initial command for the spinner.
func (ls Model) Init() tea.Cmd {
	return ls.Spinner.Tick
}

// Update handles spinner tick messages.
func (ls Model) Update(teaMsg tea.Msg) (Model, tea.Cmd) {
	if tickMsg, ok := teaMsg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		ls.Spinner, cmd = ls.Spinner.Update(tickMsg)

		return ls, cmd
	}

	return ls, nil
}

// View renders the spinner line followed by the subtitle and help text.
func (ls Model) View() string {
	header := ls.Spinner.View() + " " + style.Title.Render(ls.Title)

	lines := []string{header, "", style.Subtitle.Render(ls.Subtitle)}
	if ls.Help != "" {
		lines = append(lines, "", style.Help.Render(ls.Help))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

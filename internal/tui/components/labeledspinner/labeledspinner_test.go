package labeledspinner_test

import (
	"strings"
	"testing"

	"github.com/alkime/fastgenius/internal/tui/components/labeledspinner"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

//nolint:gochecknoinits // recommend for CI by bubbletea folks
func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestLabeledSpinner(t *testing.T) {
	m := labeledspinner.New(spinner.Pulse, "Generating content...", "Template: QuickWriter", "ctrl+c to cancel")
	t.Run("initial state", func(t *testing.T) {
		assert.Equal(t, "Generating content...", m.Title)
		assert.Equal(t, "Template: QuickWriter", m.Subtitle)
		assert.Equal(t, "ctrl+c to cancel", m.Help)
		assert.Equal(t, spinner.Pulse, m.Spinner.Spinner)
	})

	v0 := m.View()
	t.Run("view output", func(t *testing.T) {
		assert.Contains(t, v0, "Generating content...")
		assert.Contains(t, v0, "Template: QuickWriter")
		assert.Contains(t, v0, "ctrl+c to cancel")
		assert.Contains(t, v0, spinner.Pulse.Frames[0])
	})

	t.Run("check updates", func(t *testing.T) {
		m, _ = m.Update(spinner.TickMsg{})
		assert.Contains(t, m.View(), spinner.Pulse.Frames[1])
		m, _ = m.Update(spinner.TickMsg{})
		assert.Contains(t, m.View(), spinner.Pulse.Frames[2])
	})

	t.Run("empty help omitted", func(t *testing.T) {
		bare := labeledspinner.New(spinner.Dot, "Title", "Subtitle", "")
		assert.Equal(t, 2, strings.Count(bare.View(), "\n"))
		assert.Equal(t, 4, strings.Count(m.View(), "\n"))
	})
}

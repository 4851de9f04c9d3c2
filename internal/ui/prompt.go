package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/location"
)

// locationPrompt edits the location in place, like an address bar.
type locationPrompt struct {
	active bool
	input  textinput.Model
}

func newLocationPrompt() locationPrompt {
	ti := textinput.New()
	ti.Prompt = "Go to: "
	ti.CharLimit = 512
	return locationPrompt{input: ti}
}

func (m Model) openPrompt() (tea.Model, tea.Cmd) {
	m.prompt.active = true
	m.prompt.input.SetValue(m.history.Current().String())
	m.prompt.input.CursorEnd()
	m.prompt.input.Width = max(m.width-12, 20)
	return m, m.prompt.input.Focus()
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.prompt.active = false
		m.prompt.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.prompt.active = false
		m.prompt.input.Blur()
		loc, err := location.Parse(m.prompt.input.Value())
		if err != nil {
			return m, m.setFlash(err.Error(), flashError)
		}
		m.history.Push(loc)
		m.navigated()
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return m, cmd
}

// navigated re-reads criteria after the location changed underneath the
// controller (prompt, back or forward).
func (m *Model) navigated() {
	m.ctl.Navigate()
	m.filters.setCriteria(m.ctl.Criteria())
	m.syncCards()
	m.logger.Info("navigated", "location", m.history.Current().String())
}

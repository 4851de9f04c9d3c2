package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type flashLevel int

const (
	flashInfo flashLevel = iota
	flashSuccess
	flashError
)

// flash is a transient message shown in the footer.
type flash struct {
	text  string
	level flashLevel
	seq   int
}

type flashExpiredMsg struct {
	seq int
}

func (f *flash) expire(seq int) {
	if seq == f.seq {
		f.text = ""
	}
}

// setFlash shows text in the footer until it expires or is replaced.
func (m *Model) setFlash(text string, level flashLevel) tea.Cmd {
	m.flash.seq++
	m.flash.text = text
	m.flash.level = level
	seq := m.flash.seq
	return tea.Tick(m.flashTTL, func(time.Time) tea.Msg {
		return flashExpiredMsg{seq: seq}
	})
}

func (m Model) renderFlash(bg BgStyle, styles Styles) string {
	if m.flash.text == "" {
		return ""
	}
	style := styles.InfoText
	switch m.flash.level {
	case flashSuccess:
		style = styles.SuccessText
	case flashError:
		style = styles.DangerText
	}
	return bg.Render(truncate(m.flash.text, max(m.width-4, 10)), style)
}

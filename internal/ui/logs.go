package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/logtail"
)

// logPanelLines caps how much of the log file the panel reads.
const logPanelLines = 500

// logPanel shows the tail of marquee's own log file.
type logPanel struct {
	open     bool
	viewport viewport.Model
	entries  []logtail.Entry
	err      error
}

type logLinesMsg struct {
	lines []string
	err   error
}

func newLogPanel() logPanel {
	return logPanel{viewport: viewport.New(0, 0)}
}

func readLogCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, logPanelLines)
		return logLinesMsg{lines: lines, err: err}
	}
}

func (p *logPanel) resize(width, height int) {
	p.viewport.Width = max(width-2, 0)
	p.viewport.Height = max(height-1-2, 0) // footer; box borders
}

func (p *logPanel) load(msg logLinesMsg, theme Theme) {
	p.err = msg.err
	p.entries = logtail.ParseLines(msg.lines)
	p.viewport.SetContent(renderLogEntries(p.entries, theme))
	p.viewport.GotoBottom()
}

func renderLogEntries(entries []logtail.Entry, theme Theme) string {
	styles := theme.Styles()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		var b strings.Builder
		if !e.Time.IsZero() {
			b.WriteString(styles.FaintText.Render(e.Time.Local().Format("15:04:05")))
			b.WriteString(" ")
		}
		if e.Level != "" {
			b.WriteString(styles.LevelStyle(e.Level).Render(padRight(e.Level, 5)))
			b.WriteString(" ")
		}
		b.WriteString(styles.Text.Render(e.Message))
		for _, a := range e.Attrs {
			b.WriteString(" ")
			b.WriteString(styles.MutedText.Render(a.Key + "="))
			b.WriteString(styles.Text.Render(a.Value))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

func (m Model) openLogs() (tea.Model, tea.Cmd) {
	m.logs.open = true
	return m, readLogCmd(m.logFile)
}

// handleLogsKey processes keyboard input while the log panel is open.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Logs), msg.String() == "q":
		m.logs.open = false
	case msg.String() == "r":
		return m, readLogCmd(m.logFile)
	case key.Matches(msg, m.keys.Top):
		m.logs.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.logs.viewport.GotoBottom()
	case key.Matches(msg, m.keys.Down):
		m.logs.viewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		m.logs.viewport.ScrollUp(1)
	case key.Matches(msg, m.keys.PageDown):
		m.logs.viewport.HalfPageDown()
	case key.Matches(msg, m.keys.PageUp):
		m.logs.viewport.HalfPageUp()
	}
	return m, nil
}

func (m Model) renderLogs() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	title := "Log"
	if m.logFile != "" {
		title += " · " + truncateMiddle(m.logFile, max(m.width/2, 10))
	}

	content := m.logs.viewport.View()
	switch {
	case m.logs.err != nil:
		content = m.theme.Styles().DangerText.Render(m.logs.err.Error())
	case len(m.logs.entries) == 0:
		content = m.theme.Styles().MutedText.Render("Log is empty")
	}
	box := m.renderTitledBox(title, content, m.width, m.height-1, true)

	hints := []string{
		bg.Render("j/k", styles.AccentText) + bg.Sep(":") + bg.Render("Scroll", styles.MutedText),
		bg.Render("g/G", styles.AccentText) + bg.Sep(":") + bg.Render("Top/Bottom", styles.MutedText),
		bg.Render("r", styles.AccentText) + bg.Sep(":") + bg.Render("Reload", styles.MutedText),
		bg.Render("esc", styles.AccentText) + bg.Sep(":") + bg.Render("Close", styles.MutedText),
	}
	footer := styles.Header.Width(m.width).Render(bg.Join(hints, "  "))
	return box + "\n" + footer
}

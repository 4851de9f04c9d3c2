package ui

import (
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/dialog"
)

type detailSection struct {
	label  string
	values []string
}

// detailSections lists the non-empty appearance groups of a character.
func detailSections(ch catalog.Character) []detailSection {
	all := []detailSection{
		{"Films", ch.Films},
		{"Short Films", ch.ShortFilms},
		{"TV Shows", ch.TVShows},
		{"Video Games", ch.VideoGames},
		{"Park Attractions", ch.ParkAttractions},
		{"Allies", ch.Allies},
		{"Enemies", ch.Enemies},
	}
	out := all[:0]
	for _, s := range all {
		if len(s.values) > 0 {
			out = append(out, s)
		}
	}
	return out
}

func controlLabel(id string, favorite bool) string {
	switch id {
	case dialog.FavoriteID:
		if favorite {
			return heart + " Unfavorite"
		}
		return heart + " Favorite"
	case dialog.CopyID:
		return "Copy link"
	case dialog.CloseID:
		return "Close"
	default:
		return id
	}
}

// dialogSize is the outer size of the dialog box.
func (m Model) dialogSize() (int, int) {
	return max(min(m.width-4, 76), 30), max(min(m.height-2, 26), 12)
}

// dialogBodySize is the scrollable region inside the dialog.
func (m Model) dialogBodySize() (int, int) {
	w, h := m.dialogSize()
	// border + padding; title, image line, gap, controls gap, controls, help
	return max(w-6, 10), max(h-4-6, 3)
}

// dialogBody renders the scrollable detail text for ch.
func (m Model) dialogBody(ch catalog.Character, width int) string {
	styles := m.theme.Styles()
	sections := detailSections(ch)
	if len(sections) == 0 {
		return styles.MutedText.Render(dialog.Placeholder)
	}

	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(styles.AccentText.Bold(true).Render(s.label))
		b.WriteString("\n")
		b.WriteString(styles.Text.Render(ansi.Wordwrap(strings.Join(s.values, ", "), width, ",")))
	}
	if ch.SourceURL != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.FaintText.Render(truncateMiddle(ch.SourceURL, width)))
	}
	return b.String()
}

// openDialog opens the detail dialog for the selected card.
func (m *Model) openDialog(ch catalog.Character) tea.Cmd {
	seq := m.dialog.Open(ch)
	w, _ := m.dialogBodySize()
	m.detail.SetContent(m.dialogBody(ch, w))
	m.detail.GotoTop()
	m.logger.Debug("dialog opened", "character", ch.Name, "id", ch.Key())
	return tea.Batch(
		func() tea.Msg { return dialogMountMsg{seq: seq} },
		m.applyMeta(characterMeta(ch)),
	)
}

// closeDialog closes the dialog and restores directory metadata.
func (m *Model) closeDialog() tea.Cmd {
	if !m.dialog.IsOpen() {
		return nil
	}
	m.dialog.Close()
	return m.dialogClosed()
}

// dialogClosed syncs widgets after the dialog went away.
func (m *Model) dialogClosed() tea.Cmd {
	m.syncFocus()
	return m.applyMeta(directoryMeta(m.history.Current()))
}

func (m Model) renderDialogBox() string {
	s := m.dialog.Session()
	if s == nil {
		return ""
	}
	ch := s.Character
	styles := m.theme.Styles()
	w, _ := m.dialogSize()
	inner := w - 6
	fav := m.ctl.IsFavorite(ch.Key())

	title := styles.Text.Bold(true).Render(truncate(ch.Name, inner-2))
	if fav {
		title += " " + styles.FavoriteText.Render(heart)
	}
	image := styles.FaintText.Render("No image")
	if ch.ImageURL != "" {
		image = styles.FaintText.Render(truncateMiddle(ch.ImageURL, inner))
	}

	focused := m.doc.Focused()
	var controls []string
	for _, id := range s.Controls() {
		label := "[ " + controlLabel(id, fav) + " ]"
		if id == focused {
			controls = append(controls, styles.Selected.Bold(true).Render(label))
			continue
		}
		controls = append(controls, styles.MutedText.Render(label))
	}

	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Width = inner
	hints := m.help.ShortHelpView(m.keys.dialogHelp())

	content := strings.Join([]string{
		title,
		image,
		"",
		m.detail.View(),
		"",
		strings.Join(controls, " "),
		hints,
	}, "\n")

	borderColor := m.theme.Accent
	if focused == dialog.RootID {
		borderColor = m.theme.BorderFocus
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(1, 2).
		Width(w - 2).
		Render(content)
}

func (m Model) renderDialog() string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.renderDialogBox(),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// dialogBounds returns the screen rectangle covered by the dialog box,
// matching the centering done by lipgloss.Place.
func (m Model) dialogBounds() (x0, y0, x1, y1 int) {
	box := m.renderDialogBox()
	bw, bh := lipgloss.Width(box), lipgloss.Height(box)
	x0 = int(math.Round(float64(max(m.width-bw, 0)) * 0.5))
	y0 = int(math.Round(float64(max(m.height-bh, 0)) * 0.5))
	return x0, y0, x0 + bw, y0 + bh
}

// handleMouse closes the dialog on a click outside it and scrolls it with
// the wheel.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.dialog.IsOpen() || m.showHelp || m.logs.open {
		return m, nil
	}
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.detail.ScrollUp(1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.detail.ScrollDown(1)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		x0, y0, x1, y1 := m.dialogBounds()
		if msg.X < x0 || msg.X >= x1 || msg.Y < y0 || msg.Y >= y1 {
			return m, m.closeDialog()
		}
	}
	return m, nil
}

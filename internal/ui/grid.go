package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/catalog"
)

const cardRoot = "card"

const heart = "♥"

func cardID(ch catalog.Character) string {
	return cardRoot + "/" + ch.Key()
}

// syncCards remounts one card element per visible character, keeping focus
// on the same card when it survives the change.
func (m *Model) syncCards() {
	focused := m.doc.Focused()
	cardFocused := strings.HasPrefix(focused, cardRoot+"/")
	prevIdx := m.cursor()

	m.visible = m.ctl.Visible()
	m.doc.Unmount(cardRoot)
	for _, ch := range m.visible {
		m.doc.Mount(cardID(ch), true)
	}

	if cardFocused {
		switch {
		case m.doc.Focus(focused):
		case len(m.visible) > 0:
			idx := min(max(prevIdx, 0), len(m.visible)-1)
			m.doc.Focus(cardID(m.visible[idx]))
		}
	}
	if m.lastCard != "" && !m.doc.Attached(m.lastCard) {
		m.lastCard = ""
	}
	m.syncFocus()
	m.clampOffset()
}

// syncFocus mirrors document focus into the widgets that track it.
func (m *Model) syncFocus() {
	focused := m.doc.Focused()
	if focused == nameFieldID {
		m.filters.name.Focus()
	} else {
		m.filters.name.Blur()
	}
	if strings.HasPrefix(focused, cardRoot+"/") {
		m.lastCard = focused
	}
	m.clampOffset()
}

// cursor returns the index of the focused (or last focused) card, or -1.
func (m Model) cursor() int {
	target := m.lastCard
	if f := m.doc.Focused(); strings.HasPrefix(f, cardRoot+"/") {
		target = f
	}
	if target == "" {
		return -1
	}
	for i, ch := range m.visible {
		if cardID(ch) == target {
			return i
		}
	}
	return -1
}

// selected returns the character under the cursor.
func (m Model) selected() (catalog.Character, bool) {
	idx := m.cursor()
	if idx < 0 {
		return catalog.Character{}, false
	}
	return m.visible[idx], true
}

// moveCursor focuses the card delta positions away, clamped to the grid.
func (m *Model) moveCursor(delta int) {
	if len(m.visible) == 0 {
		return
	}
	idx := m.cursor()
	if idx < 0 {
		idx = 0
	} else {
		idx = min(max(idx+delta, 0), len(m.visible)-1)
	}
	m.focusCard(idx)
}

func (m *Model) focusCard(idx int) {
	if idx < 0 || idx >= len(m.visible) {
		return
	}
	m.doc.Focus(cardID(m.visible[idx]))
	m.syncFocus()
}

// focusGrid returns focus to the grid at the last card.
func (m *Model) focusGrid() {
	if idx := m.cursor(); idx >= 0 {
		m.focusCard(idx)
		return
	}
	m.focusCard(0)
}

func (m Model) cardHeight() int {
	if m.compact {
		return 1
	}
	return 2
}

// gridRows is how many cards fit in the grid box.
func (m Model) gridRows() int {
	inner := m.height - 3 - 2 // header, filter bar, footer; box borders
	return max(inner/m.cardHeight(), 1)
}

// clampOffset scrolls so the cursor stays in view.
func (m *Model) clampOffset() {
	rows := m.gridRows()
	idx := m.cursor()
	if idx >= 0 {
		if idx < m.offset {
			m.offset = idx
		}
		if idx >= m.offset+rows {
			m.offset = idx - rows + 1
		}
	}
	m.offset = min(m.offset, max(len(m.visible)-rows, 0))
	m.offset = max(m.offset, 0)
}

func (m Model) gridTitle() string {
	snap := m.ctl.Snapshot()
	title := fmt.Sprintf("Characters %d/%d", len(snap.Visible), snap.Total)
	if snap.FavoritesOnly {
		title += " · Favorites"
	}
	if n := snap.Criteria.Active(); n > 0 {
		title += fmt.Sprintf(" · %d filter", n)
		if n > 1 {
			title += "s"
		}
	}
	return title
}

func (m Model) renderGrid(width, height int) string {
	focused := strings.HasPrefix(m.doc.Focused(), cardRoot+"/")
	bgColor := m.theme.SurfaceAlt
	if focused {
		bgColor = m.theme.FocusBg
	}

	var content string
	if len(m.visible) == 0 {
		styles := m.theme.Styles()
		msg := "No characters match these filters"
		if m.ctl.Snapshot().FavoritesOnly {
			msg = "No favorites match these filters"
		}
		content = lipgloss.Place(width-2, height-2, lipgloss.Center, lipgloss.Center,
			NewBgStyle(bgColor).Render(msg, styles.MutedText),
			lipgloss.WithWhitespaceBackground(lipgloss.Color(bgColor)))
	} else {
		content = m.renderCards(width-2, bgColor)
	}
	return m.renderTitledBox(m.gridTitle(), content, width, height, focused)
}

func (m Model) renderCards(width int, bgColor string) string {
	rows := m.gridRows()
	end := min(m.offset+rows, len(m.visible))
	idx := m.cursor()

	var lines []string
	for i := m.offset; i < end; i++ {
		ch := m.visible[i]
		rowBg := bgColor
		if i == idx {
			rowBg = m.theme.SelectionBg
		}
		for _, line := range m.formatCard(ch, width, rowBg, i == idx) {
			lines = append(lines, lipgloss.NewStyle().Background(lipgloss.Color(rowBg)).Width(width).Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

// formatCard renders one card as one line (compact) or two.
// Line one: "♥ Name" followed by appearance counts; line two: the films.
func (m Model) formatCard(ch catalog.Character, width int, bgColor string, selected bool) []string {
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()
	nameStyle, mutedStyle, favStyle := styles.Text.Bold(true), styles.MutedText, styles.FavoriteText
	if selected {
		selText := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		nameStyle, mutedStyle = selText.Bold(true), selText
	}

	marker := bg.Render(" ", mutedStyle)
	if m.ctl.IsFavorite(ch.Key()) {
		marker = bg.Render(heart, favStyle)
	}

	counts := cardCounts(ch)
	nameWidth := max(width-lipgloss.Width(counts)-4, 8)
	first := marker + bg.Space() + bg.Render(truncate(ch.Name, nameWidth), nameStyle)
	if counts != "" {
		first += bg.Spaces(2) + bg.Render(counts, mutedStyle)
	}
	if m.compact {
		return []string{first}
	}

	films := "No films"
	if len(ch.Films) > 0 {
		films = strings.Join(ch.Films, ", ")
	}
	second := bg.Spaces(2) + bg.Render(truncate(films, max(width-3, 1)), mutedStyle)
	return []string{first, second}
}

// cardCounts summarizes appearances, e.g. "3 films · 1 show".
func cardCounts(ch catalog.Character) string {
	var parts []string
	add := func(n int, one, many string) {
		switch {
		case n == 1:
			parts = append(parts, "1 "+one)
		case n > 1:
			parts = append(parts, fmt.Sprintf("%d %s", n, many))
		}
	}
	add(len(ch.Films), "film", "films")
	add(len(ch.TVShows), "show", "shows")
	add(len(ch.VideoGames), "game", "games")
	add(len(ch.ParkAttractions), "attraction", "attractions")
	return strings.Join(parts, " · ")
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/dialog"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
)

// handleKey routes a key press. Overlays take precedence over the dialog,
// the dialog over the page, and the focused field over global bindings.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.prompt.active {
		return m.handlePromptKey(msg)
	}
	if m.logs.open {
		return m.handleLogsKey(msg)
	}
	if m.confirmClear {
		return m.handleConfirmClear(msg)
	}

	if m.ctl.Status() != state.StatusReady {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Logs):
			return m.openLogs()
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
		}
		return m, nil
	}

	if m.dialog.IsOpen() {
		return m.handleDialogKey(msg)
	}
	if m.doc.Focused() == nameFieldID {
		return m.handleNameKey(msg)
	}
	if param, ok := paramForField(m.doc.Focused()); ok {
		if next, cmd, handled := m.handleSelectKey(msg, param); handled {
			return next, cmd
		}
	}
	return m.handlePageKey(msg)
}

// handleDialogKey gives the dialog's keyboard listener first look, then
// activates the focused control.
func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.kb.Press(m.doc, msg.String()) {
		if !m.dialog.IsOpen() {
			return m, m.dialogClosed()
		}
		return m, nil
	}

	ch := m.dialog.Session().Character
	switch {
	case key.Matches(msg, m.keys.Activate):
		switch m.doc.Focused() {
		case dialog.FavoriteID:
			return m, emit(FavoriteToggledMsg{ID: ch.Key()})
		case dialog.CopyID:
			return m, m.copySourceLink(ch.SourceURL)
		case dialog.CloseID:
			return m, m.closeDialog()
		}
		if msg.String() == " " {
			return m, emit(FavoriteToggledMsg{ID: ch.Key()})
		}
	case key.Matches(msg, m.keys.Favorite):
		return m, emit(FavoriteToggledMsg{ID: ch.Key()})
	case key.Matches(msg, m.keys.CopyLink):
		return m, m.copySourceLink(ch.SourceURL)
	case key.Matches(msg, m.keys.Down):
		m.detail.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		m.detail.ScrollUp(1)
	case key.Matches(msg, m.keys.PageDown):
		m.detail.HalfPageDown()
	case key.Matches(msg, m.keys.PageUp):
		m.detail.HalfPageUp()
	case key.Matches(msg, m.keys.Top):
		m.detail.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.detail.GotoBottom()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	}
	return m, nil
}

// handleNameKey feeds typing into the name input and applies every edit.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Confirm), msg.Type == tea.KeyDown:
		m.focusGrid()
		return m, nil
	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
		m.kb.Press(m.doc, msg.String())
		m.syncFocus()
		return m, nil
	}

	before := m.filters.name.Value()
	var cmd tea.Cmd
	m.filters.name, cmd = m.filters.name.Update(msg)
	if m.filters.name.Value() == before {
		return m, cmd
	}
	m.applyCriteria(m.filters.criteria())
	return m, cmd
}

// handleSelectKey cycles or clears a select field. It reports false for
// keys the select does not use.
func (m Model) handleSelectKey(msg tea.KeyMsg, param string) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.NextOption):
		m.applyCriteria(m.filters.cycle(param, 1))
		return m, nil, true
	case key.Matches(msg, m.keys.PrevOption):
		m.applyCriteria(m.filters.cycle(param, -1))
		return m, nil, true
	case key.Matches(msg, m.keys.ClearOption):
		m.applyCriteria(m.filters.with(param, ""))
		return m, nil, true
	case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Escape):
		m.focusGrid()
		return m, nil, true
	}
	return m, nil, false
}

// handlePageKey handles global bindings and the card grid.
func (m Model) handlePageKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Logs):
		return m.openLogs()
	case key.Matches(msg, m.keys.OpenLocation):
		return m.openPrompt()
	case key.Matches(msg, m.keys.Back):
		if m.history.Back() {
			m.navigated()
		}
	case key.Matches(msg, m.keys.Forward):
		if m.history.Forward() {
			m.navigated()
		}
	case key.Matches(msg, m.keys.CopyLocation):
		return m, m.copyLocation()
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		return m, m.savePrefs()
	case key.Matches(msg, m.keys.ToggleCompact):
		m.compact = !m.compact
		m.clampOffset()
		return m, m.savePrefs()
	case key.Matches(msg, m.keys.FavoritesOnly):
		on := !m.ctl.Snapshot().FavoritesOnly
		m.ctl.SetFavoritesOnly(on)
		m.syncCards()
	case key.Matches(msg, m.keys.ClearFavs):
		m.confirmClear = true
		return m, m.setFlash("Clear all favorites? Press y to confirm.", flashInfo)
	case key.Matches(msg, m.keys.Search):
		m.doc.Focus(nameFieldID)
		m.syncFocus()
	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab), key.Matches(msg, m.keys.Escape):
		m.kb.Press(m.doc, msg.String())
		m.syncFocus()

	case key.Matches(msg, m.keys.Up):
		if m.cursor() == 0 && strings.HasPrefix(m.doc.Focused(), cardRoot+"/") {
			m.doc.Focus(nameFieldID)
			m.syncFocus()
			break
		}
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Top):
		m.focusCard(0)
	case key.Matches(msg, m.keys.Bottom):
		m.focusCard(len(m.visible) - 1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.gridRows())
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.gridRows())
	case key.Matches(msg, m.keys.Open):
		if ch, ok := m.selected(); ok {
			m.focusGrid()
			return m, m.openDialog(ch)
		}
	case key.Matches(msg, m.keys.Favorite):
		if ch, ok := m.selected(); ok {
			return m, emit(FavoriteToggledMsg{ID: ch.Key()})
		}
	}
	return m, nil
}

func (m Model) handleConfirmClear(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirmClear = false
	if msg.String() != "y" {
		return m, m.setFlash("Kept favorites.", flashInfo)
	}
	if err := m.ctl.ClearFavorites(); err != nil {
		m.logger.Warn("clear favorites failed", "error", err)
		return m, m.setFlash("Could not clear favorites: "+err.Error(), flashError)
	}
	m.syncCards()
	m.logger.Info("favorites cleared")
	return m, m.setFlash("Favorites cleared.", flashSuccess)
}

func (m Model) toggleFavorite(id string) (tea.Model, tea.Cmd) {
	if m.ctl.Status() != state.StatusReady {
		return m, nil
	}
	now, err := m.ctl.ToggleFavorite(id)
	m.syncCards()
	if err != nil {
		m.logger.Warn("favorite write failed", "id", id, "error", err)
		return m, m.setFlash("Could not save favorite: "+err.Error(), flashError)
	}
	name := id
	for _, ch := range m.ctl.Snapshot().Visible {
		if ch.Key() == id {
			name = ch.Name
			break
		}
	}
	if s := m.dialog.Session(); s != nil && s.Character.Key() == id {
		name = s.Character.Name
	}
	if now {
		return m, m.setFlash(fmt.Sprintf("Added %s to favorites.", name), flashSuccess)
	}
	return m, m.setFlash(fmt.Sprintf("Removed %s from favorites.", name), flashInfo)
}

func (m *Model) copyLocation() tea.Cmd {
	loc := m.history.Current().String()
	if err := m.copyText(loc); err != nil {
		m.logger.Warn("clipboard write failed", "error", err)
		return m.setFlash("Clipboard unavailable: "+err.Error(), flashError)
	}
	return m.setFlash("Copied "+loc, flashSuccess)
}

func (m *Model) copySourceLink(link string) tea.Cmd {
	if link == "" {
		return m.setFlash("No source link for this character.", flashInfo)
	}
	if err := m.copyText(link); err != nil {
		m.logger.Warn("clipboard write failed", "error", err)
		return m.setFlash("Clipboard unavailable: "+err.Error(), flashError)
	}
	return m.setFlash("Copied source link.", flashSuccess)
}

func (m *Model) savePrefs() tea.Cmd {
	p := prefs.Prefs{Theme: m.theme.Name, Compact: m.compact}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", "error", err)
		return m.setFlash("Could not save preferences: "+err.Error(), flashError)
	}
	return nil
}

package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit          key.Binding
	Help          key.Binding
	CycleTheme    key.Binding
	ToggleCompact key.Binding
	FavoritesOnly key.Binding
	ClearFavs     key.Binding
	Logs          key.Binding

	// Location
	OpenLocation key.Binding
	Back         key.Binding
	Forward      key.Binding
	CopyLocation key.Binding

	// Focus
	Tab      key.Binding
	ShiftTab key.Binding
	Escape   key.Binding
	Search   key.Binding

	// Card grid
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Open     key.Binding
	Favorite key.Binding

	// Select fields
	PrevOption  key.Binding
	NextOption  key.Binding
	ClearOption key.Binding

	// Dialog
	Activate key.Binding
	CopyLink key.Binding

	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		ToggleCompact: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Compact cards"),
		),
		FavoritesOnly: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "Favorites only"),
		),
		ClearFavs: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "Clear favorites"),
		),
		Logs: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Log panel"),
		),

		OpenLocation: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Open location"),
		),
		Back: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Forward"),
		),
		CopyLocation: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy location"),
		),

		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next field"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close / leave field"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search by name"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Page down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Details"),
		),
		Favorite: key.NewBinding(
			key.WithKeys(" ", "f"),
			key.WithHelp("space/f", "Toggle favorite"),
		),

		PrevOption: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("h/left", "Previous option"),
		),
		NextOption: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("l/right", "Next option"),
		),
		ClearOption: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("backspace", "Clear"),
		),

		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "Press button"),
		),
		CopyLink: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy source link"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}

// ShortHelp returns key bindings for the command bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Tab, k.Open, k.Favorite, k.FavoritesOnly, k.OpenLocation, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Search, k.Escape},
		{k.Up, k.Down, k.Top, k.Bottom, k.PageUp, k.PageDown},
		{k.Open, k.Favorite, k.FavoritesOnly, k.ClearFavs},
		{k.PrevOption, k.NextOption, k.ClearOption},
		{k.OpenLocation, k.Back, k.Forward, k.CopyLocation},
		{k.CycleTheme, k.ToggleCompact, k.Logs, k.Help, k.Quit},
	}
}

// dialogHelp lists the bindings shown under the detail dialog.
func (k keyMap) dialogHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Activate, k.Favorite, k.CopyLink, k.Escape}
}

package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/catalog"
)

const (
	loadingText = "Fetching Characters..."
	failureText = "Something went wrong!"
)

// renderHeader renders the top bar: logo, history arrows, location and
// favorites count.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("marquee", styles.Logo)}

	back, fwd := styles.FaintText, styles.FaintText
	if m.history.CanBack() {
		back = styles.AccentText
	}
	if m.history.CanForward() {
		fwd = styles.AccentText
	}
	parts = append(parts, bg.Render("‹", back)+bg.Space()+bg.Render("›", fwd))

	snap := m.ctl.Snapshot()
	favs := bg.Render(heart, styles.FavoriteText) + bg.Space() +
		bg.Render(fmt.Sprintf("%d", snap.Favorites.Len()), styles.Text)
	if snap.FavoritesOnly {
		favs += bg.Space() + bg.Render("only", styles.WarningText)
	}

	loc := m.history.Current().String()
	room := m.width - lipgloss.Width(bg.Join(parts, "  ")) - lipgloss.Width(favs) - 8
	parts = append(parts, bg.Render(truncateMiddle(loc, max(room, 10)), styles.MutedText), favs)

	return styles.Header.Width(m.width).MaxWidth(m.width).Render(bg.Join(parts, "  "))
}

// renderCommandBar renders the footer: the location prompt when open,
// otherwise a flash message or key hints plus the theme indicator.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	bar := styles.Header.Width(m.width).MaxWidth(m.width)

	if m.prompt.active {
		return bar.Render(m.prompt.input.View())
	}
	if text := m.renderFlash(bg, styles); text != "" {
		return bar.Render(text)
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(m.keys.ShortHelp())+1)
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		segments = append(segments, bg.Render(h.Key, styles.AccentText)+colon+bg.Render(h.Desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return bar.Render(strings.Join(segments, bg.Spaces(2)))
}

func (m Model) renderMain() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderFilterBar(),
		m.renderGrid(m.width, m.height-3),
		m.renderCommandBar(),
	)
}

func (m Model) renderLoading() string {
	styles := m.theme.Styles()
	body := m.spinner.View() + " " + styles.Text.Render(loadingText)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		lipgloss.Place(m.width, max(m.height-2, 1), lipgloss.Center, lipgloss.Center, body),
		m.renderCommandBar(),
	)
}

func (m Model) renderFailure() string {
	styles := m.theme.Styles()
	lines := []string{styles.DangerText.Render(failureText)}
	if err := m.ctl.Snapshot().Err; err != nil {
		var loadErr *catalog.LoadError
		if errors.As(err, &loadErr) && loadErr.Status != 0 {
			lines = append(lines, styles.WarningText.Render(fmt.Sprintf("HTTP %d", loadErr.Status)))
		}
		lines = append(lines, styles.MutedText.Render(truncate(err.Error(), max(m.width-8, 20))))
	}
	lines = append(lines, "", styles.FaintText.Render("q quit · L logs"))
	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		lipgloss.Place(m.width, max(m.height-1, 1), lipgloss.Center, lipgloss.Center, body),
	)
}

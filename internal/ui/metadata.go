package ui

import (
	"encoding/json"
	"net/url"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/location"
)

const (
	directoryTitle       = "Disney Characters Directory"
	directoryDescription = "Search and explore your favorite Disney characters."
)

// PageMeta is the document metadata for the current view: the terminal
// title plus the description, canonical link and structured data that
// describe the page.
type PageMeta struct {
	Title          string
	Description    string
	Canonical      string
	StructuredData map[string]any
}

// characterMeta describes the detail view of one character.
func characterMeta(ch catalog.Character) PageMeta {
	canonical := location.Scheme + "://" + location.Host + "/" + url.PathEscape(ch.Name)

	appears := "various works"
	knownFrom := "N/A"
	if len(ch.Films) > 0 {
		appears = strings.Join(ch.Films, ", ")
		knownFrom = appears
	}

	return PageMeta{
		Title:       ch.Name + " | Disney Characters",
		Description: ch.Name + " appears in " + appears + ".",
		Canonical:   canonical,
		StructuredData: map[string]any{
			"@context":    "https://schema.org",
			"@type":       "Person",
			"name":        ch.Name,
			"description": "Disney character known from: " + knownFrom,
			"url":         canonical,
			"image":       ch.ImageURL,
		},
	}
}

// directoryMeta describes the browsing view at loc.
func directoryMeta(loc location.Location) PageMeta {
	return PageMeta{
		Title:       directoryTitle,
		Description: directoryDescription,
		Canonical:   location.Scheme + "://" + location.Host,
		StructuredData: map[string]any{
			"@context":    "https://schema.org",
			"@type":       "WebPage",
			"name":        "Disney Character Search",
			"url":         loc.String(),
			"description": "Browse Disney characters from films, TV shows, and games.",
		},
	}
}

// applyMeta records meta as current and sets the terminal title.
func (m *Model) applyMeta(meta PageMeta) tea.Cmd {
	m.meta = meta
	data, err := json.Marshal(meta.StructuredData)
	if err != nil {
		m.logger.Warn("encode structured data", "error", err)
	}
	m.logger.Debug("page metadata",
		"title", meta.Title,
		"description", meta.Description,
		"canonical", meta.Canonical,
		"structured_data", string(data),
	)
	return tea.SetWindowTitle(meta.Title)
}

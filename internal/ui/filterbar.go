package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/filter"
	"github.com/five82/marquee/internal/focus"
)

const (
	filterRoot  = "filter"
	nameFieldID = filterRoot + "/" + filter.NameParam
)

var selectPlaceholders = map[string]string{
	"film":           "All Films",
	"tvShow":         "All TV Shows",
	"videoGame":      "All Video Games",
	"parkAttraction": "All Attractions",
}

func selectFieldID(param string) string {
	return filterRoot + "/" + param
}

// paramForField returns the query parameter behind a filter element id.
func paramForField(id string) (string, bool) {
	param, ok := strings.CutPrefix(id, filterRoot+"/")
	if !ok || param == filter.NameParam {
		return "", false
	}
	_, known := filter.DimensionByParam(param)
	return param, known
}

// filterBar holds the controlled filter inputs. Its values mirror the
// criteria decoded from the location; key edits go through
// Model.applyCriteria in the same Update, so the next key sees them.
type filterBar struct {
	name    textinput.Model
	values  map[string]string
	options map[string][]string
}

func newFilterBar() filterBar {
	ti := textinput.New()
	ti.Placeholder = "Search by name"
	ti.Prompt = ""
	ti.CharLimit = 128
	return filterBar{
		name:    ti,
		values:  make(map[string]string, len(filter.Dimensions)),
		options: make(map[string][]string, len(filter.Dimensions)),
	}
}

// mount registers the filter fields with the document in display order.
func (f filterBar) mount(doc *focus.Document) {
	doc.Mount(nameFieldID, true)
	for _, dim := range filter.Dimensions {
		doc.Mount(selectFieldID(dim.Param), true)
	}
}

func (f *filterBar) setOptions(opts map[string][]string) {
	f.options = opts
}

// setCriteria makes the inputs show c.
func (f *filterBar) setCriteria(c filter.Criteria) {
	if f.name.Value() != c.Name {
		f.name.SetValue(c.Name)
		f.name.CursorEnd()
	}
	for _, dim := range filter.Dimensions {
		f.values[dim.Param] = dim.Get(c)
	}
}

// criteria returns the criteria the inputs currently show.
func (f filterBar) criteria() filter.Criteria {
	c := filter.Criteria{Name: f.name.Value()}
	for _, dim := range filter.Dimensions {
		dim.Set(&c, f.values[dim.Param])
	}
	return c
}

// choices lists the values a select cycles through, "" (all) first. A
// value that came from the location but is absent from the dataset is
// kept so it can still be shown and cleared.
func (f filterBar) choices(param string) []string {
	opts := f.options[param]
	out := make([]string, 0, len(opts)+2)
	out = append(out, "")
	current := f.values[param]
	found := current == ""
	for _, o := range opts {
		if o == current {
			found = true
		}
		out = append(out, o)
	}
	if !found {
		out = append(out, current)
	}
	return out
}

// cycle moves the select for param by dir steps and returns the resulting
// criteria. The bar itself is not updated.
func (f filterBar) cycle(param string, dir int) filter.Criteria {
	choices := f.choices(param)
	idx := 0
	for i, c := range choices {
		if c == f.values[param] {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(choices)) % len(choices)
	return f.with(param, choices[idx])
}

// with returns the current criteria with one select changed.
func (f filterBar) with(param, value string) filter.Criteria {
	c := f.criteria()
	if dim, ok := filter.DimensionByParam(param); ok {
		dim.Set(&c, value)
	}
	return c
}

func (m Model) renderFilterBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sel := NewBgStyle(m.theme.SelectionBg)
	selText := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
	focused := m.doc.Focused()

	var parts []string
	nameLabel := bg.Render("Name", styles.MutedText) + bg.Space()
	switch {
	case focused == nameFieldID:
		parts = append(parts, nameLabel+m.filters.name.View())
	case m.filters.name.Value() == "":
		parts = append(parts, nameLabel+bg.Render(m.filters.name.Placeholder, styles.FaintText))
	default:
		parts = append(parts, nameLabel+bg.Render(truncate(m.filters.name.Value(), m.filters.name.Width), styles.Text))
	}

	for _, dim := range filter.Dimensions {
		id := selectFieldID(dim.Param)
		value := m.filters.values[dim.Param]
		style := styles.Text
		if value == "" {
			value = selectPlaceholders[dim.Param]
			style = styles.MutedText
		}
		text := "‹ " + truncate(value, 22) + " ›"
		if id == focused {
			parts = append(parts, sel.Render(text, selText))
			continue
		}
		parts = append(parts, bg.Render(text, style))
	}

	return styles.Header.Width(m.width).MaxWidth(m.width).Render(strings.Join(parts, bg.Spaces(2)))
}

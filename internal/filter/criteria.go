// Package filter holds the filter criteria of the character browser, the
// codec that maps them to and from a location query string, and the pure
// engine that applies them to a dataset.
//
// Nothing here has side effects. Decode and Apply are total: there is no
// input they reject, an unexpected value simply fails to match.
package filter

import (
	"github.com/five82/marquee/internal/catalog"
)

// Criteria is the active set of constraints. An empty field never excludes
// a character.
type Criteria struct {
	Name           string
	Film           string
	TVShow         string
	VideoGame      string
	ParkAttraction string
}

// IsEmpty reports whether no field constrains the result.
func (c Criteria) IsEmpty() bool {
	return c == Criteria{}
}

// Equal compares field by field. Go strings have no absent state, so empty
// is the single "no constraint" value.
func (c Criteria) Equal(other Criteria) bool {
	return c == other
}

// Active returns how many fields currently constrain the result.
func (c Criteria) Active() int {
	n := 0
	if c.Name != "" {
		n++
	}
	for _, d := range Dimensions {
		if d.Get(c) != "" {
			n++
		}
	}
	return n
}

// NameParam is the query parameter of the free-text field.
const NameParam = "name"

// Dimension describes one categorical filter: its query parameter, its
// display label, and how it reads the criteria and a character.
type Dimension struct {
	Param   string
	Label   string
	Get     func(Criteria) string
	Set     func(*Criteria, string)
	Members func(catalog.Character) []string
}

// Dimensions lists the categorical filters in display order.
var Dimensions = []Dimension{
	{
		Param:   "film",
		Label:   "Film",
		Get:     func(c Criteria) string { return c.Film },
		Set:     func(c *Criteria, v string) { c.Film = v },
		Members: func(ch catalog.Character) []string { return ch.Films },
	},
	{
		Param:   "tvShow",
		Label:   "TV Show",
		Get:     func(c Criteria) string { return c.TVShow },
		Set:     func(c *Criteria, v string) { c.TVShow = v },
		Members: func(ch catalog.Character) []string { return ch.TVShows },
	},
	{
		Param:   "videoGame",
		Label:   "Video Game",
		Get:     func(c Criteria) string { return c.VideoGame },
		Set:     func(c *Criteria, v string) { c.VideoGame = v },
		Members: func(ch catalog.Character) []string { return ch.VideoGames },
	},
	{
		Param:   "parkAttraction",
		Label:   "Attraction",
		Get:     func(c Criteria) string { return c.ParkAttraction },
		Set:     func(c *Criteria, v string) { c.ParkAttraction = v },
		Members: func(ch catalog.Character) []string { return ch.ParkAttractions },
	},
}

// DimensionByParam finds a dimension by its query parameter.
func DimensionByParam(param string) (Dimension, bool) {
	for _, d := range Dimensions {
		if d.Param == param {
			return d, true
		}
	}
	return Dimension{}, false
}

// Package location models the browser's address bar: a current location
// whose query string carries the filter criteria, and a history that can be
// replaced in place, pushed onto, and walked back and forward.
//
// A location renders as marquee://characters?<query>. Only the query part is
// significant; the scheme and host are fixed.
package location

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// Scheme is the URL scheme of every location.
	Scheme = "marquee"
	// Host is the single page marquee serves.
	Host = "characters"
)

// Location is one address bar entry.
type Location struct {
	RawQuery string
}

// String renders the full address, e.g. marquee://characters?film=Fantasia.
func (l Location) String() string {
	base := Scheme + "://" + Host
	if l.RawQuery == "" {
		return base
	}
	return base + "?" + l.RawQuery
}

// Parse accepts a full marquee:// address, a bare query ("?film=x" or
// "film=x") or an empty string. Anything with a different scheme or host is
// rejected.
func Parse(raw string) (Location, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Location{}, nil
	}
	if !strings.Contains(raw, "://") {
		return Location{RawQuery: strings.TrimPrefix(raw, "?")}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, fmt.Errorf("parse location: %w", err)
	}
	if u.Scheme != Scheme {
		return Location{}, fmt.Errorf("parse location: unsupported scheme %q", u.Scheme)
	}
	if u.Host != Host {
		return Location{}, fmt.Errorf("parse location: unknown page %q", u.Host)
	}
	return Location{RawQuery: u.RawQuery}, nil
}

// History is the list of visited locations and a cursor into it. The zero
// value holds a single empty location.
type History struct {
	entries []Location
	index   int
}

// NewHistory starts a history at initial.
func NewHistory(initial Location) *History {
	return &History{entries: []Location{initial}}
}

func (h *History) ensure() {
	if len(h.entries) == 0 {
		h.entries = []Location{{}}
		h.index = 0
	}
}

// Current returns the location under the cursor.
func (h *History) Current() Location {
	h.ensure()
	return h.entries[h.index]
}

// Query returns the raw query of the current location.
func (h *History) Query() string {
	return h.Current().RawQuery
}

// Replace rewrites the current entry's query without adding a history entry.
func (h *History) Replace(rawQuery string) {
	h.ensure()
	h.entries[h.index] = Location{RawQuery: strings.TrimPrefix(rawQuery, "?")}
}

// Push adds loc after the cursor and drops any forward entries.
func (h *History) Push(loc Location) {
	h.ensure()
	h.entries = append(h.entries[:h.index+1], loc)
	h.index = len(h.entries) - 1
}

// Back moves the cursor one entry back. It reports false at the start.
func (h *History) Back() bool {
	h.ensure()
	if h.index == 0 {
		return false
	}
	h.index--
	return true
}

// Forward moves the cursor one entry forward. It reports false at the end.
func (h *History) Forward() bool {
	h.ensure()
	if h.index >= len(h.entries)-1 {
		return false
	}
	h.index++
	return true
}

// CanBack reports whether Back would move.
func (h *History) CanBack() bool {
	return h.index > 0
}

// CanForward reports whether Forward would move.
func (h *History) CanForward() bool {
	return h.index < len(h.entries)-1
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.ensure()
	return len(h.entries)
}

// Package focus is a small model of keyboard focus for the terminal UI.
//
// A Document holds the mounted focusable elements in tab order and tracks
// which one has focus. Elements are identified by slash-separated ids, so
// "dialog/close" is a descendant of "dialog". A Keyboard is the global key
// stream: listeners subscribe to it and may claim a key, which suppresses the
// document's default handling (native tab traversal).
//
// Keys use the strings produced by bubbletea's KeyMsg.String, for example
// "tab", "shift+tab" and "esc".
package focus

import (
	"slices"
	"strings"
)

// Key is a key name as rendered by tea.KeyMsg.String.
type Key = string

// Keys with default behaviour in a Document.
const (
	KeyTab      Key = "tab"
	KeyShiftTab Key = "shift+tab"
	KeyEsc      Key = "esc"
)

type element struct {
	id       string
	tabbable bool
}

// Document tracks mounted elements and the focused one. An empty focus id
// means nothing is focused. The zero value is an empty document.
type Document struct {
	elements []element
	focused  string
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Mount appends id to the document. Tabbable elements take part in tab
// traversal; others (a dialog root, for instance) can only be focused
// programmatically. Mounting an id twice only updates its tabbable flag.
func (d *Document) Mount(id string, tabbable bool) {
	if id == "" {
		return
	}
	if i := d.indexOf(id); i >= 0 {
		d.elements[i].tabbable = tabbable
		return
	}
	d.elements = append(d.elements, element{id: id, tabbable: tabbable})
}

// Unmount removes id and all of its descendants. If the focused element is
// removed the document loses focus.
func (d *Document) Unmount(id string) {
	d.elements = slices.DeleteFunc(d.elements, func(e element) bool {
		return within(e.id, id)
	})
	if d.focused != "" && within(d.focused, id) {
		d.focused = ""
	}
}

// Attached reports whether id is currently mounted.
func (d *Document) Attached(id string) bool {
	return d.indexOf(id) >= 0
}

// Focused returns the id of the focused element, or "".
func (d *Document) Focused() string {
	return d.focused
}

// Focus moves focus to id. It reports false, leaving focus unchanged, when id
// is not mounted.
func (d *Document) Focus(id string) bool {
	if !d.Attached(id) {
		return false
	}
	d.focused = id
	return true
}

// Blur clears focus.
func (d *Document) Blur() {
	d.focused = ""
}

// Tabbable returns the tabbable descendants of root in document order. An
// empty root means the whole document.
func (d *Document) Tabbable(root string) []string {
	var out []string
	for _, e := range d.elements {
		if !e.tabbable {
			continue
		}
		if root == "" || (e.id != root && within(e.id, root)) {
			out = append(out, e.id)
		}
	}
	return out
}

// HandleDefault performs the document's built-in behaviour for k: tab and
// shift+tab move to the next or previous tabbable element, wrapping around
// the document. It reports whether k had a default action.
func (d *Document) HandleDefault(k Key) bool {
	switch k {
	case KeyTab:
		d.step(1)
		return true
	case KeyShiftTab:
		d.step(-1)
		return true
	}
	return false
}

func (d *Document) step(dir int) {
	order := d.Tabbable("")
	if len(order) == 0 {
		return
	}
	cur := slices.Index(order, d.focused)
	if cur < 0 {
		// Focus sits on a non-tabbable element or nowhere: continue from its
		// position in the document.
		cur = d.nearestTabbable(dir, order)
		d.focused = order[cur]
		return
	}
	next := (cur + dir + len(order)) % len(order)
	d.focused = order[next]
}

func (d *Document) nearestTabbable(dir int, order []string) int {
	pos := d.indexOf(d.focused)
	if pos < 0 {
		if dir > 0 {
			return 0
		}
		return len(order) - 1
	}
	if dir > 0 {
		for _, e := range d.elements[pos+1:] {
			if e.tabbable {
				return slices.Index(order, e.id)
			}
		}
		return 0
	}
	for i := pos - 1; i >= 0; i-- {
		if d.elements[i].tabbable {
			return slices.Index(order, d.elements[i].id)
		}
	}
	return len(order) - 1
}

func (d *Document) indexOf(id string) int {
	return slices.IndexFunc(d.elements, func(e element) bool { return e.id == id })
}

// within reports whether id is root or one of its descendants.
func within(id, root string) bool {
	return id == root || strings.HasPrefix(id, root+"/")
}

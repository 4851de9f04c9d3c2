// Package dialog manages the character detail dialog: opening it for one
// character, trapping keyboard focus inside it, and giving focus back when it
// closes.
//
// # Lifecycle
//
// A Controller is either closed or holds exactly one Session. Open captures
// the currently focused element and attaches one key listener; the dialog is
// focused only once it has rendered, which the caller signals with Mounted.
// Close detaches the listener and returns focus to the captured element if it
// is still attached.
//
//	ctl := dialog.New(doc, kb)
//	seq := ctl.Open(character)   // render, then:
//	ctl.Mounted(seq)             // focus moves to the dialog root
//	kb.Press(doc, "tab")         // wraps inside the dialog
//	kb.Press(doc, "esc")         // closes, focus restored
//
// # Focus trap
//
// Tab on the last control wraps to the first and shift+tab on the first (or
// on the dialog root) wraps to the last. Every other tab is left to the
// document. A dialog without controls swallows tab entirely.
package dialog

import (
	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/focus"
)

// Element ids mounted while the dialog is open.
const (
	RootID     = "dialog"
	FavoriteID = RootID + "/favorite"
	CopyID     = RootID + "/copy"
	CloseID    = RootID + "/close"
)

// Placeholder is shown when a character has no detail lines.
const Placeholder = "No extra details available."

// ControlsFunc returns the focusable control ids to mount for a character,
// in tab order. Each id must be a descendant of RootID.
type ControlsFunc func(catalog.Character) []string

// DefaultControls offers the favorite toggle, a copy-link control when the
// character has a source URL, and the close button.
func DefaultControls(ch catalog.Character) []string {
	ids := []string{FavoriteID}
	if ch.SourceURL != "" {
		ids = append(ids, CopyID)
	}
	return append(ids, CloseID)
}

// Session is the state of one open dialog.
type Session struct {
	Character   catalog.Character
	ReturnFocus string

	seq      uint64
	sub      *focus.Subscription
	controls []string
	mounted  bool
}

// Controls returns the session's control ids in tab order.
func (s *Session) Controls() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.controls...)
}

// Mounted reports whether the dialog has rendered and taken focus.
func (s *Session) Mounted() bool {
	return s != nil && s.mounted
}

// Controller owns at most one open Session.
type Controller struct {
	doc      *focus.Document
	kb       *focus.Keyboard
	controls ControlsFunc
	session  *Session
	seq      uint64
	onClose  func(catalog.Character)
}

// Option configures a Controller.
type Option func(*Controller)

// WithControls replaces DefaultControls.
func WithControls(fn ControlsFunc) Option {
	return func(c *Controller) { c.controls = fn }
}

// WithOnClose registers a callback run after every close, including the
// implicit close when Open replaces a session and closes triggered by esc.
func WithOnClose(fn func(catalog.Character)) Option {
	return func(c *Controller) { c.onClose = fn }
}

// New returns a closed controller over doc and kb.
func New(doc *focus.Document, kb *focus.Keyboard, opts ...Option) *Controller {
	c := &Controller{doc: doc, kb: kb, controls: DefaultControls}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsOpen reports whether a session exists.
func (c *Controller) IsOpen() bool {
	return c.session != nil
}

// Session returns the open session, or nil.
func (c *Controller) Session() *Session {
	return c.session
}

// Open starts a session for ch, closing any previous one first. It returns a
// sequence number to pass to Mounted once the dialog has rendered.
func (c *Controller) Open(ch catalog.Character) uint64 {
	if c.session != nil {
		c.Close()
	}
	c.seq++
	s := &Session{
		Character:   ch,
		ReturnFocus: c.doc.Focused(),
		seq:         c.seq,
		controls:    c.controls(ch),
	}
	s.sub = c.kb.Listen(c.handleKey)
	c.session = s
	return s.seq
}

// Mounted mounts the dialog's elements and focuses its root. A stale seq
// (the session was closed or replaced before rendering) is ignored and
// reports false.
func (c *Controller) Mounted(seq uint64) bool {
	s := c.session
	if s == nil || s.seq != seq || s.mounted {
		return false
	}
	c.doc.Mount(RootID, false)
	for _, id := range s.controls {
		c.doc.Mount(id, true)
	}
	s.mounted = true
	c.doc.Focus(RootID)
	return true
}

// Close ends the session. It is a no-op when nothing is open.
func (c *Controller) Close() {
	s := c.session
	if s == nil {
		return
	}
	c.session = nil
	s.sub.Cancel()
	c.doc.Unmount(RootID)
	if s.ReturnFocus != "" && c.doc.Attached(s.ReturnFocus) {
		c.doc.Focus(s.ReturnFocus)
	}
	if c.onClose != nil {
		c.onClose(s.Character)
	}
}

func (c *Controller) handleKey(k focus.Key) bool {
	switch k {
	case focus.KeyEsc:
		c.Close()
		return true
	case focus.KeyTab, focus.KeyShiftTab:
		return c.trap(k)
	}
	return false
}

func (c *Controller) trap(k focus.Key) bool {
	if c.session == nil || !c.session.mounted {
		return false
	}
	items := c.doc.Tabbable(RootID)
	if len(items) == 0 {
		return true
	}
	first, last := items[0], items[len(items)-1]
	cur := c.doc.Focused()

	if k == focus.KeyShiftTab && (cur == first || cur == RootID) {
		c.doc.Focus(last)
		return true
	}
	if k == focus.KeyTab && cur == last {
		c.doc.Focus(first)
		return true
	}
	return false
}

package focus

// Listener receives a key and reports whether it claimed it. A claimed key
// skips the document's default handling.
type Listener func(Key) bool

// Subscription is a registered listener. Cancel detaches it.
type Subscription struct {
	kb     *Keyboard
	fn     Listener
	active bool
}

// Cancel detaches the listener. It is safe to call more than once.
func (s *Subscription) Cancel() {
	if s == nil || !s.active {
		return
	}
	s.active = false
	s.kb.remove(s)
}

// Active reports whether the listener is still attached.
func (s *Subscription) Active() bool {
	return s != nil && s.active
}

// Keyboard is the global key stream. It is not safe for concurrent use; in
// marquee it is only touched from the bubbletea update loop.
type Keyboard struct {
	subs []*Subscription
}

// NewKeyboard returns a key stream with no listeners.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Listen attaches fn and returns its subscription.
func (kb *Keyboard) Listen(fn Listener) *Subscription {
	s := &Subscription{kb: kb, fn: fn, active: true}
	kb.subs = append(kb.subs, s)
	return s
}

// Listeners returns the number of attached listeners.
func (kb *Keyboard) Listeners() int {
	return len(kb.subs)
}

// Dispatch delivers k to every attached listener in subscription order and
// reports whether any claimed it. Listeners may cancel themselves, or
// attach new listeners, while handling a key; changes apply to the next
// dispatch.
func (kb *Keyboard) Dispatch(k Key) bool {
	snapshot := append([]*Subscription(nil), kb.subs...)
	claimed := false
	for _, s := range snapshot {
		if !s.active {
			continue
		}
		if s.fn(k) {
			claimed = true
		}
	}
	return claimed
}

// Press dispatches k and, when no listener claimed it, applies doc's
// default handling. It reports whether the key was consumed by either.
func (kb *Keyboard) Press(doc *Document, k Key) bool {
	if kb.Dispatch(k) {
		return true
	}
	return doc.HandleDefault(k)
}

func (kb *Keyboard) remove(target *Subscription) {
	for i, s := range kb.subs {
		if s == target {
			kb.subs = append(kb.subs[:i], kb.subs[i+1:]...)
			return
		}
	}
}

package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoc(ids ...string) *Document {
	d := NewDocument()
	for _, id := range ids {
		d.Mount(id, true)
	}
	return d
}

func TestDocument_FocusRequiresAttachment(t *testing.T) {
	d := newDoc("a")
	assert.True(t, d.Focus("a"))
	assert.False(t, d.Focus("missing"))
	assert.Equal(t, "a", d.Focused())
}

func TestDocument_UnmountRemovesDescendantsAndBlurs(t *testing.T) {
	d := newDoc("grid/1", "dialog", "dialog/close", "dialogue")
	require.True(t, d.Focus("dialog/close"))

	d.Unmount("dialog")
	assert.False(t, d.Attached("dialog"))
	assert.False(t, d.Attached("dialog/close"))
	assert.True(t, d.Attached("dialogue"), "prefix match must respect the separator")
	assert.Equal(t, "", d.Focused())
}

func TestDocument_Tabbable(t *testing.T) {
	d := NewDocument()
	d.Mount("search", true)
	d.Mount("dialog", false)
	d.Mount("dialog/fav", true)
	d.Mount("dialog/close", true)

	assert.Equal(t, []string{"search", "dialog/fav", "dialog/close"}, d.Tabbable(""))
	assert.Equal(t, []string{"dialog/fav", "dialog/close"}, d.Tabbable("dialog"))
	assert.Empty(t, d.Tabbable("grid"))
}

func TestDocument_NativeTraversalWraps(t *testing.T) {
	d := newDoc("a", "b", "c")

	d.HandleDefault(KeyTab)
	assert.Equal(t, "a", d.Focused(), "tab from nothing starts at the first element")

	d.HandleDefault(KeyTab)
	d.HandleDefault(KeyTab)
	assert.Equal(t, "c", d.Focused())
	d.HandleDefault(KeyTab)
	assert.Equal(t, "a", d.Focused())

	d.HandleDefault(KeyShiftTab)
	assert.Equal(t, "c", d.Focused())

	assert.False(t, d.HandleDefault("enter"))
}

func TestDocument_TraversalFromNonTabbableElement(t *testing.T) {
	d := NewDocument()
	d.Mount("a", true)
	d.Mount("root", false)
	d.Mount("b", true)
	require.True(t, d.Focus("root"))

	d.HandleDefault(KeyTab)
	assert.Equal(t, "b", d.Focused())

	require.True(t, d.Focus("root"))
	d.HandleDefault(KeyShiftTab)
	assert.Equal(t, "a", d.Focused())
}

func TestKeyboard_ListenAndCancel(t *testing.T) {
	kb := NewKeyboard()
	var got []Key
	sub := kb.Listen(func(k Key) bool {
		got = append(got, k)
		return k == KeyEsc
	})
	assert.Equal(t, 1, kb.Listeners())

	assert.True(t, kb.Dispatch(KeyEsc))
	assert.False(t, kb.Dispatch("x"))
	assert.Equal(t, []Key{KeyEsc, "x"}, got)

	sub.Cancel()
	sub.Cancel()
	assert.Equal(t, 0, kb.Listeners())
	assert.False(t, sub.Active())
	assert.False(t, kb.Dispatch(KeyEsc))
	assert.Len(t, got, 2)
}

func TestKeyboard_ListenerMayCancelItself(t *testing.T) {
	kb := NewKeyboard()
	calls := 0
	var sub *Subscription
	sub = kb.Listen(func(Key) bool {
		calls++
		sub.Cancel()
		return true
	})
	other := 0
	kb.Listen(func(Key) bool { other++; return false })

	kb.Dispatch("a")
	kb.Dispatch("b")
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
	assert.Equal(t, 1, kb.Listeners())
}

func TestKeyboard_PressFallsBackToDefault(t *testing.T) {
	d := newDoc("a", "b")
	kb := NewKeyboard()

	assert.True(t, kb.Press(d, KeyTab))
	assert.Equal(t, "a", d.Focused())

	kb.Listen(func(k Key) bool { return k == KeyTab })
	assert.True(t, kb.Press(d, KeyTab))
	assert.Equal(t, "a", d.Focused(), "a claimed key skips native traversal")

	assert.False(t, kb.Press(d, "q"))
}

package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/focus"
)

var mickey = catalog.Character{ID: 4703, Name: "Mickey Mouse", SourceURL: "https://disney.fandom.com/wiki/Mickey_Mouse"}

type fixture struct {
	doc *focus.Document
	kb  *focus.Keyboard
	ctl *Controller
}

func newFixture(opts ...Option) fixture {
	doc := focus.NewDocument()
	doc.Mount("search", true)
	doc.Mount("card/1", true)
	doc.Mount("card/2", true)
	kb := focus.NewKeyboard()
	return fixture{doc: doc, kb: kb, ctl: New(doc, kb, opts...)}
}

func threeControls(catalog.Character) []string {
	return []string{RootID + "/a", RootID + "/b", RootID + "/c"}
}

func (f fixture) open(t *testing.T, ch catalog.Character) {
	t.Helper()
	seq := f.ctl.Open(ch)
	require.True(t, f.ctl.Mounted(seq))
}

func TestOpen_CapturesFocusAndFocusesRootAfterMount(t *testing.T) {
	f := newFixture()
	require.True(t, f.doc.Focus("card/2"))

	seq := f.ctl.Open(mickey)
	assert.True(t, f.ctl.IsOpen())
	assert.Equal(t, "card/2", f.ctl.Session().ReturnFocus)
	assert.Equal(t, "card/2", f.doc.Focused(), "focus moves only after render")
	assert.False(t, f.ctl.Session().Mounted())

	require.True(t, f.ctl.Mounted(seq))
	assert.Equal(t, RootID, f.doc.Focused())
	assert.Equal(t, []string{FavoriteID, CopyID, CloseID}, f.doc.Tabbable(RootID))
}

func TestTabWrapsAtTheEnds(t *testing.T) {
	f := newFixture(WithControls(threeControls))
	f.open(t, mickey)
	a, b, c := RootID+"/a", RootID+"/b", RootID+"/c"

	require.True(t, f.doc.Focus(c))
	f.kb.Press(f.doc, focus.KeyTab)
	assert.Equal(t, a, f.doc.Focused())

	f.kb.Press(f.doc, focus.KeyShiftTab)
	assert.Equal(t, c, f.doc.Focused())

	require.True(t, f.doc.Focus(b))
	f.kb.Press(f.doc, focus.KeyTab)
	assert.Equal(t, c, f.doc.Focused(), "inner tab uses native traversal")

	f.kb.Press(f.doc, focus.KeyShiftTab)
	assert.Equal(t, b, f.doc.Focused())
}

func TestTabNeverLeavesTheDialog(t *testing.T) {
	f := newFixture(WithControls(threeControls))
	f.open(t, mickey)

	for i := 0; i < 10; i++ {
		f.kb.Press(f.doc, focus.KeyTab)
		assert.Contains(t, f.doc.Tabbable(RootID), f.doc.Focused())
	}
	for i := 0; i < 10; i++ {
		f.kb.Press(f.doc, focus.KeyShiftTab)
		assert.Contains(t, f.doc.Tabbable(RootID), f.doc.Focused())
	}
}

func TestTabFromRoot(t *testing.T) {
	f := newFixture(WithControls(threeControls))

	f.open(t, mickey)
	f.kb.Press(f.doc, focus.KeyTab)
	assert.Equal(t, RootID+"/a", f.doc.Focused())

	f.ctl.Close()
	f.open(t, mickey)
	f.kb.Press(f.doc, focus.KeyShiftTab)
	assert.Equal(t, RootID+"/c", f.doc.Focused())
}

func TestNoControls_TabIsNoOp(t *testing.T) {
	f := newFixture(WithControls(func(catalog.Character) []string { return nil }))
	f.open(t, catalog.Character{Name: "Nobody"})

	assert.True(t, f.kb.Press(f.doc, focus.KeyTab))
	assert.Equal(t, RootID, f.doc.Focused())
	assert.True(t, f.kb.Press(f.doc, focus.KeyShiftTab))
	assert.Equal(t, RootID, f.doc.Focused())
}

func TestEscClosesAndRestoresFocus(t *testing.T) {
	f := newFixture()
	require.True(t, f.doc.Focus("card/1"))
	f.open(t, mickey)

	f.kb.Press(f.doc, focus.KeyEsc)
	assert.False(t, f.ctl.IsOpen())
	assert.Equal(t, "card/1", f.doc.Focused())
	assert.Equal(t, 0, f.kb.Listeners())
	assert.False(t, f.doc.Attached(RootID))
	assert.False(t, f.doc.Attached(CloseID))
}

func TestClose_DetachedReturnTargetLeavesFocusAlone(t *testing.T) {
	f := newFixture()
	require.True(t, f.doc.Focus("card/2"))
	f.open(t, mickey)

	f.doc.Unmount("card/2")
	f.ctl.Close()
	assert.Equal(t, "", f.doc.Focused())
	assert.Equal(t, 0, f.kb.Listeners())
}

func TestClose_WithoutCapturedFocus(t *testing.T) {
	f := newFixture()
	f.open(t, mickey)
	f.ctl.Close()
	assert.Equal(t, "", f.doc.Focused())
}

func TestClose_OnClosedControllerIsNoOp(t *testing.T) {
	closes := 0
	f := newFixture(WithOnClose(func(catalog.Character) { closes++ }))
	require.True(t, f.doc.Focus("search"))

	f.ctl.Close()
	assert.Equal(t, "search", f.doc.Focused())
	assert.Equal(t, 0, f.kb.Listeners())
	assert.Equal(t, 0, closes)

	f.open(t, mickey)
	f.ctl.Close()
	f.ctl.Close()
	assert.Equal(t, 1, closes)
	assert.Equal(t, 0, f.kb.Listeners())
}

func TestRepeatedOpenKeepsOneListener(t *testing.T) {
	closed := []string{}
	f := newFixture(WithOnClose(func(ch catalog.Character) { closed = append(closed, ch.Name) }))
	require.True(t, f.doc.Focus("card/1"))

	f.open(t, mickey)
	assert.Equal(t, 1, f.kb.Listeners())

	f.open(t, catalog.Character{ID: 2, Name: "Minnie Mouse"})
	assert.Equal(t, 1, f.kb.Listeners())
	assert.Equal(t, []string{"Mickey Mouse"}, closed)
	assert.Equal(t, "Minnie Mouse", f.ctl.Session().Character.Name)
	assert.Equal(t, "card/1", f.ctl.Session().ReturnFocus, "the first session restored focus before the second captured it")

	f.kb.Press(f.doc, focus.KeyEsc)
	assert.Equal(t, 0, f.kb.Listeners())
	assert.Equal(t, "card/1", f.doc.Focused())
}

func TestMounted_IgnoresStaleSequence(t *testing.T) {
	f := newFixture()
	first := f.ctl.Open(mickey)
	second := f.ctl.Open(catalog.Character{ID: 2, Name: "Minnie Mouse"})

	assert.False(t, f.ctl.Mounted(first))
	assert.True(t, f.ctl.Mounted(second))
	assert.False(t, f.ctl.Mounted(second), "mount happens once")

	f.ctl.Close()
	assert.False(t, f.ctl.Mounted(second))
	assert.False(t, f.doc.Attached(RootID))
}

func TestKeysBeforeMountAreNotTrapped(t *testing.T) {
	f := newFixture()
	f.ctl.Open(mickey)

	assert.True(t, f.kb.Press(f.doc, focus.KeyTab))
	assert.Equal(t, "search", f.doc.Focused(), "native traversal runs until the dialog renders")

	f.kb.Press(f.doc, focus.KeyEsc)
	assert.False(t, f.ctl.IsOpen())
}

func TestOtherKeysPassThrough(t *testing.T) {
	f := newFixture()
	f.open(t, mickey)
	assert.False(t, f.kb.Dispatch("enter"))
	assert.True(t, f.ctl.IsOpen())
}

func TestDefaultControls(t *testing.T) {
	assert.Equal(t, []string{FavoriteID, CopyID, CloseID}, DefaultControls(mickey))
	assert.Equal(t, []string{FavoriteID, CloseID}, DefaultControls(catalog.Character{Name: "x"}))
}

func TestSession_ControlsMatchMountedElements(t *testing.T) {
	f := newFixture(WithControls(threeControls))
	f.open(t, mickey)

	got := f.ctl.Session().Controls()
	assert.Equal(t, threeControls(mickey), got)
	assert.Equal(t, got, f.doc.Tabbable(RootID))

	got[0] = "mutated"
	assert.Equal(t, RootID+"/a", f.ctl.Session().Controls()[0])

	f.ctl.Close()
	assert.Nil(t, f.ctl.Session().Controls())
}

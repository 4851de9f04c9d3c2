package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"whitespace", "   ", ""},
		{"bare query", "film=Fantasia", "film=Fantasia"},
		{"question mark", "?film=Fantasia", "film=Fantasia"},
		{"full", "marquee://characters?name=mo&film=Lilo+%26+Stitch", "name=mo&film=Lilo+%26+Stitch"},
		{"full without query", "marquee://characters", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.RawQuery)
		})
	}
}

func TestParse_Rejects(t *testing.T) {
	for _, raw := range []string{
		"https://characters?film=x",
		"marquee://films?film=x",
		"marquee://%zz",
	} {
		_, err := Parse(raw)
		assert.Error(t, err, raw)
	}
}

func TestLocation_String(t *testing.T) {
	assert.Equal(t, "marquee://characters", Location{}.String())
	assert.Equal(t, "marquee://characters?film=Fantasia", Location{RawQuery: "film=Fantasia"}.String())

	loc, err := Parse(Location{RawQuery: "name=a%26b"}.String())
	require.NoError(t, err)
	assert.Equal(t, "name=a%26b", loc.RawQuery)
}

func TestHistory_ReplaceDoesNotAddEntries(t *testing.T) {
	h := NewHistory(Location{RawQuery: "film=A"})
	h.Replace("film=B")
	h.Replace("?film=C")

	assert.Equal(t, 1, h.Len())
	assert.Equal(t, "film=C", h.Query())
	assert.False(t, h.Back())
}

func TestHistory_PushBackForward(t *testing.T) {
	h := NewHistory(Location{})
	h.Push(Location{RawQuery: "film=A"})
	h.Push(Location{RawQuery: "film=B"})
	require.Equal(t, 3, h.Len())

	require.True(t, h.Back())
	assert.Equal(t, "film=A", h.Query())
	require.True(t, h.Back())
	assert.Equal(t, "", h.Query())
	assert.False(t, h.CanBack())
	assert.False(t, h.Back())

	require.True(t, h.Forward())
	require.True(t, h.Forward())
	assert.Equal(t, "film=B", h.Query())
	assert.False(t, h.CanForward())
	assert.False(t, h.Forward())
}

func TestHistory_PushDropsForwardEntries(t *testing.T) {
	h := NewHistory(Location{})
	h.Push(Location{RawQuery: "film=A"})
	h.Push(Location{RawQuery: "film=B"})
	h.Back()
	h.Back()

	h.Push(Location{RawQuery: "film=C"})
	assert.Equal(t, 2, h.Len())
	assert.False(t, h.CanForward())
	assert.Equal(t, "film=C", h.Query())
}

func TestHistory_ZeroValue(t *testing.T) {
	var h History
	assert.Equal(t, "", h.Query())
	h.Replace("name=x")
	assert.Equal(t, "marquee://characters?name=x", h.Current().String())
}

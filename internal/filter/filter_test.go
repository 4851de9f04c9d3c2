package filter

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/marquee/internal/catalog"
)

func names(chars []catalog.Character) []string {
	out := make([]string, 0, len(chars))
	for _, c := range chars {
		out = append(out, c.Name)
	}
	return out
}

func sampleDataset() []catalog.Character {
	return []catalog.Character{
		{ID: 1, Name: "Mickey", Films: []string{"Fantasia"}, TVShows: []string{"House of Mouse"}},
		{ID: 2, Name: "Minnie", Films: []string{"Fantasia"}, VideoGames: []string{"Kingdom Hearts"}},
		{ID: 3, Name: "Stitch", Films: []string{"Lilo & Stitch"}, ParkAttractions: []string{"Stitch's Great Escape!"}},
		{ID: 4, Name: "Moana"},
		{ID: 5, Name: "Mowgli", Films: nil, TVShows: []string{}},
		{ID: 6, Name: "Elsa", Films: []string{"Frozen"}, VideoGames: []string{"Kingdom Hearts"}},
	}
}

func TestApply_FilmScenario(t *testing.T) {
	dataset := []catalog.Character{
		{Name: "Mickey", Films: []string{"Fantasia"}},
		{Name: "Minnie", Films: []string{"Fantasia"}},
		{Name: "Stitch", Films: []string{"Lilo & Stitch"}},
	}
	got := Apply(Criteria{Film: "Fantasia"}, dataset)
	assert.Equal(t, []string{"Mickey", "Minnie"}, names(got))
}

func TestApply_NameIsCaseInsensitiveSubstring(t *testing.T) {
	dataset := []catalog.Character{{Name: "Moana"}, {Name: "Mowgli"}, {Name: "Elsa"}}
	got := Apply(Criteria{Name: "mo"}, dataset)
	assert.Equal(t, []string{"Moana", "Mowgli"}, names(got))

	got = Apply(Criteria{Name: "ELS"}, dataset)
	assert.Equal(t, []string{"Elsa"}, names(got))
}

func TestApply_NameFoldsUnicode(t *testing.T) {
	dataset := []catalog.Character{{Name: "Straße Kid"}, {Name: "ÉLISE"}}
	assert.Equal(t, []string{"ÉLISE"}, names(Apply(Criteria{Name: "élise"}, dataset)))
	assert.Equal(t, []string{"Straße Kid"}, names(Apply(Criteria{Name: "STRASSE"}, dataset)))
}

func TestApply_CategoricalIsExactAndCaseSensitive(t *testing.T) {
	dataset := sampleDataset()
	assert.Empty(t, Apply(Criteria{Film: "fantasia"}, dataset))
	assert.Empty(t, Apply(Criteria{Film: "Fanta"}, dataset))
	assert.Equal(t, []string{"Minnie", "Elsa"}, names(Apply(Criteria{VideoGame: "Kingdom Hearts"}, dataset)))
}

func TestApply_AllFieldsAreAnded(t *testing.T) {
	dataset := sampleDataset()
	got := Apply(Criteria{Film: "Fantasia", VideoGame: "Kingdom Hearts"}, dataset)
	assert.Equal(t, []string{"Minnie"}, names(got))

	got = Apply(Criteria{Name: "m", Film: "Fantasia", TVShow: "House of Mouse"}, dataset)
	assert.Equal(t, []string{"Mickey"}, names(got))
}

func TestApply_MissingListsNeverMatchConstraints(t *testing.T) {
	dataset := sampleDataset()
	for _, d := range Dimensions {
		var c Criteria
		d.Set(&c, "anything")
		assert.Empty(t, Apply(c, dataset), d.Param)
	}
}

func TestApply_EmptyCriteriaReturnsDataset(t *testing.T) {
	dataset := sampleDataset()
	got := Apply(Criteria{}, dataset)
	assert.Equal(t, dataset, got)

	got[0].Name = "changed"
	assert.Equal(t, "Mickey", dataset[0].Name, "result must not alias the input")

	assert.Empty(t, Apply(Criteria{Name: "x"}, nil))
	assert.NotNil(t, Apply(Criteria{}, nil))
}

func TestApply_SoundAndOrderPreserving(t *testing.T) {
	dataset := sampleDataset()
	options := Options(dataset)
	rng := rand.New(rand.NewSource(7))

	pick := func(values []string) string {
		if len(values) == 0 || rng.Intn(3) == 0 {
			return ""
		}
		return values[rng.Intn(len(values))]
	}

	for i := 0; i < 200; i++ {
		c := Criteria{Name: []string{"", "m", "i", "st", "zz"}[rng.Intn(5)]}
		for _, d := range Dimensions {
			d.Set(&c, pick(options[d.Param]))
		}

		got := Apply(c, dataset)
		last := -1
		for _, ch := range got {
			idx := slices.IndexFunc(dataset, func(x catalog.Character) bool { return x.ID == ch.ID })
			require.GreaterOrEqual(t, idx, 0, "result element not in dataset")
			require.Greater(t, idx, last, "result reordered for %+v", c)
			last = idx

			require.Contains(t, strings.ToLower(ch.Name), strings.ToLower(c.Name))
			for _, d := range Dimensions {
				if v := d.Get(c); v != "" {
					require.Contains(t, d.Members(ch), v)
				}
			}
		}
	}
}

func TestDecode_IgnoresUnknownParams(t *testing.T) {
	got := Decode("?film=Fantasia&unknownParam=x")
	assert.Equal(t, Criteria{Film: "Fantasia"}, got)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Criteria
	}{
		{"empty", "", Criteria{}},
		{"question mark only", "?", Criteria{}},
		{"no prefix", "name=mo", Criteria{Name: "mo"}},
		{"all fields", "name=mi&film=Fantasia&tvShow=House+of+Mouse&videoGame=Kingdom%20Hearts&parkAttraction=Jungle%20Cruise",
			Criteria{Name: "mi", Film: "Fantasia", TVShow: "House of Mouse", VideoGame: "Kingdom Hearts", ParkAttraction: "Jungle Cruise"}},
		{"reserved chars", "film=Lilo+%26+Stitch", Criteria{Film: "Lilo & Stitch"}},
		{"first value wins", "film=A&film=B", Criteria{Film: "A"}},
		{"empty value", "film=&name=x", Criteria{Name: "x"}},
		{"malformed pair dropped", "film=%zz&name=ok", Criteria{Name: "ok"}},
		{"param names are case sensitive", "Film=Fantasia", Criteria{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.raw))
		})
	}
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "", Encode(Criteria{}))
	assert.Equal(t, "film=Fantasia", Encode(Criteria{Film: "Fantasia"}))
	assert.Equal(t, "film=Lilo+%26+Stitch&name=st", Encode(Criteria{Name: "st", Film: "Lilo & Stitch"}))
	assert.Equal(t,
		Encode(Criteria{VideoGame: "a", Name: "b"}),
		Encode(Criteria{Name: "b", VideoGame: "a"}),
	)
}

func TestCodec_RoundTrip(t *testing.T) {
	alphabet := []rune("aZ09 &=?#%+/;:,.-_~é漢'\"<>")
	rng := rand.New(rand.NewSource(42))
	randomValue := func() string {
		if rng.Intn(4) == 0 {
			return ""
		}
		n := 1 + rng.Intn(8)
		r := make([]rune, n)
		for i := range r {
			r[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return string(r)
	}

	for i := 0; i < 500; i++ {
		c := Criteria{Name: randomValue()}
		for _, d := range Dimensions {
			d.Set(&c, randomValue())
		}
		encoded := Encode(c)
		decoded := Decode(encoded)
		require.True(t, decoded.Equal(c), "round trip of %+v via %q gave %+v", c, encoded, decoded)
		require.True(t, Decode("?"+encoded).Equal(c))
	}
}

func TestCriteria_ActiveAndEmpty(t *testing.T) {
	assert.True(t, Criteria{}.IsEmpty())
	assert.Equal(t, 0, Criteria{}.Active())
	c := Criteria{Name: "a", Film: "b", ParkAttraction: "c"}
	assert.False(t, c.IsEmpty())
	assert.Equal(t, 3, c.Active())
}

func TestDimensionByParam(t *testing.T) {
	d, ok := DimensionByParam("tvShow")
	require.True(t, ok)
	assert.Equal(t, "TV Show", d.Label)

	_, ok = DimensionByParam("name")
	assert.False(t, ok)
}

func TestOptions_DistinctSortedNonEmpty(t *testing.T) {
	dataset := []catalog.Character{
		{Films: []string{"Zootopia", "fantasia", ""}},
		{Films: []string{"Aladdin", "Zootopia", "  "}},
		{Films: nil},
	}
	got := Options(dataset)
	assert.Equal(t, []string{"Aladdin", "fantasia", "Zootopia"}, got["film"])
	assert.Empty(t, got["tvShow"])
	assert.Len(t, got, len(Dimensions))
}

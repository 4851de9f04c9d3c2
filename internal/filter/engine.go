package filter

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/five82/marquee/internal/catalog"
)

// Apply returns the characters that satisfy every active field of c, in
// their original order. The input slice is never modified.
func Apply(c Criteria, dataset []catalog.Character) []catalog.Character {
	out := make([]catalog.Character, 0, len(dataset))
	if c.IsEmpty() {
		return append(out, dataset...)
	}
	needle := fold(c.Name)
	for _, ch := range dataset {
		if Matches(c, needle, ch) {
			out = append(out, ch)
		}
	}
	return out
}

// Matches evaluates c against one character. foldedName must be the case
// folded form of c.Name; Apply computes it once per call.
func Matches(c Criteria, foldedName string, ch catalog.Character) bool {
	if foldedName != "" && !strings.Contains(fold(ch.Name), foldedName) {
		return false
	}
	for _, d := range Dimensions {
		want := d.Get(c)
		if want == "" {
			continue
		}
		if !slices.Contains(d.Members(ch), want) {
			return false
		}
	}
	return true
}

// fold returns the Unicode case folded form of s. A fresh Caser per call
// keeps Apply safe for concurrent use.
func fold(s string) string {
	if s == "" {
		return ""
	}
	return cases.Fold().String(s)
}

// Options returns, for each dimension parameter, the distinct non-empty
// values present in the dataset in collated order. These are the choices
// offered by the filter bar.
func Options(dataset []catalog.Character) map[string][]string {
	coll := collate.New(language.English)
	out := make(map[string][]string, len(Dimensions))
	for _, d := range Dimensions {
		seen := map[string]struct{}{}
		values := []string{}
		for _, ch := range dataset {
			for _, v := range d.Members(ch) {
				if strings.TrimSpace(v) == "" {
					continue
				}
				if _, ok := seen[v]; ok {
					continue
				}
				seen[v] = struct{}{}
				values = append(values, v)
			}
		}
		coll.SortStrings(values)
		out[d.Param] = values
	}
	return out
}

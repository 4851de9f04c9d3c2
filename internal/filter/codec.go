package filter

import (
	"net/url"
	"strings"
)

// Decode reads criteria from a raw query string, with or without the leading
// "?". Unknown parameters are ignored, absent ones mean "no constraint", and
// a pair with a malformed escape is dropped without affecting the others.
// When a parameter repeats, the first value wins.
func Decode(rawQuery string) Criteria {
	values := parseQuery(strings.TrimPrefix(rawQuery, "?"))

	var c Criteria
	c.Name = first(values, NameParam)
	for _, d := range Dimensions {
		d.Set(&c, first(values, d.Param))
	}
	return c
}

// Encode writes criteria as a query string without the leading "?". Empty
// fields are omitted and the parameter order is stable, so equal criteria
// always encode to the same string.
func Encode(c Criteria) string {
	values := url.Values{}
	if c.Name != "" {
		values.Set(NameParam, c.Name)
	}
	for _, d := range Dimensions {
		if v := d.Get(c); v != "" {
			values.Set(d.Param, v)
		}
	}
	return values.Encode()
}

// parseQuery is url.ParseQuery minus its error: ParseQuery already skips a
// bad pair and keeps going, which is exactly the tolerance wanted here.
func parseQuery(raw string) url.Values {
	values, _ := url.ParseQuery(raw)
	if values == nil {
		return url.Values{}
	}
	return values
}

func first(values url.Values, key string) string {
	vs := values[key]
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// CharacterListResponse mirrors the payload returned by /character.
type CharacterListResponse struct {
	Info PageInfo        `json:"info"`
	Data json.RawMessage `json:"data"`
}

// PageInfo carries the paging envelope of a list response.
type PageInfo struct {
	Count        int    `json:"count"`
	TotalPages   int    `json:"totalPages"`
	PreviousPage string `json:"previousPage"`
	NextPage     string `json:"nextPage"`
}

// Character describes one catalog entry in transport-friendly form.
type Character struct {
	ID              int      `json:"_id"`
	Name            string   `json:"name"`
	ImageURL        string   `json:"imageUrl"`
	SourceURL       string   `json:"sourceUrl"`
	Films           []string `json:"films"`
	ShortFilms      []string `json:"shortFilms"`
	TVShows         []string `json:"tvShows"`
	VideoGames      []string `json:"videoGames"`
	ParkAttractions []string `json:"parkAttractions"`
	Allies          []string `json:"allies"`
	Enemies         []string `json:"enemies"`
}

// Key returns the identifier used to reference the character outside the
// catalog, e.g. in the favorites record.
func (c Character) Key() string {
	return strconv.Itoa(c.ID)
}

// ErrMalformed reports a payload that decoded but cannot be a character list.
var ErrMalformed = errors.New("malformed catalog payload")

// Characters decodes Data. The API returns a bare object instead of an array
// when exactly one character matches, so both shapes are accepted.
func (r CharacterListResponse) Characters() ([]Character, error) {
	raw := bytes.TrimSpace(r.Data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, fmt.Errorf("%w: missing data", ErrMalformed)
	}
	switch raw[0] {
	case '[':
		var out []Character
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return out, nil
	case '{':
		var one Character
		if err := json.Unmarshal(raw, &one); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return []Character{one}, nil
	default:
		return nil, fmt.Errorf("%w: unexpected data type", ErrMalformed)
	}
}

// LoadError is the single failure kind of the catalog: transport errors,
// non-2xx responses and malformed payloads all surface as one.
type LoadError struct {
	Op     string
	Status int
	Err    error
}

func (e *LoadError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("catalog: %v", e.Err)
	}
	return fmt.Sprintf("catalog %s: %v", e.Op, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

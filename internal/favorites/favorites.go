// Package favorites persists the set of favorite character identifiers.
//
// The set lives in one storage slot as a JSON array of strings. A slot that
// cannot be read or parsed is treated as an empty set: favorites are an
// enhancement and a corrupt record must never stop the program. Write
// failures, on the other hand, are returned to the caller.
package favorites

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/five82/marquee/internal/storage"
)

// SlotKey is the storage slot holding the favorites record.
const SlotKey = "disney_favorites"

// Store is the favorites contract consumed by the rest of marquee.
type Store interface {
	List() Set
	IsFavorite(id string) bool
	Add(id string) error
	Remove(id string) error
	Toggle(id string) (bool, error)
}

// ErrCorrupt marks a favorites record that exists but is not a JSON array of
// strings. It is only ever logged.
var ErrCorrupt = errors.New("favorites record is corrupt")

// SlotStore implements Store on top of a storage slot. Every call reads the
// slot afresh and every mutation writes the full set before returning.
type SlotStore struct {
	slots  storage.Slots
	logger *slog.Logger
}

var _ Store = (*SlotStore)(nil)

// New returns a SlotStore. A nil logger discards read-failure reports.
func New(slots storage.Slots, logger *slog.Logger) *SlotStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SlotStore{slots: slots, logger: logger}
}

// List returns the persisted set, or an empty set when it cannot be read.
func (s *SlotStore) List() Set {
	set, err := s.read()
	if err != nil {
		s.logger.Warn("favorites unreadable, using empty set", "slot", SlotKey, "error", err)
		return Set{}
	}
	return set
}

// IsFavorite reports whether id is in the persisted set.
func (s *SlotStore) IsFavorite(id string) bool {
	return s.List().Has(id)
}

// Add inserts id. Adding a present id is a successful no-op.
func (s *SlotStore) Add(id string) error {
	set := s.List()
	if set.Has(id) {
		return nil
	}
	return s.write(set.with(id))
}

// Remove deletes id. Removing an absent id is a successful no-op that still
// rewrites the record.
func (s *SlotStore) Remove(id string) error {
	return s.write(s.List().without(id))
}

// Toggle flips the membership of id and returns the new membership.
func (s *SlotStore) Toggle(id string) (bool, error) {
	set := s.List()
	if set.Has(id) {
		if err := s.write(set.without(id)); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := s.write(set.with(id)); err != nil {
		return false, err
	}
	return true, nil
}

// Clear removes the favorites record entirely.
func (s *SlotStore) Clear() error {
	if err := s.slots.Remove(SlotKey); err != nil {
		return fmt.Errorf("clear favorites: %w", err)
	}
	return nil
}

func (s *SlotStore) read() (Set, error) {
	raw, ok, err := s.slots.Get(SlotKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Set{}, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return NewSet(ids...), nil
}

func (s *SlotStore) write(set Set) error {
	data, err := json.Marshal(set.IDs())
	if err != nil {
		return fmt.Errorf("marshal favorites: %w", err)
	}
	if err := s.slots.Set(SlotKey, string(data)); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}

// Set is a deduplicated, unordered collection of identifiers.
type Set map[string]struct{}

// NewSet builds a Set from ids.
func NewSet(ids ...string) Set {
	set := make(Set, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Has reports membership.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s)
}

// IDs returns the members sorted, never nil.
func (s Set) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s Set) with(id string) Set {
	out := make(Set, len(s)+1)
	for k := range s {
		out[k] = struct{}{}
	}
	out[id] = struct{}{}
	return out
}

func (s Set) without(id string) Set {
	out := make(Set, len(s))
	for k := range s {
		if k != id {
			out[k] = struct{}{}
		}
	}
	return out
}

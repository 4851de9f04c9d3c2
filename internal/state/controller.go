package state

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/favorites"
	"github.com/five82/marquee/internal/filter"
	"github.com/five82/marquee/internal/location"
)

// Status is the load state of the catalog.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Snapshot is a copy of the controller state for rendering.
type Snapshot struct {
	Status        Status
	Criteria      filter.Criteria
	Visible       []catalog.Character
	Total         int
	Favorites     favorites.Set
	FavoritesOnly bool
	Err           error
	LoadedAt      time.Time
	Location      location.Location
}

// Clearer is implemented by favorites stores that can drop the whole set.
type Clearer interface {
	Clear() error
}

// Controller owns the dataset, the active criteria, the favorites cache and
// the load status. Criteria changes are mirrored into the location history.
type Controller struct {
	mu sync.RWMutex

	history *location.History
	favs    favorites.Store
	logger  *slog.Logger

	status        Status
	dataset       []catalog.Character
	criteria      filter.Criteria
	visible       []catalog.Character
	favSet        favorites.Set
	favoritesOnly bool
	err           error
	loadedAt      time.Time
}

// New returns a controller in the loading state. A nil logger discards.
func New(history *location.History, favs favorites.Store, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if history == nil {
		history = location.NewHistory(location.Location{})
	}
	return &Controller{
		history: history,
		favs:    favs,
		logger:  logger,
		favSet:  favorites.Set{},
	}
}

// Start resets to loading, restores criteria from the current location and
// reads the favorites set.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.status = StatusLoading
	c.err = nil
	c.dataset = nil
	c.visible = nil
	c.criteria = filter.Decode(c.history.Query())
	c.favSet = c.favs.List()
	c.logger.Debug("controller started", "criteria", filter.Encode(c.criteria), "favorites", c.favSet.Len())
}

// Loaded installs the dataset and makes the controller ready.
func (c *Controller) Loaded(chars []catalog.Character) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dataset = slices.Clone(chars)
	c.status = StatusReady
	c.err = nil
	c.loadedAt = time.Now()
	c.recompute()
	c.logger.Info("catalog loaded", "characters", len(c.dataset), "visible", len(c.visible))
}

// LoadFailed records a fatal load error. No partial dataset is kept.
func (c *Controller) LoadFailed(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.status = StatusFailed
	c.err = err
	c.dataset = nil
	c.visible = nil
	c.logger.Error("catalog load failed", "error", err)
}

// SetCriteria applies new criteria and replaces the current location query.
// It is ignored unless the controller is ready and reports whether anything
// was applied.
func (c *Controller) SetCriteria(next filter.Criteria) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != StatusReady {
		return false
	}
	c.criteria = next
	c.history.Replace(filter.Encode(next))
	c.recompute()
	return true
}

// Navigate re-reads criteria from the current location, after the history
// cursor moved or a location was opened.
func (c *Controller) Navigate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.criteria = filter.Decode(c.history.Query())
	if c.status == StatusReady {
		c.recompute()
	}
}

// ToggleFavorite flips id in the favorites store and refreshes the cache. It
// is ignored unless ready. On a write error the cache keeps the persisted
// membership.
func (c *Controller) ToggleFavorite(id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != StatusReady {
		return c.favSet.Has(id), nil
	}
	now, err := c.favs.Toggle(id)
	c.favSet = c.favs.List()
	if err != nil {
		return now, fmt.Errorf("toggle favorite %s: %w", id, err)
	}
	if c.favoritesOnly {
		c.recompute()
	}
	return now, nil
}

// ClearFavorites drops every favorite when the store supports it.
func (c *Controller) ClearFavorites() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cl, ok := c.favs.(Clearer)
	if !ok {
		return fmt.Errorf("clear favorites: not supported by %T", c.favs)
	}
	if err := cl.Clear(); err != nil {
		return err
	}
	c.favSet = c.favs.List()
	c.recompute()
	return nil
}

// SetFavoritesOnly limits the visible list to favorites. The flag is a view
// setting and is not written to the location.
func (c *Controller) SetFavoritesOnly(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.favoritesOnly = on
	c.recompute()
}

// Status returns the load status.
func (c *Controller) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// Criteria returns the active criteria.
func (c *Controller) Criteria() filter.Criteria {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.criteria
}

// Visible returns a copy of the filtered list.
func (c *Controller) Visible() []catalog.Character {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.visible)
}

// IsFavorite answers from the cached favorites set.
func (c *Controller) IsFavorite(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.favSet.Has(id)
}

// Options returns the select choices for the loaded dataset.
func (c *Controller) Options() map[string][]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return filter.Options(c.dataset)
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	favs := make(favorites.Set, len(c.favSet))
	for id := range c.favSet {
		favs[id] = struct{}{}
	}
	return Snapshot{
		Status:        c.status,
		Criteria:      c.criteria,
		Visible:       slices.Clone(c.visible),
		Total:         len(c.dataset),
		Favorites:     favs,
		FavoritesOnly: c.favoritesOnly,
		Err:           c.err,
		LoadedAt:      c.loadedAt,
		Location:      c.history.Current(),
	}
}

// recompute derives the visible list. Callers hold the write lock.
func (c *Controller) recompute() {
	visible := filter.Apply(c.criteria, c.dataset)
	if c.favoritesOnly {
		visible = slices.DeleteFunc(visible, func(ch catalog.Character) bool {
			return !c.favSet.Has(ch.Key())
		})
	}
	c.visible = visible
}

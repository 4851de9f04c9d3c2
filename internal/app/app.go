package app

import (
	"context"
	"fmt"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/favorites"
	"github.com/five82/marquee/internal/location"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
	"github.com/five82/marquee/internal/storage"
	"github.com/five82/marquee/internal/ui"
)

// Options configure the marquee application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/marquee/prefs.toml
	Location   string // initial location; empty opens the unfiltered directory
}

// Run boots the marquee TUI until the user quits or the context is
// cancelled. It returns the location the user ended on.
func Run(ctx context.Context, opts Options) (location.Location, error) {
	start, err := location.Parse(opts.Location)
	if err != nil {
		return location.Location{}, err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return start, fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return start, err
	}
	defer func() { _ = closeLog() }()

	slots, closeSlots, err := storage.Open(cfg.Storage, cfg.DataDir)
	if err != nil {
		return start, fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := closeSlots(); err != nil {
			logger.Warn("close storage", "error", err)
		}
	}()

	client, err := catalog.NewClient(cfg.APIBase)
	if err != nil {
		return start, fmt.Errorf("init catalog client: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("prefs unreadable, using defaults", "error", err)
	}

	history := location.NewHistory(start)
	favs := favorites.New(slots, logger.With("component", "favorites"))
	ctl := state.New(history, favs, logger.With("component", "state"))

	logger.Info("marquee starting",
		"api_base", cfg.APIBase,
		"storage", cfg.Storage,
		"location", start.String(),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	err = ui.Run(ui.Options{
		Context:      ctx,
		Source:       client,
		Query:        catalog.PageQuery{Page: cfg.Page, PageSize: cfg.PageSize},
		FetchTimeout: cfg.FetchTimeout,
		Controller:   ctl,
		History:      history,
		Logger:       logger.With("component", "ui"),
		LogFile:      cfg.LogFile,
		Prefs:        userPrefs,
		PrefsPath:    opts.PrefsPath,
	})
	final := history.Current()
	logger.Info("marquee stopped", "location", final.String())
	if err != nil && ctx.Err() == nil {
		return final, fmt.Errorf("run ui: %w", err)
	}
	return final, nil
}

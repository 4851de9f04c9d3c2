// Package app is the composition root for marquee.
//
// # Overview
//
// Run wires configuration, logging, storage, the catalog client, the state
// controller and the UI, then blocks until the user quits.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> location.Parse()    Initial location from flag or argument
//	       ├─────> config.Load()       TOML file, then MARQUEE_* env overrides
//	       ├─────> newLogger()         slog text file with a session id
//	       ├─────> storage.Open()      file or sqlite slot store
//	       ├─────> favorites.New()     Favorites record on top of the slots
//	       ├─────> catalog.NewClient() HTTP client for the character API
//	       ├─────> state.New()         Controller over history and favorites
//	       └─────> ui.Run()            Start TUI (blocks)
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Initial location with a foreign scheme or host
//   - Invalid configuration file or environment override
//   - Log file or storage directory that cannot be created
//
// Everything after startup is handled inside the UI: a failed catalog fetch
// shows the error screen and favorite write failures are flashed and logged.
//
// # Configuration
//
// The Options struct allows callers to customize:
//
//   - ConfigPath: config file path (default ~/.config/marquee/config.toml)
//   - PrefsPath: preferences file path (default ~/.config/marquee/prefs.toml)
//   - Location: initial location, e.g. "marquee://characters?film=Fantasia"
package app

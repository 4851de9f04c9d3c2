// Package state holds the application state of the marquee character browser.
//
// # Overview
//
// Controller is the single owner of the loaded dataset, the active filter
// criteria, the cached favorites set and the catalog load status. The UI
// feeds it events (load finished, criteria edited, favorite toggled, history
// moved) and renders from Snapshot.
//
// # Load Status
//
//	Loading ──Loaded──→ Ready
//	   │
//	   └──LoadFailed──→ Failed
//
// Failed is terminal for the session: there is no retry and no partial
// dataset. Criteria edits and favorite toggles are ignored until Ready.
//
// # Location Sync
//
// The location query is the persisted form of the criteria:
//
//   - Start and Navigate decode criteria from the current location
//   - SetCriteria encodes them back with History.Replace, so filtering never
//     adds history entries
//
// The favorites-only view flag is deliberately absent from the location.
//
// # Concurrency
//
// Methods take a sync.RWMutex, as bubbletea commands may read snapshots from
// other goroutines. Visible and Snapshot return copies.
package state

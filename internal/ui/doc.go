// Package ui provides the terminal interface for marquee, a browser for the
// Disney character catalog.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea model. Catalog state lives in a
// state.Controller; the model renders it and turns key presses into
// controller calls. Focus is modeled as a focus.Document of element ids:
// the filter fields ("filter/name", "filter/film", ...) come first, then one
// "card/<id>" element per visible character, then the detail dialog's
// controls while it is open.
//
// # Package Structure
//
//   - app.go: Model, Options, Init/Update/View and Run
//   - input.go: Key routing and the actions keys trigger
//   - filterbar.go: Name input and the four select fields
//   - grid.go: Card list, cursor and scrolling
//   - detail.go: Detail dialog rendering and mouse handling
//   - metadata.go: Terminal title and page metadata per view
//   - header.go: Header, command bar, loading and failure screens
//   - logs.go: Log panel over the application log file
//   - prompt.go: Location prompt
//   - help.go: Help overlay
//   - status.go: Transient footer messages
//   - render.go: Background-safe rendering helpers and titled boxes
//
// # Event Flow
//
//  1. Init starts the spinner and the catalog fetch.
//  2. catalogLoadedMsg makes the controller ready and mounts the cards.
//  3. Filter edits are applied in the same Update that reads the key; the
//     controller replaces the location query. FiltersChangedMsg does the
//     same for criteria set from outside.
//  4. Favorite toggles from the grid or the dialog arrive as
//     FavoriteToggledMsg.
//  5. While the dialog is open its keyboard listener sees keys first, so esc
//     closes it and tab stays inside.
//
// # Usage Example
//
//	err := ui.Run(ui.Options{
//		Context:    ctx,
//		Source:     client,
//		Controller: ctl,
//		History:    history,
//		Logger:     logger,
//	})
package ui

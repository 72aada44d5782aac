// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for batch metric fetches:
//  1. [TracklistView] : Review the queries loaded from the tracklist
//  2. [ConfirmView] : Confirm the fetch operation
//  3. [FetchView] : Monitor real-time progress updates
//  4. [ResultView] : Browse per-track results and hit counts
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via the Msg union type.
// Progress updates flow through a channel from the metrics.Fetcher, providing non-blocking status reporting during fetches.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui

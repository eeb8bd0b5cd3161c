// Package ui implements the Bubble Tea terminal interface for Shuttle.
//
// # Overview
//
// The UI is four tabs (Prompts, Datasets, Evaluators, API Keys), each
// rendering one paginated collection window. Every tab owns a
// collection.Controller (the window state machine), a collection.Sentinel
// (scroll-driven paging), and a bubbles viewport. The UI layer never talks
// to the gateway for reads; it reads controller snapshots and re-renders
// when a change notification arrives on the shared channel.
//
// # Data Flow
//
//	keystroke -> SetParams/LoadMore/ApplyMutation -> controller
//	controller OnChange -> changes channel -> collectionChangedMsg -> re-render
//
// Filter keystrokes go straight into SetParams; the controller's debounce
// collapses a typing burst into one fetch. Scroll movements feed the
// sentinel, whose only job is geometry; the controller's idle guard
// provides the backpressure.
//
// # Mutations
//
// Creates are optimistic: a placeholder record with a local uuid is
// inserted at the head of the window immediately, then swapped for the
// gateway's echo (or rolled back with a notice on failure). Renames and
// deletes apply after the gateway confirms. All three repair the window via
// ApplyMutation instead of refetching, so the list neither flickers nor
// loses scroll position.
//
// # Error Display
//
// A failed fetch leaves the loaded rows on screen and surfaces the error in
// the footer; recovery is an explicit refresh (R) or any filter/sort
// change. Mutation failures surface as transient footer notices.
//
// # Views and Mounting
//
// Tabs mount lazily: a controller issues no fetch until its tab is first
// visited. Selection is preserved across window changes by record id, the
// same way a refresh preserves it, so a background page landing never
// yanks the cursor.
package ui

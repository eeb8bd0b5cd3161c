// Package app wires Shuttle together: configuration, the Loom gateway
// client, one collection controller per resource, and the Bubble Tea UI.
//
// # Startup Sequence
//
//  1. Load config (gateway address, page size, debounce, scroll threshold)
//  2. Load user preferences (theme, last active view)
//  3. Build the HTTP client for the Loom gateway
//  4. Build one collection.Controller per resource, all reporting state
//     changes on a single buffered channel the UI listens to
//  5. Run the Bubble Tea program until quit or context cancellation
//
// Controllers fetch lazily: nothing touches the network until the UI
// mounts a view and issues its first SetParams. There is no background
// poller; all traffic is demand-driven by scrolling, filtering, and
// explicit refresh.
package app

// Package collection keeps a locally held, ordered window over a
// cursor-paginated remote collection consistent under three independently
// triggered forces: scroll-driven "load more" requests, debounced
// filter/sort resets, and local cache edits from create/delete/rename
// mutations performed elsewhere in the application.
//
// # Overview
//
// Every Shuttle view (prompts, datasets, evaluators, API keys) is the same
// shape: an ordered list of records fetched page by page from the Loom
// gateway, filtered and sorted server-side, extended as the user scrolls,
// and patched in place when the user creates or deletes a record. Done
// naively that produces duplicate rows, stale cursors, flicker, or lost
// edits. This package implements the pattern once, as an explicit state
// machine with request sequencing, so every view gets the same guarantees.
//
// # Components
//
//   - page.go: the shared vocabulary (Node, Edge, PageInfo, Params) and the
//     Gateway interface the transport layer implements.
//   - controller.go: Controller, the single owner of the window state and
//     the only component the UI talks to.
//   - scheduler.go: debounce and request sequencing for fetches.
//   - reconcile.go: Insert/Remove/Update cache mutations.
//   - sentinel.go: the scroll-position guard that drives LoadMore.
//
// # State Machine
//
// A controller is always in exactly one of four states:
//
//   - idle: no fetch outstanding; Edges reflects the last successful result
//   - loading: a reset fetch is outstanding (or pending its debounce)
//   - loading-more: an append fetch is outstanding
//   - error: the last live fetch failed; Edges retains prior data
//
// SetParams always moves toward loading and supersedes any outstanding
// fetch. LoadMore is accepted only from idle with HasNextPage true and is
// silently ignored otherwise; that refusal is the backpressure contract the
// scroll sentinel relies on. A resolved fetch moves back to idle, or to
// error when it failed while still live.
//
// # Request Sequencing
//
// Every dispatched fetch is stamped with a monotonically increasing
// sequence number. A response (success or failure) whose stamp no longer
// matches the newest issued stamp is dropped without effect. This is the
// package's entire cancellation story: superseded requests are allowed to
// complete on the wire and are ignored locally, which costs an unused
// round-trip but keeps the transport free of abort plumbing. Resets do not
// wait for earlier resets (the newest always wins); an append is never in
// flight alongside anything else because it can only start from idle.
//
// # Window Invariants
//
// After every transition:
//
//   - no two edges share a node id, even if the gateway returns an
//     overlapping page
//   - edge order is exactly the order the gateway returned across all
//     accumulated pages; the client never re-sorts
//   - PageInfo always describes the last successfully fetched page, so
//     pagination resumes correctly no matter what local mutations did to
//     the visible list
//   - a failed fetch never clears previously loaded edges
//
// # Known Consistency Gap
//
// ApplyMutation wins immediately over any in-flight fetch's eventual effect
// on the same node, but a reset response replaces the whole window. If a
// record is deleted locally while a reset is in flight, and the gateway
// produced that reset page before the deletion propagated remotely, the
// deleted record reappears when the reset lands. The window is repaired on
// the next fetch. This mirrors the behavior of the platform web client and
// is deliberately left visible rather than papered over with heuristics.
package collection

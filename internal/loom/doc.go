// Package loom provides an HTTP client for the Loom platform gateway.
//
// # Overview
//
// The gateway exposes one cursor-paginated listing endpoint per resource
// (prompts, datasets, evaluators, API keys) plus create, rename, and delete
// mutations. This package handles HTTP communication, JSON serialization,
// and the typed representation of records; it deliberately knows nothing
// about windows, debouncing, or sequencing; that is the collection
// package's job, reached through the Gateway binding returned by
// Client.Collection.
//
// # Endpoints
//
//	GET    /api/v1/{resource}        one page: cursor, limit, q, sort, order
//	POST   /api/v1/{resource}        create, echoes the created record
//	PATCH  /api/v1/{resource}/{id}   rename, echoes the updated record
//	DELETE /api/v1/{resource}/{id}   delete
//
// List responses carry the connection envelope the platform uses
// everywhere:
//
//	{"edges": [{"cursor": "...", "node": {...}}],
//	 "pageInfo": {"endCursor": "...", "hasNextPage": true}}
//
// Cursors are opaque gateway tokens; the client hands them back verbatim
// and never inspects them.
//
// # Request Handling
//
// All requests use the caller's context, set Accept and User-Agent headers,
// and run under a 5-second client timeout. Failures are wrapped with
// context about what failed; HTTP status >= 400 becomes an error carrying
// the path and code. No retries: the view layer decides whether to
// re-invoke.
//
// # Mutations and the Cache
//
// Mutations are executed by the UI layer, never by a collection
// controller. On success the UI feeds the echoed record into the
// controller via ApplyMutation so the visible window is repaired without a
// refetch.
//
// # Testing
//
// Use httptest.Server to stand in for the gateway, or fake the API
// interface directly.
package loom

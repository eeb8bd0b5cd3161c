package collection

import "context"

// Node is a single record in a remote collection. Identity is by ID only;
// everything else about the record is opaque to this package.
type Node interface {
	NodeID() string
}

// Edge pairs a node with the opaque continuation cursor the gateway issued
// for it. Cursors are never parsed, only handed back on the next page fetch.
type Edge struct {
	Cursor string
	Node   Node
}

// PageInfo describes whether more pages exist and where to resume. An empty
// EndCursor means the gateway reported no continuation point.
type PageInfo struct {
	EndCursor   string
	HasNextPage bool
}

// Page is one fetched slice of a collection.
type Page struct {
	Edges    []Edge
	PageInfo PageInfo
}

// Filter narrows a collection server-side. Compared by value; any change
// invalidates the loaded window.
type Filter struct {
	Query string
}

// Sort selects the server-side ordering. Compared by value, like Filter.
type Sort struct {
	Field string
	Desc  bool
}

// Params bundles the filter and sort that shape a window.
type Params struct {
	Filter Filter
	Sort   Sort
}

// PageRequest is what the controller hands the gateway for one fetch. An
// empty Cursor requests the first page.
type PageRequest struct {
	Cursor string
	Limit  int
	Params Params
}

// Gateway fetches pages from the remote collection. Implementations must be
// safe for concurrent use; the controller may have superseded fetches still
// in flight when it issues a new one.
type Gateway interface {
	FetchPage(ctx context.Context, req PageRequest) (Page, error)
}

// DefaultPageSize is used when a controller is built without an explicit
// page size.
const DefaultPageSize = 100

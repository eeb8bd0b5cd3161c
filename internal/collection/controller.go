package collection

import (
	"context"
	"sync"
	"time"
)

// Status is the controller's fetch state machine.
type Status int

const (
	// StatusIdle means no fetch is outstanding; Edges reflects the last
	// successful result.
	StatusIdle Status = iota
	// StatusLoading means a reset fetch (new params or initial mount) is
	// outstanding or pending debounce.
	StatusLoading
	// StatusLoadingMore means an append fetch is outstanding; Edges already
	// holds data.
	StatusLoadingMore
	// StatusError means the last live fetch failed. Edges retains the prior
	// successful data; it is never cleared on error.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusLoadingMore:
		return "loading-more"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// State is a point-in-time snapshot of a controller's window. The edge
// slice is cloned; callers may hold a State across later transitions.
type State struct {
	Edges    []Edge
	PageInfo PageInfo
	Params   Params
	Status   Status
	Seq      uint64
	Err      error
}

// Options configure a Controller.
type Options struct {
	// Gateway fetches pages. Required.
	Gateway Gateway
	// Context bounds all gateway calls. Defaults to context.Background().
	Context context.Context
	// PageSize per fetch; defaults to DefaultPageSize.
	PageSize int
	// Debounce quiet period for parameter changes; defaults to
	// DefaultDebounce.
	Debounce time.Duration
	// OnChange is invoked outside the controller's lock after every state
	// change. Optional; wire it to whatever re-renders the view.
	OnChange func()
}

// Controller owns one paginated window over a remote collection and
// arbitrates between the three forces that act on it: scroll-driven append
// fetches, debounced parameter resets, and local cache mutations. Edges are
// kept unique by node id in gateway order; a fetch error never discards
// previously loaded edges.
type Controller struct {
	ctx      context.Context
	gateway  Gateway
	pageSize int
	onChange func()
	sched    *scheduler

	mu       sync.Mutex
	edges    []Edge
	pageInfo PageInfo
	params   Params
	status   Status
	err      error
}

// NewController builds an idle controller. No fetch is issued until the
// first SetParams call (the view's mount).
func NewController(opts Options) *Controller {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	c := &Controller{
		ctx:      ctx,
		gateway:  opts.Gateway,
		pageSize: pageSize,
		onChange: opts.OnChange,
	}
	c.sched = newScheduler(opts.Debounce, c.dispatchReset)
	return c
}

// SetParams replaces the window's filter and sort and schedules a reset
// fetch after the debounce quiet period. Any outstanding fetch is
// superseded immediately: its response will fail the sequence check and be
// dropped. Always succeeds.
func (c *Controller) SetParams(p Params) {
	c.mu.Lock()
	c.params = p
	c.status = StatusLoading
	c.err = nil
	c.sched.scheduleReset()
	c.mu.Unlock()
	c.notify()
}

// LoadMore requests the next page. It is a no-op unless the controller is
// idle with more pages available; this guard is the backpressure valve that
// keeps a fast-scrolling consumer from issuing overlapping appends.
func (c *Controller) LoadMore() {
	c.mu.Lock()
	if c.status != StatusIdle || !c.pageInfo.HasNextPage {
		c.mu.Unlock()
		return
	}
	c.status = StatusLoadingMore
	seq := c.sched.next()
	req := PageRequest{
		Cursor: c.pageInfo.EndCursor,
		Limit:  c.pageSize,
		Params: c.params,
	}
	c.mu.Unlock()
	go c.fetch(seq, false, req)
	c.notify()
}

// ApplyMutation edits the loaded window in place. It is synchronous, never
// touches the network, never changes Status, and is idempotent for absent
// ids. PageInfo is left alone: the continuation cursor tracks the last
// fetched page, not the client's list, so pagination resumes correctly
// regardless of local inserts and removes.
func (c *Controller) ApplyMutation(m Mutation) {
	c.mu.Lock()
	c.edges = applyMutation(c.edges, m)
	c.mu.Unlock()
	c.notify()
}

// State returns a snapshot of the current window.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := State{
		PageInfo: c.pageInfo,
		Params:   c.params,
		Status:   c.status,
		Seq:      c.sched.current(),
		Err:      c.err,
	}
	if len(c.edges) > 0 {
		st.Edges = make([]Edge, len(c.edges))
		copy(st.Edges, c.edges)
	}
	return st
}

// Close cancels any pending debounce firing. In-flight fetches resolve
// harmlessly against the stale-sequence check.
func (c *Controller) Close() {
	c.sched.stop()
}

// dispatchReset runs when the debounce timer fires: it stamps and issues
// the reset fetch reflecting the latest parameters.
func (c *Controller) dispatchReset() {
	c.mu.Lock()
	c.status = StatusLoading
	seq := c.sched.next()
	req := PageRequest{Limit: c.pageSize, Params: c.params}
	c.mu.Unlock()
	go c.fetch(seq, true, req)
}

func (c *Controller) fetch(seq uint64, reset bool, req PageRequest) {
	page, err := c.gateway.FetchPage(c.ctx, req)
	c.finish(seq, reset, page, err)
}

// finish applies a resolved fetch. Responses whose stamp no longer matches
// the live sequence are dropped unconditionally, success and failure alike,
// so out-of-order arrivals can never corrupt the window.
func (c *Controller) finish(seq uint64, reset bool, page Page, err error) {
	c.mu.Lock()
	if !c.sched.live(seq) {
		c.mu.Unlock()
		return
	}
	if err != nil {
		c.status = StatusError
		c.err = err
		c.mu.Unlock()
		c.notify()
		return
	}
	if reset {
		c.edges = dedupeEdges(page.Edges)
	} else {
		c.edges = appendEdges(c.edges, page.Edges)
	}
	c.pageInfo = page.PageInfo
	c.status = StatusIdle
	c.err = nil
	c.mu.Unlock()
	c.notify()
}

// probe returns the guard inputs LoadMore cares about without cloning the
// edge slice.
func (c *Controller) probe() (Status, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status, c.pageInfo.HasNextPage
}

func (c *Controller) notify() {
	if c.onChange != nil {
		c.onChange()
	}
}

// dedupeEdges drops edges repeating an earlier node id within one page.
func dedupeEdges(edges []Edge) []Edge {
	seen := make(map[string]struct{}, len(edges))
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		id := e.Node.NodeID()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, e)
	}
	return out
}

// appendEdges extends the window with a fetched page, skipping nodes
// already present so an overlapping page cannot introduce duplicate rows.
func appendEdges(existing, fetched []Edge) []Edge {
	seen := make(map[string]struct{}, len(existing)+len(fetched))
	for _, e := range existing {
		seen[e.Node.NodeID()] = struct{}{}
	}
	out := existing
	for _, e := range fetched {
		id := e.Node.NodeID()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, e)
	}
	return out
}

package collection

// DefaultScrollThreshold is the remaining-distance threshold under which a
// sentinel asks for the next page. Units are the consumer's scroll units
// (pixels for a DOM-like surface, rows for a terminal viewport).
const DefaultScrollThreshold = 300

// Viewport captures the scroll geometry of whatever renders the window.
type Viewport struct {
	// ScrollHeight is the total content extent.
	ScrollHeight int
	// ScrollTop is the offset of the visible region's top edge.
	ScrollTop int
	// ClientHeight is the visible region extent.
	ClientHeight int
}

// ShouldLoadMore reports whether the scroll position warrants fetching the
// next page. Pure function so the guard is testable without a real
// viewport. The status check is what prevents fetch storms during fast
// scrolling: the sentinel never debounces, it just refuses to fire unless
// the controller is idle with more pages available.
func ShouldLoadMore(v Viewport, threshold int, status Status, hasNext bool) bool {
	if status != StatusIdle || !hasNext {
		return false
	}
	remaining := v.ScrollHeight - v.ScrollTop - v.ClientHeight
	return remaining < threshold
}

// Sentinel translates a continuous scroll signal into discrete LoadMore
// calls on a controller.
type Sentinel struct {
	ctrl      *Controller
	threshold int
}

// NewSentinel builds a sentinel for ctrl. A non-positive threshold selects
// DefaultScrollThreshold.
func NewSentinel(ctrl *Controller, threshold int) *Sentinel {
	if threshold <= 0 {
		threshold = DefaultScrollThreshold
	}
	return &Sentinel{ctrl: ctrl, threshold: threshold}
}

// Threshold returns the configured firing distance.
func (s *Sentinel) Threshold() int {
	return s.threshold
}

// Observe evaluates the current scroll geometry and requests the next page
// when warranted. Safe to call on every scroll event.
func (s *Sentinel) Observe(v Viewport) {
	status, hasNext := s.ctrl.probe()
	if ShouldLoadMore(v, s.threshold, status, hasNext) {
		s.ctrl.LoadMore()
	}
}

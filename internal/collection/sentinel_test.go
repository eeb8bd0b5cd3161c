package collection

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestShouldLoadMore(t *testing.T) {
	t.Parallel()

	nearBottom := Viewport{ScrollHeight: 1000, ScrollTop: 650, ClientHeight: 100}
	farFromBottom := Viewport{ScrollHeight: 1000, ScrollTop: 0, ClientHeight: 100}

	cases := []struct {
		name    string
		v       Viewport
		status  Status
		hasNext bool
		want    bool
	}{
		{"near bottom idle", nearBottom, StatusIdle, true, true},
		{"far from bottom", farFromBottom, StatusIdle, true, false},
		{"no next page", nearBottom, StatusIdle, false, false},
		{"loading", nearBottom, StatusLoading, true, false},
		{"loading more", nearBottom, StatusLoadingMore, true, false},
		{"error", nearBottom, StatusError, true, false},
		{"exactly at threshold", Viewport{ScrollHeight: 1000, ScrollTop: 600, ClientHeight: 100}, StatusIdle, true, false},
		{"one past threshold", Viewport{ScrollHeight: 1000, ScrollTop: 601, ClientHeight: 100}, StatusIdle, true, true},
		{"at very bottom", Viewport{ScrollHeight: 1000, ScrollTop: 900, ClientHeight: 100}, StatusIdle, true, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ShouldLoadMore(tc.v, DefaultScrollThreshold, tc.status, tc.hasNext)
			if got != tc.want {
				t.Fatalf("ShouldLoadMore(%+v, %v, %v) = %v, want %v",
					tc.v, tc.status, tc.hasNext, got, tc.want)
			}
		})
	}
}

func TestNewSentinel_DefaultThreshold(t *testing.T) {
	t.Parallel()

	s := NewSentinel(nil, 0)
	if s.Threshold() != DefaultScrollThreshold {
		t.Fatalf("Threshold() = %d, want %d", s.Threshold(), DefaultScrollThreshold)
	}
	s = NewSentinel(nil, 12)
	if s.Threshold() != 12 {
		t.Fatalf("Threshold() = %d, want 12", s.Threshold())
	}
}

func TestSentinel_ObserveFiresExactlyOneAppend(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	var mu sync.Mutex
	calls := 0
	gw := gatewayFunc(func(_ context.Context, req PageRequest) (Page, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			return page(true, "a", "b"), nil
		}
		<-release
		return page(false, "c"), nil
	})

	c, changes := newTestController(gw, 2)
	defer c.Close()
	c.SetParams(Params{})
	waitIdle(t, c, changes)

	s := NewSentinel(c, 10)
	bottom := Viewport{ScrollHeight: 40, ScrollTop: 35, ClientHeight: 5}

	// A burst of scroll events near the bottom must collapse into a single
	// append: after the first Observe the controller is loading-more and
	// the guard refuses the rest.
	for i := 0; i < 5; i++ {
		s.Observe(bottom)
	}
	close(release)
	waitIdle(t, c, changes)

	mu.Lock()
	got := calls
	mu.Unlock()
	if got != 2 {
		t.Fatalf("gateway calls = %d, want 2 (reset + one append)", got)
	}
}

func TestSentinel_ObserveIgnoresMidListScroll(t *testing.T) {
	t.Parallel()

	gw := &scriptedGateway{pages: []Page{page(true, "a", "b")}}
	c, changes := newTestController(gw, 2)
	defer c.Close()
	c.SetParams(Params{})
	waitIdle(t, c, changes)

	s := NewSentinel(c, 10)
	s.Observe(Viewport{ScrollHeight: 100, ScrollTop: 0, ClientHeight: 20})

	time.Sleep(4 * testDebounce)
	if got := gw.callCount(); got != 1 {
		t.Fatalf("gateway calls = %d, want 1; mid-list scroll must not fetch", got)
	}
}

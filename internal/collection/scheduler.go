package collection

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period applied to parameter changes before a
// reset fetch is actually issued.
const DefaultDebounce = 200 * time.Millisecond

// scheduler owns the request sequence counter and the debounce timer for
// reset fetches. The sequence number is the only cancellation mechanism in
// this package: a response whose stamp no longer matches the live sequence
// is dropped, never applied. No network abort is attempted; a superseded
// request runs to completion and its result is ignored.
type scheduler struct {
	mu       sync.Mutex
	debounce time.Duration
	timer    *time.Timer
	seq      uint64
	fire     func()
}

func newScheduler(debounce time.Duration, fire func()) *scheduler {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &scheduler{debounce: debounce, fire: fire}
}

// scheduleReset (re)arms the debounce timer and bumps the sequence so any
// in-flight fetch resolves stale. Rapid successive calls collapse into a
// single firing reflecting only the final parameters.
func (s *scheduler) scheduleReset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.fire)
}

// next stamps a new dispatch, superseding all earlier ones.
func (s *scheduler) next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// live reports whether seq is still the newest issued stamp.
func (s *scheduler) live(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return seq == s.seq
}

// current returns the newest stamp without issuing one.
func (s *scheduler) current() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq
}

// stop cancels any pending debounce firing. In-flight fetches are left to
// resolve; their results age out via the sequence check.
func (s *scheduler) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

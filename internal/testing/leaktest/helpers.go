// Package leaktest holds goroutine leak assertions shared by the fan-out,
// worker pool and scheduler tests.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	// settleTimeout bounds how long Check waits for goroutines to exit
	settleTimeout = time.Second
	pollInterval  = 10 * time.Millisecond
)

// GoroutineChecker helps detect goroutine leaks
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker creates a new checker and records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	// Allow time for background goroutines to stabilize
	runtime.Gosched()
	time.Sleep(pollInterval)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check fails the test if, after waiting up to settleTimeout, more than
// tolerance goroutines are still running compared to the baseline.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after, ok := settle(g.before+tolerance, settleTimeout)
	if !ok {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, after-g.before, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and asserts every goroutine it started has exited
func CheckNoGoroutineLeak(t *testing.T, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// WaitForGoroutines waits for the goroutine count to drop to target or fails after timeout
func WaitForGoroutines(t *testing.T, target int, timeout time.Duration) {
	t.Helper()

	if current, ok := settle(target, timeout); !ok {
		t.Errorf("Timeout waiting for goroutines to complete: current=%d, target=%d", current, target)
	}
}

// settle polls until at most target goroutines run, returning the last count seen
func settle(target int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		current := runtime.NumGoroutine()
		if current <= target {
			return current, true
		}
		if time.Now().After(deadline) {
			return current, false
		}
		time.Sleep(pollInterval)
	}
}

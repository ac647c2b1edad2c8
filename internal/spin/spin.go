// Package spin provides the backoff used by retry loops built on the
// primitive set. Livelock avoidance belongs to the caller, not to the
// primitives, so every loop in this repository that waits on another
// context goes through Delay.
package spin

import (
	"runtime"
	"time"
	_ "unsafe" // for linkname
)

// Sleep is how long Delay parks once active spinning is no longer allowed.
// The 500µs duration is derived from Facebook/folly's implementation:
// https://github.com/facebook/folly/blob/main/folly/synchronization/detail/Sleeper.h
const Sleep = 500 * time.Microsecond

// Try spins once if the runtime allows it and reports whether it did.
func Try(spins *int) bool {
	if runtime_canSpin(*spins) {
		*spins++
		runtime_doSpin()
		return true
	}
	return false
}

// Delay spins while the runtime allows it, then sleeps and resets spins.
func Delay(spins *int) {
	if Try(spins) {
		return
	}
	*spins = 0
	// time.Sleep with non-zero duration works effectively as backoff
	// under high concurrency.
	time.Sleep(Sleep)
}

// Yield spins while the runtime allows it and otherwise gives up the
// processor without sleeping. Waits handed off in FIFO order use it so the
// next holder is never parked for a full Sleep.
func Yield(spins *int) {
	if !Try(spins) {
		runtime.Gosched()
	}
}

// nolint:all
//
//go:linkname runtime_canSpin sync.runtime_canSpin
//goland:noinspection ALL
func runtime_canSpin(i int) bool

// nolint:all
//
//go:linkname runtime_doSpin sync.runtime_doSpin
//goland:noinspection ALL
func runtime_doSpin()

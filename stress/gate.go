package stress

import (
	"github.com/Leon6rd0/parsec-benchmark/atomic"
	"github.com/Leon6rd0/parsec-benchmark/internal/opt"
	"github.com/Leon6rd0/parsec-benchmark/internal/spin"
)

// gate holds contexts at the start line until every one of them has arrived,
// then releases them together.
type gate struct {
	// state:
	//   bit 0: open
	//   bits 1-31: parked waiters
	state   atomic.Uint32
	arrived atomic.Uint32
	sema    opt.Sema
}

const (
	gateOpen      = 1
	gateOneWaiter = 2
)

// wait marks the caller as arrived and blocks until open.
func (g *gate) wait() {
	g.arrived.Add(1)
	for {
		s := g.state.LoadAcquire()
		if s&gateOpen != 0 {
			return
		}
		if g.state.CompareAndSwap(s, s+gateOneWaiter) {
			g.sema.Acquire()
			return
		}
	}
}

// open waits for n arrivals, then wakes every parked waiter. Later calls to
// wait return immediately.
func (g *gate) open(n int) {
	var spins int
	for g.arrived.LoadAcquire() < uint32(n) {
		spin.Yield(&spins)
	}
	for {
		s := g.state.LoadAcquire()
		if s&gateOpen != 0 {
			return
		}
		if g.state.CompareAndSwap(s, s|gateOpen) {
			for range s >> 1 {
				g.sema.Release()
			}
			return
		}
	}
}

package stress

import (
	"github.com/Leon6rd0/parsec-benchmark/atomic"
	"github.com/Leon6rd0/parsec-benchmark/internal/spin"
)

// bitLock is a spin lock held in one bit of a 64-bit word. The other bits are
// left to the owner of the word.
type bitLock struct {
	word uint64
	mask uint64
}

func (l *bitLock) lock() {
	cur := atomic.LoadAcquireUint64(&l.word)
	if atomic.CompareAndSwapAcquireUint64(&l.word, cur&^l.mask, cur|l.mask) {
		return
	}
	var spins int
	for !l.tryLock() {
		spin.Delay(&spins)
	}
}

func (l *bitLock) tryLock() bool {
	for {
		cur := atomic.LoadAcquireUint64(&l.word)
		if cur&l.mask != 0 {
			return false
		}
		if atomic.CompareAndSwapAcquireUint64(&l.word, cur, cur|l.mask) {
			return true
		}
	}
}

func (l *bitLock) unlock() {
	atomic.ClearReleaseUint64(&l.word, l.mask)
}

// ticketLock is a FIFO spin lock: a fetch-add hands out tickets and holders
// are served in ticket order.
type ticketLock struct {
	next    atomic.Uint32
	serving atomic.Uint32
}

// lock returns the ticket it was served under.
func (l *ticketLock) lock() uint32 {
	my := l.next.FetchAdd(1)
	var spins int
	for l.serving.LoadAcquire() != my {
		spin.Yield(&spins)
	}
	return my
}

func (l *ticketLock) unlock() {
	l.serving.AddRelease(1)
}

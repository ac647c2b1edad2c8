package stress

import (
	"context"
	"fmt"

	"github.com/Leon6rd0/parsec-benchmark/atomic"
	"github.com/Leon6rd0/parsec-benchmark/internal/opt"
	"github.com/Leon6rd0/parsec-benchmark/internal/spin"
)

// addSubtract has context id add 2*id+1 every iteration and subtract 1
// every third, starting just below the wrap point.
func addSubtract[T atomic.Word](ctx context.Context, cfg Config) (uint64, error) {
	var cell struct {
		_ [0]uint64
		v T
		_ [8]byte
	}
	start := ^T(0) - 3
	atomic.StoreRelease(&cell.v, start)

	subs := (cfg.Iterations + 2) / 3
	want := start
	for id := range cfg.Contexts {
		want += T(2*id+1)*T(cfg.Iterations) - T(subs)
	}

	ops, err := runContexts(ctx, cfg.Contexts, func(ctx context.Context, id int) (int, error) {
		d := T(2*id + 1)
		n, err := each(ctx, cfg.Iterations, func(i int) error {
			atomic.Add(&cell.v, d)
			if i%3 == 0 {
				atomic.Subtract(&cell.v, 1)
			}
			return nil
		})
		return n + (n+2)/3, err
	})
	if err != nil {
		return ops, err
	}
	if got := atomic.LoadAcquire(&cell.v); got != want {
		return ops, fmt.Errorf("%w: final %#x, want %#x", ErrLostUpdate, got, want)
	}
	return ops, nil
}

// fetchAdd draws one ticket per iteration and checks the tickets are exactly
// 0..N-1.
func fetchAdd(ctx context.Context, cfg Config) (uint64, error) {
	var next atomic.Uint32
	var ledger TicketLedger
	ops, err := runContexts(ctx, cfg.Contexts, func(ctx context.Context, id int) (int, error) {
		return each(ctx, cfg.Iterations, func(int) error {
			return ledger.Record(next.FetchAdd(1), id)
		})
	})
	if err != nil {
		return ops, err
	}
	n := cfg.total()
	if got := next.LoadAcquire(); got != uint32(n) {
		return ops, fmt.Errorf("%w: counter %d after %d fetch-adds", ErrLostUpdate, got, n)
	}
	return ops, ledger.Check(n)
}

// casCounter increments with a load/compare-and-swap retry loop. The counter
// only grows, so a failed swap must be followed by a changed value.
func casCounter(ctx context.Context, cfg Config) (uint64, error) {
	var c atomic.Uint64
	ops, err := runContexts(ctx, cfg.Contexts, func(ctx context.Context, id int) (int, error) {
		attempts := 0
		_, err := each(ctx, cfg.Iterations, func(int) error {
			var spins int
			for {
				attempts++
				old := c.LoadAcquire()
				if c.CompareAndSwap(old, old+1) {
					return nil
				}
				if c.LoadAcquire() == old {
					return fmt.Errorf("%w: compare-and-swap of %d failed on an unchanged value", ErrStaleRead, old)
				}
				spin.Try(&spins)
			}
		})
		return attempts, err
	})
	if err != nil {
		return ops, err
	}
	if got, want := c.LoadAcquire(), uint64(cfg.total()); got != want {
		return ops, fmt.Errorf("%w: counter %d, want %d", ErrLostUpdate, got, want)
	}
	return ops, nil
}

// readAndClear has context 0 drain the cell while the others produce into
// it. With a single context it only produces.
func readAndClear(ctx context.Context, cfg Config) (uint64, error) {
	var c atomic.Uint64
	var finished atomic.Uint32
	var drained uint64

	producers := max(cfg.Contexts-1, 1)
	var produced uint64
	for p := range producers {
		produced += uint64(p+1) * uint64(cfg.Iterations)
	}

	ops, err := runContexts(ctx, cfg.Contexts, func(ctx context.Context, id int) (int, error) {
		if cfg.Contexts > 1 && id == 0 {
			drains := 0
			err := await(ctx, func() bool {
				drained += c.ReadAndClear()
				drains++
				return finished.LoadAcquire() == uint32(producers)
			})
			return drains, err
		}
		defer finished.AddRelease(1)
		d := uint64(max(id, 1))
		return each(ctx, cfg.Iterations, func(int) error {
			c.Add(d)
			return nil
		})
	})
	if err != nil {
		return ops, err
	}
	residue := c.ReadAndClear()
	if drained+residue != produced {
		return ops, fmt.Errorf("%w: drained %d + residue %d, produced %d",
			ErrLostUpdate, drained, residue, produced)
	}
	if v := c.LoadAcquire(); v != 0 {
		return ops, fmt.Errorf("%w: %#x left after read-and-clear", ErrNotCleared, v)
	}
	return ops + 1, nil
}

type mailbox struct {
	seq     atomic.Uint8
	payload [8]uint64
}

// mailboxContexts rounds the context count up to whole writer/reader pairs.
func mailboxContexts(cfg Config) int {
	return 2 * ((cfg.Contexts + 1) / 2)
}

// messagePassing pairs a writer with a reader per mailbox. The writer fills
// the payload with plain stores and publishes it with a release store of
// seq; the reader acquires seq and must see the whole payload. Odd seq
// values mean full, even mean empty, modulo 256.
func messagePassing(ctx context.Context, cfg Config) (uint64, error) {
	n := mailboxContexts(cfg)
	boxes := make([]mailbox, n/2)
	return runContexts(ctx, n, func(ctx context.Context, id int) (int, error) {
		b := &boxes[id/2]
		if id%2 == 0 {
			return each(ctx, cfg.Iterations, func(i int) error {
				round := i + 1
				if err := await(ctx, func() bool { return b.seq.LoadAcquire() == uint8(2*round-2) }); err != nil {
					return err
				}
				for j := range b.payload {
					b.payload[j] = uint64(round)<<8 | uint64(j)
				}
				b.seq.StoreRelease(uint8(2*round - 1))
				return nil
			})
		}
		return each(ctx, cfg.Iterations, func(i int) error {
			round := i + 1
			if err := await(ctx, func() bool { return b.seq.LoadAcquire() == uint8(2*round-1) }); err != nil {
				return err
			}
			for j, v := range b.payload {
				if want := uint64(round)<<8 | uint64(j); v != want {
					return fmt.Errorf("%w: round %d payload[%d] = %#x, want %#x", ErrStaleRead, round, j, v, want)
				}
			}
			b.seq.StoreRelease(uint8(2 * round))
			return nil
		})
	})
}

// setClear has every context own one bit, set and clear it each iteration
// and check it after both. Bits of other contexts share the same words.
func setClear[T atomic.Word](ctx context.Context, cfg Config, slot func(id int) (*T, T)) (uint64, error) {
	ops, err := runContexts(ctx, cfg.Contexts, func(ctx context.Context, id int) (int, error) {
		addr, bit := slot(id)
		n, err := each(ctx, cfg.Iterations, func(i int) error {
			atomic.Set(addr, bit)
			if atomic.LoadAcquire(addr)&bit == 0 {
				return fmt.Errorf("%w: context %d bit %#x not set", ErrLostUpdate, id, bit)
			}
			atomic.Clear(addr, bit)
			if atomic.LoadAcquire(addr)&bit != 0 {
				return fmt.Errorf("%w: context %d bit %#x", ErrNotCleared, id, bit)
			}
			return nil
		})
		return 2 * n, err
	})
	if err != nil {
		return ops, err
	}
	for id := range cfg.Contexts {
		if addr, _ := slot(id); atomic.LoadAcquire(addr) != 0 {
			return ops, fmt.Errorf("%w: word of context %d holds %#x", ErrNotCleared, id, atomic.LoadAcquire(addr))
		}
	}
	return ops, nil
}

// setClear8 packs 32 contexts into each word, 8 per byte lane.
func setClear8(ctx context.Context, cfg Config) (uint64, error) {
	words := make([]struct {
		_ [0]uint32
		b [4]uint8
	}, (cfg.Contexts+31)/32)
	return setClear(ctx, cfg, func(id int) (*uint8, uint8) {
		return &words[id/32].b[id%32/8], 1 << (id % 8)
	})
}

// setClear64 packs 64 contexts into each cache-line padded word.
func setClear64(ctx context.Context, cfg Config) (uint64, error) {
	words := make([]opt.Stripe, (cfg.Contexts+63)/64)
	return setClear(ctx, cfg, func(id int) (*uint64, uint64) {
		return &words[id/64].C, 1 << (id % 64)
	})
}

// bitLockCounter protects a plain counter with a lock bit kept in the top bit
// of a word whose low bits carry unrelated data.
func bitLockCounter(ctx context.Context, cfg Config) (uint64, error) {
	const data = 0x5a5a
	lk := bitLock{word: data, mask: 1 << 63}
	var holders atomic.Uint32
	var counter int
	ops, err := runContexts(ctx, cfg.Contexts, func(ctx context.Context, id int) (int, error) {
		return each(ctx, cfg.Iterations, func(int) error {
			lk.lock()
			defer lk.unlock()
			if h := holders.FetchAdd(1); h != 0 {
				return fmt.Errorf("%w: context %d entered with %d holders", ErrMutualExclusion, id, h)
			}
			counter++
			holders.FetchSubtract(1)
			return nil
		})
	})
	if err != nil {
		return ops, err
	}
	if want := cfg.total(); counter != want {
		return ops, fmt.Errorf("%w: counter %d, want %d", ErrMutualExclusion, counter, want)
	}
	if w := atomic.LoadAcquireUint64(&lk.word); w != data {
		return ops, fmt.Errorf("%w: lock word %#x, want %#x", ErrNotCleared, w, uint64(data))
	}
	return ops, nil
}

// ticketLockCounter protects a plain counter with a ticket lock and checks
// holders are served in ticket order.
func ticketLockCounter(ctx context.Context, cfg Config) (uint64, error) {
	var lk ticketLock
	var served uint32
	ops, err := runContexts(ctx, cfg.Contexts, func(ctx context.Context, id int) (int, error) {
		return each(ctx, cfg.Iterations, func(int) error {
			my := lk.lock()
			defer lk.unlock()
			if my != served {
				return fmt.Errorf("%w: ticket %d served while %d was due", ErrTicketGap, my, served)
			}
			served++
			return nil
		})
	})
	if err != nil {
		return ops, err
	}
	if want := uint32(cfg.total()); served != want {
		return ops, fmt.Errorf("%w: served %d, want %d", ErrMutualExclusion, served, want)
	}
	return ops, nil
}

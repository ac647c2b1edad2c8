package stress

import (
	"context"
	"fmt"

	"github.com/Leon6rd0/parsec-benchmark/atomic"
)

// seqLock guards a multi-word snapshot with a sequence number: odd while a
// write is in progress, bumped by two per completed write. Snapshot words are
// themselves atomic so readers racing a writer stay well defined; the
// sequence check is what makes the snapshot consistent.
type seqLock struct {
	seq   atomic.Uintptr
	words [4]uint64
}

func (l *seqLock) beginWrite() (uintptr, bool) {
	s := l.seq.LoadAcquire()
	if s&1 != 0 {
		return s, false
	}
	return s, l.seq.CompareAndSwapAcquire(s, s|1)
}

func (l *seqLock) endWrite(s uintptr) {
	l.seq.StoreRelease(s + 2)
}

// write stores v into every word.
func (l *seqLock) write(ctx context.Context, v uint64) error {
	var s uintptr
	if err := await(ctx, func() bool {
		var ok bool
		s, ok = l.beginWrite()
		return ok
	}); err != nil {
		return err
	}
	for i := range l.words {
		atomic.StoreReleaseUint64(&l.words[i], v)
	}
	l.endWrite(s)
	return nil
}

// read returns a consistent snapshot and the sequence it was taken at.
func (l *seqLock) read(ctx context.Context) (uintptr, [4]uint64, error) {
	var s uintptr
	var snap [4]uint64
	err := await(ctx, func() bool {
		s = l.seq.LoadAcquire()
		if s&1 != 0 {
			return false
		}
		for i := range l.words {
			snap[i] = atomic.LoadAcquireUint64(&l.words[i])
		}
		return l.seq.LoadAcquire() == s
	})
	return s, snap, err
}

// seqLockSnapshots has context 0 write round numbers while the others take
// snapshots; every snapshot must hold the value written by the write that
// produced its sequence number.
func seqLockSnapshots(ctx context.Context, cfg Config) (uint64, error) {
	var l seqLock
	check := func(ctx context.Context) error {
		s, snap, err := l.read(ctx)
		if err != nil {
			return err
		}
		want := uint64(s / 2)
		for i, v := range snap {
			if v != want {
				return fmt.Errorf("%w: snapshot at seq %d word %d = %d, want %d", ErrStaleRead, s, i, v, want)
			}
		}
		return nil
	}
	ops, err := runContexts(ctx, cfg.Contexts, func(ctx context.Context, id int) (int, error) {
		if id != 0 {
			return each(ctx, cfg.Iterations, func(int) error { return check(ctx) })
		}
		return each(ctx, cfg.Iterations, func(i int) error {
			if err := l.write(ctx, uint64(i+1)); err != nil {
				return err
			}
			if cfg.Contexts == 1 {
				return check(ctx)
			}
			return nil
		})
	})
	if err != nil {
		return ops, err
	}
	if s := l.seq.LoadAcquire(); s != uintptr(2*cfg.Iterations) {
		return ops, fmt.Errorf("%w: seq %d after %d writes", ErrLostUpdate, s, cfg.Iterations)
	}
	return ops, nil
}

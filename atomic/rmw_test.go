package atomic

import (
	"math"
	"math/rand/v2"
	"runtime"
	"slices"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/Leon6rd0/parsec-benchmark/internal/opt"
)

func iterations(n int) int {
	if opt.Race_ {
		return n / 10
	}
	return n
}

func TestCellLayout(t *testing.T) {
	require.EqualValues(t, 4, unsafe.Sizeof(Uint8{}))
	require.EqualValues(t, 4, unsafe.Alignof(Uint8{}))
	require.EqualValues(t, 4, unsafe.Sizeof(Uint16{}))
	require.EqualValues(t, 4, unsafe.Alignof(Uint16{}))
	require.EqualValues(t, 4, unsafe.Sizeof(Uint32{}))
	require.EqualValues(t, 8, unsafe.Sizeof(Uint64{}))
	require.EqualValues(t, 8, unsafe.Alignof(Uint64{}))
	require.EqualValues(t, 8, unsafe.Sizeof(Uintptr{}))
}

func TestLaneOf(t *testing.T) {
	var s struct {
		_ [0]uint32
		b [8]uint8
	}
	base := (*uint32)(unsafe.Pointer(&s.b[0]))
	for i := range 4 {
		w, shift := laneOf(unsafe.Pointer(&s.b[i]), 1)
		require.Same(t, base, w, "byte %d", i)
		require.EqualValues(t, i*8, shift, "byte %d", i)
	}
	w, shift := laneOf(unsafe.Pointer(&s.b[6]), 2)
	require.Same(t, (*uint32)(unsafe.Pointer(&s.b[4])), w)
	require.EqualValues(t, 16, shift)

	require.EqualValues(t, 0xff, laneMask(1))
	require.EqualValues(t, 0xffff, laneMask(2))
}

// addSubtract runs contexts goroutines that each add delta(i) and then
// subtract it back iters times, with one extra add of delta(i) at the end,
// and returns the expected final value.
func addSubtract[T Word](t *testing.T, addr *T, contexts, iters int) T {
	t.Helper()
	var want T
	var wg sync.WaitGroup
	wg.Add(contexts)
	for i := range contexts {
		d := T(i*7 + 1)
		want += d
		go func() {
			defer wg.Done()
			for range iters {
				Add(addr, d)
				Subtract(addr, d)
			}
			Add(addr, d)
		}()
	}
	wg.Wait()
	return want
}

func TestAddSubtractNoLostUpdates(t *testing.T) {
	contexts := max(4, runtime.GOMAXPROCS(0))
	iters := iterations(20000)

	t.Run("8", func(t *testing.T) {
		var c Uint8
		c.StoreRelease(200)
		want := addSubtract(t, &c.v, contexts, iters)
		require.Equal(t, uint8(200)+want, c.LoadAcquire())
	})
	t.Run("16", func(t *testing.T) {
		var c Uint16
		c.StoreRelease(65000)
		want := addSubtract(t, &c.v, contexts, iters)
		require.Equal(t, uint16(65000)+want, c.LoadAcquire())
	})
	t.Run("32", func(t *testing.T) {
		var c Uint32
		c.StoreRelease(math.MaxUint32 - 3)
		want := addSubtract(t, &c.v, contexts, iters)
		require.Equal(t, uint32(math.MaxUint32-3)+want, c.LoadAcquire())
	})
	t.Run("64", func(t *testing.T) {
		var c Uint64
		c.StoreRelease(1 << 40)
		want := addSubtract(t, &c.v, contexts, iters)
		require.Equal(t, uint64(1<<40)+want, c.LoadAcquire())
	})
	t.Run("ptr", func(t *testing.T) {
		var c Uintptr
		want := addSubtract(t, &c.v, contexts, iters)
		require.Equal(t, want, c.LoadAcquire())
	})
}

func TestLanesDoNotInterfere(t *testing.T) {
	iters := iterations(50000)

	var b struct {
		_ [0]uint32
		v [4]uint8
	}
	var wg sync.WaitGroup
	wg.Add(len(b.v))
	for i := range b.v {
		go func() {
			defer wg.Done()
			for range iters {
				AddUint8(&b.v[i], uint8(i+1))
			}
		}()
	}
	wg.Wait()
	for i := range b.v {
		require.Equal(t, uint8(iters*(i+1)), LoadAcquireUint8(&b.v[i]), "lane %d", i)
	}

	var h struct {
		_ [0]uint32
		v [2]uint16
	}
	wg.Add(len(h.v))
	for i := range h.v {
		go func() {
			defer wg.Done()
			for j := range iters {
				if j%2 == 0 {
					SetUint16(&h.v[i], 1<<i)
				} else {
					ClearUint16(&h.v[i], 1<<i)
				}
				AddUint16(&h.v[i], 0x100)
			}
		}()
	}
	wg.Wait()
	for i := range h.v {
		want := uint16(iters * 0x100)
		if iters%2 == 1 {
			want |= 1 << i
		}
		require.Equal(t, want, LoadAcquireUint16(&h.v[i]), "lane %d", i)
	}
}

func TestCompareAndSwap(t *testing.T) {
	t.Run("8", func(t *testing.T) {
		var c Uint8
		c.StoreRelease(0xff)
		require.True(t, c.CompareAndSwap(0xff, 0x00))
		require.Equal(t, uint8(0x00), c.LoadAcquire())
		require.False(t, c.CompareAndSwap(0xff, 0x01))
		require.Equal(t, uint8(0x00), c.LoadAcquire())
	})
	t.Run("16", func(t *testing.T) {
		var c Uint16
		require.False(t, c.CompareAndSwap(1, 2))
		require.True(t, c.CompareAndSwap(0, 0xbeef))
		require.Equal(t, uint16(0xbeef), c.LoadAcquire())
	})
	t.Run("32", func(t *testing.T) {
		var c Uint32
		c.StoreRelease(7)
		require.False(t, c.CompareAndSwap(8, 9))
		require.Equal(t, uint32(7), c.LoadAcquire())
		require.True(t, c.CompareAndSwapAcquire(7, 9))
		require.True(t, c.CompareAndSwapRelease(9, 10))
		require.Equal(t, uint32(10), c.LoadAcquire())
	})
	t.Run("64", func(t *testing.T) {
		var c Uint64
		c.StoreRelease(math.MaxUint64)
		require.True(t, c.CompareAndSwap(math.MaxUint64, 1))
		require.False(t, c.CompareAndSwap(math.MaxUint64, 2))
		require.Equal(t, uint64(1), c.LoadAcquire())
	})
	t.Run("ptr", func(t *testing.T) {
		var c Uintptr
		require.True(t, c.CompareAndSwap(0, ^uintptr(0)))
		require.Equal(t, ^uintptr(0), c.LoadAcquire())
	})
	t.Run("neighbour change is retried", func(t *testing.T) {
		var b struct {
			_ [0]uint32
			v [4]uint8
		}
		iters := iterations(20000)
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range iters {
				AddUint8(&b.v[1], 1)
			}
		}()
		// Lane 0 only ever toggles between 0 and 1, so every CAS below must
		// succeed however lane 1 moves.
		for j := range iters {
			require.True(t, CompareAndSwapUint8(&b.v[0], uint8(j&1), uint8(^j&1)))
		}
		wg.Wait()
		require.Equal(t, uint8(iters&1), LoadAcquireUint8(&b.v[0]))
		require.Equal(t, uint8(iters), LoadAcquireUint8(&b.v[1]))
	})
}

func TestCompareAndSwapCounter(t *testing.T) {
	contexts := max(4, runtime.GOMAXPROCS(0))
	iters := iterations(10000)
	var c Uint64
	var wg sync.WaitGroup
	wg.Add(contexts)
	for range contexts {
		go func() {
			defer wg.Done()
			for range iters {
				for {
					old := c.LoadAcquire()
					if c.CompareAndSwap(old, old+1) {
						break
					}
				}
			}
		}()
	}
	wg.Wait()
	require.Equal(t, uint64(contexts*iters), c.LoadAcquire())
}

func TestFetchAddTicketsAreUnique(t *testing.T) {
	const contexts, perContext = 2, 100000
	var c Uint32
	seen := make([][]uint32, contexts)
	var wg sync.WaitGroup
	wg.Add(contexts)
	for i := range contexts {
		go func() {
			defer wg.Done()
			olds := make([]uint32, 0, perContext)
			for range perContext {
				olds = append(olds, c.FetchAdd(1))
			}
			seen[i] = olds
		}()
	}
	wg.Wait()

	require.Equal(t, uint32(contexts*perContext), c.LoadAcquire())
	all := slices.Concat(seen...)
	slices.Sort(all)
	for i, v := range all {
		if uint32(i) != v {
			t.Fatalf("tickets[%d] = %d, want %d (duplicate or gap)", i, v, i)
		}
	}
}

func TestFetchAddWithDeltas(t *testing.T) {
	var c Uint32
	require.Equal(t, uint32(0), c.FetchAdd(5))
	require.Equal(t, uint32(5), c.FetchAdd(10))
	require.Equal(t, uint32(15), c.FetchSubtract(3))
	require.Equal(t, uint32(12), c.LoadAcquire())
	require.Equal(t, uint32(12), c.FetchSubtract(-8))
	require.Equal(t, uint32(20), c.LoadAcquire())
}

func TestFetchSubtractMinInt32(t *testing.T) {
	var c Uint32
	c.StoreRelease(0x80000005)
	require.Equal(t, uint32(0x80000005), c.FetchSubtract(math.MinInt32))
	require.Equal(t, uint32(5), c.LoadAcquire())

	require.Equal(t, uint32(5), c.FetchSubtract(math.MinInt32))
	require.Equal(t, uint32(0x80000005), c.LoadAcquire())
}

func TestReadAndClear(t *testing.T) {
	for _, v := range []uint64{0, 1, 0xdeadbeef, math.MaxUint32, math.MaxUint64} {
		var c32 Uint32
		c32.StoreRelease(uint32(v))
		require.Equal(t, uint32(v), c32.ReadAndClear())
		require.Zero(t, c32.LoadAcquire())

		var c64 Uint64
		c64.StoreRelease(v)
		require.Equal(t, v, c64.ReadAndClear())
		require.Zero(t, c64.LoadAcquire())

		var cp Uintptr
		cp.StoreRelease(uintptr(v))
		require.Equal(t, uintptr(v), cp.ReadAndClear())
		require.Zero(t, cp.LoadAcquire())
	}
}

func TestReadAndClearDrainsEverything(t *testing.T) {
	iters := iterations(50000)
	var c Uint64
	var drained uint64
	done := make(chan struct{})
	go func() {
		defer close(done)
		for range iters {
			c.Add(1)
		}
	}()
	for {
		select {
		case <-done:
			drained += c.ReadAndClear()
			require.Equal(t, uint64(iters), drained)
			require.Zero(t, c.LoadAcquire())
			return
		default:
			drained += c.ReadAndClear()
		}
	}
}

// messagePassing checks that plain writes made before a release store of
// flag are visible after an acquire load observes the flag.
func messagePassing[T Word](t *testing.T, flag *T) {
	t.Helper()
	const rounds = 200
	var payload [16]int
	for round := 1; round <= rounds; round++ {
		ready := make(chan struct{})
		go func() {
			<-ready
			for i := range payload {
				payload[i] = round*100 + i
			}
			StoreRelease(flag, T(1))
		}()
		close(ready)
		for LoadAcquire(flag) == 0 {
			runtime.Gosched()
		}
		for i, v := range payload {
			if v != round*100+i {
				t.Fatalf("round %d: payload[%d] = %d after acquire", round, i, v)
			}
		}
		StoreRelease(flag, T(0))
	}
}

func TestStoreReleaseLoadAcquire(t *testing.T) {
	var (
		c8  Uint8
		c16 Uint16
		c32 Uint32
		c64 Uint64
		cp  Uintptr
	)
	t.Run("8", func(t *testing.T) { messagePassing(t, &c8.v) })
	t.Run("16", func(t *testing.T) { messagePassing(t, &c16.v) })
	t.Run("32", func(t *testing.T) { messagePassing(t, &c32.v) })
	t.Run("64", func(t *testing.T) { messagePassing(t, &c64.v) })
	t.Run("ptr", func(t *testing.T) { messagePassing(t, &cp.v) })
}

func TestSetClearRoundTrip8(t *testing.T) {
	var c Uint8
	for v0 := range 256 {
		for mask := range 256 {
			c.StoreRelease(uint8(v0))
			c.Set(uint8(mask))
			require.Equal(t, uint8(v0|mask), c.LoadAcquire())
			c.Clear(uint8(mask))
			if got, want := c.LoadAcquire(), uint8(v0&^mask); got != want {
				t.Fatalf("initial %#x mask %#x: got %#x, want %#x", v0, mask, got, want)
			}
		}
	}
}

func TestSetClearRoundTrip16(t *testing.T) {
	var c Uint16
	for _, v0 := range []uint16{0, 0xffff, 0xa5a5, 0x0f0f} {
		for mask := range 1 << 16 {
			c.StoreRelease(v0)
			c.SetAcquire(uint16(mask))
			c.ClearRelease(uint16(mask))
			if got, want := c.LoadAcquire(), v0&^uint16(mask); got != want {
				t.Fatalf("initial %#x mask %#x: got %#x, want %#x", v0, mask, got, want)
			}
		}
	}
}

func TestSetClearRoundTripWide(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	var c32 Uint32
	var c64 Uint64
	var cp Uintptr
	for range 20000 {
		v0, mask := r.Uint64(), r.Uint64()

		c32.StoreRelease(uint32(v0))
		c32.Set(uint32(mask))
		require.Equal(t, uint32(v0|mask), c32.LoadAcquire())
		c32.Clear(uint32(mask))
		require.Equal(t, uint32(v0&^mask), c32.LoadAcquire())

		c64.StoreRelease(v0)
		c64.Set(mask)
		require.Equal(t, v0|mask, c64.LoadAcquire())
		c64.Clear(mask)
		require.Equal(t, v0&^mask, c64.LoadAcquire())

		cp.StoreRelease(uintptr(v0))
		cp.SetRelease(uintptr(mask))
		cp.ClearAcquire(uintptr(mask))
		require.Equal(t, uintptr(v0&^mask), cp.LoadAcquire())
	}
}

func TestWrapAround(t *testing.T) {
	var c8 Uint8
	c8.Subtract(1)
	require.Equal(t, uint8(0xff), c8.LoadAcquire())
	c8.Add(2)
	require.Equal(t, uint8(1), c8.LoadAcquire())

	var c16 Uint16
	c16.SubtractAcquire(2)
	require.Equal(t, uint16(0xfffe), c16.LoadAcquire())
	c16.AddRelease(3)
	require.Equal(t, uint16(1), c16.LoadAcquire())

	var c32 Uint32
	c32.SubtractRelease(1)
	require.Equal(t, uint32(math.MaxUint32), c32.LoadAcquire())

	var c64 Uint64
	c64.AddAcquire(math.MaxUint64)
	c64.Add(1)
	require.Zero(t, c64.LoadAcquire())
}

type flags uint16

func TestGenericNamedTypes(t *testing.T) {
	var s struct {
		_ [0]uint32
		f flags
	}
	Set(&s.f, 0x0101)
	Clear(&s.f, 0x0001)
	require.Equal(t, flags(0x0100), LoadAcquire(&s.f))
	require.True(t, CompareAndSwap(&s.f, 0x0100, 0x8000))
	require.Equal(t, flags(0x8000), LoadAcquire(&s.f))

	type ticket uint32
	var tk ticket
	require.Equal(t, ticket(0), FetchAdd(&tk, 3))
	require.Equal(t, ticket(3), FetchSubtract(&tk, 1))
	require.Equal(t, ticket(2), ReadAndClear(&tk))
}

func TestUintptrMatchesUint64(t *testing.T) {
	require.Equal(t, 64, WPtr.Bits())
	require.Equal(t, W64.Bits(), WPtr.Bits())

	var p uintptr
	var q uint64
	r := rand.New(rand.NewPCG(3, 4))
	for range 1000 {
		v := r.Uint64()
		switch r.IntN(5) {
		case 0:
			SetUintptr(&p, uintptr(v))
			SetUint64(&q, v)
		case 1:
			ClearUintptr(&p, uintptr(v))
			ClearUint64(&q, v)
		case 2:
			AddUintptr(&p, uintptr(v))
			AddUint64(&q, v)
		case 3:
			SubtractUintptr(&p, uintptr(v))
			SubtractUint64(&q, v)
		case 4:
			require.Equal(t,
				CompareAndSwapUint64(&q, q, v),
				CompareAndSwapUintptr(&p, p, uintptr(v)))
		}
		require.Equal(t, LoadAcquireUint64(&q), uint64(LoadAcquireUintptr(&p)))
	}
}

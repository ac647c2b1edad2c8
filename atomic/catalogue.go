package atomic

import (
	"reflect"
	"runtime"
	"slices"
	"strings"
	"sync"
)

// Entry describes one width-named entry point.
type Entry struct {
	Name      string
	Op        Op
	Width     Width
	Requested Ordering // ordering the name asks for
	Provided  Ordering // ordering the implementation gives
	Fn        any
}

// Catalogue returns every width-named entry point of the package. Provided
// always implies Requested.
func Catalogue() []Entry {
	return slices.Clone(catalogue())
}

var catalogue = sync.OnceValue(func() []Entry {
	var es []Entry
	add := func(op Op, w Width, req Ordering, fn any) {
		name := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()).Name()
		es = append(es, Entry{
			Name:      name[strings.LastIndexByte(name, '.')+1:],
			Op:        op,
			Width:     w,
			Requested: req,
			Provided:  SeqCst,
			Fn:        fn,
		})
	}
	rmw := func(w Width, fns [4][3]any) {
		for i, op := range [...]Op{OpSet, OpClear, OpAdd, OpSubtract} {
			for j, req := range [...]Ordering{SeqCst, Acquire, Release} {
				add(op, w, req, fns[i][j])
			}
		}
	}

	rmw(W8, [4][3]any{
		{SetUint8, SetAcquireUint8, SetReleaseUint8},
		{ClearUint8, ClearAcquireUint8, ClearReleaseUint8},
		{AddUint8, AddAcquireUint8, AddReleaseUint8},
		{SubtractUint8, SubtractAcquireUint8, SubtractReleaseUint8},
	})
	add(OpLoad, W8, Acquire, LoadAcquireUint8)
	add(OpStore, W8, Release, StoreReleaseUint8)
	add(OpCompareAndSwap, W8, SeqCst, CompareAndSwapUint8)

	rmw(W16, [4][3]any{
		{SetUint16, SetAcquireUint16, SetReleaseUint16},
		{ClearUint16, ClearAcquireUint16, ClearReleaseUint16},
		{AddUint16, AddAcquireUint16, AddReleaseUint16},
		{SubtractUint16, SubtractAcquireUint16, SubtractReleaseUint16},
	})
	add(OpLoad, W16, Acquire, LoadAcquireUint16)
	add(OpStore, W16, Release, StoreReleaseUint16)
	add(OpCompareAndSwap, W16, SeqCst, CompareAndSwapUint16)

	rmw(W32, [4][3]any{
		{SetUint32, SetAcquireUint32, SetReleaseUint32},
		{ClearUint32, ClearAcquireUint32, ClearReleaseUint32},
		{AddUint32, AddAcquireUint32, AddReleaseUint32},
		{SubtractUint32, SubtractAcquireUint32, SubtractReleaseUint32},
	})
	add(OpLoad, W32, Acquire, LoadAcquireUint32)
	add(OpStore, W32, Release, StoreReleaseUint32)
	add(OpCompareAndSwap, W32, SeqCst, CompareAndSwapUint32)
	add(OpCompareAndSwap, W32, Acquire, CompareAndSwapAcquireUint32)
	add(OpCompareAndSwap, W32, Release, CompareAndSwapReleaseUint32)
	add(OpReadAndClear, W32, SeqCst, ReadAndClearUint32)
	add(OpFetchAdd, W32, SeqCst, FetchAddUint32)
	add(OpFetchSubtract, W32, SeqCst, FetchSubtractUint32)

	rmw(W64, [4][3]any{
		{SetUint64, SetAcquireUint64, SetReleaseUint64},
		{ClearUint64, ClearAcquireUint64, ClearReleaseUint64},
		{AddUint64, AddAcquireUint64, AddReleaseUint64},
		{SubtractUint64, SubtractAcquireUint64, SubtractReleaseUint64},
	})
	add(OpLoad, W64, Acquire, LoadAcquireUint64)
	add(OpStore, W64, Release, StoreReleaseUint64)
	add(OpCompareAndSwap, W64, SeqCst, CompareAndSwapUint64)
	add(OpCompareAndSwap, W64, Acquire, CompareAndSwapAcquireUint64)
	add(OpCompareAndSwap, W64, Release, CompareAndSwapReleaseUint64)
	add(OpReadAndClear, W64, SeqCst, ReadAndClearUint64)

	rmw(WPtr, [4][3]any{
		{SetUintptr, SetAcquireUintptr, SetReleaseUintptr},
		{ClearUintptr, ClearAcquireUintptr, ClearReleaseUintptr},
		{AddUintptr, AddAcquireUintptr, AddReleaseUintptr},
		{SubtractUintptr, SubtractAcquireUintptr, SubtractReleaseUintptr},
	})
	add(OpLoad, WPtr, Acquire, LoadAcquireUintptr)
	add(OpStore, WPtr, Release, StoreReleaseUintptr)
	add(OpCompareAndSwap, WPtr, SeqCst, CompareAndSwapUintptr)
	add(OpCompareAndSwap, WPtr, Acquire, CompareAndSwapAcquireUintptr)
	add(OpCompareAndSwap, WPtr, Release, CompareAndSwapReleaseUintptr)
	add(OpReadAndClear, WPtr, SeqCst, ReadAndClearUintptr)

	return es
})

// Lookup returns the catalogue entry with the given name.
func Lookup(name string) (Entry, bool) {
	for _, e := range catalogue() {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

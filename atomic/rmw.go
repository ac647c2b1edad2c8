package atomic

import (
	sa "sync/atomic"
	"unsafe"
)

// The generic entry points below are the single implementation of every
// primitive. unsafe.Sizeof of the type argument is fixed per instantiation,
// so the width switch is folded away and the width-named functions compile
// down to the bare sync/atomic call (or lane loop for 8 and 16 bits).

// Set atomically computes *addr |= mask.
//
//go:nosplit
func Set[T Word](addr *T, mask T) {
	switch unsafe.Sizeof(*addr) {
	case 1, 2:
		orLane(unsafe.Pointer(addr), unsafe.Sizeof(*addr), uint32(mask))
	case 4:
		sa.OrUint32((*uint32)(unsafe.Pointer(addr)), uint32(mask))
	default:
		sa.OrUint64((*uint64)(unsafe.Pointer(addr)), uint64(mask))
	}
}

// Clear atomically computes *addr &^= mask.
//
//go:nosplit
func Clear[T Word](addr *T, mask T) {
	switch unsafe.Sizeof(*addr) {
	case 1, 2:
		andNotLane(unsafe.Pointer(addr), unsafe.Sizeof(*addr), uint32(mask))
	case 4:
		sa.AndUint32((*uint32)(unsafe.Pointer(addr)), ^uint32(mask))
	default:
		sa.AndUint64((*uint64)(unsafe.Pointer(addr)), ^uint64(mask))
	}
}

// Add atomically computes *addr += v, wrapping at the width.
//
//go:nosplit
func Add[T Word](addr *T, v T) {
	switch unsafe.Sizeof(*addr) {
	case 1, 2:
		updateLane(unsafe.Pointer(addr), unsafe.Sizeof(*addr), laneAdd, uint32(v))
	case 4:
		sa.AddUint32((*uint32)(unsafe.Pointer(addr)), uint32(v))
	default:
		sa.AddUint64((*uint64)(unsafe.Pointer(addr)), uint64(v))
	}
}

// Subtract atomically computes *addr -= v, wrapping at the width.
//
//go:nosplit
func Subtract[T Word](addr *T, v T) {
	switch unsafe.Sizeof(*addr) {
	case 1, 2:
		updateLane(unsafe.Pointer(addr), unsafe.Sizeof(*addr), laneSub, uint32(v))
	case 4:
		sa.AddUint32((*uint32)(unsafe.Pointer(addr)), -uint32(v))
	default:
		sa.AddUint64((*uint64)(unsafe.Pointer(addr)), -uint64(v))
	}
}

// CompareAndSwap sets *addr to new if it currently holds expected and
// reports whether it did. On failure *addr is left unchanged.
//
//go:nosplit
func CompareAndSwap[T Word](addr *T, expected, new T) bool {
	switch unsafe.Sizeof(*addr) {
	case 1, 2:
		return casLane(unsafe.Pointer(addr), unsafe.Sizeof(*addr), uint32(expected), uint32(new))
	case 4:
		return sa.CompareAndSwapUint32((*uint32)(unsafe.Pointer(addr)), uint32(expected), uint32(new))
	default:
		return sa.CompareAndSwapUint64((*uint64)(unsafe.Pointer(addr)), uint64(expected), uint64(new))
	}
}

// LoadAcquire atomically loads *addr.
//
//go:nosplit
func LoadAcquire[T Word](addr *T) T {
	switch unsafe.Sizeof(*addr) {
	case 1, 2:
		return T(loadLane(unsafe.Pointer(addr), unsafe.Sizeof(*addr)))
	case 4:
		return T(sa.LoadUint32((*uint32)(unsafe.Pointer(addr))))
	default:
		return T(sa.LoadUint64((*uint64)(unsafe.Pointer(addr))))
	}
}

// StoreRelease atomically stores v into *addr.
//
//go:nosplit
func StoreRelease[T Word](addr *T, v T) {
	switch unsafe.Sizeof(*addr) {
	case 1, 2:
		updateLane(unsafe.Pointer(addr), unsafe.Sizeof(*addr), laneSwap, uint32(v))
	case 4:
		sa.StoreUint32((*uint32)(unsafe.Pointer(addr)), uint32(v))
	default:
		sa.StoreUint64((*uint64)(unsafe.Pointer(addr)), uint64(v))
	}
}

// ReadAndClear atomically exchanges *addr with zero and returns the value
// it held.
//
//go:nosplit
func ReadAndClear[T Wide](addr *T) T {
	if unsafe.Sizeof(*addr) == 4 {
		return T(sa.SwapUint32((*uint32)(unsafe.Pointer(addr)), 0))
	}
	return T(sa.SwapUint64((*uint64)(unsafe.Pointer(addr)), 0))
}

// FetchAdd atomically adds v to *addr and returns the value immediately
// before the addition.
//
//go:nosplit
func FetchAdd[T ~uint32](addr *T, v T) T {
	return T(sa.AddUint32((*uint32)(unsafe.Pointer(addr)), uint32(v)) - uint32(v))
}

// FetchSubtract atomically subtracts v from *addr and returns the value
// immediately before the subtraction. It is FetchAdd of -v; for
// v == math.MinInt32 the negation wraps and 1<<31 is subtracted modulo 1<<32.
//
//go:nosplit
func FetchSubtract[T ~uint32](addr *T, v int32) T {
	d := uint32(-v)
	return T(sa.AddUint32((*uint32)(unsafe.Pointer(addr)), d) - d)
}

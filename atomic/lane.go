package atomic

import (
	sa "sync/atomic"
	"unsafe"
)

// Sub-word operations align down to the containing 32-bit word and act on the
// lane bits only. Or and AndNot need a single word instruction; the rest run
// a CAS loop that retries when any byte of the word changed underneath.

type laneOp uint8

const (
	laneAdd laneOp = iota
	laneSub
	laneSwap
)

// laneOf returns the aligned word holding the size-byte lane at p and the
// bit offset of the lane within that word.
//
//go:nosplit
func laneOf(p unsafe.Pointer, size uintptr) (*uint32, uint32) {
	off := uintptr(p) & 3
	return (*uint32)(unsafe.Add(p, -int(off))), laneShift(off, size)
}

//go:nosplit
func laneMask(size uintptr) uint32 {
	return uint32(1)<<(size*8) - 1
}

//go:nosplit
func orLane(p unsafe.Pointer, size uintptr, v uint32) {
	w, shift := laneOf(p, size)
	sa.OrUint32(w, v<<shift)
}

//go:nosplit
func andNotLane(p unsafe.Pointer, size uintptr, v uint32) {
	w, shift := laneOf(p, size)
	sa.AndUint32(w, ^(v << shift))
}

//go:nosplit
func loadLane(p unsafe.Pointer, size uintptr) uint32 {
	w, shift := laneOf(p, size)
	return sa.LoadUint32(w) >> shift & laneMask(size)
}

// updateLane applies op to the lane and returns the lane value it replaced.
func updateLane(p unsafe.Pointer, size uintptr, op laneOp, v uint32) uint32 {
	w, shift := laneOf(p, size)
	m := laneMask(size) << shift
	for {
		cur := sa.LoadUint32(w)
		old := cur & m >> shift
		var n uint32
		switch op {
		case laneAdd:
			n = old + v
		case laneSub:
			n = old - v
		default:
			n = v
		}
		if sa.CompareAndSwapUint32(w, cur, cur&^m|(n<<shift)&m) {
			return old
		}
	}
}

// casLane fails only when the lane itself differs from expected; a change
// in a neighbouring lane is retried.
func casLane(p unsafe.Pointer, size uintptr, expected, new uint32) bool {
	w, shift := laneOf(p, size)
	m := laneMask(size) << shift
	for {
		cur := sa.LoadUint32(w)
		if cur&m>>shift != expected {
			return false
		}
		if sa.CompareAndSwapUint32(w, cur, cur&^m|(new<<shift)&m) {
			return true
		}
	}
}

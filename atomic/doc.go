// Package atomic is a fixed catalogue of width-parameterized read-modify-write
// primitives for building lock-free structures and concurrent benchmarks.
//
// Every operation exists for the 8, 16, 32 and 64-bit widths, and for the
// pointer width, which is bound to the 64-bit family on supported targets
// (see ptr64.go). Operations are available three ways:
//
//   - width-named free functions over caller-owned memory (SetUint8, AddUint64,
//     CompareAndSwapUintptr, ...);
//   - generic entry points (Set, Add, CompareAndSwap, ...) whose width is
//     selected statically by the size of the type argument;
//   - cell types (Uint8, Uint16, Uint32, Uint64, Uintptr) that own correctly
//     sized and aligned storage.
//
// # Ordering
//
// All operations are sequentially consistent. The Acquire and Release suffixed
// names exist for call sites written against a weaker-ordering convention and
// call straight into the plain operation: sequential consistency is always a
// valid substitute for acquire or release, the converse is not. Catalogue
// reports the requested and the provided ordering of every entry point.
//
// A failed CompareAndSwap only promises to have observed some valid prior
// value (CASFailureOrdering). Retry loops must re-read and re-evaluate.
//
// # 8 and 16-bit widths
//
// Go has no sub-word atomic instructions, so 8 and 16-bit operations act on
// the aligned 32-bit word containing the lane and rewrite only the lane bits.
// The other bytes of that word must also be accessed only through this
// package. The Uint8 and Uint16 cells own their whole word, so they need no
// such care.
//
// # Misuse
//
// No operation reports an error. Mixing widths on overlapping memory, or
// racing plain reads and writes against these operations, is undefined and
// not detected. Addresses must be naturally aligned.
package atomic

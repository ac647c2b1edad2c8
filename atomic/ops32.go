package atomic

// SetUint32 atomically computes *addr |= mask.
func SetUint32(addr *uint32, mask uint32) { Set(addr, mask) }

// ClearUint32 atomically computes *addr &^= mask.
func ClearUint32(addr *uint32, mask uint32) { Clear(addr, mask) }

// AddUint32 atomically computes *addr += v.
func AddUint32(addr *uint32, v uint32) { Add(addr, v) }

// SubtractUint32 atomically computes *addr -= v.
func SubtractUint32(addr *uint32, v uint32) { Subtract(addr, v) }

// Acquire and release forms of the read-modify-write operations. They call
// the sequentially consistent form.

func SetAcquireUint32(addr *uint32, mask uint32)   { SetUint32(addr, mask) }
func SetReleaseUint32(addr *uint32, mask uint32)   { SetUint32(addr, mask) }
func ClearAcquireUint32(addr *uint32, mask uint32) { ClearUint32(addr, mask) }
func ClearReleaseUint32(addr *uint32, mask uint32) { ClearUint32(addr, mask) }
func AddAcquireUint32(addr *uint32, v uint32)      { AddUint32(addr, v) }
func AddReleaseUint32(addr *uint32, v uint32)      { AddUint32(addr, v) }
func SubtractAcquireUint32(addr *uint32, v uint32) { SubtractUint32(addr, v) }
func SubtractReleaseUint32(addr *uint32, v uint32) { SubtractUint32(addr, v) }

// LoadAcquireUint32 atomically loads *addr.
func LoadAcquireUint32(addr *uint32) uint32 { return LoadAcquire(addr) }

// StoreReleaseUint32 atomically stores v into *addr.
func StoreReleaseUint32(addr *uint32, v uint32) { StoreRelease(addr, v) }

// CompareAndSwapUint32 sets *addr to new if it holds expected and reports
// whether it did. A false result leaves *addr unchanged.
func CompareAndSwapUint32(addr *uint32, expected, new uint32) bool {
	return CompareAndSwap(addr, expected, new)
}

func CompareAndSwapAcquireUint32(addr *uint32, expected, new uint32) bool {
	return CompareAndSwapUint32(addr, expected, new)
}

func CompareAndSwapReleaseUint32(addr *uint32, expected, new uint32) bool {
	return CompareAndSwapUint32(addr, expected, new)
}

// ReadAndClearUint32 atomically exchanges *addr with zero and returns the old
// value.
func ReadAndClearUint32(addr *uint32) uint32 { return ReadAndClear(addr) }

// FetchAddUint32 atomically adds v to *addr and returns the previous value.
func FetchAddUint32(addr *uint32, v uint32) uint32 { return FetchAdd(addr, v) }

// FetchSubtractUint32 atomically subtracts v from *addr and returns the
// previous value.
func FetchSubtractUint32(addr *uint32, v int32) uint32 { return FetchSubtract(addr, v) }

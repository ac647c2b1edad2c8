package atomic

// SetUint64 atomically computes *addr |= mask.
func SetUint64(addr *uint64, mask uint64) { Set(addr, mask) }

// ClearUint64 atomically computes *addr &^= mask.
func ClearUint64(addr *uint64, mask uint64) { Clear(addr, mask) }

// AddUint64 atomically computes *addr += v.
func AddUint64(addr *uint64, v uint64) { Add(addr, v) }

// SubtractUint64 atomically computes *addr -= v.
func SubtractUint64(addr *uint64, v uint64) { Subtract(addr, v) }

// Acquire and release forms of the read-modify-write operations. They call
// the sequentially consistent form.

func SetAcquireUint64(addr *uint64, mask uint64)   { SetUint64(addr, mask) }
func SetReleaseUint64(addr *uint64, mask uint64)   { SetUint64(addr, mask) }
func ClearAcquireUint64(addr *uint64, mask uint64) { ClearUint64(addr, mask) }
func ClearReleaseUint64(addr *uint64, mask uint64) { ClearUint64(addr, mask) }
func AddAcquireUint64(addr *uint64, v uint64)      { AddUint64(addr, v) }
func AddReleaseUint64(addr *uint64, v uint64)      { AddUint64(addr, v) }
func SubtractAcquireUint64(addr *uint64, v uint64) { SubtractUint64(addr, v) }
func SubtractReleaseUint64(addr *uint64, v uint64) { SubtractUint64(addr, v) }

// LoadAcquireUint64 atomically loads *addr.
func LoadAcquireUint64(addr *uint64) uint64 { return LoadAcquire(addr) }

// StoreReleaseUint64 atomically stores v into *addr.
func StoreReleaseUint64(addr *uint64, v uint64) { StoreRelease(addr, v) }

// CompareAndSwapUint64 sets *addr to new if it holds expected and reports
// whether it did. A false result leaves *addr unchanged.
func CompareAndSwapUint64(addr *uint64, expected, new uint64) bool {
	return CompareAndSwap(addr, expected, new)
}

func CompareAndSwapAcquireUint64(addr *uint64, expected, new uint64) bool {
	return CompareAndSwapUint64(addr, expected, new)
}

func CompareAndSwapReleaseUint64(addr *uint64, expected, new uint64) bool {
	return CompareAndSwapUint64(addr, expected, new)
}

// ReadAndClearUint64 atomically exchanges *addr with zero and returns the old
// value.
func ReadAndClearUint64(addr *uint64) uint64 { return ReadAndClear(addr) }

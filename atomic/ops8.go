package atomic

// SetUint8 atomically computes *addr |= mask.
func SetUint8(addr *uint8, mask uint8) { Set(addr, mask) }

// ClearUint8 atomically computes *addr &^= mask.
func ClearUint8(addr *uint8, mask uint8) { Clear(addr, mask) }

// AddUint8 atomically computes *addr += v.
func AddUint8(addr *uint8, v uint8) { Add(addr, v) }

// SubtractUint8 atomically computes *addr -= v.
func SubtractUint8(addr *uint8, v uint8) { Subtract(addr, v) }

// Acquire and release forms of the read-modify-write operations. They call
// the sequentially consistent form.

func SetAcquireUint8(addr *uint8, mask uint8)   { SetUint8(addr, mask) }
func SetReleaseUint8(addr *uint8, mask uint8)   { SetUint8(addr, mask) }
func ClearAcquireUint8(addr *uint8, mask uint8) { ClearUint8(addr, mask) }
func ClearReleaseUint8(addr *uint8, mask uint8) { ClearUint8(addr, mask) }
func AddAcquireUint8(addr *uint8, v uint8)      { AddUint8(addr, v) }
func AddReleaseUint8(addr *uint8, v uint8)      { AddUint8(addr, v) }
func SubtractAcquireUint8(addr *uint8, v uint8) { SubtractUint8(addr, v) }
func SubtractReleaseUint8(addr *uint8, v uint8) { SubtractUint8(addr, v) }

// LoadAcquireUint8 atomically loads *addr.
func LoadAcquireUint8(addr *uint8) uint8 { return LoadAcquire(addr) }

// StoreReleaseUint8 atomically stores v into *addr.
func StoreReleaseUint8(addr *uint8, v uint8) { StoreRelease(addr, v) }

// CompareAndSwapUint8 sets *addr to new if it holds expected and reports
// whether it did.
func CompareAndSwapUint8(addr *uint8, expected, new uint8) bool {
	return CompareAndSwap(addr, expected, new)
}

package atomic

// SetUint16 atomically computes *addr |= mask.
func SetUint16(addr *uint16, mask uint16) { Set(addr, mask) }

// ClearUint16 atomically computes *addr &^= mask.
func ClearUint16(addr *uint16, mask uint16) { Clear(addr, mask) }

// AddUint16 atomically computes *addr += v.
func AddUint16(addr *uint16, v uint16) { Add(addr, v) }

// SubtractUint16 atomically computes *addr -= v.
func SubtractUint16(addr *uint16, v uint16) { Subtract(addr, v) }

// Acquire and release forms of the read-modify-write operations. They call
// the sequentially consistent form.

func SetAcquireUint16(addr *uint16, mask uint16)   { SetUint16(addr, mask) }
func SetReleaseUint16(addr *uint16, mask uint16)   { SetUint16(addr, mask) }
func ClearAcquireUint16(addr *uint16, mask uint16) { ClearUint16(addr, mask) }
func ClearReleaseUint16(addr *uint16, mask uint16) { ClearUint16(addr, mask) }
func AddAcquireUint16(addr *uint16, v uint16)      { AddUint16(addr, v) }
func AddReleaseUint16(addr *uint16, v uint16)      { AddUint16(addr, v) }
func SubtractAcquireUint16(addr *uint16, v uint16) { SubtractUint16(addr, v) }
func SubtractReleaseUint16(addr *uint16, v uint16) { SubtractUint16(addr, v) }

// LoadAcquireUint16 atomically loads *addr.
func LoadAcquireUint16(addr *uint16) uint16 { return LoadAcquire(addr) }

// StoreReleaseUint16 atomically stores v into *addr.
func StoreReleaseUint16(addr *uint16, v uint16) { StoreRelease(addr, v) }

// CompareAndSwapUint16 sets *addr to new if it holds expected and reports
// whether it did.
func CompareAndSwapUint16(addr *uint16, expected, new uint16) bool {
	return CompareAndSwap(addr, expected, new)
}

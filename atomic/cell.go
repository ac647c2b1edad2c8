package atomic

// Cells own correctly sized and aligned storage for one width and are only
// reachable through that width's operations. The zero value holds 0.

// Uint8 is an 8-bit atomic cell. It occupies a whole aligned 32-bit word so
// the lane emulation never touches memory owned by anyone else.
type Uint8 struct {
	_ noCopy
	_ [0]uint32
	v uint8
	_ [3]byte
}

func (c *Uint8) Set(mask uint8)          { SetUint8(&c.v, mask) }
func (c *Uint8) SetAcquire(mask uint8)   { SetAcquireUint8(&c.v, mask) }
func (c *Uint8) SetRelease(mask uint8)   { SetReleaseUint8(&c.v, mask) }
func (c *Uint8) Clear(mask uint8)        { ClearUint8(&c.v, mask) }
func (c *Uint8) ClearAcquire(mask uint8) { ClearAcquireUint8(&c.v, mask) }
func (c *Uint8) ClearRelease(mask uint8) { ClearReleaseUint8(&c.v, mask) }
func (c *Uint8) Add(v uint8)             { AddUint8(&c.v, v) }
func (c *Uint8) AddAcquire(v uint8)      { AddAcquireUint8(&c.v, v) }
func (c *Uint8) AddRelease(v uint8)      { AddReleaseUint8(&c.v, v) }
func (c *Uint8) Subtract(v uint8)        { SubtractUint8(&c.v, v) }
func (c *Uint8) SubtractAcquire(v uint8) { SubtractAcquireUint8(&c.v, v) }
func (c *Uint8) SubtractRelease(v uint8) { SubtractReleaseUint8(&c.v, v) }
func (c *Uint8) LoadAcquire() uint8      { return LoadAcquireUint8(&c.v) }
func (c *Uint8) StoreRelease(v uint8)    { StoreReleaseUint8(&c.v, v) }

func (c *Uint8) CompareAndSwap(expected, new uint8) bool {
	return CompareAndSwapUint8(&c.v, expected, new)
}

// Uint16 is a 16-bit atomic cell padded to a whole aligned 32-bit word.
type Uint16 struct {
	_ noCopy
	_ [0]uint32
	v uint16
	_ [2]byte
}

func (c *Uint16) Set(mask uint16)          { SetUint16(&c.v, mask) }
func (c *Uint16) SetAcquire(mask uint16)   { SetAcquireUint16(&c.v, mask) }
func (c *Uint16) SetRelease(mask uint16)   { SetReleaseUint16(&c.v, mask) }
func (c *Uint16) Clear(mask uint16)        { ClearUint16(&c.v, mask) }
func (c *Uint16) ClearAcquire(mask uint16) { ClearAcquireUint16(&c.v, mask) }
func (c *Uint16) ClearRelease(mask uint16) { ClearReleaseUint16(&c.v, mask) }
func (c *Uint16) Add(v uint16)             { AddUint16(&c.v, v) }
func (c *Uint16) AddAcquire(v uint16)      { AddAcquireUint16(&c.v, v) }
func (c *Uint16) AddRelease(v uint16)      { AddReleaseUint16(&c.v, v) }
func (c *Uint16) Subtract(v uint16)        { SubtractUint16(&c.v, v) }
func (c *Uint16) SubtractAcquire(v uint16) { SubtractAcquireUint16(&c.v, v) }
func (c *Uint16) SubtractRelease(v uint16) { SubtractReleaseUint16(&c.v, v) }
func (c *Uint16) LoadAcquire() uint16      { return LoadAcquireUint16(&c.v) }
func (c *Uint16) StoreRelease(v uint16)    { StoreReleaseUint16(&c.v, v) }

func (c *Uint16) CompareAndSwap(expected, new uint16) bool {
	return CompareAndSwapUint16(&c.v, expected, new)
}

// Uint32 is a 32-bit atomic cell.
type Uint32 struct {
	_ noCopy
	v uint32
}

func (c *Uint32) Set(mask uint32)          { SetUint32(&c.v, mask) }
func (c *Uint32) SetAcquire(mask uint32)   { SetAcquireUint32(&c.v, mask) }
func (c *Uint32) SetRelease(mask uint32)   { SetReleaseUint32(&c.v, mask) }
func (c *Uint32) Clear(mask uint32)        { ClearUint32(&c.v, mask) }
func (c *Uint32) ClearAcquire(mask uint32) { ClearAcquireUint32(&c.v, mask) }
func (c *Uint32) ClearRelease(mask uint32) { ClearReleaseUint32(&c.v, mask) }
func (c *Uint32) Add(v uint32)             { AddUint32(&c.v, v) }
func (c *Uint32) AddAcquire(v uint32)      { AddAcquireUint32(&c.v, v) }
func (c *Uint32) AddRelease(v uint32)      { AddReleaseUint32(&c.v, v) }
func (c *Uint32) Subtract(v uint32)        { SubtractUint32(&c.v, v) }
func (c *Uint32) SubtractAcquire(v uint32) { SubtractAcquireUint32(&c.v, v) }
func (c *Uint32) SubtractRelease(v uint32) { SubtractReleaseUint32(&c.v, v) }
func (c *Uint32) LoadAcquire() uint32      { return LoadAcquireUint32(&c.v) }
func (c *Uint32) StoreRelease(v uint32)    { StoreReleaseUint32(&c.v, v) }
func (c *Uint32) ReadAndClear() uint32     { return ReadAndClearUint32(&c.v) }

func (c *Uint32) CompareAndSwap(expected, new uint32) bool {
	return CompareAndSwapUint32(&c.v, expected, new)
}

func (c *Uint32) CompareAndSwapAcquire(expected, new uint32) bool {
	return CompareAndSwapAcquireUint32(&c.v, expected, new)
}

func (c *Uint32) CompareAndSwapRelease(expected, new uint32) bool {
	return CompareAndSwapReleaseUint32(&c.v, expected, new)
}

// FetchAdd adds v and returns the value immediately before the addition.
func (c *Uint32) FetchAdd(v uint32) uint32 { return FetchAddUint32(&c.v, v) }

// FetchSubtract subtracts v and returns the value immediately before the
// subtraction.
func (c *Uint32) FetchSubtract(v int32) uint32 { return FetchSubtractUint32(&c.v, v) }

// Uint64 is a 64-bit atomic cell.
type Uint64 struct {
	_ noCopy
	v uint64
}

func (c *Uint64) Set(mask uint64)          { SetUint64(&c.v, mask) }
func (c *Uint64) SetAcquire(mask uint64)   { SetAcquireUint64(&c.v, mask) }
func (c *Uint64) SetRelease(mask uint64)   { SetReleaseUint64(&c.v, mask) }
func (c *Uint64) Clear(mask uint64)        { ClearUint64(&c.v, mask) }
func (c *Uint64) ClearAcquire(mask uint64) { ClearAcquireUint64(&c.v, mask) }
func (c *Uint64) ClearRelease(mask uint64) { ClearReleaseUint64(&c.v, mask) }
func (c *Uint64) Add(v uint64)             { AddUint64(&c.v, v) }
func (c *Uint64) AddAcquire(v uint64)      { AddAcquireUint64(&c.v, v) }
func (c *Uint64) AddRelease(v uint64)      { AddReleaseUint64(&c.v, v) }
func (c *Uint64) Subtract(v uint64)        { SubtractUint64(&c.v, v) }
func (c *Uint64) SubtractAcquire(v uint64) { SubtractAcquireUint64(&c.v, v) }
func (c *Uint64) SubtractRelease(v uint64) { SubtractReleaseUint64(&c.v, v) }
func (c *Uint64) LoadAcquire() uint64      { return LoadAcquireUint64(&c.v) }
func (c *Uint64) StoreRelease(v uint64)    { StoreReleaseUint64(&c.v, v) }
func (c *Uint64) ReadAndClear() uint64     { return ReadAndClearUint64(&c.v) }

func (c *Uint64) CompareAndSwap(expected, new uint64) bool {
	return CompareAndSwapUint64(&c.v, expected, new)
}

func (c *Uint64) CompareAndSwapAcquire(expected, new uint64) bool {
	return CompareAndSwapAcquireUint64(&c.v, expected, new)
}

func (c *Uint64) CompareAndSwapRelease(expected, new uint64) bool {
	return CompareAndSwapReleaseUint64(&c.v, expected, new)
}

// Uintptr is a pointer-width atomic cell. Its operations are the Uint64
// operations on supported targets.
type Uintptr struct {
	_ noCopy
	v uintptr
}

func (c *Uintptr) Set(mask uintptr)          { SetUintptr(&c.v, mask) }
func (c *Uintptr) SetAcquire(mask uintptr)   { SetAcquireUintptr(&c.v, mask) }
func (c *Uintptr) SetRelease(mask uintptr)   { SetReleaseUintptr(&c.v, mask) }
func (c *Uintptr) Clear(mask uintptr)        { ClearUintptr(&c.v, mask) }
func (c *Uintptr) ClearAcquire(mask uintptr) { ClearAcquireUintptr(&c.v, mask) }
func (c *Uintptr) ClearRelease(mask uintptr) { ClearReleaseUintptr(&c.v, mask) }
func (c *Uintptr) Add(v uintptr)             { AddUintptr(&c.v, v) }
func (c *Uintptr) AddAcquire(v uintptr)      { AddAcquireUintptr(&c.v, v) }
func (c *Uintptr) AddRelease(v uintptr)      { AddReleaseUintptr(&c.v, v) }
func (c *Uintptr) Subtract(v uintptr)        { SubtractUintptr(&c.v, v) }
func (c *Uintptr) SubtractAcquire(v uintptr) { SubtractAcquireUintptr(&c.v, v) }
func (c *Uintptr) SubtractRelease(v uintptr) { SubtractReleaseUintptr(&c.v, v) }
func (c *Uintptr) LoadAcquire() uintptr      { return LoadAcquireUintptr(&c.v) }
func (c *Uintptr) StoreRelease(v uintptr)    { StoreReleaseUintptr(&c.v, v) }
func (c *Uintptr) ReadAndClear() uintptr     { return ReadAndClearUintptr(&c.v) }

func (c *Uintptr) CompareAndSwap(expected, new uintptr) bool {
	return CompareAndSwapUintptr(&c.v, expected, new)
}

func (c *Uintptr) CompareAndSwapAcquire(expected, new uintptr) bool {
	return CompareAndSwapAcquireUintptr(&c.v, expected, new)
}

func (c *Uintptr) CompareAndSwapRelease(expected, new uintptr) bool {
	return CompareAndSwapReleaseUintptr(&c.v, expected, new)
}

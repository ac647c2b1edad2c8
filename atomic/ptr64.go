//go:build amd64 || arm64 || loong64 || mips64le || ppc64le || riscv64

package atomic

import "unsafe"

// PointerBits is the width the Uintptr family binds to. Every Uintptr
// operation below forwards to the Uint64 operation of the same name; this
// file is the only place that binding is made.
const PointerBits = 64

func _() {
	// Fails to compile if uintptr is not PointerBits wide.
	var x [1]struct{}
	_ = x[unsafe.Sizeof(uintptr(0))*8-PointerBits]
}

//go:nosplit
func u64(addr *uintptr) *uint64 { return (*uint64)(unsafe.Pointer(addr)) }

func SetUintptr(addr *uintptr, mask uintptr)   { SetUint64(u64(addr), uint64(mask)) }
func ClearUintptr(addr *uintptr, mask uintptr) { ClearUint64(u64(addr), uint64(mask)) }
func AddUintptr(addr *uintptr, v uintptr)      { AddUint64(u64(addr), uint64(v)) }
func SubtractUintptr(addr *uintptr, v uintptr) { SubtractUint64(u64(addr), uint64(v)) }

func SetAcquireUintptr(addr *uintptr, mask uintptr) {
	SetAcquireUint64(u64(addr), uint64(mask))
}

func SetReleaseUintptr(addr *uintptr, mask uintptr) {
	SetReleaseUint64(u64(addr), uint64(mask))
}

func ClearAcquireUintptr(addr *uintptr, mask uintptr) {
	ClearAcquireUint64(u64(addr), uint64(mask))
}

func ClearReleaseUintptr(addr *uintptr, mask uintptr) {
	ClearReleaseUint64(u64(addr), uint64(mask))
}

func AddAcquireUintptr(addr *uintptr, v uintptr) { AddAcquireUint64(u64(addr), uint64(v)) }
func AddReleaseUintptr(addr *uintptr, v uintptr) { AddReleaseUint64(u64(addr), uint64(v)) }

func SubtractAcquireUintptr(addr *uintptr, v uintptr) {
	SubtractAcquireUint64(u64(addr), uint64(v))
}

func SubtractReleaseUintptr(addr *uintptr, v uintptr) {
	SubtractReleaseUint64(u64(addr), uint64(v))
}

func LoadAcquireUintptr(addr *uintptr) uintptr     { return uintptr(LoadAcquireUint64(u64(addr))) }
func StoreReleaseUintptr(addr *uintptr, v uintptr) { StoreReleaseUint64(u64(addr), uint64(v)) }

func CompareAndSwapUintptr(addr *uintptr, expected, new uintptr) bool {
	return CompareAndSwapUint64(u64(addr), uint64(expected), uint64(new))
}

func CompareAndSwapAcquireUintptr(addr *uintptr, expected, new uintptr) bool {
	return CompareAndSwapAcquireUint64(u64(addr), uint64(expected), uint64(new))
}

func CompareAndSwapReleaseUintptr(addr *uintptr, expected, new uintptr) bool {
	return CompareAndSwapReleaseUint64(u64(addr), uint64(expected), uint64(new))
}

func ReadAndClearUintptr(addr *uintptr) uintptr { return uintptr(ReadAndClearUint64(u64(addr))) }

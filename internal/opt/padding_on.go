//go:build !amd64 && !atomic_disable_padding && !atomic_enable_padding

package opt

import (
	"unsafe"
)

// Stripe is one per-context counter slot, padded to a cache line so
// contexts hammering their own slot do not false-share.
//
// Enabled by default for: arm64, riscv64, loong64, ppc64le, mips64le.
type Stripe struct {
	C uint64 // accessed atomically
	_ [(CacheLineSize_ - unsafe.Sizeof(struct {
		C uint64
	}{})%CacheLineSize_) % CacheLineSize_]byte
}

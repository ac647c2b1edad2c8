//go:build atomic_enable_padding && !atomic_disable_padding

package opt

import (
	"unsafe"
)

// Stripe is one per-context counter slot.
// Padding is force-enabled via the atomic_enable_padding build tag.
// Use: go build -tags=atomic_enable_padding
type Stripe struct {
	C uint64 // accessed atomically
	_ [(CacheLineSize_ - unsafe.Sizeof(struct {
		C uint64
	}{})%CacheLineSize_) % CacheLineSize_]byte
}

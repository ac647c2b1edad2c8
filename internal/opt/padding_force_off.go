//go:build atomic_disable_padding

package opt

// Stripe is one per-context counter slot.
// Padding is force-disabled via the atomic_disable_padding build tag.
// Use: go build -tags=atomic_disable_padding
type Stripe struct {
	C uint64 // accessed atomically
}

//go:build amd64 && !atomic_disable_padding && !atomic_enable_padding

package opt

// Stripe is one per-context counter slot.
// Padding is off by default on amd64.
type Stripe struct {
	C uint64 // accessed atomically
}

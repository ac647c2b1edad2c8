package stress

import (
	"fmt"
	"math"
	"runtime"
)

// Config sizes a scenario run.
type Config struct {
	// Contexts is the number of concurrently running goroutines.
	Contexts int `yaml:"contexts"`
	// Iterations is the number of operations each context performs.
	Iterations int `yaml:"iterations"`
}

// DefaultConfig returns one context per processor, capped at 8, doing
// 100000 iterations each.
func DefaultConfig() Config {
	return Config{
		Contexts:   min(runtime.GOMAXPROCS(0), 8),
		Iterations: 100000,
	}
}

// Validate reports whether c can be run. The total operation count must fit
// a 32-bit ticket.
func (c Config) Validate() error {
	if c.Contexts <= 0 {
		return fmt.Errorf("%w: contexts must be positive, got %d", ErrInvalidConfig, c.Contexts)
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidConfig, c.Iterations)
	}
	if uint64(c.Contexts)*uint64(c.Iterations) > math.MaxInt32 {
		return fmt.Errorf("%w: %d contexts x %d iterations overflows a ticket",
			ErrInvalidConfig, c.Contexts, c.Iterations)
	}
	return nil
}

func (c Config) total() int { return c.Contexts * c.Iterations }

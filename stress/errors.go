package stress

import "errors"

// Property violations. Scenario errors wrap one of these with the observed
// values; match with errors.Is.
var (
	ErrLostUpdate      = errors.New("stress: lost update")
	ErrDuplicateTicket = errors.New("stress: duplicate ticket")
	ErrTicketGap       = errors.New("stress: ticket gap")
	ErrStaleRead       = errors.New("stress: stale read after acquire")
	ErrNotCleared      = errors.New("stress: bits not cleared")
	ErrMutualExclusion = errors.New("stress: mutual exclusion violated")
)

var (
	ErrUnknownScenario = errors.New("stress: unknown scenario")
	ErrInvalidConfig   = errors.New("stress: invalid config")
)

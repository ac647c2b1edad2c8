package stress

import (
	"fmt"

	"github.com/llxisdsh/pb"
)

// TicketLedger records which context drew each fetch-add ticket.
// The zero value is ready to use and safe for concurrent use.
type TicketLedger struct {
	m pb.HashTrieMap[uint32, int]
}

// Record notes that owner drew ticket. It returns ErrDuplicateTicket if the
// ticket was already drawn, naming both owners.
func (l *TicketLedger) Record(ticket uint32, owner int) error {
	if prev, dup := l.m.LoadOrStore(ticket, owner); dup {
		return fmt.Errorf("%w: %d drawn by contexts %d and %d", ErrDuplicateTicket, ticket, prev, owner)
	}
	return nil
}

// Len returns the number of distinct tickets recorded.
func (l *TicketLedger) Len() int {
	return l.m.Size()
}

// Check verifies that exactly the tickets 0..n-1 were drawn.
func (l *TicketLedger) Check(n int) error {
	if got := l.m.Size(); got != n {
		return fmt.Errorf("%w: %d distinct tickets, want %d", ErrTicketGap, got, n)
	}
	var err error
	l.m.Range(func(ticket uint32, _ int) bool {
		if int64(ticket) >= int64(n) {
			err = fmt.Errorf("%w: ticket %d outside [0, %d)", ErrTicketGap, ticket, n)
			return false
		}
		return true
	})
	return err
}

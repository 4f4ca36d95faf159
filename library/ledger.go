package library

import (
	"time"

	"github.com/google/uuid"
)

// ledger owns the active loans, at most one per ISBN, and the append-only
// history of completed ones.
type ledger struct {
	active map[string]*BorrowRecord

	// ISBNs of active loans in borrow order, for stable scans.
	order []string

	history []BorrowRecord
}

func newLedger() *ledger {
	return &ledger{active: make(map[string]*BorrowRecord)}
}

// open starts a loan for the ISBN, timestamped now.
func (l *ledger) open(userID, isbn string, now time.Time) *BorrowRecord {
	rec := &BorrowRecord{
		RecordID:   uuid.NewString(),
		UserID:     userID,
		ISBN:       isbn,
		BorrowedAt: now,
	}
	l.active[isbn] = rec
	l.order = append(l.order, isbn)
	return rec
}

// close pops the active loan for the ISBN, stamps the return time, and
// appends it to history. ok is false when no active loan exists.
func (l *ledger) close(isbn string, now time.Time) (BorrowRecord, bool) {
	rec, ok := l.active[isbn]
	if !ok {
		return BorrowRecord{}, false
	}
	delete(l.active, isbn)
	for i, id := range l.order {
		if id == isbn {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	rec.ReturnedAt = now
	l.history = append(l.history, *rec)
	return *rec, true
}

// synthesize records a lending episode for which no active loan was found,
// with borrow and return stamped to the same instant.
func (l *ledger) synthesize(userID, isbn string, now time.Time) BorrowRecord {
	rec := BorrowRecord{
		RecordID:   uuid.NewString(),
		UserID:     userID,
		ISBN:       isbn,
		BorrowedAt: now,
		ReturnedAt: now,
	}
	l.history = append(l.history, rec)
	return rec
}

func (l *ledger) activeFor(isbn string) *BorrowRecord {
	return l.active[isbn]
}

// activeRecords returns copies of all active loans in borrow order.
func (l *ledger) activeRecords() []BorrowRecord {
	out := make([]BorrowRecord, 0, len(l.order))
	for _, isbn := range l.order {
		out = append(out, *l.active[isbn])
	}
	return out
}

// historyRecords returns a copy of the completed-loan history, oldest first.
func (l *ledger) historyRecords() []BorrowRecord {
	out := make([]BorrowRecord, len(l.history))
	copy(out, l.history)
	return out
}

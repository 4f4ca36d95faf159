// Package library implements an in-memory catalog and lending tracker:
// books indexed by ISBN, author, and title, registered users with
// per-category borrowing policies, and a ledger of active and completed
// loans. All state lives in process memory for one session.
package library

import (
	"fmt"
	"time"
)

// Logger receives diagnostic messages from the Library. *slog.Logger
// satisfies it directly.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// nopLogger is the default: the core stays silent unless a logger is injected.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Library composes the catalog, user directory, and loan ledger and is the
// sole mutator of all three. Operations are synchronous and whole-operation
// atomic: every precondition is checked before the first mutation, so a
// failed call leaves no partial state behind. Single-threaded use only.
type Library struct {
	catalog *catalog
	users   *directory
	loans   *ledger

	clock      Clock
	virtualDay time.Duration
	logger     Logger
}

// Option configures a Library.
type Option func(*Library)

// WithClock replaces the wall clock, letting tests simulate time.
func WithClock(c Clock) Option {
	return func(l *Library) { l.clock = c }
}

// WithVirtualDay sets the duration of one logical day used in due-date
// calculations. The default is DefaultVirtualDay.
func WithVirtualDay(d time.Duration) Option {
	return func(l *Library) { l.virtualDay = d }
}

// WithLogger sets the logger for diagnostic messages.
func WithLogger(logger Logger) Option {
	return func(l *Library) { l.logger = logger }
}

// New creates an empty Library.
func New(opts ...Option) *Library {
	l := &Library{
		catalog:    newCatalog(),
		users:      newDirectory(),
		loans:      newLedger(),
		clock:      systemClock{},
		virtualDay: DefaultVirtualDay,
		logger:     nopLogger{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ------------------ Catalog ------------------

// AddBook puts a new, available book into the catalog and both secondary
// indexes. Fails with ErrDuplicateISBN if the ISBN is already present.
func (l *Library) AddBook(title, author, isbn, genre string) error {
	return l.catalog.add(title, author, isbn, genre)
}

// RemoveBook deletes the book from the catalog and prunes the index
// buckets it occupied. Fails with ErrBookNotFound if the ISBN is absent
// and ErrBookBorrowed while the book is on loan.
func (l *Library) RemoveBook(isbn string) error {
	return l.catalog.remove(isbn)
}

// FindBook returns the book for the ISBN, or nil.
func (l *Library) FindBook(isbn string) *Book {
	return l.catalog.find(isbn)
}

// SearchBooks matches the query against three exact tiers in order: ISBN,
// normalized author, normalized title. The first matching tier wins. An
// empty result is not an error.
func (l *Library) SearchBooks(query string) []*Book {
	return l.catalog.search(query)
}

// AllBooks lists the catalog in insertion order.
func (l *Library) AllBooks() []*Book {
	return l.catalog.all()
}

// ------------------ Users ------------------

// RegisterUser creates a user with an empty held-ISBN set. The category
// text is matched case- and whitespace-insensitively against the fixed
// set; fails with ErrDuplicateUserID or ErrInvalidCategory.
func (l *Library) RegisterUser(name, id, email, categoryText string) error {
	_, err := l.users.register(name, id, email, categoryText)
	return err
}

// FindUser returns the user for the ID, or nil.
func (l *Library) FindUser(id string) *User {
	return l.users.find(id)
}

// AllUsers lists registered users in registration order.
func (l *Library) AllUsers() []*User {
	return l.users.all()
}

// ------------------ Eligibility ------------------

// HasOverdue reports whether any book the user currently holds has an
// active loan past its due date.
func (l *Library) HasOverdue(userID string) (bool, error) {
	user := l.users.find(userID)
	if user == nil {
		return false, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	return l.hasOverdue(user), nil
}

// OverdueISBNs returns the user's overdue ISBNs in held order.
func (l *Library) OverdueISBNs(userID string) ([]string, error) {
	user := l.users.find(userID)
	if user == nil {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	now := l.clock.Now()
	policy := user.Category.Policy()
	var out []string
	for _, isbn := range user.held {
		rec := l.loans.activeFor(isbn)
		if rec == nil {
			continue
		}
		if now.After(dueDate(rec.BorrowedAt, policy, l.virtualDay)) {
			out = append(out, isbn)
		}
	}
	return out, nil
}

// CanBorrow reports whether the user is under their category's loan limit
// and holds no overdue book.
func (l *Library) CanBorrow(userID string) (bool, error) {
	user := l.users.find(userID)
	if user == nil {
		return false, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	return l.canBorrow(user), nil
}

func (l *Library) hasOverdue(user *User) bool {
	now := l.clock.Now()
	policy := user.Category.Policy()
	for _, isbn := range user.held {
		rec := l.loans.activeFor(isbn)
		if rec == nil {
			continue
		}
		if now.After(dueDate(rec.BorrowedAt, policy, l.virtualDay)) {
			return true
		}
	}
	return false
}

func (l *Library) canBorrow(user *User) bool {
	return len(user.held) < user.Category.Policy().MaxBooks && !l.hasOverdue(user)
}

// ------------------ Circulation ------------------

// BorrowBook checks the book out to the user: availability flips off, the
// ISBN joins the user's held set, and an active loan is opened timestamped
// now. Fails with ErrUserNotFound, ErrBookNotFound, ErrBookUnavailable,
// or ErrBorrowNotAllowed, in that order, before any state changes.
func (l *Library) BorrowBook(userID, isbn string) error {
	user := l.users.find(userID)
	if user == nil {
		return fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	book := l.catalog.find(isbn)
	if book == nil {
		return fmt.Errorf("%w: %s", ErrBookNotFound, isbn)
	}
	if !book.Available {
		return fmt.Errorf("%w: %s", ErrBookUnavailable, isbn)
	}
	if !l.canBorrow(user) {
		return fmt.Errorf("%w: %s", ErrBorrowNotAllowed, userID)
	}

	book.Available = false
	user.addHeld(isbn)
	l.loans.open(userID, isbn, l.clock.Now())
	return nil
}

// ReturnBook takes the book back: availability flips on, the ISBN leaves
// the user's held set, and the active loan is stamped and moved to
// history. Fails with ErrUserNotFound, ErrBookNotFound, or
// ErrNotBorrowedByUser before any state changes.
//
// A held ISBN without an active loan should be impossible while borrow and
// return are the only mutators; if it happens anyway a record with borrow
// and return stamped to the same instant is appended to history and the
// divergence is logged.
func (l *Library) ReturnBook(userID, isbn string) error {
	user := l.users.find(userID)
	if user == nil {
		return fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	book := l.catalog.find(isbn)
	if book == nil {
		return fmt.Errorf("%w: %s", ErrBookNotFound, isbn)
	}
	if !user.Holds(isbn) {
		return fmt.Errorf("%w: user %s, isbn %s", ErrNotBorrowedByUser, userID, isbn)
	}

	book.Available = true
	user.removeHeld(isbn)
	now := l.clock.Now()
	if _, ok := l.loans.close(isbn, now); !ok {
		l.logger.Warn("held book has no active loan, synthesizing record",
			"user_id", userID, "isbn", isbn)
		l.loans.synthesize(userID, isbn, now)
	}
	return nil
}

// GetOverdue scans all active loans and returns those past their due date
// under the borrowing user's policy, in borrow order. Loans whose user
// cannot be resolved are skipped.
func (l *Library) GetOverdue() []BorrowRecord {
	now := l.clock.Now()
	var out []BorrowRecord
	for _, rec := range l.loans.activeRecords() {
		user := l.users.find(rec.UserID)
		if user == nil {
			continue
		}
		if now.After(dueDate(rec.BorrowedAt, user.Category.Policy(), l.virtualDay)) {
			out = append(out, rec)
		}
	}
	return out
}

// DueDate returns when the active loan for the ISBN falls due, or false
// if the book is not on loan or the borrower is unknown.
func (l *Library) DueDate(isbn string) (time.Time, bool) {
	rec := l.loans.activeFor(isbn)
	if rec == nil {
		return time.Time{}, false
	}
	user := l.users.find(rec.UserID)
	if user == nil {
		return time.Time{}, false
	}
	return dueDate(rec.BorrowedAt, user.Category.Policy(), l.virtualDay), true
}

// History returns the completed-loan history, oldest first.
func (l *Library) History() []BorrowRecord {
	return l.loans.historyRecords()
}

// ActiveLoans returns copies of all open loans in borrow order.
func (l *Library) ActiveLoans() []BorrowRecord {
	return l.loans.activeRecords()
}

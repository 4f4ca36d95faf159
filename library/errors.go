package library

import "errors"

// Every failure the core can raise. Callers branch with errors.Is; the
// interactive shell is the only place messages are rendered to the user.
var (
	// ErrDuplicateISBN indicates an add for an ISBN already in the catalog.
	ErrDuplicateISBN = errors.New("book with this ISBN already exists")

	// ErrBookNotFound indicates the ISBN is not in the catalog.
	ErrBookNotFound = errors.New("book not found")

	// ErrBookBorrowed indicates a removal attempt while the book is on loan.
	ErrBookBorrowed = errors.New("book is currently borrowed")

	// ErrDuplicateUserID indicates a registration for an ID already taken.
	ErrDuplicateUserID = errors.New("user with this ID already exists")

	// ErrInvalidCategory indicates an unrecognized user category.
	ErrInvalidCategory = errors.New("invalid user category")

	// ErrUserNotFound indicates the user ID is not registered.
	ErrUserNotFound = errors.New("user not found")

	// ErrBookUnavailable indicates a borrow attempt on a checked-out book.
	ErrBookUnavailable = errors.New("book is currently not available")

	// ErrBorrowNotAllowed indicates the user is at their loan limit or holds
	// an overdue book.
	ErrBorrowNotAllowed = errors.New("user cannot borrow more books or has overdue books")

	// ErrNotBorrowedByUser indicates a return for a book the user does not hold.
	ErrNotBorrowedByUser = errors.New("book is not borrowed by this user")
)

package library

import "time"

// Book represents a single physical copy identified by its ISBN.
// Available is false exactly while an active loan exists for the ISBN.
type Book struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	ISBN      string `json:"isbn"`
	Genre     string `json:"genre,omitempty"`
	Available bool   `json:"available"`
}

// User is a registered borrower. The held-ISBN set is managed exclusively
// by the Library and kept in borrow order for display.
type User struct {
	Name     string   `json:"name"`
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	Category Category `json:"category"`

	held []string
}

// HeldISBNs returns the ISBNs the user currently has on loan, oldest first.
func (u *User) HeldISBNs() []string {
	out := make([]string, len(u.held))
	copy(out, u.held)
	return out
}

// Holds reports whether the user currently has the given ISBN on loan.
func (u *User) Holds(isbn string) bool {
	for _, held := range u.held {
		if held == isbn {
			return true
		}
	}
	return false
}

func (u *User) addHeld(isbn string) {
	u.held = append(u.held, isbn)
}

func (u *User) removeHeld(isbn string) {
	for i, held := range u.held {
		if held == isbn {
			u.held = append(u.held[:i], u.held[i+1:]...)
			return
		}
	}
}

// BorrowRecord is one lending episode. While the loan is active ReturnedAt
// is the zero time; it is stamped when the record moves to history.
type BorrowRecord struct {
	RecordID   string    `json:"record_id"`
	UserID     string    `json:"user_id"`
	ISBN       string    `json:"isbn"`
	BorrowedAt time.Time `json:"borrowed_at"`
	ReturnedAt time.Time `json:"returned_at"`
}

// Active reports whether the loan is still open.
func (r BorrowRecord) Active() bool {
	return r.ReturnedAt.IsZero()
}

package library

import (
	"fmt"
	"strings"
)

// Category is the closed set of borrower kinds. Each category carries a
// fixed lending policy; there is no open extension.
type Category string

const (
	CategoryStudent Category = "student"
	CategoryFaculty Category = "faculty"
	CategoryGuest   Category = "guest"
)

// Policy is the lending policy attached to a category: how many books may
// be held at once and how many logical days a loan runs before it is due.
type Policy struct {
	MaxBooks   int
	BorrowDays int
}

var policies = map[Category]Policy{
	CategoryStudent: {MaxBooks: 3, BorrowDays: 14},
	CategoryFaculty: {MaxBooks: 10, BorrowDays: 30},
	CategoryGuest:   {MaxBooks: 1, BorrowDays: 7},
}

// Policy returns the lending policy for the category.
func (c Category) Policy() Policy {
	return policies[c]
}

// ParseCategory matches free text against the fixed category set,
// ignoring case and surrounding whitespace.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := policies[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

func (c Category) String() string {
	return string(c)
}

package library

import "fmt"

// directory owns the registered users, keyed by user ID.
type directory struct {
	users map[string]*User

	// User IDs in registration order, for stable listings.
	order []string
}

func newDirectory() *directory {
	return &directory{users: make(map[string]*User)}
}

// register validates the category text and creates the user with an empty
// held-ISBN set. Category matching is case- and whitespace-insensitive.
func (d *directory) register(name, id, email, categoryText string) (*User, error) {
	if _, exists := d.users[id]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateUserID, id)
	}
	category, err := ParseCategory(categoryText)
	if err != nil {
		return nil, err
	}
	user := &User{
		Name:     name,
		ID:       id,
		Email:    email,
		Category: category,
	}
	d.users[id] = user
	d.order = append(d.order, id)
	return user, nil
}

func (d *directory) find(id string) *User {
	return d.users[id]
}

func (d *directory) all() []*User {
	out := make([]*User, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.users[id])
	}
	return out
}

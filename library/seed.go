package library

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Seed is the startup data format: books and users applied through the
// normal operations before the interactive session begins. Seed files are
// input only; session state is never written back.
type Seed struct {
	Books []SeedBook `json:"books"`
	Users []SeedUser `json:"users"`
}

// SeedBook is one catalog entry in a seed file.
type SeedBook struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
	Genre  string `json:"genre,omitempty"`
}

// SeedUser is one registration in a seed file.
type SeedUser struct {
	Name     string `json:"name"`
	ID       string `json:"id"`
	Email    string `json:"email"`
	Category string `json:"category"`
}

// LoadSeed reads and parses a seed file.
func LoadSeed(path string) (Seed, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file: %w", err)
	}
	var seed Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("parse seed file: %w", err)
	}
	return seed, nil
}

// ApplySeed adds every book and registers every user in the seed, stopping
// at the first failure.
func (l *Library) ApplySeed(seed Seed) error {
	for _, b := range seed.Books {
		if err := l.AddBook(b.Title, b.Author, b.ISBN, b.Genre); err != nil {
			return fmt.Errorf("seed book %q: %w", b.ISBN, err)
		}
	}
	for _, u := range seed.Users {
		if err := l.RegisterUser(u.Name, u.ID, u.Email, u.Category); err != nil {
			return fmt.Errorf("seed user %q: %w", u.ID, err)
		}
	}
	return nil
}

// DefaultSeed is the built-in demo data used when no seed file is given.
func DefaultSeed() Seed {
	return Seed{
		Books: []SeedBook{
			{Title: "The Go Programming Language", Author: "Alan Donovan", ISBN: "9780134190440", Genre: "Programming"},
			{Title: "The Practice of Programming", Author: "Brian Kernighan", ISBN: "9780201615869", Genre: "Programming"},
		},
		Users: []SeedUser{
			{Name: "Sasha", ID: "123", Email: "sasha@example.com", Category: "guest"},
		},
	}
}

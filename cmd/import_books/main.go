// Command import_books checks a seed file before it is handed to the
// interactive shell: it applies every book and user to a fresh in-memory
// library and prints the resulting catalog, so bad entries (duplicate
// ISBNs, unknown categories) surface up front instead of at startup.
package main

import (
	"fmt"
	"os"
	"strings"

	"library-lending/library"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <seed.json>\n", os.Args[0])
		os.Exit(2)
	}
	seedPath := os.Args[1]

	seed, err := library.LoadSeed(seedPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading seed: %v\n", err)
		os.Exit(1)
	}

	lib := library.New()
	if err := lib.ApplySeed(seed); err != nil {
		fmt.Fprintf(os.Stderr, "Seed is invalid: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seed OK: %d books, %d users\n", len(seed.Books), len(seed.Users))

	books := lib.AllBooks()
	if len(books) > 0 {
		fmt.Println("\nCatalog:")
		fmt.Printf("%-15s %-50s %-30s %s\n", "ISBN", "Title", "Author", "Genre")
		fmt.Println(strings.Repeat("-", 110))
		for _, b := range books {
			genre := b.Genre
			if genre == "" {
				genre = "-"
			}
			fmt.Printf("%-15s %-50s %-30s %s\n",
				b.ISBN, truncateString(b.Title, 50), truncateString(b.Author, 30), genre)
		}
	}

	users := lib.AllUsers()
	if len(users) > 0 {
		fmt.Println("\nUsers:")
		fmt.Printf("%-10s %-30s %s\n", "ID", "Name", "Category")
		fmt.Println(strings.Repeat("-", 55))
		for _, u := range users {
			fmt.Printf("%-10s %-30s %s\n", u.ID, truncateString(u.Name, 30), u.Category)
		}
	}
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"library-lending/library"

	"github.com/spf13/cobra"
)

var (
	virtualDay time.Duration
	seedPath   string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "library-lending",
	Short: "Interactive in-memory library catalog and lending tracker",
	Long: `Runs an interactive session over an in-memory library: add and search
books, register users, borrow and return against per-category limits, and
list overdue loans. Due dates run on an accelerated "virtual day" so
overdue behavior can be observed within a session. Nothing is persisted.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().DurationVar(&virtualDay, "virtual-day", library.DefaultVirtualDay,
		"duration of one logical day for due-date calculations")
	rootCmd.Flags().StringVar(&seedPath, "seed", "",
		"path to a JSON seed file of books and users (default: built-in demo data)")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false,
		"log core diagnostics to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	opts := []library.Option{library.WithVirtualDay(virtualDay)}
	if verbose {
		opts = append(opts, library.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))))
	}
	lib := library.New(opts...)

	seed := library.DefaultSeed()
	if seedPath != "" {
		var err error
		seed, err = library.LoadSeed(seedPath)
		if err != nil {
			return err
		}
	}
	if err := lib.ApplySeed(seed); err != nil {
		return err
	}

	// Exit cleanly on Ctrl-C, matching an explicit "exit".
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		fmt.Println("\nGoodbye!")
		os.Exit(0)
	}()

	menuLoop(lib)
	return nil
}

func menuLoop(lib *library.Library) {
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Welcome to the Library Lending Tracker!")
	fmt.Println("Available commands:")
	fmt.Println("  Books: add book, remove book, search, list books")
	fmt.Println("  Users: register user, list users")
	fmt.Println("  Circulation: borrow, return, overdue, history")
	fmt.Println("  System: exit")
	fmt.Printf("\nOne logical day lasts %s; loans fall due accordingly.\n", virtualDay)

	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}
		cmd := strings.TrimSpace(scanner.Text())

		switch cmd {
		case "add book":
			handleAddBook(scanner, lib)
		case "remove book":
			handleRemoveBook(scanner, lib)
		case "register user":
			handleRegisterUser(scanner, lib)
		case "borrow":
			handleBorrow(scanner, lib)
		case "return":
			handleReturn(scanner, lib)
		case "search":
			handleSearch(scanner, lib)
		case "overdue":
			handleOverdue(lib)
		case "history":
			handleHistory(lib)
		case "list books":
			handleListBooks(lib)
		case "list users":
			handleListUsers(lib)
		case "exit":
			fmt.Println("Goodbye!")
			return
		case "":
			// ignore blank lines
		default:
			fmt.Println("Unknown command. Type one of the available commands listed above.")
		}
	}
}

// promptNonEmpty re-prompts until the user enters a non-blank value.
// Returns false if input is exhausted.
func promptNonEmpty(sc *bufio.Scanner, prompt string) (string, bool) {
	for {
		fmt.Print(prompt)
		if !sc.Scan() {
			return "", false
		}
		val := strings.TrimSpace(sc.Text())
		if val != "" {
			return val, true
		}
		fmt.Println("Input cannot be empty. Please try again.")
	}
}

func handleAddBook(sc *bufio.Scanner, lib *library.Library) {
	title, ok := promptNonEmpty(sc, "Title: ")
	if !ok {
		return
	}
	author, ok := promptNonEmpty(sc, "Author: ")
	if !ok {
		return
	}
	isbn, ok := promptNonEmpty(sc, "ISBN: ")
	if !ok {
		return
	}
	fmt.Print("Genre (optional): ")
	if !sc.Scan() {
		return
	}
	genre := strings.TrimSpace(sc.Text())

	if err := lib.AddBook(title, author, isbn, genre); err != nil {
		fmt.Printf("Error adding book: %v\n", err)
		return
	}
	fmt.Printf("Added '%s' by %s (ISBN %s).\n", title, author, isbn)
}

func handleRemoveBook(sc *bufio.Scanner, lib *library.Library) {
	isbn, ok := promptNonEmpty(sc, "ISBN to remove: ")
	if !ok {
		return
	}
	if err := lib.RemoveBook(isbn); err != nil {
		fmt.Printf("Error removing book: %v\n", err)
		return
	}
	fmt.Println("Removed.")
}

func handleRegisterUser(sc *bufio.Scanner, lib *library.Library) {
	name, ok := promptNonEmpty(sc, "Name: ")
	if !ok {
		return
	}
	id, ok := promptNonEmpty(sc, "User ID: ")
	if !ok {
		return
	}
	email, ok := promptNonEmpty(sc, "Email: ")
	if !ok {
		return
	}
	fmt.Println("Categories: student, faculty, guest")
	category, ok := promptNonEmpty(sc, "Category: ")
	if !ok {
		return
	}

	if err := lib.RegisterUser(name, id, email, category); err != nil {
		fmt.Printf("Error registering user: %v\n", err)
		return
	}
	fmt.Printf("Registered %s (ID %s).\n", name, id)
}

func handleBorrow(sc *bufio.Scanner, lib *library.Library) {
	userID, ok := promptNonEmpty(sc, "User ID: ")
	if !ok {
		return
	}
	isbn, ok := promptNonEmpty(sc, "ISBN: ")
	if !ok {
		return
	}
	if err := lib.BorrowBook(userID, isbn); err != nil {
		fmt.Printf("Error borrowing book: %v\n", err)
		return
	}
	book := lib.FindBook(isbn)
	if due, ok := lib.DueDate(isbn); ok {
		fmt.Printf("Borrowed '%s'. Due %s.\n", book.Title, due.Format(time.RFC3339))
	} else {
		fmt.Printf("Borrowed '%s'.\n", book.Title)
	}
}

func handleReturn(sc *bufio.Scanner, lib *library.Library) {
	userID, ok := promptNonEmpty(sc, "User ID: ")
	if !ok {
		return
	}
	isbn, ok := promptNonEmpty(sc, "ISBN: ")
	if !ok {
		return
	}
	if err := lib.ReturnBook(userID, isbn); err != nil {
		fmt.Printf("Error returning book: %v\n", err)
		return
	}
	fmt.Println("Returned. The book is available again.")
}

func handleSearch(sc *bufio.Scanner, lib *library.Library) {
	query, ok := promptNonEmpty(sc, "Query (exact ISBN, author, or title): ")
	if !ok {
		return
	}
	books := lib.SearchBooks(query)
	if len(books) == 0 {
		fmt.Printf("No books found matching '%s'.\n", query)
		return
	}
	fmt.Printf("Found %d book(s) matching '%s':\n", len(books), query)
	printBookTable(books)
}

func handleOverdue(lib *library.Library) {
	overdue := lib.GetOverdue()
	if len(overdue) == 0 {
		fmt.Println("No overdue books.")
		return
	}
	fmt.Printf("%-15s %-10s %-25s %-25s\n", "ISBN", "User", "Borrowed", "Due")
	fmt.Println(strings.Repeat("-", 80))
	for _, rec := range overdue {
		due := ""
		if d, ok := lib.DueDate(rec.ISBN); ok {
			due = d.Format(time.RFC3339)
		}
		fmt.Printf("%-15s %-10s %-25s %-25s\n",
			rec.ISBN, rec.UserID, rec.BorrowedAt.Format(time.RFC3339), due)
	}
}

func handleHistory(lib *library.Library) {
	history := lib.History()
	if len(history) == 0 {
		fmt.Println("No completed loans yet.")
		return
	}
	fmt.Printf("%-15s %-10s %-25s %-25s\n", "ISBN", "User", "Borrowed", "Returned")
	fmt.Println(strings.Repeat("-", 80))
	for _, rec := range history {
		fmt.Printf("%-15s %-10s %-25s %-25s\n",
			rec.ISBN, rec.UserID,
			rec.BorrowedAt.Format(time.RFC3339), rec.ReturnedAt.Format(time.RFC3339))
	}
}

func handleListBooks(lib *library.Library) {
	books := lib.AllBooks()
	if len(books) == 0 {
		fmt.Println("No books in library.")
		return
	}
	printBookTable(books)
}

func handleListUsers(lib *library.Library) {
	users := lib.AllUsers()
	if len(users) == 0 {
		fmt.Println("No users registered.")
		return
	}
	fmt.Printf("%-10s %-25s %-30s %-10s %s\n", "ID", "Name", "Email", "Category", "Held ISBNs")
	fmt.Println(strings.Repeat("-", 100))
	for _, u := range users {
		held := strings.Join(u.HeldISBNs(), ", ")
		if held == "" {
			held = "none"
		}
		fmt.Printf("%-10s %-25s %-30s %-10s %s\n",
			u.ID, truncateString(u.Name, 25), truncateString(u.Email, 30), u.Category, held)
	}
}

func printBookTable(books []*library.Book) {
	fmt.Printf("%-15s %-30s %-25s %-15s %s\n", "ISBN", "Title", "Author", "Genre", "Status")
	fmt.Println(strings.Repeat("-", 100))
	for _, b := range books {
		status := "Available"
		if !b.Available {
			status = "Borrowed"
		}
		genre := b.Genre
		if genre == "" {
			genre = "-"
		}
		fmt.Printf("%-15s %-30s %-25s %-15s %s\n",
			b.ISBN, truncateString(b.Title, 30), truncateString(b.Author, 25),
			truncateString(genre, 15), status)
	}
}

func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength-3] + "..."
}

package library

import (
	"fmt"
	"strings"
)

// catalog owns the book set. Alongside the primary ISBN map it maintains
// two secondary indexes, keyed by normalized author and title, that must
// name exactly the ISBNs present in the primary map.
type catalog struct {
	books    map[string]*Book
	byAuthor map[string]map[string]struct{}
	byTitle  map[string]map[string]struct{}

	// ISBNs in insertion order, for stable listings.
	order []string
}

func newCatalog() *catalog {
	return &catalog{
		books:    make(map[string]*Book),
		byAuthor: make(map[string]map[string]struct{}),
		byTitle:  make(map[string]map[string]struct{}),
	}
}

// normalizeKey is the index normalization: lowercase plus trim.
func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func addToIndex(idx map[string]map[string]struct{}, key, isbn string) {
	bucket, ok := idx[key]
	if !ok {
		bucket = make(map[string]struct{})
		idx[key] = bucket
	}
	bucket[isbn] = struct{}{}
}

// removeFromIndex drops the ISBN from the bucket and prunes the key once
// the bucket is empty.
func removeFromIndex(idx map[string]map[string]struct{}, key, isbn string) {
	bucket, ok := idx[key]
	if !ok {
		return
	}
	delete(bucket, isbn)
	if len(bucket) == 0 {
		delete(idx, key)
	}
}

func (c *catalog) add(title, author, isbn, genre string) error {
	if _, exists := c.books[isbn]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateISBN, isbn)
	}
	c.books[isbn] = &Book{
		Title:     title,
		Author:    author,
		ISBN:      isbn,
		Genre:     genre,
		Available: true,
	}
	addToIndex(c.byAuthor, normalizeKey(author), isbn)
	addToIndex(c.byTitle, normalizeKey(title), isbn)
	c.order = append(c.order, isbn)
	return nil
}

func (c *catalog) remove(isbn string) error {
	book, ok := c.books[isbn]
	if !ok {
		return fmt.Errorf("%w: %s", ErrBookNotFound, isbn)
	}
	if !book.Available {
		return fmt.Errorf("%w: %s", ErrBookBorrowed, isbn)
	}
	removeFromIndex(c.byAuthor, normalizeKey(book.Author), isbn)
	removeFromIndex(c.byTitle, normalizeKey(book.Title), isbn)
	delete(c.books, isbn)
	for i, id := range c.order {
		if id == isbn {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func (c *catalog) find(isbn string) *Book {
	return c.books[isbn]
}

// search resolves the normalized query against three exact tiers in order:
// ISBN, author bucket, title bucket. The first tier that matches wins;
// there is no partial or substring matching.
func (c *catalog) search(query string) []*Book {
	q := normalizeKey(query)
	if book, ok := c.books[q]; ok {
		return []*Book{book}
	}
	if bucket, ok := c.byAuthor[q]; ok {
		return c.collect(bucket)
	}
	if bucket, ok := c.byTitle[q]; ok {
		return c.collect(bucket)
	}
	return nil
}

// collect resolves an index bucket to books in catalog insertion order.
func (c *catalog) collect(bucket map[string]struct{}) []*Book {
	var out []*Book
	for _, isbn := range c.order {
		if _, ok := bucket[isbn]; ok {
			out = append(out, c.books[isbn])
		}
	}
	return out
}

func (c *catalog) all() []*Book {
	out := make([]*Book, 0, len(c.order))
	for _, isbn := range c.order {
		out = append(out, c.books[isbn])
	}
	return out
}

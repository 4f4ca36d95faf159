package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddBookDuplicateISBNLeavesStateUnchanged(t *testing.T) {
	lib := New()
	require.NoError(t, lib.AddBook("Dune", "Frank Herbert", "111", "SF"))

	err := lib.AddBook("Completely Different", "Someone Else", "111", "")
	require.ErrorIs(t, err, ErrDuplicateISBN)

	// Original entry and its index placement survive untouched.
	book := lib.FindBook("111")
	require.NotNil(t, book)
	assert.Equal(t, "Dune", book.Title)
	assert.True(t, book.Available)

	byAuthor := lib.SearchBooks("frank herbert")
	require.Len(t, byAuthor, 1)
	assert.Equal(t, "111", byAuthor[0].ISBN)
	assert.Empty(t, lib.SearchBooks("someone else"))
	assert.Len(t, lib.AllBooks(), 1)
}

func TestSearchTiers(t *testing.T) {
	lib := New()
	require.NoError(t, lib.AddBook("Dune", "Frank Herbert", "111", "SF"))
	require.NoError(t, lib.AddBook("Dune Messiah", "Frank Herbert", "222", "SF"))
	require.NoError(t, lib.AddBook("Dune", "Other Author", "333", ""))

	// Exact ISBN returns exactly that book.
	got := lib.SearchBooks("222")
	require.Len(t, got, 1)
	assert.Equal(t, "Dune Messiah", got[0].Title)

	// Author bucket, normalization applied to the query.
	got = lib.SearchBooks("  FRANK herbert ")
	require.Len(t, got, 2)
	assert.Equal(t, "111", got[0].ISBN)
	assert.Equal(t, "222", got[1].ISBN)

	// Title bucket spans authors.
	got = lib.SearchBooks("dune")
	require.Len(t, got, 2)
	assert.Equal(t, "111", got[0].ISBN)
	assert.Equal(t, "333", got[1].ISBN)

	assert.Empty(t, lib.SearchBooks("no such thing"))
}

func TestSearchISBNTierWinsOverTitle(t *testing.T) {
	lib := New()
	// A book whose ISBN collides with another book's normalized title.
	require.NoError(t, lib.AddBook("Some Title", "A", "dune", ""))
	require.NoError(t, lib.AddBook("Dune", "B", "999", ""))

	got := lib.SearchBooks("dune")
	require.Len(t, got, 1)
	assert.Equal(t, "Some Title", got[0].Title)
}

func TestSearchNoPartialMatching(t *testing.T) {
	lib := New()
	require.NoError(t, lib.AddBook("The Left Hand of Darkness", "Ursula K. Le Guin", "111", ""))

	assert.Empty(t, lib.SearchBooks("Left Hand"))
	assert.Empty(t, lib.SearchBooks("Le Guin"))
	assert.Empty(t, lib.SearchBooks("11"))
}

func TestRemoveBookPrunesIndexBuckets(t *testing.T) {
	lib := New()
	require.NoError(t, lib.AddBook("Dune", "Frank Herbert", "111", ""))
	require.NoError(t, lib.AddBook("Dune Messiah", "Frank Herbert", "222", ""))

	require.NoError(t, lib.RemoveBook("111"))

	assert.Nil(t, lib.FindBook("111"))
	assert.Empty(t, lib.SearchBooks("dune"))

	// The shared author bucket shrinks but stays.
	got := lib.SearchBooks("frank herbert")
	require.Len(t, got, 1)
	assert.Equal(t, "222", got[0].ISBN)

	require.NoError(t, lib.RemoveBook("222"))
	assert.Empty(t, lib.SearchBooks("frank herbert"))

	// Pruned means the key is gone, not present with an empty bucket.
	_, ok := lib.catalog.byAuthor["frank herbert"]
	assert.False(t, ok)
	_, ok = lib.catalog.byTitle["dune messiah"]
	assert.False(t, ok)
}

func TestRemoveBookErrors(t *testing.T) {
	lib := New()
	require.NoError(t, lib.AddBook("Dune", "Frank Herbert", "111", ""))
	require.NoError(t, lib.RegisterUser("Ada", "u1", "ada@example.com", "student"))
	require.NoError(t, lib.BorrowBook("u1", "111"))

	assert.ErrorIs(t, lib.RemoveBook("missing"), ErrBookNotFound)
	assert.ErrorIs(t, lib.RemoveBook("111"), ErrBookBorrowed)

	// Still present and still indexed after the failed removal.
	require.NotNil(t, lib.FindBook("111"))
	require.Len(t, lib.SearchBooks("frank herbert"), 1)
}

func TestAllBooksInsertionOrder(t *testing.T) {
	lib := New()
	require.NoError(t, lib.AddBook("C", "x", "3", ""))
	require.NoError(t, lib.AddBook("A", "x", "1", ""))
	require.NoError(t, lib.AddBook("B", "x", "2", ""))

	var isbns []string
	for _, b := range lib.AllBooks() {
		isbns = append(isbns, b.ISBN)
	}
	assert.Equal(t, []string{"3", "1", "2"}, isbns)
}

package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSeedAndApply(t *testing.T) {
	path := writeSeedFile(t, `{
		"books": [
			{"title": "Dune", "author": "Frank Herbert", "isbn": "111", "genre": "SF"},
			{"title": "Hyperion", "author": "Dan Simmons", "isbn": "222"}
		],
		"users": [
			{"name": "Ada", "id": "u1", "email": "ada@example.com", "category": "Student"}
		]
	}`)

	seed, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, seed.Books, 2)
	require.Len(t, seed.Users, 1)

	lib := New()
	require.NoError(t, lib.ApplySeed(seed))

	book := lib.FindBook("111")
	require.NotNil(t, book)
	assert.Equal(t, "SF", book.Genre)
	assert.Empty(t, lib.FindBook("222").Genre)

	user := lib.FindUser("u1")
	require.NotNil(t, user)
	assert.Equal(t, CategoryStudent, user.Category)
}

func TestLoadSeedErrors(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)

	_, err = LoadSeed(writeSeedFile(t, `{"books": [`))
	assert.Error(t, err)
}

func TestApplySeedStopsAtFirstFailure(t *testing.T) {
	lib := New()
	err := lib.ApplySeed(Seed{
		Books: []SeedBook{
			{Title: "A", Author: "X", ISBN: "1"},
			{Title: "B", Author: "X", ISBN: "1"},
		},
	})
	assert.ErrorIs(t, err, ErrDuplicateISBN)

	err = lib.ApplySeed(Seed{
		Users: []SeedUser{{Name: "Eve", ID: "u9", Email: "e@example.com", Category: "wizard"}},
	})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestDefaultSeedApplies(t *testing.T) {
	lib := New()
	require.NoError(t, lib.ApplySeed(DefaultSeed()))
	assert.Len(t, lib.AllBooks(), 2)
	require.Len(t, lib.AllUsers(), 1)
	assert.Equal(t, CategoryGuest, lib.AllUsers()[0].Category)
}

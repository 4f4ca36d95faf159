package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryPolicies(t *testing.T) {
	tests := []struct {
		category   Category
		maxBooks   int
		borrowDays int
	}{
		{CategoryStudent, 3, 14},
		{CategoryFaculty, 10, 30},
		{CategoryGuest, 1, 7},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			p := tt.category.Policy()
			assert.Equal(t, tt.maxBooks, p.MaxBooks)
			assert.Equal(t, tt.borrowDays, p.BorrowDays)
		})
	}
}

func TestParseCategory(t *testing.T) {
	for _, input := range []string{"student", "Student", "STUDENT", " student ", "\tStudent\n"} {
		c, err := ParseCategory(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, CategoryStudent, c)
	}

	faculty, err := ParseCategory("Faculty")
	require.NoError(t, err)
	assert.Equal(t, CategoryFaculty, faculty)

	guest, err := ParseCategory("  GUEST  ")
	require.NoError(t, err)
	assert.Equal(t, CategoryGuest, guest)
}

func TestParseCategoryInvalid(t *testing.T) {
	for _, input := range []string{"", "admin", "stud ent", "faculty member"} {
		_, err := ParseCategory(input)
		assert.ErrorIs(t, err, ErrInvalidCategory, "input %q", input)
	}
}

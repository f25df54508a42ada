package table

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf-backend/internal/domains/book/model"
)

func sampleBooks() []model.Book {
	return []model.Book{
		{ID: uuid.New(), Name: "Zeta Protocol", Author: "Carol", ReleaseDate: "2021-03-01"},
		{ID: uuid.New(), Name: "Alpha Primer", Author: "Bob", ReleaseDate: "2023-07-15"},
		{ID: uuid.New(), Name: "Middle Ground", Author: "alice", ReleaseDate: "2019-11-30"},
	}
}

func names(books []model.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.Name)
	}
	return out
}

func TestControllerSort(t *testing.T) {
	t.Run("first click sorts ascending", func(t *testing.T) {
		c := NewController()
		c.Sort(ColumnName)

		result := c.Apply(sampleBooks())
		assert.Equal(t, []string{"Alpha Primer", "Middle Ground", "Zeta Protocol"}, names(result))
	})

	t.Run("second click on same column reverses order", func(t *testing.T) {
		c := NewController()
		c.Sort(ColumnName)
		c.Sort(ColumnName)

		result := c.Apply(sampleBooks())
		assert.Equal(t, []string{"Zeta Protocol", "Middle Ground", "Alpha Primer"}, names(result))
	})

	t.Run("switching column resets to ascending", func(t *testing.T) {
		c := NewController()
		c.Sort(ColumnName)
		c.Sort(ColumnName)
		c.Sort(ColumnReleaseDate)

		assert.Equal(t, OrderAsc, c.SortOrder)
		result := c.Apply(sampleBooks())
		assert.Equal(t, []string{"Middle Ground", "Zeta Protocol", "Alpha Primer"}, names(result))
	})

	t.Run("author sort ignores case", func(t *testing.T) {
		c := NewController()
		c.Sort(ColumnAuthor)

		result := c.Apply(sampleBooks())
		assert.Equal(t, []string{"Middle Ground", "Alpha Primer", "Zeta Protocol"}, names(result))
	})
}

func TestControllerFilter(t *testing.T) {
	t.Run("matches name case-insensitively", func(t *testing.T) {
		c := NewController()
		c.Filter("alpha")

		result := c.Apply(sampleBooks())
		require.Len(t, result, 1)
		assert.Equal(t, "Alpha Primer", result[0].Name)
	})

	t.Run("matches id substring", func(t *testing.T) {
		books := sampleBooks()
		c := NewController()
		c.Filter(books[2].ID.String()[:8])

		result := c.Apply(books)
		require.Len(t, result, 1)
		assert.Equal(t, books[2].ID, result[0].ID)
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		c := NewController()
		c.Filter("does-not-exist")

		result := c.Apply(sampleBooks())
		assert.Empty(t, result)
	})

	t.Run("filter composes with sort", func(t *testing.T) {
		books := sampleBooks()
		books = append(books, model.Book{ID: uuid.New(), Name: "alpha centauri", Author: "Dave"})

		c := NewController()
		c.Filter("alpha")
		c.Sort(ColumnName)
		c.Sort(ColumnName) // descending

		result := c.Apply(books)
		assert.Equal(t, []string{"Alpha Primer", "alpha centauri"}, names(result))
	})
}

func TestControllerApplyDoesNotMutate(t *testing.T) {
	books := sampleBooks()
	original := names(books)

	c := NewController()
	c.Sort(ColumnName)
	c.Filter("e")
	_ = c.Apply(books)

	assert.Equal(t, original, names(books))
}

func TestControllerReset(t *testing.T) {
	c := NewController()
	c.Sort(ColumnAuthor)
	c.Filter("zeta")
	c.Reset()

	result := c.Apply(sampleBooks())
	assert.Equal(t, names(sampleBooks()), names(result))
}

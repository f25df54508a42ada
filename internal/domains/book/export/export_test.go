package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"bookshelf-backend/internal/domains/book/model"
)

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testBooks(n int) []model.Book {
	books := make([]model.Book, 0, n)
	for i := 0; i < n; i++ {
		books = append(books, model.Book{
			ID:          uuid.New(),
			Name:        fmt.Sprintf("Book %d", i+1),
			Author:      fmt.Sprintf("Author %d", i+1),
			ReleaseDate: "2022-01-01",
			BookURL:     fmt.Sprintf("https://example.com/book-%d.pdf", i+1),
			ImageURL:    fmt.Sprintf("https://example.com/cover-%d.png", i+1),
		})
	}
	return books
}

func TestServiceExport(t *testing.T) {
	t.Run("renders one sheet per page with metadata", func(t *testing.T) {
		cover := testPNG(t)
		fetch := func(ctx context.Context, url string) ([]byte, error) {
			return cover, nil
		}
		svc := NewService(Layout{PageHeight: 48, BottomMargin: 2, BlockHeight: 9}, fetch)

		data, err := svc.Export(context.Background(), testBooks(7))
		require.NoError(t, err)

		f, err := excelize.OpenReader(bytes.NewReader(data))
		require.NoError(t, err)
		defer f.Close()

		// 7 books, 5 per page
		assert.Equal(t, []string{"Page 1", "Page 2"}, f.GetSheetList())

		name, err := f.GetCellValue("Page 1", "B3")
		require.NoError(t, err)
		assert.Equal(t, "Book 1", name)

		// Block 2 starts BlockHeight rows below
		name, err = f.GetCellValue("Page 1", "B12")
		require.NoError(t, err)
		assert.Equal(t, "Book 2", name)

		// First block of page 2 is book 6
		name, err = f.GetCellValue("Page 2", "B3")
		require.NoError(t, err)
		assert.Equal(t, "Book 6", name)
	})

	t.Run("broken cover is skipped but metadata survives", func(t *testing.T) {
		fetch := func(ctx context.Context, url string) ([]byte, error) {
			return nil, errors.New("connection refused")
		}
		svc := NewService(DefaultLayout(), fetch)

		data, err := svc.Export(context.Background(), testBooks(2))
		require.NoError(t, err)

		f, err := excelize.OpenReader(bytes.NewReader(data))
		require.NoError(t, err)
		defer f.Close()

		name, err := f.GetCellValue("Page 1", "B3")
		require.NoError(t, err)
		assert.Equal(t, "Book 1", name)

		author, err := f.GetCellValue("Page 1", "B4")
		require.NoError(t, err)
		assert.Equal(t, "Author 1", author)
	})

	t.Run("empty catalog produces a single minimal page", func(t *testing.T) {
		svc := NewService(DefaultLayout(), func(ctx context.Context, url string) ([]byte, error) {
			t.Fatal("fetch should not be called for empty catalog")
			return nil, nil
		})

		data, err := svc.Export(context.Background(), nil)
		require.NoError(t, err)

		f, err := excelize.OpenReader(bytes.NewReader(data))
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, []string{"Page 1"}, f.GetSheetList())

		header, err := f.GetCellValue("Page 1", "A1")
		require.NoError(t, err)
		assert.Equal(t, "Book Catalog", header)
	})
}

package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutPaginate(t *testing.T) {
	layout := Layout{PageHeight: 48, BottomMargin: 2, BlockHeight: 9}
	// usable = 46 rows, 5 blocks per page

	t.Run("empty list yields a single empty page", func(t *testing.T) {
		pages := layout.Paginate(0)
		require.Len(t, pages, 1)
		assert.Empty(t, pages[0])
	})

	t.Run("partial page", func(t *testing.T) {
		pages := layout.Paginate(3)
		require.Len(t, pages, 1)
		assert.Equal(t, []int{0, 1, 2}, pages[0])
	})

	t.Run("exact fit fills one page", func(t *testing.T) {
		pages := layout.Paginate(5)
		require.Len(t, pages, 1)
		assert.Len(t, pages[0], 5)
	})

	t.Run("block that does not fit moves whole to next page", func(t *testing.T) {
		pages := layout.Paginate(6)
		require.Len(t, pages, 2)
		assert.Len(t, pages[0], 5)
		assert.Equal(t, []int{5}, pages[1])
	})

	t.Run("many items span several pages without splitting blocks", func(t *testing.T) {
		pages := layout.Paginate(13)
		require.Len(t, pages, 3)
		assert.Len(t, pages[0], 5)
		assert.Len(t, pages[1], 5)
		assert.Equal(t, []int{10, 11, 12}, pages[2])
	})

	t.Run("oversized block still gets one per page", func(t *testing.T) {
		tall := Layout{PageHeight: 10, BottomMargin: 2, BlockHeight: 20}
		pages := tall.Paginate(2)
		require.Len(t, pages, 2)
		assert.Equal(t, []int{0}, pages[0])
		assert.Equal(t, []int{1}, pages[1])
	})
}

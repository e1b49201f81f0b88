package pagination_test

import (
	"testing"

	"github.com/shopstack/product-inventory-platform/internal/pagination"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("Middle Page", func(t *testing.T) {
		p := pagination.New(2, 10, 35)

		assert.Equal(t, int64(10), p.Skip)
		assert.Equal(t, 4, p.TotalPages)
		assert.Equal(t, 2, p.CurrentPage)
		assert.True(t, p.HasNextPage)
		assert.True(t, p.HasPreviousPage)
	})

	t.Run("Last Page With Partial Fill", func(t *testing.T) {
		// 25 products, limit 10, page 3 -> skip 20, 5 remaining
		p := pagination.New(3, 10, 25)

		assert.Equal(t, int64(20), p.Skip)
		assert.Equal(t, 3, p.TotalPages)
		assert.False(t, p.HasNextPage)
		assert.True(t, p.HasPreviousPage)
	})

	t.Run("First Page", func(t *testing.T) {
		p := pagination.New(1, 12, 100)

		assert.Equal(t, int64(0), p.Skip)
		assert.Equal(t, 9, p.TotalPages)
		assert.True(t, p.HasNextPage)
		assert.False(t, p.HasPreviousPage)
	})

	t.Run("Empty Collection", func(t *testing.T) {
		p := pagination.New(1, 12, 0)

		assert.Equal(t, int64(0), p.Skip)
		assert.Equal(t, 0, p.TotalPages)
		assert.False(t, p.HasNextPage)
		assert.False(t, p.HasPreviousPage)
	})

	t.Run("Page Beyond Last", func(t *testing.T) {
		p := pagination.New(10, 10, 25)

		assert.Equal(t, int64(90), p.Skip)
		assert.Equal(t, 3, p.TotalPages)
		assert.False(t, p.HasNextPage)
		assert.True(t, p.HasPreviousPage)
	})

	t.Run("Exact Multiple", func(t *testing.T) {
		p := pagination.New(2, 10, 20)

		assert.Equal(t, 2, p.TotalPages)
		assert.False(t, p.HasNextPage)
		assert.True(t, p.HasPreviousPage)
	})

	t.Run("Ceiling Division", func(t *testing.T) {
		for _, tc := range []struct {
			total    int64
			limit    int
			expected int
		}{
			{1, 12, 1},
			{12, 12, 1},
			{13, 12, 2},
			{99, 100, 1},
			{101, 100, 2},
		} {
			p := pagination.New(1, tc.limit, tc.total)
			assert.Equalf(t, tc.expected, p.TotalPages, "total=%d limit=%d", tc.total, tc.limit)
		}
	})
}

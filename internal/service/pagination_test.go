package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	t.Run("first page of an empty listing is valid", func(t *testing.T) {
		page, err := newPage([]int{}, 0, 1, 10)

		require.NoError(t, err)
		assert.False(t, page.HasNext)
		assert.False(t, page.HasPrevious)
	})

	t.Run("middle page links both ways", func(t *testing.T) {
		page, err := newPage([]int{1}, 25, 2, 10)

		require.NoError(t, err)
		assert.True(t, page.HasNext)
		assert.True(t, page.HasPrevious)
	})

	t.Run("last full page has no next", func(t *testing.T) {
		page, err := newPage([]int{1}, 20, 2, 10)

		require.NoError(t, err)
		assert.False(t, page.HasNext)
	})

	t.Run("page past the end is rejected", func(t *testing.T) {
		_, err := newPage([]int{}, 20, 3, 10)

		assert.ErrorIs(t, err, ErrInvalidPage)
	})

	t.Run("non-positive page is treated as the first", func(t *testing.T) {
		page, err := newPage([]int{}, 5, -2, 10)

		require.NoError(t, err)
		assert.Equal(t, 1, page.Number)
	})

	t.Run("page beyond the addressable range is rejected", func(t *testing.T) {
		_, err := newPage([]int{1, 2, 3}, 3, math.MaxInt/5+7, 10)

		assert.ErrorIs(t, err, ErrInvalidPage)
	})
}

func TestOffsetFor(t *testing.T) {
	t.Run("non-positive page starts at zero", func(t *testing.T) {
		offset, err := offsetFor(-2, 10)

		require.NoError(t, err)
		assert.Equal(t, 0, offset)
	})

	t.Run("regular page", func(t *testing.T) {
		offset, err := offsetFor(3, 10)

		require.NoError(t, err)
		assert.Equal(t, 20, offset)
	})

	t.Run("overflowing page is rejected", func(t *testing.T) {
		_, err := offsetFor(math.MaxInt/5+7, 10)

		assert.ErrorIs(t, err, ErrInvalidPage)
	})

	t.Run("largest addressable page", func(t *testing.T) {
		page := (math.MaxInt-10)/10 + 1

		offset, err := offsetFor(page, 10)

		require.NoError(t, err)
		assert.Equal(t, (page-1)*10, offset)
	})
}

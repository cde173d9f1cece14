package table

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageCount(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{25, 0, 25},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.total, tt.size), func(t *testing.T) {
			assert.Equal(t, tt.want, PageCount(tt.total, tt.size))
		})
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 25, 10))
	assert.Equal(t, 1, ClampPage(-4, 25, 10))
	assert.Equal(t, 2, ClampPage(2, 25, 10))
	assert.Equal(t, 3, ClampPage(99, 25, 10))
	assert.Equal(t, 1, ClampPage(3, 0, 10))
}

func TestPageSlice(t *testing.T) {
	t.Run("Should reconstruct the list when concatenating every page", func(t *testing.T) {
		for total := 0; total <= 35; total++ {
			for _, size := range []int{1, 3, 10, 50} {
				items := make([]int, total)
				for i := range items {
					items[i] = i
				}
				var joined []int
				for page := 1; page <= PageCount(total, size); page++ {
					joined = append(joined, PageSlice(items, page, size)...)
				}
				if total == 0 {
					assert.Empty(t, joined)
					continue
				}
				assert.Equal(t, items, joined, "total=%d size=%d", total, size)
			}
		}
	})

	t.Run("Should clamp out-of-range pages", func(t *testing.T) {
		items := []string{"a", "b", "c"}

		assert.Equal(t, []string{"c"}, PageSlice(items, 9, 2))
		assert.Equal(t, []string{"a", "b"}, PageSlice(items, -1, 2))
	})

	t.Run("Should not let appends leak into the source", func(t *testing.T) {
		items := []int{1, 2, 3, 4}

		page := PageSlice(items, 1, 2)
		_ = append(page, 99)

		assert.Equal(t, []int{1, 2, 3, 4}, items)
	})
}

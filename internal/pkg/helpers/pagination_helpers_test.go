package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 20, 0, 20},
		{"third page", 3, 10, 20, 10},
		{"zero size falls back to default", 1, 0, 0, DefaultPageSize},
		{"oversized page size capped", 1, MaxPageSize + 1, 0, DefaultPageSize},
		{"page below one treated as first", 0, 10, 0, 10},
		{"negative page treated as first", -2, 10, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	t.Run("partial last page", func(t *testing.T) {
		info := NewPaginationInfo(42, 1, 20)
		assert.Equal(t, 1, info.CurrentPage)
		assert.Equal(t, 3, info.TotalPages)
		assert.Equal(t, 20, info.PageSize)
		assert.Equal(t, int64(42), info.TotalItems)
	})

	t.Run("no items still reports one page", func(t *testing.T) {
		info := NewPaginationInfo(0, 1, 20)
		assert.Equal(t, 1, info.TotalPages)
		assert.Equal(t, int64(0), info.TotalItems)
	})

	t.Run("page past the end clamps to last", func(t *testing.T) {
		info := NewPaginationInfo(10, 5, 20)
		assert.Equal(t, 1, info.CurrentPage)
	})
}

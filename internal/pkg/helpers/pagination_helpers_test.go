package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		offset     int
		limit      int
	}{
		{name: "first page", page: 1, size: 10, offset: 0, limit: 10},
		{name: "third page", page: 3, size: 20, offset: 40, limit: 20},
		{name: "zero page defaults to first", page: 0, size: 10, offset: 0, limit: 10},
		{name: "negative page defaults to first", page: -2, size: 10, offset: 0, limit: 10},
		{name: "zero size uses default", page: 2, size: 0, offset: 10, limit: 10},
		{name: "oversized size uses default", page: 1, size: 500, offset: 0, limit: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			assert.Equal(t, tt.offset, offset)
			assert.Equal(t, tt.limit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	t.Run("partial last page", func(t *testing.T) {
		info := NewPaginationInfo(1, 10, 25)
		assert.Equal(t, 1, info.CurrentPage)
		assert.Equal(t, 3, info.TotalPages)
		assert.Equal(t, 10, info.PageSize)
		assert.Equal(t, 25, info.TotalItems)
	})

	t.Run("no items still reports one page", func(t *testing.T) {
		info := NewPaginationInfo(1, 10, 0)
		assert.Equal(t, 1, info.CurrentPage)
		assert.Equal(t, 1, info.TotalPages)
	})

	t.Run("page beyond the end is clamped", func(t *testing.T) {
		info := NewPaginationInfo(9, 10, 25)
		assert.Equal(t, 3, info.CurrentPage)
		assert.Equal(t, 3, info.TotalPages)
	})
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		query string
		page  int
		size  int
	}{
		{name: "defaults", query: "", page: 1, size: 10},
		{name: "explicit values", query: "page=3&size=25", page: 3, size: 25},
		{name: "invalid page", query: "page=abc&size=25", page: 1, size: 25},
		{name: "size over the cap", query: "page=2&size=1000", page: 2, size: 10},
		{name: "negative values", query: "page=-1&size=-5", page: 1, size: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/?"+tt.query, nil)

			page, size := ParsePaginationParams(c)
			assert.Equal(t, tt.page, page)
			assert.Equal(t, tt.size, size)
		})
	}
}

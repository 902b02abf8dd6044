package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		page, pageSize         string
		wantPage, wantPageSize int
	}{
		{"", "", 1, 20},
		{"3", "50", 3, 50},
		{"-1", "0", 1, 20},
		{"abc", "500", 1, 100},
	}
	for _, tt := range tests {
		page, pageSize := ParsePagination(tt.page, tt.pageSize)
		assert.Equal(t, tt.wantPage, page)
		assert.Equal(t, tt.wantPageSize, pageSize)
	}
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 20))
	assert.Equal(t, 40, CalculateOffset(3, 20))
}

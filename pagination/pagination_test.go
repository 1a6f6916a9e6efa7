package pagination_test

import (
	"testing"

	"github.com/andyle182810/gappwrite/pagination"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		page     int
		pageSize int
		expected pagination.Window
	}{
		{name: "first page", page: 1, pageSize: 25, expected: pagination.Window{Page: 1, Limit: 25, Offset: 0}},
		{name: "fourth page", page: 4, pageSize: 25, expected: pagination.Window{Page: 4, Limit: 25, Offset: 75}},
		{name: "zero page defaults to first", page: 0, pageSize: 10, expected: pagination.Window{Page: 1, Limit: 10, Offset: 0}},
		{name: "negative size uses default", page: 2, pageSize: -5, expected: pagination.Window{Page: 2, Limit: 25, Offset: 25}},
		{name: "size clamped to max", page: 3, pageSize: 500, expected: pagination.Window{Page: 3, Limit: 100, Offset: 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, pagination.Normalize(tt.page, tt.pageSize))
		})
	}
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, pagination.TotalPages(0, 25))
	assert.Equal(t, 1, pagination.TotalPages(25, 25))
	assert.Equal(t, 2, pagination.TotalPages(26, 25))
	assert.Equal(t, 0, pagination.TotalPages(10, 0))
}

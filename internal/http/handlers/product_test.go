package handlers

import (
	"testing"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		total    int64
		perPage  int
		expected int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{100, 20, 5},
		{101, 20, 6},
		{7, 3, 3},
	}

	for _, test := range tests {
		if got := paginate(test.total, test.perPage); got != test.expected {
			t.Errorf("paginate(%d, %d) = %d, expected %d", test.total, test.perPage, got, test.expected)
		}
	}
}

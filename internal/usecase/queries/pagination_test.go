//go:build unit

package queries_test

import (
	"testing"

	"field-booking/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Normalize(t *testing.T) {
	testCases := []struct {
		name       string
		in         queries.PageRequest
		want       queries.PageRequest
		wantOffset int32
	}{
		{name: "defaults", in: queries.PageRequest{}, want: queries.PageRequest{Page: 1, PerPage: 20}, wantOffset: 0},
		{name: "per_page capped at 100", in: queries.PageRequest{Page: 2, PerPage: 500}, want: queries.PageRequest{Page: 2, PerPage: 100}, wantOffset: 100},
		{name: "negative page", in: queries.PageRequest{Page: -3, PerPage: 10}, want: queries.PageRequest{Page: 1, PerPage: 10}, wantOffset: 0},
		{name: "third page", in: queries.PageRequest{Page: 3, PerPage: 15}, want: queries.PageRequest{Page: 3, PerPage: 15}, wantOffset: 30},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantOffset, got.Offset())
		})
	}
}

func TestNewPagination(t *testing.T) {
	p := queries.PageRequest{Page: 1, PerPage: 20}
	assert.Equal(t, 0, queries.NewPagination(p, 0).TotalPages)
	assert.Equal(t, 1, queries.NewPagination(p, 20).TotalPages)
	assert.Equal(t, 2, queries.NewPagination(p, 21).TotalPages)
}

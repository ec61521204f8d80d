//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"field-booking/internal/domain/review"
	"field-booking/internal/testing/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.False(t, actual.CreatedAt().IsZero())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Great lights and a clean pitch", actual.Comment().String())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum rating",
				mutate: func(b *builder.ReviewBuilder) { b.Rating = 0 },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "minimum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.Rating = 1 },
			},
			{
				name:   "maximum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.Rating = 5 },
			},
			{
				name:   "above maximum rating",
				mutate: func(b *builder.ReviewBuilder) { b.Rating = 6 },
				errIs:  review.ErrInvalidRating,
			},
		})
	})

	t.Run("comment validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty comment is allowed",
				mutate: func(b *builder.ReviewBuilder) { b.Comment = "" },
			},
			{
				name:   "maximum length counted in runes",
				mutate: func(b *builder.ReviewBuilder) { b.Comment = strings.Repeat("ملعب", review.MaxCommentLength/4) },
			},
			{
				name:   "comment exceeds maximum length",
				mutate: func(b *builder.ReviewBuilder) { b.Comment = strings.Repeat("a", review.MaxCommentLength+1) },
				errIs:  review.ErrCommentTooLong,
			},
		})
	})

	t.Run("comment trimming", func(t *testing.T) {
		r, err := review.NewReview(uuid.New(), uuid.New(), 4, "  Trimmed comment  ", time.Now())
		require.NoError(t, err)

		assert.Equal(t, "Trimmed comment", r.Comment().String())
	})

	t.Run("whitespace comment is empty", func(t *testing.T) {
		r, err := review.NewReview(uuid.New(), uuid.New(), 3, "   ", time.Now())
		require.NoError(t, err)

		assert.True(t, r.Comment().IsEmpty())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReviewBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestReview_Revise(t *testing.T) {
	intPtr := func(v int) *int { return &v }
	strPtr := func(s string) *string { return &s }

	tests := []struct {
		name        string
		rating      *int
		comment     *string
		errIs       error
		wantRating  int
		wantComment string
	}{
		{name: "rating only", rating: intPtr(2), wantRating: 2, wantComment: "Great lights and a clean pitch"},
		{name: "comment only", comment: strPtr(" Lights were out "), wantRating: 5, wantComment: "Lights were out"},
		{name: "both", rating: intPtr(3), comment: strPtr(""), wantRating: 3, wantComment: ""},
		{name: "nothing given", wantRating: 5, wantComment: "Great lights and a clean pitch"},
		{
			name:        "invalid rating keeps the comment untouched",
			rating:      intPtr(9),
			comment:     strPtr("ignored"),
			errIs:       review.ErrInvalidRating,
			wantRating:  5,
			wantComment: "Great lights and a clean pitch",
		},
		{
			name:        "comment too long keeps the rating untouched",
			rating:      intPtr(1),
			comment:     strPtr(strings.Repeat("x", review.MaxCommentLength+1)),
			errIs:       review.ErrCommentTooLong,
			wantRating:  5,
			wantComment: "Great lights and a clean pitch",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := builder.NewReviewBuilder().BuildDomain()
			require.NoError(t, err)

			err = r.Revise(tt.rating, tt.comment)

			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantRating, r.Rating().Value())
			assert.Equal(t, tt.wantComment, r.Comment().String())
		})
	}
}

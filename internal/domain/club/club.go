// Package club names the owner-side view of the marketplace: every user who
// lists at least one field is a club.
package club

import "field-booking/internal/pkg/errs"

var ErrNotFound = errs.Reject(errs.KindNotFound, "club_not_found")

type SortKey string

const (
	SortByID     SortKey = "id"
	SortByName   SortKey = "name"
	SortByRating SortKey = "rating"
)

const (
	DefaultTopRated = 10
	MaxTopRated     = 100
)

// TopRatedLimit clamps a requested leaderboard size.
func TopRatedLimit(n int) int32 {
	if n < 1 || n > MaxTopRated {
		return DefaultTopRated
	}
	return int32(n)
}

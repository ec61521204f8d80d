package field

import (
	"slices"
	"strings"
	"unicode/utf8"

	"field-booking/internal/pkg/errs"
)

const (
	MaxFacilities      = 20
	MaxFacilityNameLen = 50
)

var ErrInvalidFacility = errs.Reject(errs.KindValidation, "invalid_facility")

// Facilities normalizes an amenity list: names are trimmed, duplicates
// dropped ignoring case, and the result sorted. An empty list clears the
// field's amenities.
func Facilities(names []string) ([]string, error) {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || utf8.RuneCountInString(n) > MaxFacilityNameLen {
			return nil, ErrInvalidFacility
		}
		key := strings.ToLower(n)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, n)
	}
	if len(out) > MaxFacilities {
		return nil, ErrInvalidFacility
	}
	slices.Sort(out)
	return out, nil
}

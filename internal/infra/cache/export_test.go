//go:build unit

package cache

type AvailabilityEntry = availabilityEntry

var SetIfCurrentHash = setIfCurrent.Hash()

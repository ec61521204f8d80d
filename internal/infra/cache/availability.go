package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"field-booking/internal/domain/timeslot"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/usecase/queries"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultAvailabilityTTL = 5 * time.Minute

// AvailabilityCache keeps rendered day plans under availability:<field>:<date>.
//
// Two counters guard every entry: one per field (bumped when hours change or
// the field is deleted) and one per field and date (bumped by booking
// writes). An entry only counts as a hit while both counters still match
// the values it was computed under, and Set refuses to store a plan whose
// counters moved while it was being computed.
type AvailabilityCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

var (
	_ queries.AvailabilityCache      = (*AvailabilityCache)(nil)
	_ shared.AvailabilityInvalidator = (*AvailabilityCache)(nil)
)

// KEYS: entry, field version, date version
// ARGV: field version, date version, payload, ttl ms, version ttl ms
var setIfCurrent = redis.NewScript(`
if tonumber(redis.call('GET', KEYS[2]) or '0') ~= tonumber(ARGV[1]) then
	return 0
end
if tonumber(redis.call('GET', KEYS[3]) or '0') ~= tonumber(ARGV[2]) then
	return 0
end
redis.call('SET', KEYS[1], ARGV[3], 'PX', ARGV[4])
redis.call('PEXPIRE', KEYS[2], ARGV[5])
redis.call('PEXPIRE', KEYS[3], ARGV[5])
return 1
`)

type availabilityEntry struct {
	FieldVersion int64                     `json:"field_version"`
	DateVersion  int64                     `json:"date_version"`
	View         *queries.AvailabilityView `json:"view"`
}

func NewAvailabilityCache(client redis.Cmdable, ttl time.Duration) *AvailabilityCache {
	if ttl <= 0 {
		ttl = defaultAvailabilityTTL
	}
	return &AvailabilityCache{client: client, ttl: ttl}
}

func AvailabilityKey(fieldID uuid.UUID, date timeslot.Date) string {
	return "availability:" + fieldID.String() + ":" + date.String()
}

func FieldVersionKey(fieldID uuid.UUID) string {
	return "availability:" + fieldID.String() + ":v"
}

func DateVersionKey(fieldID uuid.UUID, date timeslot.Date) string {
	return AvailabilityKey(fieldID, date) + ":v"
}

// Get returns the cached plan, or nil and the current version on a miss.
func (c *AvailabilityCache) Get(ctx context.Context, fieldID uuid.UUID, date timeslot.Date) (*queries.AvailabilityView, queries.CacheVersion, error) {
	vals, err := c.client.MGet(ctx,
		AvailabilityKey(fieldID, date),
		FieldVersionKey(fieldID),
		DateVersionKey(fieldID, date),
	).Result()
	if err != nil {
		return nil, queries.CacheVersion{}, errs.Wrap(err, "get availability")
	}

	var version queries.CacheVersion
	if version.Field, err = counter(vals[1]); err != nil {
		return nil, queries.CacheVersion{}, err
	}
	if version.Date, err = counter(vals[2]); err != nil {
		return nil, queries.CacheVersion{}, err
	}

	raw, ok := vals[0].(string)
	if !ok {
		return nil, version, nil
	}
	var entry availabilityEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, queries.CacheVersion{}, errs.Wrap(err, "decode availability")
	}
	if entry.View == nil || entry.FieldVersion != version.Field || entry.DateVersion != version.Date {
		return nil, version, nil
	}
	return entry.View, version, nil
}

// Set stores view unless an invalidation happened after version was read.
func (c *AvailabilityCache) Set(ctx context.Context, view *queries.AvailabilityView, version queries.CacheVersion) error {
	date, err := timeslot.ParseDate(view.Date)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(availabilityEntry{
		FieldVersion: version.Field,
		DateVersion:  version.Date,
		View:         view,
	})
	if err != nil {
		return errs.Wrap(err, "encode availability")
	}

	keys := []string{
		AvailabilityKey(view.FieldID, date),
		FieldVersionKey(view.FieldID),
		DateVersionKey(view.FieldID, date),
	}
	err = setIfCurrent.Run(ctx, c.client, keys,
		version.Field, version.Date, string(raw), c.ttl.Milliseconds(), c.versionTTL().Milliseconds(),
	).Err()
	if err != nil {
		return errs.Wrap(err, "set availability")
	}
	return nil
}

// Invalidate drops the plan of one field and date.
func (c *AvailabilityCache) Invalidate(ctx context.Context, fieldID uuid.UUID, date timeslot.Date) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, DateVersionKey(fieldID, date))
		pipe.PExpire(ctx, DateVersionKey(fieldID, date), c.versionTTL())
		pipe.Del(ctx, AvailabilityKey(fieldID, date))
		return nil
	})
	if err != nil {
		return errs.Wrap(err, "invalidate availability")
	}
	return nil
}

// InvalidateField drops the plans of every date of one field.
func (c *AvailabilityCache) InvalidateField(ctx context.Context, fieldID uuid.UUID) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, FieldVersionKey(fieldID))
		pipe.PExpire(ctx, FieldVersionKey(fieldID), c.versionTTL())
		return nil
	})
	if err != nil {
		return errs.Wrap(err, "invalidate field availability")
	}
	return nil
}

// versionTTL outlives every entry stamped with the counter, so a counter
// never expires back to a value a live entry carries.
func (c *AvailabilityCache) versionTTL() time.Duration {
	return 2 * c.ttl
}

func counter(v any) (int64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.Wrap(err, "decode availability version")
	}
	return n, nil
}

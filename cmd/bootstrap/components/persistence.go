package components

import (
	"field-booking/internal/infra/cache"
	"field-booking/internal/infra/readstore"
	"field-booking/internal/infra/sqlc"
	"field-booking/internal/infra/uow"
	"field-booking/internal/pkg/config"
	"field-booking/internal/usecase/queries"
	"field-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	cacheModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	uow.NewPostgresUoW,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.FieldReadQueries)),
			fx.As(new(readstore.BookingReadQueries)),
			fx.As(new(readstore.PaymentReadQueries)),
			fx.As(new(readstore.ReviewReadQueries)),
			fx.As(new(readstore.TeamReadQueries)),
			fx.As(new(readstore.NotificationReadQueries)),
			fx.As(new(readstore.UserReadQueries)),
			fx.As(new(readstore.AnalyticsReadQueries)),
			fx.As(new(readstore.ClubReadQueries)),
		),
		// Field
		fx.Annotate(
			readstore.NewFieldReadStore,
			fx.As(new(queries.FieldReadStore)),
		),
		// Booking
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Payment
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentReadStore)),
		),
		// Review
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		// Team
		fx.Annotate(
			readstore.NewTeamReadStore,
			fx.As(new(queries.TeamReadStore)),
		),
		// Notification
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Analytics
		fx.Annotate(
			readstore.NewAnalyticsReadStore,
			fx.As(new(queries.AnalyticsReadStore)),
		),
		// Club
		fx.Annotate(
			readstore.NewClubReadStore,
			fx.As(new(queries.ClubReadStore)),
		),
	),
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		NewAvailabilityCache,
		func(c *cache.AvailabilityCache) queries.AvailabilityCache { return c },
		func(c *cache.AvailabilityCache) shared.AvailabilityInvalidator { return c },
		fx.Annotate(
			func(client *redis.Client) *cache.OTPStore { return cache.NewOTPStore(client) },
			fx.As(new(shared.OTPStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewAvailabilityCache(client *redis.Client, cfg config.Config) *cache.AvailabilityCache {
	return cache.NewAvailabilityCache(client, cfg.Redis.AvailabilityTTL)
}

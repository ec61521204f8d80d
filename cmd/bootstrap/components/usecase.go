package components

import (
	"field-booking/internal/domain/timeslot"
	"field-booking/internal/infra/monitoring"
	"field-booking/internal/infra/notify"
	"field-booking/internal/pkg/clock"
	"field-booking/internal/pkg/config"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/pkg/jwt"
	"field-booking/internal/usecase/commands"
	"field-booking/internal/usecase/queries"
	"field-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		notify.NewDispatcher,
		fx.As(new(shared.Notifier)),
	),
	func(m *monitoring.Metrics) shared.BookingMetrics { return m },
	func(s *jwt.Service) commands.TokenIssuer { return s },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewAuthCommands,
		NewFieldCommands,
		NewPaymentCommands,
		commands.NewBookingCommands,
		commands.NewTeamCommands,
		commands.NewReviewCommands,
		commands.NewNotificationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewFieldQueries,
		queries.NewBookingQueries,
		queries.NewPaymentQueries,
		queries.NewTeamQueries,
		queries.NewReviewQueries,
		queries.NewNotificationQueries,
		queries.NewAnalyticsQueries,
		queries.NewClubQueries,
	),
)

func NewAuthCommands(uow shared.UnitOfWork, tokens commands.TokenIssuer, otps shared.OTPStore, cfg config.Config, clk clock.Clock) commands.AuthCommands {
	return commands.NewAuthCommands(uow, tokens, otps, cfg.Redis.OTPTTL, clk)
}

// NewFieldCommands fails startup on malformed BOOKING_DEFAULT_OPENING or
// BOOKING_DEFAULT_CLOSING values.
func NewFieldCommands(
	uow shared.UnitOfWork,
	invalidator shared.AvailabilityInvalidator,
	cfg config.Config,
	clk clock.Clock,
) (commands.FieldCommands, error) {
	hours, err := timeslot.ParseInterval(cfg.Booking.DefaultOpening, cfg.Booking.DefaultClosing)
	if err != nil {
		return nil, errs.Wrap(err, "invalid default operating hours")
	}
	return commands.NewFieldCommands(uow, invalidator, hours, clk), nil
}

func NewPaymentCommands(uow shared.UnitOfWork, notifier shared.Notifier, metrics shared.BookingMetrics, cfg config.Config, clk clock.Clock) commands.PaymentCommands {
	return commands.NewPaymentCommands(uow, notifier, metrics, clk, cfg.Booking.Currency)
}

package components

import (
	"field-booking/internal/handler"
	"field-booking/internal/handler/api"
	"field-booking/internal/handler/middleware"
	"field-booking/internal/pkg/config"
	"field-booking/internal/pkg/jwt"
	"field-booking/internal/usecase/commands"
	"field-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewFieldHandler,
		api.NewBookingHandler,
		api.NewPaymentHandler,
		api.NewTeamHandler,
		api.NewReviewHandler,
		api.NewNotificationHandler,
		api.NewAnalyticsHandler,
		api.NewClubHandler,
		NewHandlers,
		func(s *jwt.Service) middleware.TokenValidator { return s },
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, cfg config.Config, tokens *jwt.Service) *api.AuthHandler {
	return api.NewAuthHandler(cmds, users, cfg.Cookie, tokens.TokenDuration())
}

type handlerParams struct {
	fx.In

	Auth         *api.AuthHandler
	Field        *api.FieldHandler
	Booking      *api.BookingHandler
	Payment      *api.PaymentHandler
	Team         *api.TeamHandler
	Review       *api.ReviewHandler
	Notification *api.NotificationHandler
	Analytics    *api.AnalyticsHandler
	Club         *api.ClubHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:         p.Auth,
		Field:        p.Field,
		Booking:      p.Booking,
		Payment:      p.Payment,
		Team:         p.Team,
		Review:       p.Review,
		Notification: p.Notification,
		Analytics:    p.Analytics,
		Club:         p.Club,
	}
}

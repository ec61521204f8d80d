package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"field-booking/internal/handler/api"
	reqdto "field-booking/internal/handler/dto/request"
	"field-booking/internal/handler/middleware"
	"field-booking/internal/infra/monitoring"
	"field-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every resource handler mounted under /api.
type Handlers struct {
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

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, metrics *monitoring.Metrics, gatherer prometheus.Gatherer) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := reqdto.RegisterValidators(v); err != nil {
			slog.Error("failed to register request validators", "error", err)
		}
	}
	setupMiddleware(engine, cfg, metrics)
	setupRoutes(engine, h, authMiddleware, gatherer)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, metrics *monitoring.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.Locale())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(metrics.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, gatherer prometheus.Gatherer) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	authed := []gin.HandlerFunc{requireAuth}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			{Method: http.MethodPost, Path: "/forgot-password", Handler: h.Auth.ForgotPassword},
			{Method: http.MethodPost, Path: "/reset-password", Handler: h.Auth.ResetPassword},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: authed},
		})

		fields := apiGroup.Group("/fields")
		addRoutes(fields, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Field.List},
			{Method: http.MethodPost, Path: "", Handler: h.Field.Create, Mw: authed},
			{Method: http.MethodGet, Path: "/available", Handler: h.Field.Available},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Field.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Field.Update, Mw: authed},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Field.Delete, Mw: authed},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Field.Availability},
			{Method: http.MethodGet, Path: "/:id/bookings", Handler: h.Field.Bookings, Mw: authed},
			{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Field.Reviews},
			{Method: http.MethodGet, Path: "/:id/facilities", Handler: h.Field.Facilities},
			{Method: http.MethodPut, Path: "/:id/facilities", Handler: h.Field.SetFacilities, Mw: authed},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(requireAuth)
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Booking.UpdateStatus},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Delete},
			{Method: http.MethodGet, Path: "/:id/payments", Handler: h.Booking.Payments},
		})

		payments := apiGroup.Group("/payments")
		addRoutes(payments, []route{
			{Method: http.MethodGet, Path: "/methods", Handler: h.Payment.Methods},
			{Method: http.MethodGet, Path: "", Handler: h.Payment.List, Mw: authed},
			{Method: http.MethodPost, Path: "", Handler: h.Payment.Create, Mw: authed},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Payment.Get, Mw: authed},
			{Method: http.MethodPut, Path: "/:id/status", Handler: h.Payment.UpdateStatus, Mw: authed},
			{Method: http.MethodPost, Path: "/:id/refund", Handler: h.Payment.Refund, Mw: authed},
		})

		teams := apiGroup.Group("/teams")
		teams.Use(requireAuth)
		addRoutes(teams, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Team.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Team.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Team.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Team.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Team.Delete},
			{Method: http.MethodPost, Path: "/:id/join", Handler: h.Team.Join},
			{Method: http.MethodGet, Path: "/:id/schedule", Handler: h.Team.Schedule},
			{Method: http.MethodPost, Path: "/:id/members", Handler: h.Team.AddMember},
			{Method: http.MethodDelete, Path: "/:id/members/me", Handler: h.Team.Leave},
			{Method: http.MethodDelete, Path: "/:id/members/:userId", Handler: h.Team.RemoveMember},
		})

		reviews := apiGroup.Group("/reviews")
		reviews.Use(requireAuth)
		addRoutes(reviews, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Review.Create},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Review.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Review.Delete},
		})

		notifications := apiGroup.Group("/notifications")
		notifications.Use(requireAuth)
		addRoutes(notifications, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Notification.List},
			{Method: http.MethodGet, Path: "/unread-count", Handler: h.Notification.UnreadCount},
			{Method: http.MethodPut, Path: "/read-all", Handler: h.Notification.MarkAllRead},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Notification.Get},
			{Method: http.MethodPut, Path: "/:id/read", Handler: h.Notification.MarkRead},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Notification.Delete},
		})

		analytics := apiGroup.Group("/analytics")
		analytics.Use(requireAuth)
		addRoutes(analytics, []route{
			{Method: http.MethodGet, Path: "/dashboard", Handler: h.Analytics.Dashboard},
			{Method: http.MethodGet, Path: "/bookings/trends", Handler: h.Analytics.BookingTrends},
			{Method: http.MethodGet, Path: "/revenue/trends", Handler: h.Analytics.RevenueTrends},
			{Method: http.MethodGet, Path: "/fields/performance", Handler: h.Analytics.FieldPerformance},
			{Method: http.MethodGet, Path: "/export/bookings", Handler: h.Analytics.ExportBookings},
			{Method: http.MethodGet, Path: "/export/payments", Handler: h.Analytics.ExportPayments},
			{Method: http.MethodGet, Path: "/export/users", Handler: h.Analytics.ExportUsers},
		})

		clubs := apiGroup.Group("/clubs")
		addRoutes(clubs, []route{
			{Method: http.MethodGet, Path: "/search", Handler: h.Club.Search},
			{Method: http.MethodGet, Path: "/top-rated", Handler: h.Club.TopRated},
			{Method: http.MethodGet, Path: "/:ownerId", Handler: h.Club.Get},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

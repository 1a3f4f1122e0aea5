package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"barberhub/internal/audit"
	"barberhub/internal/auth"
	"barberhub/internal/config"
	domainpayment "barberhub/internal/domain/payment"
	"barberhub/internal/handlers"
	infrarepo "barberhub/internal/infra/repository"
	"barberhub/internal/middleware"
	"barberhub/internal/storage"
	ucbooking "barberhub/internal/usecase/booking"
	ucpayment "barberhub/internal/usecase/payment"
	ucreview "barberhub/internal/usecase/review"
)

// Deps carries the process-wide singletons main wires up once.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Log      *zap.Logger
	Revoker  *auth.Revoker
	Storage  storage.ObjectStorage
	Payments domainpayment.Provider
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infrarepo.NewBookingGormRepository(d.DB)
	reviewRepo := infrarepo.NewReviewGormRepository(d.DB)

	auditLogger := audit.New(d.DB)
	auditDispatcher := audit.NewDispatcher(auditLogger, d.Log)

	// ======================================================
	// USE CASES
	// ======================================================
	createBooking := ucbooking.NewCreateBooking(bookingRepo, auditDispatcher)
	cancelBooking := ucbooking.NewCancelBooking(bookingRepo, auditDispatcher)
	updateBookingStatus := ucbooking.NewUpdateStatus(bookingRepo, auditDispatcher)
	listClientBookings := ucbooking.NewListForClient(bookingRepo)
	listBarberBookings := ucbooking.NewListForBarber(bookingRepo)

	createReview := ucreview.NewCreateReview(reviewRepo, auditDispatcher)
	listReviews := ucreview.NewListForBarber(reviewRepo)

	createIntent := ucpayment.NewCreateIntent(
		bookingRepo,
		d.Payments,
		d.Config.StripeCurrency,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.DB, d.Config, d.Revoker)
	meHandler := handlers.NewMeHandler(d.DB)
	barberHandler := handlers.NewBarberHandler(d.DB, reviewRepo)
	serviceHandler := handlers.NewServiceHandler(d.DB, d.Storage)
	bookingHandler := handlers.NewBookingHandler(
		createBooking,
		cancelBooking,
		updateBookingStatus,
		listClientBookings,
		listBarberBookings,
	)
	reviewHandler := handlers.NewReviewHandler(createReview, listReviews)
	paymentHandler := handlers.NewPaymentHandler(createIntent)

	requireAuth := middleware.AuthMiddleware(d.Config, revokerOrNil(d.Revoker))

	// ======================================================
	// ROUTES
	// ======================================================
	authGroup := r.Group("/auth")
	authGroup.Use(middleware.RateLimitPerIP(
		rate.Limit(d.Config.AuthRateLimitRPS),
		d.Config.AuthRateLimitBurst,
	))
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", requireAuth, authHandler.Logout)
	}

	r.GET("/users/me", requireAuth, meHandler.GetMe)

	barbers := r.Group("/barbers")
	{
		barbers.GET("/nearby", barberHandler.Nearby)
		barbers.GET("/:id", barberHandler.GetOne)
		barbers.GET("/:id/reviews", reviewHandler.ListForBarber)
		barbers.POST("/:id/reviews", requireAuth, reviewHandler.Create)

		barbers.POST("/profile", requireAuth, barberHandler.UpsertProfile)

		mine := barbers.Group("/me/services", requireAuth, middleware.RequireRole(
			"BARBER", "ADMIN",
		))
		{
			mine.GET("", serviceHandler.ListMine)
			mine.POST("", serviceHandler.Create)
			mine.PATCH("/:id", serviceHandler.Update)
			mine.POST("/:id/image", serviceHandler.UploadImage)
		}
	}

	bookings := r.Group("/bookings", requireAuth)
	{
		bookings.POST("", bookingHandler.Create)
		bookings.GET("/me", bookingHandler.MyBookings)
		bookings.GET("/barber/me", middleware.RequireRole("BARBER", "ADMIN"), bookingHandler.BarberBookings)
		bookings.PATCH("/:id/cancel", bookingHandler.Cancel)
		bookings.PATCH("/:id/status", middleware.RequireRole("BARBER", "ADMIN"), bookingHandler.UpdateStatus)
	}

	r.POST("/payments/bookings/:id/intent", requireAuth, paymentHandler.CreateIntent)
}

// revokerOrNil keeps the middleware's nil check honest: a typed nil
// pointer must not masquerade as a non-nil interface.
func revokerOrNil(r *auth.Revoker) middleware.TokenRevoker {
	if r == nil {
		return nil
	}
	return r
}

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListCars(c *ginext.Context)
	GetCar(c *ginext.Context)
	CreateCar(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	AdminCancelBooking(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
	SweepHolds(c *ginext.Context)
	PaymentWebhook(c *ginext.Context)
	SaveDraft(c *ginext.Context)
	ResumeDraft(c *ginext.Context)
	DraftProfileUpdated(c *ginext.Context)
	ClearDraft(c *ginext.Context)
	QuoteDraft(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	UpdateUserPhone(c *ginext.Context)
}

// InitRouter wires public routes plus the admin and internal groups, both
// guarded by admin.
func InitRouter(mode string, h Handler, admin ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Cars
		api.GET("/cars", h.ListCars)
		api.GET("/cars/:id", h.GetCar)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)

		// Payments
		api.POST("/payments/webhook", h.PaymentWebhook)

		// Drafts
		api.PUT("/drafts", h.SaveDraft)
		api.POST("/drafts/resume", h.ResumeDraft)
		api.POST("/drafts/profile-updated", h.DraftProfileUpdated)
		api.DELETE("/drafts", h.ClearDraft)
		api.POST("/drafts/quote", h.QuoteDraft)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.PUT("/users/:id/phone", h.UpdateUserPhone)
		api.GET("/users/:id/bookings", h.GetUserBookings)
	}

	adminAPI := router.Group("/api/admin", admin)
	{
		adminAPI.POST("/cars", h.CreateCar)
		adminAPI.POST("/bookings/:id/cancel", h.AdminCancelBooking)
	}

	internal := router.Group("/api/internal", admin)
	{
		internal.POST("/sweep", h.SweepHolds)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metrics := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	return router
}

package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the booking API on rg (normally /api/v1).
func RegisterRoutes(rg *gin.RouterGroup, catalog *CatalogHandler, sessions *SessionHandler, bookings *BookingHandler) {
	cat := rg.Group("/catalog")
	{
		cat.GET("/cities", catalog.Cities)
		cat.GET("/bus-types", catalog.BusTypes)
	}

	s := rg.Group("/sessions")
	{
		s.POST("", sessions.Start)
		s.GET("/:id", sessions.Get)
		s.DELETE("/:id", sessions.Drop)
		s.POST("/:id/search", sessions.Search)
		s.POST("/:id/bus", sessions.SelectBus)
		s.POST("/:id/seats/:seat/toggle", sessions.ToggleSeat)
		s.POST("/:id/seats/proceed", sessions.Proceed)
		s.POST("/:id/confirm", sessions.Confirm)
		s.POST("/:id/back", sessions.Back)
		s.POST("/:id/reset", sessions.Reset)
	}

	b := rg.Group("/bookings")
	{
		b.GET("", bookings.List)
		b.DELETE("", bookings.ClearAll)
		b.GET("/:id", bookings.Get)
		b.POST("/:id/cancel", bookings.Cancel)
		b.GET("/:id/ticket", bookings.Ticket)
	}
}

package reservations

import "github.com/gin-gonic/gin"

// SetupReservationRoutes configures all reservation-related routes
func SetupReservationRoutes(rg *gin.RouterGroup, controller Controller) {
	// Public routes - guests create and manage their own bookings
	public := rg.Group("/reservations")
	{
		public.POST("", controller.CreateReservation)          // POST /api/v1/reservations
		public.GET("/:id", controller.GetReservation)          // GET /api/v1/reservations/:id
		public.PUT("/:id/cancel", controller.CancelReservation) // PUT /api/v1/reservations/:id/cancel
	}

	// Admin routes - staff manage all bookings
	admin := rg.Group("/admin/reservations")
	{
		admin.GET("", controller.ListReservations)                   // GET /api/v1/admin/reservations
		admin.PUT("/:id/status", controller.UpdateReservationStatus) // PUT /api/v1/admin/reservations/:id/status
	}
}

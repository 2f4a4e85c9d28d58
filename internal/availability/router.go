package availability

import "github.com/gin-gonic/gin"

// SetupAvailabilityRoutes configures all availability-related routes
func SetupAvailabilityRoutes(rg *gin.RouterGroup, controller Controller) {
	// Public routes - anyone can check availability
	public := rg.Group("/availability")
	{
		public.GET("/:date", controller.CheckAvailability)           // GET /api/v1/availability/:date
		public.GET("/:date/timeslots", controller.GetTimeSlots)      // GET /api/v1/availability/:date/timeslots
	}

	// Admin routes - direct CRUD bypassing the reconciliation rules
	admin := rg.Group("/admin/availability")
	{
		admin.GET("", controller.ListAvailability)         // GET /api/v1/admin/availability
		admin.POST("", controller.UpsertAvailability)      // POST /api/v1/admin/availability
		admin.DELETE("/:id", controller.DeleteAvailability) // DELETE /api/v1/admin/availability/:id
	}
}

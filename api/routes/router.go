// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"ravenshade/internal/availability"
	"ravenshade/internal/notifications"
	"ravenshade/internal/reservations"
	"ravenshade/internal/shared/config"
	"ravenshade/internal/shared/database"
	"ravenshade/internal/shared/utils/response"
	"ravenshade/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	publisher *notifications.Service

	// Shared across route groups (availability must be wired first so the
	// booking reconciler can reach its repository and cache)
	availabilityRepo    availability.Repository
	availabilityService availability.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, publisher *notifications.Service) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		publisher: publisher,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	engine.NoRoute(func(c *gin.Context) {
		response.RespondError(c, http.StatusNotFound, "Route not found")
	})

	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Availability routes first: reservations depend on them
		r.setupAvailabilityRoutes(api)
		r.setupReservationRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "ravenshade-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "ravenshade-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}

// setupAvailabilityRoutes configures availability routes
func (r *Router) setupAvailabilityRoutes(rg *gin.RouterGroup) {
	availabilityRepo := availability.NewRepository(r.db.GetPostgreSQL())
	availabilityService := availability.NewService(availabilityRepo, r.config.Restaurant.DefaultDailyCapacity)

	if r.db.GetRedis() != nil {
		cacheService := cache.NewService(r.db.GetRedis())
		availabilityService.SetCacheService(cacheService, r.config.Redis.AvailabilityTTL)
	}

	// Keep for injection into the booking reconciler
	r.availabilityRepo = availabilityRepo
	r.availabilityService = availabilityService

	availabilityController := availability.NewController(availabilityService)
	availability.SetupAvailabilityRoutes(rg, availabilityController)
}

// setupReservationRoutes configures reservation routes
func (r *Router) setupReservationRoutes(rg *gin.RouterGroup) {
	reservationRepo := reservations.NewRepository(r.db.GetPostgreSQL(), r.availabilityRepo)
	reservationService := reservations.NewService(reservationRepo, r.config.Restaurant.DefaultDailyCapacity)

	// Capacity mutations must drop cached availability views
	reservationService.SetAvailabilityInvalidator(r.availabilityService)

	if r.publisher != nil {
		reservationService.SetEventPublisher(r.publisher)
	}

	reservationController := reservations.NewController(reservationService)
	reservations.SetupReservationRoutes(rg, reservationController)
}

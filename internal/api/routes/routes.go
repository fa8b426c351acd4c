// internal/api/routes/routes.go
package routes

import (
	"context"
	"log"

	"care-shift-api/internal/api/handlers"
	"care-shift-api/internal/api/middleware"
	"care-shift-api/internal/app"
	"care-shift-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	//Create handlers
	jobHandler := handlers.NewJobHandler(app.JobService, app.Validator)
	applicationHandler := handlers.NewApplicationHandler(app.ApplicationService, app.Coordinator, app.Validator)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret)
	facilityOnly := middleware.RequireRole(models.ActorFacility)
	workerOnly := middleware.RequireRole(models.ActorWorker)

	// --- Register Resource Routes ---
	RegisterJobRoutes(apiV1, jobHandler, authMiddleware, facilityOnly)
	RegisterWorkDateRoutes(apiV1, applicationHandler, authMiddleware, facilityOnly, workerOnly)
	RegisterApplicationRoutes(apiV1, applicationHandler, authMiddleware, workerOnly)

	// --- Health Check ---
	healthHandler := handlers.NewHealthHandler(map[string]func(context.Context) error{
		"database": app.DBPool.Ping,
		"redis":    func(ctx context.Context) error { return app.RedisClient.Ping(ctx).Err() },
	})
	router.GET("/health", healthHandler.Check)

	// --- Metrics ---
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

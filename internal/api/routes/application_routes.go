// internal/api/routes/application_routes.go
package routes

import (
	"care-shift-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers all routes related to the application
// lifecycle.
func RegisterApplicationRoutes(
	rg *gin.RouterGroup,
	applicationHandler handlers.ApplicationHandlerInterface,
	authMiddleware gin.HandlerFunc,
	workerOnly gin.HandlerFunc,
) {
	applications := rg.Group("/applications")
	applications.Use(authMiddleware)
	{
		applications.GET("/my", workerOnly, applicationHandler.ListMyApplications)
		applications.GET("/:id", applicationHandler.GetApplicationByID)
		applications.PATCH("/:id/status", applicationHandler.UpdateStatus)           // Facility or worker transition
		applications.POST("/:id/check-in", workerOnly, applicationHandler.CheckIn)    // Scheduled -> Working
		applications.POST("/:id/check-out", workerOnly, applicationHandler.CheckOut) // Working -> CompletedPending
		applications.POST("/:id/reviews/:side/complete", applicationHandler.CompleteReview)
	}
}

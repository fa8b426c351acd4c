// internal/api/routes/job_routes.go
package routes

import (
	"care-shift-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to job authoring.
// It applies the provided authentication middleware to all job routes.
func RegisterJobRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api/v1)
	jobHandler handlers.JobHandlerInterface,
	authMiddleware gin.HandlerFunc,
	facilityOnly gin.HandlerFunc,
) {
	jobs := rg.Group("/jobs")
	jobs.Use(authMiddleware)
	{
		jobs.POST("/", facilityOnly, jobHandler.CreateJob)                          // Author a job with its dates
		jobs.GET("/:id", jobHandler.GetJobByID)                                     // Get a job, read-time promotion applied
		jobs.POST("/:id/dates", facilityOnly, jobHandler.AddWorkDates)              // Add candidate dates
		jobs.DELETE("/:id/dates/:date_id", facilityOnly, jobHandler.RemoveWorkDate) // Remove one date
	}
}

// internal/api/routes/work_date_routes.go
package routes

import (
	"care-shift-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterWorkDateRoutes registers the work-date scoped application
// operations: applying as a worker and bulk matching as a facility.
func RegisterWorkDateRoutes(
	rg *gin.RouterGroup,
	applicationHandler handlers.ApplicationHandlerInterface,
	authMiddleware gin.HandlerFunc,
	facilityOnly gin.HandlerFunc,
	workerOnly gin.HandlerFunc,
) {
	workDates := rg.Group("/work-dates")
	workDates.Use(authMiddleware)
	{
		workDates.POST("/:id/apply", workerOnly, applicationHandler.Apply)           // Worker applies to a date
		workDates.POST("/:id/match-all", facilityOnly, applicationHandler.BulkMatch) // Facility matches every applicant
	}
}

// internal/api/handlers/interfaces.go
package handlers

import "github.com/gin-gonic/gin"

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	CreateJob(c *gin.Context)
	GetJobByID(c *gin.Context)
	AddWorkDates(c *gin.Context)
	RemoveWorkDate(c *gin.Context)
}

// ApplicationHandlerInterface defines the methods needed by the application
// and work-date routes.
type ApplicationHandlerInterface interface {
	Apply(c *gin.Context)
	UpdateStatus(c *gin.Context)
	BulkMatch(c *gin.Context)
	CheckIn(c *gin.Context)
	CheckOut(c *gin.Context)
	CompleteReview(c *gin.Context)
	GetApplicationByID(c *gin.Context)
	ListMyApplications(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ JobHandlerInterface = (*JobHandler)(nil)
var _ ApplicationHandlerInterface = (*ApplicationHandler)(nil)

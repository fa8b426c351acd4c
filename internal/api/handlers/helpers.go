package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"care-shift-api/internal/models"
	"care-shift-api/internal/services"
	"care-shift-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must have at least %s entries", fieldName, fieldError.Param())
		case "oneof":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of: %s", fieldName, fieldError.Param())
		case "datetime":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a date in %s form", fieldName, fieldError.Param())
		case "gte":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s", fieldName, fieldError.Param())
		}
	}
	return errorsMap
}

// FormatFieldErrors converts the service layer's all-at-once validation
// result into the same field -> message shape as binding failures.
func FormatFieldErrors(verrs services.ValidationErrors) map[string]string {
	errorsMap := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		errorsMap[fe.Field] = fe.Message
	}
	return errorsMap
}

// respondServiceError translates service errors to HTTP. The operation
// string names what was attempted, for logs only.
func respondServiceError(c *gin.Context, err error, operation string) {
	var verrs services.ValidationErrors
	var te *services.TransitionError

	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed", "details": FormatFieldErrors(verrs)})
	case errors.As(err, &te):
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Cannot move application from %s to %s", te.Current, te.Attempted)})
	case errors.Is(err, services.ErrConcurrencyConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Resource was modified concurrently, retry the request"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("Error %s: %v", operation, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed %s", operation)})
	}
}

// MapWorkDateToResponse converts a models.WorkDate to a dto.WorkDateResponse,
// resolving its recruitment window against the owning job's settings.
func MapWorkDateToResponse(wd *models.WorkDate, job *models.Job) dto.WorkDateResponse {
	resp := dto.WorkDateResponse{
		ID:               wd.ID,
		JobID:            wd.JobID,
		Date:             wd.Date.Format("2006-01-02"),
		RecruitmentCount: wd.RecruitmentCount,
		AppliedCount:     wd.AppliedCount,
		MatchedCount:     wd.MatchedCount,
		CreatedAt:        wd.CreatedAt,
		UpdatedAt:        wd.UpdatedAt,
	}
	if opensAt, err := services.RecruitmentOpensAt(wd.Date, job.RecruitmentStartDay, job.RecruitmentStartTime); err == nil && !opensAt.IsZero() {
		resp.OpensAt = &opensAt
	}
	if deadline, err := services.RecruitmentDeadline(wd.Date, job.RecruitmentEndDay, job.RecruitmentEndTime); err == nil {
		resp.Deadline = &deadline
	}
	return resp
}

// MapJobToResponse converts a models.Job and its work dates to a
// dto.JobResponse, including the derived working minutes and daily wage.
func MapJobToResponse(job *models.Job, dates []*models.WorkDate) dto.JobResponse {
	resp := dto.JobResponse{
		ID:                       job.ID,
		FacilityID:               job.FacilityID,
		JobType:                  job.JobType,
		StartTime:                job.StartTime,
		EndTime:                  job.EndTime,
		BreakMinutes:             job.BreakMinutes,
		HourlyWage:               job.HourlyWage,
		TransportationFee:        job.TransportationFee,
		RecruitmentCount:         job.RecruitmentCount,
		RequiresInterview:        job.RequiresInterview,
		WeeklyFrequency:          job.WeeklyFrequency,
		SwitchToNormalDaysBefore: job.SwitchToNormalDaysBefore,
		TargetWorkerID:           job.TargetWorkerID,
		CreatedAt:                job.CreatedAt,
		UpdatedAt:                job.UpdatedAt,
	}
	if minutes, err := services.WorkingMinutes(job.StartTime, job.EndTime, job.BreakMinutes); err == nil {
		resp.WorkingMinutes = minutes
	}
	if wage, err := services.DailyWage(job.StartTime, job.EndTime, job.BreakMinutes, job.HourlyWage, job.TransportationFee); err == nil {
		resp.DailyWage = wage
	}
	resp.Dates = make([]dto.WorkDateResponse, 0, len(dates))
	for _, wd := range dates {
		resp.Dates = append(resp.Dates, MapWorkDateToResponse(wd, job))
	}
	return resp
}

// MapApplicationToResponse converts a models.Application to a
// dto.ApplicationResponse.
func MapApplicationToResponse(app *models.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:                   app.ID,
		WorkDateID:           app.WorkDateID,
		WorkerID:             app.WorkerID,
		Status:               app.Status,
		CancelledBy:          app.CancelledBy,
		WorkerReviewStatus:   app.WorkerReviewStatus,
		FacilityReviewStatus: app.FacilityReviewStatus,
		CreatedAt:            app.CreatedAt,
		UpdatedAt:            app.UpdatedAt,
	}
}

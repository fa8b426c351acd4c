// internal/api/handlers/jobs.go
package handlers

import (
	"log"
	"net/http"

	"care-shift-api/internal/api/middleware"
	"care-shift-api/internal/services"
	"care-shift-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// JobHandler holds dependencies for job authoring operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{
		service:   service,
		validator: validate,
	}
}

// CreateJob godoc
// @Summary      Create a new job posting
// @Description  Authors a job with its candidate work dates. Facility ID is taken from auth context. All authoring rules are checked at once; violations come back as a field-tagged list.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job body      dto.CreateJobRequest true  "Job attributes and candidate dates"
// @Success      201 {object}  dto.JobResponse "Job created successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      422 {object}  map[string]string "Validation failed"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	facilityID, err := middleware.GetActorIDFromContext(c)
	if err != nil {
		log.Printf("Error getting actor ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	req.FacilityID = facilityID

	job, dates, err := h.service.CreateJob(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "creating job")
		return
	}

	c.JSON(http.StatusCreated, MapJobToResponse(job, dates))
}

// GetJobByID godoc
// @Summary      Get a job by ID
// @Description  Retrieves a job with its work dates. A limited job past its switch point is reported as Normal even before the background sweep has persisted the flip.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Success      200 {object}  dto.JobResponse "Successfully retrieved job"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) GetJobByID(c *gin.Context) {
	idStr := c.Param("id")
	jobID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	req := dto.GetJobByIDRequest{ID: jobID}

	job, dates, err := h.service.GetJob(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "fetching job")
		return
	}

	c.JSON(http.StatusOK, MapJobToResponse(job, dates))
}

// AddWorkDates godoc
// @Summary      Add work dates to a job
// @Description  Appends candidate dates to an existing job owned by the authenticated facility. Date rules (not past, switch lead time) are re-checked.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Param        dates body   dto.AddWorkDatesRequest true "Dates to add"
// @Success      201 {array}   dto.WorkDateResponse "Dates created"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not the owning facility"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      422 {object}  map[string]string "Validation failed"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id}/dates [post]
// @Security     BearerAuth
func (h *JobHandler) AddWorkDates(c *gin.Context) {
	facilityID, err := middleware.GetActorIDFromContext(c)
	if err != nil {
		log.Printf("Error getting actor ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	idStr := c.Param("id")
	jobID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	var req dto.AddWorkDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.JobID = jobID
	req.FacilityID = facilityID
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	created, err := h.service.AddWorkDates(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "adding work dates")
		return
	}

	// Window times need the owning job's settings; refetch for the response.
	job, _, err := h.service.GetJob(c.Request.Context(), &dto.GetJobByIDRequest{ID: jobID})
	if err != nil {
		respondServiceError(c, err, "fetching job after adding dates")
		return
	}
	responses := make([]dto.WorkDateResponse, 0, len(created))
	for _, wd := range created {
		responses = append(responses, MapWorkDateToResponse(wd, job))
	}
	c.JSON(http.StatusCreated, responses)
}

// RemoveWorkDate godoc
// @Summary      Remove a work date from a job
// @Description  Deletes one date. Refused while applications count against the date. If losing the date breaks the weekly-frequency commitment, the job is downgraded to per-date recruitment.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Param        date_id path string true  "Work Date ID" Format(uuid)
// @Success      204 {object}  nil "Date removed"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not the owning facility"
// @Failure      404 {object}  map[string]string "Job or Date Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Date has active applications"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id}/dates/{date_id} [delete]
// @Security     BearerAuth
func (h *JobHandler) RemoveWorkDate(c *gin.Context) {
	facilityID, err := middleware.GetActorIDFromContext(c)
	if err != nil {
		log.Printf("Error getting actor ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}
	workDateID, err := uuid.Parse(c.Param("date_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid work date ID format"})
		return
	}

	req := dto.RemoveWorkDateRequest{JobID: jobID, WorkDateID: workDateID, FacilityID: facilityID}

	if err := h.service.RemoveWorkDate(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err, "removing work date")
		return
	}

	c.Status(http.StatusNoContent)
}

// internal/api/handlers/applications.go
package handlers

import (
	"log"
	"net/http"

	"care-shift-api/internal/api/middleware"
	"care-shift-api/internal/models"
	"care-shift-api/internal/services"
	"care-shift-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ApplicationHandler holds dependencies for application lifecycle
// operations. Status changes go through the coordinator so single and bulk
// updates share one path.
type ApplicationHandler struct {
	service     services.ApplicationService
	coordinator *services.Coordinator
	validator   *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, coordinator *services.Coordinator, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{
		service:     service,
		coordinator: coordinator,
		validator:   validate,
	}
}

// Apply godoc
// @Summary      Apply to a work date
// @Description  Creates an application for the authenticated worker. The recruitment window must be open, the date not past, a seat free, and the worker admissible.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Work Date ID" Format(uuid)
// @Success      201 {object}  dto.ApplicationResponse "Application created"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Worker not admissible"
// @Failure      404 {object}  map[string]string "Work Date Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Window closed, seat full or duplicate"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /work-dates/{id}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	workerID, err := middleware.GetActorIDFromContext(c)
	if err != nil {
		log.Printf("Error getting actor ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	workDateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid work date ID format"})
		return
	}

	req := dto.ApplyRequest{WorkDateID: workDateID, WorkerID: workerID}

	app, err := h.service.Apply(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "applying to work date")
		return
	}

	c.JSON(http.StatusCreated, MapApplicationToResponse(app))
}

// UpdateStatus godoc
// @Summary      Update application status
// @Description  Moves one application along the lifecycle on behalf of the authenticated facility or worker. Illegal transitions and lost races return 409.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Application ID" Format(uuid)
// @Param        status body  dto.TransitionRequest true "Target status"
// @Success      200 {object}  dto.ApplicationResponse "Status updated"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Actor cannot make this transition"
// @Failure      404 {object}  map[string]string "Application Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Illegal transition or concurrent modification"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	actorID, err := middleware.GetActorIDFromContext(c)
	if err != nil {
		log.Printf("Error getting actor ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	role, err := middleware.GetActorRoleFromContext(c)
	if err != nil {
		log.Printf("Error getting actor role from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ApplicationID = applicationID
	req.Actor = role
	req.ActorID = actorID
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	updated, err := h.coordinator.UpdateStatus(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "updating application status")
		return
	}

	c.JSON(http.StatusOK, MapApplicationToResponse(updated))
}

// BulkMatch godoc
// @Summary      Match all applicants on a work date
// @Description  Schedules every applied application on the date, oldest first, until the seats run out. Per-item failures are reported; the batch itself always succeeds.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Work Date ID" Format(uuid)
// @Success      200 {object}  dto.BulkMatchResult "Per-item results"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Work Date Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /work-dates/{id}/match-all [post]
// @Security     BearerAuth
func (h *ApplicationHandler) BulkMatch(c *gin.Context) {
	facilityID, err := middleware.GetActorIDFromContext(c)
	if err != nil {
		log.Printf("Error getting actor ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	workDateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid work date ID format"})
		return
	}

	req := dto.BulkMatchRequest{WorkDateID: workDateID, FacilityID: facilityID}

	result, err := h.coordinator.BulkMatch(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "bulk matching work date")
		return
	}

	c.JSON(http.StatusOK, result)
}

// CheckIn godoc
// @Summary      Check in to a scheduled shift
// @Description  Moves the authenticated worker's application from Scheduled to Working. Recorded as a system transition once the caller's identity checks out.
// @Tags         applications
// @Produce      json
// @Param        id path      string true  "Application ID" Format(uuid)
// @Success      200 {object}  dto.ApplicationResponse "Checked in"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not the worker's application"
// @Failure      404 {object}  map[string]string "Application Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Not in Scheduled status"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications/{id}/check-in [post]
// @Security     BearerAuth
func (h *ApplicationHandler) CheckIn(c *gin.Context) {
	h.workerDrivenSystemTransition(c, models.ApplicationStatusWorking, "checking in")
}

// CheckOut godoc
// @Summary      Check out of a shift
// @Description  Moves the authenticated worker's application from Working to CompletedPending and opens both reviews.
// @Tags         applications
// @Produce      json
// @Param        id path      string true  "Application ID" Format(uuid)
// @Success      200 {object}  dto.ApplicationResponse "Checked out"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not the worker's application"
// @Failure      404 {object}  map[string]string "Application Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Not in Working status"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications/{id}/check-out [post]
// @Security     BearerAuth
func (h *ApplicationHandler) CheckOut(c *gin.Context) {
	h.workerDrivenSystemTransition(c, models.ApplicationStatusCompletedPending, "checking out")
}

// workerDrivenSystemTransition verifies the caller owns the application and
// then runs a system transition to the target status. Check-in and
// check-out are system moves in the lifecycle table; the endpoint only
// attributes them to an authenticated worker.
func (h *ApplicationHandler) workerDrivenSystemTransition(c *gin.Context, target models.ApplicationStatus, operation string) {
	workerID, err := middleware.GetActorIDFromContext(c)
	if err != nil {
		log.Printf("Error getting actor ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	app, err := h.service.GetByID(c.Request.Context(), applicationID)
	if err != nil {
		respondServiceError(c, err, operation)
		return
	}
	if app.WorkerID != workerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	updated, err := h.coordinator.UpdateStatus(c.Request.Context(), &dto.TransitionRequest{
		ApplicationID: applicationID,
		Target:        target,
		Actor:         models.ActorSystem,
	})
	if err != nil {
		respondServiceError(c, err, operation)
		return
	}

	c.JSON(http.StatusOK, MapApplicationToResponse(updated))
}

// CompleteReview godoc
// @Summary      Complete one side's review
// @Description  Records the facility or worker review on a CompletedPending application. Each side may only be completed by its own actor. When both sides have completed, the application moves to CompletedRated.
// @Tags         applications
// @Produce      json
// @Param        id path      string true  "Application ID" Format(uuid)
// @Param        side path    string true  "Review side" Enums(facility, worker)
// @Success      200 {object}  dto.ApplicationResponse "Review recorded"
// @Failure      400 {object}  map[string]string "Invalid ID or side"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not this caller's review"
// @Failure      404 {object}  map[string]string "Application Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Reviews are not open"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications/{id}/reviews/{side}/complete [post]
// @Security     BearerAuth
func (h *ApplicationHandler) CompleteReview(c *gin.Context) {
	actorID, err := middleware.GetActorIDFromContext(c)
	if err != nil {
		log.Printf("Error getting actor ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	role, err := middleware.GetActorRoleFromContext(c)
	if err != nil {
		log.Printf("Error getting actor role from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	side := models.Actor(c.Param("side"))
	if side != models.ActorFacility && side != models.ActorWorker {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Review side must be facility or worker"})
		return
	}
	if role != side {
		c.JSON(http.StatusForbidden, gin.H{"error": "Callers may only complete their own side's review"})
		return
	}

	req := dto.CompleteReviewRequest{ApplicationID: applicationID, Side: side, ActorID: actorID}

	updated, err := h.service.CompleteReview(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "completing review")
		return
	}

	c.JSON(http.StatusOK, MapApplicationToResponse(updated))
}

// GetApplicationByID godoc
// @Summary      Get an application by ID
// @Tags         applications
// @Produce      json
// @Param        id path      string true  "Application ID" Format(uuid)
// @Success      200 {object}  dto.ApplicationResponse "Successfully retrieved application"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Application Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetApplicationByID(c *gin.Context) {
	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	app, err := h.service.GetByID(c.Request.Context(), applicationID)
	if err != nil {
		respondServiceError(c, err, "fetching application")
		return
	}

	c.JSON(http.StatusOK, MapApplicationToResponse(app))
}

// ListMyApplications godoc
// @Summary      List the authenticated worker's applications
// @Tags         applications
// @Produce      json
// @Success      200 {array}   dto.ApplicationResponse "Successfully retrieved applications"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications/my [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	workerID, err := middleware.GetActorIDFromContext(c)
	if err != nil {
		log.Printf("Error getting actor ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	apps, err := h.service.ListByWorker(c.Request.Context(), workerID)
	if err != nil {
		respondServiceError(c, err, "listing applications")
		return
	}

	responses := make([]dto.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		responses = append(responses, MapApplicationToResponse(app))
	}
	c.JSON(http.StatusOK, responses)
}

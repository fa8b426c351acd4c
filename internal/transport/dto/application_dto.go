package dto

import (
	"time"

	"care-shift-api/internal/models"

	"github.com/google/uuid"
)

// ApplyRequest is a worker's claim on one work date.
type ApplyRequest struct {
	WorkDateID uuid.UUID `json:"-" validate:"required"`
	WorkerID   uuid.UUID `json:"-"` // Set from auth context
}

// CreateApplicationRequest is used internally by the apply path.
type CreateApplicationRequest struct {
	WorkDateID uuid.UUID `json:"work_date_id"`
	WorkerID   uuid.UUID `json:"worker_id"`
}

// TransitionRequest asks for one application status change on behalf of an
// actor. ActorID identifies the facility admin or worker; system transitions
// carry no ActorID.
type TransitionRequest struct {
	ApplicationID uuid.UUID                `json:"-" validate:"required"`
	Target        models.ApplicationStatus `json:"status" validate:"required,oneof=Applied Scheduled Working CompletedPending CompletedRated Cancelled"`
	Actor         models.Actor             `json:"-"`
	ActorID       uuid.UUID                `json:"-"`
}

// UpdateApplicationStatusRequest is the guarded storage-level status write.
// Expected is the status the row must still hold for the write to land.
type UpdateApplicationStatusRequest struct {
	ID           uuid.UUID
	Expected     models.ApplicationStatus
	Target       models.ApplicationStatus
	CancelledBy  *models.CancelActor
	ResetReviews bool
}

// CompleteReviewRequest marks one side's review as completed and re-evaluates
// the CompletedRated gate. ActorID identifies the caller; the worker side may
// only be completed by the application's worker, the facility side only by
// the facility owning the job.
type CompleteReviewRequest struct {
	ApplicationID uuid.UUID    `json:"-" validate:"required"`
	Side          models.Actor `json:"-" validate:"required,oneof=facility worker"`
	ActorID       uuid.UUID    `json:"-"` // Set from auth context
}

// ApplicationResponse defines the application data returned to the client.
type ApplicationResponse struct {
	ID                   uuid.UUID                `json:"id"`
	WorkDateID           uuid.UUID                `json:"work_date_id"`
	WorkerID             uuid.UUID                `json:"worker_id"`
	Status               models.ApplicationStatus `json:"status"`
	CancelledBy          *models.CancelActor      `json:"cancelled_by,omitempty"`
	WorkerReviewStatus   models.ReviewStatus      `json:"worker_review_status"`
	FacilityReviewStatus models.ReviewStatus      `json:"facility_review_status"`
	CreatedAt            time.Time                `json:"created_at"`
	UpdatedAt            time.Time                `json:"updated_at"`
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

// WorkDateResponse defines the per-date data returned alongside a job.
type WorkDateResponse struct {
	ID               uuid.UUID `json:"id"`
	JobID            uuid.UUID `json:"job_id"`
	Date             string    `json:"date"`
	RecruitmentCount int       `json:"recruitment_count"`
	AppliedCount     int       `json:"applied_count"`
	MatchedCount     int       `json:"matched_count"`
	OpensAt          *time.Time `json:"opens_at,omitempty"`
	Deadline         *time.Time `json:"deadline,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// BulkMatchRequest asks for every pending application on one work date to be
// advanced to Scheduled.
type BulkMatchRequest struct {
	WorkDateID uuid.UUID `json:"-" validate:"required"`
	FacilityID uuid.UUID `json:"-"` // Set from auth context
}

// BulkMatchFailure records one application the bulk operation could not
// advance, with the reason it was skipped.
type BulkMatchFailure struct {
	ApplicationID uuid.UUID `json:"application_id"`
	Reason        string    `json:"reason"`
}

// BulkMatchResult is the normal return shape of the bulk path: a mix of
// successes and per-item failures, never a hard error.
type BulkMatchResult struct {
	SuccessCount int                `json:"success_count"`
	MatchedCount int                `json:"matched_count"`
	Failures     []BulkMatchFailure `json:"failures"`
}

package dto

import (
	"time"

	"care-shift-api/internal/models"

	"github.com/google/uuid"
)

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for authoring a new job posting.
// FacilityID is set internally by the handler from the auth context. Dates
// are candidate work dates in "2006-01-02" form.
type CreateJobRequest struct {
	JobType                  models.JobType `json:"job_type" validate:"required,oneof=Normal LimitedWorked LimitedFavorite Offer Orientation"`
	StartTime                string         `json:"start_time" validate:"required"`
	EndTime                  string         `json:"end_time" validate:"required"`
	BreakMinutes             int            `json:"break_minutes" validate:"gte=0"`
	HourlyWage               int            `json:"hourly_wage" validate:"required,gt=0"`
	TransportationFee        int            `json:"transportation_fee" validate:"gte=0"`
	RecruitmentCount         int            `json:"recruitment_count" validate:"required,gt=0"`
	RequiresInterview        bool           `json:"requires_interview"`
	WeeklyFrequency          *int           `json:"weekly_frequency,omitempty" validate:"omitempty,oneof=2 3 4 5"`
	SwitchToNormalDaysBefore *int           `json:"switch_to_normal_days_before,omitempty" validate:"omitempty,gte=0"`
	RecruitmentStartDay      int            `json:"recruitment_start_day" validate:"gte=-1"`
	RecruitmentStartTime     *string        `json:"recruitment_start_time,omitempty"`
	RecruitmentEndDay        int            `json:"recruitment_end_day" validate:"gte=-1"`
	RecruitmentEndTime       *string        `json:"recruitment_end_time,omitempty"`
	TargetWorkerID           *uuid.UUID     `json:"target_worker_id,omitempty"`
	Dates                    []string       `json:"dates" validate:"required,min=1,dive,datetime=2006-01-02"`
	FacilityID               uuid.UUID      `json:"-"`
}

// GetJobByIDRequest defines the structure for getting a job by ID.
type GetJobByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// AddWorkDatesRequest adds candidate dates to an existing job.
type AddWorkDatesRequest struct {
	JobID      uuid.UUID `json:"-" validate:"required"`
	FacilityID uuid.UUID `json:"-"` // Set from auth context
	Dates      []string  `json:"dates" validate:"required,min=1,dive,datetime=2006-01-02"`
}

// RemoveWorkDateRequest removes one date from a job.
type RemoveWorkDateRequest struct {
	JobID      uuid.UUID `json:"-" validate:"required"`
	WorkDateID uuid.UUID `json:"-" validate:"required"`
	FacilityID uuid.UUID `json:"-"` // Set from auth context
}

// JobResponse defines the standard job data returned to the client. JobType
// reflects read-time promotion for limited jobs past their switch point.
type JobResponse struct {
	ID                       uuid.UUID          `json:"id"`
	FacilityID               uuid.UUID          `json:"facility_id"`
	JobType                  models.JobType     `json:"job_type"`
	StartTime                string             `json:"start_time"`
	EndTime                  string             `json:"end_time"`
	BreakMinutes             int                `json:"break_minutes"`
	HourlyWage               int                `json:"hourly_wage"`
	TransportationFee        int                `json:"transportation_fee"`
	WorkingMinutes           int                `json:"working_minutes"`
	DailyWage                int                `json:"daily_wage"`
	RecruitmentCount         int                `json:"recruitment_count"`
	RequiresInterview        bool               `json:"requires_interview"`
	WeeklyFrequency          *int               `json:"weekly_frequency,omitempty"`
	SwitchToNormalDaysBefore *int               `json:"switch_to_normal_days_before,omitempty"`
	TargetWorkerID           *uuid.UUID         `json:"target_worker_id,omitempty"`
	Dates                    []WorkDateResponse `json:"dates"`
	CreatedAt                time.Time          `json:"created_at"`
	UpdatedAt                time.Time          `json:"updated_at"`
}

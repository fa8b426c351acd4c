package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- Job Type Enum ---
type JobType string

const (
	JobTypeNormal          JobType = "Normal"
	JobTypeLimitedWorked   JobType = "LimitedWorked"
	JobTypeLimitedFavorite JobType = "LimitedFavorite"
	JobTypeOffer           JobType = "Offer"
	JobTypeOrientation     JobType = "Orientation"
)

// IsLimited reports whether the job type is restricted to a worker audience
// (previously worked or favorited) and therefore eligible for promotion.
func (jt JobType) IsLimited() bool {
	return jt == JobTypeLimitedWorked || jt == JobTypeLimitedFavorite
}

// Scan implements the sql.Scanner interface for JobType
func (jt *JobType) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobType: value is not string or []byte")
		}
	}
	v := JobType(strVal)
	switch v {
	case JobTypeNormal, JobTypeLimitedWorked, JobTypeLimitedFavorite, JobTypeOffer, JobTypeOrientation:
		*jt = v
		return nil
	default:
		return fmt.Errorf("invalid JobType value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for JobType
func (jt JobType) Value() (driver.Value, error) {
	return string(jt), nil
}

// --- Application Status Enum ---
type ApplicationStatus string

const (
	ApplicationStatusApplied          ApplicationStatus = "Applied"
	ApplicationStatusScheduled        ApplicationStatus = "Scheduled"
	ApplicationStatusWorking          ApplicationStatus = "Working"
	ApplicationStatusCompletedPending ApplicationStatus = "CompletedPending"
	ApplicationStatusCompletedRated   ApplicationStatus = "CompletedRated"
	ApplicationStatusCancelled        ApplicationStatus = "Cancelled"
)

// ApplicationStatuses lists every status, in lifecycle order.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusApplied,
	ApplicationStatusScheduled,
	ApplicationStatusWorking,
	ApplicationStatusCompletedPending,
	ApplicationStatusCompletedRated,
	ApplicationStatusCancelled,
}

// IsTerminal reports whether no further transition may leave this status.
func (as ApplicationStatus) IsTerminal() bool {
	return as == ApplicationStatusCompletedRated || as == ApplicationStatusCancelled
}

// Scan implements the sql.Scanner interface for ApplicationStatus
func (as *ApplicationStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ApplicationStatus: value is not string or []byte")
		}
	}
	v := ApplicationStatus(strVal)
	switch v {
	case ApplicationStatusApplied, ApplicationStatusScheduled, ApplicationStatusWorking,
		ApplicationStatusCompletedPending, ApplicationStatusCompletedRated, ApplicationStatusCancelled:
		*as = v
		return nil
	default:
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (as ApplicationStatus) Value() (driver.Value, error) {
	return string(as), nil
}

// --- Cancel Actor Enum ---
type CancelActor string

const (
	CancelActorWorker   CancelActor = "Worker"
	CancelActorFacility CancelActor = "Facility"
)

// Scan implements the sql.Scanner interface for CancelActor
func (ca *CancelActor) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan CancelActor: value is not string or []byte")
		}
	}
	v := CancelActor(strVal)
	switch v {
	case CancelActorWorker, CancelActorFacility:
		*ca = v
		return nil
	default:
		return fmt.Errorf("invalid CancelActor value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for CancelActor
func (ca CancelActor) Value() (driver.Value, error) {
	return string(ca), nil
}

// --- Review Status Enum ---
type ReviewStatus string

const (
	ReviewStatusPending   ReviewStatus = "Pending"
	ReviewStatusCompleted ReviewStatus = "Completed"
)

// Scan implements the sql.Scanner interface for ReviewStatus
func (rs *ReviewStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ReviewStatus: value is not string or []byte")
		}
	}
	v := ReviewStatus(strVal)
	switch v {
	case ReviewStatusPending, ReviewStatusCompleted:
		*rs = v
		return nil
	default:
		return fmt.Errorf("invalid ReviewStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for ReviewStatus
func (rs ReviewStatus) Value() (driver.Value, error) {
	return string(rs), nil
}

// --- Actor ---

// Actor identifies who is requesting a status transition. Facility admins and
// workers act on their own behalf; check-in/check-out and the review gate are
// system-driven.
type Actor string

const (
	ActorFacility Actor = "facility"
	ActorWorker   Actor = "worker"
	ActorSystem   Actor = "system"
)

// OpenEndedOffset is the sentinel day offset meaning "no cutoff": the
// recruitment window is bounded only by the work date itself. Offset 0 is
// treated the same way, per existing authoring conventions.
const OpenEndedOffset = -1

// Job represents a shift offer authored by a facility. Start and end times
// are clock strings ("HH:MM"); an end hour of 24 or more means the shift
// runs past midnight into the next day (e.g. "26:00" is 02:00 next day).
type Job struct {
	ID                       uuid.UUID  `json:"id" db:"id"`
	FacilityID               uuid.UUID  `json:"facility_id" db:"facility_id"`
	JobType                  JobType    `json:"job_type" db:"job_type"`
	StartTime                string     `json:"start_time" db:"start_time"`
	EndTime                  string     `json:"end_time" db:"end_time"`
	BreakMinutes             int        `json:"break_minutes" db:"break_minutes"`
	HourlyWage               int        `json:"hourly_wage" db:"hourly_wage"`
	TransportationFee        int        `json:"transportation_fee" db:"transportation_fee"`
	RecruitmentCount         int        `json:"recruitment_count" db:"recruitment_count"`
	RequiresInterview        bool       `json:"requires_interview" db:"requires_interview"`
	WeeklyFrequency          *int       `json:"weekly_frequency,omitempty" db:"weekly_frequency"`
	SwitchToNormalDaysBefore *int       `json:"switch_to_normal_days_before,omitempty" db:"switch_to_normal_days_before"`
	RecruitmentStartDay      int        `json:"recruitment_start_day" db:"recruitment_start_day"`
	RecruitmentStartTime     *string    `json:"recruitment_start_time,omitempty" db:"recruitment_start_time"`
	RecruitmentEndDay        int        `json:"recruitment_end_day" db:"recruitment_end_day"`
	RecruitmentEndTime       *string    `json:"recruitment_end_time,omitempty" db:"recruitment_end_time"`
	TargetWorkerID           *uuid.UUID `json:"target_worker_id,omitempty" db:"target_worker_id"`
	CreatedAt                time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt                time.Time  `json:"updated_at" db:"updated_at"`
}

// WorkDate represents one calendar date on which a Job runs. The counters are
// derived from application statuses and are only ever mutated in the same
// transaction as the application status write.
type WorkDate struct {
	ID               uuid.UUID `json:"id" db:"id"`
	JobID            uuid.UUID `json:"job_id" db:"job_id"`
	Date             time.Time `json:"date" db:"date"`
	RecruitmentCount int       `json:"recruitment_count" db:"recruitment_count"`
	AppliedCount     int       `json:"applied_count" db:"applied_count"`
	MatchedCount     int       `json:"matched_count" db:"matched_count"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// Application represents one worker's claim on one WorkDate. At most one
// application exists per (work date, worker) pair; cancellation is a terminal
// status, never a deletion.
type Application struct {
	ID                   uuid.UUID         `json:"id" db:"id"`
	WorkDateID           uuid.UUID         `json:"work_date_id" db:"work_date_id"`
	WorkerID             uuid.UUID         `json:"worker_id" db:"worker_id"`
	Status               ApplicationStatus `json:"status" db:"status"`
	CancelledBy          *CancelActor      `json:"cancelled_by,omitempty" db:"cancelled_by"`
	WorkerReviewStatus   ReviewStatus      `json:"worker_review_status" db:"worker_review_status"`
	FacilityReviewStatus ReviewStatus      `json:"facility_review_status" db:"facility_review_status"`
	CreatedAt            time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at" db:"updated_at"`
}

package services

import (
	"context"

	"care-shift-api/internal/models"
	"care-shift-api/internal/transport/dto"

	"github.com/google/uuid"
)

// JobService defines the interface for job authoring and promotion logic.
type JobService interface {
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, []*models.WorkDate, error)
	GetJob(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, []*models.WorkDate, error)
	AddWorkDates(ctx context.Context, req *dto.AddWorkDatesRequest) ([]*models.WorkDate, error)
	RemoveWorkDate(ctx context.Context, req *dto.RemoveWorkDateRequest) error
	// SweepPromotions persists overdue LIMITED_* -> Normal switches; returns
	// how many jobs were promoted.
	SweepPromotions(ctx context.Context) (int, error)
	// SweepWeeklyFrequency downgrades jobs whose active date count fell
	// below their commitment; returns how many were downgraded.
	SweepWeeklyFrequency(ctx context.Context) (int, error)
}

// TransitionExecutor issues one authoritative status transition. Split out of
// ApplicationService so the coordinator depends only on what it uses.
type TransitionExecutor interface {
	ExecuteTransition(ctx context.Context, req *dto.TransitionRequest) (*models.Application, error)
}

// ApplicationService defines the interface for application business logic.
type ApplicationService interface {
	TransitionExecutor
	Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	ListByWorker(ctx context.Context, workerID uuid.UUID) ([]*models.Application, error)
	CompleteReview(ctx context.Context, req *dto.CompleteReviewRequest) (*models.Application, error)
}

// EligibilityService is the external worker-state collaborator: pure boolean
// lookups the engine consumes but does not own.
type EligibilityService interface {
	IsEligibleForLimitedJob(ctx context.Context, workerID uuid.UUID, jobType models.JobType) (bool, error)
	IsBlocked(ctx context.Context, workerID, facilityID uuid.UUID) (bool, error)
	// HasEligibleWorkers reports whether a facility has at least one worker
	// in the limited audience; checked when a limited job is authored.
	HasEligibleWorkers(ctx context.Context, facilityID uuid.UUID, jobType models.JobType) (bool, error)
}

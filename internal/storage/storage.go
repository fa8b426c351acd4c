package storage

import (
	"context"
	"time"

	"care-shift-api/internal/models"
	"care-shift-api/internal/transport/dto"

	"github.com/google/uuid"
)

// JobRepository defines the interface for job data operations.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) (*models.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	// EarliestActiveDate returns the earliest work date of the job that is
	// on or after the given day, or nil when none remain.
	EarliestActiveDate(ctx context.Context, jobID uuid.UUID, from time.Time) (*time.Time, error)
	ListLimited(ctx context.Context) ([]*models.Job, error)
	ListWithWeeklyFrequency(ctx context.Context) ([]*models.Job, error)
	// PromoteToNormal flips a limited job to Normal. One-way and idempotent:
	// returns false when the job was already Normal (or not limited).
	PromoteToNormal(ctx context.Context, jobID uuid.UUID) (bool, error)
	// ClearWeeklyFrequency downgrades a job to single-date. One-way and
	// idempotent: returns false when the frequency was already cleared.
	ClearWeeklyFrequency(ctx context.Context, jobID uuid.UUID) (bool, error)
}

// WorkDateRepository defines the interface for work date data operations.
type WorkDateRepository interface {
	Create(ctx context.Context, wd *models.WorkDate) (*models.WorkDate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.WorkDate, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*models.WorkDate, error)
	CountActive(ctx context.Context, jobID uuid.UUID, from time.Time) (int, error)
	// Delete removes a work date; fails with ErrConflict while any
	// application counts against it.
	Delete(ctx context.Context, id uuid.UUID) error
	// ApplyCounterDelta adjusts applied/matched counts. A positive matched
	// delta is guarded by the recruitment count (ErrCapacityReached); both
	// counters are guarded against going negative.
	ApplyCounterDelta(ctx context.Context, id uuid.UUID, appliedDelta, matchedDelta int) error
}

// ApplicationRepository defines the interface for application data operations.
type ApplicationRepository interface {
	Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	// GetForUpdate locks the application row for the rest of the transaction.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Application, error)
	// ListByWorkDateAndStatus returns applications in ascending
	// (created_at, id) order so bulk processing is deterministic.
	ListByWorkDateAndStatus(ctx context.Context, workDateID uuid.UUID, status models.ApplicationStatus) ([]*models.Application, error)
	ListByWorker(ctx context.Context, workerID uuid.UUID) ([]*models.Application, error)
	// UpdateStatus writes the new status guarded on the expected current
	// status; ErrConcurrentModification when the guard misses.
	UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
	SetReviewStatus(ctx context.Context, id uuid.UUID, side models.Actor, status models.ReviewStatus) (*models.Application, error)
}

// Repositories bundles the per-entity repositories bound to one data source,
// either the shared pool or a single transaction.
type Repositories struct {
	Jobs         JobRepository
	WorkDates    WorkDateRepository
	Applications ApplicationRepository
}

// TxManager runs a function with repositories bound to one database
// transaction, committing on nil return and rolling back otherwise.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, r *Repositories) error) error
}

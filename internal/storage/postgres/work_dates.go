package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"care-shift-api/internal/models"
	"care-shift-api/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WorkDateRepo implements the storage.WorkDateRepository interface using pgx.
type WorkDateRepo struct {
	db Querier
}

// NewWorkDateRepo creates a new WorkDateRepo bound to a pool or transaction.
func NewWorkDateRepo(db Querier) *WorkDateRepo {
	return &WorkDateRepo{db: db}
}

var _ storage.WorkDateRepository = (*WorkDateRepo)(nil)

const workDateColumns = `id, job_id, date, recruitment_count, applied_count, matched_count, created_at, updated_at`

func scanWorkDate(row pgx.Row) (*models.WorkDate, error) {
	var wd models.WorkDate
	err := row.Scan(&wd.ID, &wd.JobID, &wd.Date, &wd.RecruitmentCount,
		&wd.AppliedCount, &wd.MatchedCount, &wd.CreatedAt, &wd.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &wd, nil
}

func (r *WorkDateRepo) Create(ctx context.Context, wd *models.WorkDate) (*models.WorkDate, error) {
	query := `INSERT INTO work_dates (id, job_id, date, recruitment_count)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + workDateColumns

	id := wd.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	created, err := scanWorkDate(r.db.QueryRow(ctx, query, id, wd.JobID, wd.Date, wd.RecruitmentCount))
	if err != nil {
		if isUniqueViolation(err) || isForeignKeyViolation(err) {
			log.Printf("Error creating work date (constraint violation): %v\n", err)
			return nil, fmt.Errorf("failed to create work date: constraint violation: %w", storage.ErrConflict)
		}
		log.Printf("Error creating work date: %v\n", err)
		return nil, fmt.Errorf("failed to create work date: %w", err)
	}
	return created, nil
}

func (r *WorkDateRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.WorkDate, error) {
	query := `SELECT ` + workDateColumns + ` FROM work_dates WHERE id = $1`

	wd, err := scanWorkDate(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Work date not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving work date by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get work date by ID %s: %w", id, err)
	}
	return wd, nil
}

func (r *WorkDateRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*models.WorkDate, error) {
	query := `SELECT ` + workDateColumns + ` FROM work_dates WHERE job_id = $1 ORDER BY date ASC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		log.Printf("Error querying work dates by job ID %s: %v\n", jobID, err)
		return nil, fmt.Errorf("failed to list work dates by job: %w", err)
	}
	defer rows.Close()

	var dates []*models.WorkDate
	for rows.Next() {
		wd, err := scanWorkDate(rows)
		if err != nil {
			return nil, err
		}
		dates = append(dates, wd)
	}
	return dates, rows.Err()
}

func (r *WorkDateRepo) CountActive(ctx context.Context, jobID uuid.UUID, from time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM work_dates WHERE job_id = $1 AND date >= $2`

	var count int
	if err := r.db.QueryRow(ctx, query, jobID, from).Scan(&count); err != nil {
		log.Printf("Error counting active work dates for job %s: %v\n", jobID, err)
		return 0, fmt.Errorf("failed to count active work dates for job %s: %w", jobID, err)
	}
	return count, nil
}

// Delete refuses to remove a date that still has applications counting
// against it; the guard is in the statement so two admins cannot race past it.
func (r *WorkDateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM work_dates WHERE id = $1 AND applied_count = 0 AND matched_count = 0`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		log.Printf("Error deleting work date %s: %v\n", id, err)
		return fmt.Errorf("failed to delete work date: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM work_dates WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check work date %s: %w", id, err)
		}
		if !exists {
			return storage.ErrNotFound
		}
		log.Printf("Refusing to delete work date %s with applications attached", id)
		return fmt.Errorf("work date still has applications: %w", storage.ErrConflict)
	}

	log.Printf("Work date deleted successfully with ID: %s", id)
	return nil
}

// ApplyCounterDelta adjusts the derived counters in one guarded statement.
// A positive matched delta only lands while seats remain; this is the seat
// capacity check the bulk race resolves against.
func (r *WorkDateRepo) ApplyCounterDelta(ctx context.Context, id uuid.UUID, appliedDelta, matchedDelta int) error {
	query := `UPDATE work_dates
		SET applied_count = applied_count + $2,
		    matched_count = matched_count + $3,
		    updated_at = now()
		WHERE id = $1
		  AND applied_count + $2 >= 0
		  AND matched_count + $3 >= 0
		  AND ($3 <= 0 OR matched_count + $3 <= recruitment_count)`

	tag, err := r.db.Exec(ctx, query, id, appliedDelta, matchedDelta)
	if err != nil {
		log.Printf("Error applying counter delta to work date %s: %v\n", id, err)
		return fmt.Errorf("failed to update work date counters: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM work_dates WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check work date %s: %w", id, err)
		}
		if !exists {
			return storage.ErrNotFound
		}
		if matchedDelta > 0 {
			return storage.ErrCapacityReached
		}
		return storage.ErrConcurrentModification
	}
	return nil
}

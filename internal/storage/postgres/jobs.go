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

// JobRepo implements the storage.JobRepository interface using pgx.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo bound to a pool or transaction.
func NewJobRepo(db Querier) *JobRepo {
	return &JobRepo{db: db}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

const jobColumns = `id, facility_id, job_type, start_time, end_time, break_minutes,
	hourly_wage, transportation_fee, recruitment_count, requires_interview,
	weekly_frequency, switch_to_normal_days_before,
	recruitment_start_day, recruitment_start_time,
	recruitment_end_day, recruitment_end_time,
	target_worker_id, created_at, updated_at`

func scanJob(row pgx.Row) (*models.Job, error) {
	var j models.Job
	err := row.Scan(
		&j.ID, &j.FacilityID, &j.JobType, &j.StartTime, &j.EndTime, &j.BreakMinutes,
		&j.HourlyWage, &j.TransportationFee, &j.RecruitmentCount, &j.RequiresInterview,
		&j.WeeklyFrequency, &j.SwitchToNormalDaysBefore,
		&j.RecruitmentStartDay, &j.RecruitmentStartTime,
		&j.RecruitmentEndDay, &j.RecruitmentEndTime,
		&j.TargetWorkerID, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *JobRepo) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	query := `INSERT INTO jobs (
		id, facility_id, job_type, start_time, end_time, break_minutes,
		hourly_wage, transportation_fee, recruitment_count, requires_interview,
		weekly_frequency, switch_to_normal_days_before,
		recruitment_start_day, recruitment_start_time,
		recruitment_end_day, recruitment_end_time, target_worker_id
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
	RETURNING ` + jobColumns

	id := job.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	created, err := scanJob(r.db.QueryRow(ctx, query,
		id, job.FacilityID, job.JobType, job.StartTime, job.EndTime, job.BreakMinutes,
		job.HourlyWage, job.TransportationFee, job.RecruitmentCount, job.RequiresInterview,
		job.WeeklyFrequency, job.SwitchToNormalDaysBefore,
		job.RecruitmentStartDay, job.RecruitmentStartTime,
		job.RecruitmentEndDay, job.RecruitmentEndTime, job.TargetWorkerID,
	))
	if err != nil {
		if isUniqueViolation(err) || isForeignKeyViolation(err) {
			log.Printf("Error creating job (constraint violation): %v\n", err)
			return nil, fmt.Errorf("failed to create job: constraint violation: %w", storage.ErrConflict)
		}
		log.Printf("Error creating job: %v\n", err)
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	log.Printf("Job created successfully with ID: %s", created.ID)
	return created, nil
}

func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving job by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get job by ID %s: %w", id, err)
	}
	return job, nil
}

func (r *JobRepo) EarliestActiveDate(ctx context.Context, jobID uuid.UUID, from time.Time) (*time.Time, error) {
	query := `SELECT MIN(date) FROM work_dates WHERE job_id = $1 AND date >= $2`

	var earliest *time.Time
	if err := r.db.QueryRow(ctx, query, jobID, from).Scan(&earliest); err != nil {
		log.Printf("Error querying earliest active date for job %s: %v\n", jobID, err)
		return nil, fmt.Errorf("failed to get earliest active date for job %s: %w", jobID, err)
	}
	return earliest, nil
}

func (r *JobRepo) listByQuery(ctx context.Context, query string, args ...any) ([]*models.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*models.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *JobRepo) ListLimited(ctx context.Context) ([]*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs
		WHERE job_type IN ($1, $2) AND switch_to_normal_days_before IS NOT NULL
		ORDER BY created_at ASC`

	jobs, err := r.listByQuery(ctx, query, models.JobTypeLimitedWorked, models.JobTypeLimitedFavorite)
	if err != nil {
		log.Printf("Error listing limited jobs: %v\n", err)
		return nil, fmt.Errorf("failed to list limited jobs: %w", err)
	}
	return jobs, nil
}

func (r *JobRepo) ListWithWeeklyFrequency(ctx context.Context) ([]*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs
		WHERE weekly_frequency IS NOT NULL
		ORDER BY created_at ASC`

	jobs, err := r.listByQuery(ctx, query)
	if err != nil {
		log.Printf("Error listing weekly-frequency jobs: %v\n", err)
		return nil, fmt.Errorf("failed to list weekly-frequency jobs: %w", err)
	}
	return jobs, nil
}

// PromoteToNormal is a one-way flip: the WHERE clause makes re-running it a
// no-op, and a job that was never limited is left untouched.
func (r *JobRepo) PromoteToNormal(ctx context.Context, jobID uuid.UUID) (bool, error) {
	query := `UPDATE jobs SET job_type = $2, updated_at = now()
		WHERE id = $1 AND job_type IN ($3, $4)`

	tag, err := r.db.Exec(ctx, query, jobID, models.JobTypeNormal,
		models.JobTypeLimitedWorked, models.JobTypeLimitedFavorite)
	if err != nil {
		log.Printf("Error promoting job %s to normal: %v\n", jobID, err)
		return false, fmt.Errorf("failed to promote job %s: %w", jobID, err)
	}
	if tag.RowsAffected() > 0 {
		log.Printf("Job %s promoted to normal visibility", jobID)
		return true, nil
	}
	return false, nil
}

// ClearWeeklyFrequency downgrades a job to single-date; idempotent.
func (r *JobRepo) ClearWeeklyFrequency(ctx context.Context, jobID uuid.UUID) (bool, error) {
	query := `UPDATE jobs SET weekly_frequency = NULL, updated_at = now()
		WHERE id = $1 AND weekly_frequency IS NOT NULL`

	tag, err := r.db.Exec(ctx, query, jobID)
	if err != nil {
		log.Printf("Error clearing weekly frequency for job %s: %v\n", jobID, err)
		return false, fmt.Errorf("failed to clear weekly frequency for job %s: %w", jobID, err)
	}
	if tag.RowsAffected() > 0 {
		log.Printf("Job %s downgraded to single-date", jobID)
		return true, nil
	}
	return false, nil
}

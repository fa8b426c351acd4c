package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"care-shift-api/internal/models"
	"care-shift-api/internal/storage"
	"care-shift-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ApplicationRepo implements the storage.ApplicationRepository interface using pgx.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepo creates a new ApplicationRepo bound to a pool or transaction.
func NewApplicationRepo(db Querier) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

const applicationColumns = `id, work_date_id, worker_id, status, cancelled_by,
	worker_review_status, facility_review_status, created_at, updated_at`

func scanApplication(row pgx.Row) (*models.Application, error) {
	var a models.Application
	err := row.Scan(&a.ID, &a.WorkDateID, &a.WorkerID, &a.Status, &a.CancelledBy,
		&a.WorkerReviewStatus, &a.FacilityReviewStatus, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ApplicationRepo) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	query := `INSERT INTO applications (id, work_date_id, worker_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + applicationColumns

	created, err := scanApplication(r.db.QueryRow(ctx, query,
		uuid.New(), req.WorkDateID, req.WorkerID, models.ApplicationStatusApplied))
	if err != nil {
		if isUniqueViolation(err) {
			// One application per (work date, worker) pair.
			log.Printf("Error creating application (duplicate): %v\n", err)
			return nil, fmt.Errorf("worker already applied to this work date: %w", storage.ErrConflict)
		}
		if isForeignKeyViolation(err) {
			log.Printf("Error creating application (missing work date): %v\n", err)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error creating application: %v\n", err)
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	log.Printf("Application created successfully with ID: %s", created.ID)
	return created, nil
}

func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate locks the row until the surrounding transaction ends, which
// serializes competing transitions on the same application.
func (r *ApplicationRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	return r.get(ctx, id, true)
}

func (r *ApplicationRepo) get(ctx context.Context, id uuid.UUID, forUpdate bool) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Application not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving application by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get application by ID %s: %w", id, err)
	}
	return app, nil
}

// ListByWorkDateAndStatus orders ascending by (created_at, id) so bulk
// operations process applications in a fixed, reproducible order.
func (r *ApplicationRepo) ListByWorkDateAndStatus(ctx context.Context, workDateID uuid.UUID, status models.ApplicationStatus) ([]*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications
		WHERE work_date_id = $1 AND status = $2
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, query, workDateID, status)
	if err != nil {
		log.Printf("Error querying applications by work date ID %s: %v\n", workDateID, err)
		return nil, fmt.Errorf("failed to list applications by work date: %w", err)
	}
	defer rows.Close()

	var apps []*models.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *ApplicationRepo) ListByWorker(ctx context.Context, workerID uuid.UUID) ([]*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications
		WHERE worker_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, workerID)
	if err != nil {
		log.Printf("Error querying applications by worker ID %s: %v\n", workerID, err)
		return nil, fmt.Errorf("failed to list applications by worker: %w", err)
	}
	defer rows.Close()

	var apps []*models.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// UpdateStatus writes the new status guarded on the expected current status,
// so a row another session already advanced is reported as a conflict rather
// than silently overwritten.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	query := `UPDATE applications
		SET status = $2,
		    cancelled_by = COALESCE($3, cancelled_by),
		    worker_review_status = CASE WHEN $4 THEN $5 ELSE worker_review_status END,
		    facility_review_status = CASE WHEN $4 THEN $5 ELSE facility_review_status END,
		    updated_at = now()
		WHERE id = $1 AND status = $6
		RETURNING ` + applicationColumns

	updated, err := scanApplication(r.db.QueryRow(ctx, query,
		req.ID, req.Target, req.CancelledBy, req.ResetReviews, models.ReviewStatusPending, req.Expected))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var exists bool
			if checkErr := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM applications WHERE id = $1)`, req.ID).Scan(&exists); checkErr != nil {
				return nil, fmt.Errorf("failed to check application %s: %w", req.ID, checkErr)
			}
			if !exists {
				log.Printf("Application not found for status update with ID: %s\n", req.ID)
				return nil, storage.ErrNotFound
			}
			log.Printf("Application %s changed since read (expected status %s)", req.ID, req.Expected)
			return nil, storage.ErrConcurrentModification
		}
		log.Printf("Error updating application status for ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	return updated, nil
}

func (r *ApplicationRepo) SetReviewStatus(ctx context.Context, id uuid.UUID, side models.Actor, status models.ReviewStatus) (*models.Application, error) {
	var column string
	switch side {
	case models.ActorWorker:
		column = "worker_review_status"
	case models.ActorFacility:
		column = "facility_review_status"
	default:
		return nil, fmt.Errorf("invalid review side %q", side)
	}

	query := `UPDATE applications SET ` + column + ` = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + applicationColumns

	updated, err := scanApplication(r.db.QueryRow(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Application not found for review update with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating review status for application %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update review status: %w", err)
	}
	return updated, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"care-shift-api/internal/events"
	"care-shift-api/internal/metrics"
	"care-shift-api/internal/models"
	"care-shift-api/internal/storage"
	"care-shift-api/internal/transport/dto"

	"github.com/google/uuid"
)

type applicationService struct {
	repos       *storage.Repositories
	tx          storage.TxManager
	eligibility EligibilityService
	publisher   events.Publisher
	now         func() time.Time
}

// ApplicationServiceOption customizes an applicationService; used by tests
// to pin the clock.
type ApplicationServiceOption func(*applicationService)

// WithApplicationClock overrides the service's time source.
func WithApplicationClock(now func() time.Time) ApplicationServiceOption {
	return func(s *applicationService) { s.now = now }
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(repos *storage.Repositories, tx storage.TxManager, eligibility EligibilityService, publisher events.Publisher, opts ...ApplicationServiceOption) ApplicationService {
	s := &applicationService{
		repos:       repos,
		tx:          tx,
		eligibility: eligibility,
		publisher:   publisher,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Apply creates an application against a work date. Admission rules run
// inside the transaction so the applied counter and the row move together.
func (s *applicationService) Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error) {
	now := s.now()
	var created *models.Application
	var jobID uuid.UUID

	err := s.tx.WithinTx(ctx, func(ctx context.Context, r *storage.Repositories) error {
		wd, err := r.WorkDates.GetByID(ctx, req.WorkDateID)
		if err != nil {
			return MapRepoError(err, fmt.Sprintf("fetching work date %s", req.WorkDateID))
		}
		job, err := r.Jobs.GetByID(ctx, wd.JobID)
		if err != nil {
			return MapRepoError(err, fmt.Sprintf("fetching job %s", wd.JobID))
		}
		jobID = job.ID

		if DaysUntil(wd.Date, now) < 0 {
			return fmt.Errorf("%w: work date %s has already passed", ErrConflict, wd.Date.Format(dateLayout))
		}
		open, err := WindowOpen(job, wd.Date, now)
		if err != nil {
			return fmt.Errorf("internal error evaluating recruitment window: %w", err)
		}
		if !open {
			return fmt.Errorf("%w: recruitment window for this date is closed", ErrConflict)
		}
		if wd.MatchedCount >= wd.RecruitmentCount {
			return fmt.Errorf("%w: work date is already fully matched", ErrConflict)
		}

		blocked, err := s.eligibility.IsBlocked(ctx, req.WorkerID, job.FacilityID)
		if err != nil {
			return fmt.Errorf("internal error checking block list: %w", err)
		}
		if blocked {
			log.Printf("Apply: Blocked worker %s attempted job %s at facility %s", req.WorkerID, job.ID, job.FacilityID)
			return ErrForbidden
		}
		if job.JobType.IsLimited() {
			eligible, err := s.eligibility.IsEligibleForLimitedJob(ctx, req.WorkerID, job.JobType)
			if err != nil {
				return fmt.Errorf("internal error checking limited eligibility: %w", err)
			}
			if !eligible {
				return fmt.Errorf("%w: worker is not in this limited job's audience", ErrForbidden)
			}
		}
		if job.JobType == models.JobTypeOffer {
			if job.TargetWorkerID == nil || *job.TargetWorkerID != req.WorkerID {
				return fmt.Errorf("%w: offer jobs accept only their target worker", ErrForbidden)
			}
		}

		app, err := r.Applications.Create(ctx, &dto.CreateApplicationRequest{
			WorkDateID: wd.ID,
			WorkerID:   req.WorkerID,
		})
		if err != nil {
			return MapRepoError(err, "creating application")
		}
		if err := r.WorkDates.ApplyCounterDelta(ctx, wd.ID, 1, 0); err != nil {
			return MapRepoError(err, "incrementing applied count")
		}
		created = app
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.DomainEvent{
		EventType:     events.TypeApplicationApplied,
		JobID:         jobID,
		WorkDateID:    &created.WorkDateID,
		ApplicationID: &created.ID,
		Actor:         models.ActorWorker,
	})
	return created, nil
}

// ExecuteTransition moves one application to a target status. The row is
// locked for the duration, counters shift atomically with the status write,
// and a status guard on the final UPDATE catches writers that raced past
// the lock.
func (s *applicationService) ExecuteTransition(ctx context.Context, req *dto.TransitionRequest) (*models.Application, error) {
	var result *models.Application
	var jobID uuid.UUID
	var fromStatus models.ApplicationStatus

	err := s.tx.WithinTx(ctx, func(ctx context.Context, r *storage.Repositories) error {
		app, err := r.Applications.GetForUpdate(ctx, req.ApplicationID)
		if err != nil {
			return MapRepoError(err, fmt.Sprintf("locking application %s", req.ApplicationID))
		}
		wd, err := r.WorkDates.GetByID(ctx, app.WorkDateID)
		if err != nil {
			return MapRepoError(err, fmt.Sprintf("fetching work date %s", app.WorkDateID))
		}
		job, err := r.Jobs.GetByID(ctx, wd.JobID)
		if err != nil {
			return MapRepoError(err, fmt.Sprintf("fetching job %s", wd.JobID))
		}
		jobID = job.ID
		fromStatus = app.Status

		if err := authorizeActor(req, app, job); err != nil {
			return err
		}

		effect, err := PlanTransition(app, req.Target, req.Actor)
		if err != nil {
			return err
		}

		if effect.Delta.Applied != 0 || effect.Delta.Matched != 0 {
			err := r.WorkDates.ApplyCounterDelta(ctx, wd.ID, effect.Delta.Applied, effect.Delta.Matched)
			if err != nil {
				if effect.Delta.Matched > 0 && errors.Is(err, storage.ErrCapacityReached) {
					// The seat filled between the plan and the write.
					return &TransitionError{Current: app.Status, Attempted: req.Target}
				}
				return MapRepoError(err, "shifting counters")
			}
		}

		updated, err := r.Applications.UpdateStatus(ctx, &dto.UpdateApplicationStatusRequest{
			ID:           app.ID,
			Expected:     app.Status,
			Target:       req.Target,
			CancelledBy:  effect.CancelledBy,
			ResetReviews: effect.ResetReviews,
		})
		if err != nil {
			return MapRepoError(err, fmt.Sprintf("updating application %s", app.ID))
		}
		result = updated
		return nil
	})
	if err != nil {
		metrics.TransitionFailures.WithLabelValues(failureReason(err)).Inc()
		return nil, err
	}

	metrics.ApplicationTransitions.WithLabelValues(string(fromStatus), string(result.Status)).Inc()
	s.publishTransition(ctx, jobID, result, req.Actor)
	return result, nil
}

// CompleteReview records one side's review. Each side may only be completed
// by its own actor: the application's worker or the facility owning the job.
// When both sides have completed, the application is rated as a system
// action.
func (s *applicationService) CompleteReview(ctx context.Context, req *dto.CompleteReviewRequest) (*models.Application, error) {
	app, err := s.repos.Applications.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching application %s", req.ApplicationID))
	}

	switch req.Side {
	case models.ActorWorker:
		if req.ActorID != app.WorkerID {
			return nil, fmt.Errorf("%w: application belongs to another worker", ErrForbidden)
		}
	case models.ActorFacility:
		wd, err := s.repos.WorkDates.GetByID(ctx, app.WorkDateID)
		if err != nil {
			return nil, MapRepoError(err, fmt.Sprintf("fetching work date %s", app.WorkDateID))
		}
		job, err := s.repos.Jobs.GetByID(ctx, wd.JobID)
		if err != nil {
			return nil, MapRepoError(err, fmt.Sprintf("fetching job %s", wd.JobID))
		}
		if req.ActorID != job.FacilityID {
			return nil, fmt.Errorf("%w: facility does not own this job", ErrForbidden)
		}
	default:
		return nil, fmt.Errorf("%w: unknown review side %q", ErrForbidden, req.Side)
	}

	if app.Status != models.ApplicationStatusCompletedPending {
		return nil, &TransitionError{Current: app.Status, Attempted: models.ApplicationStatusCompletedRated}
	}

	updated, err := s.repos.Applications.SetReviewStatus(ctx, req.ApplicationID, req.Side, models.ReviewStatusCompleted)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("recording %s review for application %s", req.Side, req.ApplicationID))
	}

	if updated.WorkerReviewStatus == models.ReviewStatusCompleted && updated.FacilityReviewStatus == models.ReviewStatusCompleted {
		rated, err := s.ExecuteTransition(ctx, &dto.TransitionRequest{
			ApplicationID: req.ApplicationID,
			Target:        models.ApplicationStatusCompletedRated,
			Actor:         models.ActorSystem,
		})
		if err != nil {
			// The opposite side's completion may have raced us to the
			// rating. This caller's review was recorded either way.
			if current, gerr := s.repos.Applications.GetByID(ctx, req.ApplicationID); gerr == nil && current.Status == models.ApplicationStatusCompletedRated {
				return current, nil
			}
			return nil, err
		}
		return rated, nil
	}
	return updated, nil
}

// GetByID returns one application.
func (s *applicationService) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	app, err := s.repos.Applications.GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching application %s", id))
	}
	return app, nil
}

// ListByWorker returns a worker's applications, newest first.
func (s *applicationService) ListByWorker(ctx context.Context, workerID uuid.UUID) ([]*models.Application, error) {
	apps, err := s.repos.Applications.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("listing applications for worker %s", workerID))
	}
	return apps, nil
}

// authorizeActor checks the caller against the side the transition claims.
// Facilities act on their own jobs, workers on their own applications, and
// system actions carry no identity.
func authorizeActor(req *dto.TransitionRequest, app *models.Application, job *models.Job) error {
	switch req.Actor {
	case models.ActorFacility:
		if req.ActorID != job.FacilityID {
			return fmt.Errorf("%w: facility does not own this job", ErrForbidden)
		}
	case models.ActorWorker:
		if req.ActorID != app.WorkerID {
			return fmt.Errorf("%w: application belongs to another worker", ErrForbidden)
		}
	case models.ActorSystem:
		// Internal callers only; never reachable from the HTTP surface.
	default:
		return fmt.Errorf("%w: unknown actor %q", ErrForbidden, req.Actor)
	}
	return nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, ErrConcurrencyConflict):
		return "concurrency_conflict"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "internal"
	}
}

func (s *applicationService) publishTransition(ctx context.Context, jobID uuid.UUID, app *models.Application, actor models.Actor) {
	var eventType string
	switch app.Status {
	case models.ApplicationStatusScheduled:
		eventType = events.TypeApplicationScheduled
	case models.ApplicationStatusWorking:
		eventType = events.TypeApplicationWorking
	case models.ApplicationStatusCompletedPending:
		eventType = events.TypeReviewsOpen
	case models.ApplicationStatusCompletedRated:
		eventType = events.TypeApplicationRated
	case models.ApplicationStatusCancelled:
		eventType = events.TypeApplicationCancelled
	default:
		return
	}
	s.publish(ctx, events.DomainEvent{
		EventType:     eventType,
		JobID:         jobID,
		WorkDateID:    &app.WorkDateID,
		ApplicationID: &app.ID,
		Actor:         actor,
	})
}

func (s *applicationService) publish(ctx context.Context, event events.DomainEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("Error publishing event %s for job %s: %v", event.EventType, event.JobID, err)
	}
}

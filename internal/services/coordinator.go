package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"care-shift-api/internal/metrics"
	"care-shift-api/internal/models"
	"care-shift-api/internal/storage"
	"care-shift-api/internal/transport/dto"

	"github.com/google/uuid"
)

// ApplicationView is a typed in-memory view of applications, used by callers
// that batch status changes and need optimistic local state with exact
// rollback. Entries are full value copies; mutating the view never touches
// the caller's rows.
type ApplicationView struct {
	entries map[uuid.UUID]models.Application
}

// NewApplicationView builds a view over the given applications.
func NewApplicationView(apps []*models.Application) *ApplicationView {
	v := &ApplicationView{entries: make(map[uuid.UUID]models.Application, len(apps))}
	for _, app := range apps {
		v.entries[app.ID] = *app
	}
	return v
}

// Get returns a copy of the entry, if present.
func (v *ApplicationView) Get(id uuid.UUID) (models.Application, bool) {
	app, ok := v.entries[id]
	return app, ok
}

func (v *ApplicationView) set(app models.Application) {
	v.entries[app.ID] = app
}

// TransitionCommand is one status change applied first to the local view and
// then to storage. Apply validates and stages the change; Commit makes it
// authoritative; Rollback restores the exact pre-Apply entry. A command runs
// each phase at most once.
type TransitionCommand struct {
	view     *ApplicationView
	executor TransitionExecutor
	request  *dto.TransitionRequest

	snapshot models.Application
	applied  bool
	done     bool
}

// NewTransitionCommand builds a command against the view.
func NewTransitionCommand(view *ApplicationView, executor TransitionExecutor, req *dto.TransitionRequest) *TransitionCommand {
	return &TransitionCommand{view: view, executor: executor, request: req}
}

// Apply stages the transition on the local view. The entry is snapshotted
// before any change so Rollback can restore it field for field.
func (c *TransitionCommand) Apply() error {
	if c.applied {
		return fmt.Errorf("transition command for %s applied twice", c.request.ApplicationID)
	}
	app, ok := c.view.Get(c.request.ApplicationID)
	if !ok {
		return fmt.Errorf("%w: application %s not in view", ErrNotFound, c.request.ApplicationID)
	}
	c.snapshot = app

	effect, err := PlanTransition(&app, c.request.Target, c.request.Actor)
	if err != nil {
		return err
	}

	app.Status = c.request.Target
	if effect.SetCancelled {
		app.CancelledBy = effect.CancelledBy
	}
	if effect.ResetReviews {
		app.WorkerReviewStatus = models.ReviewStatusPending
		app.FacilityReviewStatus = models.ReviewStatusPending
	}
	c.view.set(app)
	c.applied = true
	return nil
}

// Commit executes the staged transition against storage and reconciles the
// view with the authoritative row. Once the write is issued it is not
// abandoned on caller cancellation; the row either moved or it did not, and
// the view must reflect which.
func (c *TransitionCommand) Commit(ctx context.Context) (*models.Application, error) {
	if !c.applied || c.done {
		return nil, fmt.Errorf("transition command for %s committed out of order", c.request.ApplicationID)
	}
	c.done = true

	updated, err := c.executor.ExecuteTransition(context.WithoutCancel(ctx), c.request)
	if err != nil {
		c.view.set(c.snapshot)
		return nil, err
	}
	c.view.set(*updated)
	return updated, nil
}

// Rollback undoes a staged, uncommitted transition, restoring the snapshot.
func (c *TransitionCommand) Rollback() {
	if !c.applied || c.done {
		return
	}
	c.done = true
	c.view.set(c.snapshot)
}

// Coordinator serializes grouped status updates. Single updates go through
// the same command path as bulk ones so both get snapshot and rollback
// semantics.
type Coordinator struct {
	executor     TransitionExecutor
	applications storage.ApplicationRepository
	workDates    storage.WorkDateRepository
}

// NewCoordinator creates a new Coordinator.
func NewCoordinator(executor TransitionExecutor, applications storage.ApplicationRepository, workDates storage.WorkDateRepository) *Coordinator {
	return &Coordinator{
		executor:     executor,
		applications: applications,
		workDates:    workDates,
	}
}

// UpdateStatus runs one transition through the command path.
func (co *Coordinator) UpdateStatus(ctx context.Context, req *dto.TransitionRequest) (*models.Application, error) {
	app, err := co.applications.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching application %s", req.ApplicationID))
	}

	view := NewApplicationView([]*models.Application{app})
	cmd := NewTransitionCommand(view, co.executor, req)
	if err := cmd.Apply(); err != nil {
		return nil, err
	}
	return cmd.Commit(ctx)
}

// BulkMatch schedules every applied application on a work date, oldest
// first, until the seats run out. Items run strictly one after another: each
// outcome decides whether the next attempt can still succeed, so the loop is
// sequential for correctness, not just simplicity.
func (co *Coordinator) BulkMatch(ctx context.Context, req *dto.BulkMatchRequest) (*dto.BulkMatchResult, error) {
	apps, err := co.applications.ListByWorkDateAndStatus(ctx, req.WorkDateID, models.ApplicationStatusApplied)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("listing applicants for work date %s", req.WorkDateID))
	}

	view := NewApplicationView(apps)
	result := &dto.BulkMatchResult{}
	for _, app := range apps {
		cmd := NewTransitionCommand(view, co.executor, &dto.TransitionRequest{
			ApplicationID: app.ID,
			Target:        models.ApplicationStatusScheduled,
			Actor:         models.ActorFacility,
			ActorID:       req.FacilityID,
		})
		if err := cmd.Apply(); err != nil {
			result.Failures = append(result.Failures, dto.BulkMatchFailure{
				ApplicationID: app.ID,
				Reason:        bulkFailureReason(err),
			})
			metrics.BulkMatchItems.WithLabelValues("failure").Inc()
			continue
		}
		if _, err := cmd.Commit(ctx); err != nil {
			result.Failures = append(result.Failures, dto.BulkMatchFailure{
				ApplicationID: app.ID,
				Reason:        bulkFailureReason(err),
			})
			metrics.BulkMatchItems.WithLabelValues("failure").Inc()
			continue
		}
		result.SuccessCount++
		metrics.BulkMatchItems.WithLabelValues("success").Inc()
	}

	// The matched total comes from storage, not from counting successes;
	// other writers may have moved it during the loop.
	wd, err := co.workDates.GetByID(ctx, req.WorkDateID)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching work date %s", req.WorkDateID))
	}
	result.MatchedCount = wd.MatchedCount

	if len(result.Failures) > 0 {
		log.Printf("Bulk match on work date %s: %d scheduled, %d skipped", req.WorkDateID, result.SuccessCount, len(result.Failures))
	}
	return result, nil
}

func bulkFailureReason(err error) string {
	var te *TransitionError
	switch {
	case errors.As(err, &te):
		if te.Current == models.ApplicationStatusApplied {
			return "date filled"
		}
		return fmt.Sprintf("cannot schedule from status %s", te.Current)
	case errors.Is(err, ErrConcurrencyConflict):
		return "modified concurrently"
	case errors.Is(err, ErrForbidden):
		return "not authorized"
	case errors.Is(err, ErrNotFound):
		return "no longer exists"
	default:
		return "internal error"
	}
}

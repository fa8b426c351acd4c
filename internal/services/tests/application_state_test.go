package services_test

import (
	"errors"
	"testing"

	"care-shift-api/internal/models"
	"care-shift-api/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(status models.ApplicationStatus) *models.Application {
	return &models.Application{Status: status}
}

func TestPlanTransition_MatchIncrementsMatched(t *testing.T) {
	effect, err := services.PlanTransition(newApp(models.ApplicationStatusApplied), models.ApplicationStatusScheduled, models.ActorFacility)
	require.NoError(t, err)

	assert.Equal(t, services.CounterDelta{Matched: 1}, effect.Delta)
	assert.False(t, effect.SetCancelled)
	assert.False(t, effect.ResetReviews)
}

func TestPlanTransition_CancelBeforeMatchDecrementsApplied(t *testing.T) {
	effect, err := services.PlanTransition(newApp(models.ApplicationStatusApplied), models.ApplicationStatusCancelled, models.ActorWorker)
	require.NoError(t, err)

	assert.Equal(t, services.CounterDelta{Applied: -1}, effect.Delta)
	require.NotNil(t, effect.CancelledBy)
	assert.Equal(t, models.CancelActorWorker, *effect.CancelledBy)
}

func TestPlanTransition_CancelAfterMatchDecrementsMatched(t *testing.T) {
	effect, err := services.PlanTransition(newApp(models.ApplicationStatusScheduled), models.ApplicationStatusCancelled, models.ActorFacility)
	require.NoError(t, err)

	assert.Equal(t, services.CounterDelta{Matched: -1}, effect.Delta)
	require.NotNil(t, effect.CancelledBy)
	assert.Equal(t, models.CancelActorFacility, *effect.CancelledBy)
}

func TestPlanTransition_CheckOutOpensReviews(t *testing.T) {
	effect, err := services.PlanTransition(newApp(models.ApplicationStatusWorking), models.ApplicationStatusCompletedPending, models.ActorSystem)
	require.NoError(t, err)

	assert.True(t, effect.ResetReviews)
	assert.Equal(t, services.CounterDelta{}, effect.Delta)
}

func TestPlanTransition_RatedRequiresBothReviews(t *testing.T) {
	app := newApp(models.ApplicationStatusCompletedPending)
	app.WorkerReviewStatus = models.ReviewStatusCompleted
	app.FacilityReviewStatus = models.ReviewStatusPending

	_, err := services.PlanTransition(app, models.ApplicationStatusCompletedRated, models.ActorSystem)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)

	app.FacilityReviewStatus = models.ReviewStatusCompleted
	_, err = services.PlanTransition(app, models.ApplicationStatusCompletedRated, models.ActorSystem)
	assert.NoError(t, err)
}

func TestPlanTransition_WrongActorForbidden(t *testing.T) {
	// Matching is the facility's move.
	_, err := services.PlanTransition(newApp(models.ApplicationStatusApplied), models.ApplicationStatusScheduled, models.ActorWorker)
	assert.ErrorIs(t, err, services.ErrForbidden)

	// Check-in is a system move.
	_, err = services.PlanTransition(newApp(models.ApplicationStatusScheduled), models.ApplicationStatusWorking, models.ActorFacility)
	assert.ErrorIs(t, err, services.ErrForbidden)
}

// Every (from, to) pair outside the lifecycle table must be rejected for
// every actor, and the error must carry both statuses.
func TestPlanTransition_IllegalPairsExhaustive(t *testing.T) {
	legal := map[[2]models.ApplicationStatus]bool{
		{models.ApplicationStatusApplied, models.ApplicationStatusScheduled}:               true,
		{models.ApplicationStatusApplied, models.ApplicationStatusCancelled}:               true,
		{models.ApplicationStatusScheduled, models.ApplicationStatusCancelled}:             true,
		{models.ApplicationStatusScheduled, models.ApplicationStatusWorking}:               true,
		{models.ApplicationStatusWorking, models.ApplicationStatusCompletedPending}:        true,
		{models.ApplicationStatusCompletedPending, models.ApplicationStatusCompletedRated}: true,
	}
	actors := []models.Actor{models.ActorFacility, models.ActorWorker, models.ActorSystem}

	for _, from := range models.ApplicationStatuses {
		for _, to := range models.ApplicationStatuses {
			if legal[[2]models.ApplicationStatus{from, to}] {
				continue
			}
			for _, actor := range actors {
				_, err := services.PlanTransition(newApp(from), to, actor)
				require.Error(t, err, "%s -> %s by %s must be illegal", from, to, actor)
				assert.ErrorIs(t, err, services.ErrInvalidTransition)

				var te *services.TransitionError
				require.True(t, errors.As(err, &te))
				assert.Equal(t, from, te.Current)
				assert.Equal(t, to, te.Attempted)
			}
		}
	}
}

func TestCanTransition(t *testing.T) {
	assert.True(t, services.CanTransition(models.ApplicationStatusApplied, models.ApplicationStatusScheduled, models.ActorFacility))
	assert.False(t, services.CanTransition(models.ApplicationStatusApplied, models.ApplicationStatusScheduled, models.ActorWorker))
	assert.False(t, services.CanTransition(models.ApplicationStatusCancelled, models.ApplicationStatusApplied, models.ActorSystem))
}

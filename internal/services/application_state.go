package services

import (
	"care-shift-api/internal/models"
)

// The per-(work date, worker) status lifecycle:
//
//	Applied -> Scheduled -> Working -> CompletedPending -> CompletedRated
//
// with Cancelled reachable from Applied and Scheduled. Applied is the only
// initial state; CompletedRated and Cancelled are terminal. Counter side
// effects on the owning work date belong to the transition itself and are
// applied in the same transaction as the status write.

// CounterDelta is the work-date counter side effect of one transition.
type CounterDelta struct {
	Applied int
	Matched int
}

type transitionRule struct {
	actors []models.Actor
	delta  CounterDelta

	// setsCancelledBy records the requesting actor as the canceller.
	setsCancelledBy bool
	// resetsReviews reopens both review statuses to Pending.
	resetsReviews bool
	// requiresBothReviews gates the transition on both sides having
	// completed their review.
	requiresBothReviews bool
}

type transitionKey struct {
	from, to models.ApplicationStatus
}

var transitionTable = map[transitionKey]transitionRule{
	{models.ApplicationStatusApplied, models.ApplicationStatusScheduled}: {
		actors: []models.Actor{models.ActorFacility},
		delta:  CounterDelta{Matched: +1},
	},
	{models.ApplicationStatusApplied, models.ApplicationStatusCancelled}: {
		actors:          []models.Actor{models.ActorFacility, models.ActorWorker},
		delta:           CounterDelta{Applied: -1},
		setsCancelledBy: true,
	},
	{models.ApplicationStatusScheduled, models.ApplicationStatusCancelled}: {
		actors:          []models.Actor{models.ActorFacility, models.ActorWorker},
		delta:           CounterDelta{Matched: -1},
		setsCancelledBy: true,
	},
	{models.ApplicationStatusScheduled, models.ApplicationStatusWorking}: {
		actors: []models.Actor{models.ActorSystem},
	},
	{models.ApplicationStatusWorking, models.ApplicationStatusCompletedPending}: {
		actors:        []models.Actor{models.ActorSystem},
		resetsReviews: true,
	},
	{models.ApplicationStatusCompletedPending, models.ApplicationStatusCompletedRated}: {
		actors:              []models.Actor{models.ActorSystem},
		requiresBothReviews: true,
	},
}

// TransitionEffect describes what applying a legal transition must do,
// beyond writing the status itself.
type TransitionEffect struct {
	Delta        CounterDelta
	SetCancelled bool
	ResetReviews bool
	CancelledBy  *models.CancelActor
}

// PlanTransition validates one attempted transition against the table and
// returns its effect. It is pure: the caller applies the effect and the
// status write transactionally.
func PlanTransition(app *models.Application, target models.ApplicationStatus, actor models.Actor) (*TransitionEffect, error) {
	rule, ok := transitionTable[transitionKey{app.Status, target}]
	if !ok {
		return nil, &TransitionError{Current: app.Status, Attempted: target}
	}

	allowed := false
	for _, a := range rule.actors {
		if a == actor {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrForbidden
	}

	if rule.requiresBothReviews {
		if app.WorkerReviewStatus != models.ReviewStatusCompleted ||
			app.FacilityReviewStatus != models.ReviewStatusCompleted {
			return nil, &TransitionError{Current: app.Status, Attempted: target}
		}
	}

	effect := &TransitionEffect{
		Delta:        rule.delta,
		SetCancelled: rule.setsCancelledBy,
		ResetReviews: rule.resetsReviews,
	}
	if rule.setsCancelledBy {
		switch actor {
		case models.ActorWorker:
			by := models.CancelActorWorker
			effect.CancelledBy = &by
		case models.ActorFacility:
			by := models.CancelActorFacility
			effect.CancelledBy = &by
		}
	}
	return effect, nil
}

// CanTransition reports whether the (from, to, actor) triple is in the table
// at all, ignoring review gating. Used by callers that only need legality.
func CanTransition(from, to models.ApplicationStatus, actor models.Actor) bool {
	rule, ok := transitionTable[transitionKey{from, to}]
	if !ok {
		return false
	}
	for _, a := range rule.actors {
		if a == actor {
			return true
		}
	}
	return false
}

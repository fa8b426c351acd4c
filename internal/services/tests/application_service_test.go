package services_test

import (
	"context"
	"testing"
	"time"

	mock_storage "care-shift-api/internal/mocks"
	"care-shift-api/internal/models"
	"care-shift-api/internal/services"
	"care-shift-api/internal/storage"
	"care-shift-api/internal/transport/dto"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appServiceMocks struct {
	jobs        *mock_storage.MockJobRepository
	workDates   *mock_storage.MockWorkDateRepository
	apps        *mock_storage.MockApplicationRepository
	eligibility *mock_storage.MockEligibilityService
	publisher   *mock_storage.MockPublisher
}

func setupAppServiceTest(t *testing.T) (context.Context, services.ApplicationService, appServiceMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	m := appServiceMocks{
		jobs:        mock_storage.NewMockJobRepository(ctrl),
		workDates:   mock_storage.NewMockWorkDateRepository(ctrl),
		apps:        mock_storage.NewMockApplicationRepository(ctrl),
		eligibility: mock_storage.NewMockEligibilityService(ctrl),
		publisher:   mock_storage.NewMockPublisher(ctrl),
	}
	repos := &storage.Repositories{Jobs: m.jobs, WorkDates: m.workDates, Applications: m.apps}

	mockTx := mock_storage.NewMockTxManager(ctrl)
	mockTx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, *storage.Repositories) error) error {
			return fn(ctx, repos)
		}).AnyTimes()

	svc := services.NewApplicationService(repos, mockTx, m.eligibility, m.publisher,
		services.WithApplicationClock(func() time.Time { return testNow }))
	return context.Background(), svc, m, ctrl
}

func openWorkDate(jobID uuid.UUID) *models.WorkDate {
	return &models.WorkDate{
		ID:               uuid.New(),
		JobID:            jobID,
		Date:             date(2026, time.September, 20),
		RecruitmentCount: 2,
		AppliedCount:     0,
		MatchedCount:     0,
	}
}

func normalJob(facilityID uuid.UUID) *models.Job {
	return &models.Job{
		ID:                  uuid.New(),
		FacilityID:          facilityID,
		JobType:             models.JobTypeNormal,
		StartTime:           "09:00",
		EndTime:             "17:00",
		BreakMinutes:        60,
		HourlyWage:          1500,
		RecruitmentCount:    2,
		RecruitmentStartDay: 0,
		RecruitmentEndDay:   0,
	}
}

func TestApplicationService_Apply_Success(t *testing.T) {
	ctx, svc, m, ctrl := setupAppServiceTest(t)
	defer ctrl.Finish()

	facilityID := uuid.New()
	workerID := uuid.New()
	job := normalJob(facilityID)
	wd := openWorkDate(job.ID)

	m.workDates.EXPECT().GetByID(ctx, wd.ID).Return(wd, nil)
	m.jobs.EXPECT().GetByID(ctx, job.ID).Return(job, nil)
	m.eligibility.EXPECT().IsBlocked(ctx, workerID, facilityID).Return(false, nil)
	m.apps.EXPECT().Create(ctx, &dto.CreateApplicationRequest{WorkDateID: wd.ID, WorkerID: workerID}).
		Return(&models.Application{
			ID:         uuid.New(),
			WorkDateID: wd.ID,
			WorkerID:   workerID,
			Status:     models.ApplicationStatusApplied,
		}, nil)
	m.workDates.EXPECT().ApplyCounterDelta(ctx, wd.ID, 1, 0).Return(nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	app, err := svc.Apply(ctx, &dto.ApplyRequest{WorkDateID: wd.ID, WorkerID: workerID})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApplied, app.Status)
	assert.Equal(t, workerID, app.WorkerID)
}

func TestApplicationService_Apply_BlockedWorker(t *testing.T) {
	ctx, svc, m, ctrl := setupAppServiceTest(t)
	defer ctrl.Finish()

	facilityID := uuid.New()
	workerID := uuid.New()
	job := normalJob(facilityID)
	wd := openWorkDate(job.ID)

	m.workDates.EXPECT().GetByID(ctx, wd.ID).Return(wd, nil)
	m.jobs.EXPECT().GetByID(ctx, job.ID).Return(job, nil)
	m.eligibility.EXPECT().IsBlocked(ctx, workerID, facilityID).Return(true, nil)

	_, err := svc.Apply(ctx, &dto.ApplyRequest{WorkDateID: wd.ID, WorkerID: workerID})
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestApplicationService_Apply_WindowClosed(t *testing.T) {
	ctx, svc, m, ctrl := setupAppServiceTest(t)
	defer ctrl.Finish()

	job := normalJob(uuid.New())
	// Recruitment closes five days before the date; 2026-09-03 closed on
	// 2026-08-29 relative to the pinned clock.
	job.RecruitmentEndDay = 5
	wd := openWorkDate(job.ID)
	wd.Date = date(2026, time.September, 3)

	m.workDates.EXPECT().GetByID(ctx, wd.ID).Return(wd, nil)
	m.jobs.EXPECT().GetByID(ctx, job.ID).Return(job, nil)

	_, err := svc.Apply(ctx, &dto.ApplyRequest{WorkDateID: wd.ID, WorkerID: uuid.New()})
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestApplicationService_Apply_PastDate(t *testing.T) {
	ctx, svc, m, ctrl := setupAppServiceTest(t)
	defer ctrl.Finish()

	job := normalJob(uuid.New())
	wd := openWorkDate(job.ID)
	wd.Date = date(2026, time.August, 20)

	m.workDates.EXPECT().GetByID(ctx, wd.ID).Return(wd, nil)
	m.jobs.EXPECT().GetByID(ctx, job.ID).Return(job, nil)

	_, err := svc.Apply(ctx, &dto.ApplyRequest{WorkDateID: wd.ID, WorkerID: uuid.New()})
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestApplicationService_Apply_FullyMatched(t *testing.T) {
	ctx, svc, m, ctrl := setupAppServiceTest(t)
	defer ctrl.Finish()

	job := normalJob(uuid.New())
	wd := openWorkDate(job.ID)
	wd.MatchedCount = wd.RecruitmentCount

	m.workDates.EXPECT().GetByID(ctx, wd.ID).Return(wd, nil)
	m.jobs.EXPECT().GetByID(ctx, job.ID).Return(job, nil)

	_, err := svc.Apply(ctx, &dto.ApplyRequest{WorkDateID: wd.ID, WorkerID: uuid.New()})
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestApplicationService_Apply_LimitedAudience(t *testing.T) {
	ctx, svc, m, ctrl := setupAppServiceTest(t)
	defer ctrl.Finish()

	facilityID := uuid.New()
	workerID := uuid.New()
	job := normalJob(facilityID)
	job.JobType = models.JobTypeLimitedWorked
	wd := openWorkDate(job.ID)

	m.workDates.EXPECT().GetByID(ctx, wd.ID).Return(wd, nil)
	m.jobs.EXPECT().GetByID(ctx, job.ID).Return(job, nil)
	m.eligibility.EXPECT().IsBlocked(ctx, workerID, facilityID).Return(false, nil)
	m.eligibility.EXPECT().IsEligibleForLimitedJob(ctx, workerID, models.JobTypeLimitedWorked).Return(false, nil)

	_, err := svc.Apply(ctx, &dto.ApplyRequest{WorkDateID: wd.ID, WorkerID: workerID})
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestApplicationService_Apply_OfferTargetOnly(t *testing.T) {
	ctx, svc, m, ctrl := setupAppServiceTest(t)
	defer ctrl.Finish()

	facilityID := uuid.New()
	workerID := uuid.New()
	target := uuid.New()
	job := normalJob(facilityID)
	job.JobType = models.JobTypeOffer
	job.TargetWorkerID = &target
	wd := openWorkDate(job.ID)

	m.workDates.EXPECT().GetByID(ctx, wd.ID).Return(wd, nil)
	m.jobs.EXPECT().GetByID(ctx, job.ID).Return(job, nil)
	m.eligibility.EXPECT().IsBlocked(ctx, workerID, facilityID).Return(false, nil)

	_, err := svc.Apply(ctx, &dto.ApplyRequest{WorkDateID: wd.ID, WorkerID: workerID})
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func scheduledTransitionFixture(t *testing.T, m appServiceMocks, ctx context.Context) (*models.Application, *models.WorkDate, *models.Job) {
	t.Helper()
	facilityID := uuid.New()
	job := normalJob(facilityID)
	wd := openWorkDate(job.ID)
	wd.AppliedCount = 1
	app := &models.Application{
		ID:         uuid.New(),
		WorkDateID: wd.ID,
		WorkerID:   uuid.New(),
		Status:     models.ApplicationStatusApplied,
	}
	m.apps.EXPECT().GetForUpdate(ctx, app.ID).Return(app, nil)
	m.workDates.EXPECT().GetByID(ctx, wd.ID).Return(wd, nil)
	m.jobs.EXPECT().GetByID(ctx, job.ID).Return(job, nil)
	return app, wd, job
}

func TestApplicationService_ExecuteTransition_Schedule(t *testing.T) {
	ctx, svc, m, ctrl := setupAppServiceTest(t)
	defer ctrl.Finish()

	app, wd, job := scheduledTransitionFixture(t, m, ctx)

	m.workDates.EXPECT().ApplyCounterDelta(ctx, wd.ID, 0, 1).Return(nil)
	m.apps.EXPECT().UpdateStatus(ctx, &dto.UpdateApplicationStatusRequest{
		ID:       app.ID,
		Expected: models.ApplicationStatusApplied,
		Target:   models.ApplicationStatusScheduled,
	}).DoAndReturn(func(_ context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
		updated := *app
		updated.Status = req.Target
		return &updated, nil
	})
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	result, err := svc.ExecuteTransition(ctx, &dto.TransitionRequest{
		ApplicationID: app.ID,
		Target:        models.ApplicationStatusScheduled,
		Actor:         models.ActorFacility,
		ActorID:       job.FacilityID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusScheduled, result.Status)
}

func TestApplicationService_ExecuteTransition_CapacityRace(t *testing.T) {
	ctx, svc, m, ctrl := setupAppServiceTest(t)
	defer ctrl.Finish()

	app, wd, job := scheduledTransitionFixture(t, m, ctx)

	// Another facility admin took the last seat between the plan and the
	// counter write.
	m.workDates.EXPECT().ApplyCounterDelta(ctx, wd.ID, 0, 1).Return(storage.ErrCapacityReached)

	_, err := svc.ExecuteTransition(ctx, &dto.TransitionRequest{
		ApplicationID: app.ID,
		Target:        models.ApplicationStatusScheduled,
		Actor:         models.ActorFacility,
		ActorID:       job.FacilityID,
	})
	require.Error(t, err)

	var te *services.TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, models.ApplicationStatusApplied, te.Current)
	assert.Equal(t, models.ApplicationStatusScheduled, te.Attempted)
}

func TestApplicationService_ExecuteTransition_StatusGuardMiss(t *testing.T) {
	ctx, svc, m, ctrl := setupAppServiceTest(t)
	defer ctrl.Finish()

	app, wd, job := scheduledTransitionFixture(t, m, ctx)

	m.workDates.EXPECT().ApplyCounterDelta(ctx, wd.ID, 0, 1).Return(nil)
	m.apps.EXPECT().UpdateStatus(ctx, gomock.Any()).Return(nil, storage.ErrConcurrentModification)

	_, err := svc.ExecuteTransition(ctx, &dto.TransitionRequest{
		ApplicationID: app.ID,
		Target:        models.ApplicationStatusScheduled,
		Actor:         models.ActorFacility,
		ActorID:       job.FacilityID,
	})
	assert.ErrorIs(t, err, services.ErrConcurrencyConflict)
}

func TestApplicationService_ExecuteTransition_WrongFacility(t *testing.T) {
	ctx, svc, m, ctrl := setupAppServiceTest(t)
	defer ctrl.Finish()

	app, _, _ := scheduledTransitionFixture(t, m, ctx)

	_, err := svc.ExecuteTransition(ctx, &dto.TransitionRequest{
		ApplicationID: app.ID,
		Target:        models.ApplicationStatusScheduled,
		Actor:         models.ActorFacility,
		ActorID:       uuid.New(),
	})
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestApplicationService_CompleteReview_OneSidePending(t *testing.T) {
	ctx, svc, m, ctrl := setupAppServiceTest(t)
	defer ctrl.Finish()

	appID := uuid.New()
	workerID := uuid.New()
	app := &models.Application{
		ID:                   appID,
		WorkerID:             workerID,
		Status:               models.ApplicationStatusCompletedPending,
		WorkerReviewStatus:   models.ReviewStatusPending,
		FacilityReviewStatus: models.ReviewStatusPending,
	}

	m.apps.EXPECT().GetByID(ctx, appID).Return(app, nil)
	m.apps.EXPECT().SetReviewStatus(ctx, appID, models.ActorWorker, models.ReviewStatusCompleted).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ models.Actor, _ models.ReviewStatus) (*models.Application, error) {
			updated := *app
			updated.WorkerReviewStatus = models.ReviewStatusCompleted
			return &updated, nil
		})

	result, err := svc.CompleteReview(ctx, &dto.CompleteReviewRequest{
		ApplicationID: appID,
		Side:          models.ActorWorker,
		ActorID:       workerID,
	})
	require.NoError(t, err)
	// One side done: the application stays in CompletedPending.
	assert.Equal(t, models.ApplicationStatusCompletedPending, result.Status)
	assert.Equal(t, models.ReviewStatusCompleted, result.WorkerReviewStatus)
	assert.Equal(t, models.ReviewStatusPending, result.FacilityReviewStatus)
}

func TestApplicationService_CompleteReview_BothSidesRates(t *testing.T) {
	ctx, svc, m, ctrl := setupAppServiceTest(t)
	defer ctrl.Finish()

	facilityID := uuid.New()
	job := normalJob(facilityID)
	wd := openWorkDate(job.ID)
	app := &models.Application{
		ID:                   uuid.New(),
		WorkDateID:           wd.ID,
		WorkerID:             uuid.New(),
		Status:               models.ApplicationStatusCompletedPending,
		WorkerReviewStatus:   models.ReviewStatusCompleted,
		FacilityReviewStatus: models.ReviewStatusPending,
	}

	m.apps.EXPECT().GetByID(ctx, app.ID).Return(app, nil)
	m.apps.EXPECT().SetReviewStatus(ctx, app.ID, models.ActorFacility, models.ReviewStatusCompleted).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ models.Actor, _ models.ReviewStatus) (*models.Application, error) {
			updated := *app
			updated.FacilityReviewStatus = models.ReviewStatusCompleted
			return &updated, nil
		})

	// Both reviews done; the rating transition runs as a system action.
	// Work date and job are fetched once to verify facility ownership and
	// again inside the transition transaction.
	m.apps.EXPECT().GetForUpdate(ctx, app.ID).
		DoAndReturn(func(_ context.Context, _ uuid.UUID) (*models.Application, error) {
			locked := *app
			locked.FacilityReviewStatus = models.ReviewStatusCompleted
			return &locked, nil
		})
	m.workDates.EXPECT().GetByID(ctx, wd.ID).Return(wd, nil).Times(2)
	m.jobs.EXPECT().GetByID(ctx, job.ID).Return(job, nil).Times(2)
	m.apps.EXPECT().UpdateStatus(ctx, &dto.UpdateApplicationStatusRequest{
		ID:       app.ID,
		Expected: models.ApplicationStatusCompletedPending,
		Target:   models.ApplicationStatusCompletedRated,
	}).DoAndReturn(func(_ context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
		updated := *app
		updated.FacilityReviewStatus = models.ReviewStatusCompleted
		updated.Status = req.Target
		return &updated, nil
	})
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	result, err := svc.CompleteReview(ctx, &dto.CompleteReviewRequest{
		ApplicationID: app.ID,
		Side:          models.ActorFacility,
		ActorID:       facilityID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusCompletedRated, result.Status)
}

func TestApplicationService_CompleteReview_WrongStatus(t *testing.T) {
	ctx, svc, m, ctrl := setupAppServiceTest(t)
	defer ctrl.Finish()

	appID := uuid.New()
	workerID := uuid.New()
	m.apps.EXPECT().GetByID(ctx, appID).Return(&models.Application{
		ID:       appID,
		WorkerID: workerID,
		Status:   models.ApplicationStatusWorking,
	}, nil)

	_, err := svc.CompleteReview(ctx, &dto.CompleteReviewRequest{
		ApplicationID: appID,
		Side:          models.ActorWorker,
		ActorID:       workerID,
	})
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestApplicationService_CompleteReview_ForbiddenForOtherWorker(t *testing.T) {
	ctx, svc, m, ctrl := setupAppServiceTest(t)
	defer ctrl.Finish()

	appID := uuid.New()
	m.apps.EXPECT().GetByID(ctx, appID).Return(&models.Application{
		ID:       appID,
		WorkerID: uuid.New(),
		Status:   models.ApplicationStatusCompletedPending,
	}, nil)

	_, err := svc.CompleteReview(ctx, &dto.CompleteReviewRequest{
		ApplicationID: appID,
		Side:          models.ActorWorker,
		ActorID:       uuid.New(),
	})
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestApplicationService_CompleteReview_ForbiddenForOtherFacility(t *testing.T) {
	ctx, svc, m, ctrl := setupAppServiceTest(t)
	defer ctrl.Finish()

	job := normalJob(uuid.New())
	wd := openWorkDate(job.ID)
	app := &models.Application{
		ID:         uuid.New(),
		WorkDateID: wd.ID,
		WorkerID:   uuid.New(),
		Status:     models.ApplicationStatusCompletedPending,
	}

	m.apps.EXPECT().GetByID(ctx, app.ID).Return(app, nil)
	m.workDates.EXPECT().GetByID(ctx, wd.ID).Return(wd, nil)
	m.jobs.EXPECT().GetByID(ctx, job.ID).Return(job, nil)

	// No SetReviewStatus call: a facility that does not own the job is
	// rejected before anything is recorded.
	_, err := svc.CompleteReview(ctx, &dto.CompleteReviewRequest{
		ApplicationID: app.ID,
		Side:          models.ActorFacility,
		ActorID:       uuid.New(),
	})
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestApplicationService_CompleteReview_ConcurrentRatingWins(t *testing.T) {
	ctx, svc, m, ctrl := setupAppServiceTest(t)
	defer ctrl.Finish()

	workerID := uuid.New()
	job := normalJob(uuid.New())
	wd := openWorkDate(job.ID)
	app := &models.Application{
		ID:                   uuid.New(),
		WorkDateID:           wd.ID,
		WorkerID:             workerID,
		Status:               models.ApplicationStatusCompletedPending,
		WorkerReviewStatus:   models.ReviewStatusPending,
		FacilityReviewStatus: models.ReviewStatusCompleted,
	}

	m.apps.EXPECT().GetByID(ctx, app.ID).Return(app, nil)
	m.apps.EXPECT().SetReviewStatus(ctx, app.ID, models.ActorWorker, models.ReviewStatusCompleted).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ models.Actor, _ models.ReviewStatus) (*models.Application, error) {
			updated := *app
			updated.WorkerReviewStatus = models.ReviewStatusCompleted
			return &updated, nil
		})

	// The facility's completion rated the application between our review
	// write and the rating transition. The locked row already shows
	// CompletedRated, so the transition fails, but the caller's review was
	// recorded and the terminal state is what they asked for.
	rated := *app
	rated.WorkerReviewStatus = models.ReviewStatusCompleted
	rated.Status = models.ApplicationStatusCompletedRated

	m.apps.EXPECT().GetForUpdate(ctx, app.ID).Return(&rated, nil)
	m.workDates.EXPECT().GetByID(ctx, wd.ID).Return(wd, nil)
	m.jobs.EXPECT().GetByID(ctx, job.ID).Return(job, nil)
	m.apps.EXPECT().GetByID(ctx, app.ID).Return(&rated, nil)

	result, err := svc.CompleteReview(ctx, &dto.CompleteReviewRequest{
		ApplicationID: app.ID,
		Side:          models.ActorWorker,
		ActorID:       workerID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusCompletedRated, result.Status)
}

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

// Helper to create a pointer to an int
func ptrInt(i int) *int { return &i }

const testMinWage = 1000

var testNow = at(2026, time.September, 1, 12, 0)

type jobServiceMocks struct {
	jobs        *mock_storage.MockJobRepository
	workDates   *mock_storage.MockWorkDateRepository
	apps        *mock_storage.MockApplicationRepository
	eligibility *mock_storage.MockEligibilityService
	publisher   *mock_storage.MockPublisher
}

func setupJobServiceTest(t *testing.T) (context.Context, services.JobService, jobServiceMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	m := jobServiceMocks{
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

	svc := services.NewJobService(repos, mockTx, m.eligibility, m.publisher, testMinWage,
		services.WithJobClock(func() time.Time { return testNow }))
	return context.Background(), svc, m, ctrl
}

func validCreateRequest(facilityID uuid.UUID) *dto.CreateJobRequest {
	return &dto.CreateJobRequest{
		JobType:             models.JobTypeNormal,
		StartTime:           "09:00",
		EndTime:             "17:00",
		BreakMinutes:        60,
		HourlyWage:          1500,
		TransportationFee:   0,
		RecruitmentCount:    2,
		RecruitmentStartDay: 0,
		RecruitmentEndDay:   0,
		Dates:               []string{"2026-09-20", "2026-09-21"},
		FacilityID:          facilityID,
	}
}

func TestJobService_CreateJob_Success(t *testing.T) {
	ctx, svc, m, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	facilityID := uuid.New()
	req := validCreateRequest(facilityID)

	jobID := uuid.New()
	m.jobs.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, job *models.Job) (*models.Job, error) {
			created := *job
			created.ID = jobID
			return &created, nil
		})
	m.workDates.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, wd *models.WorkDate) (*models.WorkDate, error) {
			created := *wd
			created.ID = uuid.New()
			return &created, nil
		}).Times(2)

	job, dates, err := svc.CreateJob(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, jobID, job.ID)
	assert.Equal(t, facilityID, job.FacilityID)
	require.Len(t, dates, 2)
	for _, wd := range dates {
		assert.Equal(t, jobID, wd.JobID)
		assert.Equal(t, req.RecruitmentCount, wd.RecruitmentCount)
	}
}

func TestJobService_CreateJob_CollectsAllViolations(t *testing.T) {
	ctx, svc, _, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	req := validCreateRequest(uuid.New())
	req.HourlyWage = 800               // under minimum
	req.BreakMinutes = 30              // 450 net minutes need 45
	req.Dates = []string{"2026-08-20"} // past
	req.TransportationFee = 100        // under the floor for this length

	_, _, err := svc.CreateJob(ctx, req)
	require.Error(t, err)

	var verrs services.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	fields := make(map[string]bool)
	for _, fe := range verrs {
		fields[fe.Field] = true
	}
	// Every violated rule is reported at once, not just the first.
	assert.True(t, fields["hourly_wage"])
	assert.True(t, fields["break_minutes"])
	assert.True(t, fields["dates"])
	assert.True(t, fields["transportation_fee"])
}

func TestJobService_CreateJob_OfferRules(t *testing.T) {
	ctx, svc, _, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	req := validCreateRequest(uuid.New())
	req.JobType = models.JobTypeOffer
	req.RequiresInterview = true
	req.RecruitmentCount = 2
	// TargetWorkerID left unset.

	_, _, err := svc.CreateJob(ctx, req)
	require.Error(t, err)

	var verrs services.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	fields := make(map[string]bool)
	for _, fe := range verrs {
		fields[fe.Field] = true
	}
	assert.True(t, fields["target_worker_id"])
	assert.True(t, fields["requires_interview"])
	assert.True(t, fields["recruitment_count"])
}

func TestJobService_CreateJob_LimitedNeedsAudience(t *testing.T) {
	ctx, svc, m, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	facilityID := uuid.New()
	req := validCreateRequest(facilityID)
	req.JobType = models.JobTypeLimitedWorked
	req.SwitchToNormalDaysBefore = ptrInt(7)

	m.eligibility.EXPECT().HasEligibleWorkers(ctx, facilityID, models.JobTypeLimitedWorked).Return(false, nil)

	_, _, err := svc.CreateJob(ctx, req)
	require.Error(t, err)

	var verrs services.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "job_type", verrs[0].Field)
}

func TestJobService_CreateJob_LimitedSwitchLeadTime(t *testing.T) {
	ctx, svc, _, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	req := validCreateRequest(uuid.New())
	req.JobType = models.JobTypeLimitedFavorite
	// 19 days away but a 19-day switch would be due on creation day.
	req.SwitchToNormalDaysBefore = ptrInt(19)

	_, _, err := svc.CreateJob(ctx, req)
	require.Error(t, err)

	var verrs services.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "switch_to_normal_days_before", verrs[0].Field)
}

func TestJobService_RemoveWorkDate_DowngradesWeeklyFrequency(t *testing.T) {
	ctx, svc, m, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	facilityID := uuid.New()
	jobID := uuid.New()
	workDateID := uuid.New()

	job := &models.Job{
		ID:              jobID,
		FacilityID:      facilityID,
		JobType:         models.JobTypeNormal,
		WeeklyFrequency: ptrInt(3),
	}

	m.jobs.EXPECT().GetByID(ctx, jobID).Return(job, nil)
	m.workDates.EXPECT().GetByID(ctx, workDateID).
		Return(&models.WorkDate{ID: workDateID, JobID: jobID}, nil)
	m.workDates.EXPECT().Delete(ctx, workDateID).Return(nil)
	m.workDates.EXPECT().CountActive(ctx, jobID, gomock.Any()).Return(2, nil)
	m.jobs.EXPECT().ClearWeeklyFrequency(ctx, jobID).Return(true, nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	err := svc.RemoveWorkDate(ctx, &dto.RemoveWorkDateRequest{
		JobID:      jobID,
		WorkDateID: workDateID,
		FacilityID: facilityID,
	})
	require.NoError(t, err)
}

func TestJobService_RemoveWorkDate_ForbiddenForOtherFacility(t *testing.T) {
	ctx, svc, m, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	jobID := uuid.New()
	m.jobs.EXPECT().GetByID(ctx, jobID).
		Return(&models.Job{ID: jobID, FacilityID: uuid.New()}, nil)

	err := svc.RemoveWorkDate(ctx, &dto.RemoveWorkDateRequest{
		JobID:      jobID,
		WorkDateID: uuid.New(),
		FacilityID: uuid.New(),
	})
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestJobService_SweepPromotions(t *testing.T) {
	ctx, svc, m, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	dueID := uuid.New()
	farID := uuid.New()
	jobs := []*models.Job{
		{ID: dueID, JobType: models.JobTypeLimitedWorked, SwitchToNormalDaysBefore: ptrInt(7)},
		{ID: farID, JobType: models.JobTypeLimitedFavorite, SwitchToNormalDaysBefore: ptrInt(7)},
	}
	nearDate := date(2026, time.September, 5)
	farDate := date(2026, time.September, 25)

	m.jobs.EXPECT().ListLimited(ctx).Return(jobs, nil)
	m.jobs.EXPECT().EarliestActiveDate(ctx, dueID, gomock.Any()).Return(&nearDate, nil)
	m.jobs.EXPECT().EarliestActiveDate(ctx, farID, gomock.Any()).Return(&farDate, nil)
	m.jobs.EXPECT().PromoteToNormal(ctx, dueID).Return(true, nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	promoted, err := svc.SweepPromotions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, promoted)
}

func TestJobService_SweepWeeklyFrequency(t *testing.T) {
	ctx, svc, m, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	brokenID := uuid.New()
	intactID := uuid.New()
	jobs := []*models.Job{
		{ID: brokenID, WeeklyFrequency: ptrInt(3)},
		{ID: intactID, WeeklyFrequency: ptrInt(2)},
	}

	m.jobs.EXPECT().ListWithWeeklyFrequency(ctx).Return(jobs, nil)
	m.workDates.EXPECT().CountActive(ctx, brokenID, gomock.Any()).Return(1, nil)
	m.workDates.EXPECT().CountActive(ctx, intactID, gomock.Any()).Return(4, nil)
	m.jobs.EXPECT().ClearWeeklyFrequency(ctx, brokenID).Return(true, nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	downgraded, err := svc.SweepWeeklyFrequency(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, downgraded)
}

func TestJobService_GetJob_ReadTimePromotion(t *testing.T) {
	ctx, svc, m, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	jobID := uuid.New()
	job := &models.Job{
		ID:                       jobID,
		JobType:                  models.JobTypeLimitedWorked,
		SwitchToNormalDaysBefore: ptrInt(7),
	}
	nearDate := date(2026, time.September, 5)

	m.jobs.EXPECT().GetByID(ctx, jobID).Return(job, nil)
	m.workDates.EXPECT().ListByJob(ctx, jobID).Return([]*models.WorkDate{}, nil)
	m.jobs.EXPECT().EarliestActiveDate(ctx, jobID, gomock.Any()).Return(&nearDate, nil)

	got, _, err := svc.GetJob(ctx, &dto.GetJobByIDRequest{ID: jobID})
	require.NoError(t, err)
	// Past the switch point: presented as Normal before the sweep runs.
	assert.Equal(t, models.JobTypeNormal, got.JobType)
}

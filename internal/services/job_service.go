package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"care-shift-api/internal/events"
	"care-shift-api/internal/metrics"
	"care-shift-api/internal/models"
	"care-shift-api/internal/storage"
	"care-shift-api/internal/transport/dto"
)

const dateLayout = "2006-01-02"

type jobService struct {
	repos       *storage.Repositories
	tx          storage.TxManager
	eligibility EligibilityService
	publisher   events.Publisher
	minWage     int
	now         func() time.Time
}

// JobServiceOption customizes a jobService; used by tests to pin the clock.
type JobServiceOption func(*jobService)

// WithJobClock overrides the service's time source.
func WithJobClock(now func() time.Time) JobServiceOption {
	return func(s *jobService) { s.now = now }
}

// NewJobService creates a new instance of JobService.
func NewJobService(repos *storage.Repositories, tx storage.TxManager, eligibility EligibilityService, publisher events.Publisher, minWage int, opts ...JobServiceOption) JobService {
	s := &jobService{
		repos:       repos,
		tx:          tx,
		eligibility: eligibility,
		publisher:   publisher,
		minWage:     minWage,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateJobDraft runs every authoring rule over the request and collects
// all violations at once. The request is treated as an immutable draft:
// validation reads it and never mutates it. minWage is the legal hourly
// minimum in yen.
func ValidateJobDraft(req *dto.CreateJobRequest, dates []time.Time, now time.Time, minWage int) ValidationErrors {
	var errs ValidationErrors
	add := func(field, rule, msg string) {
		errs = append(errs, FieldError{Field: field, Rule: rule, Message: msg})
	}

	minutes, err := WorkingMinutes(req.StartTime, req.EndTime, req.BreakMinutes)
	if err != nil {
		add("start_time", "shift_times", err.Error())
	} else {
		if fe := LegalBreakViolation(minutes, req.BreakMinutes); fe != nil {
			errs = append(errs, *fe)
		}
		if req.TransportationFee != 0 {
			if floor := MinimumTransportationFee(minutes); req.TransportationFee < floor {
				add("transportation_fee", "fee_floor",
					fmt.Sprintf("transportation fee must be 0 or at least %d yen for this shift length", floor))
			}
		}
	}

	if req.HourlyWage < minWage {
		add("hourly_wage", "minimum_wage",
			fmt.Sprintf("hourly wage must be at least %d yen", minWage))
	}

	if len(dates) == 0 {
		add("dates", "required", "at least one work date is required")
	}
	seen := make(map[string]bool, len(dates))
	var earliest *time.Time
	for _, d := range dates {
		key := d.Format(dateLayout)
		if seen[key] {
			add("dates", "duplicate", fmt.Sprintf("work date %s is listed twice", key))
		}
		seen[key] = true
		if DaysUntil(d, now) < 0 {
			add("dates", "past_date", fmt.Sprintf("work date %s is in the past", key))
		}
		if earliest == nil || d.Before(*earliest) {
			dd := d
			earliest = &dd
		}

		opensAt, oerr := RecruitmentOpensAt(d, req.RecruitmentStartDay, req.RecruitmentStartTime)
		if oerr != nil {
			add("recruitment_start_time", "clock_time", oerr.Error())
			continue
		}
		deadline, derr := RecruitmentDeadline(d, req.RecruitmentEndDay, req.RecruitmentEndTime)
		if derr != nil {
			add("recruitment_end_time", "clock_time", derr.Error())
			continue
		}
		if opensAt.After(deadline) {
			add("recruitment_end_day", "window_order",
				fmt.Sprintf("recruitment for %s would close before it opens", key))
		}
	}

	if req.WeeklyFrequency != nil {
		f := *req.WeeklyFrequency
		if f < 2 || f > 5 {
			add("weekly_frequency", "range", "weekly frequency must be between 2 and 5")
		} else if f > len(dates) {
			add("weekly_frequency", "date_count",
				fmt.Sprintf("weekly frequency of %d needs at least %d work dates", f, f))
		}
	}

	if req.JobType.IsLimited() {
		if req.SwitchToNormalDaysBefore == nil {
			add("switch_to_normal_days_before", "required",
				"limited jobs must set the switch-to-normal lead time")
		} else if earliest != nil {
			if fe := ValidateSwitchLeadTime(*earliest, *req.SwitchToNormalDaysBefore, now); fe != nil {
				errs = append(errs, *fe)
			}
		}
	} else if req.SwitchToNormalDaysBefore != nil {
		add("switch_to_normal_days_before", "job_type",
			"switch-to-normal lead time only applies to limited jobs")
	}

	if req.JobType == models.JobTypeOffer {
		if req.TargetWorkerID == nil {
			add("target_worker_id", "required", "offer jobs must name a target worker")
		}
		if req.RequiresInterview {
			add("requires_interview", "offer", "offer jobs never require an interview")
		}
		if req.RecruitmentCount != 1 {
			add("recruitment_count", "offer", "offer jobs have exactly one seat")
		}
	} else if req.TargetWorkerID != nil {
		add("target_worker_id", "job_type", "only offer jobs name a target worker")
	}

	return errs
}

func parseDates(raw []string) ([]time.Time, ValidationErrors) {
	var errs ValidationErrors
	dates := make([]time.Time, 0, len(raw))
	for _, s := range raw {
		d, err := time.ParseInLocation(dateLayout, s, time.Local)
		if err != nil {
			errs = append(errs, FieldError{Field: "dates", Rule: "format",
				Message: fmt.Sprintf("invalid work date %q, expected YYYY-MM-DD", s)})
			continue
		}
		dates = append(dates, d)
	}
	return dates, errs
}

// CreateJob validates the authoring request and persists the job with its
// work dates in one transaction.
func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, []*models.WorkDate, error) {
	now := s.now()

	dates, errs := parseDates(req.Dates)
	errs = append(errs, ValidateJobDraft(req, dates, now, s.minWage)...)
	if len(errs) > 0 {
		return nil, nil, errs
	}

	// Limited jobs need at least one worker in their audience.
	if req.JobType.IsLimited() {
		ok, err := s.eligibility.HasEligibleWorkers(ctx, req.FacilityID, req.JobType)
		if err != nil {
			log.Printf("CreateJob: Error checking limited audience for facility %s: %v", req.FacilityID, err)
			return nil, nil, fmt.Errorf("internal error checking limited audience: %w", err)
		}
		if !ok {
			return nil, nil, ValidationErrors{{
				Field:   "job_type",
				Rule:    "limited_audience",
				Message: "no eligible workers for this limited job type",
			}}
		}
	}

	requiresInterview := req.RequiresInterview
	recruitmentCount := req.RecruitmentCount
	if req.JobType == models.JobTypeOffer {
		// Enforced by validation; restated here so persisted offers are
		// consistent even if defaults change upstream.
		requiresInterview = false
		recruitmentCount = 1
	}

	var createdJob *models.Job
	var createdDates []*models.WorkDate
	err := s.tx.WithinTx(ctx, func(ctx context.Context, r *storage.Repositories) error {
		job, err := r.Jobs.Create(ctx, &models.Job{
			FacilityID:               req.FacilityID,
			JobType:                  req.JobType,
			StartTime:                req.StartTime,
			EndTime:                  req.EndTime,
			BreakMinutes:             req.BreakMinutes,
			HourlyWage:               req.HourlyWage,
			TransportationFee:        req.TransportationFee,
			RecruitmentCount:         recruitmentCount,
			RequiresInterview:        requiresInterview,
			WeeklyFrequency:          req.WeeklyFrequency,
			SwitchToNormalDaysBefore: req.SwitchToNormalDaysBefore,
			RecruitmentStartDay:      req.RecruitmentStartDay,
			RecruitmentStartTime:     req.RecruitmentStartTime,
			RecruitmentEndDay:        req.RecruitmentEndDay,
			RecruitmentEndTime:       req.RecruitmentEndTime,
			TargetWorkerID:           req.TargetWorkerID,
		})
		if err != nil {
			return MapRepoError(err, "creating job")
		}
		for _, d := range dates {
			wd, err := r.WorkDates.Create(ctx, &models.WorkDate{
				JobID:            job.ID,
				Date:             d,
				RecruitmentCount: recruitmentCount,
			})
			if err != nil {
				return MapRepoError(err, fmt.Sprintf("creating work date %s", d.Format(dateLayout)))
			}
			createdDates = append(createdDates, wd)
		}
		createdJob = job
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	log.Printf("Job %s created with %d work dates", createdJob.ID, len(createdDates))
	return createdJob, createdDates, nil
}

// GetJob returns the job with read-time promotion applied: a limited job
// past its switch point is presented as Normal even before the sweep has
// persisted the flip.
func (s *jobService) GetJob(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, []*models.WorkDate, error) {
	job, err := s.repos.Jobs.GetByID(ctx, req.ID)
	if err != nil {
		return nil, nil, MapRepoError(err, fmt.Sprintf("fetching job %s", req.ID))
	}
	dates, err := s.repos.WorkDates.ListByJob(ctx, job.ID)
	if err != nil {
		return nil, nil, MapRepoError(err, fmt.Sprintf("listing work dates for job %s", job.ID))
	}

	if job.JobType.IsLimited() {
		now := s.now()
		earliest, err := s.repos.Jobs.EarliestActiveDate(ctx, job.ID, startOfDay(now))
		if err != nil {
			return nil, nil, MapRepoError(err, fmt.Sprintf("resolving earliest date for job %s", job.ID))
		}
		job.JobType = EffectiveJobType(job, earliest, now)
	}
	return job, dates, nil
}

// AddWorkDates appends dates to an existing job, re-running the authoring
// rules that date changes can break.
func (s *jobService) AddWorkDates(ctx context.Context, req *dto.AddWorkDatesRequest) ([]*models.WorkDate, error) {
	now := s.now()

	dates, errs := parseDates(req.Dates)
	if len(errs) > 0 {
		return nil, errs
	}

	var created []*models.WorkDate
	err := s.tx.WithinTx(ctx, func(ctx context.Context, r *storage.Repositories) error {
		job, err := r.Jobs.GetByID(ctx, req.JobID)
		if err != nil {
			return MapRepoError(err, fmt.Sprintf("fetching job %s", req.JobID))
		}
		if job.FacilityID != req.FacilityID {
			log.Printf("AddWorkDates: Forbidden attempt by facility %s on job %s owned by %s", req.FacilityID, job.ID, job.FacilityID)
			return ErrForbidden
		}

		var verrs ValidationErrors
		earliest := dates[0]
		for _, d := range dates {
			if DaysUntil(d, now) < 0 {
				verrs = append(verrs, FieldError{Field: "dates", Rule: "past_date",
					Message: fmt.Sprintf("work date %s is in the past", d.Format(dateLayout))})
			}
			if d.Before(earliest) {
				earliest = d
			}
		}
		// An added date can pull the earliest date closer; the switch
		// setting must still leave the lead time intact.
		if job.JobType.IsLimited() && job.SwitchToNormalDaysBefore != nil {
			if existing, err := r.Jobs.EarliestActiveDate(ctx, job.ID, startOfDay(now)); err == nil && existing != nil && existing.Before(earliest) {
				earliest = *existing
			}
			if fe := ValidateSwitchLeadTime(earliest, *job.SwitchToNormalDaysBefore, now); fe != nil {
				verrs = append(verrs, *fe)
			}
		}
		if len(verrs) > 0 {
			return verrs
		}

		for _, d := range dates {
			wd, err := r.WorkDates.Create(ctx, &models.WorkDate{
				JobID:            job.ID,
				Date:             d,
				RecruitmentCount: job.RecruitmentCount,
			})
			if err != nil {
				return MapRepoError(err, fmt.Sprintf("creating work date %s", d.Format(dateLayout)))
			}
			created = append(created, wd)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RemoveWorkDate deletes one date. Removal is forbidden while applications
// count against the date; losing a date may break the weekly-frequency
// commitment, in which case the job is downgraded rather than left broken.
func (s *jobService) RemoveWorkDate(ctx context.Context, req *dto.RemoveWorkDateRequest) error {
	now := s.now()
	var downgraded bool
	var jobID = req.JobID

	err := s.tx.WithinTx(ctx, func(ctx context.Context, r *storage.Repositories) error {
		job, err := r.Jobs.GetByID(ctx, req.JobID)
		if err != nil {
			return MapRepoError(err, fmt.Sprintf("fetching job %s", req.JobID))
		}
		if job.FacilityID != req.FacilityID {
			log.Printf("RemoveWorkDate: Forbidden attempt by facility %s on job %s owned by %s", req.FacilityID, job.ID, job.FacilityID)
			return ErrForbidden
		}
		wd, err := r.WorkDates.GetByID(ctx, req.WorkDateID)
		if err != nil {
			return MapRepoError(err, fmt.Sprintf("fetching work date %s", req.WorkDateID))
		}
		if wd.JobID != job.ID {
			return fmt.Errorf("%w: work date %s does not belong to job %s", ErrNotFound, wd.ID, job.ID)
		}
		if err := r.WorkDates.Delete(ctx, wd.ID); err != nil {
			return MapRepoError(err, fmt.Sprintf("deleting work date %s", wd.ID))
		}

		if job.WeeklyFrequency != nil {
			active, err := r.WorkDates.CountActive(ctx, job.ID, startOfDay(now))
			if err != nil {
				return MapRepoError(err, fmt.Sprintf("counting active dates for job %s", job.ID))
			}
			if WeeklyFrequencyBroken(job, active) {
				if _, err := r.Jobs.ClearWeeklyFrequency(ctx, job.ID); err != nil {
					return MapRepoError(err, fmt.Sprintf("downgrading job %s", job.ID))
				}
				downgraded = true
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if downgraded {
		metrics.WeeklyDowngrades.Inc()
		s.publish(ctx, events.DomainEvent{
			EventType: events.TypeJobDowngraded,
			JobID:     jobID,
			Actor:     models.ActorFacility,
		})
	}
	return nil
}

// SweepPromotions promotes every limited job whose switch point has passed.
// Run on a schedule; idempotent because the promotion write is one-way.
func (s *jobService) SweepPromotions(ctx context.Context) (int, error) {
	now := s.now()
	jobs, err := s.repos.Jobs.ListLimited(ctx)
	if err != nil {
		return 0, MapRepoError(err, "listing limited jobs")
	}

	promoted := 0
	for _, job := range jobs {
		if job.SwitchToNormalDaysBefore == nil {
			continue
		}
		earliest, err := s.repos.Jobs.EarliestActiveDate(ctx, job.ID, startOfDay(now))
		if err != nil {
			log.Printf("SweepPromotions: Error resolving earliest date for job %s: %v", job.ID, err)
			continue
		}
		if earliest == nil || !MustBeNormalByNow(*earliest, *job.SwitchToNormalDaysBefore, now) {
			continue
		}
		flipped, err := s.repos.Jobs.PromoteToNormal(ctx, job.ID)
		if err != nil {
			log.Printf("SweepPromotions: Error promoting job %s: %v", job.ID, err)
			continue
		}
		if flipped {
			promoted++
			metrics.JobPromotions.Inc()
			s.publish(ctx, events.DomainEvent{
				EventType: events.TypeJobPromoted,
				JobID:     job.ID,
				Actor:     models.ActorSystem,
			})
		}
	}
	if promoted > 0 {
		log.Printf("Promotion sweep flipped %d limited jobs to normal", promoted)
	}
	return promoted, nil
}

// SweepWeeklyFrequency downgrades jobs whose active dates fell below their
// commitment through dates passing.
func (s *jobService) SweepWeeklyFrequency(ctx context.Context) (int, error) {
	now := s.now()
	jobs, err := s.repos.Jobs.ListWithWeeklyFrequency(ctx)
	if err != nil {
		return 0, MapRepoError(err, "listing weekly-frequency jobs")
	}

	downgraded := 0
	for _, job := range jobs {
		active, err := s.repos.WorkDates.CountActive(ctx, job.ID, startOfDay(now))
		if err != nil {
			log.Printf("SweepWeeklyFrequency: Error counting dates for job %s: %v", job.ID, err)
			continue
		}
		if !WeeklyFrequencyBroken(job, active) {
			continue
		}
		cleared, err := s.repos.Jobs.ClearWeeklyFrequency(ctx, job.ID)
		if err != nil {
			log.Printf("SweepWeeklyFrequency: Error downgrading job %s: %v", job.ID, err)
			continue
		}
		if cleared {
			downgraded++
			metrics.WeeklyDowngrades.Inc()
			s.publish(ctx, events.DomainEvent{
				EventType: events.TypeJobDowngraded,
				JobID:     job.ID,
				Actor:     models.ActorSystem,
			})
		}
	}
	return downgraded, nil
}

// publish sends a domain event; delivery failures are logged and never fail
// the operation that produced the event.
func (s *jobService) publish(ctx context.Context, event events.DomainEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("Error publishing event %s for job %s: %v", event.EventType, event.JobID, err)
	}
}

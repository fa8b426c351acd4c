package services

import (
	"fmt"
	"time"

	"care-shift-api/internal/models"
)

// Promotion rules for limited-visibility jobs. A job configured to "switch
// to normal N days before" must be generally visible once fewer than N+1
// days remain to its earliest work date. The persisted promotion is one-way:
// once a job is Normal it stays Normal regardless of later date edits.

// MustBeNormalByNow reports whether a limited job with the given switch
// setting is already due for normal visibility. With d days until the
// earliest work date, the switch is due once switchDaysBefore >= d.
func MustBeNormalByNow(earliestWorkDate time.Time, switchDaysBefore int, now time.Time) bool {
	return switchDaysBefore >= DaysUntil(earliestWorkDate, now)
}

// ValidateSwitchLeadTime enforces the authoring-time side of the same
// inequality: a saved job may never be created already due for promotion,
// so switchDaysBefore must be strictly less than the days remaining. The
// error names the minimum valid lead time. Applied both when the switch
// setting is edited and when work dates are added or removed.
func ValidateSwitchLeadTime(earliestWorkDate time.Time, switchDaysBefore int, now time.Time) *FieldError {
	d := DaysUntil(earliestWorkDate, now)
	if switchDaysBefore < d {
		return nil
	}
	return &FieldError{
		Field: "switch_to_normal_days_before",
		Rule:  "switch_lead_time",
		Message: fmt.Sprintf("switching to normal %d days before requires the earliest work date to be at least %d days away",
			switchDaysBefore, switchDaysBefore+1),
	}
}

// EffectiveJobType resolves how a job should be presented right now: a
// limited job past its switch point reads as Normal even before the sweep
// has persisted the promotion. earliest may be nil when the job has no
// active dates left.
func EffectiveJobType(job *models.Job, earliest *time.Time, now time.Time) models.JobType {
	if !job.JobType.IsLimited() || job.SwitchToNormalDaysBefore == nil || earliest == nil {
		return job.JobType
	}
	if MustBeNormalByNow(*earliest, *job.SwitchToNormalDaysBefore, now) {
		return models.JobTypeNormal
	}
	return job.JobType
}

// WeeklyFrequencyBroken reports whether a job's weekly-frequency commitment
// can no longer be met: the count of currently active work dates has fallen
// below the committed frequency. The repair is a one-way downgrade to a
// single-date job, never an error state.
func WeeklyFrequencyBroken(job *models.Job, activeDates int) bool {
	return job.WeeklyFrequency != nil && activeDates < *job.WeeklyFrequency
}

package services

import (
	"math"
	"time"

	"care-shift-api/internal/models"
)

// Recruitment window arithmetic. Offsets are measured in days relative to
// each work date: offset N means "N days before the work date". Offset 0 and
// the -1 sentinel both mean the window has no cutoff on that side and is
// bounded only by the work date itself.

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay is the last instant of t's calendar day.
func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// atClock places a parsed clock time on the given calendar day.
func atClock(day time.Time, c Clock) time.Time {
	return startOfDay(day).Add(time.Duration(c.TotalMinutes()) * time.Minute)
}

// RecruitmentDeadline computes the instant after which a work date no longer
// accepts applications. An open-ended offset yields the end of the work date
// itself. Otherwise the deadline falls endDay days before the work date, at
// endTime when provided, else at the start of that day.
func RecruitmentDeadline(workDate time.Time, endDay int, endTime *string) (time.Time, error) {
	if endDay == 0 || endDay == models.OpenEndedOffset {
		return endOfDay(workDate), nil
	}
	day := startOfDay(workDate).AddDate(0, 0, -endDay)
	if endTime == nil {
		return day, nil
	}
	c, err := ParseClock(*endTime)
	if err != nil {
		return time.Time{}, err
	}
	return atClock(day, c), nil
}

// RecruitmentOpensAt computes the instant at which a work date starts
// accepting applications; symmetric to RecruitmentDeadline. An open-ended
// offset means the window opens as soon as the job exists.
func RecruitmentOpensAt(workDate time.Time, startDay int, startTime *string) (time.Time, error) {
	if startDay == 0 || startDay == models.OpenEndedOffset {
		return time.Time{}, nil
	}
	day := startOfDay(workDate).AddDate(0, 0, -startDay)
	if startTime == nil {
		return day, nil
	}
	c, err := ParseClock(*startTime)
	if err != nil {
		return time.Time{}, err
	}
	return atClock(day, c), nil
}

// WindowOpen reports whether applications are currently accepted for a work
// date under the job's offsets.
func WindowOpen(job *models.Job, workDate time.Time, now time.Time) (bool, error) {
	opensAt, err := RecruitmentOpensAt(workDate, job.RecruitmentStartDay, job.RecruitmentStartTime)
	if err != nil {
		return false, err
	}
	deadline, err := RecruitmentDeadline(workDate, job.RecruitmentEndDay, job.RecruitmentEndTime)
	if err != nil {
		return false, err
	}
	if now.Before(opensAt) {
		return false, nil
	}
	return !now.After(deadline), nil
}

// DaysUntil counts whole calendar days from now to the work date:
// 0 for today, 1 for tomorrow, negative for past dates.
func DaysUntil(workDate, now time.Time) int {
	diff := startOfDay(workDate).Sub(startOfDay(now))
	return int(math.Ceil(diff.Hours() / 24))
}

package services_test

import (
	"testing"
	"time"

	"care-shift-api/internal/models"
	"care-shift-api/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestMustBeNormalByNow_Boundary(t *testing.T) {
	now := at(2026, time.September, 10, 12, 0)

	// Switch setting of 7: due once 7 or fewer days remain.
	earliest := date(2026, time.September, 17) // 7 days away
	assert.True(t, services.MustBeNormalByNow(earliest, 7, now))

	earliest = date(2026, time.September, 18) // 8 days away
	assert.False(t, services.MustBeNormalByNow(earliest, 7, now))
}

func TestValidateSwitchLeadTime(t *testing.T) {
	now := at(2026, time.September, 10, 12, 0)

	// 8 days away leaves room for a 7-day switch.
	assert.Nil(t, services.ValidateSwitchLeadTime(date(2026, time.September, 18), 7, now))

	// 7 days away would be due immediately; authoring must reject it.
	fe := services.ValidateSwitchLeadTime(date(2026, time.September, 17), 7, now)
	if assert.NotNil(t, fe) {
		assert.Equal(t, "switch_to_normal_days_before", fe.Field)
	}
}

func TestEffectiveJobType(t *testing.T) {
	now := at(2026, time.September, 10, 12, 0)
	switchDays := 7

	job := &models.Job{
		JobType:                  models.JobTypeLimitedWorked,
		SwitchToNormalDaysBefore: &switchDays,
	}

	near := date(2026, time.September, 15)
	far := date(2026, time.September, 25)

	assert.Equal(t, models.JobTypeNormal, services.EffectiveJobType(job, &near, now))
	assert.Equal(t, models.JobTypeLimitedWorked, services.EffectiveJobType(job, &far, now))

	// No active dates left: nothing to promote against.
	assert.Equal(t, models.JobTypeLimitedWorked, services.EffectiveJobType(job, nil, now))

	normal := &models.Job{JobType: models.JobTypeNormal}
	assert.Equal(t, models.JobTypeNormal, services.EffectiveJobType(normal, &near, now))
}

func TestWeeklyFrequencyBroken(t *testing.T) {
	three := 3
	job := &models.Job{WeeklyFrequency: &three}

	assert.False(t, services.WeeklyFrequencyBroken(job, 3))
	assert.False(t, services.WeeklyFrequencyBroken(job, 5))
	assert.True(t, services.WeeklyFrequencyBroken(job, 2))

	plain := &models.Job{}
	assert.False(t, services.WeeklyFrequencyBroken(plain, 0))
}

package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Shift length and wage arithmetic. All times are clock strings ("HH:MM");
// an hour of 24 or more means the clock has wrapped past midnight, so
// "26:00" is 02:00 on the next day. A plain end time earlier than the start
// time is treated as a same-day wrap as well.

const (
	minutesPerDay = 24 * 60

	// Legal break thresholds, measured against net working minutes
	// (gross minus break). See DESIGN.md for the gross-vs-net decision.
	longShiftMinutes = 480
	longShiftBreak   = 60
	midShiftMinutes  = 360
	midShiftBreak    = 45

	maxTransportationFee = 1000
)

// Clock is a parsed time of day. Hour may exceed 23 for next-day times.
type Clock struct {
	Hour   int
	Minute int
}

// TotalMinutes returns minutes since the start of the shift's base day.
func (c Clock) TotalMinutes() int {
	return c.Hour*60 + c.Minute
}

// NextDay reports whether the clock has wrapped past midnight.
func (c Clock) NextDay() bool {
	return c.Hour >= 24
}

// ParseClock parses "HH:MM". Hours 24-47 denote the next day.
func ParseClock(s string) (Clock, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return Clock{}, fmt.Errorf("%w: malformed clock time %q", ErrValidation, s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 47 {
		return Clock{}, fmt.Errorf("%w: invalid hour in clock time %q", ErrValidation, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("%w: invalid minute in clock time %q", ErrValidation, s)
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// WorkingMinutes computes net working time for one shift: gross minutes from
// start to end (adding a day when the shift crosses midnight) minus the
// break. A break longer than the gross shift is rejected rather than
// clamped, so the result is never negative.
func WorkingMinutes(startTime, endTime string, breakMinutes int) (int, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return 0, err
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return 0, err
	}
	if breakMinutes < 0 {
		return 0, fmt.Errorf("%w: break minutes must not be negative", ErrValidation)
	}

	gross := end.TotalMinutes() - start.TotalMinutes()
	if gross < 0 {
		// Same-day wrap without an explicit next-day marker.
		gross += minutesPerDay
	}
	if breakMinutes > gross {
		return 0, fmt.Errorf("%w: break (%d min) exceeds shift length (%d min)", ErrValidation, breakMinutes, gross)
	}
	return gross - breakMinutes, nil
}

// DailyWage computes the total pay for one work date, rounded to the yen.
func DailyWage(startTime, endTime string, breakMinutes, hourlyWage, transportationFee int) (int, error) {
	minutes, err := WorkingMinutes(startTime, endTime, breakMinutes)
	if err != nil {
		return 0, err
	}
	wage := int(math.Round(float64(minutes) / 60.0 * float64(hourlyWage)))
	return wage + transportationFee, nil
}

// MinimumTransportationFee returns the fee floor for a shift of the given
// net working minutes. The floor is a non-decreasing step function capped
// at maxTransportationFee.
func MinimumTransportationFee(workingMinutes int) int {
	switch {
	case workingMinutes <= 240:
		return 0
	case workingMinutes <= 480:
		return 500
	default:
		return maxTransportationFee
	}
}

// AdjustTransportationFee re-applies the floor after working minutes change.
// A fee of exactly zero means "no transportation fee" and always bypasses
// the floor.
func AdjustTransportationFee(fee, workingMinutes int) int {
	if fee == 0 {
		return 0
	}
	if floor := MinimumTransportationFee(workingMinutes); fee < floor {
		return floor
	}
	return fee
}

// LegalBreakViolation checks the mandated break thresholds against net
// working minutes: over 480 minutes requires at least a 60 minute break,
// over 360 at least 45. Returns nil when compliant.
func LegalBreakViolation(workingMinutes, breakMinutes int) *FieldError {
	switch {
	case workingMinutes > longShiftMinutes && breakMinutes < longShiftBreak:
		return &FieldError{
			Field:   "break_minutes",
			Rule:    "legal_break",
			Message: fmt.Sprintf("shifts over %d working minutes require a break of at least %d minutes", longShiftMinutes, longShiftBreak),
		}
	case workingMinutes > midShiftMinutes && breakMinutes < midShiftBreak:
		return &FieldError{
			Field:   "break_minutes",
			Rule:    "legal_break",
			Message: fmt.Sprintf("shifts over %d working minutes require a break of at least %d minutes", midShiftMinutes, midShiftBreak),
		}
	}
	return nil
}

// CheckLegalBreak is the error-returning form of LegalBreakViolation.
func CheckLegalBreak(workingMinutes, breakMinutes int) error {
	if fe := LegalBreakViolation(workingMinutes, breakMinutes); fe != nil {
		return ValidationErrors{*fe}
	}
	return nil
}

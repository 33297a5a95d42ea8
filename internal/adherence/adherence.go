// Package adherence holds the dose-schedule arithmetic for medications.
// All functions are pure: they operate on a medication's schedule and an
// already-fetched snapshot of its dose logs.
package adherence

import (
	"errors"
	"math"
	"time"

	"medtracker/internal/models"
)

var (
	// ErrInvalidDays is returned when a day count is zero or negative.
	ErrInvalidDays = errors.New("days must be positive")

	// ErrInvalidSchedule is returned when a medication's prescribed_per_day
	// cannot support dose-expectation math. A schedule of 0 doses/day is
	// invalid input, not a valid answer of zero.
	ErrInvalidSchedule = errors.New("medication has no valid dosing schedule")

	// ErrInvalidRange is returned when a date range ends before it starts.
	ErrInvalidRange = errors.New("start date must be before or equal to end date")
)

// Rate returns the overall adherence percentage for a set of dose logs:
// 100 * taken / total, rounded to 2 decimal places. With zero logs the
// rate is 0.0, never an error.
//
// The denominator here is the log count. RateOverPeriod deliberately uses
// a different denominator (the schedule); the two are not interchangeable.
func Rate(logs []*models.DoseLog) float64 {
	taken := 0
	for _, l := range logs {
		if l.WasTaken {
			taken++
		}
	}

	return RateFromCounts(taken, len(logs))
}

// RateFromCounts is Rate for callers that already have the counts,
// typically from a SQL aggregate instead of fetched rows.
func RateFromCounts(taken, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return round2(100 * float64(taken) / float64(total))
}

// RateOverPeriod returns the adherence percentage over the inclusive date
// range [start, end], measured against the schedule: the expected dose
// count is (days in range) * prescribedPerDay, and the actual count is
// the number of taken logs whose taken_at date falls inside the range.
func RateOverPeriod(prescribedPerDay int, logs []*models.DoseLog, start, end time.Time) (float64, error) {
	if start.After(end) {
		return 0, ErrInvalidRange
	}
	if prescribedPerDay <= 0 {
		return 0, ErrInvalidSchedule
	}

	days := DaysInRange(start, end)
	expected := days * prescribedPerDay

	taken := 0
	for _, l := range logs {
		if !l.WasTaken {
			continue
		}
		d := dateOf(l.TakenAt)
		if !d.Before(dateOf(start)) && !d.After(dateOf(end)) {
			taken++
		}
	}

	return round2(100 * float64(taken) / float64(expected)), nil
}

// ExpectedDoses returns days * prescribedPerDay.
func ExpectedDoses(prescribedPerDay, days int) (int, error) {
	if days <= 0 {
		return 0, ErrInvalidDays
	}
	if prescribedPerDay <= 0 {
		return 0, ErrInvalidSchedule
	}
	return days * prescribedPerDay, nil
}

// DaysInRange counts calendar days in [start, end], both ends inclusive.
func DaysInRange(start, end time.Time) int {
	return int(dateOf(end).Sub(dateOf(start)).Hours()/24) + 1
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

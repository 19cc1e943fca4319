// Package schedule computes the due dates of recurring transactions.
package schedule

import (
	"time"

	"github.com/jinzhu/now"
)

// DefaultInstallments is the number of occurrences materialized for
// recurrences without a total installment count.
const DefaultInstallments = 12

// MaxInstallments is the largest number of occurrences a recurrence may have.
const MaxInstallments = 1000

// Interval is the distance between two occurrences, e.g. 2 weeks.
type Interval struct {
	Value int
	Unit  string
}

// Generate returns count due dates starting at start, each one interval
// after the previous one.
//
// Every date is computed from start, not from its predecessor. Month and
// year steps clamp to the last day of the target month, so a schedule
// starting on January 31st continues on February 28th and March 31st.
func Generate(start time.Time, interval Interval, count int) []time.Time {
	if count <= 0 {
		return []time.Time{}
	}

	unit, _ := ParseUnit(interval.Unit)

	// A non-positive step would not advance
	step := interval.Value
	if step < 1 {
		step = 1
	}

	dates := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		dates = append(dates, advance(start, unit, step*i))
	}

	return dates
}

// advance moves t forward by n units.
func advance(t time.Time, unit Unit, n int) time.Time {
	switch unit {
	case Day:
		return t.AddDate(0, 0, n)
	case Week:
		return t.AddDate(0, 0, 7*n)
	case Year:
		return addMonths(t, 12*n)
	default:
		return addMonths(t, n)
	}
}

// addMonths adds n months to t. If the day of t does not exist in the
// target month, the last day of the target month is used.
func addMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())

	day := t.Day()
	if last := now.With(first).EndOfMonth().Day(); day > last {
		day = last
	}

	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

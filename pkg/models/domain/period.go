package domain

import "time"

type PeriodKind string

const (
	PeriodDay        PeriodKind = "day"
	PeriodWeek       PeriodKind = "week"
	PeriodMonth      PeriodKind = "month"
	PeriodYearToDate PeriodKind = "ytd"
	PeriodAll        PeriodKind = "all"
	PeriodCustom     PeriodKind = "custom"
)

// DateRange is an explicit from/to pair for custom periods. To is never
// before From; a single-day range has From == To.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Period is the window selector driving both stat comparison and chart
// intervals. A custom period always carries its range: construct one with
// CustomPeriod so a rangeless custom selector cannot be represented.
type Period struct {
	Kind  PeriodKind
	Range DateRange
}

func DayPeriod() Period        { return Period{Kind: PeriodDay} }
func WeekPeriod() Period       { return Period{Kind: PeriodWeek} }
func MonthPeriod() Period      { return Period{Kind: PeriodMonth} }
func YearToDatePeriod() Period { return Period{Kind: PeriodYearToDate} }
func AllPeriod() Period        { return Period{Kind: PeriodAll} }

// CustomPeriod builds a custom selector. A zero to collapses to a single-day
// range ending on from.
func CustomPeriod(from time.Time, to time.Time) Period {
	if to.IsZero() || to.Before(from) {
		to = from
	}
	return Period{Kind: PeriodCustom, Range: DateRange{From: from, To: to}}
}

// Interval is an inclusive [Start, End] timestamp pair.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the interval, boundaries included.
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && !t.After(i.End)
}

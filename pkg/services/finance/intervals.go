package finance

import (
	"time"

	"github.com/finboard/finboard/pkg/models/domain"
)

// StatsIntervals resolves the comparison-window pair for a period selection.
// Either interval may be nil: All filters nothing and has no previous window.
// The previous window ends just before the current one starts, so a record
// on the shared boundary counts toward the current window only.
func StatsIntervals(p domain.Period, now time.Time) (current, previous *domain.Interval) {
	switch p.Kind {
	case domain.PeriodDay:
		current = &domain.Interval{Start: startOfDay(now), End: endOfDay(now)}
		previous = &domain.Interval{
			Start: current.Start.AddDate(0, 0, -1),
			End:   current.Start.Add(-time.Nanosecond),
		}
	case domain.PeriodWeek:
		current = &domain.Interval{Start: startOfDay(now).AddDate(0, 0, -7), End: endOfDay(now)}
		previous = &domain.Interval{
			Start: current.Start.AddDate(0, 0, -7),
			End:   current.Start.Add(-time.Nanosecond),
		}
	case domain.PeriodMonth:
		current = &domain.Interval{Start: subMonths(startOfDay(now), 1), End: endOfDay(now)}
		previous = &domain.Interval{
			Start: subMonths(startOfDay(now), 2),
			End:   current.Start.Add(-time.Nanosecond),
		}
	case domain.PeriodYearToDate:
		current = &domain.Interval{Start: startOfYear(now), End: endOfDay(now)}
		previous = &domain.Interval{
			Start: startOfYear(subMonths(now, 12)),
			End:   subMonths(endOfDay(now), 12),
		}
	case domain.PeriodCustom:
		from, to := p.Range.From, p.Range.To
		current = &domain.Interval{Start: startOfDay(from), End: endOfDay(to)}
		duration := daysBetween(startOfDay(from), startOfDay(to))
		prevEnd := startOfDay(from).AddDate(0, 0, -1)
		previous = &domain.Interval{Start: prevEnd.AddDate(0, 0, -duration), End: prevEnd}
	}
	return current, previous
}

// ChartInterval resolves the display window for the chart series. It is
// deliberately wider than the comparison window: reusing the stats interval
// would leave single-day or single-week selections with visually empty charts.
func ChartInterval(p domain.Period, now time.Time) *domain.Interval {
	switch p.Kind {
	case domain.PeriodDay:
		return &domain.Interval{Start: startOfWeek(now), End: endOfWeek(now)}
	case domain.PeriodWeek:
		return &domain.Interval{Start: now.AddDate(0, 0, -30), End: endOfDay(now)}
	case domain.PeriodMonth:
		return &domain.Interval{Start: now.AddDate(0, 0, -90), End: endOfDay(now)}
	case domain.PeriodYearToDate:
		return &domain.Interval{Start: startOfYear(now), End: endOfDay(now)}
	case domain.PeriodCustom:
		return &domain.Interval{Start: startOfDay(p.Range.From), End: endOfDay(p.Range.To)}
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func startOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// Weeks are Sunday-based.
func startOfWeek(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

func endOfWeek(t time.Time) time.Time {
	return endOfDay(startOfWeek(t).AddDate(0, 0, 6))
}

// subMonths shifts t back by whole calendar months, clamping to the last day
// of the target month when the day-of-month would overflow. AddDate would
// normalize instead (Mar 31 - 1mo = Mar 3), which shifts month-end windows
// off by days; clamping keeps Mar 31 - 1mo = Feb 29.
func subMonths(t time.Time, months int) time.Time {
	target := time.Date(t.Year(), t.Month()-time.Month(months), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())

	day := t.Day()
	if last := daysInMonth(target); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(t time.Time) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// daysBetween counts full calendar days from a to b. Both arguments are
// expected to be day boundaries already.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	au := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bu := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}

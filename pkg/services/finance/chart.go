package finance

import (
	"sort"
	"time"

	"github.com/finboard/finboard/pkg/models/domain"
)

// Chart points stay at native record granularity until the filtered set grows
// past this size, after which monthly rollup keeps the chart readable.
const monthlyRollupThreshold = 30

// ChartSeriesForPeriod produces the granularity-adjusted series for the
// display window of a period selection, sorted ascending by period so charts
// read left-to-right chronologically.
func ChartSeriesForPeriod(records []domain.FinancialRecord, p domain.Period, now time.Time) []domain.FinancialRecord {
	interval := ChartInterval(p, now)

	filtered := records
	if interval != nil {
		filtered = filterByInterval(records, interval)
	}

	switch p.Kind {
	case domain.PeriodDay, domain.PeriodWeek:
		// Both daily and weekly selections chart at per-day granularity.
		return rollup(filtered, startOfDay)
	case domain.PeriodMonth, domain.PeriodYearToDate, domain.PeriodAll:
		if len(filtered) > monthlyRollupThreshold {
			return rollup(filtered, startOfMonth)
		}
	}

	return sortAscending(filtered)
}

// rollup groups records by the calendar date of their bucket start,
// aggregates each group, and emits one record per bucket. Keying on the
// formatted date rather than the time.Time keeps records in different
// locations from splitting the same calendar bucket.
func rollup(records []domain.FinancialRecord, bucket func(time.Time) time.Time) []domain.FinancialRecord {
	groups := make(map[string][]domain.FinancialRecord)
	starts := make(map[string]time.Time)
	for _, rec := range records {
		start := bucket(rec.Period)
		key := start.Format("2006-01-02")
		if _, ok := starts[key]; !ok {
			starts[key] = start
		}
		groups[key] = append(groups[key], rec)
	}

	rolled := make([]domain.FinancialRecord, 0, len(groups))
	for key, group := range groups {
		totals := Aggregate(group)
		rolled = append(rolled, domain.FinancialRecord{
			Period:      starts[key],
			Revenue:     totals.Revenue,
			GrossProfit: totals.GrossProfit,
			NetIncome:   totals.NetIncome,
			Expenses:    totals.Expenses,
			EBITDA:      totals.EBITDA,
			CashFlow:    totals.CashFlow,
			CustomerLTV: totals.CustomerLTV,
			CustomerCAC: totals.CustomerCAC,
		})
	}

	return sortAscending(rolled)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func sortAscending(records []domain.FinancialRecord) []domain.FinancialRecord {
	sorted := make([]domain.FinancialRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Period.Before(sorted[j].Period)
	})
	return sorted
}

package finance

import (
	"math"
	"time"

	"github.com/finboard/finboard/pkg/models/domain"
)

// StatsForPeriod computes the seven comparative summary statistics for the
// selected period against the immediately preceding equivalent window.
// It never fails: absence of data is signaled through the "N/A"/blank
// sentinel so a render path can always display the result.
func StatsForPeriod(records []domain.FinancialRecord, p domain.Period, now time.Time) domain.FinancialStats {
	currentInterval, previousInterval := StatsIntervals(p, now)

	currentSet := records
	if currentInterval != nil {
		currentSet = filterByInterval(records, currentInterval)
	}
	previousSet := filterByInterval(records, previousInterval)

	current := Aggregate(currentSet)
	previous := Aggregate(previousSet)

	if current.Count == 0 {
		return noDataStats()
	}

	change := func(cur, prev float64) float64 {
		if previous.Count == 0 {
			return 0
		}
		if prev == 0 {
			if cur == 0 {
				return 0
			}
			return math.Inf(1)
		}
		return (cur - prev) / math.Abs(prev)
	}

	currentGrossMargin := ratio(current.GrossProfit, current.Revenue)
	previousGrossMargin := ratio(previous.GrossProfit, previous.Revenue)
	currentNetMargin := ratio(current.NetIncome, current.Revenue)
	previousNetMargin := ratio(previous.NetIncome, previous.Revenue)

	return domain.FinancialStats{
		Revenue: domain.StatValue{
			Value:  formatCurrency(current.Revenue),
			Change: formatChange(change(current.Revenue, previous.Revenue), false),
		},
		GrossMargin: domain.StatValue{
			Value:  formatPercent(currentGrossMargin),
			Change: formatChange(currentGrossMargin-previousGrossMargin, true),
		},
		NetMargin: domain.StatValue{
			Value:  formatPercent(currentNetMargin),
			Change: formatChange(currentNetMargin-previousNetMargin, true),
		},
		EBITDA: domain.StatValue{
			Value:  formatCurrency(current.EBITDA),
			Change: formatChange(change(current.EBITDA, previous.EBITDA), false),
		},
		CashFlow: domain.StatValue{
			Value:  formatCurrency(current.CashFlow),
			Change: formatChange(change(current.CashFlow, previous.CashFlow), false),
		},
		CustomerLTV: domain.StatValue{
			Value:  formatCurrency(current.CustomerLTV),
			Change: formatChange(change(current.CustomerLTV, previous.CustomerLTV), false),
		},
		CustomerCAC: domain.StatValue{
			Value:  formatCurrency(current.CustomerCAC),
			Change: formatChange(change(current.CustomerCAC, previous.CustomerCAC), false),
		},
	}
}

func ratio(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole
}

func noDataStats() domain.FinancialStats {
	noData := domain.StatValue{Value: "N/A", Change: " "}
	return domain.FinancialStats{
		Revenue:     noData,
		GrossMargin: noData,
		NetMargin:   noData,
		EBITDA:      noData,
		CashFlow:    noData,
		CustomerLTV: noData,
		CustomerCAC: noData,
	}
}

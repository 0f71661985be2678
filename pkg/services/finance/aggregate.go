package finance

import "github.com/finboard/finboard/pkg/models/domain"

// Aggregate folds a record subset into totals. Additive fields are summed;
// CustomerLTV and CustomerCAC are averaged over the subset. An empty subset
// yields all-zero totals with Count 0.
func Aggregate(records []domain.FinancialRecord) domain.AggregatedTotals {
	if len(records) == 0 {
		return domain.AggregatedTotals{}
	}

	var totals domain.AggregatedTotals
	for _, rec := range records {
		totals.Revenue += rec.Revenue
		totals.GrossProfit += rec.GrossProfit
		totals.NetIncome += rec.NetIncome
		totals.Expenses += rec.Expenses
		totals.EBITDA += rec.EBITDA
		totals.CashFlow += rec.CashFlow
		totals.CustomerLTV += rec.CustomerLTV
		totals.CustomerCAC += rec.CustomerCAC
	}

	totals.Count = len(records)
	totals.CustomerLTV /= float64(totals.Count)
	totals.CustomerCAC /= float64(totals.Count)

	return totals
}

func filterByInterval(records []domain.FinancialRecord, interval *domain.Interval) []domain.FinancialRecord {
	if interval == nil {
		return nil
	}
	var filtered []domain.FinancialRecord
	for _, rec := range records {
		if interval.Contains(rec.Period) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

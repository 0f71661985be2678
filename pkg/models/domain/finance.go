package domain

import "time"

// FinancialRecord is one observation for a point in time. Records are
// immutable once created; corrections are expressed as new records.
type FinancialRecord struct {
	ID          string
	Period      time.Time
	Revenue     float64
	GrossProfit float64
	NetIncome   float64
	Expenses    float64
	EBITDA      float64
	CashFlow    float64
	CustomerLTV float64
	CustomerCAC float64
}

// AggregatedTotals is derived from a record subset: additive fields are sums,
// CustomerLTV/CustomerCAC are arithmetic means over Count. These two are
// per-customer period-level figures, so summing them would double-count.
type AggregatedTotals struct {
	Revenue     float64
	GrossProfit float64
	NetIncome   float64
	Expenses    float64
	EBITDA      float64
	CashFlow    float64
	CustomerLTV float64
	CustomerCAC float64
	Count       int
}

// StatValue is a display-ready metric: a formatted value plus a formatted
// change relative to the immediately preceding equivalent period.
type StatValue struct {
	Value  string
	Change string
}

// FinancialStats is the fixed seven-metric summary for one period selection.
type FinancialStats struct {
	Revenue     StatValue
	GrossMargin StatValue
	NetMargin   StatValue
	EBITDA      StatValue
	CashFlow    StatValue
	CustomerLTV StatValue
	CustomerCAC StatValue
}

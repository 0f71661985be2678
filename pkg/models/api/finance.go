package api

import "time"

type Company struct {
	Name string `json:"name"`
}

type FinancialRecord struct {
	ID          string    `json:"id,omitempty"`
	Period      time.Time `json:"period"`
	Revenue     float64   `json:"revenue"`
	GrossProfit float64   `json:"gross_profit"`
	NetIncome   float64   `json:"net_income"`
	Expenses    float64   `json:"expenses"`
	EBITDA      float64   `json:"ebitda"`
	CashFlow    float64   `json:"cash_flow"`
	CustomerLTV float64   `json:"customer_ltv"`
	CustomerCAC float64   `json:"customer_cac"`
}

type StatValue struct {
	Value  string `json:"value"`
	Change string `json:"change"`
}

type FinancialStats struct {
	Revenue     StatValue `json:"revenue"`
	GrossMargin StatValue `json:"gross_margin"`
	NetMargin   StatValue `json:"net_margin"`
	EBITDA      StatValue `json:"ebitda"`
	CashFlow    StatValue `json:"cash_flow"`
	CustomerLTV StatValue `json:"customer_ltv"`
	CustomerCAC StatValue `json:"customer_cac"`
}

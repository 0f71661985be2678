// Package seed generates synthetic per-company financial series: three
// historical years at monthly granularity, then 90 trailing days and 48
// trailing hours of finer-grained records. The random source is injected so
// fixtures stay reproducible.
package seed

import (
	"math"
	"math/rand"
	"time"

	"github.com/finboard/finboard/pkg/models/domain"
	"github.com/finboard/finboard/pkg/store/memory"
)

type Generator struct {
	rng *rand.Rand
	now time.Time
}

func NewGenerator(seed int64, now time.Time) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed)), now: now}
}

// CompanyRecords produces one company's full series, scaled by factor.
func (g *Generator) CompanyRecords(factor float64) []domain.FinancialRecord {
	year := g.now.Year()

	var records []domain.FinancialRecord
	records = append(records, g.yearRecords(year-2, 0, 400_000, 0.10, factor)...)
	records = append(records, g.yearRecords(year-1, 1, 450_000, 0.12, factor)...)
	records = append(records, g.yearRecords(year, 2, 550_000, 0.15, factor)...)
	records = append(records, g.recentRecords(factor)...)
	return records
}

// Populate registers a company and fills its store.
func (g *Generator) Populate(registry *memory.Registry, company string, factor float64) {
	store := registry.Ensure(company)
	for _, rec := range g.CompanyRecords(factor) {
		store.Append(rec)
	}
}

// yearRecords emits one record per month on the 28th, with revenue growing
// through the year and margins jittered around fixed baselines.
func (g *Generator) yearRecords(year, yearIndex int, baseRevenue, growth, factor float64) []domain.FinancialRecord {
	records := make([]domain.FinancialRecord, 0, 12)
	for month := 0; month < 12; month++ {
		revenue := baseRevenue * (1 + growth*float64(month)/12) * (1 + (g.rng.Float64()-0.5)*0.1) * factor
		expenses := revenue * (0.75 - g.rng.Float64()*0.1)
		netIncome := revenue - expenses
		grossProfit := revenue * (0.45 + (g.rng.Float64()-0.5)*0.1)

		records = append(records, domain.FinancialRecord{
			Period:      time.Date(year, time.Month(month+1), 28, 0, 0, 0, 0, g.now.Location()),
			Revenue:     math.Round(revenue),
			Expenses:    math.Round(expenses),
			NetIncome:   math.Round(netIncome),
			GrossProfit: math.Round(grossProfit),
			EBITDA:      math.Round(netIncome * 1.3),
			CashFlow:    math.Round(netIncome * 1.15),
			CustomerLTV: (42_000 + float64(yearIndex)*500) * factor,
			CustomerCAC: (3_000 - float64(yearIndex)*50) * factor,
		})
	}
	return records
}

// recentRecords emits 48 hourly records followed by daily records back to 90
// days ago, at roughly the same monthly run rate as the historical years.
func (g *Generator) recentRecords(factor float64) []domain.FinancialRecord {
	var records []domain.FinancialRecord

	for i := 0; i < 48; i++ {
		period := g.now.Add(-time.Duration(i) * time.Hour)
		revenue := (680_000.0/30/24 + g.rng.Float64()*5_000) * factor
		expenses := (515_000.0/30/24 + g.rng.Float64()*3_000) * factor
		records = append(records, g.recentRecord(period, revenue, expenses, factor))
	}

	for i := 2; i < 90; i++ {
		period := g.now.AddDate(0, 0, -i)
		revenue := (680_000.0/30 + g.rng.Float64()*20_000 - 10_000) * factor
		expenses := (515_000.0/30 + g.rng.Float64()*15_000 - 7_500) * factor
		records = append(records, g.recentRecord(period, revenue, expenses, factor))
	}

	return records
}

func (g *Generator) recentRecord(period time.Time, revenue, expenses, factor float64) domain.FinancialRecord {
	netIncome := revenue - expenses
	grossProfit := revenue * (0.65 + (g.rng.Float64()-0.5)*0.1)

	return domain.FinancialRecord{
		Period:      period,
		Revenue:     math.Round(revenue),
		Expenses:    math.Round(expenses),
		NetIncome:   math.Round(netIncome),
		GrossProfit: math.Round(grossProfit),
		EBITDA:      math.Round(netIncome * 1.2),
		CashFlow:    math.Round(netIncome * 1.1),
		CustomerLTV: (45_300 + g.rng.Float64()*500) * factor,
		CustomerCAC: (2_870 + g.rng.Float64()*100) * factor,
	}
}

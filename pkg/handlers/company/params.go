package company

import (
	"fmt"
	"net/http"
	"time"

	"github.com/finboard/finboard/pkg/models/api"
	"github.com/finboard/finboard/pkg/models/domain"
)

// parsePeriodParams reads period/from/to query params. Missing period falls
// back to month. A custom selection with no from means no range was picked
// yet: it degrades to unfiltered all-data behavior instead of erroring, so a
// half-filled date picker never breaks the page.
func parsePeriodParams(r *http.Request) (domain.Period, error) {
	from, err := parseDateParam(r, "from")
	if err != nil {
		return domain.Period{}, err
	}
	to, err := parseDateParam(r, "to")
	if err != nil {
		return domain.Period{}, err
	}

	switch r.URL.Query().Get("period") {
	case "day":
		return domain.DayPeriod(), nil
	case "week":
		return domain.WeekPeriod(), nil
	case "month", "":
		return domain.MonthPeriod(), nil
	case "ytd":
		return domain.YearToDatePeriod(), nil
	case "all":
		return domain.AllPeriod(), nil
	case "custom":
		if from.IsZero() {
			return domain.AllPeriod(), nil
		}
		return domain.CustomPeriod(from, to), nil
	default:
		return domain.Period{}, fmt.Errorf(
			"invalid 'period' value. Expected one of: day, week, month, ytd, all, custom")
	}
}

func parseDateParam(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid '%s' date format. Expected format: YYYY-MM-DD", name)
	}
	return parsed, nil
}

func toDomainRecord(rec api.FinancialRecord) domain.FinancialRecord {
	return domain.FinancialRecord{
		ID:          rec.ID,
		Period:      rec.Period,
		Revenue:     rec.Revenue,
		GrossProfit: rec.GrossProfit,
		NetIncome:   rec.NetIncome,
		Expenses:    rec.Expenses,
		EBITDA:      rec.EBITDA,
		CashFlow:    rec.CashFlow,
		CustomerLTV: rec.CustomerLTV,
		CustomerCAC: rec.CustomerCAC,
	}
}

func toAPIRecord(rec domain.FinancialRecord) api.FinancialRecord {
	return api.FinancialRecord{
		ID:          rec.ID,
		Period:      rec.Period,
		Revenue:     rec.Revenue,
		GrossProfit: rec.GrossProfit,
		NetIncome:   rec.NetIncome,
		Expenses:    rec.Expenses,
		EBITDA:      rec.EBITDA,
		CashFlow:    rec.CashFlow,
		CustomerLTV: rec.CustomerLTV,
		CustomerCAC: rec.CustomerCAC,
	}
}

func toAPIStats(stats domain.FinancialStats) api.FinancialStats {
	conv := func(v domain.StatValue) api.StatValue {
		return api.StatValue{Value: v.Value, Change: v.Change}
	}
	return api.FinancialStats{
		Revenue:     conv(stats.Revenue),
		GrossMargin: conv(stats.GrossMargin),
		NetMargin:   conv(stats.NetMargin),
		EBITDA:      conv(stats.EBITDA),
		CashFlow:    conv(stats.CashFlow),
		CustomerLTV: conv(stats.CustomerLTV),
		CustomerCAC: conv(stats.CustomerCAC),
	}
}

package commands

import (
	"fmt"
	"time"

	"github.com/finboard/finboard/pkg/models/domain"
	"github.com/finboard/finboard/pkg/services/finance"
	"github.com/finboard/finboard/pkg/store/memory"
	"github.com/finboard/finboard/pkg/terminal"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

type StatsCmd struct {
	company string
	period  string
	from    string
	to      string

	registry *memory.Registry
	reporter *terminal.Reporter
}

func NewStatsCmd(registry *memory.Registry, reporter *terminal.Reporter) *cobra.Command {
	sc := &StatsCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the financial summary for a company and period",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.company, "company", "", "Company to report on")
	cmd.Flags().StringVar(&sc.period, "period", "month", "Period selector (day, week, month, ytd, all, custom)")
	cmd.Flags().StringVar(&sc.from, "from", "", "Custom range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&sc.to, "to", "", "Custom range end (YYYY-MM-DD), defaults to --from")

	_ = cmd.MarkFlagRequired("company")

	return cmd
}

func (sc *StatsCmd) run(cmd *cobra.Command, args []string) error {
	period, err := sc.parsePeriod()
	if err != nil {
		return err
	}

	store, err := sc.registry.Get(sc.company)
	if err != nil {
		return fmt.Errorf("unknown company %q. Known companies: %v", sc.company, sc.registry.Companies())
	}

	stats := finance.StatsForPeriod(store.All(), period, time.Now())

	return sc.reporter.Handle(&terminal.StatsReport{
		Company: sc.company,
		Period:  period,
		Stats:   stats,
	})
}

func (sc *StatsCmd) parsePeriod() (domain.Period, error) {
	switch sc.period {
	case "day":
		return domain.DayPeriod(), nil
	case "week":
		return domain.WeekPeriod(), nil
	case "month":
		return domain.MonthPeriod(), nil
	case "ytd":
		return domain.YearToDatePeriod(), nil
	case "all":
		return domain.AllPeriod(), nil
	case "custom":
		if sc.from == "" {
			return domain.Period{}, fmt.Errorf("--from is required when --period=custom")
		}
		from, err := time.Parse(dateLayout, sc.from)
		if err != nil {
			return domain.Period{}, fmt.Errorf("invalid --from date %q: %w", sc.from, err)
		}
		var to time.Time
		if sc.to != "" {
			to, err = time.Parse(dateLayout, sc.to)
			if err != nil {
				return domain.Period{}, fmt.Errorf("invalid --to date %q: %w", sc.to, err)
			}
		}
		return domain.CustomPeriod(from, to), nil
	default:
		return domain.Period{}, fmt.Errorf("unsupported period %q", sc.period)
	}
}

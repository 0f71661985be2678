package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/finboard/finboard/pkg/models/domain"
)

// StatsReport is everything the console report needs: the company, the
// period selection it covers, and the seven computed statistics.
type StatsReport struct {
	Company string
	Period  domain.Period
	Stats   domain.FinancialStats
}

// Reporter outputs financial stats to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *StatsReport) error {
	tmpl := `
Financial summary for {{.Company}} ({{.Period.Kind}}{{if eq .Period.Kind "custom"}}: {{.Period.Range.From.Format "2006-01-02"}} to {{.Period.Range.To.Format "2006-01-02"}}{{end}})

Revenue:       {{.Stats.Revenue.Value}}{{with trim .Stats.Revenue.Change}} ({{.}}){{end}}
Gross Margin:  {{.Stats.GrossMargin.Value}}{{with trim .Stats.GrossMargin.Change}} ({{.}}){{end}}
Net Margin:    {{.Stats.NetMargin.Value}}{{with trim .Stats.NetMargin.Change}} ({{.}}){{end}}
EBITDA:        {{.Stats.EBITDA.Value}}{{with trim .Stats.EBITDA.Change}} ({{.}}){{end}}
Cash Flow:     {{.Stats.CashFlow.Value}}{{with trim .Stats.CashFlow.Change}} ({{.}}){{end}}
Customer LTV:  {{.Stats.CustomerLTV.Value}}{{with trim .Stats.CustomerLTV.Change}} ({{.}}){{end}}
Customer CAC:  {{.Stats.CustomerCAC.Value}}{{with trim .Stats.CustomerCAC.Change}} ({{.}}){{end}}
`
	t, err := template.New("stats").Funcs(template.FuncMap{"trim": strings.TrimSpace}).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}

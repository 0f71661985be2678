package seed

import (
	"time"

	"github.com/finboard/finboard/pkg/store/memory"
)

type demoCompany struct {
	slug   string
	factor float64
}

// Demo company slugs and their dataset scale factors.
var demoCompanies = []demoCompany{
	{slug: "srisys", factor: 1.0},
	{slug: "pigeon-tech", factor: 0.8},
}

// DemoRegistry builds a registry populated with the demo companies.
func DemoRegistry(seed int64, now time.Time) *memory.Registry {
	registry := memory.NewRegistry()
	generator := NewGenerator(seed, now)
	for _, company := range demoCompanies {
		generator.Populate(registry, company.slug, company.factor)
	}
	return registry
}

package company

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/finboard/finboard/pkg/models/api"
	"github.com/finboard/finboard/pkg/models/domain"
	"github.com/finboard/finboard/pkg/store/memory"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func seededRegistry(t *testing.T) *memory.Registry {
	t.Helper()

	registry := memory.NewRegistry()
	store := registry.Ensure("acme")

	store.Append(domain.FinancialRecord{
		Period:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Revenue:     1_000,
		Expenses:    600,
		NetIncome:   400,
		GrossProfit: 650,
		EBITDA:      480,
		CashFlow:    440,
		CustomerLTV: 40_000,
		CustomerCAC: 3_000,
	})
	store.Append(domain.FinancialRecord{
		Period:      time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Revenue:     1_200,
		Expenses:    700,
		NetIncome:   500,
		GrossProfit: 650,
		EBITDA:      480,
		CashFlow:    440,
		CustomerLTV: 40_000,
		CustomerCAC: 3_000,
	})

	return registry
}

func newTestHandler(t *testing.T) *Handler {
	h := NewHandler(seededRegistry(t))
	h.now = fixedNow
	return h
}

func withCompanyParam(req *http.Request, company string) *http.Request {
	ctx := chi.NewRouteContext()
	ctx.URLParams.Add("company", company)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, ctx))
}

func TestListCompanies(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest("GET", "/companies", nil)
	rec := httptest.NewRecorder()

	h.ListCompanies(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response []api.Company
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, []api.Company{{Name: "acme"}}, response)
}

func TestGetStats(t *testing.T) {
	tests := []struct {
		name           string
		company        string
		query          string
		expectedStatus int
		check          func(*testing.T, api.FinancialStats)
	}{
		{
			name:           "month over month",
			company:        "acme",
			query:          "?period=month",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, stats api.FinancialStats) {
				assert.Equal(t, "$1K", stats.Revenue.Value)
				assert.Equal(t, "+20.0%", stats.Revenue.Change)
				assert.Equal(t, "54.2%", stats.GrossMargin.Value)
			},
		},
		{
			name:           "default period is month",
			company:        "acme",
			query:          "",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, stats api.FinancialStats) {
				assert.Equal(t, "$1K", stats.Revenue.Value)
			},
		},
		{
			name:           "custom range",
			company:        "acme",
			query:          "?period=custom&from=2024-02-01&to=2024-03-02",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, stats api.FinancialStats) {
				assert.Equal(t, "$1K", stats.Revenue.Value)
				assert.Equal(t, "+20.0%", stats.Revenue.Change)
			},
		},
		{
			name:           "custom without from degrades to all data",
			company:        "acme",
			query:          "?period=custom",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, stats api.FinancialStats) {
				// No range picked yet: the whole series aggregates with no
				// comparison window.
				assert.Equal(t, "$2K", stats.Revenue.Value)
				assert.Equal(t, " ", stats.Revenue.Change)
			},
		},
		{
			name:           "day period with no records returns sentinel",
			company:        "acme",
			query:          "?period=day",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, stats api.FinancialStats) {
				assert.Equal(t, "N/A", stats.Revenue.Value)
				assert.Equal(t, " ", stats.Revenue.Change)
			},
		},
		{
			name:           "unknown company",
			company:        "nope",
			query:          "?period=month",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid from date",
			company:        "acme",
			query:          "?period=custom&from=not-a-date",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid period value",
			company:        "acme",
			query:          "?period=quarter",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)

			req := httptest.NewRequest("GET", "/companies/"+tt.company+"/finance/stats"+tt.query, nil)
			req = withCompanyParam(req, tt.company)
			rec := httptest.NewRecorder()

			h.GetStats(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var stats api.FinancialStats
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
				tt.check(t, stats)
			}
		})
	}
}

func TestGetChart(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest("GET", "/companies/acme/finance/chart?period=all", nil)
	req = withCompanyParam(req, "acme")
	rec := httptest.NewRecorder()

	h.GetChart(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var series []api.FinancialRecord
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&series))
	require.Len(t, series, 2)
	assert.True(t, series[0].Period.Before(series[1].Period), "chart series is chronological")
}

func TestAppendRecord(t *testing.T) {
	t.Run("creates a record and assigns an id", func(t *testing.T) {
		h := newTestHandler(t)

		payload := `{"period":"2024-02-20T00:00:00Z","revenue":2000,"expenses":1200,"net_income":800}`
		req := httptest.NewRequest("POST", "/companies/acme/finance/records", strings.NewReader(payload))
		req = withCompanyParam(req, "acme")
		rec := httptest.NewRecorder()

		h.AppendRecord(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var created api.FinancialRecord
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, 2000.0, created.Revenue)

		store, err := h.registry.Get("acme")
		require.NoError(t, err)
		assert.Equal(t, 3, store.Len())
	})

	t.Run("rejects a record without a period", func(t *testing.T) {
		h := newTestHandler(t)

		req := httptest.NewRequest("POST", "/companies/acme/finance/records", strings.NewReader(`{"revenue":1}`))
		req = withCompanyParam(req, "acme")
		rec := httptest.NewRecorder()

		h.AppendRecord(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		h := newTestHandler(t)

		req := httptest.NewRequest("POST", "/companies/acme/finance/records", strings.NewReader(`{`))
		req = withCompanyParam(req, "acme")
		rec := httptest.NewRecorder()

		h.AppendRecord(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

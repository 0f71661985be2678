package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finboard/finboard/pkg/models/api"
	"github.com/finboard/finboard/pkg/models/domain"
	"github.com/finboard/finboard/pkg/store/memory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	registry := memory.NewRegistry()
	registry.Ensure("acme").Append(domain.FinancialRecord{
		Period:      time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Revenue:     1_200,
		GrossProfit: 650,
		NetIncome:   500,
		Expenses:    700,
		EBITDA:      480,
		CashFlow:    440,
		CustomerLTV: 40_000,
		CustomerCAC: 3_000,
	})

	router := ConfigureRouter(logger, Dependencies{Registry: registry})
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		check          func(*testing.T, []byte)
	}{
		{
			name:           "ListCompanies",
			path:           "/api/v1/companies",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var companies []api.Company
				require.NoError(t, json.Unmarshal(body, &companies))
				assert.Equal(t, []api.Company{{Name: "acme"}}, companies)
			},
		},
		{
			name:           "GetStats_AllPeriod",
			path:           "/api/v1/companies/acme/finance/stats?period=all",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var stats api.FinancialStats
				require.NoError(t, json.Unmarshal(body, &stats))
				assert.Equal(t, "$1K", stats.Revenue.Value)
				assert.Equal(t, " ", stats.Revenue.Change)
				assert.Equal(t, "54.2%", stats.GrossMargin.Value)
			},
		},
		{
			name:           "GetChart_AllPeriod",
			path:           "/api/v1/companies/acme/finance/chart?period=all",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var series []api.FinancialRecord
				require.NoError(t, json.Unmarshal(body, &series))
				require.Len(t, series, 1)
				assert.Equal(t, 1_200.0, series[0].Revenue)
			},
		},
		{
			name:           "GetStats_UnknownCompany",
			path:           "/api/v1/companies/ghost/finance/stats",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "GetStats_InvalidFromDate",
			path:           "/api/v1/companies/acme/finance/stats?period=custom&from=invalid-date",
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				assert.Equal(t, "invalid 'from' date format. Expected format: YYYY-MM-DD\n", string(body))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Get(testServer.URL + tc.path)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			if tc.check != nil {
				tc.check(t, body)
			}
		})
	}
}

package company

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/finboard/finboard/pkg/models/api"
	"github.com/finboard/finboard/pkg/services/finance"
	"github.com/finboard/finboard/pkg/store/memory"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const dateLayout = "2006-01-02"

type Handler struct {
	registry *memory.Registry
	now      func() time.Time
}

func NewHandler(registry *memory.Registry) *Handler {
	return &Handler{registry: registry, now: time.Now}
}

func (h *Handler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	response := make([]api.Company, 0)
	for _, name := range h.registry.Companies() {
		response = append(response, api.Company{Name: name})
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode companies")
	}
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	companyName := chi.URLParam(r, "company")

	store, err := h.registry.Get(companyName)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	period, err := parsePeriodParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stats := finance.StatsForPeriod(store.All(), period, h.now())

	if err := json.NewEncoder(w).Encode(toAPIStats(stats)); err != nil {
		logger.Error().Err(err).Str("company", companyName).Msg("failed to encode stats")
	}
}

func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	companyName := chi.URLParam(r, "company")

	store, err := h.registry.Get(companyName)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	period, err := parsePeriodParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	series := finance.ChartSeriesForPeriod(store.All(), period, h.now())

	response := make([]api.FinancialRecord, 0, len(series))
	for _, rec := range series {
		response = append(response, toAPIRecord(rec))
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Str("company", companyName).Msg("failed to encode chart series")
	}
}

func (h *Handler) AppendRecord(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	companyName := chi.URLParam(r, "company")

	store, err := h.registry.Get(companyName)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	var payload api.FinancialRecord
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid record payload", http.StatusBadRequest)
		return
	}
	if payload.Period.IsZero() {
		http.Error(w, "record period is required", http.StatusBadRequest)
		return
	}

	created := store.Append(toDomainRecord(payload))

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toAPIRecord(created)); err != nil {
		logger.Error().Err(err).Str("company", companyName).Msg("failed to encode created record")
	}
}

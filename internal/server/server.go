// Package server exposes the forecast and metrics engines over a small HTTP
// API. The engines themselves are pure; all upload parsing and concurrency
// concerns live at this layer.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fundroi/fundraising-forecast/internal/forecast"
	"github.com/fundroi/fundraising-forecast/internal/metrics"
	"github.com/fundroi/fundraising-forecast/pkg/constants"
	"github.com/fundroi/fundraising-forecast/pkg/datetime"
	"github.com/fundroi/fundraising-forecast/pkg/normalize"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the forecast API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}
	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Macro forecast from JSON assumptions, optional inline budget
	mux.HandleFunc("/api/forecast", h.handleForecast)

	// Macro forecast with a budget CSV upload
	mux.HandleFunc("/api/forecast/budget", h.handleForecastBudget)

	// Micro KPIs and rollups from donation + cost CSV uploads
	mux.HandleFunc("/api/metrics", h.handleMetrics)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type assumptionsPayload struct {
	TotalRaisedY1            float64 `json:"totalRaisedY1"`
	BaseCostY1               float64 `json:"baseCostY1"`
	Retention                float64 `json:"retention"`
	RevenueMethod            string  `json:"revenueMethod,omitempty"`
	RevenueShock             float64 `json:"revenueShock"`
	Margin                   float64 `json:"margin"`
	CostGrowth               float64 `json:"costGrowth"`
	CostShock                float64 `json:"costShock"`
	AcquisitionCostYear1Only *bool   `json:"acquisitionCostYear1Only,omitempty"`
}

func (p assumptionsPayload) toAssumptions() forecast.Assumptions {
	method := forecast.RevenueMethod(p.RevenueMethod)
	if method == "" {
		method = forecast.RevenueMethodPrior
	}
	year1Only := true
	if p.AcquisitionCostYear1Only != nil {
		year1Only = *p.AcquisitionCostYear1Only
	}
	return forecast.Assumptions{
		TotalRaisedY1:            p.TotalRaisedY1,
		BaseCostY1:               p.BaseCostY1,
		Retention:                p.Retention,
		RevenueMethod:            method,
		RevenueShock:             p.RevenueShock,
		Margin:                   p.Margin,
		CostGrowth:               p.CostGrowth,
		CostShock:                p.CostShock,
		AcquisitionCostYear1Only: year1Only,
	}
}

type forecastRequest struct {
	Name        string               `json:"name,omitempty"`
	Assumptions assumptionsPayload   `json:"assumptions"`
	Budget      []forecast.BudgetRow `json:"budget,omitempty"`
}

type forecastResponse struct {
	RequestID  string            `json:"requestId"`
	Forecast   forecast.Forecast `json:"forecast"`
	BudgetNote string            `json:"budgetNote,omitempty"`
	Duration   string            `json:"duration"`
}

func (h *handler) handleForecast(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if r.Method != http.MethodPost {
		h.respondError(w, http.StatusMethodNotAllowed, "method not allowed", "server.handleForecast")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxUploadSize))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge, "request body too large", "server.handleForecast")
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("reading request body: %v", err), "server.handleForecast")
		return
	}

	var req forecastRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err), "server.handleForecast")
		return
	}

	h.runForecast(w, req, start, "server.handleForecast")
}

// handleForecastBudget accepts a multipart form with an "assumptions" JSON
// field and a "budget" CSV file, pre-parsing the upload before invoking the
// engine. Column-name variants are resolved here, not in the engine.
func (h *handler) handleForecastBudget(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if r.Method != http.MethodPost {
		h.respondError(w, http.StatusMethodNotAllowed, "method not allowed", "server.handleForecastBudget")
		return
	}

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid multipart form: %v", err), "server.handleForecastBudget")
		return
	}

	var req forecastRequest
	if err := json.Unmarshal([]byte(r.FormValue("assumptions")), &req.Assumptions); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid assumptions field: %v", err), "server.handleForecastBudget")
		return
	}
	req.Name = r.FormValue("name")

	file, _, err := r.FormFile("budget")
	if err == nil {
		defer func() { _ = file.Close() }()
		budget, parseErr := normalize.ParseBudget(file, normalize.BudgetMapping())
		if parseErr != nil {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid budget file: %v", parseErr), "server.handleForecastBudget")
			return
		}
		req.Budget = budget
	}

	h.runForecast(w, req, start, "server.handleForecastBudget")
}

func (h *handler) runForecast(w http.ResponseWriter, req forecastRequest, start time.Time, op string) {
	requestID := uuid.NewString()

	result := forecast.Build(req.Assumptions.toAssumptions(), req.Budget, forecast.DefaultThresholds())
	result.Name = req.Name
	if result.Name == "" {
		result.Name = "ad hoc"
	}

	resp := forecastResponse{
		RequestID: requestID,
		Forecast:  result,
		Duration:  time.Since(start).String(),
	}
	if len(req.Budget) > 0 && len(result.Variance) == 0 {
		resp.BudgetNote = "no budget comparison available: no budget year labels matched the forecast"
	}

	h.logger.Info("forecast computed",
		zap.String("op", op),
		zap.String("requestId", requestID),
		zap.String("scenario", result.Name),
		zap.Float64("roiMultiple", result.Summary.ROIMultiple),
		zap.Duration("duration", time.Since(start)),
	)
	h.writeJSON(w, http.StatusOK, resp)
}

type metricsResponse struct {
	RequestID       string              `json:"requestId"`
	KPIs            metrics.KPISet      `json:"kpis"`
	CampaignRollups []metrics.RollupRow `json:"campaignRollups"`
	ChannelRollups  []metrics.RollupRow `json:"channelRollups"`
	Trend           []metrics.TrendRow  `json:"trend"`
	Duration        string              `json:"duration"`
}

func (h *handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if r.Method != http.MethodPost {
		h.respondError(w, http.StatusMethodNotAllowed, "method not allowed", "server.handleMetrics")
		return
	}

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid multipart form: %v", err), "server.handleMetrics")
		return
	}

	donations, err := h.parseDonationsUpload(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleMetrics")
		return
	}
	costs, err := h.parseCostsUpload(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleMetrics")
		return
	}

	filter, err := metricsFilter(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleMetrics")
		return
	}

	// Segmentation runs over the full upload so the segment filter sees the
	// donor's true first gift, not the first gift inside the window.
	donations = metrics.SegmentDonors(donations)
	donations = filter.ApplyDonations(donations)
	costs = filter.ApplyCosts(costs)

	requestID := uuid.NewString()
	resp := metricsResponse{
		RequestID:       requestID,
		KPIs:            metrics.ComputeKPIs(donations, costs),
		CampaignRollups: metrics.ComputeRollups(donations, costs, metrics.ByCampaign),
		ChannelRollups:  metrics.ComputeRollups(donations, costs, metrics.ByChannel),
		Trend:           metrics.MonthlyTrend(donations, costs),
		Duration:        time.Since(start).String(),
	}

	h.logger.Info("metrics computed",
		zap.String("op", "server.handleMetrics"),
		zap.String("requestId", requestID),
		zap.Int("gifts", resp.KPIs.Gifts),
		zap.Int("donors", resp.KPIs.Donors),
		zap.Duration("duration", time.Since(start)),
	)
	h.writeJSON(w, http.StatusOK, resp)
}

// metricsFilter builds the optional record filter from form fields: "start"
// and "end" bound the date window, and repeated "channel", "campaign", and
// "segment" fields restrict those dimensions.
func metricsFilter(r *http.Request) (metrics.Filter, error) {
	var f metrics.Filter

	if v := strings.TrimSpace(r.FormValue("start")); v != "" {
		start, err := datetime.ParseTransactionDate(v)
		if err != nil {
			return f, fmt.Errorf("invalid start date: %w", err)
		}
		f.Start = start
	}
	if v := strings.TrimSpace(r.FormValue("end")); v != "" {
		end, err := datetime.ParseTransactionDate(v)
		if err != nil {
			return f, fmt.Errorf("invalid end date: %w", err)
		}
		f.End = end
	}

	if r.MultipartForm != nil {
		f.Channels = trimmedValues(r.MultipartForm.Value["channel"])
		f.Campaigns = trimmedValues(r.MultipartForm.Value["campaign"])
		f.Segments = trimmedValues(r.MultipartForm.Value["segment"])
	}
	return f, nil
}

func trimmedValues(values []string) []string {
	var out []string
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (h *handler) parseDonationsUpload(r *http.Request) ([]metrics.Donation, error) {
	file, _, err := r.FormFile("donations")
	if err != nil {
		return nil, fmt.Errorf("missing donations file: %w", err)
	}
	defer func() { _ = file.Close() }()
	donations, err := normalize.ParseDonations(file, normalize.DonationMapping())
	if err != nil {
		return nil, fmt.Errorf("invalid donations file: %w", err)
	}
	return donations, nil
}

func (h *handler) parseCostsUpload(r *http.Request) ([]metrics.CostRecord, error) {
	file, _, err := r.FormFile("costs")
	if err != nil {
		return nil, fmt.Errorf("missing costs file: %w", err)
	}
	defer func() { _ = file.Close() }()
	costs, err := normalize.ParseCosts(file, normalize.CostMapping())
	if err != nil {
		return nil, fmt.Errorf("invalid costs file: %w", err)
	}
	return costs, nil
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.respondError(w, http.StatusMethodNotAllowed, "method not allowed", "server.handleVersion")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Warn(msg,
		zap.String("op", op),
		zap.Int("status", status),
	)
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

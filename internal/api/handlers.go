package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/JCaesar45/Stock-Market-Analysis-Dashboard/internal/analyzer"
	"github.com/JCaesar45/Stock-Market-Analysis-Dashboard/internal/models"
	"github.com/JCaesar45/Stock-Market-Analysis-Dashboard/internal/report"
	"github.com/JCaesar45/Stock-Market-Analysis-Dashboard/pkg/logger"
)

// AnalyzeHandler handles the analysis endpoints
type AnalyzeHandler struct {
	analyzer *analyzer.Analyzer
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(a *analyzer.Analyzer) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: a}
}

// AnalyzeRequest is the payload for POST /api/v1/analyze
type AnalyzeRequest struct {
	Prices []float64 `json:"prices"`
	// Format selects the response rendering: "json" (default) or "text".
	Format string `json:"format,omitempty"`
}

// Analyze handles POST /api/v1/analyze
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Format != "" && req.Format != "json" && req.Format != "text" {
		respondWithError(w, http.StatusBadRequest, "Unsupported format: "+req.Format)
		return
	}

	series := models.PriceSeries(req.Prices)
	if err := series.Validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respond(w, r, series, req.Format)
}

// AnalyzeSample handles GET /api/v1/analyze/sample using the built-in
// demonstration series. The ?format=text query selects the text rendering.
func (h *AnalyzeHandler) AnalyzeSample(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "" && format != "json" && format != "text" {
		respondWithError(w, http.StatusBadRequest, "Unsupported format: "+format)
		return
	}
	h.respond(w, r, models.SampleSeries, format)
}

func (h *AnalyzeHandler) respond(w http.ResponseWriter, r *http.Request, series models.PriceSeries, format string) {
	result := h.analyzer.Analyze(series)
	result.RequestID = RequestIDFromContext(r.Context())

	logger.Info("Analysis completed",
		logger.String("request_id", result.RequestID),
		logger.Int("samples", result.Samples),
		logger.String("format", format),
	)

	if format == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, report.Format(result))
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": message,
		"code":  code,
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

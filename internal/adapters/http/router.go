package httpadapter

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/claimsight/claimsight/internal/config"
	"github.com/claimsight/claimsight/internal/core/domain"
	"github.com/claimsight/claimsight/internal/core/ports"
	"github.com/claimsight/claimsight/internal/export"
	"github.com/claimsight/claimsight/internal/observability/metrics"
)

const (
	tenantIDHeader = "X-Tenant-Id"

	// Uploads above this size are rejected before extraction.
	maxUploadBytes = 20 << 20

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Router struct {
	service    string
	cfg        config.Config
	analyzer   ports.DocumentAnalyzer
	summarizer ports.PolicySummarizer
	scorer     ports.ClaimScorer
	store      ports.DocumentStore
	metrics    *metrics.HTTPServerMetrics
	logger     *slog.Logger
}

func NewRouter(
	service string,
	cfg config.Config,
	analyzer ports.DocumentAnalyzer,
	summarizer ports.PolicySummarizer,
	scorer ports.ClaimScorer,
	store ports.DocumentStore,
	m *metrics.HTTPServerMetrics,
	logger *slog.Logger,
) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		service:    service,
		cfg:        cfg,
		analyzer:   analyzer,
		summarizer: summarizer,
		scorer:     scorer,
		store:      store,
		metrics:    m,
		logger:     logger,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.Handle("/metrics", rt.metrics.Handler())
	mux.HandleFunc("/v1/documents/analyze", rt.analyzeDocument)
	mux.HandleFunc("/v1/documents/analyze/export", rt.exportAnalysis)
	mux.HandleFunc("/v1/documents/", rt.getDocumentByID)
	mux.HandleFunc("/v1/policies/summarize", rt.summarizePolicy)
	mux.HandleFunc("/v1/claims/score", rt.scoreClaim)

	var handler http.Handler = mux
	handler = backpressureMiddleware(
		handler,
		rt.cfg.APIMaxConcurrent,
		time.Duration(rt.cfg.APIBackpressureWaitMsec)*time.Millisecond,
	)
	handler = rateLimitMiddleware(handler, rt.cfg.APIRateLimitRPS, rt.cfg.APIRateLimitBurst)
	handler = rt.metrics.Middleware(rt.service, handler)
	handler = accessLogMiddleware(rt.logger, handler)
	handler = requestIDMiddleware(handler)
	return handler
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) analyzeDocument(w http.ResponseWriter, r *http.Request) {
	result, _, ok := rt.runAnalysis(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (rt *Router) exportAnalysis(w http.ResponseWriter, r *http.Request) {
	result, filename, ok := rt.runAnalysis(w, r)
	if !ok {
		return
	}

	workbook, err := export.BuildAnalysisWorkbook(result, filename)
	if err != nil {
		rt.logger.Error("export_failed", "filename", filename, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "export failed"})
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(filename)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(workbook)
}

// runAnalysis handles the shared upload/analyze part of the analyze and
// export endpoints. It writes the error response itself when ok is false.
func (rt *Router) runAnalysis(w http.ResponseWriter, r *http.Request) (*domain.AnalysisResult, string, bool) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return nil, "", false
	}

	tenantID := strings.TrimSpace(r.Header.Get(tenantIDHeader))
	if tenantID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "header X-Tenant-Id is required"})
		return nil, "", false
	}

	filename, contentType, data, ok := readUpload(w, r)
	if !ok {
		return nil, "", false
	}

	start := time.Now()
	result, err := rt.analyzer.Analyze(r.Context(), tenantID, filename, contentType, data)
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return nil, "", false
	}

	severities := make([]string, 0, len(result.FraudSignals))
	for _, signal := range result.FraudSignals {
		severities = append(severities, string(signal.Severity))
	}
	rt.metrics.RecordAnalysis(rt.service, result.DocType, severities, result.QualityScore, time.Since(start))

	return result, filename, true
}

func (rt *Router) getDocumentByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	tenantID := strings.TrimSpace(r.Header.Get(tenantIDHeader))
	if tenantID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "header X-Tenant-Id is required"})
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/v1/documents/")
	if id == "" || strings.Contains(id, "/") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "document id is required"})
		return
	}

	doc, err := rt.store.GetByID(r.Context(), tenantID, id)
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (rt *Router) summarizePolicy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	filename, contentType, data, ok := readUpload(w, r)
	if !ok {
		return
	}

	summary, err := rt.summarizer.Summarize(r.Context(), filename, contentType, data)
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (rt *Router) scoreClaim(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var claim domain.ClaimInput
	if err := json.NewDecoder(r.Body).Decode(&claim); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(claim.ClaimID) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "claim_id is required"})
		return
	}

	writeJSON(w, http.StatusOK, rt.scorer.Score(claim))
}

// readUpload pulls the multipart "file" part into memory. It writes the error
// response itself when ok is false.
func readUpload(w http.ResponseWriter, r *http.Request) (filename, contentType string, data []byte, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "multipart field 'file' is required"})
		return "", "", nil, false
	}
	defer file.Close()

	data, err = io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "failed to read upload"})
		return "", "", nil, false
	}

	return fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data, true
}

func exportFilename(uploadName string) string {
	base := strings.TrimSpace(uploadName)
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	if base == "" {
		base = "analysis"
	}
	return base + "-analysis.xlsx"
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

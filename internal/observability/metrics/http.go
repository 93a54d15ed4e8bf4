package metrics

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	documentsAnalyzedTotal *prometheus.CounterVec
	fraudSignalsTotal      *prometheus.CounterVec
	analysisDuration       *prometheus.HistogramVec
	qualityScore           *prometheus.HistogramVec
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "claimsight",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "claimsight",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "claimsight",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	documentsAnalyzedTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "claimsight",
			Subsystem: "analysis",
			Name:      "documents_total",
			Help:      "Total analyzed documents by predicted type.",
		},
		[]string{"service", "doc_type"},
	)
	fraudSignalsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "claimsight",
			Subsystem: "analysis",
			Name:      "fraud_signals_total",
			Help:      "Total fraud signals raised by severity.",
		},
		[]string{"service", "severity"},
	)
	analysisDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "claimsight",
			Subsystem: "analysis",
			Name:      "duration_seconds",
			Help:      "Analysis pipeline duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service"},
	)
	qualityScore := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "claimsight",
			Subsystem: "analysis",
			Name:      "quality_score",
			Help:      "Distribution of text quality scores.",
			Buckets:   []float64{0, 25, 50, 65, 75, 80, 85, 90, 95, 100},
		},
		[]string{"service"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		documentsAnalyzedTotal,
		fraudSignalsTotal,
		analysisDuration,
		qualityScore,
	)

	return &HTTPServerMetrics{
		registry:               registry,
		requestTotal:           requestTotal,
		requestDuration:        requestDuration,
		requestInFlight:        requestInFlight,
		documentsAnalyzedTotal: documentsAnalyzedTotal,
		fraudSignalsTotal:      fraudSignalsTotal,
		analysisDuration:       analysisDuration,
		qualityScore:           qualityScore,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := normalizePath(r.URL.Path)
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, path).Observe(time.Since(start).Seconds())
	})
}

func normalizePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/v1/documents/") && path != "/v1/documents/analyze" && path != "/v1/documents/analyze/export":
		return "/v1/documents/{document_id}"
	default:
		return path
	}
}

// RecordAnalysis folds one completed analysis into the counters.
func (m *HTTPServerMetrics) RecordAnalysis(service, docType string, severities []string, quality int, duration time.Duration) {
	if docType == "" {
		docType = "unknown"
	}
	m.documentsAnalyzedTotal.WithLabelValues(service, docType).Inc()
	for _, severity := range severities {
		m.fraudSignalsTotal.WithLabelValues(service, severity).Inc()
	}
	m.analysisDuration.WithLabelValues(service).Observe(duration.Seconds())
	m.qualityScore.WithLabelValues(service).Observe(float64(quality))
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytesWritten += n
	return n, err
}

func (w *statusRecorder) Flush() {
	flusher, ok := w.ResponseWriter.(http.Flusher)
	if ok {
		flusher.Flush()
	}
}

func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not implement http.Hijacker")
	}
	return hijacker.Hijack()
}

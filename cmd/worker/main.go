// The worker audits analyzed-document events: every analysis that raised
// fraud signals is logged for review, and counters are exposed for scraping.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/claimsight/claimsight/internal/bootstrap"
	"github.com/claimsight/claimsight/internal/config"
	"github.com/claimsight/claimsight/internal/core/domain"
	"github.com/claimsight/claimsight/internal/observability/logging"
	"github.com/claimsight/claimsight/internal/observability/metrics"
)

const serviceName = "claimsight-worker"

func main() {
	cfg := config.Load()
	logger := logging.NewJSONLogger(serviceName, cfg.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer app.Close()

	workerMetrics := metrics.NewWorkerMetrics(serviceName)
	metricsServer := &http.Server{
		Addr:         ":" + cfg.WorkerMetricsPort,
		Handler:      workerMetrics.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("worker_metrics_listening", "port", cfg.WorkerMetricsPort)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("worker metrics server error: %v", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsServer.Shutdown(shutdownCtx)
	}()

	logger.Info("worker_subscribed", "subject", cfg.NATSSubject)
	err = app.Queue.SubscribeDocumentAnalyzed(ctx, func(_ context.Context, event domain.AnalyzedEvent) error {
		workerMetrics.StartAudit()
		start := time.Now()

		auditEvent(logger, event)
		workerMetrics.FinishAudit(serviceName, time.Since(start), nil)
		return nil
	})
	if err != nil {
		log.Fatalf("worker subscribe error: %v", err)
	}
}

// auditEvent writes the audit trail entry. Analyses that raised fraud
// signals are logged at warn so reviewers can filter on them.
func auditEvent(logger *slog.Logger, event domain.AnalyzedEvent) {
	attrs := []any{
		"document_id", event.DocumentID,
		"tenant_id", event.TenantID,
		"doc_type", event.DocType,
		"confidence", event.Confidence,
		"fraud_signals", event.FraudSignals,
		"analyzed_at", event.AnalyzedAt,
	}
	if event.FraudSignals > 0 {
		logger.Warn("analysis_audited", attrs...)
		return
	}
	logger.Info("analysis_audited", attrs...)
}

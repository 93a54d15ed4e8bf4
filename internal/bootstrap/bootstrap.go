package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/claimsight/claimsight/internal/config"
	"github.com/claimsight/claimsight/internal/core/ports"
	"github.com/claimsight/claimsight/internal/core/rules"
	"github.com/claimsight/claimsight/internal/core/usecase"
	"github.com/claimsight/claimsight/internal/infrastructure/extractor/pagetext"
	"github.com/claimsight/claimsight/internal/infrastructure/queue/nats"
	"github.com/claimsight/claimsight/internal/infrastructure/repository/postgres"
	"github.com/claimsight/claimsight/internal/infrastructure/resilience"
)

type App struct {
	Config config.Config

	Queue ports.MessageQueue
	Store ports.DocumentStore

	AnalyzeUC   ports.DocumentAnalyzer
	SummarizeUC ports.PolicySummarizer
	ScoreUC     ports.ClaimScorer

	closeFn func()
}

func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	table, err := rules.Load()
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}

	// One executor covers both side-effecting edges: breakers are keyed by
	// operation, so postgres and NATS failures trip independently.
	executor := resilience.NewExecutor(resilience.DefaultConfig())

	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	store := postgres.NewDocumentRepositoryWithExecutor(db, executor)
	if err := store.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, nats.Options{
		ResilienceExecutor: executor,
	})
	if err != nil {
		return nil, fmt.Errorf("init message queue: %w", err)
	}

	extractor := pagetext.New()

	analyzeUC := usecase.NewAnalyzeDocumentUseCase(extractor, store, queue, table, logger, usecase.AnalyzeConfig{
		SimilarityLimit: cfg.SimilarityTopK,
		ExcerptMaxChars: cfg.ExcerptMaxChars,
	})
	summarizeUC := usecase.NewPolicySummaryUseCase(extractor, cfg.SummaryMaxWords)
	scoreUC := usecase.NewClaimScoringUseCase(table)

	return &App{
		Config: cfg,
		Queue:  queue,
		Store:  store,

		AnalyzeUC:   analyzeUC,
		SummarizeUC: summarizeUC,
		ScoreUC:     scoreUC,

		closeFn: func() {
			queue.Close()
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/practice-partner/backend/internal/domain/questionbank"
	"github.com/practice-partner/backend/internal/grader"
	"github.com/practice-partner/backend/internal/infrastructure/config"
	"github.com/practice-partner/backend/internal/metrics"
	"github.com/practice-partner/backend/internal/service"
	"github.com/practice-partner/backend/internal/store"
)

// app holds the dependencies shared by the commands.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	banks    questionbank.Lookup
	db       *store.SQLiteBankStore // nil unless QUESTION_BANK_DB is set
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	service  *service.InterviewService

	closers []func() error
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
}

// newApp wires the question banks, graders and interview service.
func newApp(ctx context.Context, logw io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	a := &app{
		cfg:    cfg,
		logger: newLogger(logw, cfg),
	}

	if err := a.openBanks(ctx); err != nil {
		a.Close()
		return nil, err
	}

	a.registry = prometheus.NewRegistry()
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	a.metrics = metrics.New(a.registry)

	g, s, err := grader.New(ctx, grader.Options{
		Provider:     cfg.LLMProvider,
		URL:          cfg.LLMURL,
		Model:        cfg.LLMModel,
		APIKey:       cfg.OpenAIAPIKey,
		GeminiAPIKey: cfg.GeminiAPIKey,
		GeminiModel:  cfg.GeminiModel,
		Timeout:      cfg.LLMTimeout,
	}, a.logger, a.metrics)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.service = service.NewInterviewService(
		store.NewMemorySessionStore(),
		questionbank.NewSampler(a.banks),
		g, s,
		a.metrics,
		a.logger,
	)
	return a, nil
}

// openBanks loads the built-in banks, or QUESTION_BANK_FILE in their place.
// With QUESTION_BANK_DB set, banks are served from SQLite instead. The
// database is seeded from those banks only while it holds no roles, so
// questions added or roles deleted with the banks command persist.
func (a *app) openBanks(ctx context.Context) error {
	catalog := questionbank.DefaultCatalog()
	if path := a.cfg.QuestionBankFile; path != "" {
		c, err := questionbank.LoadFile(path)
		if err != nil {
			return fmt.Errorf("load question banks: %w", err)
		}
		catalog = c
	}

	if a.cfg.QuestionBankDB == "" {
		a.banks = catalog
		a.logger.Debug("using in-memory question banks", "roles", len(catalog.Banks()))
		return nil
	}

	db, err := store.NewSQLite(a.cfg.QuestionBankDB)
	if err != nil {
		return fmt.Errorf("open question bank database: %w", err)
	}
	a.closers = append(a.closers, db.Close)

	roles, err := db.Roles(ctx)
	if err != nil {
		return fmt.Errorf("read question bank database: %w", err)
	}
	if len(roles) == 0 {
		if err := db.SeedBanks(ctx, catalog.Banks()); err != nil {
			return fmt.Errorf("seed question banks: %w", err)
		}
		a.logger.Info("question bank database seeded", "path", a.cfg.QuestionBankDB, "roles", len(catalog.Banks()))
	}

	a.db = db
	a.banks = db
	a.logger.Info("question banks loaded from database", "path", a.cfg.QuestionBankDB)
	return nil
}

func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}

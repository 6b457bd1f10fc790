package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/heart-approvals/internal/adapter/postgres"
	"github.com/heartmarshall/heart-approvals/internal/adapter/postgres/item"
	"github.com/heartmarshall/heart-approvals/internal/adapter/postgres/session"
	"github.com/heartmarshall/heart-approvals/internal/adapter/postgres/vote"
	"github.com/heartmarshall/heart-approvals/internal/adapter/whatsapp"
	"github.com/heartmarshall/heart-approvals/internal/config"
	"github.com/heartmarshall/heart-approvals/internal/metrics"
	"github.com/heartmarshall/heart-approvals/internal/service/approval"
	"github.com/heartmarshall/heart-approvals/internal/service/dialog"
	"github.com/heartmarshall/heart-approvals/internal/service/tracking"
	"github.com/heartmarshall/heart-approvals/internal/transport/rest"
	"github.com/heartmarshall/heart-approvals/internal/transport/webhook"
	"github.com/heartmarshall/heart-approvals/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires the services and serves HTTP until ctx is cancelled.
// On cancellation the server stops accepting requests first, then queued
// webhook deliveries are drained within the shutdown timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	var reg *metrics.Registry
	if cfg.Metrics.Enabled {
		reg = metrics.New()
	}

	warnIncomplete(logger, cfg.Approval)

	// Repositories
	items := item.New(pool)
	votes := vote.New(pool)
	sessions := session.New(pool)
	txm := postgres.NewTxManager(pool)

	// Transport
	wa := whatsapp.NewClient(cfg.WhatsApp, reg, logger)

	// Services
	approvalSvc := approval.NewService(logger, approval.PolicyFromConfig(cfg.Approval), items, votes, txm, wa, reg)
	dialogSvc := dialog.NewService(logger, dialog.SettingsFromConfig(cfg.Approval), sessions, items, wa, approvalSvc, tracking.New(nil))

	dispatcher := webhook.NewDispatcher(logger, cfg.Webhook, dialogSvc, approvalSvc, reg)

	handler := NewRouter(logger, Routes{
		Webhook:     webhook.NewHandler(logger, cfg.WhatsApp.VerifyToken, cfg.Webhook.MaxBodyBytes, dispatcher, reg),
		Health:      rest.NewHealthHandler(pool, dispatcher, BuildVersion()),
		Metrics:     metricsHandler(cfg.Metrics, reg),
		MetricsPath: cfg.Metrics.Path,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	dispatcher.Start()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
		return shutdown(srv, dispatcher, cfg.Server.ShutdownTimeout)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("shutdown complete")
	return nil
}

type stopper interface {
	Stop(ctx context.Context) error
}

// shutdown stops the HTTP server, then drains the dispatcher, sharing one deadline.
func shutdown(srv *http.Server, queue stopper, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var errs []error
	if err := srv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if err := queue.Stop(ctx); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func metricsHandler(cfg config.MetricsConfig, reg *metrics.Registry) http.Handler {
	if !cfg.Enabled || reg == nil {
		return nil
	}
	return reg.Handler()
}

// warnIncomplete logs approval settings that leave the bot only partly usable.
func warnIncomplete(logger *slog.Logger, cfg config.ApprovalConfig) {
	if !cfg.HasGroup() {
		logger.Warn("GROUP_JID is not set: submissions cannot be broadcast")
	}
	if len(cfg.Approvers) == 0 {
		logger.Warn("APPROVER_NUMBERS is empty: no reaction will count")
	}
	if len(cfg.Approvers) > 0 && cfg.RequiredHearts > len(cfg.Approvers) {
		logger.Warn("required hearts exceed the number of approvers: items can never be approved",
			slog.Int("required_hearts", cfg.RequiredHearts),
			slog.Int("approvers", len(cfg.Approvers)),
		)
	}
}

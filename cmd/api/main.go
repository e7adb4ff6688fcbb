package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"query-service/internal/observability"
	"query-service/internal/server"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdown, err := initObservability(ctx, cfg)
	if err != nil {
		panic(err)
	}

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: server.NewRouter(),
	}

	if err := run(ctx, srv, cfg); err != nil {
		observability.Logger.Error("server stopped", zap.Error(err))
	}

	// The signal context is done by now; flush on a fresh one.
	flushCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := shutdown(flushCtx); err != nil {
		observability.Logger.Error("telemetry shutdown", zap.Error(err))
		os.Exit(1)
	}
}

// run serves until ctx is cancelled, then drains in-flight requests.
func run(ctx context.Context, srv *http.Server, cfg config) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		observability.Logger.Info("server started", zap.String("addr", srv.Addr))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		observability.Logger.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

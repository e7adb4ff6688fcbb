package main

import (
	"context"
	"errors"

	"query-service/internal/answer"
	"query-service/internal/observability"
)

// initObservability starts logging, tracing and metrics and returns one
// shutdown func that flushes all of them.
func initObservability(ctx context.Context, cfg config) (func(context.Context) error, error) {
	if err := observability.InitLogger(cfg.LogLevel); err != nil {
		return nil, err
	}

	var shutdowns []func(context.Context) error
	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		observability.SyncLogger()
		return errors.Join(errs...)
	}

	traceShutdown, err := observability.InitTracing(ctx, cfg.ExportOTLP)
	if err != nil {
		return nil, err
	}
	shutdowns = append(shutdowns, traceShutdown)

	metricShutdown, err := initMetrics(ctx, cfg.ExportOTLP)
	if err != nil {
		return nil, errors.Join(err, shutdown(ctx))
	}
	shutdowns = append(shutdowns, metricShutdown)

	if cfg.ExportOTLP {
		logShutdown, err := observability.InitLogging(ctx)
		if err != nil {
			return nil, errors.Join(err, shutdown(ctx))
		}
		shutdowns = append(shutdowns, logShutdown)
	}

	return shutdown, nil
}

// initMetrics initialises all metric providers and application-specific
// metric instruments.
func initMetrics(ctx context.Context, exportOTLP bool) (func(context.Context) error, error) {
	shutdown, err := observability.InitMetrics(ctx, exportOTLP)
	if err != nil {
		return nil, err
	}

	if err := answer.InitMetrics(); err != nil {
		return nil, errors.Join(err, shutdown(ctx))
	}

	return shutdown, nil
}

package answer

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments — initialized once via InitMetrics().
var (
	queryCounter metric.Int64Counter
	opsCounter   metric.Int64Counter
	opsHistogram metric.Float64Histogram
	errorCounter metric.Int64Counter
	answerLength metric.Int64Histogram
)

// InitMetrics registers the OTel instruments for answering queries.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("answer")

	var err error

	queryCounter, err = meter.Int64Counter("answer.queries.total",
		metric.WithDescription("Queries classified, by matched intent"),
		metric.WithUnit("{query}"),
	)
	if err != nil {
		return fmt.Errorf("creating query counter: %w", err)
	}

	opsCounter, err = meter.Int64Counter("answer.operations.total",
		metric.WithDescription("Total number of answer operations performed"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return fmt.Errorf("creating ops counter: %w", err)
	}

	opsHistogram, err = meter.Float64Histogram("answer.operation.duration",
		metric.WithDescription("Duration of answer operations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100),
	)
	if err != nil {
		return fmt.Errorf("creating ops histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("answer.errors.total",
		metric.WithDescription("Total number of rejected answer requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	answerLength, err = meter.Int64Histogram("answer.result.length",
		metric.WithDescription("Length of produced answers in bytes"),
		metric.WithUnit("By"),
		metric.WithExplicitBucketBoundaries(0, 1, 8, 32, 128, 1024, 65536),
	)
	if err != nil {
		return fmt.Errorf("creating answer length histogram: %w", err)
	}

	return nil
}

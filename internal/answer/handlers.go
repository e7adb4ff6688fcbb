package answer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"query-service/internal/handlers"
	"query-service/internal/observability"
	"query-service/internal/query"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the answer domain's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("answer")

// maxBodyBytes bounds request bodies; queries are short free text.
const maxBodyBytes = 1 << 20

// ---------------------------------------------------------------------------
// Handlers — free-text queries
// ---------------------------------------------------------------------------

// Query handles POST /query.
func Query(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger := startSpan(r, "query")
	defer span.End()

	var req QueryRequest
	if err := decode(w, r, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "query", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	res := classify(ctx, span, logger, req.Query)

	handlers.WriteJSON(w, http.StatusOK, QueryResponse{
		Query:    req.Query,
		Intent:   string(res.Intent),
		Answer:   res.Answer,
		Answered: res.Answered(),
	})
}

// QueryText handles GET /query?q=... and answers in plain text. The body is
// empty when no intent recognized the query.
func QueryText(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger := startSpan(r, "query")
	defer span.End()

	res := classify(ctx, span, logger, r.URL.Query().Get("q"))

	handlers.WriteText(w, http.StatusOK, res.Answer)
}

// classify runs the classifier and records the outcome on every signal.
func classify(ctx context.Context, span trace.Span, logger *zap.Logger, q string) query.Result {
	span.SetAttributes(attribute.Int("query.length", len(q)))

	start := time.Now()
	res := query.Classify(q)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	intentAttr := attribute.String("intent", string(res.Intent))
	queryCounter.Add(ctx, 1, metric.WithAttributes(intentAttr))
	opsHistogram.Record(ctx, elapsed, metric.WithAttributes(attribute.String("operation", "query")))
	answerLength.Record(ctx, int64(len(res.Answer)), metric.WithAttributes(intentAttr))

	span.AddEvent("query.classified", trace.WithAttributes(
		intentAttr,
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(
		attribute.String("query.intent", string(res.Intent)),
		attribute.Bool("query.answered", res.Answered()),
	)
	span.SetStatus(codes.Ok, "")

	logger.Info("query answered",
		zap.String("intent", string(res.Intent)),
		zap.Bool("answered", res.Answered()),
		zap.Int("query_length", len(q)),
		zap.Int("answer_length", len(res.Answer)),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
		zap.Float64("duration_ms", elapsed),
	)

	return res
}

// ---------------------------------------------------------------------------
// Handlers — direct calculator access
// ---------------------------------------------------------------------------

// Evaluate handles POST /calculator/evaluate. Malformed expressions and
// division by zero are rejected with 400 and the matching sentinel text.
func Evaluate(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger := startSpan(r, "evaluate")
	defer span.End()

	var req EvaluateRequest
	if err := decode(w, r, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "evaluate", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.String("calculator.expression", req.Expression))

	start := time.Now()
	value, err := query.Evaluate(req.Expression)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	if err != nil {
		msg := query.CannotEvaluate
		if errors.Is(err, query.ErrDivideByZero) {
			msg = query.CannotDivide
		}
		observability.RecordError(ctx, span, logger, errorCounter, "evaluate", msg, err, http.StatusBadRequest, w)
		return
	}

	result := query.FormatRat(value)
	complete(ctx, span, logger, "evaluate", result, elapsed,
		zap.String("expression", req.Expression),
	)

	handlers.WriteJSON(w, http.StatusOK, EvaluateResponse{
		Expression: req.Expression,
		Result:     result,
	})
}

// Power handles POST /calculator/power.
func Power(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger := startSpan(r, "power")
	defer span.End()

	var req PowerRequest
	if err := decode(w, r, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "power", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	base, okBase := parseOperand(req.Base)
	exponent, okExp := parseOperand(req.Exponent)
	if !okBase || !okExp {
		observability.RecordError(ctx, span, logger, errorCounter, "power", "invalid numeric input",
			fmt.Errorf("base=%q exponent=%q", req.Base, req.Exponent), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.String("calculator.operand.base", req.Base),
		attribute.String("calculator.operand.exponent", req.Exponent),
	)

	start := time.Now()
	result := query.Power(base, exponent)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	complete(ctx, span, logger, "power", result, elapsed,
		zap.String("base", req.Base),
		zap.String("exponent", req.Exponent),
	)

	handlers.WriteJSON(w, http.StatusOK, PowerResponse{
		Base:     req.Base,
		Exponent: req.Exponent,
		Result:   result,
	})
}

// ---------------------------------------------------------------------------
// Shared plumbing
// ---------------------------------------------------------------------------

// startSpan opens the operation's child span and returns a trace-correlated
// logger for it.
func startSpan(r *http.Request, opName string) (context.Context, trace.Span, *zap.Logger) {
	ctx, span := tracer.Start(r.Context(), fmt.Sprintf("answer.%s", opName),
		trace.WithAttributes(
			attribute.String("answer.operation", opName),
			attribute.String("request.id", observability.RequestIDFromContext(r.Context())),
		),
	)
	return ctx, span, observability.LoggerWithTrace(ctx)
}

func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// parseOperand accepts non-negative decimal integers only.
func parseOperand(s string) (*big.Int, bool) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() < 0 {
		return nil, false
	}
	return n, true
}

// complete records a successful calculator operation.
func complete(ctx context.Context, span trace.Span, logger *zap.Logger, opName, result string, elapsed float64, fields ...zap.Field) {
	attrs := metric.WithAttributes(attribute.String("operation", opName))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Int("result_length", len(result)),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator operation completed", append(fields,
		zap.String("operation", opName),
		zap.Int("result_length", len(result)),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
		zap.Float64("duration_ms", elapsed),
	)...)
}

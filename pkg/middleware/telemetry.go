package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/chris/in-memory-ledger/pkg/middleware"

// Telemetry holds the instruments recorded for every request.
type Telemetry struct {
	Tracer   trace.Tracer
	Requests metric.Int64Counter
	Duration metric.Float64Histogram
}

// NewTelemetry builds request instrumentation from the given providers.
// Nil providers fall back to the global ones, which are no-ops until an SDK is installed.
func NewTelemetry(tp trace.TracerProvider, mp metric.MeterProvider) (*Telemetry, error) {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(instrumentationName)

	requests, err := meter.Int64Counter("ledger.http.requests",
		metric.WithDescription("Total number of HTTP requests served"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram("ledger.http.duration",
		metric.WithDescription("HTTP request duration in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500),
	)
	if err != nil {
		return nil, err
	}

	return &Telemetry{
		Tracer:   tp.Tracer(instrumentationName),
		Requests: requests,
		Duration: duration,
	}, nil
}

// Middleware starts a span per request and records the request count and duration.
// Routes are labelled by their chi pattern so account IDs do not explode cardinality.
func (t *Telemetry) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx, span := t.Tracer.Start(r.Context(), r.Method+" "+r.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
		)
		defer span.End()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		r = r.WithContext(ctx)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		attrs := []attribute.KeyValue{
			attribute.String("http.request.method", r.Method),
			attribute.String("http.route", route),
			attribute.Int("http.response.status_code", status),
		}
		span.SetName(r.Method + " " + route)
		span.SetAttributes(attrs...)
		if status >= 500 {
			span.SetStatus(codes.Error, http.StatusText(status))
		}

		opt := metric.WithAttributes(attrs...)
		t.Requests.Add(ctx, 1, opt)
		t.Duration.Record(ctx, float64(time.Since(start).Microseconds())/1000, opt)
	})
}

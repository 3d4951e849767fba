package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/otpgate/otpgate/internal/pkg/instrument"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	err    error
}

func (sr *statusRecorder) WriteHeader(code int) {
	if sr.status == 0 {
		sr.status = code
	}
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if sr.status == 0 {
		sr.status = http.StatusOK
	}
	return sr.ResponseWriter.Write(b)
}

// SetError records the handler error so the middleware can attach it to the span.
func (sr *statusRecorder) SetError(err error) {
	sr.err = err
}

func middlewareObservability(ins instrument.Instrumentation) Middleware {
	tracer := ins.Tracer("router")
	meter := ins.Meter("router")

	reqCount, _ := meter.Int64Counter("http.server.request.count")
	reqLatency, _ := meter.Float64Histogram("http.server.request.duration",
		metric.WithUnit("ms"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := matchedRoutePath(r)

			ctx, span := tracer.Start(r.Context(), r.Method+" "+route,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					semconv.HTTPRequestMethodKey.String(r.Method),
					semconv.HTTPRoute(route),
				),
			)
			defer span.End()

			sr := &statusRecorder{ResponseWriter: w}
			start := time.Now()

			next.ServeHTTP(sr, r.WithContext(ctx))

			elapsed := time.Since(start)
			if sr.status == 0 {
				sr.status = http.StatusOK
			}

			attrs := metric.WithAttributes(
				semconv.HTTPRequestMethodKey.String(r.Method),
				semconv.HTTPRoute(route),
				semconv.HTTPResponseStatusCode(sr.status),
			)
			reqCount.Add(ctx, 1, attrs)
			reqLatency.Record(ctx, float64(elapsed.Milliseconds()), attrs)

			span.SetAttributes(attribute.Int("http.response.status_code", sr.status))
			if sr.err != nil && sr.status >= http.StatusInternalServerError {
				span.RecordError(sr.err)
				span.SetStatus(codes.Error, sr.err.Error())
			}

			slog.InfoContext(ctx, "http request handled",
				"method", r.Method,
				"route", route,
				"status", sr.status,
				"elapsed_ms", elapsed.Milliseconds(),
			)
		})
	}
}

package middleware

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/edulens/edulens-api/internal/api/shared"
	"github.com/edulens/edulens-api/internal/platform/logger"
)

// TraceHeader carries the trace ID on requests and responses.
const TraceHeader = "X-Trace-ID"

// NewTraceMiddleware returns middleware that assigns every request a trace ID
// and stores a logger tagged with it in the request context. A well-formed
// UUID in the incoming X-Trace-ID header is reused so traces can span the
// site and the API.
//
// Apply it early in the chain so every later handler sees the trace ID.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if incoming := r.Header.Get(TraceHeader); incoming != "" {
				if _, err := uuid.Parse(incoming); err == nil {
					ctx = shared.WithTraceID(ctx, incoming)
				}
			}
			if shared.GetTraceID(ctx) == "" {
				ctx = shared.SetTraceID(ctx)
			}
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			w.Header().Set(TraceHeader, traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

package middleware

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/karolbystrek/Todo-Rails-Elite/internal/api/shared"
	"github.com/karolbystrek/Todo-Rails-Elite/internal/platform/logger"
)

// traceHeader is the response header carrying the request trace ID.
const traceHeader = "X-Trace-ID"

// Trace assigns each request a trace ID, propagated through the context
// and echoed in the response headers for log correlation. It also places
// a request-scoped logger carrying the trace ID into the context, which
// downstream layers pick up for their own log lines.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		w.Header().Set(traceHeader, traceID)

		ctx := shared.WithTraceID(r.Context(), traceID)
		ctx = logger.WithContext(ctx,
			logger.FromContext(ctx).With(slog.String("trace_id", traceID)))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

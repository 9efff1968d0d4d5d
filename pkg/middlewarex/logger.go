package middlewarex

import (
	"log/slog"
	"net/http"

	"airstats/pkg/contextx"
	"airstats/pkg/logx"
)

// Logger binds a request-scoped logger to the context. It expects TraceID
// (and optionally Canvas) to run before it.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID, err := contextx.TraceIDFromContext(ctx)
		if err != nil {
			logger(ctx).Error("contextx.TraceIDFromContext", logx.Error(err))
		}

		attrs := []any{
			logx.Stringer(logx.FieldTraceID, traceID),
			logx.Stringer(logx.FieldURL, r.URL),
			slog.String(logx.FieldHTTPMethod, r.Method),
			slog.String(logx.FieldIP, r.RemoteAddr),
		}

		if canvasID, err := contextx.CanvasIDFromContext(ctx); err == nil {
			attrs = append(attrs, logx.Stringer(logx.FieldCanvasID, canvasID))
		}

		ctx = contextx.WithLogger(ctx, logger(ctx).With(attrs...))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

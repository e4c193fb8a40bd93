package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// NewStructuredLogger is a custom middleware that provides structured logging for requests.
// Server errors are logged at error level and rejected requests at warn.
func NewStructuredLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			start := time.Now()
			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}

				requestAttrs := slog.Group("request",
					slog.String("id", middleware.GetReqID(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("remote_addr", r.RemoteAddr),
				)

				responseAttrs := slog.Group("response",
					slog.Int("status", status),
					slog.Int("bytes", ww.BytesWritten()),
					slog.String("latency", time.Since(start).String()),
				)

				switch {
				case status >= 500:
					logger.ErrorContext(r.Context(), "server error", requestAttrs, responseAttrs)
				case status >= 400:
					logger.WarnContext(r.Context(), "request rejected", requestAttrs, responseAttrs)
				default:
					logger.InfoContext(r.Context(), "request completed", requestAttrs, responseAttrs)
				}
			}()

			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}

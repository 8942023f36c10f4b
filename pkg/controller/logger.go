package controller

import (
	"context"
	"foodgram/pkg/logger"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-Id"

// ClientIP returns the address of the client behind the nginx gateway. The
// gateway appends to X-Forwarded-For, so the first entry is the client.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

// RequestID returns the id WithLogger assigned to the request.
func RequestID(ctx context.Context) string {
	return middleware.GetReqID(ctx)
}

// statusOf treats a handler that never wrote a header as 200.
func statusOf(ww middleware.WrapResponseWriter) int {
	if ww.Status() == 0 {
		return http.StatusOK
	}

	return ww.Status()
}

// WithLogger tags the request context with a request id (taken from
// X-Request-Id or generated) and a logger carrying it, writes one access log
// line per request and turns handler panics into a 500.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, requestID)
		ctx = logger.WithFields(ctx, zap.String("requestId", requestID))

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if p == http.ErrAbortHandler { //nolint: errorlint
				panic(p)
			}

			logger.Error(ctx, "panic while serving request", zap.Any("panic", p), zap.Stack("stack"))
			if ww.Status() == 0 {
				ww.Header().Set("Content-Type", "application/json")
				ww.WriteHeader(http.StatusInternalServerError)
				_, _ = ww.Write([]byte(`{"detail":"internal error"}`))
			}
		}()

		next.ServeHTTP(ww, r.WithContext(ctx))

		logger.Info(ctx, "request served",
			zap.String("method", r.Method),
			zap.String("url", r.URL.String()),
			zap.Int("status", statusOf(ww)),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("latency", time.Since(start)),
			zap.String("clientIp", ClientIP(r)),
			zap.String("userAgent", r.UserAgent()),
		)
	})
}

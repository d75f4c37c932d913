package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// contextKey тип ключей контекста запроса.
type contextKey string

// requestIDKey ключ идентификатора запроса в контексте.
const requestIDKey contextKey = "requestID"

// requestIDHeader заголовок, в котором идентификатор запроса
// принимается от клиента и возвращается ему.
const requestIDHeader = "X-Request-Id"

// Middleware содержит сквозные обработчики HTTP запросов.
type Middleware struct {
	logger *slog.Logger
}

// NewMiddleware создает Middleware.
func NewMiddleware(logger *slog.Logger) *Middleware {
	return &Middleware{logger: logger}
}

// RequestID присваивает каждому запросу идентификатор, кладет его в
// контекст и дублирует в заголовке ответа.
func (m *Middleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// statusRecorder запоминает код ответа для логирования.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// AccessLog логирует каждый запрос с кодом ответа и длительностью обработки.
func (m *Middleware) AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		requestID, _ := r.Context().Value(requestIDKey).(string)
		m.logger.InfoContext(r.Context(), "request handled",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)),
			slog.String("requestID", requestID),
		)
	})
}

// Recovery перехватывает панику в обработчике и возвращает 500
// с нейтральным сообщением без внутренних деталей.
func (m *Middleware) Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				m.logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("panic", rec),
					slog.String("path", r.URL.Path),
				)
				respondJSON(w, r, m.logger, http.StatusInternalServerError, ErrorResponse{
					Error:   errCategoryInternal,
					Message: "an unexpected error occurred",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

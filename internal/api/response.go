package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/k1zexxx/java-filmorate/internal/domain"
)

// Категории ошибок в теле ответа.
const (
	errCategoryValidation = "validation error"
	errCategoryNotFound   = "not found"
	errCategoryInternal   = "internal server error"
)

// ErrorResponse тело ответа при ошибке.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			logger.ErrorContext(r.Context(), "failed to encode JSON response", slog.String("error", err.Error()), slog.String("path", r.URL.Path))
		}
	}
}

// respondError отображает виды ошибок в HTTP статусы. Сообщения
// ValidationError и NotFoundError передаются клиенту без изменений,
// остальные ошибки скрываются за нейтральным сообщением.
func respondError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var validationErr *domain.ValidationError
	var notFoundErr *domain.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		respondJSON(w, r, logger, http.StatusBadRequest, ErrorResponse{Error: errCategoryValidation, Message: validationErr.Message})
	case errors.As(err, &notFoundErr):
		respondJSON(w, r, logger, http.StatusNotFound, ErrorResponse{Error: errCategoryNotFound, Message: notFoundErr.Message})
	default:
		logger.ErrorContext(r.Context(), "unexpected error", slog.String("error", err.Error()), slog.String("path", r.URL.Path))
		respondJSON(w, r, logger, http.StatusInternalServerError, ErrorResponse{Error: errCategoryInternal, Message: "an unexpected error occurred"})
	}
}

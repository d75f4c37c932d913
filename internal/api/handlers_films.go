package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/k1zexxx/java-filmorate/internal/domain"
	"github.com/k1zexxx/java-filmorate/internal/service"
)

// FilmHandler обрабатывает HTTP запросы к фильмам.
type FilmHandler struct {
	service *service.FilmService
	logger  *slog.Logger
}

// NewFilmHandler создает FilmHandler.
func NewFilmHandler(s *service.FilmService, logger *slog.Logger) *FilmHandler {
	return &FilmHandler{service: s, logger: logger}
}

// FindAll обрабатывает GET /films.
func (h *FilmHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	films, err := h.service.FindAll(r.Context())
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, r, h.logger, http.StatusOK, films)
}

// Create обрабатывает POST /films.
func (h *FilmHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var film domain.Film
	if err := json.NewDecoder(r.Body).Decode(&film); err != nil {
		h.logger.WarnContext(ctx, "failed to decode film body", slog.String("error", err.Error()))
		respondError(w, r, h.logger, domain.NewValidationError("invalid request body: %s", err.Error()))
		return
	}
	defer r.Body.Close()

	created, err := h.service.Create(ctx, &film)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, r, h.logger, http.StatusOK, created)
}

// Update обрабатывает PUT /films. Идентификатор приходит в теле запроса.
func (h *FilmHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var film domain.Film
	if err := json.NewDecoder(r.Body).Decode(&film); err != nil {
		h.logger.WarnContext(ctx, "failed to decode film body", slog.String("error", err.Error()))
		respondError(w, r, h.logger, domain.NewValidationError("invalid request body: %s", err.Error()))
		return
	}
	defer r.Body.Close()

	updated, err := h.service.Update(ctx, &film)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, r, h.logger, http.StatusOK, updated)
}

// GetByID обрабатывает GET /films/{id}.
func (h *FilmHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	film, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, r, h.logger, http.StatusOK, film)
}

// AddLike обрабатывает PUT /films/{id}/like/{userId}.
func (h *FilmHandler) AddLike(w http.ResponseWriter, r *http.Request) {
	filmID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	userID, err := pathID(r, "userId")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	if err := h.service.AddLike(r.Context(), filmID, userID); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, r, h.logger, http.StatusOK, nil)
}

// RemoveLike обрабатывает DELETE /films/{id}/like/{userId}.
func (h *FilmHandler) RemoveLike(w http.ResponseWriter, r *http.Request) {
	filmID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	userID, err := pathID(r, "userId")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	if err := h.service.RemoveLike(r.Context(), filmID, userID); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, r, h.logger, http.StatusOK, nil)
}

// GetPopular обрабатывает GET /films/popular?count=N.
// Отсутствующий или нечисловой параметр count трактуется как нулевой,
// значение по умолчанию подставляет сервис.
func (h *FilmHandler) GetPopular(w http.ResponseWriter, r *http.Request) {
	count, _ := strconv.Atoi(r.URL.Query().Get("count"))

	films, err := h.service.GetPopularFilms(r.Context(), count)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, r, h.logger, http.StatusOK, films)
}

// pathID извлекает числовой идентификатор из переменной пути.
func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError("invalid value %q for path parameter %s", raw, name)
	}
	return id, nil
}

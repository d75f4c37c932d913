package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/k1zexxx/java-filmorate/internal/domain"
	"github.com/k1zexxx/java-filmorate/internal/service"
)

// UserHandler обрабатывает HTTP запросы к пользователям и дружбе.
type UserHandler struct {
	service *service.UserService
	logger  *slog.Logger
}

// NewUserHandler создает UserHandler.
func NewUserHandler(s *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{service: s, logger: logger}
}

// FindAll обрабатывает GET /users.
func (h *UserHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.FindAll(r.Context())
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, r, h.logger, http.StatusOK, users)
}

// Create обрабатывает POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var user domain.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		h.logger.WarnContext(ctx, "failed to decode user body", slog.String("error", err.Error()))
		respondError(w, r, h.logger, domain.NewValidationError("invalid request body: %s", err.Error()))
		return
	}
	defer r.Body.Close()

	created, err := h.service.Create(ctx, &user)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, r, h.logger, http.StatusOK, created)
}

// Update обрабатывает PUT /users. Идентификатор приходит в теле запроса.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var user domain.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		h.logger.WarnContext(ctx, "failed to decode user body", slog.String("error", err.Error()))
		respondError(w, r, h.logger, domain.NewValidationError("invalid request body: %s", err.Error()))
		return
	}
	defer r.Body.Close()

	updated, err := h.service.Update(ctx, &user)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, r, h.logger, http.StatusOK, updated)
}

// GetByID обрабатывает GET /users/{id}.
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, r, h.logger, http.StatusOK, user)
}

// AddFriend обрабатывает PUT /users/{id}/friends/{friendId}.
func (h *UserHandler) AddFriend(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	friendID, err := pathID(r, "friendId")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	if err := h.service.AddFriend(r.Context(), userID, friendID); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, r, h.logger, http.StatusOK, nil)
}

// RemoveFriend обрабатывает DELETE /users/{id}/friends/{friendId}.
func (h *UserHandler) RemoveFriend(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	friendID, err := pathID(r, "friendId")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	if err := h.service.RemoveFriend(r.Context(), userID, friendID); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, r, h.logger, http.StatusOK, nil)
}

// GetFriends обрабатывает GET /users/{id}/friends.
func (h *UserHandler) GetFriends(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	friends, err := h.service.GetFriends(r.Context(), userID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, r, h.logger, http.StatusOK, friends)
}

// GetCommonFriends обрабатывает GET /users/{id}/friends/common/{otherId}.
func (h *UserHandler) GetCommonFriends(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	otherID, err := pathID(r, "otherId")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	common, err := h.service.GetCommonFriends(r.Context(), userID, otherID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, r, h.logger, http.StatusOK, common)
}

package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter создает и настраивает HTTP маршрутизатор сервиса.
func NewRouter(films *FilmHandler, users *UserHandler, mw *Middleware) *mux.Router {
	router := mux.NewRouter()
	router.Use(mw.RequestID, mw.AccessLog, mw.Recovery)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	// Эндпоинты фильмов. /popular регистрируется раньше /{id},
	// чтобы слово popular не разбиралось как идентификатор.
	filmsRouter := router.PathPrefix("/films").Subrouter()
	filmsRouter.HandleFunc("", films.FindAll).Methods(http.MethodGet)
	filmsRouter.HandleFunc("", films.Create).Methods(http.MethodPost)
	filmsRouter.HandleFunc("", films.Update).Methods(http.MethodPut)
	filmsRouter.HandleFunc("/popular", films.GetPopular).Methods(http.MethodGet)
	filmsRouter.HandleFunc("/{id}", films.GetByID).Methods(http.MethodGet)
	filmsRouter.HandleFunc("/{id}/like/{userId}", films.AddLike).Methods(http.MethodPut)
	filmsRouter.HandleFunc("/{id}/like/{userId}", films.RemoveLike).Methods(http.MethodDelete)

	// Эндпоинты пользователей и дружбы.
	usersRouter := router.PathPrefix("/users").Subrouter()
	usersRouter.HandleFunc("", users.FindAll).Methods(http.MethodGet)
	usersRouter.HandleFunc("", users.Create).Methods(http.MethodPost)
	usersRouter.HandleFunc("", users.Update).Methods(http.MethodPut)
	usersRouter.HandleFunc("/{id}", users.GetByID).Methods(http.MethodGet)
	usersRouter.HandleFunc("/{id}/friends", users.GetFriends).Methods(http.MethodGet)
	usersRouter.HandleFunc("/{id}/friends/common/{otherId}", users.GetCommonFriends).Methods(http.MethodGet)
	usersRouter.HandleFunc("/{id}/friends/{friendId}", users.AddFriend).Methods(http.MethodPut)
	usersRouter.HandleFunc("/{id}/friends/{friendId}", users.RemoveFriend).Methods(http.MethodDelete)

	return router
}

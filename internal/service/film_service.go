package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/k1zexxx/java-filmorate/internal/domain"
	"github.com/k1zexxx/java-filmorate/internal/store"
)

// defaultPopularCount размер выборки популярных фильмов по умолчанию.
const defaultPopularCount = 10

// FilmService реализует сценарии работы с фильмами и лайками.
// Хранилище пользователей нужно только для проверки существования
// пользователя при установке и снятии лайка.
type FilmService struct {
	films     store.FilmStore
	users     store.UserStore
	likes     *store.RelationIndex
	validator *Validator
	logger    *slog.Logger
}

// NewFilmService создает FilmService.
func NewFilmService(films store.FilmStore, users store.UserStore, likes *store.RelationIndex, validator *Validator, logger *slog.Logger) *FilmService {
	return &FilmService{
		films:     films,
		users:     users,
		likes:     likes,
		validator: validator,
		logger:    logger,
	}
}

// FindAll возвращает все фильмы.
func (s *FilmService) FindAll(ctx context.Context) ([]*domain.Film, error) {
	return s.films.FindAll(ctx)
}

// Create проверяет и сохраняет новый фильм.
func (s *FilmService) Create(ctx context.Context, film *domain.Film) (*domain.Film, error) {
	if err := s.validator.ValidateFilm(film); err != nil {
		return nil, err
	}
	created, err := s.films.Create(ctx, film)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "film created", slog.Int64("filmID", created.ID), slog.String("name", created.Name))
	return created, nil
}

// Update проверяет и целиком заменяет существующий фильм.
func (s *FilmService) Update(ctx context.Context, film *domain.Film) (*domain.Film, error) {
	if err := s.validator.ValidateFilm(film); err != nil {
		return nil, err
	}
	if err := s.requireFilmExists(ctx, film.ID); err != nil {
		return nil, err
	}
	updated, err := s.films.Update(ctx, film)
	if err != nil {
		if errors.Is(err, store.ErrFilmNotFound) {
			return nil, domain.NewNotFoundError("film with id %d not found", film.ID)
		}
		return nil, err
	}
	s.logger.InfoContext(ctx, "film updated", slog.Int64("filmID", updated.ID))
	return updated, nil
}

// GetByID возвращает фильм по идентификатору.
func (s *FilmService) GetByID(ctx context.Context, id int64) (*domain.Film, error) {
	film, err := s.films.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrFilmNotFound) {
			return nil, domain.NewNotFoundError("film with id %d not found", id)
		}
		return nil, err
	}
	return film, nil
}

// AddLike добавляет фильму лайк пользователя.
// Повторный лайк не меняет состояние и не является ошибкой.
func (s *FilmService) AddLike(ctx context.Context, filmID, userID int64) error {
	if err := s.requireFilmExists(ctx, filmID); err != nil {
		return err
	}
	if err := s.requireUserExists(ctx, userID); err != nil {
		return err
	}
	s.likes.Add(filmID, userID)
	s.logger.InfoContext(ctx, "like added", slog.Int64("filmID", filmID), slog.Int64("userID", userID))
	return nil
}

// RemoveLike снимает лайк пользователя с фильма. Отсутствующий лайк
// является ошибкой, в отличие от лояльного удаления дружбы.
func (s *FilmService) RemoveLike(ctx context.Context, filmID, userID int64) error {
	if err := s.requireFilmExists(ctx, filmID); err != nil {
		return err
	}
	if err := s.requireUserExists(ctx, userID); err != nil {
		return err
	}
	if !s.likes.Contains(filmID, userID) {
		return domain.NewNotFoundError("like from user %d on film %d not found", userID, filmID)
	}
	s.likes.Remove(filmID, userID)
	s.logger.InfoContext(ctx, "like removed", slog.Int64("filmID", filmID), slog.Int64("userID", userID))
	return nil
}

// GetPopularFilms возвращает count фильмов с наибольшим числом лайков.
// Для count <= 0 используется значение по умолчанию. Фильмы без лайков
// участвуют в ранжировании с нулевым счетом.
func (s *FilmService) GetPopularFilms(ctx context.Context, count int) ([]*domain.Film, error) {
	if count <= 0 {
		count = defaultPopularCount
	}
	films, err := s.films.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(films, func(i, j int) bool {
		return s.likes.Count(films[i].ID) > s.likes.Count(films[j].ID)
	})
	if count > len(films) {
		count = len(films)
	}
	return films[:count], nil
}

func (s *FilmService) requireFilmExists(ctx context.Context, filmID int64) error {
	if _, err := s.films.FindByID(ctx, filmID); err != nil {
		if errors.Is(err, store.ErrFilmNotFound) {
			return domain.NewNotFoundError("film with id %d not found", filmID)
		}
		return err
	}
	return nil
}

func (s *FilmService) requireUserExists(ctx context.Context, userID int64) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return domain.NewNotFoundError("user with id %d not found", userID)
		}
		return err
	}
	return nil
}

package store

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/k1zexxx/java-filmorate/internal/domain"
)

// Кастомные ошибки хранилища фильмов.
var ErrFilmNotFound = errors.New("film not found")

// FilmStore определяет интерфейс для операций с данными фильмов.
// Валидация выполняется сервисным слоем до обращения к хранилищу.
type FilmStore interface {
	FindAll(ctx context.Context) ([]*domain.Film, error)
	Create(ctx context.Context, film *domain.Film) (*domain.Film, error)
	Update(ctx context.Context, film *domain.Film) (*domain.Film, error)
	FindByID(ctx context.Context, id int64) (*domain.Film, error)
}

// InMemoryFilmStore хранит фильмы в памяти процесса.
// Доступ к карте и счетчику идентификаторов сериализуется мьютексом.
type InMemoryFilmStore struct {
	mu     sync.RWMutex
	films  map[int64]*domain.Film
	nextID int64
}

// NewInMemoryFilmStore создает новый экземпляр InMemoryFilmStore.
func NewInMemoryFilmStore() *InMemoryFilmStore {
	return &InMemoryFilmStore{films: make(map[int64]*domain.Film)}
}

// FindAll возвращает копии всех фильмов, упорядоченные по идентификатору.
func (s *InMemoryFilmStore) FindAll(ctx context.Context) ([]*domain.Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	films := make([]*domain.Film, 0, len(s.films))
	for _, film := range s.films {
		filmCopy := *film
		films = append(films, &filmCopy)
	}
	sort.Slice(films, func(i, j int) bool { return films[i].ID < films[j].ID })
	return films, nil
}

// Create присваивает фильму следующий идентификатор и сохраняет его.
func (s *InMemoryFilmStore) Create(ctx context.Context, film *domain.Film) (*domain.Film, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	film.ID = s.nextID

	// Сохраняем копию, чтобы запись нельзя было изменить извне через указатель.
	filmCopy := *film
	s.films[filmCopy.ID] = &filmCopy
	return film, nil
}

// Update заменяет существующую запись целиком.
func (s *InMemoryFilmStore) Update(ctx context.Context, film *domain.Film) (*domain.Film, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.films[film.ID]; !ok {
		return nil, ErrFilmNotFound
	}
	filmCopy := *film
	s.films[filmCopy.ID] = &filmCopy
	return film, nil
}

// FindByID возвращает копию фильма по идентификатору.
func (s *InMemoryFilmStore) FindByID(ctx context.Context, id int64) (*domain.Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	film, ok := s.films[id]
	if !ok {
		return nil, ErrFilmNotFound
	}
	filmCopy := *film
	return &filmCopy, nil
}

package store

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/k1zexxx/java-filmorate/internal/domain"
)

// Кастомные ошибки хранилища пользователей.
var ErrUserNotFound = errors.New("user not found")

// UserStore определяет интерфейс для операций с данными пользователей.
type UserStore interface {
	FindAll(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

// InMemoryUserStore хранит пользователей в памяти процесса.
type InMemoryUserStore struct {
	mu     sync.RWMutex
	users  map[int64]*domain.User
	nextID int64
}

// NewInMemoryUserStore создает новый экземпляр InMemoryUserStore.
func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{users: make(map[int64]*domain.User)}
}

// FindAll возвращает копии всех пользователей, упорядоченные по идентификатору.
func (s *InMemoryUserStore) FindAll(ctx context.Context) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*domain.User, 0, len(s.users))
	for _, user := range s.users {
		userCopy := *user
		users = append(users, &userCopy)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// Create присваивает пользователю следующий идентификатор и сохраняет его.
func (s *InMemoryUserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	user.ID = s.nextID

	userCopy := *user
	s.users[userCopy.ID] = &userCopy
	return user, nil
}

// Update заменяет существующую запись целиком.
func (s *InMemoryUserStore) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return nil, ErrUserNotFound
	}
	userCopy := *user
	s.users[userCopy.ID] = &userCopy
	return user, nil
}

// FindByID возвращает копию пользователя по идентификатору.
func (s *InMemoryUserStore) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	userCopy := *user
	return &userCopy, nil
}

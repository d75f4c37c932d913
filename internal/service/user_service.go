package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/k1zexxx/java-filmorate/internal/domain"
	"github.com/k1zexxx/java-filmorate/internal/store"
)

// UserService реализует сценарии работы с пользователями и дружбой.
// Дружба взаимная: каждая мутация выполняется в обе стороны, так что
// индекс всегда симметричен.
type UserService struct {
	users     store.UserStore
	friends   *store.RelationIndex
	validator *Validator
	logger    *slog.Logger
}

// NewUserService создает UserService.
func NewUserService(users store.UserStore, friends *store.RelationIndex, validator *Validator, logger *slog.Logger) *UserService {
	return &UserService{
		users:     users,
		friends:   friends,
		validator: validator,
		logger:    logger,
	}
}

// FindAll возвращает всех пользователей.
func (s *UserService) FindAll(ctx context.Context) ([]*domain.User, error) {
	return s.users.FindAll(ctx)
}

// Create проверяет и сохраняет нового пользователя.
// Множество друзей создается сразу, а не лениво.
func (s *UserService) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := s.validator.ValidateUser(user); err != nil {
		return nil, err
	}
	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	s.friends.Init(created.ID)
	s.logger.InfoContext(ctx, "user created", slog.Int64("userID", created.ID), slog.String("login", created.Login))
	return created, nil
}

// Update проверяет и целиком заменяет существующего пользователя.
func (s *UserService) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := s.validator.ValidateUser(user); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateID(user.ID); err != nil {
		return nil, err
	}
	if err := s.requireUserExists(ctx, user.ID); err != nil {
		return nil, err
	}
	updated, err := s.users.Update(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, domain.NewNotFoundError("user with id %d not found", user.ID)
		}
		return nil, err
	}
	s.logger.InfoContext(ctx, "user updated", slog.Int64("userID", updated.ID))
	return updated, nil
}

// GetByID возвращает пользователя по идентификатору.
func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if err := s.validator.ValidateID(id); err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, domain.NewNotFoundError("user with id %d not found", id)
		}
		return nil, err
	}
	return user, nil
}

// AddFriend добавляет взаимную дружбу между двумя пользователями.
// Если хотя бы один из них не найден, состояние не меняется.
func (s *UserService) AddFriend(ctx context.Context, userID, friendID int64) error {
	if err := s.requireUserExists(ctx, userID); err != nil {
		return err
	}
	if err := s.requireUserExists(ctx, friendID); err != nil {
		return err
	}
	s.friends.Add(userID, friendID)
	s.friends.Add(friendID, userID)
	s.logger.InfoContext(ctx, "friend added", slog.Int64("userID", userID), slog.Int64("friendID", friendID))
	return nil
}

// RemoveFriend удаляет взаимную дружбу в обе стороны.
// Удаление несуществующей дружбы не является ошибкой.
func (s *UserService) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	if err := s.requireUserExists(ctx, userID); err != nil {
		return err
	}
	if err := s.requireUserExists(ctx, friendID); err != nil {
		return err
	}
	s.friends.Remove(userID, friendID)
	s.friends.Remove(friendID, userID)
	s.logger.InfoContext(ctx, "friend removed", slog.Int64("userID", userID), slog.Int64("friendID", friendID))
	return nil
}

// GetFriends возвращает полные записи всех друзей пользователя.
func (s *UserService) GetFriends(ctx context.Context, userID int64) ([]*domain.User, error) {
	if err := s.requireUserExists(ctx, userID); err != nil {
		return nil, err
	}
	ids := s.friends.Get(userID)
	friends := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		friend, err := s.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		friends = append(friends, friend)
	}
	return friends, nil
}

// GetCommonFriends возвращает пересечение множеств друзей двух пользователей.
func (s *UserService) GetCommonFriends(ctx context.Context, userID, otherID int64) ([]*domain.User, error) {
	if err := s.requireUserExists(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.requireUserExists(ctx, otherID); err != nil {
		return nil, err
	}

	otherFriends := make(map[int64]struct{})
	for _, id := range s.friends.Get(otherID) {
		otherFriends[id] = struct{}{}
	}

	common := make([]*domain.User, 0)
	for _, id := range s.friends.Get(userID) {
		if _, ok := otherFriends[id]; !ok {
			continue
		}
		friend, err := s.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		common = append(common, friend)
	}
	return common, nil
}

func (s *UserService) requireUserExists(ctx context.Context, userID int64) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return domain.NewNotFoundError("user with id %d not found", userID)
		}
		return err
	}
	return nil
}

package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k1zexxx/java-filmorate/internal/domain"
	"github.com/k1zexxx/java-filmorate/internal/store"
)

type filmFixture struct {
	films *FilmService
	users *UserService
}

func newFilmFixture() *filmFixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	filmStore := store.NewInMemoryFilmStore()
	userStore := store.NewInMemoryUserStore()
	validator := NewValidator()
	return &filmFixture{
		films: NewFilmService(filmStore, userStore, store.NewRelationIndex(), validator, logger),
		users: NewUserService(userStore, store.NewRelationIndex(), validator, logger),
	}
}

func (f *filmFixture) createFilm(t *testing.T, name string) *domain.Film {
	t.Helper()
	date := domain.NewDate(1999, time.March, 31)
	film, err := f.films.Create(context.Background(), &domain.Film{
		Name:        name,
		ReleaseDate: &date,
		Duration:    136,
	})
	require.NoError(t, err)
	return film
}

func (f *filmFixture) createUser(t *testing.T, login string) *domain.User {
	t.Helper()
	user, err := f.users.Create(context.Background(), &domain.User{
		Email: login + "@example.com",
		Login: login,
	})
	require.NoError(t, err)
	return user
}

func TestFilmCreateAssignsSequentialIDs(t *testing.T) {
	f := newFilmFixture()

	matrix := f.createFilm(t, "Matrix")
	assert.Equal(t, int64(1), matrix.ID)

	second := f.createFilm(t, "Matrix Reloaded")
	assert.Equal(t, int64(2), second.ID)
}

func TestFilmCreateInvalid(t *testing.T) {
	f := newFilmFixture()
	_, err := f.films.Create(context.Background(), &domain.Film{Name: ""})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestFilmUpdate(t *testing.T) {
	f := newFilmFixture()
	film := f.createFilm(t, "Matrix")

	film.Name = "The Matrix"
	updated, err := f.films.Update(context.Background(), film)
	require.NoError(t, err)
	assert.Equal(t, "The Matrix", updated.Name)

	fetched, err := f.films.GetByID(context.Background(), film.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Matrix", fetched.Name)
}

func TestFilmUpdateUnknownIsNotFound(t *testing.T) {
	f := newFilmFixture()
	date := domain.NewDate(2000, time.January, 1)
	_, err := f.films.Update(context.Background(), &domain.Film{
		ID:          99,
		Name:        "Ghost",
		ReleaseDate: &date,
		Duration:    100,
	})

	var notFoundErr *domain.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

// Для фильмов нулевой идентификатор выявляется поиском в хранилище,
// поэтому результатом является NotFoundError, а не ошибка валидации.
func TestFilmUpdateZeroIDIsNotFound(t *testing.T) {
	f := newFilmFixture()
	date := domain.NewDate(2000, time.January, 1)
	_, err := f.films.Update(context.Background(), &domain.Film{
		ID:          0,
		Name:        "Ghost",
		ReleaseDate: &date,
		Duration:    100,
	})

	var notFoundErr *domain.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestFilmGetByIDUnknown(t *testing.T) {
	f := newFilmFixture()
	_, err := f.films.GetByID(context.Background(), 42)

	var notFoundErr *domain.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "film with id 42 not found", notFoundErr.Message)
}

func TestAddLikeIdempotent(t *testing.T) {
	f := newFilmFixture()
	film := f.createFilm(t, "Matrix")
	user := f.createUser(t, "neo")
	ctx := context.Background()

	require.NoError(t, f.films.AddLike(ctx, film.ID, user.ID))
	require.NoError(t, f.films.AddLike(ctx, film.ID, user.ID))

	popular, err := f.films.GetPopularFilms(ctx, 10)
	require.NoError(t, err)
	require.Len(t, popular, 1)
}

func TestAddLikeUnknownFilmOrUser(t *testing.T) {
	f := newFilmFixture()
	film := f.createFilm(t, "Matrix")
	user := f.createUser(t, "neo")
	ctx := context.Background()

	var notFoundErr *domain.NotFoundError
	require.ErrorAs(t, f.films.AddLike(ctx, 99, user.ID), &notFoundErr)
	require.ErrorAs(t, f.films.AddLike(ctx, film.ID, 99), &notFoundErr)
}

func TestRemoveLikeNeverLikedFails(t *testing.T) {
	f := newFilmFixture()
	film := f.createFilm(t, "Matrix")
	user := f.createUser(t, "neo")

	err := f.films.RemoveLike(context.Background(), film.ID, user.ID)

	var notFoundErr *domain.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

// Повторное снятие лайка является ошибкой, в отличие от повторного
// удаления дружбы, которое молча игнорируется.
func TestRemoveLikeTwiceFails(t *testing.T) {
	f := newFilmFixture()
	film := f.createFilm(t, "Matrix")
	user := f.createUser(t, "neo")
	ctx := context.Background()

	require.NoError(t, f.films.AddLike(ctx, film.ID, user.ID))
	require.NoError(t, f.films.RemoveLike(ctx, film.ID, user.ID))

	err := f.films.RemoveLike(ctx, film.ID, user.ID)
	var notFoundErr *domain.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestGetPopularFilmsRanking(t *testing.T) {
	f := newFilmFixture()
	first := f.createFilm(t, "First")
	second := f.createFilm(t, "Second")
	third := f.createFilm(t, "Third")
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")
	ctx := context.Background()

	// second: два лайка, third: один, first: ни одного.
	require.NoError(t, f.films.AddLike(ctx, second.ID, alice.ID))
	require.NoError(t, f.films.AddLike(ctx, second.ID, bob.ID))
	require.NoError(t, f.films.AddLike(ctx, third.ID, alice.ID))

	popular, err := f.films.GetPopularFilms(ctx, 10)
	require.NoError(t, err)
	require.Len(t, popular, 3)
	assert.Equal(t, second.ID, popular[0].ID)
	assert.Equal(t, third.ID, popular[1].ID)
	assert.Equal(t, first.ID, popular[2].ID)
}

func TestGetPopularFilmsTruncation(t *testing.T) {
	f := newFilmFixture()
	f.createFilm(t, "First")
	winner := f.createFilm(t, "Second")
	user := f.createUser(t, "alice")
	ctx := context.Background()

	require.NoError(t, f.films.AddLike(ctx, winner.ID, user.ID))

	popular, err := f.films.GetPopularFilms(ctx, 1)
	require.NoError(t, err)
	require.Len(t, popular, 1)
	assert.Equal(t, winner.ID, popular[0].ID)

	popular, err = f.films.GetPopularFilms(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, popular, 2)
}

// Неположительный count заменяется на значение по умолчанию 10.
func TestGetPopularFilmsDefaultCount(t *testing.T) {
	f := newFilmFixture()
	for i := 0; i < 12; i++ {
		f.createFilm(t, "Film")
	}
	ctx := context.Background()

	byZero, err := f.films.GetPopularFilms(ctx, 0)
	require.NoError(t, err)
	byDefault, err := f.films.GetPopularFilms(ctx, 10)
	require.NoError(t, err)

	assert.Len(t, byZero, 10)
	assert.Equal(t, byDefault, byZero)
}

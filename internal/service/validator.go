package service

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/k1zexxx/java-filmorate/internal/domain"
)

// earliestReleaseDate день первого публичного киносеанса.
// Более ранние даты релиза недопустимы.
var earliestReleaseDate = domain.NewDate(1895, time.December, 28)

// Validator выполняет структурные проверки сущностей. Проверки
// выполняются в фиксированном порядке, наружу отдается только
// первая найденная ошибка.
type Validator struct {
	validate *validator.Validate
}

// NewValidator создает Validator с зарегистрированными дополнительными правилами.
func NewValidator() *Validator {
	v := validator.New()
	// notblank отклоняет пустые строки и строки из одних пробелов.
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return &Validator{validate: v}
}

// ValidateFilm проверяет корректность записи фильма.
func (val *Validator) ValidateFilm(film *domain.Film) error {
	if err := val.validate.Var(film.Name, "notblank"); err != nil {
		return domain.NewValidationError("film name must not be empty")
	}
	if err := val.validate.Var(film.Description, "omitempty,max=200"); err != nil {
		return domain.NewValidationError("film description must not exceed 200 characters")
	}
	if film.ReleaseDate == nil {
		return domain.NewValidationError("film release date is required")
	}
	if film.ReleaseDate.Before(earliestReleaseDate) {
		return domain.NewValidationError("film release date must not be before 1895-12-28")
	}
	if err := val.validate.Var(film.Duration, "gt=0"); err != nil {
		return domain.NewValidationError("film duration must be a positive number")
	}
	return nil
}

// ValidateUser проверяет корректность записи пользователя. Если после
// всех проверок имя не задано, оно заполняется логином: запись
// изменяется на месте, повторная валидация результата ничего не меняет.
func (val *Validator) ValidateUser(user *domain.User) error {
	if err := val.validate.Var(user.Email, "notblank"); err != nil {
		return domain.NewValidationError("email must not be empty")
	}
	if err := val.validate.Var(user.Email, "contains=@"); err != nil {
		return domain.NewValidationError("email must contain the @ character")
	}
	if err := val.validate.Var(user.Login, "notblank"); err != nil {
		return domain.NewValidationError("login must not be empty")
	}
	if err := val.validate.Var(user.Login, "excludesall=0x20"); err != nil {
		return domain.NewValidationError("login must not contain spaces")
	}
	if user.Birthday != nil && user.Birthday.After(time.Now()) {
		return domain.NewValidationError("birthday must not be in the future")
	}
	if strings.TrimSpace(user.Name) == "" {
		user.Name = user.Login
	}
	return nil
}

// ValidateID проверяет идентификатор, пришедший в теле запроса.
// Применяется на пути обновления пользователя; для фильмов
// некорректный идентификатор выявляется поиском в хранилище.
func (val *Validator) ValidateID(id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id must be a positive number")
	}
	return nil
}

package domain

import "fmt"

// ValidationError ошибка валидации входных данных. На транспортном
// уровне отображается в HTTP 400, сообщение передается без изменений.
type ValidationError struct {
	Message string
}

// NewValidationError создает ValidationError с форматированным сообщением.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError ссылка на несуществующий объект (фильм, пользователя,
// лайк). На транспортном уровне отображается в HTTP 404.
type NotFoundError struct {
	Message string
}

// NewNotFoundError создает NotFoundError с форматированным сообщением.
func NewNotFoundError(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

func (e *NotFoundError) Error() string { return e.Message }

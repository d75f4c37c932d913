package domain

// User представляет пользователя сервиса.
// Если имя не задано, при валидации оно заполняется логином.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Login    string `json:"login"`
	Name     string `json:"name"`
	Birthday *Date  `json:"birthday,omitempty"`
}

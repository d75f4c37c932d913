package domain

// Film представляет фильм в каталоге.
// Идентификатор присваивается хранилищем и после этого не меняется.
type Film struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ReleaseDate *Date  `json:"releaseDate"`
	Duration    int    `json:"duration"` // продолжительность в минутах
}

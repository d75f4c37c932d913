package domain

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout формат даты на проводе (ISO-8601, только дата).
const dateLayout = "2006-01-02"

// Date календарная дата без времени суток. В JSON сериализуется
// строкой вида "YYYY-MM-DD"; разбор выполняется один раз на границе.
type Date struct {
	t time.Time
}

// NewDate создает дату из года, месяца и дня.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate разбирает строку формата "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected format YYYY-MM-DD", s)
	}
	return Date{t: t}, nil
}

// Time возвращает дату как time.Time (полночь UTC).
func (d Date) Time() time.Time { return d.t }

// Before сообщает, предшествует ли дата d дате other.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// After сообщает, находится ли дата d после момента t.
func (d Date) After(t time.Time) bool { return d.t.After(t) }

// IsZero сообщает, задана ли дата.
func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) String() string { return d.t.Format(dateLayout) }

// MarshalJSON сериализует дату в строку "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.t.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON разбирает дату из строки "YYYY-MM-DD".
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

package types

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeString represents a wall-clock time in "HH:MM" format.
// Used for reservation hours instead of time.Time to avoid any
// timezone interpretation: the value is civil local time as-is.
type TimeString string

// NewTimeString создает TimeString из time.Time (только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что строка соответствует формату HH:MM
func (t TimeString) Validate() error {
	if t == "" {
		return fmt.Errorf("invalid time string format: empty string")
	}

	parts := strings.Split(string(t), ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return fmt.Errorf("invalid time string format: %q, expected HH:MM", string(t))
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return fmt.Errorf("invalid time string format: %q, hour out of range", string(t))
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return fmt.Errorf("invalid time string format: %q, minute out of range", string(t))
	}

	return nil
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// Hour возвращает целочисленный час (ведущие два символа)
// Ошибки формата должны быть отсечены Validate заранее; при
// некорректном значении возвращает -1
func (t TimeString) Hour() int {
	parts := strings.Split(string(t), ":")
	if len(parts) == 0 {
		return -1
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return -1
	}
	return hour
}

// ToMinutes возвращает количество минут с начала суток
func (t TimeString) ToMinutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	parts := strings.Split(string(t), ":")
	hour, _ := strconv.Atoi(parts[0])
	minute, _ := strconv.Atoi(parts[1])
	return hour*60 + minute, nil
}

// AddMinutes возвращает новый TimeString со сдвигом на minutes минут вперед
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.ToMinutes()
	if err != nil {
		return "", err
	}

	total += minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("time %q + %d minutes is out of day range", string(t), minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Scan реализует sql.Scanner для чтения из БД
func (t *TimeString) Scan(value interface{}) error {
	if value == nil {
		*t = ""
		return nil
	}

	switch v := value.(type) {
	case string:
		// Postgres TIME приходит как "HH:MM:SS" - обрезаем секунды
		if len(v) > 5 {
			v = v[:5]
		}
		*t = TimeString(v)
	case []byte:
		s := string(v)
		if len(s) > 5 {
			s = s[:5]
		}
		*t = TimeString(s)
	case time.Time:
		*t = NewTimeString(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeString", value)
	}

	return nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

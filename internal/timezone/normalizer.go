package timezone

import (
	"fmt"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Normalizer конвертирует моменты времени между таймзоной салона и хранилищем (UTC)
// Все человекочитаемые часы (открытие, обед, "сегодня") интерпретируются в таймзоне салона
type Normalizer struct {
	loc  *time.Location
	name string
}

// NewNormalizer создает Normalizer для указанной IANA таймзоны
// Неизвестная таймзона не является ошибкой: используется таймзона по умолчанию с предупреждением в логе
func NewNormalizer(tzName string, log Logger) *Normalizer {
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		if log != nil {
			log.Warn("timezone: unknown zone %q, falling back to %s: %v", tzName, domain.DefaultTimezone, err)
		}
		loc, err = time.LoadLocation(domain.DefaultTimezone)
		if err != nil {
			// Дефолтная зона есть в любой tzdata; UTC - последний рубеж
			loc = time.UTC
		}
		return &Normalizer{loc: loc, name: domain.DefaultTimezone}
	}
	return &Normalizer{loc: loc, name: tzName}
}

// Name возвращает имя фактически используемой таймзоны
func (n *Normalizer) Name() string {
	return n.name
}

// Location возвращает *time.Location таймзоны салона
func (n *Normalizer) Location() *time.Location {
	return n.loc
}

// ToBusinessTime представляет абсолютный момент как время в таймзоне салона
func (n *Normalizer) ToBusinessTime(t time.Time) time.Time {
	return t.In(n.loc)
}

// ToStorageTime приводит момент к UTC перед записью в хранилище
// Гарантируется round-trip: ToBusinessTime(ToStorageTime(x)) показывает те же стеночные часы
func (n *Normalizer) ToStorageTime(t time.Time) time.Time {
	return t.UTC()
}

// ParseBusinessDateTime строит абсолютный момент из даты "YYYY-MM-DD" и опционального времени "HH:MM",
// интерпретируя их как стеночное время в таймзоне салона
// Пустая строка времени означает полночь
func (n *Normalizer) ParseBusinessDateTime(dateStr, timeStr string) (time.Time, error) {
	layout := domain.DateFormat
	value := dateStr
	if timeStr != "" {
		layout = domain.DateFormat + " " + domain.TimeFormat
		value = dateStr + " " + timeStr
	}

	t, err := time.ParseInLocation(layout, value, n.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("timezone: parse %q: %w", value, err)
	}
	return t, nil
}

// StartOfDay возвращает момент 00:00:00.000 указанной даты в таймзоне салона
// Используется как нижняя граница диапазонных запросов к хранилищу
func (n *Normalizer) StartOfDay(date time.Time) time.Time {
	d := date.In(n.loc)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, n.loc)
}

// EndOfDay возвращает момент 23:59:59.999 указанной даты в таймзоне салона
func (n *Normalizer) EndOfDay(date time.Time) time.Time {
	d := date.In(n.loc)
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, int(999*time.Millisecond), n.loc)
}

// IsSameBusinessDay проверяет, что два момента приходятся на один календарный день в таймзоне салона
func (n *Normalizer) IsSameBusinessDay(a, b time.Time) bool {
	y1, m1, d1 := a.In(n.loc).Date()
	y2, m2, d2 := b.In(n.loc).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

package tracker

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultTimezone — часовой пояс, в котором бот ведёт учёт времени.
const DefaultTimezone = "Europe/Warsaw"

var clockTimeRe = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// ClockTime — время суток без даты, распознанное из текста пользователя.
type ClockTime struct {
	Hour   int
	Minute int
}

// At привязывает время суток к дате дня day в его часовом поясе.
func (c ClockTime) At(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour, c.Minute, 0, 0, day.Location())
}

// ParseClockTime разбирает токен вида "9:30" или "14:05". Возвращает nil,
// если токен не похож на время — тогда он считается частью названия активности.
func ParseClockTime(text string) *ClockTime {
	if !clockTimeRe.MatchString(text) {
		return nil
	}
	parsed, err := time.Parse("15:04", text)
	if err != nil {
		return nil
	}
	return &ClockTime{Hour: parsed.Hour(), Minute: parsed.Minute()}
}

// ParseStoredTimestamp собирает момент времени из ячеек даты и времени таблицы.
// Никогда не возвращает ошибку: при нечитаемых значениях подставляет текущие
// дату/время и сообщает об этом флагом usedDefault — решение о логировании
// остаётся за вызывающей стороной.
//
// Google Sheets может вернуть время и строкой ("14:30", "14:30:05"), и числом —
// долей суток (0.6875 = 16:30).
func ParseStoredTimestamp(dateCell, timeCell string, now time.Time) (instant time.Time, usedDefault bool) {
	loc := now.Location()
	dateRaw := strings.TrimSpace(dateCell)
	timeRaw := strings.TrimSpace(timeCell)

	day := now
	if dateRaw == "" {
		usedDefault = true
	} else if parsed, ok := parseDateCell(dateRaw, loc); ok {
		day = parsed
	} else {
		usedDefault = true
	}

	if timeRaw == "" {
		return now, true
	}

	if hour, minute, ok := parseDayFraction(timeRaw); ok {
		return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc), usedDefault
	}

	for _, layout := range []string{"15:04", "15:04:05"} {
		if parsed, err := time.Parse(layout, timeRaw); err == nil {
			return time.Date(day.Year(), day.Month(), day.Day(),
				parsed.Hour(), parsed.Minute(), parsed.Second(), 0, loc), usedDefault
		}
	}

	return now, true
}

func parseDateCell(raw string, loc *time.Location) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", "2006-01-02T15:04:05", time.RFC3339} {
		if parsed, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// parseDayFraction распознаёт числовое время-долю суток: значение в [0, 1)
// переводится в минуты от полуночи с округлением.
func parseDayFraction(raw string) (hour, minute int, ok bool) {
	if !strings.Contains(raw, ".") && !isAllDigits(raw) {
		return 0, 0, false
	}
	fraction, err := strconv.ParseFloat(raw, 64)
	if err != nil || fraction < 0 || fraction >= 1 {
		return 0, 0, false
	}
	totalMinutes := int(fraction*24*60 + 0.5)
	return totalMinutes / 60, totalMinutes % 60, true
}

func isAllDigits(raw string) bool {
	if raw == "" {
		return false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

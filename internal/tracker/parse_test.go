package tracker

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func warsaw(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(DefaultTimezone)
	require.NoError(t, err)
	return loc
}

func TestParseClockTime(t *testing.T) {
	valid := map[string]ClockTime{
		"09:00": {Hour: 9, Minute: 0},
		"9:30":  {Hour: 9, Minute: 30},
		"00:00": {Hour: 0, Minute: 0},
		"23:59": {Hour: 23, Minute: 59},
	}
	for input, want := range valid {
		got := ParseClockTime(input)
		require.NotNil(t, got, "input %q", input)
		assert.Equal(t, want, *got, "input %q", input)
	}

	invalid := []string{"", "gym", "24:00", "12:60", "12-30", "12:345", "123:45", "09:00:00", "9.30"}
	for _, input := range invalid {
		assert.Nil(t, ParseClockTime(input), "input %q", input)
	}
}

func TestClockTimeAt(t *testing.T) {
	loc := warsaw(t)
	day := time.Date(2025, 3, 14, 18, 45, 12, 0, loc)

	got := ClockTime{Hour: 9, Minute: 5}.At(day)

	assert.Equal(t, time.Date(2025, 3, 14, 9, 5, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestParseStoredTimestamp(t *testing.T) {
	loc := warsaw(t)
	now := time.Date(2025, 3, 14, 11, 22, 33, 0, loc)

	t.Run("дата и время в ожидаемых форматах", func(t *testing.T) {
		got, usedDefault := ParseStoredTimestamp("2025-03-01", "08:15", now)
		assert.False(t, usedDefault)
		assert.Equal(t, time.Date(2025, 3, 1, 8, 15, 0, 0, loc), got)

		got, usedDefault = ParseStoredTimestamp("2025-03-01", "08:15:42", now)
		assert.False(t, usedDefault)
		assert.Equal(t, time.Date(2025, 3, 1, 8, 15, 42, 0, loc), got)
	})

	t.Run("дата в ISO-формате с временем", func(t *testing.T) {
		got, usedDefault := ParseStoredTimestamp("2025-03-01T00:00:00", "08:15", now)
		assert.False(t, usedDefault)
		assert.Equal(t, time.Date(2025, 3, 1, 8, 15, 0, 0, loc), got)
	})

	t.Run("числовое время как доля суток", func(t *testing.T) {
		got, usedDefault := ParseStoredTimestamp("2025-03-01", "0.6875", now)
		assert.False(t, usedDefault)
		assert.Equal(t, time.Date(2025, 3, 1, 16, 30, 0, 0, loc), got)
	})

	t.Run("доля суток округляется до минуты", func(t *testing.T) {
		midnight := time.Date(2025, 3, 1, 0, 0, 0, 0, loc)
		for _, fraction := range []float64{0, 0.25, 0.5, 0.6875, 0.75, 0.999} {
			got, usedDefault := ParseStoredTimestamp("2025-03-01", fmt.Sprintf("%v", fraction), now)
			assert.False(t, usedDefault)
			wantMinutes := int(math.Round(fraction * 24 * 60))
			assert.Equal(t, midnight.Add(time.Duration(wantMinutes)*time.Minute), got, "fraction %v", fraction)
		}
	})

	t.Run("пустое время подставляет текущий момент", func(t *testing.T) {
		got, usedDefault := ParseStoredTimestamp("2025-03-01", "", now)
		assert.True(t, usedDefault)
		assert.Equal(t, now, got)
	})

	t.Run("нечитаемая дата подставляет сегодняшнюю", func(t *testing.T) {
		got, usedDefault := ParseStoredTimestamp("первое марта", "08:15", now)
		assert.True(t, usedDefault)
		assert.Equal(t, time.Date(2025, 3, 14, 8, 15, 0, 0, loc), got)
	})

	t.Run("нечитаемое время подставляет текущий момент", func(t *testing.T) {
		got, usedDefault := ParseStoredTimestamp("2025-03-01", "пол девятого", now)
		assert.True(t, usedDefault)
		assert.Equal(t, now, got)
	})

	t.Run("целое число вне доли суток не считается временем", func(t *testing.T) {
		got, usedDefault := ParseStoredTimestamp("2025-03-01", "5", now)
		assert.True(t, usedDefault)
		assert.Equal(t, now, got)
	})

	t.Run("пустые дата и время", func(t *testing.T) {
		got, usedDefault := ParseStoredTimestamp("", "", now)
		assert.True(t, usedDefault)
		assert.Equal(t, now, got)
	})
}

package tracker

import "context"

// ActivityRecord — одна строка таблицы активностей.
// Пустой EndTime означает открытую (ещё идущую) активность.
type ActivityRecord struct {
	Date      string
	Activity  string
	StartTime string
	EndTime   string
	Duration  string
}

// Номера колонок в таблице (нумерация с 1).
const (
	ColDate = iota + 1
	ColActivity
	ColStartTime
	ColEndTime
	ColDuration
)

// headerRowOffset переводит индекс записи в номер строки таблицы:
// нумерация строк с 1 плюс строка заголовка.
const headerRowOffset = 2

type Store interface {
	AppendRow(ctx context.Context, rec ActivityRecord) error
	ReadAllRows(ctx context.Context) ([]ActivityRecord, error)
	UpdateCell(ctx context.Context, row, col int, value string) error
}

type Reporter interface {
	DailySummary(ctx context.Context, records []ActivityRecord) string
}

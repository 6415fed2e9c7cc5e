package tracker

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Service — машина состояний учёта активностей. Всю работу с таблицей
// (прочитать историю, найти открытую активность, записать изменение)
// выполняет под одним мьютексом: без этого параллельные сообщения могли бы
// открыть две активности одновременно.
type Service struct {
	store    Store
	reporter Reporter
	loc      *time.Location

	mu  sync.Mutex
	now func() time.Time
}

func NewService(store Store, reporter Reporter, loc *time.Location) *Service {
	return &Service{
		store:    store,
		reporter: reporter,
		loc:      loc,
		now: func() time.Time {
			return time.Now().In(loc)
		},
	}
}

// HandleMessage обрабатывает одно входящее сообщение и возвращает ровно один
// текст ответа. Ошибки коллабораторов не покидают обработку сообщения:
// они превращаются в ответ пользователю, состояние таблицы не меняется.
func (s *Service) HandleMessage(ctx context.Context, text string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd := Classify(text)
	switch cmd.Kind {
	case CommandRequestSummary:
		return s.handleSummary(ctx)
	case CommandEndActivity:
		return s.handleEnd(ctx, cmd)
	case CommandStartActivity:
		return s.handleStart(ctx, cmd)
	default:
		return "⚠️ Пустое сообщение."
	}
}

func (s *Service) handleSummary(ctx context.Context) string {
	records, err := s.store.ReadAllRows(ctx)
	if err != nil {
		logrus.Errorf("Ошибка при чтении таблицы активностей: %v", err)
		return "⚠️ Не удалось прочитать таблицу активностей."
	}
	return s.reporter.DailySummary(ctx, records)
}

func (s *Service) handleStart(ctx context.Context, cmd Command) string {
	records, err := s.store.ReadAllRows(ctx)
	if err != nil {
		logrus.Errorf("Ошибка при чтении таблицы активностей: %v", err)
		return "⚠️ Не удалось прочитать таблицу активностей."
	}

	if _, open := FindOpenSession(records); open != nil {
		return fmt.Sprintf("⚠️ Сначала завершите предыдущую активность '%s'!", open.Activity)
	}

	if cmd.Label == "" {
		return "⚠️ Укажите название активности."
	}

	start := s.now()
	if cmd.Clock != nil {
		start = cmd.Clock.At(start)
	}

	rec := ActivityRecord{
		Date:      start.Format("2006-01-02"),
		Activity:  cmd.Label,
		StartTime: start.Format("15:04:05"),
	}
	if err := s.store.AppendRow(ctx, rec); err != nil {
		logrus.Errorf("Ошибка при записи активности '%s': %v", cmd.Label, err)
		return "⚠️ Не удалось записать активность в таблицу."
	}

	logrus.Infof("Начата активность '%s' в %s", cmd.Label, start.Format("15:04"))
	return fmt.Sprintf("🏁 Started '%s' at %s", cmd.Label, start.Format("15:04"))
}

func (s *Service) handleEnd(ctx context.Context, cmd Command) string {
	records, err := s.store.ReadAllRows(ctx)
	if err != nil {
		logrus.Errorf("Ошибка при чтении таблицы активностей: %v", err)
		return "⚠️ Не удалось прочитать таблицу активностей."
	}

	idx, open := FindOpenSession(records)
	if open == nil {
		return "⚠️ Нет открытых активностей для завершения."
	}

	now := s.now()
	start, usedDefault := ParseStoredTimestamp(open.Date, open.StartTime, now)
	if usedDefault {
		logrus.Warnf("Не удалось разобрать время начала активности '%s' (дата '%s', время '%s'), подставлены текущие значения",
			open.Activity, open.Date, open.StartTime)
	}

	end := now
	if cmd.Clock != nil {
		end = cmd.Clock.At(start)
		if end.Before(start) {
			// активность пересекла полночь
			end = end.AddDate(0, 0, 1)
		}
	}

	minutes := int(math.Round(end.Sub(start).Minutes()))
	durationStr := FormatDuration(minutes)

	row := idx + headerRowOffset
	if err := s.store.UpdateCell(ctx, row, ColEndTime, end.Format("15:04:05")); err != nil {
		logrus.Errorf("Ошибка при записи времени окончания '%s': %v", open.Activity, err)
		return "⚠️ Не удалось обновить таблицу активностей."
	}
	if err := s.store.UpdateCell(ctx, row, ColDuration, durationStr); err != nil {
		logrus.Errorf("Ошибка при записи длительности '%s': %v", open.Activity, err)
		return "⚠️ Не удалось обновить таблицу активностей."
	}

	logrus.Infof("Завершена активность '%s' (%s)", open.Activity, durationStr)
	return fmt.Sprintf("✅ Ended '%s' (%s)", open.Activity, durationStr)
}

package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trackerbot/internal/tracker"

	"github.com/sirupsen/logrus"
)

// Summarizer — внешний сервис генерации текста по подсказке.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

// Service собирает ежедневный отчёт: блок сегодняшних активностей плюс
// анализ всей истории от языковой модели.
type Service struct {
	summarizer  Summarizer
	instruction string

	now func() time.Time
}

func NewService(summarizer Summarizer, loc *time.Location, instruction string) *Service {
	return &Service{
		summarizer:  summarizer,
		instruction: instruction,
		now: func() time.Time {
			return time.Now().In(loc)
		},
	}
}

// DailySummary формирует текст отчёта. Сбой генерации не роняет обработку:
// пользователь получает блок сегодняшних активностей и текст ошибки.
func (s *Service) DailySummary(ctx context.Context, records []tracker.ActivityRecord) string {
	todayBlock := s.buildTodayBlock(records)

	answer, err := s.summarizer.Summarize(ctx, s.buildPrompt(records))
	if err != nil {
		logrus.Errorf("Ошибка при генерации отчёта: %v", err)
		return todayBlock + "\n\n⚠️ Ошибка при генерации отчёта:\n" + err.Error()
	}

	return todayBlock + "\n\n" + answer
}

func (s *Service) buildTodayBlock(records []tracker.ActivityRecord) string {
	today := s.now().Format("2006-01-02")

	var lines []string
	for _, rec := range records {
		if rec.Date != today {
			continue
		}
		line := "• " + rec.Activity
		if rec.Duration != "" {
			line += " — " + rec.Duration
		} else {
			line += " (ещё идёт)"
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return "📋 Сегодня активностей не было."
	}
	return "📋 Активности за сегодня:\n" + strings.Join(lines, "\n")
}

// buildPrompt — инструкция плюс вся история таблицей с табуляцией.
func (s *Service) buildPrompt(records []tracker.ActivityRecord) string {
	var b strings.Builder
	b.WriteString(s.instruction)
	b.WriteString("\n\n")
	b.WriteString("Дата\tАктивность\tДлительность\n")
	for _, rec := range records {
		fmt.Fprintf(&b, "%s\t%s\t%s\n", rec.Date, rec.Activity, rec.Duration)
	}
	return b.String()
}

package tracker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// StartReportScheduler раз в сутки, в указанное локальное время, прогоняет
// команду "report" через обычный путь обработки сообщений и отправляет
// результат в заданный чат. Проверка идёт минутным тикером; защита от
// повторной отправки — как у обычных периодических отчётов: не чаще,
// чем раз в 10 минут.
func (s *Service) StartReportScheduler(sendMessage func(chatID int64, text string) error, chatID int64, hour, minute int) {
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		var lastSent time.Time
		for range ticker.C {
			now := s.now()
			if now.Hour() != hour || now.Minute() != minute {
				continue
			}
			if !lastSent.IsZero() && now.Sub(lastSent) < 10*time.Minute {
				continue
			}

			reply := s.HandleMessage(context.Background(), "report")
			if err := sendMessage(chatID, reply); err != nil {
				logrus.Errorf("Ошибка при отправке ежедневного отчёта: %v", err)
				continue
			}

			lastSent = now
			logrus.Info("Ежедневный отчёт отправлен")
		}
	}()

	logrus.Infof("Запущен планировщик ежедневного отчёта (%02d:%02d)", hour, minute)
}

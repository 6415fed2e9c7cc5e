package messagestore

import (
	"context"

	"github.com/sirupsen/logrus"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) StoreUserMessage(ctx context.Context, userID string, messageText string, platform string) (int, error) {
	logrus.Debugf("Сохранение сообщения пользователя %s: %s", userID, messageText)
	return s.repo.StoreUserMessage(ctx, userID, messageText, platform)
}

func (s *Service) StoreBotReply(ctx context.Context, userMessageID int, replyText string) error {
	logrus.Debugf("Сохранение ответа бота на сообщение %d", userMessageID)
	return s.repo.StoreBotReply(ctx, userMessageID, replyText)
}

package chatgpt

import (
	"context"
	"errors"
	"strings"

	"trackerbot/pkg/config"

	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

type Service struct {
	client *openai.Client
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		client: openai.NewClient(cfg.OpenAIKey),
	}
}

// Summarize отправляет подсказку в OpenAI и возвращает текст ответа.
func (s *Service) Summarize(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.3,
		MaxTokens:   700,
	})
	if err != nil {
		logrus.Errorf("Ошибка при запросе к OpenAI: %v", err)
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("нет ответа от OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

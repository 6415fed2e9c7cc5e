package telegram

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"trackerbot/internal/messagestore"
	"trackerbot/internal/tracker"
	"trackerbot/pkg/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// maxMessageLength — предел длины одного сообщения Telegram.
const maxMessageLength = 4000

type Handler struct {
	bot                 *tgbotapi.BotAPI
	trackerService      *tracker.Service
	messageStoreService *messagestore.Service // может быть nil
	cfg                 *config.Config
}

func NewHandler(cfg *config.Config, trackerService *tracker.Service, messageStoreService *messagestore.Service) (*Handler, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("ошибка при инициализации Telegram бота: %v", err)
	}

	logrus.Infof("Telegram бот запущен: %s", bot.Self.UserName)

	return &Handler{
		bot:                 bot,
		trackerService:      trackerService,
		messageStoreService: messageStoreService,
		cfg:                 cfg,
	}, nil
}

func (h *Handler) GetBotInfo() *tgbotapi.User {
	if h == nil || h.bot == nil {
		return nil
	}
	return &h.bot.Self
}

// SetupWebhook регистрирует вебхук на публичном хосте из конфигурации.
func (h *Handler) SetupWebhook() error {
	webhookURL := fmt.Sprintf("https://%s/webhook", h.cfg.WebhookHost)

	webhookConfig, err := tgbotapi.NewWebhook(webhookURL)
	if err != nil {
		return fmt.Errorf("ошибка при создании конфига вебхука: %w", err)
	}

	if _, err := h.bot.Request(webhookConfig); err != nil {
		return fmt.Errorf("ошибка при установке вебхука: %v", err)
	}

	logrus.Infof("Вебхук установлен: %s", webhookURL)
	return nil
}

func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	update, err := h.bot.HandleUpdate(r)
	if err != nil {
		logrus.Errorf("Ошибка при обработке обновления: %v", err)
		return
	}

	h.handleUpdate(*update)
}

// HandleHealth — проверка живости процесса.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "✅ Telegram activity tracker bot is running!")
}

// HandleSendMessage прогоняет текст из query-параметра через обычный путь
// обработки: отладочный вход, позволяющий проверить бота без Telegram.
func (h *Handler) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	text := strings.TrimSpace(r.URL.Query().Get("text"))
	if text == "" {
		http.Error(w, "❌ Добавьте параметр ?text=ваш_текст", http.StatusBadRequest)
		return
	}

	logrus.Infof("Тестовое сообщение '%s' отправлено в обработку", text)
	reply := h.trackerService.HandleMessage(r.Context(), text)
	fmt.Fprint(w, reply)
}

// SendMessage отправляет текст в чат, обрезая его до лимита Telegram.
func (h *Handler) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, truncateMessage(text))
	_, err := h.bot.Send(msg)
	if err != nil {
		return fmt.Errorf("ошибка при отправке сообщения: %v", err)
	}
	return nil
}

func (h *Handler) handleUpdate(update tgbotapi.Update) {
	ctx := context.Background()

	if update.Message == nil || update.Message.Text == "" {
		return
	}

	log := logrus.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"user_id":    update.Message.From.ID,
	})
	log.Infof("Получено сообщение: %s", update.Message.Text)

	if update.Message.Command() == "start" {
		if err := h.SendMessage(update.Message.Chat.ID, "Привет! Я бот, и я умею записывать твои активности."); err != nil {
			log.Errorf("Ошибка при отправке приветствия: %v", err)
		}
		return
	}

	userID := fmt.Sprintf("%d", update.Message.From.ID)
	messageID := h.storeUserMessage(ctx, userID, update.Message.Text)

	reply := h.trackerService.HandleMessage(ctx, update.Message.Text)

	h.storeBotReply(ctx, messageID, reply)

	if err := h.SendMessage(update.Message.Chat.ID, reply); err != nil {
		log.Errorf("Ошибка при отправке ответа: %v", err)
	}
}

func (h *Handler) storeUserMessage(ctx context.Context, userID, text string) int {
	if h.messageStoreService == nil {
		return 0
	}
	messageID, err := h.messageStoreService.StoreUserMessage(ctx, userID, text, "telegram")
	if err != nil {
		logrus.Errorf("Ошибка при сохранении сообщения пользователя: %v", err)
		return 0
	}
	return messageID
}

func (h *Handler) storeBotReply(ctx context.Context, userMessageID int, text string) {
	if h.messageStoreService == nil || userMessageID == 0 {
		return
	}
	if err := h.messageStoreService.StoreBotReply(ctx, userMessageID, text); err != nil {
		logrus.Errorf("Ошибка при сохранении ответа бота: %v", err)
	}
}

func truncateMessage(text string) string {
	runes := []rune(text)
	if len(runes) <= maxMessageLength {
		return text
	}
	return string(runes[:maxMessageLength])
}

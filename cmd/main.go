package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trackerbot/internal/chatgpt"
	"trackerbot/internal/gsheets"
	"trackerbot/internal/messagestore"
	"trackerbot/internal/report"
	"trackerbot/internal/telegram"
	"trackerbot/internal/tracker"
	"trackerbot/pkg/config"
	"trackerbot/pkg/db"

	"github.com/sirupsen/logrus"
)

func main() {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	cfg := config.LoadConfig()

	if cfg.TelegramToken == "" {
		logrus.Fatal("Не задан TELEGRAM_TOKEN")
	}
	if cfg.GoogleCredentials == "" {
		logrus.Fatal("Не задан GOOGLE_CREDENTIALS")
	}
	if cfg.SpreadsheetID == "" {
		logrus.Fatal("Не задан SPREADSHEET_ID")
	}
	if cfg.OpenAIKey == "" {
		logrus.Warn("Не задан OPENAI_KEY: команда отчёта будет возвращать ошибку")
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logrus.Fatalf("Неизвестный часовой пояс %s: %v", cfg.Timezone, err)
	}

	ctx := context.Background()

	sheetsClient, err := gsheets.NewClient(ctx, cfg)
	if err != nil {
		logrus.Fatalf("Ошибка при подключении к Google Sheets: %v", err)
	}
	if err := sheetsClient.EnsureHeader(ctx); err != nil {
		logrus.Warnf("Не удалось проверить заголовок листа: %v", err)
	}

	var messageStoreService *messagestore.Service
	if cfg.PostgresHost != "" {
		database, err := db.NewPostgresDB(cfg)
		if err != nil {
			logrus.Warnf("Ошибка при подключении к базе данных, журнал сообщений отключен: %v", err)
		} else {
			defer database.Close()
			messageStoreService = messagestore.NewService(messagestore.NewRepository(database))
		}
	}

	chatgptService := chatgpt.NewService(cfg)
	reportService := report.NewService(chatgptService, loc, cfg.ReportPrompt)
	trackerService := tracker.NewService(sheetsClient, reportService, loc)

	telegramHandler, err := telegram.NewHandler(cfg, trackerService, messageStoreService)
	if err != nil {
		logrus.Fatalf("Ошибка при инициализации Telegram бота: %v", err)
	}

	if cfg.WebhookHost != "" {
		if err := telegramHandler.SetupWebhook(); err != nil {
			logrus.Fatalf("Ошибка при установке вебхука: %v", err)
		}
	}

	if cfg.ReportChatID != 0 {
		trackerService.StartReportScheduler(telegramHandler.SendMessage, cfg.ReportChatID, cfg.ReportHour, cfg.ReportMinute)
	} else {
		logrus.Warn("Не задан REPORT_CHAT_ID: ежедневный отчёт отключен")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/webhook", telegramHandler.HandleWebhook)
	mux.HandleFunc("/send_message", telegramHandler.HandleSendMessage)
	mux.HandleFunc("/", telegramHandler.HandleHealth)

	server := &http.Server{
		Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
		Handler: mux,
	}

	go func() {
		logrus.Infof("Сервер запущен на порту %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Ошибка при запуске сервера: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Завершение работы сервера...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Ошибка при остановке сервера: %v", err)
	}

	logrus.Info("Сервер остановлен")
}

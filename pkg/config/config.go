package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	TelegramToken     string
	OpenAIKey         string
	GoogleCredentials string
	SpreadsheetID     string
	SheetName         string
	Timezone          string
	ReportChatID      int64
	ReportHour        int
	ReportMinute      int
	ReportPrompt      string
	ServerHost        string
	ServerPort        string
	WebhookHost       string
	PostgresHost      string
	PostgresPort      string
	PostgresUser      string
	PostgresPassword  string
	PostgresDB        string
}

const defaultReportPrompt = "Проанализируй историю моих активностей (таблица ниже, колонки: дата, активность, длительность) " +
	"и составь краткий отчёт за сегодняшний день: чем я занимался, сколько времени ушло на каждую активность " +
	"и какие закономерности видны по сравнению с прошлыми днями. Отвечай по-русски, коротко."

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("Не найден файл .env")
	}

	return &Config{
		TelegramToken:     getEnv("TELEGRAM_TOKEN", ""),
		OpenAIKey:         getEnv("OPENAI_KEY", ""),
		GoogleCredentials: getEnv("GOOGLE_CREDENTIALS", ""),
		SpreadsheetID:     getEnv("SPREADSHEET_ID", ""),
		SheetName:         getEnv("SHEET_NAME", "Activities"),
		Timezone:          getEnv("TIMEZONE", "Europe/Warsaw"),
		ReportChatID:      getEnvInt64("REPORT_CHAT_ID", 0),
		ReportHour:        getEnvInt("REPORT_HOUR", 14),
		ReportMinute:      getEnvInt("REPORT_MINUTE", 20),
		ReportPrompt:      getEnv("REPORT_PROMPT", defaultReportPrompt),
		ServerHost:        getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		WebhookHost:       getEnv("WEBHOOK_HOST", ""),
		PostgresHost:      getEnv("POSTGRES_HOST", ""),
		PostgresPort:      getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:      getEnv("POSTGRES_USER", "postgres"),
		PostgresPassword:  getEnv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:        getEnv("POSTGRES_DB", "trackerbot"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		logrus.Warnf("Некорректное значение %s=%s, использую %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logrus.Warnf("Некорректное значение %s=%s, использую %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

package gsheets

import (
	"context"
	"fmt"

	"trackerbot/internal/tracker"
	"trackerbot/pkg/config"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var header = []interface{}{"Date", "Activity", "Start Time", "End Time", "Duration"}

// Client — хранилище активностей поверх Google Sheets.
// Реализует tracker.Store.
type Client struct {
	service       *sheets.Service
	spreadsheetID string
	sheetName     string
}

// NewClient создаёт клиент Google Sheets по сервисному аккаунту
// из JSON в переменной окружения GOOGLE_CREDENTIALS.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	jwtConfig, err := google.JWTConfigFromJSON([]byte(cfg.GoogleCredentials), sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("не удалось разобрать учетные данные Google: %w", err)
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания Sheets сервиса: %w", err)
	}

	logrus.Info("Google Sheets клиент инициализирован")

	return &Client{
		service:       srv,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     cfg.SheetName,
	}, nil
}

// EnsureHeader записывает строку заголовков, если лист пуст.
func (c *Client) EnsureHeader(ctx context.Context) error {
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, c.sheetName+"!A1:E1").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("ошибка чтения заголовка: %w", err)
	}
	if len(resp.Values) > 0 {
		return nil
	}

	valueRange := &sheets.ValueRange{Values: [][]interface{}{header}}
	_, err = c.service.Spreadsheets.Values.Update(c.spreadsheetID, c.sheetName+"!A1", valueRange).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("ошибка записи заголовка: %w", err)
	}

	logrus.Infof("Создан заголовок листа '%s'", c.sheetName)
	return nil
}

func (c *Client) AppendRow(ctx context.Context, rec tracker.ActivityRecord) error {
	valueRange := &sheets.ValueRange{
		Values: [][]interface{}{{rec.Date, rec.Activity, rec.StartTime, rec.EndTime, rec.Duration}},
	}

	_, err := c.service.Spreadsheets.Values.Append(c.spreadsheetID, c.sheetName+"!A:E", valueRange).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("ошибка записи строки: %w", err)
	}
	return nil
}

// ReadAllRows возвращает все записи в порядке строк листа, без заголовка.
// Короткие строки дополняются пустыми ячейками.
func (c *Client) ReadAllRows(ctx context.Context) ([]tracker.ActivityRecord, error) {
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, c.sheetName+"!A2:E").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения таблицы: %w", err)
	}

	records := make([]tracker.ActivityRecord, 0, len(resp.Values))
	for _, row := range resp.Values {
		records = append(records, tracker.ActivityRecord{
			Date:      cell(row, 0),
			Activity:  cell(row, 1),
			StartTime: cell(row, 2),
			EndTime:   cell(row, 3),
			Duration:  cell(row, 4),
		})
	}
	return records, nil
}

func (c *Client) UpdateCell(ctx context.Context, row, col int, value string) error {
	cellRef := fmt.Sprintf("%s!%s%d", c.sheetName, columnLetter(col), row)
	valueRange := &sheets.ValueRange{Values: [][]interface{}{{value}}}

	_, err := c.service.Spreadsheets.Values.Update(c.spreadsheetID, cellRef, valueRange).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("ошибка обновления ячейки %s: %w", cellRef, err)
	}
	return nil
}

func cell(row []interface{}, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return fmt.Sprintf("%v", row[idx])
}

// columnLetter переводит номер колонки (с 1) в букву A1-нотации.
func columnLetter(col int) string {
	return string(rune('A' + col - 1))
}

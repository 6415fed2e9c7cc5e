package messagestore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) StoreUserMessage(ctx context.Context, userID string, messageText string, platform string) (int, error) {
	query := `
		INSERT INTO user_messages (user_identifier, message_text, platform, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id
	`

	var messageID int
	err := r.db.GetContext(ctx, &messageID, query, userID, messageText, platform)
	if err != nil {
		return 0, fmt.Errorf("не удалось сохранить сообщение пользователя: %w", err)
	}

	return messageID, nil
}

func (r *Repository) StoreBotReply(ctx context.Context, userMessageID int, replyText string) error {
	query := `
		INSERT INTO bot_replies (user_message_id, reply_text, created_at)
		VALUES ($1, $2, NOW())
	`

	_, err := r.db.ExecContext(ctx, query, userMessageID, replyText)
	if err != nil {
		return fmt.Errorf("не удалось сохранить ответ бота: %w", err)
	}

	return nil
}

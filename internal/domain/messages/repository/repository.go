package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/IT-Nick/burncheckbot/internal/domain/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrMessageNotFound = errors.New("message not found")

// MessageRepository тексты бота, переопределённые в базе данных
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository создает новый экземпляр MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

// EnsureSchema создаёт таблицу messages, если её нет
func (r *MessageRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS messages (
			message_key  TEXT PRIMARY KEY,
			message_text TEXT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create messages table: %w", err)
	}
	return nil
}

// GetMessageByKey возвращает текст сообщения по ключу
func (r *MessageRepository) GetMessageByKey(ctx context.Context, messageKey string) (string, error) {
	var messageText string
	err := r.db.QueryRow(ctx, "SELECT message_text FROM messages WHERE message_key=$1", messageKey).
		Scan(&messageText)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%w: %s", ErrMessageNotFound, messageKey)
		}
		return "", fmt.Errorf("failed to get message: %w", err)
	}
	return messageText, nil
}

// ListMessages возвращает все переопределённые тексты
func (r *MessageRepository) ListMessages(ctx context.Context) ([]model.Message, error) {
	rows, err := r.db.Query(ctx, "SELECT message_key, message_text FROM messages")
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.Key, &m.Text); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate over rows: %w", err)
	}

	return messages, nil
}

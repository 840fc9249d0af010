package database

import (
	"context"
	"database/sql"
	"messageboard/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ListMessages returns every message in insertion order.
func (s *Store) ListMessages(ctx context.Context) ([]models.Message, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, text FROM messages ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message = []models.Message{}

	for rows.Next() {
		var msg models.Message
		var text sql.NullString

		if err := rows.Scan(&msg.ID, &text); err != nil {
			return nil, err
		}
		msg.Text = text.String

		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}

// InsertMessage stores text as a new message and echoes it back.
func (s *Store) InsertMessage(ctx context.Context, text string) (string, error) {
	_, err := s.db.ExecContext(ctx, "INSERT INTO messages (text) VALUES (?)", text)
	if err != nil {
		return "", err
	}

	return text, nil
}

func (s *Store) Ping(ctx context.Context) error {
	var one int
	return s.db.QueryRowContext(ctx, "SELECT 1").Scan(&one)
}

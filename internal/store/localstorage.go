package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type localStorage struct {
	db *sqlx.DB
}

func (l *localStorage) GetItem(ctx context.Context, key string) (string, error) {
	var value string
	err := l.db.GetContext(ctx, &value, `SELECT value FROM local_storage WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("get item %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("get item %q: %w", key, err)
	}
	return value, nil
}

func (l *localStorage) SetItem(ctx context.Context, key, value string) error {
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO local_storage (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("set item %q: %w", key, err)
	}
	return nil
}

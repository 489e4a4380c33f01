package credential

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ewasteportal/ewastecli/internal/dbx"
)

// tokenKey is the single row key; the store has no multi-account support.
const tokenKey = "token"

// SQLiteStore keeps the credential in the local client database so it
// survives process restarts, the way the browser build kept it in
// localStorage.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM credential WHERE key = ?`, tokenKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credential: %w", err)
	}
	return value, nil
}

// Save atomically replaces the stored token. A stale token must never
// survive next to the new one, so the delete and insert run in one
// transaction.
func (s *SQLiteStore) Save(ctx context.Context, token string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM credential WHERE key = ?`, tokenKey); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO credential (key, value) VALUES (?, ?)`, tokenKey, token)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credential WHERE key = ?`, tokenKey)
	if err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	return nil
}

package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
)

// SQLSTATE-коды Postgres, которые нас интересуют
const (
	pgUniqueViolation = "23505"
)

// pgErrorCode извлекает SQLSTATE из ошибки pgx/v5 или lib/pq драйвера.
// Возвращает пустую строку, если ошибка пришла не от Postgres.
func pgErrorCode(err error) string {
	// pgx/v5 driver (pgconn.PgError)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	// lib/pq driver
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// classifyWriteError приводит ошибку записи к ошибке приложения.
// Нарушение уникальности - ErrConflict, ошибки данных (класс 22) и
// ограничений целостности (класс 23) - ErrUnprocessable.
// Прочие ошибки (соединение, таймауты) возвращаются без изменений.
func classifyWriteError(err error) error {
	if err == nil {
		return nil
	}
	code := pgErrorCode(err)
	switch {
	case code == pgUniqueViolation:
		return fmt.Errorf("%w: %w", apperrors.ErrConflict, err)
	case len(code) == 5 && (code[:2] == "22" || code[:2] == "23"):
		return fmt.Errorf("%w: %w", apperrors.ErrUnprocessable, err)
	default:
		return err
	}
}

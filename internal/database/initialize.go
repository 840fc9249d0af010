package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"time"

	"go.uber.org/zap"
)

var ErrDatabaseNotReady = errors.New("database not ready")

var schemas = map[Dialect]string{
	MySQL: `
			CREATE TABLE IF NOT EXISTS messages (
				id INT AUTO_INCREMENT PRIMARY KEY,
				text TEXT
			);
	`,
	SQLite: `
			CREATE TABLE IF NOT EXISTS messages (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				text TEXT
			);
	`,
}

// Conn is the part of *sql.DB the initializer needs.
type Conn interface {
	PingContext(ctx context.Context) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// isNil also catches typed nil pointers stored in the interface.
func isNil(conn Conn) bool {
	if conn == nil {
		return true
	}
	v := reflect.ValueOf(conn)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Slice, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func setupTables(ctx context.Context, conn Conn, dialect Dialect) error {
	// a handle that exists but has nothing behind it is just another not-ready database
	if isNil(conn) {
		return ErrDatabaseNotReady
	}

	schema, ok := schemas[dialect]
	if !ok {
		return fmt.Errorf("unsupported dialect %q", dialect)
	}

	if err := conn.PingContext(ctx); err != nil {
		return err
	}

	_, err := conn.ExecContext(ctx, schema)
	return err
}

// Initialize blocks until the messages table exists. Every failed attempt is
// logged with the number of attempts left, then retried after a fixed delay.
func Initialize(ctx context.Context, conn Conn, dialect Dialect, attempts int, delay time.Duration, sugar *zap.SugaredLogger) error {
	var lastErr error
	if attempts < 1 {
		attempts = 1
	}

	for remaining := attempts; remaining > 0; {
		lastErr = setupTables(ctx, conn, dialect)
		if lastErr == nil {
			sugar.Info("Database initialized successfully")
			return nil
		}

		remaining--
		sugar.Warnw("Database not ready", "error", lastErr, "retryIn", delay, "attemptsLeft", remaining)
		if remaining == 0 {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w (last error: %v)", ErrDatabaseNotReady, ctx.Err(), lastErr)
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("%w after %d attempts, last error: %w", ErrDatabaseNotReady, attempts, lastErr)
}

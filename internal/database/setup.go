package database

import (
	"database/sql"
	"fmt"
	"messageboard/internal/models"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

type Dialect string

const (
	MySQL  Dialect = "mysql"
	SQLite Dialect = "sqlite"
)

// driverLogger routes the mysql driver's own messages (dropped connections,
// handshake noise while the server boots) into zap.
type driverLogger struct {
	sugar *zap.SugaredLogger
}

func (l driverLogger) Print(v ...any) {
	l.sugar.Debug(v...)
}

func setPragmaValues(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return err
	}

	if _, err := db.Exec("PRAGMA synchronous = normal"); err != nil {
		return err
	}

	return nil
}

func readPragmaValues(db *sql.DB, sugar *zap.SugaredLogger) error {
	var journalModeValue string
	err := db.QueryRow("PRAGMA journal_mode").Scan(&journalModeValue)
	if err != nil {
		return err
	}

	var synchronousValue int
	err = db.QueryRow("PRAGMA synchronous").Scan(&synchronousValue)
	if err != nil {
		return err
	}

	var synchronousValueStr string
	switch synchronousValue {
	case 0:
		synchronousValueStr = "off"
	case 1:
		synchronousValueStr = "normal"
	case 2:
		synchronousValueStr = "full"
	case 3:
		synchronousValueStr = "extra"
	default:
		return fmt.Errorf("synchronous value %d is unsupported", synchronousValue)
	}

	sugar.Debugw("sqlite pragmas", "journal_mode", journalModeValue, "synchronous", synchronousValueStr)

	return nil
}

func MySQLDSN(cfg *models.ConfigFile) string {
	c := mysql.NewConfig()
	c.User = cfg.DbUser
	c.Passwd = cfg.DbPassword
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(cfg.DbAddress, cfg.DbPort)
	c.DBName = cfg.DbDatabase
	c.ParseTime = true
	c.Timeout = 10 * time.Second
	c.Params = map[string]string{"charset": "utf8mb4"}

	return c.FormatDSN()
}

// Open returns a handle for the configured backend. It does not wait for the
// server to accept connections; Initialize does that.
func Open(cfg *models.ConfigFile, sugar *zap.SugaredLogger) (*sql.DB, Dialect, error) {
	if cfg.SelfContained {
		sugar.Infow("Opening sqlite database", "path", cfg.SqlitePath)

		db, err := sql.Open("sqlite", cfg.SqlitePath)
		if err != nil {
			return nil, SQLite, err
		}

		// there can be sqlite busy errors if this is not set to 1
		db.SetMaxOpenConns(1)

		if err = setPragmaValues(db); err != nil {
			db.Close()
			return nil, SQLite, err
		}

		if err = readPragmaValues(db, sugar); err != nil {
			db.Close()
			return nil, SQLite, err
		}

		return db, SQLite, nil
	}

	sugar.Infow("Opening mysql database", "host", cfg.DbAddress, "port", cfg.DbPort, "database", cfg.DbDatabase)

	if err := mysql.SetLogger(driverLogger{sugar}); err != nil {
		return nil, MySQL, err
	}

	db, err := sql.Open("mysql", MySQLDSN(cfg))
	if err != nil {
		return nil, MySQL, err
	}

	db.SetMaxOpenConns(10)

	return db, MySQL, nil
}

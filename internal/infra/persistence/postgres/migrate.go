package postgres

import (
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"passport/internal/errors"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Migrate applies all pending schema migrations through goose.
// Migrations always run against the master connection.
func Migrate(db *gorm.DB, logger *slog.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(&gooseSlogLogger{logger: logger})

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}

// gooseSlogLogger adapts goose's log output to slog.
type gooseSlogLogger struct {
	logger *slog.Logger
}

func (l *gooseSlogLogger) Fatalf(format string, v ...any) {
	// goose surfaces fatal conditions through returned errors as well;
	// logging is enough here, fx tears the app down on the error.
	l.logger.Error("goose", slog.String("message", strings.TrimSpace(fmt.Sprintf(format, v...))))
}

func (l *gooseSlogLogger) Printf(format string, v ...any) {
	l.logger.Info("goose", slog.String("message", strings.TrimSpace(fmt.Sprintf(format, v...))))
}

package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
)

// gormLogger sends gorm output to the request-scoped slog logger.
// Statements are logged at TRACE, slow ones at WARN, failures at ERROR.
type gormLogger struct {
	fallback *slog.Logger
	level    gormlogger.LogLevel
	slow     time.Duration
}

// NewGormLogger adapts slog for gorm. level is one of silent, error, warn, info.
func NewGormLogger(logger *slog.Logger, level string, slow time.Duration) gormlogger.Interface {
	if logger == nil {
		logger = slog.Default()
	}

	return &gormLogger{
		fallback: logger.With(slog.String("component", "gorm")),
		level:    parseGormLevel(level),
		slow:     slow,
	}
}

func parseGormLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level

	return &clone
}

func (l *gormLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Info {
		l.logger(ctx).InfoContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Warn {
		l.logger(ctx).WarnContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Error {
		l.logger(ctx).ErrorContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	logger := l.logger(ctx)

	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		logger.ErrorContext(ctx, "sql error",
			slog.String("sql", sql), slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed), slog.Any("error", err))
	case l.slow > 0 && elapsed > l.slow && l.level >= gormlogger.Warn:
		sql, rows := fc()
		logger.WarnContext(ctx, "slow sql",
			slog.String("sql", sql), slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed), slog.Duration("threshold", l.slow))
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		logging.Trace(ctx, logger, "sql",
			slog.String("sql", sql), slog.Int64("rows", rows), slog.Duration("elapsed", elapsed))
	}
}

// logger prefers the request logger so SQL lines carry the request id.
func (l *gormLogger) logger(ctx context.Context) *slog.Logger {
	fromCtx := logging.FromContext(ctx)
	if fromCtx == slog.Default() {
		return l.fallback
	}

	return fromCtx.With(slog.String("component", "gorm"))
}

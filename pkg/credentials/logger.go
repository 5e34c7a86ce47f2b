package credentials

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// logger routes gorm logs to zerolog.
type logger struct {
	Logger zerolog.Logger
}

func (l *logger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *logger) Info(_ context.Context, s string, args ...interface{}) {
	l.Logger.Info().Msgf(s, args...)
}

func (l *logger) Warn(_ context.Context, s string, args ...interface{}) {
	l.Logger.Warn().Msgf(s, args...)
}

func (l *logger) Error(_ context.Context, s string, args ...interface{}) {
	l.Logger.Error().Msgf(s, args...)
}

// Trace logs every statement at debug level. The SQL is logged without
// values so that tokens never end up in the logs.
func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil {
		l.Logger.Error().Err(err).Dur("duration", elapsed).Msg("[GORM] query error")
		return
	}

	l.Logger.Debug().Str("sql", redact(sql)).Int64("rows", rows).Dur("duration", elapsed).Msg("[GORM] query")
}

// redact cuts the statement at its value list.
func redact(sql string) string {
	if i := strings.Index(sql, "VALUES"); i >= 0 {
		return sql[:i] + "VALUES [redacted]"
	}
	return sql
}

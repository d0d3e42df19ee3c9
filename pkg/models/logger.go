package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQueryThreshold is the duration after which a query is logged as slow.
const slowQueryThreshold = 200 * time.Millisecond

// logger adapts zerolog to gorm's logger interface.
//
// Queries are logged at debug level so that they only show up
// when explicitly requested.
type logger struct {
	Logger zerolog.Logger
}

func (l *logger) LogMode(level gorm_logger.LogLevel) gorm_logger.Interface {
	n := *l

	switch level {
	case gorm_logger.Silent:
		n.Logger = l.Logger.Level(zerolog.Disabled)
	case gorm_logger.Error:
		n.Logger = l.Logger.Level(zerolog.ErrorLevel)
	case gorm_logger.Warn:
		n.Logger = l.Logger.Level(zerolog.WarnLevel)
	}

	return &n
}

func (l *logger) Info(_ context.Context, s string, args ...any) {
	l.Logger.Info().Msgf(s, args...)
}

func (l *logger) Warn(_ context.Context, s string, args ...any) {
	l.Logger.Warn().Msgf(s, args...)
}

func (l *logger) Error(_ context.Context, s string, args ...any) {
	l.Logger.Error().Msgf(s, args...)
}

func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := map[string]any{
		"sql":      sql,
		"rows":     rows,
		"duration": elapsed,
	}

	if err != nil && !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm_logger.ErrRecordNotFound) {
		l.Logger.Error().Err(err).Fields(fields).Msg("[GORM] query error")
		return
	}

	if elapsed > slowQueryThreshold {
		l.Logger.Warn().Fields(fields).Msg("[GORM] slow query")
		return
	}

	l.Logger.Debug().Fields(fields).Msg("[GORM] query")
}

// Package logging builds the operator log and adapts it for gorm.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"
)

// New returns a console logger writing to w at the named level. Unknown
// level names fall back to info.
func New(w io.Writer, level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    true,
	}
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		output.NoColor = !isTerminal(f.Fd())
	}

	return zerolog.New(output).
		Level(parsed).
		With().
		Timestamp().
		Logger()
}

func gormLevel(level zerolog.Level) gormlogger.LogLevel {
	if level <= zerolog.DebugLevel {
		return gormlogger.Info
	}
	return gormlogger.Warn
}

type gormWriter struct {
	logger zerolog.Logger
}

// Printf receives gorm's trace, warn and error lines. Traces go out at
// debug; anything gorm only prints at Warn or above goes out as a warning.
func (w gormWriter) Printf(format string, args ...interface{}) {
	event := w.logger.Warn()
	if w.logger.GetLevel() <= zerolog.DebugLevel {
		event = w.logger.Debug()
	}
	event.Str("component", "gorm").Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// Gorm returns a gorm logger feeding the operator log. Slow queries and
// failed statements are always reported; full SQL tracing only at debug.
func Gorm(logger zerolog.Logger) gormlogger.Interface {
	return gormlogger.New(gormWriter{logger: logger}, gormlogger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  gormLevel(logger.GetLevel()),
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

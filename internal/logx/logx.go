/*
Package logx wraps zerolog for ecotrack.

The console UI owns stdout, so logs go to stderr (or any writer given to Init)
in zerolog's human-readable console format. Every entry carries the id of the
process's session so a log file shared across runs can be split again.
*/
package logx

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLevel keeps the interactive console free of routine log lines.
const DefaultLevel = "warn"

var sessionID = uuid.NewString()

// SessionID returns the id attached to every log entry of this process.
func SessionID() string {
	return sessionID
}

// Init configures the global logger. An unknown level falls back to DefaultLevel.
// A nil out means stderr.
func Init(level string, out io.Writer) {
	if out == nil {
		out = os.Stderr
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		lvl, _ = zerolog.ParseLevel(DefaultLevel)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    out != os.Stderr,
		TimeFormat: time.RFC3339,
	}).Level(lvl).With().Timestamp().Str("session", sessionID).Logger()

	log.Logger = logger
	if err != nil && level != "" {
		log.Warn().Str("level", level).Msg("unknown log level, using " + DefaultLevel)
	}
}

// Logger returns the global logger.
func Logger() *zerolog.Logger {
	return &log.Logger
}

// checkFields drops a field list that is not key/value pairs instead of letting zerolog mangle it.
func checkFields(level string, fields []any) []any {
	if len(fields)%2 != 0 {
		Logger().Warn().
			Int("fields_count", len(fields)).
			Str("log_level", level).
			Msg("odd number of log fields, fields ignored")
		return nil
	}
	return fields
}

// Debug logs at debug level with optional key/value fields.
func Debug(msg string, fields ...any) {
	fields = checkFields("Debug", fields)
	Logger().Debug().Fields(fields).Msg(msg)
}

// Info logs at info level with optional key/value fields.
func Info(msg string, fields ...any) {
	fields = checkFields("Info", fields)
	Logger().Info().Fields(fields).Msg(msg)
}

// Warn logs at warn level with optional key/value fields.
func Warn(msg string, fields ...any) {
	fields = checkFields("Warn", fields)
	Logger().Warn().Fields(fields).Msg(msg)
}

// Error logs err at error level with optional key/value fields.
func Error(err error, msg string, fields ...any) {
	fields = checkFields("Error", fields)
	Logger().Error().Err(err).Fields(fields).Msg(msg)
}

package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// EnvLevel is the environment variable that overrides the configured log level.
const EnvLevel = "FAULTLINE_LOG_LEVEL"

// Options configures a logger.
type Options struct {
	Level  string
	Format string // "text" or "json"
	Output io.Writer
}

// New builds a charmbracelet logger from options. The level in EnvLevel wins
// over the configured one.
func New(opts Options) *log.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	l := log.NewWithOptions(out, log.Options{
		Level:           ParseLevel(opts.Level),
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})

	if strings.EqualFold(opts.Format, "json") {
		l.SetFormatter(log.JSONFormatter)
	}

	if env := os.Getenv(EnvLevel); env != "" {
		l.SetLevel(ParseLevel(env))
		l.Debug("Log level set from environment variable", "level", env)
	}

	return l
}

// ParseLevel maps a level name to a log level, defaulting to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// Discard returns a logger that writes nothing, for tests.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

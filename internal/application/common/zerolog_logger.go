package common

import (
	"io"

	"github.com/rs/zerolog"
)

// ZerologLogger adapts a zerolog.Logger to the OperationLogger interface
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger creates a console-writing logger. With verbose set the
// level drops to debug, otherwise info.
func NewZerologLogger(out io.Writer, verbose bool) *ZerologLogger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: out}).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &ZerologLogger{logger: logger}
}

// Log writes the message at the mapped level with metadata as fields
func (l *ZerologLogger) Log(level, message string, metadata map[string]interface{}) {
	var event *zerolog.Event
	switch level {
	case "DEBUG":
		event = l.logger.Debug()
	case "WARN":
		event = l.logger.Warn()
	case "ERROR":
		event = l.logger.Error()
	default:
		event = l.logger.Info()
	}

	for key, value := range metadata {
		event = event.Interface(key, value)
	}
	event.Msg(message)
}

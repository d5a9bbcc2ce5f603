package shared

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	loggerMutex    sync.RWMutex
	loggingEnabled bool
	logOutput      io.Writer = os.Stderr
	logger                   = zerolog.Nop()
)

// EnableLogging switches the SDK logger on or off. Logging is off by default.
func EnableLogging(enabled bool) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()

	loggingEnabled = enabled
	rebuildLogger()
}

// LoggingEnabled reports whether SDK logging is on.
func LoggingEnabled() bool {
	loggerMutex.RLock()
	defer loggerMutex.RUnlock()
	return loggingEnabled
}

// SetLogOutput redirects SDK log output. A nil writer restores stderr.
func SetLogOutput(output io.Writer) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()

	if output == nil {
		output = os.Stderr
	}
	logOutput = output
	rebuildLogger()
}

// Logger returns the SDK logger. It discards everything while logging is off.
func Logger() *zerolog.Logger {
	loggerMutex.RLock()
	defer loggerMutex.RUnlock()
	current := logger
	return &current
}

func rebuildLogger() {
	if !loggingEnabled {
		logger = zerolog.Nop()
		return
	}

	writer := zerolog.ConsoleWriter{Out: logOutput, TimeFormat: time.RFC3339, NoColor: true}
	logger = zerolog.New(writer).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Str("component", "fuzion").
		Logger()
}

package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Logger interface {
	Debug(msg string)
	Info(msg string)
	Error(msg string, err error)
	Warning(msg string)
	Close()
}

type fileLogger struct {
	mu      sync.Mutex
	logFile *os.File
	log     zerolog.Logger
}

// NewFileLogger writes JSON lines to <logDir>/<logPrefix>_<timestamp>.json.
// The terminal belongs to the TUI, so nothing is written to stdout.
func NewFileLogger(logDir, logPrefix, level string) (Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory '%s': %w", logDir, err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logFilePath := filepath.Join(logDir, fmt.Sprintf("%s_%s.json", logPrefix, timestamp))

	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file '%s': %w", logFilePath, err)
	}

	return &fileLogger{
		logFile: file,
		log:     newZerolog(file, level),
	}, nil
}

// NewLogger logs to an arbitrary writer. Close is a no-op for it.
func NewLogger(w io.Writer, level string) Logger {
	return &fileLogger{log: newZerolog(w, level)}
}

func newZerolog(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	// one frame for zerolog itself and one for the fileLogger method
	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		CallerWithSkipFrameCount(zerolog.CallerSkipFrameCount + 1).
		Logger()
}

func (l *fileLogger) Debug(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Debug().Msg(msg)
}

func (l *fileLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Info().Msg(msg)
}

func (l *fileLogger) Error(msg string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Error().Err(err).Msg(msg)
}

func (l *fileLogger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Warn().Msg(msg)
}

func (l *fileLogger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logFile == nil {
		return
	}

	if err := l.logFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "error closing log file: %v\n", err)
	}
	l.logFile = nil
	l.log = zerolog.Nop()
}

// Package logger wraps zap with named sub-loggers, an optional file sink
// and entry hooks that UI surfaces can subscribe to.
package logger

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config represents configuration options for logger initialization.
type Config struct {
	Debug     bool   // enable debug logging
	LogToFile bool   // also write JSON logs to a file
	LogsDir   string // directory for log files (default: current working directory)
}

// Entry is one emitted log record as delivered to hooks.
type Entry struct {
	Timestamp time.Time
	Level     zapcore.Level
	Message   string
}

// Hook receives every log entry. The GUI status line subscribes here.
type Hook func(Entry)

type hookSet struct {
	mu    sync.RWMutex
	hooks []Hook
}

func (h *hookSet) add(hook Hook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks = append(h.hooks, hook)
}

func (h *hookSet) fire(e Entry) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.hooks {
		hook(e)
	}
}

// Logger is a named sugared zap logger. Child loggers created with Named
// share sinks and hooks with their parent.
type Logger struct {
	*zap.SugaredLogger
	hooks *hookSet
}

// New initializes a logger: colored console output, plus a JSON file sink
// when enabled.
func New(cfg Config) (*Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Debug {
		level = zapcore.DebugLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     "message",
		LevelKey:       "level",
		TimeKey:        "timestamp",
		NameKey:        "logger",
		CallerKey:      "caller",
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05"),
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stdout), level),
	}

	if cfg.LogToFile {
		dir := cfg.LogsDir
		if dir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			dir = wd
		}
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}

		fileEncoderConfig := encoderConfig
		fileEncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

		path := filepath.Join(dir, time.Now().Format("2006-01-02")+".log")
		file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileEncoderConfig), zapcore.AddSync(file), level))
	}

	hooks := &hookSet{}
	log := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.Hooks(func(entry zapcore.Entry) error {
		hooks.fire(Entry{Timestamp: entry.Time, Level: entry.Level, Message: entry.Message})
		return nil
	}))

	return &Logger{SugaredLogger: log.Named("main").Sugar(), hooks: hooks}, nil
}

// OnEntry registers a hook called for every subsequent log entry.
func (l *Logger) OnEntry(hook Hook) {
	l.hooks.add(hook)
}

// Named returns a child logger with the given name ("gui", "generator", ...).
func (l *Logger) Named(name string) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.Named(name), hooks: l.hooks}
}

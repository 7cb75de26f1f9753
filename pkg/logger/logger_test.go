package logger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	log, err := New(Config{})
	require.NoError(t, err)
	require.NotNil(t, log)
	log.Info("hello")
}

func TestOnEntry(t *testing.T) {
	log, err := New(Config{})
	require.NoError(t, err)

	var got []Entry
	log.OnEntry(func(e Entry) { got = append(got, e) })

	log.Infof("qr code saved as %s", "out.png")

	require.Len(t, got, 1)
	assert.Equal(t, zapcore.InfoLevel, got[0].Level)
	assert.Equal(t, "qr code saved as out.png", got[0].Message)
	assert.WithinDuration(t, time.Now(), got[0].Timestamp, time.Minute)
}

func TestNamedSharesHooks(t *testing.T) {
	log, err := New(Config{})
	require.NoError(t, err)

	var messages []string
	log.OnEntry(func(e Entry) { messages = append(messages, e.Message) })

	log.Named("gui").Info("from child")
	assert.Equal(t, []string{"from child"}, messages)
}

func TestDebugLevelGating(t *testing.T) {
	log, err := New(Config{})
	require.NoError(t, err)

	var count int
	log.OnEntry(func(Entry) { count++ })

	log.Debug("suppressed at info level")
	assert.Equal(t, 0, count)

	debug, err := New(Config{Debug: true})
	require.NoError(t, err)
	debug.OnEntry(func(Entry) { count++ })
	debug.Debug("visible at debug level")
	assert.Equal(t, 1, count)
}

func TestLogToFile(t *testing.T) {
	dir := t.TempDir()

	log, err := New(Config{LogToFile: true, LogsDir: dir})
	require.NoError(t, err)
	log.Info("persisted")
	_ = log.Sync() // stdout refuses fsync on some platforms, the file sink still flushes

	path := filepath.Join(dir, time.Now().Format("2006-01-02")+".log")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "persisted")
}

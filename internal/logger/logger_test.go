// Package logger - Test cấu hình mặc định, đường dẫn file log và async hook.
package logger

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigByEnvironment(t *testing.T) {
	t.Setenv("GO_ENV", "development")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	cfg := DefaultConfig()
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "app.log", cfg.AppFile)
	assert.Equal(t, "audit.log", cfg.AuditFile)

	t.Setenv("GO_ENV", "production")
	cfg = DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
}

func TestGetLogFilePath(t *testing.T) {
	prevConfig, prevRoot := config, rootDir
	defer func() { config, rootDir = prevConfig, prevRoot }()

	rootDir = t.TempDir()
	config = &LogConfig{LogPath: "./logs", AppFile: "app.log", AuditFile: "audit.log"}

	assert.Equal(t, filepath.Join(rootDir, "logs", "app.log"), getLogFilePath("app"))
	assert.Equal(t, filepath.Join(rootDir, "logs", "audit.log"), getLogFilePath("audit"))
	// Tên logger lạ dùng <name>.log
	assert.Equal(t, filepath.Join(rootDir, "logs", "worker.log"), getLogFilePath("worker"))
}

func TestAsyncHookWritesAfterClose(t *testing.T) {
	var buf bytes.Buffer
	hook := NewAsyncHook([]io.Writer{&buf}, 10)

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.AddHook(hook)
	log.SetOutput(io.Discard)

	log.WithField("service", "app").Info("ghi qua async hook")

	// Close đợi goroutine ghi xong, sau đó đọc buffer là an toàn
	require.NoError(t, hook.Close())
	assert.Contains(t, buf.String(), "ghi qua async hook")
}

func TestAsyncHookSkipsFilteredEntries(t *testing.T) {
	var buf bytes.Buffer
	hook := NewAsyncHook([]io.Writer{&buf}, 10)

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.AddHook(hook)
	log.SetOutput(io.Discard)

	log.WithField("_filtered", true).Info("entry bị loại")
	log.Info("entry được giữ")

	require.NoError(t, hook.Close())
	assert.NotContains(t, buf.String(), "entry bị loại")
	assert.Contains(t, buf.String(), "entry được giữ")
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8044", cfg.Server.Port)
	assert.Equal(t, "./cryptoquest.db", cfg.Database.SQLitePath)
	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
	assert.Equal(t, 10, cfg.Quiz.QuestionCount)
	assert.Equal(t, 30*time.Second, cfg.NarrativeTimeout())
	assert.Equal(t, "@hourly", cfg.Cleanup.Cron)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  port: "9090"
quiz:
  question_count: 5
narrative:
  webhook_url: https://hooks.example.com/narrative
  timeout_seconds: 5
cleanup:
  cron: "@every 10m"
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Quiz.QuestionCount)
	assert.Equal(t, "https://hooks.example.com/narrative", cfg.Narrative.WebhookURL)
	assert.Equal(t, 5*time.Second, cfg.NarrativeTimeout())
	assert.Equal(t, "@every 10m", cfg.Cleanup.Cron)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o644))

	t.Setenv("PORT", "7001")
	t.Setenv("QUIZ_QUESTION_COUNT", "3")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7001", cfg.Server.Port)
	assert.Equal(t, 3, cfg.Quiz.QuestionCount)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [this is not a mapping"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

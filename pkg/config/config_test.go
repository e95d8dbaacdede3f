package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, ":8000", cfg.HTTP.Addr)
	assert.Equal(t, 60*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, DirectorySourceFile, cfg.Directory.Source)
	assert.Equal(t, "data/referrals.json", cfg.Directory.Path)
	assert.Equal(t, 3, cfg.Referrals.Limit)
	assert.Equal(t, "whisper-1", cfg.OpenAI.TranscriptionModel)
	assert.False(t, cfg.OpenAIConfigured())
	assert.False(t, cfg.TwilioConfigured())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOriginList())
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
app:
  env: production
http:
  addr: ":9090"
  cors_origins: "https://a.example, https://b.example ,"
  request_timeout: 15s
openai:
  model: gpt-4o
directory:
  source: memory
referrals:
  limit: 5
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC1")
	t.Setenv("TWILIO_AUTH_TOKEN", "tok")
	t.Setenv("DATABASE_URL", "postgres://legal:pw@db.internal:6543/referrals?sslmode=require")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, 15*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOriginList())
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, DirectorySourceMemory, cfg.Directory.Source)
	assert.Equal(t, 5, cfg.Referrals.Limit)
	assert.True(t, cfg.OpenAIConfigured())
	assert.True(t, cfg.TwilioConfigured())

	assert.Equal(t, DatabaseConfig{
		Host:     "db.internal",
		Port:     6543,
		User:     "legal",
		Password: "pw",
		DBName:   "referrals",
		SSLMode:  "require",
	}, cfg.Database)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()

	badSource := filepath.Join(dir, "source.yaml")
	require.NoError(t, os.WriteFile(badSource, []byte("directory:\n  source: redis\n"), 0o600))
	_, err := LoadConfig(badSource)
	assert.ErrorContains(t, err, "unknown directory.source")

	noToken := filepath.Join(dir, "telegram.yaml")
	require.NoError(t, os.WriteFile(noToken, []byte("telegram:\n  enabled: true\n"), 0o600))
	t.Setenv("TELEGRAM_TOKEN", "")
	_, err = LoadConfig(noToken)
	assert.ErrorContains(t, err, "no token")

	malformed := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(malformed, []byte("app: [unclosed"), 0o600))
	_, err = LoadConfig(malformed)
	assert.Error(t, err)
}

func TestParseDatabaseURL_DefaultPort(t *testing.T) {
	cfg, err := parseDatabaseURL("postgres://u@localhost/legal")
	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, "disable", cfg.SSLMode)
}

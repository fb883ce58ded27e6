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
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8787", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.OpenAITextModel)
	assert.Equal(t, 4, cfg.Generation.Concurrency)
	assert.Zero(t, cfg.Generation.RateLimit)
	assert.Empty(t, cfg.Storage.Provider)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("OPENAI_API_KEY", "  sk-test  ")
	t.Setenv("GOOGLE_GEMINI_API_KEY", "gm-test")
	t.Setenv("DB_DRIVER", "POSTGRES")
	t.Setenv("DATABASE_URL", "host=localhost dbname=novonovo")
	t.Setenv("STORAGE_PROVIDER", "local")
	t.Setenv("GENERATION_CONCURRENCY", "8")
	t.Setenv("RATE_LIMIT_GENERATE_RPS", "2.5")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "sk-test", cfg.AI.OpenAIKey)
	assert.Equal(t, "gm-test", cfg.AI.GeminiKey)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "host=localhost dbname=novonovo", cfg.Database.DSN)
	assert.Equal(t, "local", cfg.Storage.Provider)
	assert.Equal(t, 8, cfg.Generation.Concurrency)
	assert.Equal(t, 2.5, cfg.Generation.RateLimit)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "7000"
  mode: debug
generation:
  concurrency: 2
storage:
  provider: s3
  bucket: media
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, 2, cfg.Generation.Concurrency)
	assert.Equal(t, "media", cfg.Storage.Bucket)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:     ServerConfig{Mode: "release"},
			Database:   DatabaseConfig{Driver: "sqlite", DSN: "x.db"},
			Generation: GenerationConfig{Concurrency: 0},
		}
	}

	cfg := valid()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.Generation.Concurrency)

	tests := map[string]func(c *Config){
		"运行模式":   func(c *Config) { c.Server.Mode = "prod" },
		"数据库驱动":  func(c *Config) { c.Database.Driver = "mysql" },
		"空连接串":   func(c *Config) { c.Database.DSN = "" },
		"存储提供者":  func(c *Config) { c.Storage.Provider = "gcs" },
		"S3 缺少桶": func(c *Config) { c.Storage.Provider = "s3" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

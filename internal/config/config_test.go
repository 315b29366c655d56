package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "json"},
		Storage: StorageConfig{Backend: "file", Path: "saves", Slot: "wildshelper-save"},
		Console: ConsoleConfig{Prompt: "> "},
	}
}

func TestValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestLoad_DefaultsOnly(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "wildshelper-save", cfg.Storage.Slot)
	assert.Equal(t, int64(0), cfg.Dice.Seed)
	assert.True(t, cfg.Console.Color)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: json
  file: /tmp/wilds.log
storage:
  backend: sqlite
  path: /tmp/wilds.db
  slot: campaign-one
oracle:
  tables_file: content/oracles.yaml
dice:
  seed: 99
console:
  color: false
`), 0o644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/wilds.log", cfg.Logging.File)
	assert.Equal(t, 10, cfg.Logging.MaxSizeMB, "unset keys keep defaults")
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "campaign-one", cfg.Storage.Slot)
	assert.Equal(t, "content/oracles.yaml", cfg.Oracle.TablesFile)
	assert.Equal(t, int64(99), cfg.Dice.Seed)
	assert.False(t, cfg.Console.Color)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("WILDS_STORAGE_BACKEND", "sqlite")
	t.Setenv("WILDS_DICE_SEED", "7")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, int64(7), cfg.Dice.Seed)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadFromViper_Invalid(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("storage.backend", "postgres")
	_, err := LoadFromViper(v)
	assert.ErrorContains(t, err, "storage.backend")
}

func TestValidateStorage(t *testing.T) {
	cases := map[string]func(*Config){
		"backend": func(c *Config) { c.Storage.Backend = "cloud" },
		"path":    func(c *Config) { c.Storage.Path = " " },
		"slot":    func(c *Config) { c.Storage.Slot = "" },
		"slotdir": func(c *Config) { c.Storage.Slot = "../save" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateLogging_FileRotation(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.File = "wilds.log"
	cfg.Logging.MaxSizeMB = 0
	assert.ErrorContains(t, cfg.Validate(), "max_size_mb")

	cfg.Logging.MaxSizeMB = 5
	assert.NoError(t, cfg.Validate())
}

func TestValidate_ReportsAllViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	cfg.Storage.Backend = "cloud"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "storage.backend")
}

func TestProperty_InvalidLogLevelRejected(t *testing.T) {
	valid := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	rapid.Check(t, func(t *rapid.T) {
		level := rapid.String().Draw(t, "level")
		cfg := validConfig()
		cfg.Logging.Level = level
		err := cfg.Validate()
		if valid[level] && err != nil {
			t.Fatalf("level %q rejected: %v", level, err)
		}
		if !valid[level] && err == nil {
			t.Fatalf("level %q accepted", level)
		}
	})
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PTM_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
	t.Setenv("PTM_DB", "")
	t.Setenv("PTM_ADDR", "")
	t.Setenv("PTM_LOG_FILE", "")
	t.Setenv("PTM_LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Contains(t, cfg.DBPath, ".ptm")
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadTOMLAndEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "ptm.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(
		"db_path = \"/tmp/from-toml.db\"\naddr = \":9000\"\nlog_level = \"debug\"\n",
	), 0o644))

	t.Setenv("PTM_CONFIG", tomlPath)
	t.Setenv("PTM_DB", "")
	t.Setenv("PTM_ADDR", ":7777")
	t.Setenv("PTM_LOG_FILE", "")
	t.Setenv("PTM_LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-toml.db", cfg.DBPath, "file value used when env is unset")
	assert.Equal(t, ":7777", cfg.Addr, "env wins over file")
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsBrokenTOML(t *testing.T) {
	tomlPath := filepath.Join(t.TempDir(), "ptm.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("db_path = [broken"), 0o644))
	t.Setenv("PTM_CONFIG", tomlPath)

	_, err := Load()
	require.Error(t, err)
}

func TestNewLoggerLevels(t *testing.T) {
	logger := NewLogger(Config{LogLevel: "debug"})
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger = NewLogger(Config{LogLevel: "nonsense"})
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

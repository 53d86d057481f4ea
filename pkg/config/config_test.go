package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvLogLevel, EnvLogFormat, EnvLocale, EnvPretty} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("formcheck", filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.Equal(t, DefaultLocale, cfg.Language)
	assert.False(t, cfg.Pretty)
	assert.NotNil(t, cfg.Log)
}

func TestLoad_FromEnvFile(t *testing.T) {
	clearEnv(t)

	file := filepath.Join(t.TempDir(), ".env")
	content := "LOG_LEVEL=DEBUG\nLOG_FORMAT=json\nFORMCHECK_LOCALE=en_US.UTF-8\nFORMCHECK_PRETTY=true\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	cfg, err := Load("formcheck", file)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "en", cfg.Language)
	assert.True(t, cfg.Pretty)
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLocale, "ru")

	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("FORMCHECK_LOCALE=en\n"), 0o600))

	cfg, err := Load("formcheck", file)
	require.NoError(t, err)
	assert.Equal(t, "ru", cfg.Language)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := &Config{LogLevel: "loud", LogFormat: "yaml", Locale: "", Language: "ru"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1. LOG_LEVEL")
	assert.Contains(t, err.Error(), "2. LOG_FORMAT")
	assert.Contains(t, err.Error(), "3. FORMCHECK_LOCALE cannot be empty")
}

func TestLoad_InvalidBool(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPretty, "maybe")

	_, err := Load("formcheck", filepath.Join(t.TempDir(), "none.env"))
	assert.Error(t, err)
}

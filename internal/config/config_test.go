package config

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSiteConfig_Defaults(t *testing.T) {
	cfg := NewSiteConfig(context.Background())

	assert.Equal(t, "https://clinica.chitgma.ru/diagnosticheskaya-poliklinika", cfg.MainURL)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, cfg.LabURL, cfg.GetResultsURL())
}

func TestNewSiteConfig_FromEnv(t *testing.T) {
	t.Setenv("CLINIC_MAIN_URL", "http://localhost/main")
	t.Setenv("CLINIC_RESULTS_URL", "http://localhost/results")
	t.Setenv("CLINIC_FETCH_TIMEOUT", "2s")

	cfg := NewSiteConfig(context.Background())

	assert.Equal(t, "http://localhost/main", cfg.MainURL)
	assert.Equal(t, "http://localhost/results", cfg.GetResultsURL())
	assert.Equal(t, 2*time.Second, cfg.Timeout)
}

func TestNewLLMConfig_Defaults(t *testing.T) {
	cfg := NewLLMConfig(context.Background())

	assert.Equal(t, "gigachat", cfg.Provider)
	assert.Equal(t, "GIGACHAT_API_PERS", cfg.GigaChatScope)
	assert.True(t, cfg.GigaChatInsecure)
}

func TestGetRuntimePath(t *testing.T) {
	t.Run("absolute path kept", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("MEDIC_RUNTIME_PATH", dir)
		assert.Equal(t, dir, GetRuntimePath())
	})

	t.Run("relative path resolved against home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv("MEDIC_RUNTIME_PATH", "bot")
		require.Equal(t, filepath.Join(home, "bot"), GetRuntimePath())
	})
}

func TestAppConfig_Paths(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MEDIC_RUNTIME_PATH", dir)

	cfg := NewAppConfig(context.Background())

	assert.Equal(t, filepath.Join(dir, "SYSTEM.md"), cfg.GetSystemPath())
	assert.Equal(t, filepath.Join(dir, ".env"), cfg.GetEnvPath())
	assert.True(t, cfg.EnableHTTP)
	assert.False(t, cfg.EnableTelegram)
}

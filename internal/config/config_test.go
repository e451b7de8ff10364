package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"profcard"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, "profile.db", cfg.DBPath)
	assert.Equal(t, "photos", cfg.PhotoDir)
	assert.Equal(t, 5*time.Second, cfg.DBBusyTimeout)
	assert.False(t, cfg.NoColor)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	resetArgs(t, "-d", "cards.db", "-p", "/tmp/pics", "-no-color")

	cfg := LoadConfig()

	assert.Equal(t, "cards.db", cfg.DBPath)
	assert.Equal(t, "/tmp/pics", cfg.PhotoDir)
	assert.True(t, cfg.NoColor)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("PROFCARD_DB_PATH", "env.db")
	t.Setenv("PROFCARD_DB_BUSY_TIMEOUT", "2s")

	cfg := LoadConfig()

	assert.Equal(t, "env.db", cfg.DBPath)
	assert.Equal(t, 2*time.Second, cfg.DBBusyTimeout)
	assert.Equal(t, "photos", cfg.PhotoDir, "unset vars keep defaults")
}

func TestLoadConfig_FlagsBeatEnv(t *testing.T) {
	resetArgs(t, "-d", "flag.db")
	t.Setenv("PROFCARD_DB_PATH", "env.db")

	cfg := LoadConfig()

	assert.Equal(t, "flag.db", cfg.DBPath)
}

func TestLoadConfig_NoColorEnvBool(t *testing.T) {
	resetArgs(t)
	t.Setenv("PROFCARD_NO_COLOR", "true")

	cfg := LoadConfig()
	require.True(t, cfg.NoColor)
}

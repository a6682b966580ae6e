package config

import (
	"os"
	"path/filepath"
	"testing"

	"solanaswap/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var cfg core.Config
	require.Nil(t, Load("", &cfg))

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, FormatText, cfg.Log.Format)
	assert.Empty(t, cfg.Skill.Name)
}

func TestValidate(t *testing.T) {
	cfg := core.Config{Log: core.Log{Level: " DEBUG ", Format: "JSON"}}
	defaultLog(&cfg)
	require.Nil(t, Validate(&cfg))
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, FormatJSON, cfg.Log.Format)

	cfg.Log.Format = "xml"
	assert.NotNil(t, Validate(&cfg))

	cfg.Log.Format = FormatText
	cfg.Log.Level = "loud"
	assert.NotNil(t, Validate(&cfg))
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	file := filepath.Join(t.TempDir(), "solana-swap.yaml")
	require.Nil(t, os.WriteFile(file, []byte(content), 0o600))
	return file
}

func TestLoadFile(t *testing.T) {
	file := writeConfig(t, `log:
  level: debug
  format: json
skill:
  name: jupiter_swap
  runtime: exec
`)

	var cfg core.Config
	require.Nil(t, Load(file, &cfg))

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, FormatJSON, cfg.Log.Format)
	assert.Equal(t, "jupiter_swap", cfg.Skill.Name)
	assert.Equal(t, "exec", cfg.Skill.Runtime)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SOLANA_SWAP_LOG_LEVEL", "warn")
	file := writeConfig(t, `log:
  level: debug
`)

	var cfg core.Config
	require.Nil(t, Load(file, &cfg))
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadInvalidFormat(t *testing.T) {
	file := writeConfig(t, `log:
  format: xml
`)

	var cfg core.Config
	assert.NotNil(t, Load(file, &cfg))
}

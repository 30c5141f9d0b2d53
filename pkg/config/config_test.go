package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestInitConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultFileName)

	config, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
	assert.FileExists(t, path)

	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), reloaded)
}

func TestLoadConfigKeepsMissingDefaults(t *testing.T) {
	path := writeConfig(t, "[server]\nmax_limit = 20\n\n[trainer]\nfold_prefix = false\n")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 20, config.Server.MaxLimit)
	assert.False(t, config.Trainer.FoldPrefix)
	assert.Equal(t, ".txt", config.Trainer.CorpusExt)
	assert.Equal(t, DefaultConfig().CLI, config.CLI)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	// max_limit has the wrong type, the rest is still usable
	path := writeConfig(t, "[server]\nmax_limit = \"lots\"\nmax_prefix = 30\n\n[cli]\nshow_scores = true\n")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Server.MaxLimit, config.Server.MaxLimit)
	assert.Equal(t, 30, config.Server.MaxPrefix)
	assert.True(t, config.CLI.ShowScores)
}

func TestLoadConfigGarbage(t *testing.T) {
	path := writeConfig(t, "this is [[ not toml")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestSanitize(t *testing.T) {
	testCases := []struct {
		content     string
		check       func(t *testing.T, c *Config)
		description string
	}{
		{
			"[server]\nmax_limit = 0\n",
			func(t *testing.T, c *Config) { assert.Equal(t, 64, c.Server.MaxLimit) },
			"Zero max limit",
		},
		{
			"[server]\nmax_limit = 5\ndefault_limit = 50\n",
			func(t *testing.T, c *Config) { assert.Equal(t, 5, c.Server.DefaultLimit) },
			"Default limit above max",
		},
		{
			"[server]\nmin_prefix = 10\nmax_prefix = 2\n",
			func(t *testing.T, c *Config) { assert.Equal(t, 60, c.Server.MaxPrefix) },
			"Inverted prefix bounds",
		},
		{
			"[cli]\ndefault_limit = -3\n",
			func(t *testing.T, c *Config) { assert.Equal(t, 0, c.CLI.DefaultLimit) },
			"Negative cli limit",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			config, err := LoadConfig(writeConfig(t, tc.content))
			require.NoError(t, err)
			tc.check(t, config)
		})
	}
}

func TestLoadConfigWithPriority(t *testing.T) {
	custom := writeConfig(t, "[server]\nmax_limit = 7\n")
	defaultPath := filepath.Join(t.TempDir(), DefaultFileName)

	config, used, err := LoadConfigWithPriority(custom, defaultPath)
	require.NoError(t, err)
	assert.Equal(t, custom, used)
	assert.Equal(t, 7, config.Server.MaxLimit)

	config, used, err = LoadConfigWithPriority(filepath.Join(t.TempDir(), "missing.toml"), defaultPath)
	require.NoError(t, err)
	assert.Equal(t, defaultPath, used)
	assert.Equal(t, DefaultConfig(), config)
	assert.FileExists(t, defaultPath)

	config, used, err = LoadConfigWithPriority("", "")
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, DefaultConfig(), config)
}

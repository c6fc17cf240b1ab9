package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, content LinkedConfig) string {
	t.Helper()
	tempFilePath := filepath.Join(dir, configFileName)
	data, err := yaml.Marshal(&content)
	require.NoError(t, err)
	err = os.WriteFile(tempFilePath, data, 0644)
	require.NoError(t, err)
	return tempFilePath
}

func mockHomeDir(t *testing.T, dir string) {
	t.Helper()
	original := userHomeDir
	userHomeDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { userHomeDir = original })
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	tempDir := t.TempDir()

	loadedConfig, err := LoadConfig(tempDir)
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loadedConfig)
	assert.True(t, loadedConfig.CopyToClipboard)
	assert.False(t, loadedConfig.SanitizeTargets)
}

func TestLoadConfig_UserOverride(t *testing.T) {
	tempDir := t.TempDir()
	createTempConfigFile(t, tempDir, LinkedConfig{
		LinksFile:       "work.json",
		SanitizeTargets: true,
		Output:          "table",
		CopyToClipboard: false,
		LogLevel:        "debug",
	})

	loadedConfig, err := LoadConfig(tempDir)
	require.NoError(t, err)
	assert.Equal(t, "work.json", loadedConfig.LinksFile)
	assert.True(t, loadedConfig.SanitizeTargets)
	assert.Equal(t, "table", loadedConfig.Output)
	assert.False(t, loadedConfig.CopyToClipboard)
	assert.Equal(t, "debug", loadedConfig.LogLevel)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, configFileName), []byte("output: json\n"), 0644))

	loadedConfig, err := LoadConfig(tempDir)
	require.NoError(t, err)
	assert.Equal(t, "json", loadedConfig.Output)
	assert.Equal(t, GetDefaultConfig().LinksFile, loadedConfig.LinksFile)
	assert.True(t, loadedConfig.CopyToClipboard)
}

func TestLoadConfig_Malformed(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, configFileName), []byte("output: [unclosed\n"), 0644))

	_, err := LoadConfig(tempDir)
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "parse", cfgErr.ErrorType)
	assert.Contains(t, err.Error(), configFileName)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"unknown output", "output: xml\n", "output"},
		{"unknown log level", "logLevel: loud\n", "logLevel"},
		{"links file with directory", "linksFile: ../links.json\n", "linksFile"},
		{"links file is config", "linksFile: config.yaml\n", "linksFile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(tempDir, configFileName), []byte(tt.content), 0644))

			_, err := LoadConfig(tempDir)
			require.Error(t, err)

			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, "validation", cfgErr.ErrorType)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestDefaultConfigDir(t *testing.T) {
	home := t.TempDir()
	mockHomeDir(t, home)

	dir, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "linked"), dir)
}

func TestDefaultConfigDir_NoHome(t *testing.T) {
	original := userHomeDir
	userHomeDir = func() (string, error) { return "", errors.New("no home") }
	defer func() { userHomeDir = original }()

	_, err := DefaultConfigDir()
	require.Error(t, err)

	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestResolveConfigDir_Precedence(t *testing.T) {
	home := t.TempDir()
	mockHomeDir(t, home)

	flagDir := filepath.Join(t.TempDir(), "flag")
	envDir := filepath.Join(t.TempDir(), "env")

	t.Run("default", func(t *testing.T) {
		t.Setenv(ConfigDirEnvVar, "")
		dir, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "linked"), dir)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv(ConfigDirEnvVar, envDir)
		dir, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, envDir, dir)
	})

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(ConfigDirEnvVar, envDir)
		dir, err := ResolveConfigDir(flagDir)
		require.NoError(t, err)
		assert.Equal(t, flagDir, dir)
	})
}

func TestResolveConfigDir_ExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	homedir.DisableCache = true
	defer func() { homedir.DisableCache = false }()

	dir, err := ResolveConfigDir("~/links")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "links"), dir)
}

func TestEnsureConfigDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "linked")

	require.NoError(t, EnsureConfigDir(dir))
	require.NoError(t, EnsureConfigDir(dir), "must be idempotent")

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureConfigDir_Blocked(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	err := EnsureConfigDir(filepath.Join(blocker, "linked"))
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "io", cfgErr.ErrorType)
}

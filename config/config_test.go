package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ENV_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("SECRETS_DIR", dir)
	for _, key := range []string{
		"SPOONACULAR_API_KEY",
		"SPOONACULAR_API_KEY_FILE",
		"SPOONACULAR_BASE_URL",
		"RECIPE_API_TIMEOUT",
		"SERVER_HOST",
		"SERVER_PORT",
		"CORS_ALLOWED_ORIGINS",
	} {
		unsetEnv(t, key)
	}
	return dir
}

// unsetEnv removes key for the duration of the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadConfig(t *testing.T) {
	isolateEnv(t)
	t.Setenv("SPOONACULAR_API_KEY", "test-key")
	t.Setenv("SPOONACULAR_BASE_URL", "http://localhost:9999/recipes/")
	t.Setenv("RECIPE_API_TIMEOUT", "15s")
	t.Setenv("SERVER_PORT", "3000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "http://localhost:9999/recipes", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, "3000", cfg.ServerPort)
}

func TestLoadConfigWithDefaults(t *testing.T) {
	isolateEnv(t)
	t.Setenv("SPOONACULAR_API_KEY", "test-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, "https://api.spoonacular.com/recipes", cfg.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestLoadConfigFromKeyFile(t *testing.T) {
	dir := isolateEnv(t)
	path := filepath.Join(dir, "key")
	require.NoError(t, os.WriteFile(path, []byte("  file-key\n"), 0o600))
	t.Setenv("SPOONACULAR_API_KEY_FILE", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.APIKey)
}

func TestLoadConfigFromSecretsDir(t *testing.T) {
	dir := isolateEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "spoonacular_api_key"), []byte("secret-key\n"), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "secret-key", cfg.APIKey)
}

func TestLoadConfigFromDotEnv(t *testing.T) {
	dir := isolateEnv(t)
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SPOONACULAR_API_KEY=dotenv-key\n"), 0o600))
	t.Setenv("ENV_FILE", envFile)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "dotenv-key", cfg.APIKey)
}

func TestLoadConfigMissingKey(t *testing.T) {
	isolateEnv(t)

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SPOONACULAR_API_KEY")
}

func TestLoadConfigEmptyKeyFile(t *testing.T) {
	dir := isolateEnv(t)
	path := filepath.Join(dir, "key")
	require.NoError(t, os.WriteFile(path, []byte("\n"), 0o600))
	t.Setenv("SPOONACULAR_API_KEY_FILE", path)

	_, err := LoadConfig()
	assert.EqualError(t, err, "API key file is empty")
}

func TestValidateConfig(t *testing.T) {
	cfg := &Config{APIKey: "k", BaseURL: "not a url", ServerPort: "abc", Timeout: -time.Second}

	err := ValidateConfig(cfg)
	require.Error(t, err)

	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "SPOONACULAR_BASE_URL")
	assert.Contains(t, err.Error(), "RECIPE_API_TIMEOUT")
	assert.NotContains(t, err.Error(), "SERVER_PORT")
	assert.NotContains(t, err.Error(), "SPOONACULAR_API_KEY:")
}

func TestLoadConfigIgnoresServerPort(t *testing.T) {
	isolateEnv(t)
	t.Setenv("SPOONACULAR_API_KEY", "test-key")
	t.Setenv("SERVER_PORT", "not-a-port")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "not-a-port", cfg.ServerPort)
}

func TestValidateServer(t *testing.T) {
	assert.NoError(t, ValidateServer(&Config{ServerPort: "8080"}))
	assert.NoError(t, ValidateServer(&Config{ServerPort: "0"}))
	assert.EqualError(t, ValidateServer(&Config{ServerPort: "abc"}), "SERVER_PORT: must be a port number")
	assert.Error(t, ValidateServer(&Config{ServerPort: "70000"}))
}

func TestGetEnvironment(t *testing.T) {
	tests := []struct {
		ci, env string
		want    Environment
		mode    string
	}{
		{"", "", Development, "debug"},
		{"", "production", Production, "release"},
		{"", "test", Test, "test"},
		{"true", "production", CI, "test"},
	}

	for _, tt := range tests {
		t.Setenv("CI", tt.ci)
		t.Setenv("ENV", tt.env)
		got := GetEnvironment()
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.mode, got.GinMode())
	}
}

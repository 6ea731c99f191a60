package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeTempConfig(t, `{"max_bullets": 6, "verbose": true}`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 6, cfg.MaxBullets)
	assert.True(t, cfg.Verbose)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	path := writeTempConfig(t, `{"api_key": "file-key"}`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.APIKey)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))

	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeTempConfig(t, `{broken`)

	_, err := Load(path)

	assert.Error(t, err)
}

func TestValidate_MutuallyExclusiveSources(t *testing.T) {
	cfg := &Config{Job: "job.txt", JobURL: "https://example.com/job"}

	assert.Error(t, cfg.Validate())
}

func TestValidate_NegativeLimits(t *testing.T) {
	assert.Error(t, (&Config{MaxBullets: -1}).Validate())
	assert.Error(t, (&Config{KeywordLimit: -5}).Validate())
	assert.NoError(t, (&Config{}).Validate())
}

func TestValidate_MissingProfileFile(t *testing.T) {
	cfg := &Config{Profile: filepath.Join(t.TempDir(), "absent.json")}

	assert.Error(t, cfg.Validate())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/jobmatch")

	cfg := FromEnv()

	assert.Equal(t, "postgres://localhost/jobmatch", cfg.DatabaseURL)
}

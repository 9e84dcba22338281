package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeWithDefaults_FillsZeroFields(t *testing.T) {
	cfg := (&Config{}).MergeWithDefaults(Default())

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultTopN, cfg.TopN)
	assert.Equal(t, DefaultMinimumScore, cfg.MinimumScore)
	assert.Equal(t, DefaultMaxFeatures, cfg.MaxFeatures)
	assert.Equal(t, DefaultMaxUploadBytes, cfg.MaxUploadBytes)
}

func TestMergeWithDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := (&Config{Port: 9000, TopN: 5}).MergeWithDefaults(Default())

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, DefaultMinimumScore, cfg.MinimumScore)
}

func TestMergeWithDefaults_EnvOverrides(t *testing.T) {
	t.Setenv("DATASET_PATH", "/tmp/courses.csv")
	t.Setenv("DATABASE_URL", "postgres://localhost/courses")

	cfg := (&Config{DatasetPath: "ignored.csv"}).MergeWithDefaults(Default())
	assert.Equal(t, "/tmp/courses.csv", cfg.DatasetPath)
	assert.Equal(t, "postgres://localhost/courses", cfg.DatabaseURL)
}

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"port": 9090, "top_n": 25, "min_similarity_score": 0.2}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 25, cfg.TopN)
	assert.Equal(t, 0.2, cfg.MinimumScore)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	bad := Default()
	bad.Port = 99999
	assert.Error(t, bad.Validate())

	bad = Default()
	bad.TopN = -1
	assert.Error(t, bad.Validate())

	bad = Default()
	bad.DatasetPath = "/definitely/not/a/real/file.csv"
	assert.Error(t, bad.Validate())
}

func TestLoadAuthConfig_Disabled(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	cfg, err := LoadAuthConfig()
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)
	assert.Equal(t, DefaultJWTExpirationHours, cfg.ExpirationHours)
}

func TestLoadAuthConfig_Enabled(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_PASSWORD_HASH", hash)
	t.Setenv("JWT_EXPIRATION_HOURS", "2")

	cfg, err := LoadAuthConfig()
	require.NoError(t, err)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 2, cfg.ExpirationHours)

	assert.True(t, cfg.VerifyAdminPassword("hunter2"))
	assert.False(t, cfg.VerifyAdminPassword("wrong"))
}

func TestLoadAuthConfig_InvalidExpiration(t *testing.T) {
	t.Setenv("JWT_EXPIRATION_HOURS", "soon")

	_, err := LoadAuthConfig()
	assert.Error(t, err)
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "localhost:3000", cfg.EndpointAddr)
	assert.Equal(t, "localhost:3001", cfg.ImgprocAddr)
	assert.Equal(t, 30*24*time.Hour, cfg.SessionValidity)
	assert.Equal(t, "built/data", cfg.DataDir)
	assert.Empty(t, cfg.S3Bucket, "S3 backend disabled by default")
}

func TestLoadConfig_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"endpoint_addr":    "example:9000",
		"database_dsn":     "postgres://json",
		"session_validity": "48h",
		"data_dir":         "/var/foto",
		"imgproc_addr":     "localhost:4001",
		"s3_bucket":        "fotos",
	})

	t.Run("json overlays defaults", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := LoadConfig()
		assert.Equal(t, "example:9000", cfg.EndpointAddr)
		assert.Equal(t, "postgres://json", cfg.DatabaseDSN)
		assert.Equal(t, 48*time.Hour, cfg.SessionValidity)
		assert.Equal(t, "/var/foto", cfg.DataDir)
		assert.Equal(t, "localhost:4001", cfg.ImgprocAddr)
		assert.Equal(t, "fotos", cfg.S3Bucket)
	})

	t.Run("flags overlay json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path, "-a", "flag:1234", "-t", "24"}

		cfg := LoadConfig()
		assert.Equal(t, "flag:1234", cfg.EndpointAddr)
		assert.Equal(t, 24*time.Hour, cfg.SessionValidity)
		// untouched by flags: json still wins over defaults
		assert.Equal(t, "postgres://json", cfg.DatabaseDSN)
	})

	t.Run("sub-hour json validity survives absent -t flag", func(t *testing.T) {
		short := writeTempJSON(t, map[string]any{
			"session_validity": "90m",
		})
		os.Args = []string{"testbin", "-config", short, "-a", "flag:1234"}

		cfg := LoadConfig()
		assert.Equal(t, 90*time.Minute, cfg.SessionValidity)
	})

	t.Run("cors origin comes from environment", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv("CORS_ALLOWED_ORIGIN", "http://localhost:5173")

		cfg := LoadConfig()
		assert.Equal(t, "http://localhost:5173", cfg.CORSAllowedOrigin)
	})
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"Trendline/internal/config"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("YOUTUBE_API_KEY", "")

	cfg, err := config.LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "US", cfg.Pipeline.Region)
	assert.Equal(t, 50, cfg.Pipeline.MaxResults)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "data/raw", cfg.Pipeline.RawDir)

	_, err = cfg.RequireAPIKey()
	assert.ErrorIs(t, err, config.ErrMissingAPIKey)
}

func TestLoadConfigEnvAndFlags(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("YOUTUBE_API_KEY", "secret")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_PASSWORD", "pw")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("region", "US", "")
	flags.Int("max-results", 50, "")
	require.NoError(t, flags.Parse([]string{"--region", "gb", "--max-results", "10"}))

	cfg, err := config.LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "GB", cfg.Pipeline.Region)
	assert.Equal(t, 10, cfg.Pipeline.MaxResults)

	key, err := cfg.RequireAPIKey()
	require.NoError(t, err)
	assert.Equal(t, "secret", key)

	dsn, err := cfg.DB.DSN()
	require.NoError(t, err)
	assert.Contains(t, dsn, "root:pw@tcp(localhost:3306)/youtube_analytics")
	assert.Contains(t, dsn, "parseTime=true")
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pipeline:\n  region: IN\n  max_results: 25\n"), 0o644))

	cfg, err := config.LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "IN", cfg.Pipeline.Region)
	assert.Equal(t, 25, cfg.Pipeline.MaxResults)
}

func TestLoadConfigInvalid(t *testing.T) {
	chdir(t, t.TempDir())

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("max-results", 50, "")
	require.NoError(t, flags.Parse([]string{"--max-results", "500"}))

	_, err := config.LoadConfig("", flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MaxResults")
}

func TestDSNMissingPassword(t *testing.T) {
	db := config.DBConfig{Driver: "mysql", User: "root", Host: "localhost", Port: 3306, Name: "yt"}
	_, err := db.DSN()
	assert.ErrorIs(t, err, config.ErrMissingDBPassword)

	db = config.DBConfig{Driver: "sqlite", SQLitePath: "x.db"}
	dsn, err := db.DSN()
	require.NoError(t, err)
	assert.Contains(t, dsn, "x.db?")
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}

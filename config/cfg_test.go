package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-analytics/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[mysql]
dsn = "user:pass@tcp(localhost:3306)/shop?parseTime=true"
automigrate = true

[redis]
ttl = "2m"

[reports]
top_limit = 10
timezone = "UTC"

[warmup]
units = ["quarter"]
`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "user:pass@tcp(localhost:3306)/shop?parseTime=true", cfg.DB.DSN)
	assert.True(t, cfg.DB.Automigrate)
	assert.Equal(t, 2*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, 10, cfg.Reports.TopLimit)
	assert.Equal(t, []entity.TimeUnit{entity.TimeUnitQuarter}, cfg.Warmup.Units)
	assert.Equal(t, 5*time.Minute, cfg.Warmup.WorkerInterval)
	assert.Equal(t, "8081", cfg.HTTP.Port)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("MYSQL_DSN", "")
	t.Setenv("MYSQL_HOST", "db.internal")
	t.Setenv("MYSQL_USER", "analytics")
	t.Setenv("MYSQL_PASSWORD", "secret")
	t.Setenv("MYSQL_DATABASE", "shop")
	t.Setenv("REPORTS_TOP_LIMIT", "3")
	t.Setenv("HTTP_PORT", "9000")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, "analytics:secret@tcp(db.internal:3306)/shop?charset=utf8&parseTime=true", cfg.DB.DSN)
	assert.Equal(t, 3, cfg.Reports.TopLimit)
	assert.Equal(t, "9000", cfg.HTTP.Port)
	assert.Equal(t, []entity.TimeUnit{entity.TimeUnitWeek, entity.TimeUnitMonth}, cfg.Warmup.Units)
}

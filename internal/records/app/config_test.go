package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/records/pkg/httpx"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "CLIENT_URL", "DB_DRIVER", "DATABASE_FILE", "DATABASE_URL",
		"DB_TIMEOUT", "NATS_URL", "ENV", "LOG_LEVEL", "LOG_FORMAT", "SHUTDOWN_GRACE_PERIOD",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	require.Equal(t, 5000, cfg.Port)
	require.Equal(t, "http://localhost:3000", cfg.ClientURL)
	require.Equal(t, DriverSQLite, cfg.DBDriver)
	require.Equal(t, "records.db", cfg.DatabaseFile)
	require.Equal(t, 5*time.Second, cfg.DBTimeout)
	require.Empty(t, cfg.NATSURL)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("CLIENT_URL", "https://records.example")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@db/records?sslmode=disable")
	t.Setenv("DB_TIMEOUT", "250ms")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "3")

	cfg := LoadConfig()
	require.Equal(t, 8081, cfg.Port)
	require.Equal(t, "https://records.example", cfg.ClientURL)
	require.Equal(t, DriverPostgres, cfg.DBDriver)
	require.Equal(t, 250*time.Millisecond, cfg.DBTimeout)
	require.Equal(t, 3*time.Second, cfg.ShutdownGracePeriod)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("DB_TIMEOUT", "soon")

	cfg := LoadConfig()
	require.Equal(t, 5000, cfg.Port)
	require.Equal(t, 5*time.Second, cfg.DBTimeout)
}

func TestValidate(t *testing.T) {
	base := Config{Port: 5000, DBDriver: DriverSQLite, DatabaseFile: "records.db"}
	require.NoError(t, base.Validate())

	cfg := base
	cfg.DBDriver = "mysql"
	require.ErrorContains(t, cfg.Validate(), "unknown DB_DRIVER")

	cfg = base
	cfg.DBDriver = DriverPostgres
	require.ErrorContains(t, cfg.Validate(), "DATABASE_URL is required")

	cfg = base
	cfg.Port = 70000
	require.ErrorContains(t, cfg.Validate(), "PORT out of range")
}

func TestLoadConfigRateLimits(t *testing.T) {
	t.Setenv("RATELIMIT_MODERATE_REQUESTS", "1000")
	t.Setenv("RATELIMIT_MODERATE_BURST", "1000")

	cfg := LoadConfig()
	require.Equal(t, 1000, cfg.RateLimits.Moderate.Requests)
	require.Equal(t, 1000, cfg.RateLimits.Moderate.Burst)
	require.Equal(t, time.Minute, cfg.RateLimits.Moderate.Window)
	require.Equal(t, httpx.DefaultRateLimits().Lenient, cfg.RateLimits.Lenient)
}

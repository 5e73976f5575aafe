package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"APP_PORT", "STORE_DRIVER", "STORE_DISABLE_TX",
	"MYSQL_HOST", "MYSQL_PORT", "MYSQL_DB", "MYSQL_USER", "MYSQL_PASS",
	"SQLITE_PATH", "MONGO_URI", "MONGO_DB", "REDIS_ADDR", "REDIS_DB",
	"IDEMPOTENCY_TTL_SECONDS", "JWT_SECRET", "LOG_LEVEL", "LOG_PRETTY", "RECONCILE_SCHEDULE",
}

// isolate clears every key and runs from an empty dir so no .env leaks in.
func isolate(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	c := Load()
	assert.Equal(t, "8080", c.AppPort)
	assert.Equal(t, DriverMySQL, c.StoreDriver)
	assert.False(t, c.DisableTx)
	assert.Equal(t, 300, c.IdempTTLSecs)
	assert.Equal(t, 5*time.Minute, c.IdempotencyTTL())
	assert.Equal(t, "@every 15m", c.ReconcileSchedule)
	assert.Equal(t, "immofund:immofund@tcp(mysql:3306)/immofund?multiStatements=true&parseTime=true&charset=utf8mb4,utf8", c.MySQLDSN())
}

func TestLoad_Overrides(t *testing.T) {
	isolate(t)
	t.Setenv("STORE_DRIVER", "MONGO")
	t.Setenv("STORE_DISABLE_TX", "true")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "not-a-number")
	t.Setenv("LOG_PRETTY", "1")
	t.Setenv("RECONCILE_SCHEDULE", " ")

	c := Load()
	assert.Equal(t, DriverMongo, c.StoreDriver)
	assert.True(t, c.DisableTx)
	assert.Equal(t, 3, c.RedisDB)
	assert.Equal(t, 300, c.IdempTTLSecs, "unparsable values keep the default")
	assert.True(t, c.LogPretty)
	assert.Empty(t, c.ReconcileSchedule)
}

func TestLoad_DotEnv(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(".", ".env"), []byte("APP_PORT=9090\nJWT_SECRET=from-dotenv-file-123\n"), 0o600))
	t.Setenv("APP_PORT", "7070")

	c := Load()
	assert.Equal(t, "7070", c.AppPort, "environment wins over .env")
	assert.Equal(t, "from-dotenv-file-123", c.JWTSecret)
	require.NoError(t, os.Unsetenv("JWT_SECRET"))
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			AppPort: "8080", StoreDriver: DriverMySQL,
			MySQLHost: "db", MySQLPort: "3306", MySQLDB: "immofund", MySQLUser: "u",
			RedisAddr: "redis:6379", IdempTTLSecs: 60, JWTSecret: "0123456789abcdef",
		}
	}

	tests := []struct {
		name    string
		mod     func(*Config)
		wantErr string
	}{
		{"valid mysql", func(*Config) {}, ""},
		{"valid sqlite", func(c *Config) { c.StoreDriver = DriverSQLite; c.SQLitePath = "x.db" }, ""},
		{"valid mongo", func(c *Config) { c.StoreDriver = DriverMongo; c.MongoURI = "mongodb://m"; c.MongoDB = "d" }, ""},
		{"missing port", func(c *Config) { c.AppPort = "" }, "APP_PORT"},
		{"unknown driver", func(c *Config) { c.StoreDriver = "postgres" }, "STORE_DRIVER"},
		{"bad mysql port", func(c *Config) { c.MySQLPort = "abc" }, "MYSQL_PORT"},
		{"missing mysql host", func(c *Config) { c.MySQLHost = "" }, "MySQL"},
		{"missing sqlite path", func(c *Config) { c.StoreDriver = DriverSQLite }, "SQLITE_PATH"},
		{"missing mongo db", func(c *Config) { c.StoreDriver = DriverMongo; c.MongoURI = "mongodb://m" }, "MONGO"},
		{"zero ttl", func(c *Config) { c.IdempTTLSecs = 0 }, "IDEMPOTENCY_TTL_SECONDS"},
		{"short secret", func(c *Config) { c.JWTSecret = "short" }, "JWT_SECRET"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mod(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

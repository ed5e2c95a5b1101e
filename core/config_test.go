package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("test env defaults", func(t *testing.T) {
		t.Setenv("ENV", "test")
		conf, err := NewConfig()
		require.NoError(t, err)
		assert.Equal(t, "TEST", conf.Env)
		assert.True(t, conf.TestMode)
		assert.Equal(t, EngineSQLite, conf.Database.Engine)
		assert.Equal(t, ":memory:", conf.Database.Path)
		assert.Equal(t, 12*time.Hour, conf.JWTExpirationDelta)
		assert.Equal(t, 10*time.Second, conf.Server.ShutdownTimeout)
	})

	t.Run("env overrides are prefixed", func(t *testing.T) {
		t.Setenv("ENV", "PROD")
		t.Setenv("PROD_DATABASE_ENGINE", "Postgres")
		t.Setenv("PROD_DATABASE_HOST", "db")
		t.Setenv("PROD_JWTEXPIRATIONDELTA", "30m")
		t.Setenv("DATABASE_HOST", "ignored")
		conf, err := NewConfig()
		require.NoError(t, err)
		assert.False(t, conf.Debug)
		assert.Equal(t, EnginePostgres, conf.Database.Engine)
		assert.Equal(t, "db:5432", conf.Database.Address())
		assert.Equal(t, 30*time.Minute, conf.JWTExpirationDelta)
	})

	t.Run("dot env file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "config"), 0o755))
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, "config", ".env.qa"),
			[]byte("QA_BUILD=1.4.2\nQA_SERVER_ADDRESS=:9000\n"),
			0o600,
		))
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(dir))
		t.Cleanup(func() {
			_ = os.Chdir(wd)
			_ = os.Unsetenv("QA_BUILD")
			_ = os.Unsetenv("QA_SERVER_ADDRESS")
		})

		t.Setenv("ENV", "qa")
		conf, err := NewConfig()
		require.NoError(t, err)
		assert.Equal(t, "1.4.2", conf.Build)
		assert.Equal(t, ":9000", conf.Server.Address)
	})

	t.Run("unsupported engine", func(t *testing.T) {
		t.Setenv("ENV", "TEST")
		t.Setenv("TEST_DATABASE_ENGINE", "mysql")
		_, err := NewConfig()
		assert.EqualError(t, err, `unsupported database engine "mysql"`)
	})
}

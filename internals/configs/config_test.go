package configs

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormLogger "gorm.io/gorm/logger"

	"schoolku_backend/internals/logger"
)

func TestLoad(t *testing.T) {
	t.Run("Should fall back to defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, Defaults().DBMaxOpenConns, cfg.DBMaxOpenConns)
		assert.Equal(t, "schoolku", cfg.AppName)
	})

	t.Run("Should override from environment variables", func(t *testing.T) {
		t.Setenv("PORT", "8081")
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_MAX_OPEN_CONNS", "5")
		t.Setenv("DB_SLOW_THRESHOLD", "1s")
		t.Setenv("LOG_JSON", "true")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "8081", cfg.Port)
		assert.Equal(t, "db.internal", cfg.DBHost)
		assert.Equal(t, 5, cfg.DBMaxOpenConns)
		assert.Equal(t, time.Second, cfg.DBSlowThreshold)
		assert.True(t, cfg.LogJSON)
	})

	t.Run("Should reject an unknown log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "verbose")
		_, err := Load()
		require.Error(t, err)
	})
}

func TestConfigHelpers(t *testing.T) {
	cfg := Defaults()
	cfg.DBUser, cfg.DBPassword = "u", "p"
	assert.Contains(t, cfg.DSN(), "postgres://u:p@localhost:5432/schoolku?sslmode=disable")

	cfg.CORSOrigins = " http://a.test ,, http://b.test"
	assert.Equal(t, "http://a.test, http://b.test", cfg.AllowedOrigins())
}

func TestGormLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewGormLogger(logger.New(logger.Config{Level: "debug", Output: &buf}), 10*time.Millisecond)

	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return "SELECT 1", 1
	}, nil)
	assert.Contains(t, buf.String(), "slow sql")

	buf.Reset()
	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 2", 0 }, errors.New("boom"))
	assert.Contains(t, buf.String(), "boom")

	buf.Reset()
	l.LogMode(gormLogger.Silent).Trace(context.Background(), time.Now().Add(-time.Second),
		func() (string, int64) { return "SELECT 3", 0 }, errors.New("ignored"))
	assert.Empty(t, buf.String())
}

func TestGormLoggerDefault(t *testing.T) {
	t.Run("Should accept the package logger and default the slow threshold", func(t *testing.T) {
		l := NewGormLogger(logger.Default(), 0)
		gl, ok := l.(*GormLogger)
		require.True(t, ok)
		assert.Equal(t, 200*time.Millisecond, gl.SlowThreshold)
		assert.Equal(t, gormLogger.Warn, gl.LogLevel)
	})
}

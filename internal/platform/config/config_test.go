package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	v.Set("JWT_EXPIRY_DURATION", "not-a-duration")
	v.Set("OVERVIEW_CONCURRENCY", 0)

	cfg := fromViper(v)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, defaultJWTSecret, cfg.JWTSecret)
	assert.Equal(t, defaultJWTIssuer, cfg.JWTIssuer)
	assert.Equal(t, 12*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "5-M", cfg.LoginRateLimit)
	assert.Equal(t, 4, cfg.OverviewConcurrency)
	assert.Zero(t, cfg.DBMaxConns)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("PGSQL_URL", "postgres://jva@localhost/jva")
	v.Set("PORT", "9090")
	v.Set("IS_PRODUCTION", true)
	v.Set("JWT_SECRET", "s3cret")
	v.Set("JWT_EXPIRY_DURATION", "30m")
	v.Set("LOGIN_RATE_LIMIT", "10-H")
	v.Set("OVERVIEW_CONCURRENCY", 8)
	v.Set("DB_MAX_CONNS", 20)
	v.Set("FRONTEND_BASE_URL", "https://dash.example.com")

	cfg := fromViper(v)

	assert.Equal(t, "postgres://jva@localhost/jva", cfg.DatabaseURL)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, "10-H", cfg.LoginRateLimit)
	assert.Equal(t, 8, cfg.OverviewConcurrency)
	assert.Equal(t, int32(20), cfg.DBMaxConns)
	assert.Equal(t, "https://dash.example.com", cfg.FrontendBaseURL)
}

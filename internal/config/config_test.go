package config_test

import (
	"testing"

	"github.com/changhyeonkim/splearn/internal/config"
	"github.com/changhyeonkim/splearn/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
)

func TestValidate_TestConfig(t *testing.T) {
	cfg := testutil.NewTestConfig()

	assert.NoError(t, cfg.Validate())
}

func TestValidate_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(secret *string, port *int, cost *int)
		wantMsg string
	}{
		{
			name:    "Short JWT secret",
			mutate:  func(secret *string, _ *int, _ *int) { *secret = "too-short" },
			wantMsg: "JWT Secret Key는 32자 이상이어야 합니다",
		},
		{
			name:    "Invalid port",
			mutate:  func(_ *string, port *int, _ *int) { *port = 70000 },
			wantMsg: "유효하지 않은 포트 번호",
		},
		{
			name:    "Bcrypt cost out of range",
			mutate:  func(_ *string, _ *int, cost *int) { *cost = 40 },
			wantMsg: "BCRYPT_COST는 4~31 사이여야 합니다",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testutil.NewTestConfig()
			tc.mutate(&cfg.JWT.Secret, &cfg.App.Port, &cfg.Security.BcryptCost)

			err := cfg.Validate()

			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tc.wantMsg)
			}
		})
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	// Given: no .env.unittest file, only process environment
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_SERVICE", "FREEPDB1")
	t.Setenv("DB_USER", "splearn")
	t.Setenv("DB_PASSWORD", "p@ss word")
	t.Setenv("JWT_SECRET", "unit-test-jwt-secret-key-with-32-plus-chars")
	t.Setenv("BCRYPT_COST", "6")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	// When
	cfg, err := config.Load("unittest")

	// Then
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, 6, cfg.Security.BcryptCost)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "unittest", cfg.App.Env)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_MalformedValues(t *testing.T) {
	// Given: required settings plus two values that do not parse
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_SERVICE", "FREEPDB1")
	t.Setenv("DB_USER", "splearn")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET", "unit-test-jwt-secret-key-with-32-plus-chars")
	t.Setenv("APP_PORT", "eighty")
	t.Setenv("JWT_EXPIRY", "1 day")

	// When
	_, err := config.Load("unittest")

	// Then: both are reported
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), `APP_PORT="eighty"`)
		assert.Contains(t, err.Error(), `JWT_EXPIRY="1 day"`)
	}
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	cfg := testutil.NewTestConfig()
	cfg.Database.Host = ""
	cfg.JWT.Secret = ""
	cfg.JWT.RefreshExpiry = cfg.JWT.Expiry

	err := cfg.Validate()

	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "데이터베이스 Host가 필요합니다")
		assert.Contains(t, err.Error(), "JWT Secret Key가 필요합니다")
		assert.Contains(t, err.Error(), "JWT_REFRESH_EXPIRY는 JWT_EXPIRY보다 길어야 합니다")
	}
}

func TestIsProductionEnv(t *testing.T) {
	assert.True(t, config.IsProductionEnv("prod"))
	assert.True(t, config.IsProductionEnv("production"))
	assert.False(t, config.IsProductionEnv("dev"))
	assert.False(t, config.IsProductionEnv("local"))
}

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	CORS     CORSConfig
	Server   ServerConfig
	Security SecurityConfig
}

type AppConfig struct {
	Name string `validate:"required"`
	Env  string
	Port int `validate:"min=1,max=65535"`
}

type DatabaseConfig struct {
	Host            string `validate:"required"`
	Port            int    `validate:"min=1,max=65535"`
	Service         string `validate:"required"`
	User            string `validate:"required"`
	Password        string `validate:"required"`
	MaxIdleConns    int    `validate:"min=0"`
	MaxOpenConns    int    `validate:"min=1"`
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	IsAutoMigrate   bool // true: 테이블 재생성, false: 마이그레이션 비활성화
}

type JWTConfig struct {
	Secret        string        `validate:"required,min=32"`
	Expiry        time.Duration `validate:"gt=0"`
	RefreshExpiry time.Duration `validate:"gtfield=Expiry"`
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// SecurityConfig holds password hashing settings
type SecurityConfig struct {
	BcryptCost int `validate:"min=4,max=31"` // bcrypt work factor
}

type ServerConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	GracefulTimeout time.Duration `validate:"gt=0"`
}

// Load reads .env.<env> if present, then the process environment.
// Malformed values are reported rather than replaced by defaults.
func Load(env string) (*Config, error) {
	if err := loadEnvFile(env); err != nil {
		return nil, fmt.Errorf("환경 변수 로드 실패: %w", err)
	}

	r := &envReader{}
	cfg := &Config{
		App: AppConfig{
			Name: r.getString("APP_NAME", "splearn-api"),
			Env:  env,
			Port: r.getInt("APP_PORT", 8080),
		},
		Database: DatabaseConfig{
			Host:            r.getString("DB_HOST", ""),
			Port:            r.getInt("DB_PORT", 1521),
			Service:         r.getString("DB_SERVICE", ""),
			User:            r.getString("DB_USER", ""),
			Password:        r.getString("DB_PASSWORD", ""),
			MaxIdleConns:    r.getInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    r.getInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: r.getDuration("DB_CONN_MAX_LIFETIME", time.Hour),
			ConnMaxIdleTime: r.getDuration("DB_CONN_MAX_IDLE_TIME", 10*time.Minute),
			IsAutoMigrate:   r.getBool("DB_AUTO_MIGRATE", false), // 기본값: false (안전)
		},
		JWT: JWTConfig{
			Secret:        r.getString("JWT_SECRET", ""),
			Expiry:        r.getDuration("JWT_EXPIRY", 24*time.Hour),
			RefreshExpiry: r.getDuration("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		CORS: CORSConfig{
			AllowedOrigins:   r.getList("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods:   r.getList("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			AllowedHeaders:   r.getList("CORS_ALLOWED_HEADERS", []string{"*"}),
			AllowCredentials: r.getBool("CORS_ALLOW_CREDENTIALS", true),
			MaxAge:           r.getInt("CORS_MAX_AGE", 86400),
		},
		Server: ServerConfig{
			ReadTimeout:     r.getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    r.getDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:     r.getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			GracefulTimeout: r.getDuration("GRACEFUL_TIMEOUT", 30*time.Second),
		},
		Security: SecurityConfig{
			BcryptCost: r.getInt("BCRYPT_COST", 10),
		},
	}

	if err := r.err(); err != nil {
		return nil, fmt.Errorf("환경 변수 파싱 실패: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("환경 변수 검증 실패 : %w", err)
	}

	return cfg, nil
}

func loadEnvFile(env string) error {
	envFile := fmt.Sprintf(".env.%s", env)

	if _, err := os.Stat(envFile); errors.Is(err, os.ErrNotExist) {
		slog.Warn("환경 변수 파일을 찾을 수 없습니다. 시스템 환경 변수를 사용합니다.",
			"file", envFile)
		return nil
	}

	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("환경 변수 파일 로드 오류: %s: %w", envFile, err)
	}

	absPath, _ := filepath.Abs(envFile)
	slog.Info("환경 변수 파일 로드", "file", absPath)
	return nil
}

var configValidator = validator.New()

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	err := configValidator.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("유효성 검사 오류: %w", err)
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, validationMessage(fe))
	}
	return fmt.Errorf("유효성 검사 오류: %s", strings.Join(messages, ", "))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Namespace() {
	case "Config.App.Port", "Config.Database.Port":
		return "유효하지 않은 포트 번호"
	case "Config.Database.Host":
		return "데이터베이스 Host가 필요합니다"
	case "Config.Database.Service":
		return "데이터베이스 Service가 필요합니다"
	case "Config.Database.User":
		return "데이터베이스 User가 필요합니다"
	case "Config.Database.Password":
		return "데이터베이스 Password가 필요합니다"
	case "Config.JWT.Secret":
		if fe.Tag() == "required" {
			return "JWT Secret Key가 필요합니다"
		}
		return "JWT Secret Key는 32자 이상이어야 합니다"
	case "Config.JWT.RefreshExpiry":
		return "JWT_REFRESH_EXPIRY는 JWT_EXPIRY보다 길어야 합니다"
	case "Config.Security.BcryptCost":
		return "BCRYPT_COST는 4~31 사이여야 합니다"
	default:
		return fmt.Sprintf("%s: %s=%s 조건을 만족하지 않습니다", fe.Namespace(), fe.Tag(), fe.Param())
	}
}

func (c *Config) IsProduction() bool {
	return IsProductionEnv(c.App.Env)
}

// IsProductionEnv reports whether env names the production environment.
func IsProductionEnv(env string) bool {
	return env == "prod" || env == "production"
}

package configs

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"schoolku_backend/internals/logger"
)

// Config: semua pengaturan runtime. Key koanf = nama ENV dalam huruf kecil.
type Config struct {
	AppName string `koanf:"app_name" validate:"required"`
	Port    string `koanf:"port"     validate:"required,numeric"`

	DBHost          string        `koanf:"db_host"            validate:"required"`
	DBPort          string        `koanf:"db_port"            validate:"required,numeric"`
	DBUser          string        `koanf:"db_user"`
	DBPassword      string        `koanf:"db_password"`
	DBName          string        `koanf:"db_name"            validate:"required"`
	DBSSLMode       string        `koanf:"db_sslmode"         validate:"oneof=disable allow prefer require verify-ca verify-full"`
	DBMaxOpenConns  int           `koanf:"db_max_open_conns"  validate:"min=1"`
	DBMaxIdleConns  int           `koanf:"db_max_idle_conns"  validate:"min=0"`
	DBSlowThreshold time.Duration `koanf:"db_slow_threshold"`

	JWTSecret    string        `koanf:"jwt_secret"`
	AuthCacheTTL time.Duration `koanf:"auth_cache_ttl"`

	CORSOrigins  string `koanf:"cors_origins"`
	RateLimitMax int    `koanf:"rate_limit_max" validate:"min=0"`

	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn error"`
	LogJSON  bool   `koanf:"log_json"`
}

func Defaults() Config {
	return Config{
		AppName:         "schoolku",
		Port:            "3000",
		DBHost:          "localhost",
		DBPort:          "5432",
		DBName:          "schoolku",
		DBSSLMode:       "disable",
		DBMaxOpenConns:  20,
		DBMaxIdleConns:  10,
		DBSlowThreshold: 200 * time.Millisecond,
		AuthCacheTTL:    time.Minute,
		CORSOrigins:     "http://localhost:5173",
		RateLimitMax:    100,
		LogLevel:        "info",
	}
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") != "" {
		logger.Info("🚀 Running in Railway, menggunakan ENV dari sistem")
		return
	}
	if err := godotenv.Load(); err != nil {
		logger.Warn("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		return
	}
	logger.Info("✅ .env file berhasil dimuat!")
}

// Load merges Defaults() with the process environment and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(key), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("config env: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("config unmarshal: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config invalid: %w", err)
	}
	if cfg.JWTSecret == "" {
		logger.Warn("❌ JWT_SECRET belum diset! Endpoint /api/* akan menolak semua request")
	}
	return &cfg, nil
}

// DSN untuk gorm postgres driver.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=%s&options=-c%%20statement_timeout=3000",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode, c.AppName,
	)
}

// AllowedOrigins memecah CORS_ORIGINS (dipisah koma).
func (c *Config) AllowedOrigins() string {
	parts := strings.Split(c.CORSOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

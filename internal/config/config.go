package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultEnvFile подхватывается при наличии; переменные окружения имеют приоритет
const DefaultEnvFile = ".env"

type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`

	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`

	NotificationTTL time.Duration `envconfig:"NOTIFICATION_TTL" default:"5s"`
	DefaultLanguage string        `envconfig:"DEFAULT_LANGUAGE" default:"en"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load загружает конфигурацию из .env (если есть) и переменных окружения
func Load() (*Config, error) {
	return LoadFile(DefaultEnvFile)
}

// LoadFile загружает конфигурацию, предварительно прочитав указанный .env файл
func LoadFile(envFile string) (*Config, error) {
	if envFile != "" {
		// godotenv.Load не перезаписывает уже заданные переменные
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate проверяет значения, которые envconfig не может проверить сам
func (c *Config) Validate() error {
	if strings.TrimSpace(c.HTTPPort) == "" {
		return errors.New("HTTP_PORT is required")
	}
	if c.NotificationTTL <= 0 {
		return errors.New("NOTIFICATION_TTL must be positive")
	}
	return nil
}

// Addr возвращает адрес для HTTP сервера
func (c *Config) Addr() string {
	return ":" + c.HTTPPort
}

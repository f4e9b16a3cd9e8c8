package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать или разобрать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при недопустимых значениях
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса (config.toml)
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Redis        RedisConfig        `toml:"redis"`
	Kafka        KafkaConfig        `toml:"kafka"`
	Availability AvailabilityConfig `toml:"availability"`
	Refresh      RefreshConfig      `toml:"refresh"`
	HTTP         HTTPConfig         `toml:"http"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig индекс рейтинга уборщиков
type RedisConfig struct {
	Enabled   bool   `toml:"enabled"`
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
}

// KafkaConfig события изменения уборщиков и бронирований
type KafkaConfig struct {
	Brokers string `toml:"brokers"` // через запятую
	Topic   string `toml:"topic"`
	GroupID string `toml:"group_id"`
}

// AvailabilityConfig параметры движка доступности
type AvailabilityConfig struct {
	HorizonDays int `toml:"horizon_days"`
	PageSize    int `toml:"page_size"`
}

// RefreshConfig периодический пересчет ближайшей доступности
type RefreshConfig struct {
	Enabled     bool   `toml:"enabled"`
	Schedule    string `toml:"schedule"` // cron-выражение или @every
	Concurrency int    `toml:"concurrency"`
	Timeout     int    `toml:"timeout"` // секунды на один прогон
}

// HTTPConfig middleware публичного API
type HTTPConfig struct {
	AllowedOrigins  []string `toml:"allowed_origins"`
	RateLimitPerSec float64  `toml:"rate_limit_per_sec"`
	RateLimitBurst  int      `toml:"rate_limit_burst"`
}

// Load читает конфигурацию из TOML файла, подставляет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}

	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 20
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "smc_availability_service"
	}

	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}

	if c.Kafka.Topic == "" {
		c.Kafka.Topic = "cleaner-availability-events"
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = "smc-availability-service"
	}

	if c.Availability.HorizonDays == 0 {
		c.Availability.HorizonDays = 90
	}
	if c.Availability.PageSize == 0 {
		c.Availability.PageSize = 5
	}

	if c.Refresh.Schedule == "" {
		c.Refresh.Schedule = "@every 15m"
	}
	if c.Refresh.Concurrency == 0 {
		c.Refresh.Concurrency = 4
	}
	if c.Refresh.Timeout == 0 {
		c.Refresh.Timeout = 300
	}

	if c.HTTP.RateLimitPerSec == 0 {
		c.HTTP.RateLimitPerSec = 50
	}
	if c.HTTP.RateLimitBurst == 0 {
		c.HTTP.RateLimitBurst = 100
	}
}

// Validate проверяет допустимость значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("%w: database.port must be in 1..65535, got %d", ErrInvalidConfig, c.Database.Port)
	}
	if c.Availability.HorizonDays < 1 || c.Availability.HorizonDays > 365 {
		return fmt.Errorf("%w: availability.horizon_days must be in 1..365, got %d", ErrInvalidConfig, c.Availability.HorizonDays)
	}
	if c.Availability.PageSize < 1 {
		return fmt.Errorf("%w: availability.page_size must be positive, got %d", ErrInvalidConfig, c.Availability.PageSize)
	}
	if c.Refresh.Concurrency < 1 {
		return fmt.Errorf("%w: refresh.concurrency must be positive, got %d", ErrInvalidConfig, c.Refresh.Concurrency)
	}
	if c.Refresh.Timeout < 1 {
		return fmt.Errorf("%w: refresh.timeout must be positive, got %d", ErrInvalidConfig, c.Refresh.Timeout)
	}
	if c.HTTP.RateLimitPerSec < 0 || c.HTTP.RateLimitBurst < 0 {
		return fmt.Errorf("%w: http rate limit must not be negative", ErrInvalidConfig)
	}
	return nil
}

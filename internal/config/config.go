package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-PoolService/internal/domain"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read file")

	// ErrInvalidConfig возвращается при некорректных значениях
	ErrInvalidConfig = errors.New("config: invalid value")
)

// Config конфигурация сервиса
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Pool    PoolConfig    `toml:"pool"`
	Policy  PolicyConfig  `toml:"policy"`
	Catalog CatalogConfig `toml:"catalog"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// PoolConfig размеры бассейна
type PoolConfig struct {
	Lanes        int `toml:"lanes"`
	LaneCapacity int `toml:"lane_capacity"`
}

// PolicyConfig правила бронирования (в минутах)
type PolicyConfig struct {
	BookingLeadMinutes        int `toml:"booking_lead_minutes"`
	CancellationWindowMinutes int `toml:"cancellation_window_minutes"`
}

// CatalogConfig источник демонстрационного расписания классов
type CatalogConfig struct {
	ClassesFile string `toml:"classes_file"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "smc_pool_service",
		},
		Pool: PoolConfig{
			Lanes:        domain.DefaultLaneCount,
			LaneCapacity: domain.DefaultLaneCapacity,
		},
		Policy: PolicyConfig{
			BookingLeadMinutes:        domain.DefaultBookingLeadMinutes,
			CancellationWindowMinutes: domain.DefaultCancellationWindowMinutes,
		},
	}
}

// Load читает TOML файл поверх значений по умолчанию и валидирует результат
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}
	return Parse(string(data))
}

// Parse разбирает TOML строку поверх значений по умолчанию
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: decode toml: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Pool.Lanes < domain.MinLaneCount || c.Pool.Lanes > domain.MaxLaneCount {
		return fmt.Errorf("%w: pool.lanes must be in [%d, %d], got %d",
			ErrInvalidConfig, domain.MinLaneCount, domain.MaxLaneCount, c.Pool.Lanes)
	}
	if c.Pool.LaneCapacity < domain.MinLaneCapacity || c.Pool.LaneCapacity > domain.MaxLaneCapacity {
		return fmt.Errorf("%w: pool.lane_capacity must be in [%d, %d], got %d",
			ErrInvalidConfig, domain.MinLaneCapacity, domain.MaxLaneCapacity, c.Pool.LaneCapacity)
	}
	if c.Policy.BookingLeadMinutes < 0 {
		return fmt.Errorf("%w: policy.booking_lead_minutes must not be negative", ErrInvalidConfig)
	}
	if c.Policy.CancellationWindowMinutes < 0 {
		return fmt.Errorf("%w: policy.cancellation_window_minutes must not be negative", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}
	return nil
}

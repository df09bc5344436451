package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Транспорт уведомлений об оплате
const (
	PaymentsTransportNone  = "none"
	PaymentsTransportHTTP  = "http"
	PaymentsTransportKafka = "kafka"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	PricingCache PricingCacheConfig `toml:"pricing_cache"`
	Payments     PaymentsConfig     `toml:"payments"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки PostgreSQL
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

// LogsConfig настройки логирования. Пустой File - только stdout.
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// PricingCacheConfig кэш тарифной сетки в Redis
type PricingCacheConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // секунды
}

// PaymentsConfig куда отправлять уведомления о необходимости оплаты
type PaymentsConfig struct {
	Transport string `toml:"transport"` // none | http | kafka
	URL       string `toml:"url"`
	Timeout   int    `toml:"timeout"` // секунды
	Brokers   string `toml:"brokers"` // через запятую
	Topic     string `toml:"topic"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load читает конфигурацию из TOML файла, подставляет значения по умолчанию и проверяет её
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return finalize(cfg)
}

// Parse разбирает конфигурацию из строки TOML
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return finalize(cfg)
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			ServiceName: "coach_scheduling",
			Path:        "/metrics",
		},
		PricingCache: PricingCacheConfig{
			TTL: 300,
		},
		Payments: PaymentsConfig{
			Transport: PaymentsTransportNone,
			Timeout:   5,
			Topic:     "payments.required",
		},
	}
}

func finalize(cfg *Config) (*Config, error) {
	cfg.Payments.Transport = strings.ToLower(strings.TrimSpace(cfg.Payments.Transport))
	if cfg.Payments.Transport == "" {
		cfg.Payments.Transport = PaymentsTransportNone
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет обязательные поля и согласованность секций
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be in 1..65535")
	}
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		problems = append(problems, "database.host, database.dbname and database.user are required")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, "metrics.path must start with /")
	}
	if c.PricingCache.Enabled {
		if c.PricingCache.Addr == "" {
			problems = append(problems, "pricing_cache.addr is required when the cache is enabled")
		}
		if c.PricingCache.TTL <= 0 {
			problems = append(problems, "pricing_cache.ttl must be positive")
		}
	}

	switch c.Payments.Transport {
	case PaymentsTransportNone:
	case PaymentsTransportHTTP:
		if c.Payments.URL == "" {
			problems = append(problems, "payments.url is required for http transport")
		}
	case PaymentsTransportKafka:
		if c.Payments.Brokers == "" || c.Payments.Topic == "" {
			problems = append(problems, "payments.brokers and payments.topic are required for kafka transport")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown payments.transport %q", c.Payments.Transport))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/domain"
)

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Admin        AdminConfig        `toml:"admin"`
	Sessions     SessionsConfig     `toml:"sessions"`
	Webhook      WebhookConfig      `toml:"webhook"`
	AMQP         AMQPConfig         `toml:"amqp"`
	Pricing      PricingConfig      `toml:"pricing"`
	Reservations ReservationsConfig `toml:"reservations"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
}

type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
	CORSOrigin      string `toml:"cors_origin"`
}

type DatabaseConfig struct {
	URL             string `toml:"url"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения: url, если задан, иначе собирается из параметров
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type AdminConfig struct {
	Email        string `toml:"email"`
	Password     string `toml:"password"`
	PasswordHash string `toml:"password_hash"`
}

type SessionsConfig struct {
	Backend string      `toml:"backend"`
	Redis   RedisConfig `toml:"redis"`
}

type RedisConfig struct {
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
}

type WebhookConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

type AMQPConfig struct {
	URL        string `toml:"url"`
	Exchange   string `toml:"exchange"`
	RoutingKey string `toml:"routing_key"`
}

type PricingConfig struct {
	Canchas []CanchaSeed `toml:"canchas"`
}

// CanchaSeed начальная цена для поля, создаётся при старте, если её ещё нет
type CanchaSeed struct {
	Nombre string `toml:"nombre"`
	Precio int    `toml:"precio"`
}

type ReservationsConfig struct {
	ListLimit int `toml:"list_limit"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// envOverrides переменные окружения, перекрывающие config.toml
// Пустое значение означает "не задано"
type envOverrides struct {
	Port              int    `envconfig:"PORT"`
	DatabaseURL       string `envconfig:"DATABASE_URL"`
	DBHost            string `envconfig:"DB_HOST"`
	DBPort            int    `envconfig:"DB_PORT"`
	DBName            string `envconfig:"DB_NAME"`
	DBUser            string `envconfig:"DB_USER"`
	DBPassword        string `envconfig:"DB_PASSWORD"`
	DBSSLMode         string `envconfig:"DB_SSLMODE"`
	AdminEmail        string `envconfig:"ADMIN_EMAIL"`
	AdminPassword     string `envconfig:"ADMIN_PASSWORD"`
	AdminPasswordHash string `envconfig:"ADMIN_PASSWORD_HASH"`
	SessionBackend    string `envconfig:"SESSION_BACKEND"`
	RedisAddr         string `envconfig:"REDIS_ADDR"`
	RedisPassword     string `envconfig:"REDIS_PASSWORD"`
	WebhookURL        string `envconfig:"WEBHOOK_URL"`
	AMQPURL           string `envconfig:"AMQP_URL"`
	LogLevel          string `envconfig:"LOG_LEVEL"`
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        3000,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			CORSOrigin:      "*",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "reservas",
			SSLMode:         "disable",
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Sessions: SessionsConfig{
			Backend: SessionBackendMemory,
			Redis: RedisConfig{
				Addr:      "localhost:6379",
				KeyPrefix: "admin:session:",
			},
		},
		Webhook: WebhookConfig{Timeout: 5},
		AMQP: AMQPConfig{
			Exchange:   "reservas",
			RoutingKey: "reserva.creada",
		},
		Reservations: ReservationsConfig{ListLimit: domain.DefaultReservationListLimit},
		Logs:         LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "reserva_cancha",
		},
	}
}

// Load читает config.toml (если файл существует), применяет переменные окружения и валидирует результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("config: decode %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: stat %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return fmt.Errorf("config: read environment: %w", err)
	}

	setString(&c.Database.URL, env.DatabaseURL)
	setString(&c.Database.Host, env.DBHost)
	setString(&c.Database.DBName, env.DBName)
	setString(&c.Database.User, env.DBUser)
	setString(&c.Database.Password, env.DBPassword)
	setString(&c.Database.SSLMode, env.DBSSLMode)
	setString(&c.Admin.Email, env.AdminEmail)
	setString(&c.Admin.Password, env.AdminPassword)
	setString(&c.Admin.PasswordHash, env.AdminPasswordHash)
	setString(&c.Sessions.Backend, env.SessionBackend)
	setString(&c.Sessions.Redis.Addr, env.RedisAddr)
	setString(&c.Sessions.Redis.Password, env.RedisPassword)
	setString(&c.Webhook.URL, env.WebhookURL)
	setString(&c.AMQP.URL, env.AMQPURL)
	setString(&c.Logs.Level, env.LogLevel)

	if env.Port != 0 {
		c.Server.HTTPPort = env.Port
	}
	if env.DBPort != 0 {
		c.Database.Port = env.DBPort
	}

	return nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	var problems []string

	if c.Admin.Email == "" {
		problems = append(problems, "admin.email is required")
	}
	if c.Admin.Password == "" && c.Admin.PasswordHash == "" {
		problems = append(problems, "admin.password or admin.password_hash is required")
	}
	if c.Sessions.Backend != SessionBackendMemory && c.Sessions.Backend != SessionBackendRedis {
		problems = append(problems, fmt.Sprintf("sessions.backend %q is not supported", c.Sessions.Backend))
	}
	if c.Reservations.ListLimit <= 0 {
		problems = append(problems, "reservations.list_limit must be positive")
	}
	if c.Webhook.Timeout <= 0 {
		problems = append(problems, "webhook.timeout must be positive")
	}
	if c.Server.HTTPPort <= 0 {
		problems = append(problems, "server.http_port must be positive")
	}
	for _, seed := range c.Pricing.Canchas {
		if strings.TrimSpace(seed.Nombre) == "" {
			problems = append(problems, "pricing.canchas entries need a nombre")
			break
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// Package config provides configuration management for the TORA backend.
//
// Configuration is loaded from:
// 1. config.yaml file (optional)
// 2. Environment variables (standard names like DATABASE_URL, SERVER_PORT)
// 3. Default values
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
	Security SecurityConfig `mapstructure:"security"`
	Worker   WorkerConfig   `mapstructure:"worker"`
	River    RiverConfig    `mapstructure:"river"`
	Notify   NotifyConfig   `mapstructure:"notify"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains PostgreSQL connection settings.
// Ent, River, and the WhatsApp device store share one pgx pool.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`

	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"sslmode"`

	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time"`

	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// DSN returns the PostgreSQL connection string.
// Priority: DATABASE_URL > constructed from individual fields.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, sslmode,
	)
}

// RedisConfig contains the recipient-resolution cache settings.
// An empty Addr disables the cache; lookups then always hit the store.
type RedisConfig struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	RecipientTTL time.Duration `mapstructure:"recipient_ttl"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// SecurityConfig contains security-related settings. Tokens are issued by
// the external identity service with the same HS256 key.
type SecurityConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	JWTIssuer string `mapstructure:"jwt_issuer"`
}

// WorkerConfig contains worker pool settings.
type WorkerConfig struct {
	GeneralPoolSize int `mapstructure:"general_pool_size"`
	NotifyPoolSize  int `mapstructure:"notify_pool_size"`
}

// RiverConfig contains River Queue settings.
type RiverConfig struct {
	MaxWorkers            int           `mapstructure:"max_workers"`
	ReminderInterval      time.Duration `mapstructure:"reminder_interval"`
	TokenRetention        time.Duration `mapstructure:"token_retention"`
	CompletedJobRetention time.Duration `mapstructure:"completed_job_retention"`
}

// NotifyConfig groups the per-channel provider settings.
type NotifyConfig struct {
	Push     PushConfig     `mapstructure:"push"`
	Email    EmailConfig    `mapstructure:"email"`
	WhatsApp WhatsAppConfig `mapstructure:"whatsapp"`
}

// PushConfig contains FCM provider settings.
type PushConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

// EmailConfig contains SMTP provider settings.
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`

	// SendDelay is the minimum spacing between consecutive sends within one
	// alert fan-out. A rate-limit throttle, not a tunable optimization.
	SendDelay time.Duration `mapstructure:"send_delay"`
}

// WhatsAppConfig contains session client settings.
type WhatsAppConfig struct {
	Enabled bool `mapstructure:"enabled"`

	// DefaultCountryCode is prepended to numbers registered without one.
	DefaultCountryCode string `mapstructure:"default_country_code"`

	// SendDelay is the minimum spacing between consecutive sends within one
	// alert fan-out.
	SendDelay time.Duration `mapstructure:"send_delay"`

	// PrintQR renders pairing QR codes to the server terminal in addition
	// to persisting them for the frontend.
	PrintQR bool `mapstructure:"print_qr"`
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/tora")

	// Environment variable override, no prefix: DATABASE_URL, SERVER_PORT,
	// NOTIFY_EMAIL_HOST, and so on.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file is optional; defaults and env vars apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate checks for critical configuration errors.
func (c *Config) Validate() error {
	if c.Security.JWTSecret == "" {
		return fmt.Errorf("security.jwt_secret must not be empty")
	}
	if len(c.Security.JWTSecret) < 32 {
		return fmt.Errorf("security.jwt_secret must be at least 32 characters")
	}
	if c.Notify.Email.SendDelay < 0 || c.Notify.WhatsApp.SendDelay < 0 {
		return fmt.Errorf("notify send delays must not be negative")
	}
	if c.Notify.WhatsApp.DefaultCountryCode == "" {
		return fmt.Errorf("notify.whatsapp.default_country_code must not be empty")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 15*time.Second)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "tora")
	v.SetDefault("database.database", "tora")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.max_conn_lifetime", time.Hour)
	v.SetDefault("database.max_conn_idle_time", 15*time.Minute)
	v.SetDefault("database.auto_migrate", false)

	v.SetDefault("redis.recipient_ttl", 5*time.Minute)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("security.jwt_issuer", "tora")

	v.SetDefault("worker.general_pool_size", 100)
	v.SetDefault("worker.notify_pool_size", 50)

	v.SetDefault("river.max_workers", 10)
	v.SetDefault("river.reminder_interval", 15*time.Minute)
	v.SetDefault("river.token_retention", 90*24*time.Hour)
	v.SetDefault("river.completed_job_retention", 24*time.Hour)

	v.SetDefault("notify.push.enabled", true)
	v.SetDefault("notify.email.enabled", true)
	v.SetDefault("notify.email.port", 587)
	v.SetDefault("notify.email.send_delay", 500*time.Millisecond)
	v.SetDefault("notify.whatsapp.enabled", true)
	v.SetDefault("notify.whatsapp.default_country_code", "56")
	v.SetDefault("notify.whatsapp.send_delay", time.Second)
	v.SetDefault("notify.whatsapp.print_qr", true)
}

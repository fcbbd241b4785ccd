package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func defaultTestConfig() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(err)
	}
	cfg.Security.JWTSecret = strings.Repeat("s", 32)
	return &cfg
}

func TestDefaultsAreValid(t *testing.T) {
	t.Parallel()

	cfg := defaultTestConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() with defaults error = %v", err)
	}

	if cfg.Notify.Email.SendDelay != 500*time.Millisecond {
		t.Fatalf("email send_delay default = %v, want 500ms", cfg.Notify.Email.SendDelay)
	}
	if cfg.Notify.WhatsApp.SendDelay != time.Second {
		t.Fatalf("whatsapp send_delay default = %v, want 1s", cfg.Notify.WhatsApp.SendDelay)
	}
	if cfg.Notify.WhatsApp.DefaultCountryCode != "56" {
		t.Fatalf("default country code = %q, want %q", cfg.Notify.WhatsApp.DefaultCountryCode, "56")
	}
}

func TestValidateRejectsBadConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty jwt secret", func(c *Config) { c.Security.JWTSecret = "" }},
		{"short jwt secret", func(c *Config) { c.Security.JWTSecret = "short" }},
		{"negative email delay", func(c *Config) { c.Notify.Email.SendDelay = -time.Second }},
		{"empty country code", func(c *Config) { c.Notify.WhatsApp.DefaultCountryCode = "" }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultTestConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("Validate() expected error, got nil")
			}
		})
	}
}

func TestDatabaseDSN(t *testing.T) {
	t.Parallel()

	c := DatabaseConfig{
		Host: "db", Port: 5432, User: "tora", Password: "pw", Database: "tora",
	}
	want := "postgres://tora:pw@db:5432/tora?sslmode=disable"
	if got := c.DSN(); got != want {
		t.Fatalf("DSN() = %q, want %q", got, want)
	}

	c.URL = "postgres://override"
	if got := c.DSN(); got != "postgres://override" {
		t.Fatalf("DSN() with URL = %q, want override", got)
	}
}

// Package config загружает настройки клиента и сервера из окружения.
// Флаги командной строки переопределяют значения из окружения в cmd/.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultServerURL адрес публичного API ростера
const DefaultServerURL = "https://u05-restful-api.onrender.com"

// ColorMode режим раскраски вывода CLI
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// MarshalText нужен flag.TextVar для вывода значения по умолчанию
func (m ColorMode) MarshalText() ([]byte, error) {
	return []byte(m), nil
}

// UnmarshalText проверяет значение ROSTER_COLOR
func (m *ColorMode) UnmarshalText(text []byte) error {
	switch v := ColorMode(text); v {
	case ColorAuto, ColorAlways, ColorNever:
		*m = v
		return nil
	default:
		return fmt.Errorf("invalid color mode %q, want auto, always or never", text)
	}
}

// Client настройки CLI клиента
type Client struct {
	ServerURL   string        `env:"ROSTER_SERVER_URL" envDefault:"https://u05-restful-api.onrender.com"`
	DBPath      string        `env:"ROSTER_DB" envDefault:"roster-client.db"`
	Color       ColorMode     `env:"ROSTER_COLOR" envDefault:"auto"`
	HTTPTimeout time.Duration `env:"ROSTER_HTTP_TIMEOUT" envDefault:"30s"`
	LogLevel    slog.Level    `env:"ROSTER_LOG_LEVEL" envDefault:"WARN"`
}

// Server настройки справочного API сервера
type Server struct {
	Addr            string        `env:"ROSTER_ADDR" envDefault:":8080"`
	DBPath          string        `env:"ROSTER_SERVER_DB" envDefault:"roster.db"`
	ShutdownTimeout time.Duration `env:"ROSTER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	WriteWindow     time.Duration `env:"ROSTER_WRITE_WINDOW" envDefault:"1m"`
	WriteRate       int           `env:"ROSTER_WRITE_RATE" envDefault:"60"`
	LogLevel        slog.Level    `env:"ROSTER_LOG_LEVEL" envDefault:"INFO"`
	TrustProxy      bool          `env:"ROSTER_TRUST_PROXY" envDefault:"false"`
}

// LoadClient читает настройки клиента из окружения
func LoadClient() (Client, error) {
	var cfg Client
	if err := ParseEnv(&cfg); err != nil {
		return Client{}, err
	}
	return cfg, nil
}

// LoadServer читает настройки сервера из окружения
func LoadServer() (Server, error) {
	var cfg Server
	if err := ParseEnv(&cfg); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

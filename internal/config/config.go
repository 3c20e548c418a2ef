package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Hotel   HotelConfig   `toml:"hotel"`
	Export  ExportConfig  `toml:"export"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"` // пустая строка - вывод в stdout
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// HotelConfig стартовый инвентарь отеля
type HotelConfig struct {
	Rooms []RoomConfig `toml:"rooms"`
}

// RoomConfig описание одного номера в конфигурации
type RoomConfig struct {
	Number   int     `toml:"number"`
	Category string  `toml:"category"`
	Rate     float64 `toml:"rate"`
}

// ExportConfig настройки экспорта бронирований
type ExportConfig struct {
	File string `toml:"file"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to load %s: %w", path, err)
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "smc-hotel-service",
		},
		Export: ExportConfig{
			File: "bookings.csv",
		},
	}
}

// SeedRooms инвентарь номеров из конфигурации.
// Если номера не заданы, используется стартовый инвентарь по умолчанию.
func (c *Config) SeedRooms() []domain.Room {
	if len(c.Hotel.Rooms) == 0 {
		return domain.DefaultRooms
	}

	rooms := make([]domain.Room, 0, len(c.Hotel.Rooms))
	for _, r := range c.Hotel.Rooms {
		rooms = append(rooms, domain.Room{
			Number:      r.Number,
			Category:    r.Category,
			NightlyRate: r.Rate,
		})
	}
	return rooms
}

package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string        `env:"PORT,      default=8080"`
	Env      string        `env:"ENV,       default=development"`
	JWTSecret string       `env:"JWT_SECRET"`
	TokenTTL time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel string        `env:"LOG_LEVEL, default=info"`

	SQLite   SQLiteConfig
	Redis    RedisConfig
	Weather  WeatherConfig
	Relay    RelayConfig
	Reminder ReminderConfig
}

type SQLiteConfig struct {
	DSN string `env:"SQLITE_DSN, default=taskboard.db"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type WeatherConfig struct {
	APIKey   string        `env:"OPENWEATHER_API_KEY"`
	BaseURL  string        `env:"OPENWEATHER_BASE_URL, default=http://api.openweathermap.org/data/2.5/weather"`
	Timeout  time.Duration `env:"WEATHER_TIMEOUT,      default=5s"`
	CacheTTL time.Duration `env:"WEATHER_CACHE_TTL,    default=30m"`
}

type RelayConfig struct {
	URL     string        `env:"RELAY_URL,     default=http://localhost:3001"`
	Timeout time.Duration `env:"RELAY_TIMEOUT, default=3s"`
	Workers int           `env:"RELAY_WORKERS, default=4"`
}

type ReminderConfig struct {
	Enabled   bool          `env:"REMINDER_ENABLED,   default=true"`
	Schedule  string        `env:"REMINDER_SCHEDULE,  default=@every 15m"`
	Lookahead time.Duration `env:"REMINDER_LOOKAHEAD, default=24h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

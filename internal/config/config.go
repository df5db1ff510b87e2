package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Dispatcher DispatcherConfig `mapstructure:"dispatcher"`
	Collector  CollectorConfig  `mapstructure:"collector"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

type DispatcherConfig struct {
	// Endpoint is the absolute URL events are posted to. Empty disables
	// transmission entirely.
	Endpoint string        `mapstructure:"endpoint"`
	Token    string        `mapstructure:"token"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type CollectorConfig struct {
	Server       ServerConfig  `mapstructure:"server"`
	APIKey       string        `mapstructure:"api_key"`
	MaxEventSize int           `mapstructure:"max_event_size"`
	RecentLimit  int           `mapstructure:"recent_limit"`
	Storage      StorageConfig `mapstructure:"storage"`
	Redis        RedisConfig   `mapstructure:"redis"`
	NATS         NATSConfig    `mapstructure:"nats"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type StorageConfig struct {
	Type     string         `mapstructure:"type"`
	Capacity int            `mapstructure:"capacity"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

type PostgresConfig struct {
	URL string `mapstructure:"url"`
}

type RedisConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
}

type NATSConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
	Subject string `mapstructure:"subject"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("dispatcher.endpoint", "")
	v.SetDefault("dispatcher.token", "")
	v.SetDefault("dispatcher.timeout", "5s")
	v.SetDefault("collector.server.port", 8085)
	v.SetDefault("collector.server.read_timeout", "15s")
	v.SetDefault("collector.server.write_timeout", "15s")
	v.SetDefault("collector.server.idle_timeout", "60s")
	v.SetDefault("collector.api_key", "")
	v.SetDefault("collector.max_event_size", 1048576)
	v.SetDefault("collector.recent_limit", 100)
	v.SetDefault("collector.storage.type", "memory")
	v.SetDefault("collector.storage.capacity", 10000)
	v.SetDefault("collector.redis.enabled", false)
	v.SetDefault("collector.redis.url", "redis://localhost:6379/0")
	v.SetDefault("collector.nats.enabled", false)
	v.SetDefault("collector.nats.url", "nats://localhost:4222")
	v.SetDefault("collector.nats.subject", "aerochat.events")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Read config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/aerochat/logger")
	}

	// Environment variables override
	v.SetEnvPrefix("AEROLOG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// The variables the original deployment used keep working. Explicit
	// binds take priority in the order listed.
	v.BindEnv("dispatcher.endpoint", "AEROLOG_DISPATCHER_ENDPOINT", "LOGGER_ENDPOINT")
	v.BindEnv("dispatcher.token", "AEROLOG_DISPATCHER_TOKEN", "LOGGER_API_KEY")
	v.BindEnv("collector.api_key", "AEROLOG_COLLECTOR_API_KEY", "LOGGER_API_KEY")

	// Read config
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found; use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

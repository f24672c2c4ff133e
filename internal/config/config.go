package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	Feed     FeedConfig     `yaml:"feed"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port int    `yaml:"port"`
	Mode string `yaml:"mode"` // gin mode: debug, release, test
}

// DatabaseConfig MySQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// DSN builds the MySQL DSN
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

// RedisConfig Redis connection settings (optional; rate limiting only)
type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

// JWTConfig token settings
type JWTConfig struct {
	Secret          string        `yaml:"secret"`
	AccessDuration  time.Duration `yaml:"access_duration"`
	RefreshDuration time.Duration `yaml:"refresh_duration"`
}

// FeedConfig pagination bounds for the feed endpoint
type FeedConfig struct {
	DefaultPageSize int `yaml:"default_page_size"`
	MaxPageSize     int `yaml:"max_page_size"`
}

// CORSConfig allowed origins
type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

// Load reads configuration from a YAML file, then applies env overrides
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if cfg.Feed.DefaultPageSize < 1 {
		cfg.Feed.DefaultPageSize = 5
	}
	if cfg.Feed.MaxPageSize < cfg.Feed.DefaultPageSize {
		cfg.Feed.MaxPageSize = 20
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080, Mode: "debug"},
		Database: DatabaseConfig{
			Host: "127.0.0.1",
			Port: 3306,
			User: "inkwell",
			Name: "inkwell",
		},
		Redis: RedisConfig{Host: "", Port: 6379, PoolSize: 10},
		JWT: JWTConfig{
			Secret:          "dev-secret-change-me",
			AccessDuration:  30 * time.Minute,
			RefreshDuration: 14 * 24 * time.Hour,
		},
		Feed: FeedConfig{DefaultPageSize: 5, MaxPageSize: 20},
		CORS: CORSConfig{AllowOrigins: []string{"http://localhost:5173"}},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = p
		}
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = p
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		cfg.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
}

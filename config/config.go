package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var ErrNoAPIBaseURL = errors.New("API_BASE_URL is not configured")

type Config struct {
	ListenAddr string
	APIBaseURL string
	RedisHost  string
	RedisPort  string
	SessionTTL time.Duration
}

// fileConfig mirrors config.yaml; the TTL stays a string ("45m") until
// parsed.
type fileConfig struct {
	ListenAddr string `yaml:"listen_addr"`
	APIBaseURL string `yaml:"api_base_url"`
	RedisHost  string `yaml:"redis_host"`
	RedisPort  string `yaml:"redis_port"`
	SessionTTL string `yaml:"session_ttl"`
}

func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// Load reads config.yaml when present, then lets environment variables
// override it. A .env file is honored the same way as a real environment.
func Load() (cfg Config, err error) {
	godotenv.Load()

	cfg = Config{
		ListenAddr: ":8080",
		RedisHost:  "localhost",
		RedisPort:  "6379",
		SessionTTL: 30 * time.Minute,
	}

	if data, readErr := os.ReadFile("config.yaml"); readErr == nil {
		var fc fileConfig
		if err = yaml.Unmarshal(data, &fc); err != nil {
			return
		}
		if fc.ListenAddr != "" {
			cfg.ListenAddr = fc.ListenAddr
		}
		if fc.APIBaseURL != "" {
			cfg.APIBaseURL = fc.APIBaseURL
		}
		if fc.RedisHost != "" {
			cfg.RedisHost = fc.RedisHost
		}
		if fc.RedisPort != "" {
			cfg.RedisPort = fc.RedisPort
		}
		if fc.SessionTTL != "" {
			if cfg.SessionTTL, err = time.ParseDuration(fc.SessionTTL); err != nil {
				return
			}
		}
	}

	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		cfg.RedisHost = v
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		cfg.RedisPort = v
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		var ttl time.Duration
		if ttl, err = time.ParseDuration(v); err != nil {
			return
		}
		cfg.SessionTTL = ttl
	}

	if cfg.APIBaseURL == "" {
		err = ErrNoAPIBaseURL
	}
	return
}

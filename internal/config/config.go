package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultPort           = 3000
	defaultPlacesBaseURL  = "https://maps.googleapis.com"
	defaultRequestTimeout = 10
)

type Config struct {
	Server ServerConfig
	Auth   AuthConfig
	Places PlacesConfig
	CORS   CORSConfig
	Log    LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// AuthConfig holds the shared secret clients send in X-API-KEY.
type AuthConfig struct {
	ClientAPIKey string
}

type PlacesConfig struct {
	APIKey         string
	Provider       string
	BaseURL        string
	RequestTimeout time.Duration
	RateLimit      int
}

type CORSConfig struct {
	AllowOrigins string
}

type LogConfig struct {
	Level string
}

// Load reads an optional .env file from the working directory and lets
// environment variables override it. It fails when a required key is missing.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", defaultPort)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PLACES_PROVIDER", "http")
	v.SetDefault("PLACES_BASE_URL", defaultPlacesBaseURL)
	v.SetDefault("PLACES_REQUEST_TIMEOUT", defaultRequestTimeout)
	v.SetDefault("PLACES_RATE_LIMIT", 0)
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	if missing := missingKeys(v, "GOOGLE_PLACE_API_KEY", "CLIENT_API_KEY"); len(missing) > 0 {
		return nil, fmt.Errorf("missing environment variables: %s", strings.Join(missing, ", "))
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("HOST"),
			Port: v.GetInt("PORT"),
			Env:  v.GetString("APP_ENV"),
		},
		Auth: AuthConfig{
			ClientAPIKey: v.GetString("CLIENT_API_KEY"),
		},
		Places: PlacesConfig{
			APIKey:         v.GetString("GOOGLE_PLACE_API_KEY"),
			Provider:       v.GetString("PLACES_PROVIDER"),
			BaseURL:        v.GetString("PLACES_BASE_URL"),
			RequestTimeout: time.Duration(v.GetInt("PLACES_REQUEST_TIMEOUT")) * time.Second,
			RateLimit:      v.GetInt("PLACES_RATE_LIMIT"),
		},
		CORS: CORSConfig{
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid PORT: %d", c.Server.Port)
	}
	if c.Places.RateLimit < 0 {
		return errors.New("PLACES_RATE_LIMIT must not be negative")
	}
	if c.Places.RequestTimeout <= 0 {
		c.Places.RequestTimeout = defaultRequestTimeout * time.Second
	}
	return nil
}

func missingKeys(v *viper.Viper, keys ...string) []string {
	var missing []string
	for _, key := range keys {
		if v.GetString(key) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

package utils

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Security SecurityConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Name          string
	Port          string
	Debug         bool
	LogPath       string
	StorageDriver string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

type SessionConfig struct {
	CookieName      string
	CookieSecure    bool
	ExpiryHours     int
	CleanupInterval time.Duration
}

// Expiry returns how long a freshly established session stays valid.
func (c SessionConfig) Expiry() time.Duration {
	return time.Duration(c.ExpiryHours) * time.Hour
}

type SecurityConfig struct {
	BcryptCost int
}

type CORSConfig struct {
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "telehealth-portal")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("STORAGE_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("SESSION_COOKIE_NAME", "sid")
	v.SetDefault("SESSION_COOKIE_SECURE", false)
	v.SetDefault("SESSION_EXPIRY_HOURS", 24)
	v.SetDefault("SESSION_CLEANUP_MINUTES", 10)
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:63342")

	// .env is optional, the environment alone is enough in containers
	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:          v.GetString("APP_NAME"),
			Port:          v.GetString("PORT"),
			Debug:         v.GetBool("DEBUG"),
			LogPath:       v.GetString("LOG_PATH"),
			StorageDriver: strings.ToLower(v.GetString("STORAGE_DRIVER")),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			CookieName:      v.GetString("SESSION_COOKIE_NAME"),
			CookieSecure:    v.GetBool("SESSION_COOKIE_SECURE"),
			ExpiryHours:     v.GetInt("SESSION_EXPIRY_HOURS"),
			CleanupInterval: time.Duration(v.GetInt("SESSION_CLEANUP_MINUTES")) * time.Minute,
		},
		Security: SecurityConfig{
			BcryptCost: v.GetInt("BCRYPT_COST"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.App.StorageDriver {
	case DriverPostgres:
		if c.Database.Name == "" || c.Database.User == "" {
			return errors.New("DB_NAME and DB_USER are required for the postgres driver")
		}
	case DriverMemory:
	default:
		return errors.New("STORAGE_DRIVER must be one of: postgres, memory")
	}

	if c.Session.CookieName == "" {
		return errors.New("SESSION_COOKIE_NAME must not be empty")
	}
	if c.Session.ExpiryHours <= 0 {
		return errors.New("SESSION_EXPIRY_HOURS must be positive")
	}

	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

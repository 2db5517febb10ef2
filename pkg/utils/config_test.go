package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE_DRIVER", "memory")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, DriverMemory, config.App.StorageDriver)
	assert.Equal(t, "sid", config.Session.CookieName)
	assert.False(t, config.Session.CookieSecure)
	assert.Equal(t, 24, config.Session.ExpiryHours)
	assert.Equal(t, 10, config.Security.BcryptCost)
	assert.Equal(t, []string{"http://localhost:63342"}, config.CORS.AllowedOrigins)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE_DRIVER", "POSTGRES")
	t.Setenv("DB_NAME", "portal")
	t.Setenv("DB_USER", "portal")
	t.Setenv("SESSION_COOKIE_SECURE", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, config.App.StorageDriver)
	assert.True(t, config.Session.CookieSecure)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, config.CORS.AllowedOrigins)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid memory config", mutate: func(c *Config) {}},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.App.StorageDriver = "sqlite" },
			wantErr: "STORAGE_DRIVER",
		},
		{
			name: "postgres without database name",
			mutate: func(c *Config) {
				c.App.StorageDriver = DriverPostgres
				c.Database.User = "portal"
			},
			wantErr: "DB_NAME",
		},
		{
			name:    "non-positive expiry",
			mutate:  func(c *Config) { c.Session.ExpiryHours = 0 },
			wantErr: "SESSION_EXPIRY_HOURS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{
				App:     AppConfig{StorageDriver: DriverMemory},
				Session: SessionConfig{CookieName: "sid", ExpiryHours: 24},
			}
			tt.mutate(c)

			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

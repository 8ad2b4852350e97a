package fitquest

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// LoadConfig reads the TOML config at path, then applies .env and environment overrides.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

type Config struct {
	Log   LogConfig   `toml:"log"`
	Web   WebConfig   `toml:"web"`
	Auth  AuthConfig  `toml:"auth"`
	DB    DBConfig    `toml:"db"`
	Redis RedisConfig `toml:"redis"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type WebConfig struct {
	Host           string   `toml:"host"`
	Port           int      `toml:"port"`
	RealtimePort   int      `toml:"realtime_port"`
	SessionKey     string   `toml:"session_key"`
	Environment    string   `toml:"environment"`
	FrontendURL    string   `toml:"frontend_url"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

type AuthConfig struct {
	IssuerURL       string `toml:"issuer_url"`
	ClientID        string `toml:"client_id"`
	ClientSecret    string `toml:"client_secret"`
	RedirectURL     string `toml:"redirect_url"`
	AllowLocalLogin bool   `toml:"allow_local_login"`
}

// OIDCEnabled reports whether enough provider settings are present to attempt discovery.
func (a AuthConfig) OIDCEnabled() bool {
	return a.IssuerURL != "" && a.ClientID != ""
}

type DBConfig struct {
	URL          string `toml:"url"`
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	Database     string `toml:"database"`
	PoolSize     int    `toml:"pool_size"`
	MaxIdleConns int    `toml:"max_idle_conns"`
	MaxLifetime  int    `toml:"max_lifetime"`
	AutoMigrate  bool   `toml:"auto_migrate"`
}

type RedisConfig struct {
	Addr           string `toml:"addr"`
	Password       string `toml:"password"`
	DB             int    `toml:"db"`
	LeaderboardTTL int    `toml:"leaderboard_ttl"` // seconds
}

// Enabled reports whether a Redis address has been configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

func (r RedisConfig) TTL() time.Duration {
	return time.Duration(r.LeaderboardTTL) * time.Second
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DB.URL = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.DB.Password = v
	}
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		c.Web.SessionKey = v
	}
	if v := os.Getenv("OIDC_CLIENT_SECRET"); v != "" {
		c.Auth.ClientSecret = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Web.Port = port
		} else {
			slog.Warn("Ignoring invalid PORT override", slog.String("value", v))
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Web.Host == "" {
		c.Web.Host = "0.0.0.0"
	}
	if c.Web.Port == 0 {
		c.Web.Port = 5000
	}
	if c.Web.Environment == "" {
		c.Web.Environment = "development"
	}
	if c.Web.FrontendURL == "" {
		c.Web.FrontendURL = "http://localhost:5173"
	}
	if len(c.Web.AllowedOrigins) == 0 {
		c.Web.AllowedOrigins = []string{c.Web.FrontendURL}
	}
	if c.DB.Port == 0 {
		c.DB.Port = 5432
	}
	if c.DB.PoolSize == 0 {
		c.DB.PoolSize = 10
	}
	if c.Redis.LeaderboardTTL == 0 {
		c.Redis.LeaderboardTTL = 15
	}
}

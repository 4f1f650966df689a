package config

import (
	"flag"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	defaultBaseURL  = "localhost:8080"
	defaultAuthPath = "/api/auth/private"
	defaultDSN      = "file:habitauth.db?_pragma=busy_timeout(5000)"
	defaultSecret   = "dev-secret-key"
	defaultTokenTTL = 15 * time.Minute
	// refresh-токен живёт неделю
	defaultRefreshTTL = 7 * 24 * time.Hour
)

type Config struct {
	// Server-side settings
	DatabaseDSN  string        `env:"DATABASE_URI"`
	AuthSecret   string        `env:"AUTH_SECRET"`
	TokenTTL     time.Duration `env:"TOKEN_TTL"`
	RefreshTTL   time.Duration `env:"REFRESH_TTL"`
	SeedUser     string        `env:"SEED_USER"`
	SeedPassword string        `env:"SEED_PASSWORD"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`
	LogLevel    string `env:"LOG_LEVEL"`

	// Client-side settings
	ServerURL string `env:"-"`
	AuthPath  string `env:"AUTH_PATH"`
	Version   bool   `env:"-"` // show version and exit (flag only)
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги получают значения из env как значения по умолчанию
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (sqlite file: или postgres://)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "access token lifetime")
	flag.DurationVar(&cfg.RefreshTTL, "refresh-ttl", cfg.RefreshTTL, "refresh token lifetime")
	// Shared flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the auth server in host:port form")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "use https scheme for the server URL")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	// Client flags
	flag.StringVar(&cfg.AuthPath, "auth-path", cfg.AuthPath, "path of the Basic-auth protected endpoint")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

// applyDefaults заполняет пустые и невалидные значения.
func (c *Config) applyDefaults() {
	if c.AuthSecret == "" {
		c.AuthSecret = defaultSecret
	}
	if c.DatabaseDSN == "" {
		c.DatabaseDSN = defaultDSN
	}
	if c.TokenTTL <= 0 {
		c.TokenTTL = defaultTokenTTL
	}
	if c.RefreshTTL <= 0 {
		c.RefreshTTL = defaultRefreshTTL
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	// BaseURL must be "address:port" (no scheme, no path). Otherwise use default.
	if !hostPortRe.MatchString(c.BaseURL) {
		c.BaseURL = defaultBaseURL
	}
	if !strings.HasPrefix(c.AuthPath, "/") {
		c.AuthPath = defaultAuthPath
	}

	if c.EnableHTTPS {
		c.ServerURL = "https://" + c.BaseURL
	} else {
		c.ServerURL = "http://" + c.BaseURL
	}
}

// PrivateURL returns the full URL of the protected endpoint used to check credentials.
func (c *Config) PrivateURL() string {
	path := c.AuthPath
	if path == "" {
		path = defaultAuthPath
	}
	return strings.TrimRight(c.ServerURL, "/") + path
}

// Endpoint joins ServerURL with an API path.
func (c *Config) Endpoint(path string) string {
	return strings.TrimRight(c.ServerURL, "/") + path
}

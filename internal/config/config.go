package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration.
type Config struct {
	Port int `yaml:"port" env:"PORT"`

	// X API
	APIBaseURL string `yaml:"api_base_url" env:"API_BASE_URL"`

	// X OAuth 2.0 client
	ClientID     string   `yaml:"client_id" env:"X_CLIENT_ID"`
	ClientSecret string   `yaml:"client_secret" env:"X_CLIENT_SECRET"`
	RedirectURL  string   `yaml:"redirect_url" env:"X_REDIRECT_URL"`
	AuthURL      string   `yaml:"auth_url" env:"X_AUTH_URL"`
	TokenURL     string   `yaml:"token_url" env:"X_TOKEN_URL"`
	Scopes       []string `yaml:"scopes" env:"X_SCOPES" envSeparator:","`
	CookieSecure bool     `yaml:"cookie_secure" env:"COOKIE_SECURE"`

	// MaxAffiliatePages caps affiliate pagination (0 = follow every token).
	MaxAffiliatePages int `yaml:"max_affiliate_pages" env:"MAX_AFFILIATE_PAGES"`
	// HTTPTimeoutSeconds bounds outbound API calls (0 = transport default).
	HTTPTimeoutSeconds int `yaml:"http_timeout_seconds" env:"HTTP_TIMEOUT_SECONDS"`

	// TracingEndpoint is the OTLP gRPC collector (host:port); empty disables export.
	TracingEndpoint string `yaml:"tracing_endpoint" env:"TRACING_ENDPOINT"`
	TracingInsecure bool   `yaml:"tracing_insecure" env:"TRACING_INSECURE"`

	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Port:        8080,
		APIBaseURL:  "https://api.x.com",
		RedirectURL: "http://localhost:8080/callback",
		AuthURL:     "https://x.com/i/oauth2/authorize",
		TokenURL:    "https://api.x.com/2/oauth2/token",
		Scopes:      []string{"users.read", "tweet.read", "offline.access"},
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Load builds the configuration from defaults, the optional YAML file named
// by CONFIG_FILE, a local .env file and the environment, in that order.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks value ranges that the parsers cannot express.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.MaxAffiliatePages < 0 {
		return fmt.Errorf("max affiliate pages must not be negative, got %d", c.MaxAffiliatePages)
	}
	if c.HTTPTimeoutSeconds < 0 {
		return fmt.Errorf("http timeout must not be negative, got %d", c.HTTPTimeoutSeconds)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format %q", c.LogFormat)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// GetScopes returns the OAuth scopes with blanks removed.
func (c *Config) GetScopes() []string {
	result := make([]string, 0, len(c.Scopes))
	for _, scope := range c.Scopes {
		scope = strings.TrimSpace(scope)
		if scope != "" {
			result = append(result, scope)
		}
	}
	return result
}

// HasOAuthConfig returns true if the X OAuth client is configured.
func (c *Config) HasOAuthConfig() bool {
	return c.ClientID != ""
}

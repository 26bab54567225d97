package app

import (
	"os"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the complete application configuration, loadable from
// environment variables (STORE_ prefix), flags, or YAML config files.
type Config struct {
	Addr      string `default:"0.0.0.0:8000" usage:"API server listen address"`
	Fintoc    FintocConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Graceful  GracefulConfig
}

// FintocConfig controls the payment gateway client.
type FintocConfig struct {
	SecretKey string        `usage:"Fintoc API secret key (STORE_FINTOC_SECRETKEY or FINTOC_SECRET_KEY)" flag:"fintoc-secret-key"`
	BaseURL   string        `default:"https://api.fintoc.com" usage:"Fintoc API base URL" flag:"fintoc-base-url"`
	Timeout   time.Duration `default:"30s" usage:"Fintoc request timeout" flag:"fintoc-timeout"`
}

// RateLimitConfig controls the per-client rate limiter.
type RateLimitConfig struct {
	Max    int           `default:"100" usage:"Max requests per window"`
	Window time.Duration `default:"1m"  usage:"Rate limit window duration"`
}

// CORSConfig controls Cross-Origin Resource Sharing headers.
type CORSConfig struct {
	Origins          []string `default:"*" usage:"Allowed CORS origins"`
	AllowCredentials bool     `default:"false" usage:"Allow credentials (cookies, auth headers)" flag:"cors-credentials"`
}

// GracefulConfig controls graceful shutdown timing.
type GracefulConfig struct {
	ReadinessDelay  time.Duration `default:"3s"  usage:"Delay after readiness=false before shutdown" flag:"readiness-delay"`
	ShutdownTimeout time.Duration `default:"15s" usage:"Maximum shutdown duration" flag:"shutdown-timeout"`
}

// LoadConfig loads configuration from environment variables, YAML config
// files, and applies platform-specific defaults.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "STORE",
		Files:     []string{"config.yaml", "/etc/pepestore/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()

	if cfg.Fintoc.SecretKey == "" {
		return nil, errors.New("Fintoc secret key is required: set STORE_FINTOC_SECRETKEY or FINTOC_SECRET_KEY")
	}

	return &cfg, nil
}

// applyPlatformDefaults maps environment variables that use their provider's
// standard names (PORT on Railway/Render, FINTOC_SECRET_KEY from the Fintoc
// dashboard docs) onto the STORE_-prefixed configuration.
func (c *Config) applyPlatformDefaults() {
	if c.Fintoc.SecretKey == "" {
		if v := os.Getenv("FINTOC_SECRET_KEY"); v != "" {
			c.Fintoc.SecretKey = v
		}
	}
	if port := os.Getenv("PORT"); port != "" && c.Addr == "0.0.0.0:8000" {
		c.Addr = "0.0.0.0:" + port
	}
}

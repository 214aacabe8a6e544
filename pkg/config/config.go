package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/kingsmao/btce-connector/pkg/logger"
	"github.com/kingsmao/btce-connector/pkg/schema"
)

const (
	DefaultHost          = "btc-e.com"
	DefaultPublicTimeout = 10 * time.Second
	DefaultTradeTimeout  = 30 * time.Second
)

// Config holds credentials and transport settings for one client.
type Config struct {
	APIKey    string `yaml:"api_key"`
	APISecret string `yaml:"api_secret"`
	// Nonce seeds the request counter; 0 means current unix time.
	Nonce int64 `yaml:"nonce"`

	Host      string `yaml:"host"`
	PublicURL string `yaml:"public_url"` // default https://{host}/api/3
	TradeURL  string `yaml:"trade_url"`  // default https://{host}/tapi/

	PublicTimeout time.Duration `yaml:"public_timeout"`
	TradeTimeout  time.Duration `yaml:"trade_timeout"`

	// InsecureSkipVerify disables TLS verification on both channels. Opt-in only.
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify"`
	UserAgent          string `yaml:"user_agent"`

	Log logger.Config `yaml:"log"`
}

// Default returns a config with endpoints and timeouts filled in and no credentials.
func Default() Config {
	return Config{
		Host:          DefaultHost,
		PublicTimeout: DefaultPublicTimeout,
		TradeTimeout:  DefaultTradeTimeout,
		UserAgent:     "btce-connector/go",
		Log:           logger.Config{Level: "info"},
	}
}

// Load reads the optional YAML file, then .env, then environment variables.
// Priority: ENV > .env > file > defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}

	// .env is optional, but a broken one should not pass silently
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("加载 .env 失败: %v", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.fillDefaults()
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("BTCE_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("BTCE_API_SECRET"); v != "" {
		c.APISecret = v
	}
	if v := os.Getenv("BTCE_NONCE"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return &schema.ConfigurationError{Field: "BTCE_NONCE", Reason: err.Error()}
		}
		c.Nonce = n
	}
	if v := os.Getenv("BTCE_HOST"); v != "" {
		c.Host = v
	}
	if v := os.Getenv("BTCE_PUBLIC_URL"); v != "" {
		c.PublicURL = v
	}
	if v := os.Getenv("BTCE_TRADE_URL"); v != "" {
		c.TradeURL = v
	}
	if v := os.Getenv("BTCE_TRADE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return &schema.ConfigurationError{Field: "BTCE_TRADE_TIMEOUT", Reason: err.Error()}
		}
		c.TradeTimeout = d
	}
	if v := os.Getenv("BTCE_INSECURE_SKIP_VERIFY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return &schema.ConfigurationError{Field: "BTCE_INSECURE_SKIP_VERIFY", Reason: err.Error()}
		}
		c.InsecureSkipVerify = b
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		c.Log.OutputFile = v
	}
	return nil
}

func (c *Config) fillDefaults() {
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.PublicURL == "" {
		c.PublicURL = "https://" + c.Host + "/api/3"
	}
	if c.TradeURL == "" {
		c.TradeURL = "https://" + c.Host + "/tapi/"
	}
	c.PublicURL = strings.TrimSuffix(c.PublicURL, "/")
	if c.PublicTimeout <= 0 {
		c.PublicTimeout = DefaultPublicTimeout
	}
	if c.TradeTimeout <= 0 {
		c.TradeTimeout = DefaultTradeTimeout
	}
}

// WithDefaults returns a copy with endpoints and timeouts resolved.
func (c Config) WithDefaults() Config {
	c.fillDefaults()
	return c
}

// Validate checks the fields a trade client cannot run without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return &schema.ConfigurationError{Field: "api_key", Reason: "required"}
	}
	if strings.TrimSpace(c.APISecret) == "" {
		return &schema.ConfigurationError{Field: "api_secret", Reason: "required"}
	}
	if c.Nonce < 0 {
		return &schema.ConfigurationError{Field: "nonce", Reason: "must not be negative"}
	}
	return nil
}

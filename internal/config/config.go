package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rsilvagit/jobsheet/internal/httpclient"
)

// Config holds the full application configuration.
type Config struct {
	Site   SiteConfig   `yaml:"site" mapstructure:"site"`
	Fetch  FetchConfig  `yaml:"fetch" mapstructure:"fetch"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Cache  CacheConfig  `yaml:"cache" mapstructure:"cache"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// SiteConfig identifies the listing site and how far to page through it.
type SiteConfig struct {
	BaseURL  string `yaml:"base_url" mapstructure:"base_url"`
	StartURL string `yaml:"start_url" mapstructure:"start_url"`
	MaxPages int    `yaml:"max_pages" mapstructure:"max_pages"`
}

// FetchConfig configures page requests.
type FetchConfig struct {
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	UserAgent   string `yaml:"user_agent" mapstructure:"user_agent"`
	ProxyURL    string `yaml:"proxy_url" mapstructure:"proxy_url"`
}

// Timeout returns the per-request timeout.
func (f FetchConfig) Timeout() time.Duration {
	return time.Duration(f.TimeoutSecs) * time.Second
}

// OutputConfig configures where results go.
type OutputConfig struct {
	Path  string `yaml:"path" mapstructure:"path"`
	Print bool   `yaml:"print" mapstructure:"print"`
}

// CacheConfig configures the optional Redis page cache. An empty RedisURL
// disables it.
type CacheConfig struct {
	RedisURL   string `yaml:"redis_url" mapstructure:"redis_url"`
	TTLMinutes int    `yaml:"ttl_minutes" mapstructure:"ttl_minutes"`
}

// TTL returns how long a cached page stays valid.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// Enabled reports whether a Redis URL is configured.
func (c CacheConfig) Enabled() bool {
	return c.RedisURL != ""
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("JOBSHEET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("site.base_url", "https://internshala.com")
	v.SetDefault("site.start_url", "https://internshala.com/jobs/")
	v.SetDefault("site.max_pages", 3)
	v.SetDefault("fetch.timeout_secs", 10)
	v.SetDefault("fetch.user_agent", httpclient.DefaultUserAgent)
	v.SetDefault("fetch.proxy_url", "")
	v.SetDefault("output.path", "Internshala_Jobs.xlsx")
	v.SetDefault("output.print", false)
	v.SetDefault("cache.redis_url", "")
	v.SetDefault("cache.ttl_minutes", 30)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the values the pipeline cannot run without.
func (c *Config) Validate() error {
	if c.Site.BaseURL == "" {
		return eris.New("config: site.base_url is required")
	}
	if c.Site.StartURL == "" {
		return eris.New("config: site.start_url is required")
	}
	if c.Site.MaxPages < 1 {
		return eris.Errorf("config: site.max_pages must be positive, got %d", c.Site.MaxPages)
	}
	if c.Fetch.TimeoutSecs < 1 {
		return eris.Errorf("config: fetch.timeout_secs must be positive, got %d", c.Fetch.TimeoutSecs)
	}
	if c.Output.Path == "" {
		return eris.New("config: output.path is required")
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}

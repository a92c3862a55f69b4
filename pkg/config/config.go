package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	SGS struct {
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"`
		Series  struct {
			PolicyRate    SeriesConfig `yaml:"policy_rate"`
			InterbankRate SeriesConfig `yaml:"interbank_rate"`
			SavingsYield  SeriesConfig `yaml:"savings_yield"`
			PriceIndex    SeriesConfig `yaml:"price_index"`
		} `yaml:"series"`
	} `yaml:"sgs"`
	Cache struct {
		TTL        time.Duration `yaml:"ttl"`
		WarmOnBoot bool          `yaml:"warm_on_boot"`
	} `yaml:"cache"`
}

// SeriesConfig identifies one SGS time series and how far back to query it.
type SeriesConfig struct {
	Code         int `yaml:"code"`
	LookbackDays int `yaml:"lookback_days"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("SGS_BASE_URL"); v != "" {
		c.SGS.BaseURL = v
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Cache.TTL = d
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.SGS.BaseURL == "" {
		return fmt.Errorf("sgs.base_url is required")
	}
	if c.SGS.Timeout <= 0 {
		return fmt.Errorf("sgs.timeout must be positive")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive")
	}
	for name, s := range map[string]SeriesConfig{
		"policy_rate":    c.SGS.Series.PolicyRate,
		"interbank_rate": c.SGS.Series.InterbankRate,
		"savings_yield":  c.SGS.Series.SavingsYield,
		"price_index":    c.SGS.Series.PriceIndex,
	} {
		if s.Code <= 0 {
			return fmt.Errorf("sgs.series.%s.code is required", name)
		}
		if s.LookbackDays <= 0 {
			return fmt.Errorf("sgs.series.%s.lookback_days must be positive", name)
		}
	}
	// The 12-month accumulation needs a full year of monthly observations.
	if c.SGS.Series.PriceIndex.LookbackDays < 365 {
		return fmt.Errorf("sgs.series.price_index.lookback_days must be at least 365")
	}
	return nil
}

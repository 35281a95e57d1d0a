package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type API struct {
	BaseURL        string        `mapstructure:"base_url"`
	HealthTimeout  time.Duration `mapstructure:"health_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type Seed struct {
	DatasetFile    string `mapstructure:"dataset_file"`
	SyntheticCount int    `mapstructure:"synthetic_count"`
	SyntheticSeed  int64  `mapstructure:"synthetic_seed"`
	SkipBulk       bool   `mapstructure:"skip_bulk"`
	Strict         bool   `mapstructure:"strict"`
}

type Verify struct {
	Enabled    bool  `mapstructure:"enabled"`
	DictatorID int64 `mapstructure:"dictator_id"`
}

type Config struct {
	API    API    `mapstructure:"api"`
	Seed   Seed   `mapstructure:"seed"`
	Verify Verify `mapstructure:"verify"`
	Server Server `mapstructure:"server"`
	Log    Log    `mapstructure:"log"`
	NATS   NATS   `mapstructure:"nats"`
	Env    string `mapstructure:"environment"`
}

type Server struct {
	Address      string        `mapstructure:"address"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type NATS struct {
	URL           string `mapstructure:"url"`
	Stream        string `mapstructure:"stream"`
	ReportSubject string `mapstructure:"report_subject"`
}

const DefaultBaseURL = "http://localhost:8081/api"

func Load(cfgFile string) (Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.dictators-seed")
		v.AddConfigPath("/etc/dictators-seed")
	}

	v.SetEnvPrefix("DICTATORS_SEED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("api.base_url", "DICTATORS_API_URL")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	cfg.API.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.API.BaseURL), "/")
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", DefaultBaseURL)
	v.SetDefault("api.health_timeout", "5s")
	v.SetDefault("api.request_timeout", "30s")
	v.SetDefault("seed.dataset_file", "")
	v.SetDefault("seed.synthetic_count", 0)
	v.SetDefault("seed.synthetic_seed", 0)
	v.SetDefault("seed.skip_bulk", false)
	v.SetDefault("seed.strict", false)
	v.SetDefault("verify.enabled", true)
	v.SetDefault("verify.dictator_id", 1)
	v.SetDefault("server.address", ":8081")
	v.SetDefault("server.read_timeout", "5s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("nats.stream", "seed")
	v.SetDefault("nats.report_subject", "seed.completed")
	v.SetDefault("environment", "dev")
}

// Validate checks values that would otherwise fail late, mid-run.
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url: unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("api.base_url: host is required")
	}
	if c.API.HealthTimeout < 0 || c.API.RequestTimeout < 0 {
		return errors.New("api timeouts must not be negative")
	}
	if c.Seed.SyntheticCount < 0 {
		return errors.New("seed.synthetic_count must not be negative")
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "config/config.yaml"

type Config struct {
	Env     string        `yaml:"env" env:"ENV" env-default:"dev"`
	HTTP    HTTPConfig    `yaml:"http"`
	Session SessionConfig `yaml:"session"`
	Web     WebConfig     `yaml:"web"`
	Health  HealthConfig  `yaml:"health"`
	Log     LogConfig     `yaml:"log"`
}

type HTTPConfig struct {
	Address      string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"0.0.0.0:5000"`
	Mode         string        `yaml:"mode" env:"HTTP_MODE" env-default:"debug"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Debug reports whether the server runs in debug mode. Anything other than
// "release" counts as debug.
func (c HTTPConfig) Debug() bool {
	return c.Mode != "release"
}

type SessionConfig struct {
	Secret     string        `yaml:"secret" env:"SESSION_SECRET" env-default:"duplotech_6040_secret_key_2023"`
	CookieName string        `yaml:"cookie_name" env-default:"duplotech_session"`
	Lifetime   time.Duration `yaml:"lifetime" env-default:"24h"`
	Secure     bool          `yaml:"secure" env:"SESSION_SECURE" env-default:"false"`
}

// WebConfig.TemplatesDir, when set, serves templates and static assets from
// disk instead of the copies embedded in the binary.
type WebConfig struct {
	TemplatesDir string `yaml:"templates_dir" env:"WEB_TEMPLATES_DIR"`
}

type HealthConfig struct {
	Address string `yaml:"address" env:"HEALTH_ADDRESS" env-default:":9100"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// MustLoad resolves the config path from the argument, CONFIG_PATH or the
// default location. A missing file is not fatal: the dashboard boots from
// environment variables and defaults alone.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(err.Error())
	}
	return cfg
}

func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}

	if configPath == "" {
		configPath = defaultConfigPath
	}

	var cfg Config

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read config from env: %w", err)
		}
	} else if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if cfg.Session.Lifetime <= 0 {
		return nil, fmt.Errorf("session lifetime must be positive, got %s", cfg.Session.Lifetime)
	}

	return &cfg, nil
}

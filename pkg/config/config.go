package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix is intentionally empty: every variable carries the full
	// ELEGANTE_ name in its envconfig tag.
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App      AppConfig
	Redis    RedisConfig
	Cart     CartConfig
	WhatsApp WhatsAppConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.WhatsApp.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ELEGANTE_APP_ENV" required:"true"`
	Port         string `envconfig:"ELEGANTE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"ELEGANTE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ELEGANTE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// RedisConfig drives the optional cart snapshot store. Leaving both URL and
// Address empty disables snapshots entirely.
type RedisConfig struct {
	URL          string        `envconfig:"ELEGANTE_REDIS_URL"`
	Address      string        `envconfig:"ELEGANTE_REDIS_ADDR"`
	Password     string        `envconfig:"ELEGANTE_REDIS_PASSWORD"`
	DB           int           `envconfig:"ELEGANTE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ELEGANTE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ELEGANTE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ELEGANTE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ELEGANTE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ELEGANTE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a snapshot backend was configured.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type CartConfig struct {
	SnapshotTTL time.Duration `envconfig:"ELEGANTE_CART_SNAPSHOT_TTL" default:"72h"`
}

type WhatsAppConfig struct {
	// Phone is the destination number for checkout and inquiry deep links,
	// country code included, digits only.
	Phone string `envconfig:"ELEGANTE_WHATSAPP_PHONE" required:"true"`
}

func (w WhatsAppConfig) validate() error {
	if strings.TrimSpace(w.Phone) == "" {
		return fmt.Errorf("ELEGANTE_WHATSAPP_PHONE is required")
	}
	for _, r := range w.Phone {
		if r < '0' || r > '9' {
			return fmt.Errorf("ELEGANTE_WHATSAPP_PHONE must contain digits only")
		}
	}
	return nil
}

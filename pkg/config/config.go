package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Redis   RedisConfig
	Catalog CatalogConfig
	Payment PaymentConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Storage.validate(cfg.Redis); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"HEMTEKNIK_APP_ENV" required:"true"`
	Port         string `envconfig:"HEMTEKNIK_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"HEMTEKNIK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"HEMTEKNIK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StorageConfig selects the persistence surface backing the cart and
// last-order records.
type StorageConfig struct {
	Driver string `envconfig:"HEMTEKNIK_STORAGE_DRIVER" default:"memory"`
}

const (
	StorageDriverMemory = "memory"
	StorageDriverRedis  = "redis"
)

func (s StorageConfig) IsRedis() bool {
	return strings.EqualFold(s.Driver, StorageDriverRedis)
}

func (s *StorageConfig) validate(redis RedisConfig) error {
	driver := strings.ToLower(strings.TrimSpace(s.Driver))
	switch driver {
	case StorageDriverMemory, StorageDriverRedis:
		s.Driver = driver
	default:
		return fmt.Errorf("unknown storage driver %q", s.Driver)
	}
	if driver == StorageDriverRedis && redis.URL == "" && redis.Address == "" {
		return fmt.Errorf("%s or %s is required when %s=redis", EnvRedisURL, "HEMTEKNIK_REDIS_ADDR", EnvStorageDriver)
	}
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"HEMTEKNIK_REDIS_URL"`
	Address      string        `envconfig:"HEMTEKNIK_REDIS_ADDR"`
	Password     string        `envconfig:"HEMTEKNIK_REDIS_PASSWORD"`
	DB           int           `envconfig:"HEMTEKNIK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"HEMTEKNIK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"HEMTEKNIK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"HEMTEKNIK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"HEMTEKNIK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"HEMTEKNIK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CatalogConfig struct {
	// Path overrides the embedded inventory dataset.
	Path string `envconfig:"HEMTEKNIK_CATALOG_PATH"`
}

type PaymentConfig struct {
	Delay       time.Duration `envconfig:"HEMTEKNIK_PAYMENT_DELAY" default:"1500ms"`
	SuccessRate float64       `envconfig:"HEMTEKNIK_PAYMENT_SUCCESS_RATE" default:"0.95"`
}

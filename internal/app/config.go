package app

import (
	"fmt"
	"time"
	// часовые пояса профилей и джоб без зависимости от системной tzdata
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	server "github.com/TolikMuradov/AstroCalendar/internal/adapters/primary/http"
	kafkaAdapter "github.com/TolikMuradov/AstroCalendar/internal/adapters/secondary/kafka"
	"github.com/TolikMuradov/AstroCalendar/internal/adapters/secondary/llm"
	"github.com/TolikMuradov/AstroCalendar/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/TolikMuradov/AstroCalendar/internal/adapters/secondary/storage/redis"
	"github.com/TolikMuradov/AstroCalendar/internal/pkg/logger"
)

type Config struct {
	Log      *logger.Config       `envconfig:"LOG"`
	Server   *server.Config       `envconfig:"APISERVER"`
	Redis    *redisAdapter.Config `envconfig:"REDIS"`
	Postgres *pg.Config           `envconfig:"POSTGRES"`
	LLM      *llm.Config          `envconfig:"LLM"`
	Kafka    *kafkaAdapter.Config `envconfig:"KAFKA"`
	Cache    CacheConfig          `envconfig:"CACHE"`
	Jobs     JobsConfig           `envconfig:"JOBS"`
}

// CacheConfig TTL записей кэша инсайтов, 0 - до выхода из аккаунта
type CacheConfig struct {
	TTL time.Duration `envconfig:"TTL" default:"0s"`
}

// JobsConfig прогрев кэша инсайтов раз в сутки
type JobsConfig struct {
	PrefetchEnabled bool   `envconfig:"PREFETCH_ENABLED" default:"true"`
	PrefetchHour    int    `envconfig:"PREFETCH_HOUR" default:"5"`
	Timezone        string `envconfig:"TIMEZONE" default:"UTC"`
}

func (c JobsConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache ttl must not be negative")
	}
	switch c.LLM.Provider {
	case "", llm.ProviderHTTP, llm.ProviderEino:
	default:
		return fmt.Errorf("unknown llm provider %q", c.LLM.Provider)
	}
	if c.Jobs.PrefetchHour < 0 || c.Jobs.PrefetchHour > 23 {
		return fmt.Errorf("prefetch hour %d is out of range 0..23", c.Jobs.PrefetchHour)
	}
	if _, err := c.Jobs.Location(); err != nil {
		return fmt.Errorf("invalid jobs timezone: %w", err)
	}
	if c.Postgres.Enabled() && c.Postgres.Database == "" {
		return fmt.Errorf("postgres database is required when postgres host is set")
	}
	return nil
}

package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	server "github.com/TolikMuradov/AstroCalendar/internal/adapters/primary/http"
	astroController "github.com/TolikMuradov/AstroCalendar/internal/adapters/primary/http/controllers/astro"
	healthcheckController "github.com/TolikMuradov/AstroCalendar/internal/adapters/primary/http/controllers/healthcheck"
	kafkaAdapter "github.com/TolikMuradov/AstroCalendar/internal/adapters/secondary/kafka"
	"github.com/TolikMuradov/AstroCalendar/internal/adapters/secondary/llm"
	"github.com/TolikMuradov/AstroCalendar/internal/adapters/secondary/storage/inmemory"
	"github.com/TolikMuradov/AstroCalendar/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/TolikMuradov/AstroCalendar/internal/adapters/secondary/storage/redis"
	"github.com/TolikMuradov/AstroCalendar/internal/ports/cache"
	"github.com/TolikMuradov/AstroCalendar/internal/ports/kafka"
	"github.com/TolikMuradov/AstroCalendar/internal/ports/repository"
	insightCacheRepo "github.com/TolikMuradov/AstroCalendar/internal/repository/insightcache"
	profileRepo "github.com/TolikMuradov/AstroCalendar/internal/repository/profile"
	"github.com/TolikMuradov/AstroCalendar/internal/services/fallback"
	"github.com/TolikMuradov/AstroCalendar/internal/services/generator"
	jobScheduler "github.com/TolikMuradov/AstroCalendar/internal/services/jobs"
	astroUsecase "github.com/TolikMuradov/AstroCalendar/internal/usecases/astro"
)

type Dependencies struct {
	DB         *sqlx.DB
	KV         cache.Cache
	Producer   *kafkaAdapter.Producer
	HTTPServer *http.Server
	Scheduler  *jobScheduler.Scheduler
}

// Close закрывает внешние подключения, ошибки только логируются
func (d *Dependencies) Close(log *slog.Logger) {
	if d.Producer != nil {
		if err := d.Producer.Close(); err != nil {
			log.Error("failed to close kafka producer", "error", err)
		}
	}
	if d.KV != nil {
		if err := d.KV.Close(); err != nil {
			log.Error("failed to close cache", "error", err)
		}
	}
	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			log.Error("failed to close database", "error", err)
		}
	}
}

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context) (*Dependencies, error) {
	deps := &Dependencies{}
	checks := make(map[string]healthcheckController.Check)

	deps.KV = a.initCache(ctx, checks)

	profiles, err := a.initProfiles(ctx, deps, checks)
	if err != nil {
		deps.Close(a.Log)
		return nil, fmt.Errorf("failed to init profiles: %w", err)
	}

	llmClient, err := llm.New(ctx, a.Cfg.LLM, a.Log)
	if err != nil {
		deps.Close(a.Log)
		return nil, fmt.Errorf("failed to init llm client: %w", err)
	}
	if a.Cfg.LLM.APIKey == "" {
		a.Log.Warn("llm api key is not set, all insights will use fallback content")
	}

	events := a.initKafka(deps)

	astroUseCase := astroUsecase.New(
		insightCacheRepo.New(deps.KV, a.Cfg.Cache.TTL, a.Log),
		generator.New(llmClient, a.Log),
		fallback.New(),
		profiles,
		events,
		a.Log,
	)

	deps.Scheduler = a.initJobScheduler(astroUseCase)

	deps.HTTPServer = server.NewHTTPServer(a.Cfg.Server, a.Log,
		healthcheckController.New(checks, a.Log),
		astroController.New(astroUseCase, a.Log),
	)

	return deps, nil
}

// initCache Redis, если настроен и доступен, иначе хранилище в памяти
func (a *App) initCache(ctx context.Context, checks map[string]healthcheckController.Check) cache.Cache {
	if !a.Cfg.Redis.Enabled() {
		a.Log.Info("redis is not configured, using in-memory cache")
		return inmemory.NewKV()
	}

	client, err := a.Cfg.Redis.NewConnection(ctx)
	if err != nil {
		a.Log.Warn("failed to init redis cache, continuing with in-memory cache", "error", err)
		return inmemory.NewKV()
	}

	checks["redis"] = func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
	a.Log.Info("redis cache connected successfully")
	return redisAdapter.NewClient(client)
}

// initProfiles удалённая копия профилей в Postgres; без конфигурации синхронизация выключена
func (a *App) initProfiles(ctx context.Context, deps *Dependencies, checks map[string]healthcheckController.Check) (repository.IProfileRepo, error) {
	if !a.Cfg.Postgres.Enabled() {
		a.Log.Info("postgres is not configured, remote profile sync disabled")
		return nil, nil
	}

	db, err := a.initPostgres(ctx)
	if err != nil {
		return nil, err
	}
	deps.DB = db

	checks["postgres"] = db.PingContext
	return profileRepo.New(pg.NewDB(db), a.Log), nil
}

func (a *App) initPostgres(ctx context.Context) (*sqlx.DB, error) {
	db, err := a.Cfg.Postgres.NewConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	a.Log.Info("postgres connected successfully")

	if a.Cfg.Postgres.RunMigrations {
		if err := pg.RunMigrations(ctx, db, a.Log); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	return db, nil
}

// initJobScheduler планировщик с ежедневным прогревом кэша
func (a *App) initJobScheduler(astroUseCase *astroUsecase.Service) *jobScheduler.Scheduler {
	scheduler := jobScheduler.NewScheduler(a.Log, jobScheduler.DefaultRetries)
	if !a.Cfg.Jobs.PrefetchEnabled {
		a.Log.Info("insight prefetch job disabled")
		return scheduler
	}

	location, err := a.Cfg.Jobs.Location()
	if err != nil {
		a.Log.Warn("invalid jobs timezone, using UTC", "error", err)
		location = time.UTC
	}
	scheduler.Register(jobScheduler.NewInsightPrefetch(astroUseCase, a.Cfg.Jobs.PrefetchHour, location))
	return scheduler
}

// initKafka продюсер событий; ошибка подключения не мешает запуску
func (a *App) initKafka(deps *Dependencies) kafka.IEventPublisher {
	if !a.Cfg.Kafka.Enabled() {
		a.Log.Info("kafka is not configured, insight events disabled")
		return nil
	}

	producer, err := kafkaAdapter.NewProducer(a.Cfg.Kafka, a.Log)
	if err != nil {
		a.Log.Warn("failed to init kafka producer, continuing without events", "error", err)
		return nil
	}
	deps.Producer = producer

	a.Log.Info("kafka producer created", "topic", a.Cfg.Kafka.Topic)
	return producer
}

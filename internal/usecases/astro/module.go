package astro

import (
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/TolikMuradov/AstroCalendar/internal/ports/kafka"
	"github.com/TolikMuradov/AstroCalendar/internal/ports/repository"
	"github.com/TolikMuradov/AstroCalendar/internal/ports/service"
	"github.com/TolikMuradov/AstroCalendar/internal/ports/usecase"
)

// Service оркестратор инсайтов: кэш, удалённая генерация, локальный fallback
type Service struct {
	Cache     repository.IInsightCache
	Generator service.IInsightGenerator
	Fallback  service.IFallbackGenerator
	// Profiles удалённая копия профиля, nil - синхронизация выключена
	Profiles repository.IProfileRepo
	// Events публикация событий, nil - без событий
	Events kafka.IEventPublisher
	Log    *slog.Logger

	flights singleflight.Group
	now     func() time.Time
}

var _ usecase.IAstroUseCase = (*Service)(nil)

// New создаёт оркестратор; profiles и events могут быть nil
func New(
	cache repository.IInsightCache,
	generator service.IInsightGenerator,
	fallback service.IFallbackGenerator,
	profiles repository.IProfileRepo,
	events kafka.IEventPublisher,
	log *slog.Logger,
) *Service {
	return &Service{
		Cache:     cache,
		Generator: generator,
		Fallback:  fallback,
		Profiles:  profiles,
		Events:    events,
		Log:       log,
		now:       time.Now,
	}
}

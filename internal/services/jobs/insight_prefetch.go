package jobs

import (
	"context"
	"time"
)

const insightPrefetchName = "insight-prefetch"

// prefetcher подготовка контента текущего периода для локального профиля
type prefetcher interface {
	PrefetchCurrent(ctx context.Context) error
}

// InsightPrefetch джоба прогрева кэша: каждый день в hour:00 по location генерирует
// дневной, месячный и годовой инсайты, чтобы первый запрос дня был попаданием в кэш
type InsightPrefetch struct {
	astroService prefetcher
	hour         int
	location     *time.Location
}

func NewInsightPrefetch(astroService prefetcher, hour int, location *time.Location) *InsightPrefetch {
	if location == nil {
		location = time.UTC
	}
	if hour < 0 || hour > 23 {
		hour = 0
	}

	return &InsightPrefetch{
		astroService: astroService,
		hour:         hour,
		location:     location,
	}
}

func (j *InsightPrefetch) Name() string {
	return insightPrefetchName
}

// NextRun ближайший hour:00 строго после now
func (j *InsightPrefetch) NextRun(now time.Time) time.Time {
	local := now.In(j.location)

	next := time.Date(local.Year(), local.Month(), local.Day(), j.hour, 0, 0, 0, j.location)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func (j *InsightPrefetch) Run(ctx context.Context) error {
	return j.astroService.PrefetchCurrent(ctx)
}

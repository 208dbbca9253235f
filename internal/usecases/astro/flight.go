package astro

import (
	"context"
	"errors"
	"time"

	"github.com/TolikMuradov/AstroCalendar/internal/domain"
)

// insightFlight описание одной генерации для ключа
type insightFlight[T any] struct {
	kind   domain.InsightKind
	userID string
	period string
	locale domain.Locale

	lookup   func(ctx context.Context) (*T, error)
	generate func(ctx context.Context) (*T, error)
	fallback func() *T
	store    func(ctx context.Context, v *T) error
	// meta признак fallback и время генерации для события
	meta func(v *T) (bool, time.Time)
}

func (f insightFlight[T]) key() string {
	return domain.InsightKey(f.kind, f.userID, f.period, f.locale)
}

// resolve кэш, затем единственная на ключ генерация.
// Генерация идёт без отмены: ушедший вызывающий получает ctx.Err(), результат всё равно попадёт в кэш
func resolve[T any](ctx context.Context, s *Service, f insightFlight[T]) (*T, error) {
	if v := cached(ctx, s, f); v != nil {
		return v, nil
	}

	ch := s.flights.DoChan(f.key(), func() (any, error) {
		fctx := context.WithoutCancel(ctx)

		// пока ждали, предыдущий полёт мог уже записать результат
		if v := cached(fctx, s, f); v != nil {
			return v, nil
		}
		return generate(fctx, s, f), nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*T), nil
	}
}

func cached[T any](ctx context.Context, s *Service, f insightFlight[T]) *T {
	v, err := f.lookup(ctx)
	if err != nil {
		s.Log.ErrorContext(ctx, "failed to read insight cache, treating as miss",
			"error", err,
			"kind", f.kind,
			"user_id", f.userID,
			"period", f.period,
		)
		return nil
	}
	if v != nil {
		s.Log.DebugContext(ctx, "insight cache hit", "kind", f.kind, "user_id", f.userID, "period", f.period, "locale", f.locale)
	}
	return v
}

func generate[T any](ctx context.Context, s *Service, f insightFlight[T]) *T {
	v, err := f.generate(ctx)
	if err == nil && v == nil {
		err = domain.WrapGenerationError(errors.New("generator returned no content"))
	}
	if err != nil {
		attrs := []any{
			"error", err,
			"kind", f.kind,
			"user_id", f.userID,
			"period", f.period,
			"locale", f.locale,
		}
		if domain.IsRateLimited(err) {
			s.Log.WarnContext(ctx, "generation quota exceeded, using fallback", attrs...)
		} else {
			s.Log.WarnContext(ctx, "generation failed, using fallback", attrs...)
		}
		v = f.fallback()
	}

	if err := f.store(ctx, v); err != nil {
		s.Log.ErrorContext(ctx, "failed to write insight cache",
			"error", err,
			"kind", f.kind,
			"user_id", f.userID,
			"period", f.period,
		)
	}

	isFallback, generatedAt := f.meta(v)
	s.publish(ctx, f.key(), domain.NewInsightEvent(f.kind, f.userID, f.period, f.locale, isFallback, generatedAt))
	return v
}

func (s *Service) publish(ctx context.Context, key string, event domain.InsightEvent) {
	if s.Events == nil {
		return
	}
	if err := s.Events.PublishInsightGenerated(ctx, key, event); err != nil {
		s.Log.WarnContext(ctx, "failed to publish insight event",
			"error", err,
			"key", key,
			"event_id", event.ID,
		)
	}
}

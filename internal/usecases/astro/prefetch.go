package astro

import (
	"context"
	"fmt"
)

// PrefetchCurrent прогревает кэш для локального профиля: сегодня, текущий месяц и год в его локали.
// Без профиля ничего не делает
func (s *Service) PrefetchCurrent(ctx context.Context) error {
	profile, err := s.Cache.GetProfile(ctx)
	if err != nil {
		return fmt.Errorf("failed to read local profile: %w", err)
	}
	if profile == nil {
		s.Log.DebugContext(ctx, "no local profile, nothing to prefetch")
		return nil
	}

	today := s.Today(ctx, profile)
	if _, err := s.GetDailyInsight(ctx, profile, today, profile.Locale); err != nil {
		return fmt.Errorf("failed to prefetch daily insight: %w", err)
	}
	if _, err := s.GetMonthlyInsight(ctx, profile, today.Year, today.Month, profile.Locale); err != nil {
		return fmt.Errorf("failed to prefetch monthly insight: %w", err)
	}
	if _, err := s.GetYearlyInsight(ctx, profile, today.Year, profile.Locale); err != nil {
		return fmt.Errorf("failed to prefetch yearly insight: %w", err)
	}

	s.Log.InfoContext(ctx, "insights prefetched", "user_id", profile.ID, "date", today.String())
	return nil
}

package astro

import (
	"context"
	"fmt"
	"time"

	"github.com/TolikMuradov/AstroCalendar/internal/domain"
	"github.com/TolikMuradov/AstroCalendar/internal/ports/service"
)

// GetDailyInsight дневной инсайт: кэш, генерация или fallback.
// Ошибка генерации наружу не выходит, ошибка возможна только при неверных аргументах или отмене ctx
func (s *Service) GetDailyInsight(ctx context.Context, profile *domain.UserProfile, date domain.CivilDate, locale domain.Locale) (*domain.DailyInsight, error) {
	if err := checkRequest(profile, locale); err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrInvalidArgument)
	}

	return resolve(ctx, s, insightFlight[domain.DailyInsight]{
		kind:   domain.InsightDaily,
		userID: profile.ID,
		period: domain.PeriodKey(domain.InsightDaily, 0, 0, date),
		locale: locale,
		lookup: func(ctx context.Context) (*domain.DailyInsight, error) {
			return s.Cache.GetDaily(ctx, profile.ID, date, locale)
		},
		generate: func(ctx context.Context) (*domain.DailyInsight, error) {
			return s.Generator.GenerateDaily(ctx, profile, date, locale)
		},
		fallback: func() *domain.DailyInsight {
			return s.Fallback.Daily(profile, date, locale)
		},
		store: func(ctx context.Context, v *domain.DailyInsight) error {
			return s.Cache.SetDaily(ctx, profile.ID, v)
		},
		meta: func(v *domain.DailyInsight) (bool, time.Time) {
			return v.IsFallback, v.GeneratedAt
		},
	})
}

// GetTodayInsight дневной инсайт на сегодняшнюю дату в часовом поясе профиля
func (s *Service) GetTodayInsight(ctx context.Context, profile *domain.UserProfile, locale domain.Locale) (*domain.DailyInsight, error) {
	return s.GetDailyInsight(ctx, profile, s.Today(ctx, profile), locale)
}

func (s *Service) GetYearlyInsight(ctx context.Context, profile *domain.UserProfile, year int, locale domain.Locale) (*domain.YearlyInsight, error) {
	if err := checkRequest(profile, locale); err != nil {
		return nil, err
	}
	if year < 1 || year > 9999 {
		return nil, fmt.Errorf("%w: year %d is out of range", domain.ErrInvalidArgument, year)
	}

	return resolve(ctx, s, insightFlight[domain.YearlyInsight]{
		kind:   domain.InsightYearly,
		userID: profile.ID,
		period: domain.PeriodKey(domain.InsightYearly, year, 0, domain.CivilDate{}),
		locale: locale,
		lookup: func(ctx context.Context) (*domain.YearlyInsight, error) {
			return s.Cache.GetYearly(ctx, profile.ID, year, locale)
		},
		generate: func(ctx context.Context) (*domain.YearlyInsight, error) {
			return s.Generator.GenerateYearly(ctx, profile, year, locale)
		},
		fallback: func() *domain.YearlyInsight {
			return s.Fallback.Yearly(profile, year, locale)
		},
		store: func(ctx context.Context, v *domain.YearlyInsight) error {
			return s.Cache.SetYearly(ctx, profile.ID, v)
		},
		meta: func(v *domain.YearlyInsight) (bool, time.Time) {
			return v.IsFallback, v.GeneratedAt
		},
	})
}

// GetMonthlyInsight месячный календарь; количество дней и выходные считаются здесь, а не генератором
func (s *Service) GetMonthlyInsight(ctx context.Context, profile *domain.UserProfile, year int, month time.Month, locale domain.Locale) (*domain.MonthlyInsight, error) {
	if err := checkRequest(profile, locale); err != nil {
		return nil, err
	}
	if err := domain.ValidMonth(year, month); err != nil {
		return nil, err
	}

	req := service.MonthlyRequest{
		Year:        year,
		Month:       month,
		DaysInMonth: domain.DaysIn(year, month),
		WeekendDays: domain.WeekendDays(year, month),
	}

	return resolve(ctx, s, insightFlight[domain.MonthlyInsight]{
		kind:   domain.InsightMonthly,
		userID: profile.ID,
		period: domain.PeriodKey(domain.InsightMonthly, year, month, domain.CivilDate{}),
		locale: locale,
		lookup: func(ctx context.Context) (*domain.MonthlyInsight, error) {
			return s.Cache.GetMonthly(ctx, profile.ID, year, month, locale)
		},
		generate: func(ctx context.Context) (*domain.MonthlyInsight, error) {
			m, err := s.Generator.GenerateMonthly(ctx, profile, req, locale)
			if err != nil || m == nil {
				return m, err
			}
			m.Normalize()
			return m, nil
		},
		fallback: func() *domain.MonthlyInsight {
			m := s.Fallback.Monthly(profile, year, month, locale)
			m.Normalize()
			return m
		},
		store: func(ctx context.Context, v *domain.MonthlyInsight) error {
			return s.Cache.SetMonthly(ctx, profile.ID, v)
		},
		meta: func(v *domain.MonthlyInsight) (bool, time.Time) {
			return v.IsFallback, v.GeneratedAt
		},
	})
}

// ComparePartner совместимость с партнёром; без fallback и без кэша.
// Ошибки различимы через errors.Is: domain.ErrRateLimited и domain.ErrGenerationFailed
func (s *Service) ComparePartner(ctx context.Context, profile *domain.UserProfile, partner domain.Partner, locale domain.Locale) (*domain.ComparisonResult, error) {
	if err := checkRequest(profile, locale); err != nil {
		return nil, err
	}
	if partner.BirthDate.IsZero() {
		return nil, fmt.Errorf("%w: partner birth date is required", domain.ErrInvalidArgument)
	}

	result, err := s.Generator.ComparePartner(ctx, profile, partner, locale)
	if err != nil {
		s.Log.WarnContext(ctx, "partner comparison failed",
			"error", err,
			"user_id", profile.ID,
			"rate_limited", domain.IsRateLimited(err),
		)
		return nil, domain.WrapGenerationError(err)
	}
	if result == nil {
		return nil, domain.WrapGenerationError(fmt.Errorf("comparison is empty"))
	}
	return result, nil
}

// Today сегодняшняя дата в часовом поясе профиля, неизвестный пояс - UTC
func (s *Service) Today(ctx context.Context, profile *domain.UserProfile) domain.CivilDate {
	now := s.now().UTC()
	if profile.Timezone != "" {
		if loc, err := time.LoadLocation(profile.Timezone); err == nil {
			now = now.In(loc)
		} else {
			s.Log.DebugContext(ctx, "unknown profile timezone", "timezone", profile.Timezone, "user_id", profile.ID)
		}
	}
	return domain.DateOf(now)
}

func checkRequest(profile *domain.UserProfile, locale domain.Locale) error {
	if profile == nil || profile.ID == "" {
		return fmt.Errorf("%w: profile is required", domain.ErrInvalidArgument)
	}
	if !locale.IsValid() {
		return fmt.Errorf("%w: unsupported locale %q", domain.ErrInvalidArgument, locale)
	}
	return nil
}

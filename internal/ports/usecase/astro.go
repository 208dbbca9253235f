package usecase

import (
	"context"
	"time"

	"github.com/TolikMuradov/AstroCalendar/internal/domain"
)

// IAstroUseCase интерфейс оркестратора инсайтов (use case слой)
type IAstroUseCase interface {
	CompleteOnboarding(ctx context.Context, in domain.OnboardingInput) (*domain.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, upd domain.ProfileUpdate) (*domain.UserProfile, error)
	// ResolveProfile возвращает (nil, nil), если профиля нет ни локально, ни удалённо
	ResolveProfile(ctx context.Context, userID string) (*domain.UserProfile, error)

	GetDailyInsight(ctx context.Context, profile *domain.UserProfile, date domain.CivilDate, locale domain.Locale) (*domain.DailyInsight, error)
	GetYearlyInsight(ctx context.Context, profile *domain.UserProfile, year int, locale domain.Locale) (*domain.YearlyInsight, error)
	GetMonthlyInsight(ctx context.Context, profile *domain.UserProfile, year int, month time.Month, locale domain.Locale) (*domain.MonthlyInsight, error)
	ComparePartner(ctx context.Context, profile *domain.UserProfile, partner domain.Partner, locale domain.Locale) (*domain.ComparisonResult, error)

	// Today сегодняшняя дата в часовом поясе профиля
	Today(ctx context.Context, profile *domain.UserProfile) domain.CivilDate
	Logout(ctx context.Context) error
}

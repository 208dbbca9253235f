package repository

import (
	"context"
	"time"

	"github.com/TolikMuradov/AstroCalendar/internal/domain"
)

// IInsightCache хранилище профиля и сгенерированного контента
// Промах кэша - (nil, nil)
type IInsightCache interface {
	// GetProfile последний активный профиль
	GetProfile(ctx context.Context) (*domain.UserProfile, error)
	GetProfileByID(ctx context.Context, userID string) (*domain.UserProfile, error)
	// SetProfile сохраняет профиль пользователя и делает его последним активным
	SetProfile(ctx context.Context, profile *domain.UserProfile) error

	GetDaily(ctx context.Context, userID string, date domain.CivilDate, locale domain.Locale) (*domain.DailyInsight, error)
	SetDaily(ctx context.Context, userID string, insight *domain.DailyInsight) error

	GetYearly(ctx context.Context, userID string, year int, locale domain.Locale) (*domain.YearlyInsight, error)
	SetYearly(ctx context.Context, userID string, insight *domain.YearlyInsight) error

	GetMonthly(ctx context.Context, userID string, year int, month time.Month, locale domain.Locale) (*domain.MonthlyInsight, error)
	SetMonthly(ctx context.Context, userID string, insight *domain.MonthlyInsight) error

	// ClearAll удаляет все ключи пространства имён кэша
	ClearAll(ctx context.Context) error
}

package service

import (
	"context"
	"time"

	"github.com/TolikMuradov/AstroCalendar/internal/domain"
)

// MonthlyRequest параметры месячного календаря, календарь считает вызывающая сторона
type MonthlyRequest struct {
	Year        int
	Month       time.Month
	DaysInMonth int
	WeekendDays []int
}

// IInsightGenerator удалённая генерация контента
// Ошибки - *domain.GenerationError
type IInsightGenerator interface {
	GenerateDaily(ctx context.Context, profile *domain.UserProfile, date domain.CivilDate, locale domain.Locale) (*domain.DailyInsight, error)
	GenerateYearly(ctx context.Context, profile *domain.UserProfile, year int, locale domain.Locale) (*domain.YearlyInsight, error)
	GenerateMonthly(ctx context.Context, profile *domain.UserProfile, req MonthlyRequest, locale domain.Locale) (*domain.MonthlyInsight, error)
	ComparePartner(ctx context.Context, profile *domain.UserProfile, partner domain.Partner, locale domain.Locale) (*domain.ComparisonResult, error)
}

// IFallbackGenerator детерминированный локальный контент, никогда не ошибается
type IFallbackGenerator interface {
	Daily(profile *domain.UserProfile, date domain.CivilDate, locale domain.Locale) *domain.DailyInsight
	Yearly(profile *domain.UserProfile, year int, locale domain.Locale) *domain.YearlyInsight
	Monthly(profile *domain.UserProfile, year int, month time.Month, locale domain.Locale) *domain.MonthlyInsight
}

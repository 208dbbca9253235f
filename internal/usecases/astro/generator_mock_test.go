package astro

import (
	"context"
	"sync"

	"github.com/TolikMuradov/AstroCalendar/internal/domain"
	"github.com/TolikMuradov/AstroCalendar/internal/ports/service"
)

var _ service.IInsightGenerator = &insightGeneratorMock{}

type insightGeneratorMock struct {
	GenerateDailyFunc   func(ctx context.Context, profile *domain.UserProfile, date domain.CivilDate, locale domain.Locale) (*domain.DailyInsight, error)
	GenerateYearlyFunc  func(ctx context.Context, profile *domain.UserProfile, year int, locale domain.Locale) (*domain.YearlyInsight, error)
	GenerateMonthlyFunc func(ctx context.Context, profile *domain.UserProfile, req service.MonthlyRequest, locale domain.Locale) (*domain.MonthlyInsight, error)
	ComparePartnerFunc  func(ctx context.Context, profile *domain.UserProfile, partner domain.Partner, locale domain.Locale) (*domain.ComparisonResult, error)

	calls struct {
		GenerateDaily []struct {
			Date   domain.CivilDate
			Locale domain.Locale
		}
		GenerateYearly []struct {
			Year   int
			Locale domain.Locale
		}
		GenerateMonthly []struct {
			Req    service.MonthlyRequest
			Locale domain.Locale
		}
		ComparePartner []struct {
			Partner domain.Partner
			Locale  domain.Locale
		}
	}
	lockGenerateDaily   sync.RWMutex
	lockGenerateYearly  sync.RWMutex
	lockGenerateMonthly sync.RWMutex
	lockComparePartner  sync.RWMutex
}

func (mock *insightGeneratorMock) GenerateDaily(ctx context.Context, profile *domain.UserProfile, date domain.CivilDate, locale domain.Locale) (*domain.DailyInsight, error) {
	if mock.GenerateDailyFunc == nil {
		panic("insightGeneratorMock.GenerateDailyFunc: method is nil but IInsightGenerator.GenerateDaily was just called")
	}
	mock.lockGenerateDaily.Lock()
	mock.calls.GenerateDaily = append(mock.calls.GenerateDaily, struct {
		Date   domain.CivilDate
		Locale domain.Locale
	}{Date: date, Locale: locale})
	mock.lockGenerateDaily.Unlock()
	return mock.GenerateDailyFunc(ctx, profile, date, locale)
}

func (mock *insightGeneratorMock) GenerateDailyCalls() []struct {
	Date   domain.CivilDate
	Locale domain.Locale
} {
	mock.lockGenerateDaily.RLock()
	defer mock.lockGenerateDaily.RUnlock()
	return mock.calls.GenerateDaily
}

func (mock *insightGeneratorMock) GenerateYearly(ctx context.Context, profile *domain.UserProfile, year int, locale domain.Locale) (*domain.YearlyInsight, error) {
	if mock.GenerateYearlyFunc == nil {
		panic("insightGeneratorMock.GenerateYearlyFunc: method is nil but IInsightGenerator.GenerateYearly was just called")
	}
	mock.lockGenerateYearly.Lock()
	mock.calls.GenerateYearly = append(mock.calls.GenerateYearly, struct {
		Year   int
		Locale domain.Locale
	}{Year: year, Locale: locale})
	mock.lockGenerateYearly.Unlock()
	return mock.GenerateYearlyFunc(ctx, profile, year, locale)
}

func (mock *insightGeneratorMock) GenerateYearlyCalls() []struct {
	Year   int
	Locale domain.Locale
} {
	mock.lockGenerateYearly.RLock()
	defer mock.lockGenerateYearly.RUnlock()
	return mock.calls.GenerateYearly
}

func (mock *insightGeneratorMock) GenerateMonthly(ctx context.Context, profile *domain.UserProfile, req service.MonthlyRequest, locale domain.Locale) (*domain.MonthlyInsight, error) {
	if mock.GenerateMonthlyFunc == nil {
		panic("insightGeneratorMock.GenerateMonthlyFunc: method is nil but IInsightGenerator.GenerateMonthly was just called")
	}
	mock.lockGenerateMonthly.Lock()
	mock.calls.GenerateMonthly = append(mock.calls.GenerateMonthly, struct {
		Req    service.MonthlyRequest
		Locale domain.Locale
	}{Req: req, Locale: locale})
	mock.lockGenerateMonthly.Unlock()
	return mock.GenerateMonthlyFunc(ctx, profile, req, locale)
}

func (mock *insightGeneratorMock) GenerateMonthlyCalls() []struct {
	Req    service.MonthlyRequest
	Locale domain.Locale
} {
	mock.lockGenerateMonthly.RLock()
	defer mock.lockGenerateMonthly.RUnlock()
	return mock.calls.GenerateMonthly
}

func (mock *insightGeneratorMock) ComparePartner(ctx context.Context, profile *domain.UserProfile, partner domain.Partner, locale domain.Locale) (*domain.ComparisonResult, error) {
	if mock.ComparePartnerFunc == nil {
		panic("insightGeneratorMock.ComparePartnerFunc: method is nil but IInsightGenerator.ComparePartner was just called")
	}
	mock.lockComparePartner.Lock()
	mock.calls.ComparePartner = append(mock.calls.ComparePartner, struct {
		Partner domain.Partner
		Locale  domain.Locale
	}{Partner: partner, Locale: locale})
	mock.lockComparePartner.Unlock()
	return mock.ComparePartnerFunc(ctx, profile, partner, locale)
}

func (mock *insightGeneratorMock) ComparePartnerCalls() []struct {
	Partner domain.Partner
	Locale  domain.Locale
} {
	mock.lockComparePartner.RLock()
	defer mock.lockComparePartner.RUnlock()
	return mock.calls.ComparePartner
}

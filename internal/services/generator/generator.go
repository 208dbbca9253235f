package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/TolikMuradov/AstroCalendar/internal/domain"
	"github.com/TolikMuradov/AstroCalendar/internal/ports/service"
)

const (
	defaultMaxTokens = 2048
	monthlyMaxTokens = 8000
	temperature      = 0.8

	defaultMonthTheme = "A month of growth and discovery"
)

var codeFence = regexp.MustCompile("(?i)```(?:json)?")

// Service генерация контента через языковую модель; весь ответ модели проверяется как недоверенный ввод
type Service struct {
	llm service.ILLMClient
	Log *slog.Logger
	now func() time.Time
}

func New(llm service.ILLMClient, log *slog.Logger) *Service {
	return &Service{
		llm: llm,
		Log: log,
		now: time.Now,
	}
}

var _ service.IInsightGenerator = (*Service)(nil)

func (s *Service) GenerateDaily(ctx context.Context, profile *domain.UserProfile, date domain.CivilDate, locale domain.Locale) (*domain.DailyInsight, error) {
	var dto dailyDTO
	if err := s.complete(ctx, formatDailyPrompt(profile, date, locale), defaultMaxTokens, &dto); err != nil {
		return nil, fmt.Errorf("generate daily insight: %w", err)
	}
	if dto.Score == nil {
		return nil, domain.NewValidationDefect("daily insight: score is missing")
	}
	if dto.Ritual == nil {
		return nil, domain.NewValidationDefect("daily insight: ritual is missing")
	}

	insight := &domain.DailyInsight{
		Date:         date,
		Locale:       locale,
		EnergyScore:  *dto.Score,
		Title:        strings.TrimSpace(dto.Title),
		Description:  strings.TrimSpace(dto.Desc),
		Color:        strings.TrimSpace(dto.Color),
		LuckyNumbers: dto.LuckyNumbers,
		Ritual:       domain.Ritual{Title: strings.TrimSpace(dto.Ritual.Title), Steps: nonBlank(dto.Ritual.Steps)},
		GeneratedAt:  s.now().UTC(),
	}
	if err := domain.ValidateDaily(insight); err != nil {
		return nil, fmt.Errorf("daily insight: %w", err)
	}
	return insight, nil
}

func (s *Service) GenerateYearly(ctx context.Context, profile *domain.UserProfile, year int, locale domain.Locale) (*domain.YearlyInsight, error) {
	var dto yearlyDTO
	if err := s.complete(ctx, formatYearlyPrompt(profile, year, locale), defaultMaxTokens, &dto); err != nil {
		return nil, fmt.Errorf("generate yearly insight: %w", err)
	}

	insight := &domain.YearlyInsight{
		Year:            year,
		Locale:          locale,
		Theme:           strings.TrimSpace(dto.Theme),
		Strengths:       nonBlank(dto.Strengths),
		Challenges:      nonBlank(dto.Challenges),
		Recommendations: nonBlank(dto.Recommendations),
		GeneratedAt:     s.now().UTC(),
	}
	if err := domain.ValidateYearly(insight); err != nil {
		return nil, fmt.Errorf("yearly insight: %w", err)
	}
	return insight, nil
}

// GenerateMonthly календарь месяца; дни и выходные всегда нормализуются локально
func (s *Service) GenerateMonthly(ctx context.Context, profile *domain.UserProfile, req service.MonthlyRequest, locale domain.Locale) (*domain.MonthlyInsight, error) {
	if err := domain.ValidMonth(req.Year, req.Month); err != nil {
		return nil, err
	}
	prompt := formatMonthlyPrompt(profile, req.Year, req.Month, req.DaysInMonth, req.WeekendDays, locale)

	var dto monthlyDTO
	if err := s.complete(ctx, prompt, monthlyMaxTokens, &dto); err != nil {
		return nil, fmt.Errorf("generate monthly insight: %w", err)
	}
	if len(dto.Days) == 0 {
		return nil, domain.NewValidationDefect("monthly insight: days are missing")
	}

	days := make([]domain.MonthlyDayInsight, 0, len(dto.Days))
	for i, d := range dto.Days {
		day := i + 1
		if d.Day != nil {
			day = *d.Day
		}
		days = append(days, domain.MonthlyDayInsight{
			Day:         day,
			DayType:     domain.DayType(strings.ToLower(strings.TrimSpace(d.DayType))),
			Message:     d.Message,
			Stone:       strings.TrimSpace(d.Stone),
			StoneEnergy: d.StoneEnergy,
			Activity:    d.Activity,
			Drink:       strings.TrimSpace(d.Drink),
			WearColor:   strings.TrimSpace(d.WearColor),
			Affirmation: d.Affirmation,
			WeekendTip:  d.WeekendTip,
		})
	}

	theme := strings.TrimSpace(dto.MonthTheme)
	if theme == "" {
		theme = defaultMonthTheme
	}
	if len(days) != req.DaysInMonth {
		s.Log.WarnContext(ctx, "monthly insight day count mismatch",
			"expected", req.DaysInMonth,
			"got", len(days),
			"year", req.Year,
			"month", int(req.Month))
	}

	return &domain.MonthlyInsight{
		Year:        req.Year,
		Month:       req.Month,
		Locale:      locale,
		MonthTheme:  theme,
		Days:        domain.NormalizeMonthDays(req.Year, req.Month, days),
		GeneratedAt: s.now().UTC(),
	}, nil
}

func (s *Service) ComparePartner(ctx context.Context, profile *domain.UserProfile, partner domain.Partner, locale domain.Locale) (*domain.ComparisonResult, error) {
	partnerProfile := domain.ComputeProfile(partner.BirthDate)

	var dto comparisonDTO
	if err := s.complete(ctx, formatComparePrompt(profile, partner, partnerProfile, locale), defaultMaxTokens, &dto); err != nil {
		return nil, fmt.Errorf("compare partner: %w", err)
	}
	if dto.HarmonyScore == nil {
		return nil, domain.NewValidationDefect("comparison: harmonyScore is missing")
	}

	result := &domain.ComparisonResult{
		HarmonyScore: *dto.HarmonyScore,
		Summary:      strings.TrimSpace(dto.Summary),
		Strengths:    nonBlank(dto.Strengths),
		Challenges:   nonBlank(dto.Challenges),
	}
	if err := domain.ValidateComparison(result); err != nil {
		return nil, fmt.Errorf("comparison: %w", err)
	}
	return result, nil
}

// complete запрашивает модель и разбирает ответ в dest
// Не-JSON - общая неудача, JSON с неверными типами - ValidationDefect
func (s *Service) complete(ctx context.Context, prompt string, maxTokens int, dest any) error {
	raw, err := s.llm.Complete(ctx, service.CompletionRequest{
		System:      systemPrompt,
		User:        prompt,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return domain.WrapGenerationError(err)
	}

	clean := StripCodeFences(raw)
	if clean == "" || !json.Valid([]byte(clean)) {
		s.Log.DebugContext(ctx, "llm returned non-json content", "preview", preview(clean, 200))
		return domain.WrapGenerationError(errors.New("response is not valid JSON"))
	}
	if err := json.Unmarshal([]byte(clean), dest); err != nil {
		return domain.NewValidationDefect("unexpected response shape: %v", err)
	}
	return nil
}

// StripCodeFences убирает markdown-ограждения ``` и ```json
func StripCodeFences(s string) string {
	return strings.TrimSpace(codeFence.ReplaceAllString(s, ""))
}

func nonBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

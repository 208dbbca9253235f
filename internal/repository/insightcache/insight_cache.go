package insightCacheRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/TolikMuradov/AstroCalendar/internal/domain"
	"github.com/TolikMuradov/AstroCalendar/internal/ports/cache"
	ports "github.com/TolikMuradov/AstroCalendar/internal/ports/repository"
)

const (
	// KeyPrefix пространство имён всех ключей, версия меняется при несовместимой смене формата
	KeyPrefix  = "astro_v1_"
	ProfileKey = KeyPrefix + "profile"
)

// UserProfileKey профиль конкретного пользователя, ProfileKey - последний активный
func UserProfileKey(userID string) string {
	return ProfileKey + "_" + userID
}

type Repository struct {
	kv  cache.Cache
	ttl time.Duration
	Log *slog.Logger
}

// New ttl == 0 - записи живут до ClearAll
func New(kv cache.Cache, ttl time.Duration, log *slog.Logger) ports.IInsightCache {
	return &Repository{
		kv:  kv,
		ttl: ttl,
		Log: log,
	}
}

// Key ключ контента: astro_v1_{kind}_{userId}_{period}_{locale}
func Key(kind domain.InsightKind, userID, period string, locale domain.Locale) string {
	return KeyPrefix + domain.InsightKey(kind, userID, period, locale)
}

func DailyKey(userID string, date domain.CivilDate, locale domain.Locale) string {
	return Key(domain.InsightDaily, userID, domain.PeriodKey(domain.InsightDaily, 0, 0, date), locale)
}

func YearlyKey(userID string, year int, locale domain.Locale) string {
	return Key(domain.InsightYearly, userID, domain.PeriodKey(domain.InsightYearly, year, 0, domain.CivilDate{}), locale)
}

func MonthlyKey(userID string, year int, month time.Month, locale domain.Locale) string {
	return Key(domain.InsightMonthly, userID, domain.PeriodKey(domain.InsightMonthly, year, month, domain.CivilDate{}), locale)
}

// load читает JSON по ключу; промах - (false, nil)
func (r *Repository) load(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := r.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		r.Log.WarnContext(ctx, "corrupted cache entry, dropping", "key", key, "error", err)
		if err := r.kv.Delete(ctx, key); err != nil {
			r.Log.ErrorContext(ctx, "failed to drop corrupted cache entry", "key", key, "error", err)
		}
		return false, nil
	}
	return true, nil
}

func (r *Repository) store(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := r.kv.Set(ctx, key, string(raw), r.ttl); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	r.Log.Debug("cache entry written", "key", key)
	return nil
}

// GetProfile последний активный профиль
func (r *Repository) GetProfile(ctx context.Context) (*domain.UserProfile, error) {
	return r.loadProfile(ctx, ProfileKey)
}

func (r *Repository) GetProfileByID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	return r.loadProfile(ctx, UserProfileKey(userID))
}

// SetProfile пишет профиль пользователя и делает его последним активным
func (r *Repository) SetProfile(ctx context.Context, profile *domain.UserProfile) error {
	if profile == nil || profile.ID == "" {
		return fmt.Errorf("%w: profile is nil or has no id", domain.ErrInvalidArgument)
	}
	if err := r.store(ctx, UserProfileKey(profile.ID), profile); err != nil {
		return err
	}
	return r.store(ctx, ProfileKey, profile)
}

func (r *Repository) loadProfile(ctx context.Context, key string) (*domain.UserProfile, error) {
	var p domain.UserProfile
	ok, err := r.load(ctx, key, &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) GetDaily(ctx context.Context, userID string, date domain.CivilDate, locale domain.Locale) (*domain.DailyInsight, error) {
	var d domain.DailyInsight
	ok, err := r.load(ctx, DailyKey(userID, date, locale), &d)
	if err != nil || !ok {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) SetDaily(ctx context.Context, userID string, insight *domain.DailyInsight) error {
	if insight == nil {
		return fmt.Errorf("%w: daily insight is nil", domain.ErrInvalidArgument)
	}
	return r.store(ctx, DailyKey(userID, insight.Date, insight.Locale), insight)
}

func (r *Repository) GetYearly(ctx context.Context, userID string, year int, locale domain.Locale) (*domain.YearlyInsight, error) {
	var y domain.YearlyInsight
	ok, err := r.load(ctx, YearlyKey(userID, year, locale), &y)
	if err != nil || !ok {
		return nil, err
	}
	return &y, nil
}

func (r *Repository) SetYearly(ctx context.Context, userID string, insight *domain.YearlyInsight) error {
	if insight == nil {
		return fmt.Errorf("%w: yearly insight is nil", domain.ErrInvalidArgument)
	}
	return r.store(ctx, YearlyKey(userID, insight.Year, insight.Locale), insight)
}

func (r *Repository) GetMonthly(ctx context.Context, userID string, year int, month time.Month, locale domain.Locale) (*domain.MonthlyInsight, error) {
	var m domain.MonthlyInsight
	ok, err := r.load(ctx, MonthlyKey(userID, year, month, locale), &m)
	if err != nil || !ok {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) SetMonthly(ctx context.Context, userID string, insight *domain.MonthlyInsight) error {
	if insight == nil {
		return fmt.Errorf("%w: monthly insight is nil", domain.ErrInvalidArgument)
	}
	return r.store(ctx, MonthlyKey(userID, insight.Year, insight.Month, insight.Locale), insight)
}

// ClearAll удаляет профиль и весь контент всех пользователей
func (r *Repository) ClearAll(ctx context.Context) error {
	n, err := r.kv.DeleteByPrefix(ctx, KeyPrefix)
	if err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	r.Log.Info("cache cleared", "deleted", n)
	return nil
}

package insightCacheRepo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/TolikMuradov/AstroCalendar/internal/adapters/secondary/storage/inmemory"
	"github.com/TolikMuradov/AstroCalendar/internal/domain"
	"github.com/TolikMuradov/AstroCalendar/internal/ports/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*Repository, *inmemory.KV) {
	t.Helper()
	kv := inmemory.NewKV()
	repo := New(kv, 0, slog.New(slog.NewTextHandler(io.Discard, nil))).(*Repository)
	return repo, kv
}

func date(t *testing.T, s string) domain.CivilDate {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "astro_v1_daily_u1_2024-04-10_en", DailyKey("u1", date(t, "2024-04-10"), domain.LocaleEN))
	assert.Equal(t, "astro_v1_yearly_u1_2024_tr", YearlyKey("u1", 2024, domain.LocaleTR))
	assert.Equal(t, "astro_v1_monthly_u1_2024_4_th", MonthlyKey("u1", 2024, time.April, domain.LocaleTH))
}

func TestRepository_DailyRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	got, err := repo.GetDaily(ctx, "u1", date(t, "2024-04-10"), domain.LocaleEN)
	require.NoError(t, err)
	assert.Nil(t, got)

	insight := &domain.DailyInsight{
		Date:         date(t, "2024-04-10"),
		Locale:       domain.LocaleEN,
		EnergyScore:  80,
		Title:        "Bright",
		Description:  "desc",
		Color:        "Emerald Green",
		LuckyNumbers: []int{3, 14, 42},
		Ritual:       domain.Ritual{Title: "Breathe", Steps: []string{"in", "out"}},
		GeneratedAt:  time.Date(2024, 4, 10, 8, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.SetDaily(ctx, "u1", insight))
	// повторная запись того же значения не меняет результат
	require.NoError(t, repo.SetDaily(ctx, "u1", insight))

	got, err = repo.GetDaily(ctx, "u1", date(t, "2024-04-10"), domain.LocaleEN)
	require.NoError(t, err)
	assert.Equal(t, insight, got)
}

func TestRepository_KeyIsolation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.SetYearly(ctx, "u1", &domain.YearlyInsight{Year: 2024, Locale: domain.LocaleEN, Theme: "en"}))

	for _, tc := range []struct {
		user   string
		year   int
		locale domain.Locale
	}{
		{"u2", 2024, domain.LocaleEN},
		{"u1", 2025, domain.LocaleEN},
		{"u1", 2024, domain.LocaleTR},
	} {
		got, err := repo.GetYearly(ctx, tc.user, tc.year, tc.locale)
		require.NoError(t, err)
		assert.Nil(t, got, "%+v", tc)
	}

	got, err := repo.GetYearly(ctx, "u1", 2024, domain.LocaleEN)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "en", got.Theme)
}

func TestRepository_MonthlyAndProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	m := &domain.MonthlyInsight{Year: 2024, Month: time.February, Locale: domain.LocaleEN, MonthTheme: "Love"}
	m.Normalize()
	require.NoError(t, repo.SetMonthly(ctx, "u1", m))

	got, err := repo.GetMonthly(ctx, "u1", 2024, time.February, domain.LocaleEN)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Days, 29)
	assert.Equal(t, m, got)

	p, err := domain.NewUserProfile("u1", "Ayla", date(t, "1990-06-15"), domain.LocaleEN, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, repo.SetProfile(ctx, p))

	gotProfile, err := repo.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, p, gotProfile)
}

func TestRepository_ClearAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo, kv := newTestRepo(t)

	require.NoError(t, kv.Set(ctx, "foreign_key", "keep", 0))
	require.NoError(t, repo.SetYearly(ctx, "u1", &domain.YearlyInsight{Year: 2024, Locale: domain.LocaleEN}))
	require.NoError(t, repo.SetDaily(ctx, "u1", &domain.DailyInsight{Date: date(t, "2024-04-10"), Locale: domain.LocaleEN}))

	require.NoError(t, repo.ClearAll(ctx))

	got, err := repo.GetYearly(ctx, "u1", 2024, domain.LocaleEN)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 1, kv.Len())
}

func TestRepository_CorruptedEntryIsMiss(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo, kv := newTestRepo(t)

	require.NoError(t, kv.Set(ctx, YearlyKey("u1", 2024, domain.LocaleEN), "{not json", 0))

	got, err := repo.GetYearly(ctx, "u1", 2024, domain.LocaleEN)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Zero(t, kv.Len())
}

func TestRepository_ProfilesPerUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo, kv := newTestRepo(t)
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	ayla, err := domain.NewUserProfile("ayla", "Ayla", date(t, "1990-06-15"), domain.LocaleEN, created)
	require.NoError(t, err)
	deniz, err := domain.NewUserProfile("deniz", "Deniz", date(t, "1988-11-02"), domain.LocaleTR, created)
	require.NoError(t, err)

	require.NoError(t, repo.SetProfile(ctx, ayla))
	require.NoError(t, repo.SetProfile(ctx, deniz))

	got, err := repo.GetProfileByID(ctx, "ayla")
	require.NoError(t, err)
	assert.Equal(t, ayla, got)

	current, err := repo.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "deniz", current.ID)

	missing, err := repo.GetProfileByID(ctx, "emre")
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.Equal(t, "astro_v1_profile_ayla", UserProfileKey("ayla"))
	assert.Equal(t, 3, kv.Len())

	require.NoError(t, repo.ClearAll(ctx))
	assert.Zero(t, kv.Len())

	assert.ErrorIs(t, repo.SetProfile(ctx, &domain.UserProfile{}), domain.ErrInvalidArgument)
}

type brokenKV struct{ cache.Cache }

func (brokenKV) Get(context.Context, string) (string, error) { return "", errors.New("connection refused") }

func TestRepository_ReadErrorPropagates(t *testing.T) {
	t.Parallel()
	repo := New(brokenKV{}, 0, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := repo.GetProfile(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

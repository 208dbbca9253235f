package astro

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TolikMuradov/AstroCalendar/internal/adapters/secondary/storage/inmemory"
	"github.com/TolikMuradov/AstroCalendar/internal/domain"
	"github.com/TolikMuradov/AstroCalendar/internal/ports/service"
	insightCacheRepo "github.com/TolikMuradov/AstroCalendar/internal/repository/insightcache"
	"github.com/TolikMuradov/AstroCalendar/internal/services/fallback"
)

func newProfileEnv(t *testing.T, profiles *profileRepoMock) (*Service, *inmemory.KV) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	kv := inmemory.NewKV()
	svc := New(insightCacheRepo.New(kv, 0, log), &insightGeneratorMock{}, fallback.New(), nil, nil, log)
	if profiles != nil {
		svc.Profiles = profiles
	}
	svc.now = func() time.Time { return fixedNow }
	return svc, kv
}

func TestCompleteOnboarding(t *testing.T) {
	t.Parallel()

	profiles := &profileRepoMock{
		SaveFunc: func(ctx context.Context, profile *domain.UserProfile) error { return nil },
	}
	svc, _ := newProfileEnv(t, profiles)
	ctx := context.Background()

	p, err := svc.CompleteOnboarding(ctx, domain.OnboardingInput{
		UserID:    "u1",
		Name:      " Ayla ",
		BirthDate: date(t, "1990-06-15"),
		Locale:    domain.LocaleTR,
	})
	require.NoError(t, err)

	assert.Equal(t, "Ayla", p.Name)
	assert.Equal(t, domain.Gemini, p.ComputedProfile.WesternZodiac.Sign)
	assert.Equal(t, []string{"Balance", "Growth"}, p.FocusAreas)
	require.Len(t, profiles.SaveCalls(), 1)

	local, err := svc.Cache.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, p.ID, local.ID)
}

func TestCompleteOnboarding_RemoteFailureDoesNotBlock(t *testing.T) {
	t.Parallel()

	profiles := &profileRepoMock{
		SaveFunc: func(ctx context.Context, profile *domain.UserProfile) error { return errors.New("network down") },
	}
	svc, _ := newProfileEnv(t, profiles)

	p, err := svc.CompleteOnboarding(context.Background(), domain.OnboardingInput{
		UserID:     "u1",
		Name:       "Ayla",
		BirthDate:  date(t, "1990-06-15"),
		Locale:     domain.LocaleEN,
		FocusAreas: []string{"Love"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Love"}, p.FocusAreas)
}

func TestCompleteOnboarding_Invalid(t *testing.T) {
	t.Parallel()

	svc, kv := newProfileEnv(t, nil)
	_, err := svc.CompleteOnboarding(context.Background(), domain.OnboardingInput{UserID: "u1", Locale: domain.LocaleEN, BirthDate: date(t, "1990-06-15")})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Zero(t, kv.Len())
}

func TestUpdateProfile_RecomputesOnBirthDateChange(t *testing.T) {
	t.Parallel()

	svc, _ := newProfileEnv(t, nil)
	ctx := context.Background()

	_, err := svc.CompleteOnboarding(ctx, domain.OnboardingInput{UserID: "u1", Name: "Ayla", BirthDate: date(t, "1990-06-15"), Locale: domain.LocaleEN})
	require.NoError(t, err)

	newDate := date(t, "1985-01-05")
	p, err := svc.UpdateProfile(ctx, "u1", domain.ProfileUpdate{BirthDate: &newDate})
	require.NoError(t, err)

	assert.Equal(t, domain.Capricorn, p.ComputedProfile.WesternZodiac.Sign)
	assert.Equal(t, domain.ComputeProfile(newDate), p.ComputedProfile)

	local, err := svc.Cache.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, p.ComputedProfile, local.ComputedProfile)

	bad := domain.Locale("xx")
	_, err = svc.UpdateProfile(ctx, "u1", domain.ProfileUpdate{Locale: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.UpdateProfile(ctx, "u2", domain.ProfileUpdate{})
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestResolveProfile(t *testing.T) {
	t.Parallel()

	remote, err := domain.NewUserProfile("u2", "Deniz", date(t, "1992-03-02"), domain.LocaleTR, fixedNow)
	require.NoError(t, err)

	profiles := &profileRepoMock{
		SaveFunc: func(ctx context.Context, profile *domain.UserProfile) error { return nil },
		GetByIDFunc: func(ctx context.Context, id string) (*domain.UserProfile, error) {
			if id == remote.ID {
				return remote, nil
			}
			return nil, nil
		},
	}
	svc, _ := newProfileEnv(t, profiles)
	ctx := context.Background()

	_, err = svc.CompleteOnboarding(ctx, domain.OnboardingInput{UserID: "u1", Name: "Ayla", BirthDate: date(t, "1990-06-15"), Locale: domain.LocaleEN})
	require.NoError(t, err)

	// локальный профиль того же пользователя, без удалённого запроса
	got, err := svc.ResolveProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
	assert.Empty(t, profiles.GetByIDCalls())

	// локальный профиль другого пользователя
	got, err = svc.ResolveProfile(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, "Deniz", got.Name)
	require.Len(t, profiles.GetByIDCalls(), 1)

	local, err := svc.Cache.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u2", local.ID)

	// прогретая копия, повторного удалённого запроса нет
	_, err = svc.ResolveProfile(ctx, "u2")
	require.NoError(t, err)
	_, err = svc.ResolveProfile(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, profiles.GetByIDCalls(), 1)

	got, err = svc.ResolveProfile(ctx, "u3")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestResolveProfile_RemoteError(t *testing.T) {
	t.Parallel()

	profiles := &profileRepoMock{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.UserProfile, error) {
			return nil, errors.New("timeout")
		},
	}
	svc, _ := newProfileEnv(t, profiles)

	_, err := svc.ResolveProfile(context.Background(), "u1")
	assert.Error(t, err)

	_, err = svc.ResolveProfile(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestResolveProfile_SeveralUsersWithoutRemote(t *testing.T) {
	t.Parallel()

	svc, _ := newProfileEnv(t, nil)
	ctx := context.Background()

	_, err := svc.CompleteOnboarding(ctx, domain.OnboardingInput{UserID: "alice", Name: "Alice", BirthDate: date(t, "1990-06-15"), Locale: domain.LocaleEN})
	require.NoError(t, err)
	_, err = svc.CompleteOnboarding(ctx, domain.OnboardingInput{UserID: "bob", Name: "Bob", BirthDate: date(t, "1985-01-20"), Locale: domain.LocaleTR})
	require.NoError(t, err)

	alice, err := svc.ResolveProfile(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, alice)
	assert.Equal(t, "Alice", alice.Name)

	bob, err := svc.ResolveProfile(ctx, "bob")
	require.NoError(t, err)
	require.NotNil(t, bob)
	assert.Equal(t, domain.LocaleTR, bob.Locale)

	// последний онбординг остаётся текущим профилем для прогрева
	current, err := svc.Cache.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bob", current.ID)
}

func TestResolveProfile_NoRemote(t *testing.T) {
	t.Parallel()

	svc, _ := newProfileEnv(t, nil)
	got, err := svc.ResolveProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLogout_ClearsEverything(t *testing.T) {
	t.Parallel()

	svc, kv := newProfileEnv(t, nil)
	ctx := context.Background()
	p, err := svc.CompleteOnboarding(ctx, domain.OnboardingInput{UserID: "u1", Name: "Ayla", BirthDate: date(t, "1990-06-15"), Locale: domain.LocaleEN})
	require.NoError(t, err)
	require.NoError(t, svc.Cache.SetDaily(ctx, p.ID, remoteDaily(date(t, "2024-04-10"), domain.LocaleEN)))
	require.NotZero(t, kv.Len())

	require.NoError(t, svc.Logout(ctx))
	assert.Zero(t, kv.Len())

	local, err := svc.Cache.GetProfile(ctx)
	require.NoError(t, err)
	assert.Nil(t, local)
}

func TestPrefetchCurrent(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	kv := inmemory.NewKV()
	gen := &insightGeneratorMock{
		GenerateDailyFunc: func(ctx context.Context, profile *domain.UserProfile, d domain.CivilDate, locale domain.Locale) (*domain.DailyInsight, error) {
			return remoteDaily(d, locale), nil
		},
		GenerateYearlyFunc: func(ctx context.Context, profile *domain.UserProfile, year int, locale domain.Locale) (*domain.YearlyInsight, error) {
			return nil, errors.New("down")
		},
		GenerateMonthlyFunc: func(ctx context.Context, profile *domain.UserProfile, req service.MonthlyRequest, locale domain.Locale) (*domain.MonthlyInsight, error) {
			return nil, errors.New("down")
		},
	}
	svc := New(insightCacheRepo.New(kv, 0, log), gen, fallback.New(), nil, nil, log)
	svc.now = func() time.Time { return fixedNow }
	ctx := context.Background()

	// без профиля - ничего
	require.NoError(t, svc.PrefetchCurrent(ctx))
	assert.Empty(t, gen.GenerateDailyCalls())

	_, err := svc.CompleteOnboarding(ctx, domain.OnboardingInput{UserID: "u1", Name: "Ayla", BirthDate: date(t, "1990-06-15"), Locale: domain.LocaleTH})
	require.NoError(t, err)

	require.NoError(t, svc.PrefetchCurrent(ctx))
	require.Len(t, gen.GenerateDailyCalls(), 1)
	assert.Equal(t, "2024-04-10", gen.GenerateDailyCalls()[0].Date.String())
	assert.Equal(t, domain.LocaleTH, gen.GenerateDailyCalls()[0].Locale)

	monthly, err := svc.Cache.GetMonthly(ctx, "u1", 2024, time.April, domain.LocaleTH)
	require.NoError(t, err)
	require.NotNil(t, monthly)
	assert.True(t, monthly.IsFallback)

	// повторный прогрев берёт всё из кэша
	require.NoError(t, svc.PrefetchCurrent(ctx))
	assert.Len(t, gen.GenerateDailyCalls(), 1)
	assert.Len(t, gen.GenerateYearlyCalls(), 1)
}

package astro

import (
	"context"
	"fmt"

	"github.com/TolikMuradov/AstroCalendar/internal/domain"
)

// CompleteOnboarding рассчитывает профиль, сохраняет локально и зеркалирует удалённо.
// Ошибка удалённой копии не мешает онбордингу
func (s *Service) CompleteOnboarding(ctx context.Context, in domain.OnboardingInput) (*domain.UserProfile, error) {
	profile, err := domain.NewUserProfile(in.UserID, in.Name, in.BirthDate, in.Locale, s.now())
	if err != nil {
		return nil, err
	}
	profile.Email = in.Email
	profile.Timezone = in.Timezone
	if len(in.FocusAreas) > 0 {
		profile.FocusAreas = append([]string(nil), in.FocusAreas...)
	}

	if err := s.Cache.SetProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to store profile: %w", err)
	}
	s.mirrorProfile(ctx, profile)

	s.Log.InfoContext(ctx, "onboarding completed",
		"user_id", profile.ID,
		"sign", profile.ComputedProfile.WesternZodiac.Sign,
		"animal", profile.ComputedProfile.ChineseZodiac.Animal,
	)
	return profile, nil
}

// UpdateProfile редактирование профиля; смена даты рождения пересчитывает ComputedProfile целиком
func (s *Service) UpdateProfile(ctx context.Context, userID string, upd domain.ProfileUpdate) (*domain.UserProfile, error) {
	profile, err := s.ResolveProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, userID)
	}

	now := s.now()
	if upd.Name != nil {
		profile.Name = *upd.Name
	}
	if upd.Email != nil {
		profile.Email = upd.Email
	}
	if upd.Timezone != nil {
		profile.Timezone = *upd.Timezone
	}
	if upd.Locale != nil {
		profile.Locale = *upd.Locale
	}
	if upd.FocusAreas != nil {
		profile.FocusAreas = append([]string(nil), upd.FocusAreas...)
	}
	if upd.BirthDate != nil {
		profile.SetBirthDate(*upd.BirthDate, now)
	} else {
		profile.UpdatedAt = now.UTC()
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	if err := s.Cache.SetProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to store profile: %w", err)
	}
	s.mirrorProfile(ctx, profile)

	s.Log.InfoContext(ctx, "profile updated", "user_id", profile.ID, "birth_date_changed", upd.BirthDate != nil)
	return profile, nil
}

// ResolveProfile локальный профиль пользователя; удалённая копия читается, только если локального нет.
// Найденный удалённо профиль кладётся в локальный кэш. Отсутствие профиля - (nil, nil)
func (s *Service) ResolveProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidArgument)
	}

	local, err := s.Cache.GetProfileByID(ctx, userID)
	if err != nil {
		s.Log.ErrorContext(ctx, "failed to read local profile", "error", err, "user_id", userID)
		local = nil
	}
	if local != nil {
		return local, nil
	}

	if s.Profiles == nil {
		return nil, nil
	}

	remote, err := s.Profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load remote profile: %w", err)
	}
	if remote == nil {
		return nil, nil
	}

	if err := s.Cache.SetProfile(ctx, remote); err != nil {
		s.Log.WarnContext(ctx, "failed to warm local profile", "error", err, "user_id", userID)
	}
	s.Log.InfoContext(ctx, "profile restored from remote copy", "user_id", userID)
	return remote, nil
}

// Logout очищает весь локальный кэш вместе с профилем
func (s *Service) Logout(ctx context.Context) error {
	if err := s.Cache.ClearAll(ctx); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	s.Log.InfoContext(ctx, "local cache cleared")
	return nil
}

func (s *Service) mirrorProfile(ctx context.Context, profile *domain.UserProfile) {
	if s.Profiles == nil {
		return
	}
	if err := s.Profiles.Save(ctx, profile); err != nil {
		s.Log.WarnContext(ctx, "failed to mirror profile", "error", err, "user_id", profile.ID)
	}
}

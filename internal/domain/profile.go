package domain

import (
	"fmt"
	"strings"
	"time"
)

// UserProfile профиль пользователя с рассчитанными астрологическими атрибутами
// ComputedProfile всегда производная от BirthDate, менять его можно только через SetBirthDate
type UserProfile struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           *string         `json:"email,omitempty"`
	BirthDate       CivilDate       `json:"birthDate"`
	Timezone        string          `json:"timezone,omitempty"`
	Locale          Locale          `json:"locale"`
	FocusAreas      []string        `json:"focusAreas,omitempty"`
	ComputedProfile ComputedProfile `json:"computedProfile"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

var defaultFocusAreas = []string{"Balance", "Growth"}

// NewUserProfile создаёт профиль при завершении онбординга
func NewUserProfile(id, name string, birthDate CivilDate, locale Locale, now time.Time) (*UserProfile, error) {
	p := &UserProfile{
		ID:         strings.TrimSpace(id),
		Name:       strings.TrimSpace(name),
		Locale:     locale,
		FocusAreas: append([]string(nil), defaultFocusAreas...),
	}
	p.SetBirthDate(birthDate, now)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// SetBirthDate меняет дату рождения и полностью пересчитывает ComputedProfile
func (p *UserProfile) SetBirthDate(birthDate CivilDate, now time.Time) {
	p.BirthDate = birthDate
	p.ComputedProfile = ComputeProfile(birthDate)
	p.UpdatedAt = now.UTC()
}

func (p *UserProfile) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: profile is nil", ErrInvalidArgument)
	}
	if p.ID == "" {
		return fmt.Errorf("%w: profile id is required", ErrInvalidArgument)
	}
	if p.Name == "" {
		return fmt.Errorf("%w: profile name is required", ErrInvalidArgument)
	}
	if p.BirthDate.IsZero() {
		return fmt.Errorf("%w: birth date is required", ErrInvalidArgument)
	}
	if !p.Locale.IsValid() {
		return fmt.Errorf("%w: unsupported locale %q", ErrInvalidArgument, p.Locale)
	}
	return nil
}

// OnboardingInput данные анкеты онбординга
type OnboardingInput struct {
	UserID     string
	Name       string
	Email      *string
	BirthDate  CivilDate
	Timezone   string
	Locale     Locale
	FocusAreas []string
}

// ProfileUpdate изменяемые поля профиля, nil - без изменений
type ProfileUpdate struct {
	Name       *string
	Email      *string
	BirthDate  *CivilDate
	Timezone   *string
	Locale     *Locale
	FocusAreas []string
}

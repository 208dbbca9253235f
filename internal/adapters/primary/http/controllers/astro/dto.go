package astroController

import (
	"fmt"
	"strings"

	"github.com/TolikMuradov/AstroCalendar/internal/domain"
)

// ProfileRequest тело PUT профиля; при онбординге name и birthDate обязательны
type ProfileRequest struct {
	Name       *string  `json:"name"`
	Email      *string  `json:"email"`
	BirthDate  *string  `json:"birthDate"`
	Timezone   *string  `json:"timezone"`
	Locale     *string  `json:"locale"`
	FocusAreas []string `json:"focusAreas"`
}

func (r ProfileRequest) toOnboarding(userID string) (domain.OnboardingInput, error) {
	in := domain.OnboardingInput{
		UserID:     userID,
		Email:      r.Email,
		FocusAreas: r.FocusAreas,
		Locale:     domain.DefaultLocale,
	}
	if r.Name != nil {
		in.Name = *r.Name
	}
	if r.Timezone != nil {
		in.Timezone = strings.TrimSpace(*r.Timezone)
	}
	if r.BirthDate == nil {
		return in, fmt.Errorf("%w: birthDate is required", domain.ErrInvalidArgument)
	}
	bd, err := domain.ParseDate(*r.BirthDate)
	if err != nil {
		return in, err
	}
	in.BirthDate = bd
	if r.Locale != nil {
		l, err := domain.ParseLocale(*r.Locale)
		if err != nil {
			return in, err
		}
		in.Locale = l
	}
	return in, nil
}

func (r ProfileRequest) toUpdate() (domain.ProfileUpdate, error) {
	upd := domain.ProfileUpdate{
		Name:       r.Name,
		Email:      r.Email,
		Timezone:   r.Timezone,
		FocusAreas: r.FocusAreas,
	}
	if r.BirthDate != nil {
		bd, err := domain.ParseDate(*r.BirthDate)
		if err != nil {
			return upd, err
		}
		upd.BirthDate = &bd
	}
	if r.Locale != nil {
		l, err := domain.ParseLocale(*r.Locale)
		if err != nil {
			return upd, err
		}
		upd.Locale = &l
	}
	return upd, nil
}

// CompareRequest данные партнёра
type CompareRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birthDate" binding:"required"`
	Locale    string `json:"locale"`
}

// ProfileResponse профиль с иконками знаков и качеством стихии
type ProfileResponse struct {
	*domain.UserProfile
	SignIcon     string `json:"signIcon"`
	AnimalIcon   string `json:"animalIcon"`
	ElementTrait string `json:"elementTrait"`
}

func newProfileResponse(p *domain.UserProfile) ProfileResponse {
	return ProfileResponse{
		UserProfile:  p,
		SignIcon:     p.ComputedProfile.WesternZodiac.Sign.Icon(),
		AnimalIcon:   p.ComputedProfile.ChineseZodiac.Animal.Icon(),
		ElementTrait: domain.ElementTrait(p.ComputedProfile.WesternZodiac.Element, p.Locale),
	}
}

// DailyResponse дневной инсайт с hex цвета
type DailyResponse struct {
	*domain.DailyInsight
	ColorHex string `json:"colorHex"`
}

// MonthlyResponse месячный календарь; Today есть, только если запрошен текущий месяц
type MonthlyResponse struct {
	*domain.MonthlyInsight
	Today *domain.MonthlyDayInsight `json:"today,omitempty"`
}

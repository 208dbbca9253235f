package repository

import (
	"context"

	"github.com/TolikMuradov/AstroCalendar/internal/domain"
)

// IProfileRepo удалённая копия профиля
type IProfileRepo interface {
	Save(ctx context.Context, profile *domain.UserProfile) error
	// GetByID возвращает (nil, nil), если профиля нет
	GetByID(ctx context.Context, id string) (*domain.UserProfile, error)
}

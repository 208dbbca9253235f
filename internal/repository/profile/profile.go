package profileRepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/TolikMuradov/AstroCalendar/internal/domain"
	"github.com/TolikMuradov/AstroCalendar/internal/ports/persistence"
	ports "github.com/TolikMuradov/AstroCalendar/internal/ports/repository"
)

const (
	tableName  = "user_profiles"
	allColumns = "id, name, email, birth_date, timezone, locale, focus_areas, computed_profile, updated_at"
)

// profileRow строка таблицы user_profiles
type profileRow struct {
	ID              string         `db:"id"`
	Name            string         `db:"name"`
	Email           sql.NullString `db:"email"`
	BirthDate       time.Time      `db:"birth_date"`
	Timezone        string         `db:"timezone"`
	Locale          string         `db:"locale"`
	FocusAreas      []byte         `db:"focus_areas"`
	ComputedProfile []byte         `db:"computed_profile"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

type Repository struct {
	db  persistence.Persistence
	Log *slog.Logger
}

func New(db persistence.Persistence, log *slog.Logger) ports.IProfileRepo {
	return &Repository{
		db:  db,
		Log: log,
	}
}

// Save создаёт или обновляет профиль по id
func (r *Repository) Save(ctx context.Context, profile *domain.UserProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	focusAreas, err := json.Marshal(profile.FocusAreas)
	if err != nil {
		return fmt.Errorf("failed to marshal focus areas: %w", err)
	}
	computed, err := json.Marshal(profile.ComputedProfile)
	if err != nil {
		return fmt.Errorf("failed to marshal computed profile: %w", err)
	}

	var email sql.NullString
	if profile.Email != nil {
		email = sql.NullString{String: *profile.Email, Valid: true}
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			birth_date = EXCLUDED.birth_date,
			timezone = EXCLUDED.timezone,
			locale = EXCLUDED.locale,
			focus_areas = EXCLUDED.focus_areas,
			computed_profile = EXCLUDED.computed_profile,
			updated_at = EXCLUDED.updated_at`,
		tableName, allColumns)

	err = r.db.Exec(ctx, query,
		profile.ID,
		profile.Name,
		email,
		profile.BirthDate.Time(),
		profile.Timezone,
		string(profile.Locale),
		focusAreas,
		computed,
		profile.UpdatedAt,
	)
	if err != nil {
		r.Log.Error("failed to save profile",
			"error", err,
			"user_id", profile.ID)
		return fmt.Errorf("failed to save profile: %w", err)
	}
	r.Log.Debug("profile saved", "user_id", profile.ID)
	return nil
}

// GetByID возвращает (nil, nil), если профиля нет
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	var row profileRow
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, allColumns, tableName)
	if err := r.db.Get(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Debug("profile not found", "user_id", id)
			return nil, nil
		}
		r.Log.Error("failed to get profile",
			"error", err,
			"user_id", id)
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return row.toDomain()
}

func (row *profileRow) toDomain() (*domain.UserProfile, error) {
	p := &domain.UserProfile{
		ID:        row.ID,
		Name:      row.Name,
		BirthDate: domain.DateOf(row.BirthDate),
		Timezone:  row.Timezone,
		Locale:    domain.Locale(row.Locale),
		UpdatedAt: row.UpdatedAt.UTC(),
	}
	if row.Email.Valid {
		email := row.Email.String
		p.Email = &email
	}
	if len(row.FocusAreas) > 0 {
		if err := json.Unmarshal(row.FocusAreas, &p.FocusAreas); err != nil {
			return nil, fmt.Errorf("failed to unmarshal focus areas: %w", err)
		}
	}
	// производные поля пересчитываются, хранимая копия только для внешних потребителей
	p.ComputedProfile = domain.ComputeProfile(p.BirthDate)
	if !p.Locale.IsValid() {
		p.Locale = domain.DefaultLocale
	}
	return p, nil
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

const InsightGeneratedEvent = "insight.generated"

// InsightEvent сообщение о записи инсайта в кэш
type InsightEvent struct {
	ID          uuid.UUID   `json:"id"`
	Type        string      `json:"type"`
	Kind        InsightKind `json:"kind"`
	UserID      string      `json:"userId"`
	Period      string      `json:"period"`
	Locale      Locale      `json:"locale"`
	Fallback    bool        `json:"fallback"`
	GeneratedAt time.Time   `json:"generatedAt"`
}

func NewInsightEvent(kind InsightKind, userID, period string, locale Locale, fallback bool, generatedAt time.Time) InsightEvent {
	return InsightEvent{
		ID:          uuid.New(),
		Type:        InsightGeneratedEvent,
		Kind:        kind,
		UserID:      userID,
		Period:      period,
		Locale:      locale,
		Fallback:    fallback,
		GeneratedAt: generatedAt,
	}
}

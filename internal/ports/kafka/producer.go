package kafka

import (
	"context"

	"github.com/TolikMuradov/AstroCalendar/internal/domain"
)

// IEventPublisher публикация событий о сгенерированном контенте
type IEventPublisher interface {
	PublishInsightGenerated(ctx context.Context, key string, event domain.InsightEvent) error
	Close() error
}

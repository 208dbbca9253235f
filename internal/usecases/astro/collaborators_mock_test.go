package astro

import (
	"context"
	"sync"

	"github.com/TolikMuradov/AstroCalendar/internal/domain"
	"github.com/TolikMuradov/AstroCalendar/internal/ports/kafka"
	"github.com/TolikMuradov/AstroCalendar/internal/ports/repository"
)

var _ repository.IProfileRepo = &profileRepoMock{}

type profileRepoMock struct {
	SaveFunc    func(ctx context.Context, profile *domain.UserProfile) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.UserProfile, error)

	calls struct {
		Save []struct {
			Profile *domain.UserProfile
		}
		GetByID []struct {
			ID string
		}
	}
	lockSave    sync.RWMutex
	lockGetByID sync.RWMutex
}

func (mock *profileRepoMock) Save(ctx context.Context, profile *domain.UserProfile) error {
	if mock.SaveFunc == nil {
		panic("profileRepoMock.SaveFunc: method is nil but IProfileRepo.Save was just called")
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, struct {
		Profile *domain.UserProfile
	}{Profile: profile})
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, profile)
}

func (mock *profileRepoMock) SaveCalls() []struct {
	Profile *domain.UserProfile
} {
	mock.lockSave.RLock()
	defer mock.lockSave.RUnlock()
	return mock.calls.Save
}

func (mock *profileRepoMock) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	if mock.GetByIDFunc == nil {
		panic("profileRepoMock.GetByIDFunc: method is nil but IProfileRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		ID string
	}{ID: id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *profileRepoMock) GetByIDCalls() []struct {
	ID string
} {
	mock.lockGetByID.RLock()
	defer mock.lockGetByID.RUnlock()
	return mock.calls.GetByID
}

var _ kafka.IEventPublisher = &eventPublisherMock{}

type eventPublisherMock struct {
	PublishInsightGeneratedFunc func(ctx context.Context, key string, event domain.InsightEvent) error
	CloseFunc                   func() error

	calls struct {
		PublishInsightGenerated []struct {
			Key   string
			Event domain.InsightEvent
		}
		Close []struct{}
	}
	lockPublishInsightGenerated sync.RWMutex
	lockClose                   sync.RWMutex
}

func (mock *eventPublisherMock) PublishInsightGenerated(ctx context.Context, key string, event domain.InsightEvent) error {
	if mock.PublishInsightGeneratedFunc == nil {
		panic("eventPublisherMock.PublishInsightGeneratedFunc: method is nil but IEventPublisher.PublishInsightGenerated was just called")
	}
	mock.lockPublishInsightGenerated.Lock()
	mock.calls.PublishInsightGenerated = append(mock.calls.PublishInsightGenerated, struct {
		Key   string
		Event domain.InsightEvent
	}{Key: key, Event: event})
	mock.lockPublishInsightGenerated.Unlock()
	return mock.PublishInsightGeneratedFunc(ctx, key, event)
}

func (mock *eventPublisherMock) PublishInsightGeneratedCalls() []struct {
	Key   string
	Event domain.InsightEvent
} {
	mock.lockPublishInsightGenerated.RLock()
	defer mock.lockPublishInsightGenerated.RUnlock()
	return mock.calls.PublishInsightGenerated
}

func (mock *eventPublisherMock) Close() error {
	if mock.CloseFunc == nil {
		panic("eventPublisherMock.CloseFunc: method is nil but IEventPublisher.Close was just called")
	}
	mock.lockClose.Lock()
	mock.calls.Close = append(mock.calls.Close, struct{}{})
	mock.lockClose.Unlock()
	return mock.CloseFunc()
}

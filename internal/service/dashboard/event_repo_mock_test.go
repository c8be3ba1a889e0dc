package dashboard

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/greenthumb-backend/internal/domain"
	"sync"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	ListIncompleteFunc func(ctx context.Context, userID uuid.UUID) ([]domain.CareEvent, error)

	calls struct {
		ListIncomplete []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockListIncomplete sync.RWMutex
}

func (mock *eventRepoMock) ListIncomplete(ctx context.Context, userID uuid.UUID) ([]domain.CareEvent, error) {
	if mock.ListIncompleteFunc == nil {
		panic("eventRepoMock.ListIncompleteFunc: method is nil but eventRepo.ListIncomplete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListIncomplete.Lock()
	mock.calls.ListIncomplete = append(mock.calls.ListIncomplete, callInfo)
	mock.lockListIncomplete.Unlock()
	return mock.ListIncompleteFunc(ctx, userID)
}

func (mock *eventRepoMock) ListIncompleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListIncomplete.RLock()
	calls := mock.calls.ListIncomplete
	mock.lockListIncomplete.RUnlock()
	return calls
}

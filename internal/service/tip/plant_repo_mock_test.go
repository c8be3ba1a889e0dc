package tip

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/greenthumb-backend/internal/domain"
	"sync"
)

var _ plantRepo = &plantRepoMock{}

type plantRepoMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Plant, error)

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockListByUser sync.RWMutex
}

func (mock *plantRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Plant, error) {
	if mock.ListByUserFunc == nil {
		panic("plantRepoMock.ListByUserFunc: method is nil but plantRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *plantRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

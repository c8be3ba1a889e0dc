package plant

import (
	"context"
	"github.com/heartmarshall/greenthumb-backend/internal/domain"
	"sync"
)

var _ careEventRepo = &careEventRepoMock{}

type careEventRepoMock struct {
	CreateFunc func(ctx context.Context, e *domain.CareEvent) (*domain.CareEvent, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.CareEvent
		}
	}
	lockCreate sync.RWMutex
}

func (mock *careEventRepoMock) Create(ctx context.Context, e *domain.CareEvent) (*domain.CareEvent, error) {
	if mock.CreateFunc == nil {
		panic("careEventRepoMock.CreateFunc: method is nil but careEventRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.CareEvent
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *careEventRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.CareEvent
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

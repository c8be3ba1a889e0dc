package weather

import (
	"context"
	"github.com/heartmarshall/greenthumb-backend/internal/domain"
	"sync"
)

var _ weatherRepo = &weatherRepoMock{}

type weatherRepoMock struct {
	GetFunc    func(ctx context.Context, location string) (*domain.WeatherSnapshot, error)
	UpsertFunc func(ctx context.Context, w domain.WeatherSnapshot) error

	calls struct {
		Get []struct {
			Ctx      context.Context
			Location string
		}
		Upsert []struct {
			Ctx context.Context
			W   domain.WeatherSnapshot
		}
	}
	lockGet    sync.RWMutex
	lockUpsert sync.RWMutex
}

func (mock *weatherRepoMock) Get(ctx context.Context, location string) (*domain.WeatherSnapshot, error) {
	if mock.GetFunc == nil {
		panic("weatherRepoMock.GetFunc: method is nil but weatherRepo.Get was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Location string
	}{
		Ctx:      ctx,
		Location: location,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, location)
}

func (mock *weatherRepoMock) GetCalls() []struct {
	Ctx      context.Context
	Location string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *weatherRepoMock) Upsert(ctx context.Context, w domain.WeatherSnapshot) error {
	if mock.UpsertFunc == nil {
		panic("weatherRepoMock.UpsertFunc: method is nil but weatherRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   domain.WeatherSnapshot
	}{
		Ctx: ctx,
		W:   w,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, w)
}

func (mock *weatherRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	W   domain.WeatherSnapshot
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

package weather

import (
	"context"
	"github.com/heartmarshall/greenthumb-backend/internal/domain"
	"sync"
)

var _ weatherProvider = &weatherProviderMock{}

type weatherProviderMock struct {
	CurrentFunc func(ctx context.Context, location string) (*domain.WeatherSnapshot, error)

	calls struct {
		Current []struct {
			Ctx      context.Context
			Location string
		}
	}
	lockCurrent sync.RWMutex
}

func (mock *weatherProviderMock) Current(ctx context.Context, location string) (*domain.WeatherSnapshot, error) {
	if mock.CurrentFunc == nil {
		panic("weatherProviderMock.CurrentFunc: method is nil but weatherProvider.Current was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Location string
	}{
		Ctx:      ctx,
		Location: location,
	}
	mock.lockCurrent.Lock()
	mock.calls.Current = append(mock.calls.Current, callInfo)
	mock.lockCurrent.Unlock()
	return mock.CurrentFunc(ctx, location)
}

func (mock *weatherProviderMock) CurrentCalls() []struct {
	Ctx      context.Context
	Location string
} {
	mock.lockCurrent.RLock()
	calls := mock.calls.Current
	mock.lockCurrent.RUnlock()
	return calls
}

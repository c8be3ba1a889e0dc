package rest

import (
	"context"
	"github.com/heartmarshall/greenthumb-backend/internal/domain"
	"sync"
)

var _ statsService = &statsServiceMock{}

type statsServiceMock struct {
	GetStatsFunc func(ctx context.Context) (domain.UserStats, error)

	calls struct {
		GetStats []struct{ Ctx context.Context }
	}
	lockGetStats sync.RWMutex
}

func (mock *statsServiceMock) GetStats(ctx context.Context) (domain.UserStats, error) {
	if mock.GetStatsFunc == nil {
		panic("statsServiceMock.GetStatsFunc: method is nil but statsService.GetStats was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockGetStats.Lock()
	mock.calls.GetStats = append(mock.calls.GetStats, callInfo)
	mock.lockGetStats.Unlock()
	return mock.GetStatsFunc(ctx)
}

func (mock *statsServiceMock) GetStatsCalls() []struct{ Ctx context.Context } {
	mock.lockGetStats.RLock()
	calls := mock.calls.GetStats
	mock.lockGetStats.RUnlock()
	return calls
}

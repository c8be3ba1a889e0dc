package dashboard

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/greenthumb-backend/internal/domain"
	"sync"
	"time"
)

var _ tipRepo = &tipRepoMock{}

type tipRepoMock struct {
	ListCreatedSinceFunc func(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.AITip, error)

	calls struct {
		ListCreatedSince []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Since  time.Time
		}
	}
	lockListCreatedSince sync.RWMutex
}

func (mock *tipRepoMock) ListCreatedSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.AITip, error) {
	if mock.ListCreatedSinceFunc == nil {
		panic("tipRepoMock.ListCreatedSinceFunc: method is nil but tipRepo.ListCreatedSince was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Since  time.Time
	}{
		Ctx:    ctx,
		UserID: userID,
		Since:  since,
	}
	mock.lockListCreatedSince.Lock()
	mock.calls.ListCreatedSince = append(mock.calls.ListCreatedSince, callInfo)
	mock.lockListCreatedSince.Unlock()
	return mock.ListCreatedSinceFunc(ctx, userID, since)
}

func (mock *tipRepoMock) ListCreatedSinceCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Since  time.Time
} {
	mock.lockListCreatedSince.RLock()
	calls := mock.calls.ListCreatedSince
	mock.lockListCreatedSince.RUnlock()
	return calls
}

package middleware

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ userProvisioner = &userProvisionerMock{}

type userProvisionerMock struct {
	EnsureUserFunc func(ctx context.Context, userID uuid.UUID) error

	calls struct {
		EnsureUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockEnsureUser sync.RWMutex
}

func (mock *userProvisionerMock) EnsureUser(ctx context.Context, userID uuid.UUID) error {
	if mock.EnsureUserFunc == nil {
		panic("userProvisionerMock.EnsureUserFunc: method is nil but userProvisioner.EnsureUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockEnsureUser.Lock()
	mock.calls.EnsureUser = append(mock.calls.EnsureUser, callInfo)
	mock.lockEnsureUser.Unlock()
	return mock.EnsureUserFunc(ctx, userID)
}

func (mock *userProvisionerMock) EnsureUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockEnsureUser.RLock()
	calls := mock.calls.EnsureUser
	mock.lockEnsureUser.RUnlock()
	return calls
}

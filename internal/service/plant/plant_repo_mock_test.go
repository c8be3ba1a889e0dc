package plant

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/greenthumb-backend/internal/domain"
	"sync"
)

var _ plantRepo = &plantRepoMock{}

type plantRepoMock struct {
	CreateFunc           func(ctx context.Context, p *domain.Plant) (*domain.Plant, error)
	DeleteFunc           func(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
	GetByIDFunc          func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Plant, error)
	GetByIDForUpdateFunc func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Plant, error)
	ListByUserFunc       func(ctx context.Context, userID uuid.UUID) ([]domain.Plant, error)
	UpdateFunc           func(ctx context.Context, p *domain.Plant) (*domain.Plant, error)
	UpdateCareStateFunc  func(ctx context.Context, userID uuid.UUID, id uuid.UUID, upd domain.CareStateUpdate) (*domain.Plant, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   *domain.Plant
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		GetByIDForUpdate []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			P   *domain.Plant
		}
		UpdateCareState []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
			Upd    domain.CareStateUpdate
		}
	}
	lockCreate           sync.RWMutex
	lockDelete           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockListByUser       sync.RWMutex
	lockUpdate           sync.RWMutex
	lockUpdateCareState  sync.RWMutex
}

func (mock *plantRepoMock) Create(ctx context.Context, p *domain.Plant) (*domain.Plant, error) {
	if mock.CreateFunc == nil {
		panic("plantRepoMock.CreateFunc: method is nil but plantRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Plant
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *plantRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.Plant
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *plantRepoMock) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("plantRepoMock.DeleteFunc: method is nil but plantRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		ID:     id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *plantRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *plantRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Plant, error) {
	if mock.GetByIDFunc == nil {
		panic("plantRepoMock.GetByIDFunc: method is nil but plantRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		ID:     id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *plantRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *plantRepoMock) GetByIDForUpdate(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Plant, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("plantRepoMock.GetByIDForUpdateFunc: method is nil but plantRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		ID:     id,
	}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, userID, id)
}

func (mock *plantRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
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

func (mock *plantRepoMock) Update(ctx context.Context, p *domain.Plant) (*domain.Plant, error) {
	if mock.UpdateFunc == nil {
		panic("plantRepoMock.UpdateFunc: method is nil but plantRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Plant
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, p)
}

func (mock *plantRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	P   *domain.Plant
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *plantRepoMock) UpdateCareState(ctx context.Context, userID uuid.UUID, id uuid.UUID, upd domain.CareStateUpdate) (*domain.Plant, error) {
	if mock.UpdateCareStateFunc == nil {
		panic("plantRepoMock.UpdateCareStateFunc: method is nil but plantRepo.UpdateCareState was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
		Upd    domain.CareStateUpdate
	}{
		Ctx:    ctx,
		UserID: userID,
		ID:     id,
		Upd:    upd,
	}
	mock.lockUpdateCareState.Lock()
	mock.calls.UpdateCareState = append(mock.calls.UpdateCareState, callInfo)
	mock.lockUpdateCareState.Unlock()
	return mock.UpdateCareStateFunc(ctx, userID, id, upd)
}

func (mock *plantRepoMock) UpdateCareStateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
	Upd    domain.CareStateUpdate
} {
	mock.lockUpdateCareState.RLock()
	calls := mock.calls.UpdateCareState
	mock.lockUpdateCareState.RUnlock()
	return calls
}

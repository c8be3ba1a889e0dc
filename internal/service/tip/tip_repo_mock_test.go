package tip

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/greenthumb-backend/internal/domain"
	"sync"
)

var _ tipRepo = &tipRepoMock{}

type tipRepoMock struct {
	CreateFunc      func(ctx context.Context, tip *domain.AITip) (*domain.AITip, error)
	ListByUserFunc  func(ctx context.Context, userID uuid.UUID) ([]domain.AITip, error)
	SetBookmarkFunc func(ctx context.Context, userID uuid.UUID, id uuid.UUID, bookmarked bool) (*domain.AITip, error)
	SetHelpfulFunc  func(ctx context.Context, userID uuid.UUID, id uuid.UUID, helpful bool) (*domain.AITip, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Tip *domain.AITip
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		SetBookmark []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			ID         uuid.UUID
			Bookmarked bool
		}
		SetHelpful []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			ID      uuid.UUID
			Helpful bool
		}
	}
	lockCreate      sync.RWMutex
	lockListByUser  sync.RWMutex
	lockSetBookmark sync.RWMutex
	lockSetHelpful  sync.RWMutex
}

func (mock *tipRepoMock) Create(ctx context.Context, tip *domain.AITip) (*domain.AITip, error) {
	if mock.CreateFunc == nil {
		panic("tipRepoMock.CreateFunc: method is nil but tipRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Tip *domain.AITip
	}{
		Ctx: ctx,
		Tip: tip,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, tip)
}

func (mock *tipRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Tip *domain.AITip
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *tipRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.AITip, error) {
	if mock.ListByUserFunc == nil {
		panic("tipRepoMock.ListByUserFunc: method is nil but tipRepo.ListByUser was just called")
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

func (mock *tipRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *tipRepoMock) SetBookmark(ctx context.Context, userID uuid.UUID, id uuid.UUID, bookmarked bool) (*domain.AITip, error) {
	if mock.SetBookmarkFunc == nil {
		panic("tipRepoMock.SetBookmarkFunc: method is nil but tipRepo.SetBookmark was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		ID         uuid.UUID
		Bookmarked bool
	}{
		Ctx:        ctx,
		UserID:     userID,
		ID:         id,
		Bookmarked: bookmarked,
	}
	mock.lockSetBookmark.Lock()
	mock.calls.SetBookmark = append(mock.calls.SetBookmark, callInfo)
	mock.lockSetBookmark.Unlock()
	return mock.SetBookmarkFunc(ctx, userID, id, bookmarked)
}

func (mock *tipRepoMock) SetBookmarkCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	ID         uuid.UUID
	Bookmarked bool
} {
	mock.lockSetBookmark.RLock()
	calls := mock.calls.SetBookmark
	mock.lockSetBookmark.RUnlock()
	return calls
}

func (mock *tipRepoMock) SetHelpful(ctx context.Context, userID uuid.UUID, id uuid.UUID, helpful bool) (*domain.AITip, error) {
	if mock.SetHelpfulFunc == nil {
		panic("tipRepoMock.SetHelpfulFunc: method is nil but tipRepo.SetHelpful was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		ID      uuid.UUID
		Helpful bool
	}{
		Ctx:     ctx,
		UserID:  userID,
		ID:      id,
		Helpful: helpful,
	}
	mock.lockSetHelpful.Lock()
	mock.calls.SetHelpful = append(mock.calls.SetHelpful, callInfo)
	mock.lockSetHelpful.Unlock()
	return mock.SetHelpfulFunc(ctx, userID, id, helpful)
}

func (mock *tipRepoMock) SetHelpfulCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	ID      uuid.UUID
	Helpful bool
} {
	mock.lockSetHelpful.RLock()
	calls := mock.calls.SetHelpful
	mock.lockSetHelpful.RUnlock()
	return calls
}

package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/greenthumb-backend/internal/domain"
	"github.com/heartmarshall/greenthumb-backend/internal/service/care"
	"sync"
)

var _ careService = &careServiceMock{}

type careServiceMock struct {
	CompleteEventFunc func(ctx context.Context, id uuid.UUID) (*domain.CareEvent, error)
	CreateEventFunc   func(ctx context.Context, input care.CreateEventInput) (*domain.CareEvent, error)
	ListDueFunc       func(ctx context.Context) ([]domain.CareEvent, error)
	ListEventsFunc    func(ctx context.Context, plantID *uuid.UUID) ([]domain.CareEvent, error)
	ListUpcomingFunc  func(ctx context.Context) ([]domain.CareEvent, error)
	UpdateEventFunc   func(ctx context.Context, input care.UpdateEventInput) (*domain.CareEvent, error)

	calls struct {
		CompleteEvent []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		CreateEvent []struct {
			Ctx   context.Context
			Input care.CreateEventInput
		}
		ListDue    []struct{ Ctx context.Context }
		ListEvents []struct {
			Ctx     context.Context
			PlantID *uuid.UUID
		}
		ListUpcoming []struct{ Ctx context.Context }
		UpdateEvent  []struct {
			Ctx   context.Context
			Input care.UpdateEventInput
		}
	}
	lockCompleteEvent sync.RWMutex
	lockCreateEvent   sync.RWMutex
	lockListDue       sync.RWMutex
	lockListEvents    sync.RWMutex
	lockListUpcoming  sync.RWMutex
	lockUpdateEvent   sync.RWMutex
}

func (mock *careServiceMock) CompleteEvent(ctx context.Context, id uuid.UUID) (*domain.CareEvent, error) {
	if mock.CompleteEventFunc == nil {
		panic("careServiceMock.CompleteEventFunc: method is nil but careService.CompleteEvent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockCompleteEvent.Lock()
	mock.calls.CompleteEvent = append(mock.calls.CompleteEvent, callInfo)
	mock.lockCompleteEvent.Unlock()
	return mock.CompleteEventFunc(ctx, id)
}

func (mock *careServiceMock) CompleteEventCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockCompleteEvent.RLock()
	calls := mock.calls.CompleteEvent
	mock.lockCompleteEvent.RUnlock()
	return calls
}

func (mock *careServiceMock) CreateEvent(ctx context.Context, input care.CreateEventInput) (*domain.CareEvent, error) {
	if mock.CreateEventFunc == nil {
		panic("careServiceMock.CreateEventFunc: method is nil but careService.CreateEvent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input care.CreateEventInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateEvent.Lock()
	mock.calls.CreateEvent = append(mock.calls.CreateEvent, callInfo)
	mock.lockCreateEvent.Unlock()
	return mock.CreateEventFunc(ctx, input)
}

func (mock *careServiceMock) CreateEventCalls() []struct {
	Ctx   context.Context
	Input care.CreateEventInput
} {
	mock.lockCreateEvent.RLock()
	calls := mock.calls.CreateEvent
	mock.lockCreateEvent.RUnlock()
	return calls
}

func (mock *careServiceMock) ListDue(ctx context.Context) ([]domain.CareEvent, error) {
	if mock.ListDueFunc == nil {
		panic("careServiceMock.ListDueFunc: method is nil but careService.ListDue was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListDue.Lock()
	mock.calls.ListDue = append(mock.calls.ListDue, callInfo)
	mock.lockListDue.Unlock()
	return mock.ListDueFunc(ctx)
}

func (mock *careServiceMock) ListDueCalls() []struct{ Ctx context.Context } {
	mock.lockListDue.RLock()
	calls := mock.calls.ListDue
	mock.lockListDue.RUnlock()
	return calls
}

func (mock *careServiceMock) ListEvents(ctx context.Context, plantID *uuid.UUID) ([]domain.CareEvent, error) {
	if mock.ListEventsFunc == nil {
		panic("careServiceMock.ListEventsFunc: method is nil but careService.ListEvents was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PlantID *uuid.UUID
	}{
		Ctx:     ctx,
		PlantID: plantID,
	}
	mock.lockListEvents.Lock()
	mock.calls.ListEvents = append(mock.calls.ListEvents, callInfo)
	mock.lockListEvents.Unlock()
	return mock.ListEventsFunc(ctx, plantID)
}

func (mock *careServiceMock) ListEventsCalls() []struct {
	Ctx     context.Context
	PlantID *uuid.UUID
} {
	mock.lockListEvents.RLock()
	calls := mock.calls.ListEvents
	mock.lockListEvents.RUnlock()
	return calls
}

func (mock *careServiceMock) ListUpcoming(ctx context.Context) ([]domain.CareEvent, error) {
	if mock.ListUpcomingFunc == nil {
		panic("careServiceMock.ListUpcomingFunc: method is nil but careService.ListUpcoming was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListUpcoming.Lock()
	mock.calls.ListUpcoming = append(mock.calls.ListUpcoming, callInfo)
	mock.lockListUpcoming.Unlock()
	return mock.ListUpcomingFunc(ctx)
}

func (mock *careServiceMock) ListUpcomingCalls() []struct{ Ctx context.Context } {
	mock.lockListUpcoming.RLock()
	calls := mock.calls.ListUpcoming
	mock.lockListUpcoming.RUnlock()
	return calls
}

func (mock *careServiceMock) UpdateEvent(ctx context.Context, input care.UpdateEventInput) (*domain.CareEvent, error) {
	if mock.UpdateEventFunc == nil {
		panic("careServiceMock.UpdateEventFunc: method is nil but careService.UpdateEvent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input care.UpdateEventInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateEvent.Lock()
	mock.calls.UpdateEvent = append(mock.calls.UpdateEvent, callInfo)
	mock.lockUpdateEvent.Unlock()
	return mock.UpdateEventFunc(ctx, input)
}

func (mock *careServiceMock) UpdateEventCalls() []struct {
	Ctx   context.Context
	Input care.UpdateEventInput
} {
	mock.lockUpdateEvent.RLock()
	calls := mock.calls.UpdateEvent
	mock.lockUpdateEvent.RUnlock()
	return calls
}

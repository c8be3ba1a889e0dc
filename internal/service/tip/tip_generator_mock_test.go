package tip

import (
	"context"
	"github.com/heartmarshall/greenthumb-backend/internal/domain"
	"sync"
)

var _ tipGenerator = &tipGeneratorMock{}

type tipGeneratorMock struct {
	GenerateFunc func(ctx context.Context, req domain.TipRequest) (*domain.GeneratedTip, error)

	calls struct {
		Generate []struct {
			Ctx context.Context
			Req domain.TipRequest
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *tipGeneratorMock) Generate(ctx context.Context, req domain.TipRequest) (*domain.GeneratedTip, error) {
	if mock.GenerateFunc == nil {
		panic("tipGeneratorMock.GenerateFunc: method is nil but tipGenerator.Generate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req domain.TipRequest
	}{
		Ctx: ctx,
		Req: req,
	}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, req)
}

func (mock *tipGeneratorMock) GenerateCalls() []struct {
	Ctx context.Context
	Req domain.TipRequest
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

package tip

import (
	"context"
	"github.com/heartmarshall/greenthumb-backend/internal/domain"
	"sync"
)

var _ weatherSource = &weatherSourceMock{}

type weatherSourceMock struct {
	GetWeatherFunc func(ctx context.Context, location string) (domain.WeatherReport, error)

	calls struct {
		GetWeather []struct {
			Ctx      context.Context
			Location string
		}
	}
	lockGetWeather sync.RWMutex
}

func (mock *weatherSourceMock) GetWeather(ctx context.Context, location string) (domain.WeatherReport, error) {
	if mock.GetWeatherFunc == nil {
		panic("weatherSourceMock.GetWeatherFunc: method is nil but weatherSource.GetWeather was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Location string
	}{
		Ctx:      ctx,
		Location: location,
	}
	mock.lockGetWeather.Lock()
	mock.calls.GetWeather = append(mock.calls.GetWeather, callInfo)
	mock.lockGetWeather.Unlock()
	return mock.GetWeatherFunc(ctx, location)
}

func (mock *weatherSourceMock) GetWeatherCalls() []struct {
	Ctx      context.Context
	Location string
} {
	mock.lockGetWeather.RLock()
	calls := mock.calls.GetWeather
	mock.lockGetWeather.RUnlock()
	return calls
}

package rest

import (
	"context"
	"github.com/heartmarshall/greenthumb-backend/internal/domain"
	"sync"
)

var _ weatherService = &weatherServiceMock{}

type weatherServiceMock struct {
	GetWeatherFunc func(ctx context.Context, location string) (domain.WeatherReport, error)

	calls struct {
		GetWeather []struct {
			Ctx      context.Context
			Location string
		}
	}
	lockGetWeather sync.RWMutex
}

func (mock *weatherServiceMock) GetWeather(ctx context.Context, location string) (domain.WeatherReport, error) {
	if mock.GetWeatherFunc == nil {
		panic("weatherServiceMock.GetWeatherFunc: method is nil but weatherService.GetWeather was just called")
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

func (mock *weatherServiceMock) GetWeatherCalls() []struct {
	Ctx      context.Context
	Location string
} {
	mock.lockGetWeather.RLock()
	calls := mock.calls.GetWeather
	mock.lockGetWeather.RUnlock()
	return calls
}

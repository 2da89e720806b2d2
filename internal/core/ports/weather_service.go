package ports

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// WeatherProvider fetches current weather for a city from the upstream
// service. Any downstream failure surfaces as domain.ErrWeatherUnavailable.
type WeatherProvider interface {
	Fetch(ctx context.Context, city string) (*domain.WeatherSnapshot, error)
}

// WeatherService resolves the caller's profile city and returns a snapshot
// for it, or domain.ErrCityNotSet when the profile has none.
type WeatherService interface {
	ForUser(ctx context.Context, userID uint) (*domain.WeatherSnapshot, error)
}

package domain

import "errors"

// ErrWeatherUnavailable covers every downstream weather failure (network,
// timeout, non-200, malformed body). Callers only learn "unavailable".
var ErrWeatherUnavailable = errors.New("weather service unavailable")

// ErrCityNotSet is returned when the caller's profile has no city.
var ErrCityNotSet = errors.New("city not set")

// WeatherSnapshot is the condensed view returned to clients.
type WeatherSnapshot struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

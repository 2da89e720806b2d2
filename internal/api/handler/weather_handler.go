package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard-api/internal/api/metrics"
	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// WeatherHandler serves current weather for the caller's profile city.
type WeatherHandler struct {
	service ports.WeatherService
}

func NewWeatherHandler(service ports.WeatherService) *WeatherHandler {
	return &WeatherHandler{service: service}
}

// Get returns a weather snapshot for the caller's city.
//
// @Summary      Weather for the caller's city
// @Tags         weather
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.WeatherSnapshot
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /weather [get]
func (h *WeatherHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	snap, err := h.service.ForUser(c.Request().Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCityNotSet):
			metrics.WeatherRequestsTotal.WithLabelValues("city_not_set").Inc()
		case errors.Is(err, domain.ErrWeatherUnavailable):
			metrics.WeatherRequestsTotal.WithLabelValues("unavailable").Inc()
		}
		return err
	}

	metrics.WeatherRequestsTotal.WithLabelValues("ok").Inc()

	return c.JSON(http.StatusOK, snap)
}

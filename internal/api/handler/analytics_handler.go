package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// AnalyticsHandler serves the derived summary for the caller's tasks.
type AnalyticsHandler struct {
	service ports.AnalyticsService
}

func NewAnalyticsHandler(service ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Get recomputes the summary from the caller's current task rows.
//
// @Summary      Task analytics for the caller
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.AnalyticsSummary
// @Failure      401  {object}  map[string]string
// @Router       /analytics [get]
func (h *AnalyticsHandler) Get(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	summary, err := h.service.Summarize(c.Request().Context(), ownerID, time.Now().UTC())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, summary)
}

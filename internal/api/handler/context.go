package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the authenticated user id injected by the Auth
// middleware. A zero id means the middleware did not run, so reject with
// 401 before touching any service.
func ctxUserID(c echo.Context) (uint, error) {
	userID, _ := c.Get("user_id").(uint)
	if userID == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}

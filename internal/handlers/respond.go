package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shotfolio/shotfolio-api/internal/apperr"
	"github.com/shotfolio/shotfolio-api/internal/authz"
)

// respond writes the success envelope shared by every endpoint.
func respond(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, echo.Map{"success": true, "data": data})
}

// httpError maps an application error onto the HTTP status its kind calls
// for. Unexpected errors keep their detail server-side; clients get a
// generic message.
func httpError(err error) *echo.HTTPError {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		return echo.NewHTTPError(status, "Internal server error").SetInternal(err)
	}
	return echo.NewHTTPError(status, err.Error())
}

// currentAuth pulls the verified identity off the context.
func currentAuth(c echo.Context) (authz.AuthContext, error) {
	auth, ok := authz.FromContext(c)
	if !ok {
		return authz.AuthContext{}, echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	return auth, nil
}

// pagination parses skip/limit query params with a bounded default.
func pagination(c echo.Context) (skip, limit int64) {
	skip, _ = strconv.ParseInt(c.QueryParam("skip"), 10, 64)
	limit, _ = strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return skip, limit
}

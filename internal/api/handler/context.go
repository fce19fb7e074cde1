package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bizhub/business-backend/internal/api/middleware"
)

// ctxClaims extracts the claims injected by the Auth middleware. A missing
// role means the middleware never ran for this route; reject instead of
// trusting an empty identity.
func ctxClaims(c echo.Context) (subjectID, role string, err error) {
	role, _ = c.Get(middleware.CtxRole).(string)
	if role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	subjectID, _ = c.Get(middleware.CtxSubjectID).(string)
	return subjectID, role, nil
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bizhub/business-backend/internal/api/metrics"
)

// RBAC enforces role-based access control by exact set membership. It must
// run after Auth; when the role claim is absent the request is forbidden
// rather than a panic.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if _, ok := allowed[role]; !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bizhub/business-backend/internal/api/metrics"
	"github.com/bizhub/business-backend/internal/core/auth"
)

// Context keys set by Auth for downstream handlers and RBAC.
const (
	CtxSubjectID = "subject_id"
	CtxRole      = "role"
)

// Auth validates the bearer token and injects the verified claims into the
// echo context. A missing header means the caller never authenticated; a
// present but unverifiable token (bad signature, malformed, expired) is an
// invalid-credentials rejection. Both map to 401.
func Auth(issuer *auth.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("malformed_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
			}

			claims, err := issuer.Verify(parts[1])
			if err != nil {
				reason := "invalid_token"
				if err == auth.ErrTokenExpired {
					reason = "expired_token"
				}
				metrics.AuthRejectionsTotal.WithLabelValues(reason).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
			}

			c.Set(CtxSubjectID, claims.SubjectID)
			c.Set(CtxRole, claims.Role)

			return next(c)
		}
	}
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole returns a middleware that enforces that the authenticated
// caller holds one of the given roles. It assumes Authenticate has already
// stored the role in the context; a missing, mistyped or unrecognized role
// falls through to 403 rather than erroring, so accounts carrying a role
// value outside the known set simply have no permissions.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(CtxRole).(string)
			if !ok || !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{
					"error": "you do not have permission to perform this action",
				})
			}
			return next(c)
		}
	}
}

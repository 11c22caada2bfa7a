package middleware // middleware provides shared request processing for handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rocgym/job-board/internal/model"
	"github.com/rocgym/job-board/internal/repository"
	"github.com/rocgym/job-board/internal/utils"
)

// Context keys under which the resolved identity is stored for handlers.
const (
	CtxAccountID = "account_id"
	CtxRole      = "role"
)

// AccountLookup is the slice of the account store the authentication
// middleware needs. *repository.AccountRepo satisfies it; tests inject an
// in-memory fake.
type AccountLookup interface {
	GetByID(ctx context.Context, id uint64) (model.Account, error)
}

// Authenticate returns an Echo middleware that resolves the caller's
// identity from a Bearer access token. The four failure modes are reported
// distinctly: missing token, expired token, malformed token, and a token
// whose subject account no longer exists. On success the account id and
// the role claim are stored in the request context; the role is taken from
// the token, not from the current account row, so a role change only takes
// effect at the next login.
func Authenticate(secret string, accounts AccountLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "token is missing"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				if errors.Is(err, utils.ErrTokenExpired) {
					return c.JSON(http.StatusUnauthorized, echo.Map{"error": "token has expired"})
				}
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "token is invalid"})
			}

			// The account must still exist even though the role claim is
			// trusted as-is; a deleted account invalidates its tokens.
			if _, err := accounts.GetByID(c.Request().Context(), claims.AccountID); err != nil {
				if errors.Is(err, repository.ErrAccountNotFound) {
					return c.JSON(http.StatusUnauthorized, echo.Map{"error": "account not found"})
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "account lookup failed"})
			}

			c.Set(CtxAccountID, claims.AccountID)
			c.Set(CtxRole, claims.Role)
			return next(c)
		}
	}
}

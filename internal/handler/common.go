// Package handler contains the HTTP handlers for the job board API.
// Handlers depend on narrow store interfaces rather than concrete
// repositories so every operation can be exercised against in-memory
// fakes; the MySQL repositories satisfy these interfaces at startup.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rocgym/job-board/internal/middleware"
	"github.com/rocgym/job-board/internal/model"
	"github.com/rocgym/job-board/internal/repository"
)

// AccountStore is the identity persistence surface used by auth handlers.
type AccountStore interface {
	Create(ctx context.Context, email, password, role string, cost int) (uint64, error)
	GetByEmail(ctx context.Context, email string) (model.Account, error)
	GetByID(ctx context.Context, id uint64) (model.Account, error)
}

// JobStore is the job persistence surface used by job handlers.
type JobStore interface {
	Create(ctx context.Context, j *model.Job) error
	GetByID(ctx context.Context, id uint64) (*model.Job, error)
	IncrementViewsAndGet(ctx context.Context, id uint64) (*model.Job, error)
	List(ctx context.Context, f repository.JobFilter) ([]*model.Job, error)
	Update(ctx context.Context, id uint64, changes map[string]any) error
	Delete(ctx context.Context, id uint64) error
	IDsByOwner(ctx context.Context, ownerID uint64) ([]uint64, error)
}

// ApplicationStore is the application persistence surface.
type ApplicationStore interface {
	Create(ctx context.Context, a *model.Application) error
	Exists(ctx context.Context, jobID, applicantID uint64) (bool, error)
	ListByJob(ctx context.Context, jobID uint64) ([]*model.Application, error)
	ListByApplicant(ctx context.Context, applicantID uint64) ([]*model.Application, error)
	ListAll(ctx context.Context) ([]*model.Application, error)
	ListByJobIDs(ctx context.Context, jobIDs []uint64) ([]*model.Application, error)
}

// MemberStore exposes the read-only gym membership records.
type MemberStore interface {
	ListAll(ctx context.Context) ([]*model.Member, error)
}

// accountID extracts the authenticated account id stored by the
// authentication middleware.
func accountID(c echo.Context) (uint64, error) {
	switch t := c.Get(middleware.CtxAccountID).(type) {
	case uint64:
		return t, nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	}
	return 0, errors.New("invalid account_id in context")
}

// role extracts the authenticated role stored by the middleware. An empty
// string means no recognizable role; callers treat that as no permissions.
func role(c echo.Context) string {
	r, _ := c.Get(middleware.CtxRole).(string)
	return r
}

// parseJobID parses the :id path segment. A malformed id is a validation
// failure distinct from a well-formed id that matches no row.
func parseJobID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid job id format")
	}
	return id, nil
}

// jobIDError is the uniform 400 response for malformed job identifiers.
func jobIDError(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid job id format"})
}

package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// HealthHandler reports service liveness. A storage failure degrades the
// status instead of crashing the process.
type HealthHandler struct {
	DB    *sql.DB
	Redis *redis.Client // nil when rate limiting is disabled
}

func NewHealthHandler(db *sql.DB, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{DB: db, Redis: rdb}
}

// Health handles GET /health: pings the database and reports 200/503.
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	cache := "disabled"
	if h.Redis != nil {
		cache = "connected"
		if err := h.Redis.Ping(ctx).Err(); err != nil {
			cache = "disconnected"
		}
	}

	if err := h.DB.PingContext(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"status":    "unhealthy",
			"database":  "disconnected",
			"cache":     cache,
			"error":     err.Error(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "healthy",
		"database":  "connected",
		"cache":     cache,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Home handles GET /: a small API index for humans poking at the service.
func Home(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "ROC Gym - Job Listing and Employee Management API",
		"company": "ROC Gym",
		"version": "1.0.0",
		"endpoints": echo.Map{
			"health": "/health",
			"auth": echo.Map{
				"register": "/auth/register",
				"login":    "/auth/login",
				"logout":   "/auth/logout",
			},
			"jobs": echo.Map{
				"list":         "/jobs",
				"get":          "/jobs/:id",
				"create":       "/jobs (POST, admin/recruiter)",
				"update":       "/jobs/:id (PUT, admin/recruiter)",
				"delete":       "/jobs/:id (DELETE, admin/recruiter)",
				"apply":        "/jobs/:id/apply (POST, user)",
				"applications": "/jobs/:id/applications (GET, admin/recruiter)",
			},
			"applications": echo.Map{
				"my_applications": "/applications (GET, authenticated)",
			},
			"members": echo.Map{
				"list": "/members (GET, admin)",
			},
		},
	})
}

// Package router wires HTTP routes to handlers and middleware. The route
// table is the single place where the authentication and role gates are
// composed, and authentication always precedes the role check.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/rocgym/job-board/internal/handler"
	"github.com/rocgym/job-board/internal/middleware"
	"github.com/rocgym/job-board/internal/model"
)

// Deps carries everything the route table needs.
type Deps struct {
	Auth         *handler.AuthHandler
	Jobs         *handler.JobHandler
	Applications *handler.ApplicationHandler
	Members      *handler.MemberHandler
	Health       *handler.HealthHandler
	Accounts     middleware.AccountLookup
	JWTSecret    string
	RateLimiter  echo.MiddlewareFunc // applied to credential endpoints, may be pass-through
}

// Register attaches all routes to the Echo instance.
func Register(e *echo.Echo, d Deps) {
	authn := middleware.Authenticate(d.JWTSecret, d.Accounts)
	staffOnly := middleware.RequireRole(model.RoleAdmin, model.RoleRecruiter)
	userOnly := middleware.RequireRole(model.RoleUser)
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	// Public surface: index, health, job browsing. Job browsing needs no
	// credentials at all; the detail fetch still bumps the view counter.
	e.GET("/", handler.Home)
	e.GET("/health", d.Health.Health)
	e.GET("/jobs", d.Jobs.List)
	e.GET("/jobs/:id", d.Jobs.Get)

	// Credential endpoints, rate limited against brute force.
	auth := e.Group("/auth")
	auth.Use(d.RateLimiter)
	auth.POST("/register", d.Auth.Register)
	auth.POST("/login", d.Auth.Login)
	auth.POST("/logout", d.Auth.Logout, authn)

	e.GET("/me", d.Auth.Me, authn)

	// Job lifecycle: create/update/delete restricted to staff roles, with
	// per-resource ownership enforced inside the handlers.
	e.POST("/jobs", d.Jobs.Create, authn, staffOnly)
	e.PUT("/jobs/:id", d.Jobs.Update, authn, staffOnly)
	e.DELETE("/jobs/:id", d.Jobs.Delete, authn, staffOnly)
	e.GET("/jobs/:id/applications", d.Jobs.ListApplications, authn, staffOnly)

	// Applying is for the user role exclusively; staff accounts are barred
	// before any job lookup happens.
	e.POST("/jobs/:id/apply", d.Applications.Apply, authn, userOnly)

	// Any authenticated role may list "their" applications; the handler
	// scopes visibility per role.
	e.GET("/applications", d.Applications.ListMine, authn)

	// Gym membership records are admin-only.
	e.GET("/members", d.Members.List, authn, adminOnly)
}

package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rocgym/job-board/internal/model"
	"github.com/rocgym/job-board/internal/repository"
)

// ApplicationHandler bundles the stores needed by application endpoints.
type ApplicationHandler struct {
	Jobs         JobStore
	Applications ApplicationStore
}

func NewApplicationHandler(jobs JobStore, applications ApplicationStore) *ApplicationHandler {
	return &ApplicationHandler{Jobs: jobs, Applications: applications}
}

type applyReq struct {
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	ResumeURL      string `json:"resume_url"` // URL or file path
	CoverLetter    string `json:"cover_letter"`
	AdditionalInfo string `json:"additional_info"`
}

// Apply handles POST /jobs/:id/apply. Only the user role reaches this
// handler (the role gate runs as middleware, before any resource lookup).
// The check order is fixed: id parse, job existence, duplicate submission,
// required fields, insert. Reordering it would change which error a caller
// sees when several conditions hold at once.
func (h *ApplicationHandler) Apply(c echo.Context) error {
	uid, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	jobID, err := parseJobID(c)
	if err != nil {
		return jobIDError(c)
	}

	if _, err := h.Jobs.GetByID(c.Request().Context(), jobID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "job not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	exists, err := h.Applications.Exists(c.Request().Context(), jobID, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if exists {
		return c.JSON(http.StatusConflict, echo.Map{"error": "you have already applied for this job"})
	}

	var req applyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.ResumeURL) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "missing required fields: full_name, email, resume_url",
		})
	}

	app := &model.Application{
		JobID:          jobID,
		ApplicantID:    uid,
		FullName:       req.FullName,
		Email:          req.Email,
		ResumeURL:      req.ResumeURL,
		CoverLetter:    req.CoverLetter,
		AdditionalInfo: req.AdditionalInfo,
	}
	if err := h.Applications.Create(c.Request().Context(), app); err != nil {
		// Concurrent duplicate submissions land here via the unique index.
		if errors.Is(err, repository.ErrDuplicateApplication) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "you have already applied for this job"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not submit application"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":     "application submitted successfully",
		"application": app,
	})
}

// ListMine handles GET /applications for any authenticated caller, scoped
// by role: users see their own submissions, admins see everything, and
// recruiters see applications against jobs they posted. An account whose
// stored role is outside the known set gets an empty list, not an error.
func (h *ApplicationHandler) ListMine(c echo.Context) error {
	uid, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var apps []*model.Application
	switch role(c) {
	case model.RoleUser:
		apps, err = h.Applications.ListByApplicant(c.Request().Context(), uid)
	case model.RoleAdmin:
		apps, err = h.Applications.ListAll(c.Request().Context())
	case model.RoleRecruiter:
		var jobIDs []uint64
		jobIDs, err = h.Jobs.IDsByOwner(c.Request().Context(), uid)
		if err == nil {
			apps, err = h.Applications.ListByJobIDs(c.Request().Context(), jobIDs)
		}
	default:
		apps = []*model.Application{}
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if apps == nil {
		apps = []*model.Application{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"applications": apps,
		"count":        len(apps),
	})
}

package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rocgym/job-board/internal/model"
	"github.com/rocgym/job-board/internal/repository"
)

// JobHandler bundles the stores needed by the job posting endpoints.
type JobHandler struct {
	Jobs         JobStore
	Applications ApplicationStore
}

func NewJobHandler(jobs JobStore, applications ApplicationStore) *JobHandler {
	return &JobHandler{Jobs: jobs, Applications: applications}
}

type createJobReq struct {
	CompanyName  string `json:"company_name"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	WorkType     string `json:"work_type"`
	SalaryRange  string `json:"salary_range"`
	Requirements string `json:"requirements"`
}

// updateJobReq carries a partial field set; nil means "leave unchanged".
type updateJobReq struct {
	CompanyName  *string `json:"company_name"`
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Location     *string `json:"location"`
	WorkType     *string `json:"work_type"`
	SalaryRange  *string `json:"salary_range"`
	Requirements *string `json:"requirements"`
}

// canModify applies the ownership gate for update/delete/view-applications:
// admins act on any job, recruiters only on jobs they posted. The role gate
// (admin|recruiter) has already run as middleware.
func canModify(roleName string, callerID uint64, job *model.Job) bool {
	if roleName == model.RoleAdmin {
		return true
	}
	return job.PostedBy == callerID
}

// Create handles POST /jobs (admin/recruiter only).
func (h *JobHandler) Create(c echo.Context) error {
	uid, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createJobReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" ||
		strings.TrimSpace(req.Location) == "" || strings.TrimSpace(req.WorkType) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing required job fields"})
	}
	if req.CompanyName == "" {
		req.CompanyName = model.DefaultCompanyName
	}

	job := &model.Job{
		CompanyName:  req.CompanyName,
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		WorkType:     req.WorkType,
		SalaryRange:  req.SalaryRange,
		Requirements: req.Requirements,
		PostedBy:     uid,
	}
	if err := h.Jobs.Create(c.Request().Context(), job); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create job"})
	}
	return c.JSON(http.StatusCreated, job)
}

// List handles GET /jobs, a public listing with optional filters: title
// and location match as case-insensitive substrings, work_type exactly.
func (h *JobHandler) List(c echo.Context) error {
	f := repository.JobFilter{
		Title:    strings.TrimSpace(c.QueryParam("title")),
		Location: strings.TrimSpace(c.QueryParam("location")),
		WorkType: strings.TrimSpace(c.QueryParam("work_type")),
	}
	jobs, err := h.Jobs.List(c.Request().Context(), f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, jobs)
}

// Get handles GET /jobs/:id. Every successful fetch bumps the view counter
// atomically and returns the post-increment document.
func (h *JobHandler) Get(c echo.Context) error {
	id, err := parseJobID(c)
	if err != nil {
		return jobIDError(c)
	}
	job, err := h.Jobs.IncrementViewsAndGet(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "job not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, job)
}

// Update handles PUT /jobs/:id. The body is merged into the existing job;
// updated_by/updated_at are stamped even when no business field changes,
// in which case the call still succeeds with a "no changes" acknowledgement.
func (h *JobHandler) Update(c echo.Context) error {
	uid, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := parseJobID(c)
	if err != nil {
		return jobIDError(c)
	}
	var req updateJobReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	job, err := h.Jobs.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "job not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !canModify(role(c), uid, job) {
		return c.JSON(http.StatusForbidden, echo.Map{
			"error": "permission denied: you can only update jobs you have posted",
		})
	}

	// Collect only the fields that actually differ. posted_by is never
	// touched: ownership is immutable.
	changes := map[string]any{}
	apply := func(col string, val *string, cur string) {
		if val != nil && *val != cur {
			changes[col] = *val
		}
	}
	apply("company_name", req.CompanyName, job.CompanyName)
	apply("title", req.Title, job.Title)
	apply("description", req.Description, job.Description)
	apply("location", req.Location, job.Location)
	apply("work_type", req.WorkType, job.WorkType)
	apply("salary_range", req.SalaryRange, job.SalaryRange)
	apply("requirements", req.Requirements, job.Requirements)
	changed := len(changes) > 0

	changes["updated_by"] = uid
	changes["updated_at"] = time.Now().UTC()
	if err := h.Jobs.Update(c.Request().Context(), id, changes); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	if !changed {
		return c.JSON(http.StatusOK, echo.Map{"message": "no changes made"})
	}

	updated, err := h.Jobs.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /jobs/:id under the same ownership rule as Update.
func (h *JobHandler) Delete(c echo.Context) error {
	uid, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := parseJobID(c)
	if err != nil {
		return jobIDError(c)
	}
	job, err := h.Jobs.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "job not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !canModify(role(c), uid, job) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "permission denied"})
	}
	if err := h.Jobs.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "job not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "job deleted successfully"})
}

// ListApplications handles GET /jobs/:id/applications (admin/recruiter,
// recruiters only for their own postings).
func (h *JobHandler) ListApplications(c echo.Context) error {
	uid, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := parseJobID(c)
	if err != nil {
		return jobIDError(c)
	}
	job, err := h.Jobs.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "job not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !canModify(role(c), uid, job) {
		return c.JSON(http.StatusForbidden, echo.Map{
			"error": "permission denied: you can only view applications for jobs you have posted",
		})
	}

	apps, err := h.Applications.ListByJob(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"job_id":       id,
		"applications": apps,
		"count":        len(apps),
	})
}

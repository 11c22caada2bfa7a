package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocgym/job-board/internal/middleware"
	"github.com/rocgym/job-board/internal/model"
)

func newApplicationFixture() (*ApplicationHandler, *JobHandler, *fakeJobs, *fakeApplications) {
	jobs := newFakeJobs()
	apps := newFakeApplications()
	return NewApplicationHandler(jobs, apps), NewJobHandler(jobs, apps), jobs, apps
}

const validApplyBody = `{"full_name":"Jo Doe","email":"jo@x.com","resume_url":"https://cv.example/jo"}`

func apply(t *testing.T, h *ApplicationHandler, uid uint64, jobID, body string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	c, rec := newTestCtx(t, http.MethodPost, "/jobs/"+jobID+"/apply", body)
	asIdentity(c, uid, model.RoleUser)
	withJobID(c, jobID)
	require.NoError(t, h.Apply(c))
	return rec, c
}

func TestApplySuccess(t *testing.T) {
	h, jh, _, _ := newApplicationFixture()
	id := createJob(t, jh, 1, model.RoleRecruiter, validJobBody)

	rec, _ := apply(t, h, 50, fmt.Sprint(id), validApplyBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	app, ok := body["application"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, model.StatusPending, app["status"])
	assert.EqualValues(t, 50, app["applicant_id"])
	assert.EqualValues(t, id, app["job_id"])
}

func TestApplyTwiceConflicts(t *testing.T) {
	h, jh, _, _ := newApplicationFixture()
	id := createJob(t, jh, 1, model.RoleRecruiter, validJobBody)

	rec, _ := apply(t, h, 50, fmt.Sprint(id), validApplyBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = apply(t, h, 50, fmt.Sprint(id), validApplyBody)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already applied")

	// A different user is unaffected.
	rec, _ = apply(t, h, 51, fmt.Sprint(id), validApplyBody)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestApplyJobNotFound(t *testing.T) {
	h, _, _, _ := newApplicationFixture()
	rec, _ := apply(t, h, 50, "777", validApplyBody)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApplyMalformedJobID(t *testing.T) {
	h, _, _, _ := newApplicationFixture()
	rec, _ := apply(t, h, 50, "not-an-id", validApplyBody)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid job id")
}

func TestApplyMissingFields(t *testing.T) {
	h, jh, _, _ := newApplicationFixture()
	id := createJob(t, jh, 1, model.RoleRecruiter, validJobBody)

	for _, body := range []string{
		`{}`,
		`{"full_name":"Jo Doe"}`,
		`{"full_name":"Jo Doe","email":"jo@x.com"}`,
		`{"email":"jo@x.com","resume_url":"cv"}`,
	} {
		rec, _ := apply(t, h, 50, fmt.Sprint(id), body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body=%s", body)
	}
}

func TestApplyCheckOrder(t *testing.T) {
	h, jh, _, _ := newApplicationFixture()
	id := createJob(t, jh, 1, model.RoleRecruiter, validJobBody)

	// Absent job beats missing fields.
	rec, _ := apply(t, h, 50, "777", `{}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Duplicate beats missing fields.
	rec, _ = apply(t, h, 50, fmt.Sprint(id), validApplyBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, _ = apply(t, h, 50, fmt.Sprint(id), `{}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestApplyRoleGateBarsStaff(t *testing.T) {
	// Composed exactly as in the route table: the role gate runs before
	// the handler, so staff are rejected regardless of job existence.
	h, _, _, _ := newApplicationFixture()
	gated := middleware.RequireRole(model.RoleUser)(h.Apply)

	for _, r := range []string{model.RoleAdmin, model.RoleRecruiter, "superuser"} {
		c, rec := newTestCtx(t, http.MethodPost, "/jobs/777/apply", validApplyBody)
		asIdentity(c, 2, r)
		withJobID(c, "777")
		require.NoError(t, gated(c))
		assert.Equal(t, http.StatusForbidden, rec.Code, "role=%s", r)
	}
}

func TestListMineUserScope(t *testing.T) {
	h, jh, _, _ := newApplicationFixture()
	id := createJob(t, jh, 1, model.RoleRecruiter, validJobBody)

	rec, _ := apply(t, h, 50, fmt.Sprint(id), validApplyBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	// The applicant sees exactly their record.
	c, rec2 := newTestCtx(t, http.MethodGet, "/applications", "")
	asIdentity(c, 50, model.RoleUser)
	require.NoError(t, h.ListMine(c))
	require.Equal(t, http.StatusOK, rec2.Code)
	assert.EqualValues(t, 1, decodeBody(t, rec2)["count"])

	// A different user sees nothing.
	c, rec2 = newTestCtx(t, http.MethodGet, "/applications", "")
	asIdentity(c, 51, model.RoleUser)
	require.NoError(t, h.ListMine(c))
	require.Equal(t, http.StatusOK, rec2.Code)
	assert.EqualValues(t, 0, decodeBody(t, rec2)["count"])
}

func TestListMineAdminSeesAll(t *testing.T) {
	h, jh, _, _ := newApplicationFixture()
	j1 := createJob(t, jh, 1, model.RoleRecruiter, validJobBody)
	j2 := createJob(t, jh, 2, model.RoleRecruiter, validJobBody)

	rec, _ := apply(t, h, 50, fmt.Sprint(j1), validApplyBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, _ = apply(t, h, 51, fmt.Sprint(j2), validApplyBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec2 := newTestCtx(t, http.MethodGet, "/applications", "")
	asIdentity(c, 99, model.RoleAdmin)
	require.NoError(t, h.ListMine(c))
	assert.EqualValues(t, 2, decodeBody(t, rec2)["count"])
}

func TestListMineRecruiterScopedToOwnJobs(t *testing.T) {
	h, jh, _, _ := newApplicationFixture()
	mine := createJob(t, jh, 10, model.RoleRecruiter, validJobBody)
	theirs := createJob(t, jh, 11, model.RoleRecruiter, validJobBody)

	rec, _ := apply(t, h, 50, fmt.Sprint(mine), validApplyBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, _ = apply(t, h, 51, fmt.Sprint(theirs), validApplyBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec2 := newTestCtx(t, http.MethodGet, "/applications", "")
	asIdentity(c, 10, model.RoleRecruiter)
	require.NoError(t, h.ListMine(c))
	require.Equal(t, http.StatusOK, rec2.Code)

	body := decodeBody(t, rec2)
	assert.EqualValues(t, 1, body["count"])
	apps := body["applications"].([]any)
	require.Len(t, apps, 1)
	assert.EqualValues(t, mine, apps[0].(map[string]any)["job_id"])
}

func TestListMineRecruiterWithoutJobsEmpty(t *testing.T) {
	h, _, _, _ := newApplicationFixture()
	c, rec := newTestCtx(t, http.MethodGet, "/applications", "")
	asIdentity(c, 12, model.RoleRecruiter)
	require.NoError(t, h.ListMine(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 0, decodeBody(t, rec)["count"])
}

func TestListMineUnrecognizedRoleEmptyNotError(t *testing.T) {
	// An account whose stored role is outside the known set still resolves:
	// empty list, HTTP 200.
	h, jh, _, _ := newApplicationFixture()
	id := createJob(t, jh, 1, model.RoleRecruiter, validJobBody)
	rec, _ := apply(t, h, 50, fmt.Sprint(id), validApplyBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec2 := newTestCtx(t, http.MethodGet, "/applications", "")
	asIdentity(c, 60, "superuser")
	require.NoError(t, h.ListMine(c))
	require.Equal(t, http.StatusOK, rec2.Code)
	assert.EqualValues(t, 0, decodeBody(t, rec2)["count"])
}

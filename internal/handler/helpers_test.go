package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/rocgym/job-board/internal/middleware"
)

// newTestCtx builds an echo context carrying an optional JSON body. The
// returned recorder captures the handler's response.
func newTestCtx(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req = httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// asIdentity simulates the authentication middleware having resolved the
// given identity.
func asIdentity(c echo.Context, id uint64, role string) {
	c.Set(middleware.CtxAccountID, id)
	c.Set(middleware.CtxRole, role)
}

// withJobID sets the :id path parameter.
func withJobID(c echo.Context, id string) {
	c.SetParamNames("id")
	c.SetParamValues(id)
}

// decodeBody unmarshals the recorded JSON response into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

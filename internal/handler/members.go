package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MemberHandler exposes the read-only gym membership records to admins.
type MemberHandler struct {
	Members MemberStore
}

func NewMemberHandler(members MemberStore) *MemberHandler {
	return &MemberHandler{Members: members}
}

// List handles GET /members (admin only, enforced by route middleware).
func (h *MemberHandler) List(c echo.Context) error {
	members, err := h.Members.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"members": members,
		"count":   len(members),
	})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the token-gated informational endpoints: the
// caller's own profile plus the admin and company views.
type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

type profileResponse struct {
	SubjectID string `json:"subject_id"`
	Role      string `json:"role"`
}

// Profile returns the identity asserted by the caller's token.
//
// @Summary      Current caller profile
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]string
// @Router       /profile [get]
func (h *DashboardHandler) Profile(c echo.Context) error {
	subjectID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{SubjectID: subjectID, Role: role})
}

// AdminDashboard is visible to administrators only.
//
// @Summary      Admin dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin-dashboard [get]
func (h *DashboardHandler) AdminDashboard(c echo.Context) error {
	subjectID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "welcome to the admin dashboard",
		"user":    profileResponse{SubjectID: subjectID, Role: role},
	})
}

// CompanyData is visible to administrators and organization members.
//
// @Summary      Company data
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /company-data [get]
func (h *DashboardHandler) CompanyData(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"data": "confidential company data",
	})
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberpro/internal/httpresp"
	"github.com/BruksfildServices01/barberpro/internal/middleware"
	ucTenant "github.com/BruksfildServices01/barberpro/internal/usecase/tenant"
)

// ======================================================
// HANDLER (rotas /api/admin)
// ======================================================

type AdminHandler struct {
	list     *ucTenant.ListTenants
	create   *ucTenant.CreateTenant
	update   *ucTenant.UpdateTenant
	finance  *ucTenant.GlobalFinance
	overview *ucTenant.GetOverview
}

func NewAdminHandler(
	list *ucTenant.ListTenants,
	create *ucTenant.CreateTenant,
	update *ucTenant.UpdateTenant,
	finance *ucTenant.GlobalFinance,
	overview *ucTenant.GetOverview,
) *AdminHandler {
	return &AdminHandler{
		list:     list,
		create:   create,
		update:   update,
		finance:  finance,
		overview: overview,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateTenantRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Plan     string `json:"plan"`
}

type UpdateTenantRequest struct {
	Plan   *string `json:"plan,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// ======================================================
// TENANTS
// ======================================================

func (h *AdminHandler) ListTenants(c *gin.Context) {
	list, err := h.list.Execute(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *AdminHandler) CreateTenant(c *gin.Context) {
	var req CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	out, err := h.create.Execute(c.Request.Context(), middleware.CurrentSession(c), ucTenant.CreateTenantInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Plan:     req.Plan,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Created(c, out)
}

func (h *AdminHandler) UpdateTenant(c *gin.Context) {
	var req UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	out, err := h.update.Execute(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"), ucTenant.UpdateTenantInput{
		Plan:   req.Plan,
		Active: req.Active,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, out)
}

// ======================================================
// FINANCE
// ======================================================

func (h *AdminHandler) Finance(c *gin.Context) {
	out, err := h.finance.Execute(c.Request.Context(), middleware.CurrentSession(c), c.Query("month"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *AdminHandler) Overview(c *gin.Context) {
	out, err := h.overview.Execute(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, out)
}

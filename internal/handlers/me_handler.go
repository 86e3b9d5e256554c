package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberpro/internal/dto"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/middleware"
	"github.com/BruksfildServices01/barberpro/internal/models"
	ucDashboard "github.com/BruksfildServices01/barberpro/internal/usecase/dashboard"
)

type TenantFinder interface {
	FindTenant(ctx context.Context, id string) (models.Tenant, bool, error)
}

type MeHandler struct {
	tenants   TenantFinder
	dashboard *ucDashboard.GetDashboard
}

func NewMeHandler(tenants TenantFinder, dashboard *ucDashboard.GetDashboard) *MeHandler {
	return &MeHandler{tenants: tenants, dashboard: dashboard}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	tenant, ok, err := h.tenants.FindTenant(c.Request.Context(), sess.TenantID)
	if err != nil {
		writeError(c, err)
		return
	}
	if !ok {
		httperr.NotFound(c, "tenant_not_found", "Barbearia não encontrada.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tenant": dto.NewTenantDTO(tenant),
		"session": gin.H{
			"id":         sess.ID,
			"is_admin":   sess.IsAdmin,
			"expires_at": sess.ExpiresAt,
		},
	})
}

func (h *MeHandler) Dashboard(c *gin.Context) {
	out, err := h.dashboard.Execute(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

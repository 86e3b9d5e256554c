package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberpro/internal/dto"
	"github.com/BruksfildServices01/barberpro/internal/middleware"
	"github.com/BruksfildServices01/barberpro/internal/session"
	ucAuth "github.com/BruksfildServices01/barberpro/internal/usecase/auth"
)

type AuthHandler struct {
	authenticate *ucAuth.Authenticate
	logout       *ucAuth.Logout
	tokens       *session.TokenIssuer
}

func NewAuthHandler(
	authenticate *ucAuth.Authenticate,
	logout *ucAuth.Logout,
	tokens *session.TokenIssuer,
) *AuthHandler {
	return &AuthHandler{
		authenticate: authenticate,
		logout:       logout,
		tokens:       tokens,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	sess, tenant, err := h.authenticate.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := h.tokens.Issue(sess)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_at": sess.ExpiresAt,
		"is_admin":   sess.IsAdmin,
		"tenant":     dto.NewTenantDTO(tenant),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.logout.Execute(c.Request.Context(), middleware.CurrentSession(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

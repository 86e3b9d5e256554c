package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/session"
)

const ContextSession = "session"

// AuthMiddleware valida o token e confere se a sessão ainda existe (logout
// ou expiração derrubam o token na hora).
func AuthMiddleware(tokens *session.TokenIssuer, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Token ausente.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Cabeçalho de autorização inválido.")
			c.Abort()
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Token inválido.")
			c.Abort()
			return
		}

		sess, err := sessions.Get(c.Request.Context(), claims.SessionID)
		if errors.Is(err, session.ErrNotFound) {
			httperr.Unauthorized(c, "session_expired", "Sessão encerrada. Faça login novamente.")
			c.Abort()
			return
		}
		if err != nil {
			_ = c.Error(err)
			httperr.Internal(c, "session_error", "Erro ao validar sessão.")
			c.Abort()
			return
		}

		if sess.TenantID != claims.TenantID {
			httperr.Unauthorized(c, "invalid_token", "Token inválido.")
			c.Abort()
			return
		}

		c.Set(ContextSession, sess)
		c.Next()
	}
}

func CurrentSession(c *gin.Context) session.Session {
	return c.MustGet(ContextSession).(session.Session)
}

// RequireAdmin libera só sessões de plano admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentSession(c).IsAdmin {
			httperr.Forbidden(c, "forbidden", "Acesso restrito ao administrador.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireShop barra o admin nas telas de barbearia; ele usa /api/admin.
func RequireShop() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentSession(c).IsAdmin {
			httperr.Forbidden(c, "shop_only", "Área exclusiva das barbearias.")
			c.Abort()
			return
		}
		c.Next()
	}
}

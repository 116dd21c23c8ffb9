package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"smarttaskai/internal/model"
	"smarttaskai/pkg/response"
)

// Auth verifies the bearer token against the auth provider and stores
// the resulting scope on the request context. Verified tokens are
// cached so repeated requests do not hit the provider.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if sc, ok := m.scopes.Get(token); ok {
			setScope(c, sc)
			c.Next()
			return
		}

		user, err := m.auth.GetUser(c.Request.Context(), token)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth GetUser: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc := model.Scope{
			UserID:      user.ID,
			Email:       user.Email,
			AccessToken: token,
		}
		m.scopes.Add(token, sc)
		setScope(c, sc)
		c.Next()
	}
}

// SignOut revokes the session with the auth provider and drops the
// cached scope so the token stops working immediately.
//
// SignOut godoc
// @Summary     Sign out
// @Description Revokes the current session token.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/signout [POST]
func (m Middleware) SignOut(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		response.Unauthorized(c)
		return
	}

	if err := m.auth.SignOut(c.Request.Context(), token); err != nil {
		m.l.Warnf(c.Request.Context(), "middleware.SignOut: %v", err)
	}
	m.scopes.Remove(token)

	response.OK(c, nil)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

package middleware

import (
	"github.com/gin-gonic/gin"

	"smarttaskai/internal/model"
)

const scopeKey = "smarttaskai.scope"

func setScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope returns the authenticated scope stored by Auth, or a zero
// Scope when the request never passed the auth gate.
func GetScope(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, ok := v.(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}

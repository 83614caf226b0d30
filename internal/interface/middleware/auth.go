package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/donorhive/donorhive-server/pkg/helpers"
	"github.com/donorhive/donorhive-server/pkg/response"
)

// Context keys set by the access gate.
const (
	CtxEmailKey = "userEmail"
	CtxNameKey  = "userName"
)

var ErrNoToken = errors.New("missing bearer token")

// Authenticate extracts the bearer token from the Authorization header and
// verifies it. It is a plain capability check with an explicit result, so
// handlers and gates can compose it without relying on middleware ordering.
func Authenticate(c *gin.Context, jwt *helpers.JWTManager) (*helpers.Claims, error) {
	h := c.GetHeader("Authorization")
	if h == "" {
		return nil, ErrNoToken
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return nil, ErrNoToken
	}
	return jwt.Parse(parts[1])
}

// RequireToken aborts with 401 unless a valid token is presented. On success
// the decoded identity is attached to the Gin context for downstream handlers.
func RequireToken(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := Authenticate(c, jwt)
		if err != nil {
			response.AbortMessage(c, http.StatusUnauthorized, "forbidden access")
			return
		}
		c.Set(CtxEmailKey, claims.Email)
		c.Set(CtxNameKey, claims.Name)
		c.Next()
	}
}

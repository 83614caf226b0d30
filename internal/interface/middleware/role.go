package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	repo "github.com/donorhive/donorhive-server/internal/domain/repository"
	"github.com/donorhive/donorhive-server/pkg/response"
)

var ErrNotElevated = errors.New("admin or volunteer role required")

// CheckElevated loads the user record for the given email and permits
// continuation only if the stored role is admin or volunteer. Costs one store
// read.
func CheckElevated(ctx context.Context, users repo.UserRepository, email string) error {
	u, err := users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotElevated
		}
		return err
	}
	if !u.Elevated() {
		return ErrNotElevated
	}
	return nil
}

// RequireElevated composes after RequireToken: it reads the authenticated
// email from the context and gates on the stored role.
func RequireElevated(users repo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(CtxEmailKey)
		if email == "" {
			response.AbortMessage(c, http.StatusUnauthorized, "forbidden access")
			return
		}
		if err := CheckElevated(c.Request.Context(), users, email); err != nil {
			if errors.Is(err, ErrNotElevated) {
				response.AbortMessage(c, http.StatusForbidden, "forbidden access")
				return
			}
			response.ServerError(c, "role lookup failed", err)
			c.Abort()
			return
		}
		c.Next()
	}
}

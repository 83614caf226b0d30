package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/donorhive/donorhive-server/pkg/helpers"
	"github.com/donorhive/donorhive-server/pkg/response"
	"github.com/donorhive/donorhive-server/pkg/validation"
)

// TokenHandler mints the signed identity assertion used by the access gate.
type TokenHandler struct {
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewTokenHandler(jwt *helpers.JWTManager, logger *logrus.Logger) *TokenHandler {
	return &TokenHandler{JWT: jwt, Logger: logger}
}

type tokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// Issue signs a long-lived token for the asserted identity. There is no
// server-side session; the token is the only credential artifact.
func (h *TokenHandler) Issue(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, validation.ToDetails(err))
		return
	}
	token, _, err := h.JWT.Generate(req.Email, req.Name)
	if err != nil {
		helpers.LogError(h.Logger, "token signing failed", err, nil)
		response.ServerError(c, "could not issue token", err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"token": token})
}

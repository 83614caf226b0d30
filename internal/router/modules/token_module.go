package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/donorhive/donorhive-server/internal/container"
	handlers "github.com/donorhive/donorhive-server/internal/interface/http"
	"github.com/donorhive/donorhive-server/internal/interface/middleware"
)

// TokenModule wires the public token mint.
type TokenModule struct {
	Handler *handlers.TokenHandler
}

func NewTokenModule(h *handlers.TokenHandler) *TokenModule {
	return &TokenModule{Handler: h}
}

func (m *TokenModule) Register(rg *gin.RouterGroup) {
	mintLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath())
	rg.POST("/jwt", mintLimiter, m.Handler.Issue)
}

package modules

import (
	"expvar"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/donorhive/donorhive-server/internal/container"
	"github.com/donorhive/donorhive-server/internal/interface/middleware"
)

// HealthModule serves the liveness probe and, when enabled, the expvar dump.
type HealthModule struct {
	DebugVars bool
}

func NewHealthModule(debugVars bool) *HealthModule {
	return &HealthModule{DebugVars: debugVars}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Donor hive server is running")
	})

	if m.DebugVars {
		limiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
		rg.GET("/debug/vars", limiter, gin.WrapH(expvar.Handler()))
	}
}

package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/donorhive/donorhive-server/internal/interface/http"
)

// StatsModule exposes the aggregate counters for the dashboard.
type StatsModule struct {
	Handler *handlers.StatsHandler
}

func NewStatsModule(h *handlers.StatsHandler) *StatsModule {
	return &StatsModule{Handler: h}
}

func (m *StatsModule) Register(rg *gin.RouterGroup) {
	rg.GET("/statistics", m.Handler.Overview)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	statsapp "github.com/donorhive/donorhive-server/internal/application"
	"github.com/donorhive/donorhive-server/pkg/response"
)

type StatsHandler struct {
	Svc    *statsapp.StatsService
	Logger *logrus.Logger
}

func NewStatsHandler(svc *statsapp.StatsService, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{Svc: svc, Logger: logger}
}

// Overview serves the three derived counts, computed fresh on every call.
func (h *StatsHandler) Overview(c *gin.Context) {
	stats, err := h.Svc.Overview(c.Request.Context())
	if err != nil {
		response.ServerError(c, "could not compute statistics", err)
		return
	}
	response.JSON(c, http.StatusOK, stats)
}

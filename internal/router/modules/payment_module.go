package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/donorhive/donorhive-server/internal/container"
	repo "github.com/donorhive/donorhive-server/internal/domain/repository"
	handlers "github.com/donorhive/donorhive-server/internal/interface/http"
	"github.com/donorhive/donorhive-server/internal/interface/middleware"
	"github.com/donorhive/donorhive-server/pkg/helpers"
)

// PaymentModule wires payment intents and funding records.
// Public: POST /create-payment-intent (rate-limited)
// Token:  POST /payments
// Token + elevated role: GET /payments
type PaymentModule struct {
	Handler *handlers.PaymentHandler
	Users   repo.UserRepository
	JWT     *helpers.JWTManager
}

func NewPaymentModule(h *handlers.PaymentHandler, users repo.UserRepository, jwt *helpers.JWTManager) *PaymentModule {
	return &PaymentModule{Handler: h, Users: users, JWT: jwt}
}

func (m *PaymentModule) Register(rg *gin.RouterGroup) {
	intentLimiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByIPAndPath())
	rg.POST("/create-payment-intent", intentLimiter, m.Handler.CreateIntent)

	auth := rg.Group("/")
	auth.Use(middleware.RequireToken(m.JWT))
	{
		auth.POST("/payments", m.Handler.Record)

		elevated := auth.Group("/")
		elevated.Use(middleware.RequireElevated(m.Users))
		{
			elevated.GET("/payments", m.Handler.List)
		}
	}
}

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

// UserModule wires registration, donor search, profile mutation, and the
// admin role surface.
// Public: POST /users, GET /donors, GET /donors/search, GET /user/:email
// Token:  PUT/PATCH /user/:id, POST /user/avatar, GET /user/admin/:email
// Token + elevated role: GET /users, PATCH /user/admin/:id
type UserModule struct {
	Handler *handlers.UserHandler
	Users   repo.UserRepository
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, users repo.UserRepository, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, Users: users, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/users", registerLimiter, m.Handler.Register)
	rg.GET("/donors", m.Handler.Donors)
	rg.GET("/donors/search", m.Handler.DonorsText)
	rg.GET("/user/:email", m.Handler.ByEmail)

	auth := rg.Group("/")
	auth.Use(middleware.RequireToken(m.JWT))
	{
		auth.PUT("/user/:id", m.Handler.Upsert)
		auth.PATCH("/user/:id", m.Handler.Patch)
		auth.POST("/user/avatar", m.Handler.UploadAvatar)
		auth.GET("/user/admin/:email", m.Handler.Role)

		elevated := auth.Group("/")
		elevated.Use(middleware.RequireElevated(m.Users))
		{
			elevated.GET("/users", m.Handler.List)
			elevated.PATCH("/user/admin/:id", m.Handler.PatchRole)
		}
	}
}

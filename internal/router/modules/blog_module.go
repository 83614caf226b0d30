package modules

import (
	"github.com/gin-gonic/gin"

	repo "github.com/donorhive/donorhive-server/internal/domain/repository"
	handlers "github.com/donorhive/donorhive-server/internal/interface/http"
	"github.com/donorhive/donorhive-server/internal/interface/middleware"
	"github.com/donorhive/donorhive-server/pkg/helpers"
)

// BlogModule wires blog content. Reads are public; mutations require the
// admin/volunteer gate.
type BlogModule struct {
	Handler *handlers.BlogHandler
	Users   repo.UserRepository
	JWT     *helpers.JWTManager
}

func NewBlogModule(h *handlers.BlogHandler, users repo.UserRepository, jwt *helpers.JWTManager) *BlogModule {
	return &BlogModule{Handler: h, Users: users, JWT: jwt}
}

func (m *BlogModule) Register(rg *gin.RouterGroup) {
	rg.GET("/blogs", m.Handler.List)
	rg.GET("/all-blogs", m.Handler.Published)
	rg.GET("/blog/:id", m.Handler.Get)

	elevated := rg.Group("/")
	elevated.Use(middleware.RequireToken(m.JWT), middleware.RequireElevated(m.Users))
	{
		elevated.POST("/blog", m.Handler.Create)
		elevated.PATCH("/blog/:id", m.Handler.PatchStatus)
		elevated.DELETE("/blog/:id", m.Handler.Delete)
	}
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	blogapp "github.com/donorhive/donorhive-server/internal/application"
	"github.com/donorhive/donorhive-server/internal/domain/entity"
	repo "github.com/donorhive/donorhive-server/internal/domain/repository"
	"github.com/donorhive/donorhive-server/pkg/response"
	"github.com/donorhive/donorhive-server/pkg/validation"
)

type BlogHandler struct {
	Svc    *blogapp.BlogService
	Logger *logrus.Logger
}

func NewBlogHandler(svc *blogapp.BlogService, logger *logrus.Logger) *BlogHandler {
	return &BlogHandler{Svc: svc, Logger: logger}
}

type blogRequest struct {
	Title     string `json:"title" binding:"required"`
	Thumbnail string `json:"thumbnail" binding:"omitempty,url"`
	Content   string `json:"content" binding:"required"`
	Status    string `json:"status" binding:"omitempty,blogstatus"`
}

type blogStatusRequest struct {
	Status string `json:"status" binding:"required,blogstatus"`
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req blogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, validation.ToDetails(err))
		return
	}
	b := &entity.Blog{
		Title:     req.Title,
		Thumbnail: req.Thumbnail,
		Content:   req.Content,
		Status:    req.Status,
	}
	res, err := h.Svc.Create(c.Request.Context(), b)
	if err != nil {
		response.ServerError(c, "could not create blog", err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

// List returns all posts, optionally narrowed by ?filter=<status>.
func (h *BlogHandler) List(c *gin.Context) {
	blogs, err := h.Svc.List(c.Request.Context(), c.Query("filter"))
	if err != nil {
		response.ServerError(c, "could not list blogs", err)
		return
	}
	response.JSON(c, http.StatusOK, blogs)
}

// Published is the public feed; ?status=published restricts to published
// posts, anything else returns everything.
func (h *BlogHandler) Published(c *gin.Context) {
	status := ""
	if c.Query("status") == entity.BlogPublished {
		status = entity.BlogPublished
	}
	blogs, err := h.Svc.List(c.Request.Context(), status)
	if err != nil {
		response.ServerError(c, "could not list blogs", err)
		return
	}
	response.JSON(c, http.StatusOK, blogs)
}

func (h *BlogHandler) Get(c *gin.Context) {
	b, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeErr(c, err, "could not fetch blog")
		return
	}
	response.JSON(c, http.StatusOK, b)
}

func (h *BlogHandler) PatchStatus(c *gin.Context) {
	var req blogStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Patch(c.Request.Context(), c.Param("id"), map[string]any{"status": req.Status})
	if err != nil {
		h.writeErr(c, err, "could not update blog")
		return
	}
	response.JSON(c, http.StatusOK, res)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	res, err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeErr(c, err, "could not delete blog")
		return
	}
	response.JSON(c, http.StatusOK, res)
}

func (h *BlogHandler) writeErr(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, repo.ErrInvalidID):
		response.Message(c, http.StatusBadRequest, "invalid id")
	case errors.Is(err, blogapp.ErrNotFound):
		response.Message(c, http.StatusNotFound, "blog not found")
	default:
		response.ServerError(c, msg, err)
	}
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/donorhive/donorhive-server/internal/application"
	"github.com/donorhive/donorhive-server/internal/domain/entity"
	repo "github.com/donorhive/donorhive-server/internal/domain/repository"
	"github.com/donorhive/donorhive-server/internal/interface/middleware"
	"github.com/donorhive/donorhive-server/pkg/response"
	"github.com/donorhive/donorhive-server/pkg/validation"
)

type UserHandler struct {
	Svc    *userapp.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	AvatarURL  string `json:"avatarUrl" binding:"omitempty,url"`
	BloodGroup string `json:"bloodGroup" binding:"omitempty,bloodgroup"`
	District   string `json:"district"`
	Upazila    string `json:"upazila"`
	Role       string `json:"role" binding:"omitempty,userrole"`
	Status     string `json:"status" binding:"omitempty,userstatus"`
}

// updateUserRequest is the contract for PUT and PATCH /user/:id. Pointer
// fields distinguish "absent" from "set to empty".
type updateUserRequest struct {
	Name       *string `json:"name"`
	AvatarURL  *string `json:"avatarUrl" binding:"omitempty,url"`
	BloodGroup *string `json:"bloodGroup" binding:"omitempty,bloodgroup"`
	District   *string `json:"district"`
	Upazila    *string `json:"upazila"`
	Role       *string `json:"role" binding:"omitempty,userrole"`
	Status     *string `json:"status" binding:"omitempty,userstatus"`
}

func (r *updateUserRequest) fields() map[string]any {
	out := map[string]any{}
	if r.Name != nil {
		out["name"] = *r.Name
	}
	if r.AvatarURL != nil {
		out["avatarUrl"] = *r.AvatarURL
	}
	if r.BloodGroup != nil {
		out["bloodGroup"] = *r.BloodGroup
	}
	if r.District != nil {
		out["district"] = *r.District
	}
	if r.Upazila != nil {
		out["upazila"] = *r.Upazila
	}
	if r.Role != nil {
		out["role"] = *r.Role
	}
	if r.Status != nil {
		out["status"] = *r.Status
	}
	return out
}

type roleRequest struct {
	Role string `json:"role" binding:"required,userrole"`
}

// Register creates the account unless the email already exists.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, validation.ToDetails(err))
		return
	}
	u := &entity.User{
		Name:       req.Name,
		Email:      req.Email,
		AvatarURL:  req.AvatarURL,
		BloodGroup: req.BloodGroup,
		District:   req.District,
		Upazila:    req.Upazila,
		Role:       req.Role,
		Status:     req.Status,
	}
	res, err := h.Svc.Register(c.Request.Context(), u)
	if err != nil {
		if errors.Is(err, userapp.ErrUserExists) {
			response.JSON(c, http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
			return
		}
		response.ServerError(c, "could not register user", err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

// List returns all users, optionally narrowed by ?filter=<status>.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context(), c.Query("filter"))
	if err != nil {
		response.ServerError(c, "could not list users", err)
		return
	}
	response.JSON(c, http.StatusOK, users)
}

// Donors is the public donor search. All filters are optional and combine
// with AND semantics.
func (h *UserHandler) Donors(c *gin.Context) {
	f := repo.DonorFilter{
		BloodGroup: c.Query("bloodGroup"),
		District:   c.Query("district"),
		Upazila:    c.Query("upozila"),
	}
	donors, err := h.Svc.SearchDonors(c.Request.Context(), f)
	if err != nil {
		response.ServerError(c, "could not search donors", err)
		return
	}
	response.JSON(c, http.StatusOK, donors)
}

// DonorsText is the free-text donor search over the Elasticsearch index.
func (h *UserHandler) DonorsText(c *gin.Context) {
	hits, err := h.Svc.SearchDonorsText(c.Request.Context(), c.Query("q"), 0)
	if err != nil {
		response.ServerError(c, "could not search donors", err)
		return
	}
	response.JSON(c, http.StatusOK, hits)
}

// ByEmail returns the matching users as a list of zero or one records.
func (h *UserHandler) ByEmail(c *gin.Context) {
	users, err := h.Svc.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.ServerError(c, "could not fetch user", err)
		return
	}
	response.JSON(c, http.StatusOK, users)
}

// Upsert is the full replace by id; creates the document if absent.
func (h *UserHandler) Upsert(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Upsert(c.Request.Context(), c.Param("id"), req.fields())
	if err != nil {
		h.writeUpdateErr(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

// Patch merges the given fields into the existing document.
func (h *UserHandler) Patch(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Patch(c.Request.Context(), c.Param("id"), req.fields())
	if err != nil {
		h.writeUpdateErr(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

// PatchRole sets the role on a user (admin surface).
func (h *UserHandler) PatchRole(c *gin.Context) {
	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Patch(c.Request.Context(), c.Param("id"), map[string]any{"role": req.Role})
	if err != nil {
		h.writeUpdateErr(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

// Role returns the caller's own role. Cross-user lookups are rejected.
func (h *UserHandler) Role(c *gin.Context) {
	email := c.Param("email")
	if email != c.GetString(middleware.CtxEmailKey) {
		response.Message(c, http.StatusForbidden, "Unauthorized access")
		return
	}
	role, err := h.Svc.RoleOf(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, userapp.ErrUserNotFound) {
			response.Message(c, http.StatusNotFound, "User not found")
			return
		}
		response.ServerError(c, "Server error", err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"role": role})
}

// UploadAvatar stores a profile image for the authenticated user.
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		response.Message(c, http.StatusBadRequest, "avatar file is required")
		return
	}
	defer func() { _ = file.Close() }()

	email := c.GetString(middleware.CtxEmailKey)
	url, err := h.Svc.UploadAvatar(c.Request.Context(), email, file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, userapp.ErrUserNotFound) {
			response.Message(c, http.StatusNotFound, "User not found")
			return
		}
		response.ServerError(c, "could not upload avatar", err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"avatarUrl": url})
}

func (h *UserHandler) writeUpdateErr(c *gin.Context, err error) {
	if errors.Is(err, repo.ErrInvalidID) {
		response.Message(c, http.StatusBadRequest, "invalid id")
		return
	}
	response.ServerError(c, "could not update user", err)
}

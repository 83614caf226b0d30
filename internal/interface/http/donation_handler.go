package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	donapp "github.com/donorhive/donorhive-server/internal/application"
	"github.com/donorhive/donorhive-server/internal/domain/entity"
	repo "github.com/donorhive/donorhive-server/internal/domain/repository"
	"github.com/donorhive/donorhive-server/pkg/response"
	"github.com/donorhive/donorhive-server/pkg/validation"
)

type DonationHandler struct {
	Svc    *donapp.DonationService
	Logger *logrus.Logger
}

func NewDonationHandler(svc *donapp.DonationService, logger *logrus.Logger) *DonationHandler {
	return &DonationHandler{Svc: svc, Logger: logger}
}

type createRequestBody struct {
	RequesterName  string `json:"requesterName" binding:"required"`
	RequesterEmail string `json:"requesterEmail" binding:"required,email"`
	RecipientName  string `json:"recipientName" binding:"required"`
	BloodGroup     string `json:"bloodGroup" binding:"omitempty,bloodgroup"`
	District       string `json:"district"`
	Upazila        string `json:"upazila"`
	Hospital       string `json:"hospital"`
	Address        string `json:"address"`
	DonationDate   string `json:"donationDate"`
	DonationTime   string `json:"donationTime"`
	Message        string `json:"message"`
	Status         string `json:"status" binding:"omitempty,reqstatus"`
}

// updateRequestBody is the contract for PUT /donation-request/:id. The
// requester identity and status are deliberately absent; a replace never
// touches them.
type updateRequestBody struct {
	RequesterName *string `json:"requesterName"`
	RecipientName *string `json:"recipientName"`
	BloodGroup    *string `json:"bloodGroup" binding:"omitempty,bloodgroup"`
	District      *string `json:"district"`
	Upazila       *string `json:"upazila"`
	Hospital      *string `json:"hospital"`
	Address       *string `json:"address"`
	DonationDate  *string `json:"donationDate"`
	DonationTime  *string `json:"donationTime"`
	Message       *string `json:"message"`
}

func (r *updateRequestBody) fields() map[string]any {
	out := map[string]any{}
	if r.RequesterName != nil {
		out["requesterName"] = *r.RequesterName
	}
	if r.RecipientName != nil {
		out["recipientName"] = *r.RecipientName
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
	if r.Hospital != nil {
		out["hospital"] = *r.Hospital
	}
	if r.Address != nil {
		out["address"] = *r.Address
	}
	if r.DonationDate != nil {
		out["donationDate"] = *r.DonationDate
	}
	if r.DonationTime != nil {
		out["donationTime"] = *r.DonationTime
	}
	if r.Message != nil {
		out["message"] = *r.Message
	}
	return out
}

// patchRequestBody covers both the status patch and the fulfillment patch,
// which additionally binds the donor identity.
type patchRequestBody struct {
	Status     string `json:"status" binding:"required,reqstatus"`
	DonorName  string `json:"donorName"`
	DonorEmail string `json:"donorEmail" binding:"omitempty,email"`
}

// Create persists a request on behalf of the user named in ?email=. Blocked
// or unknown requesters are refused.
func (h *DonationHandler) Create(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.Message(c, http.StatusBadRequest, "email query parameter is required")
		return
	}
	var req createRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, validation.ToDetails(err))
		return
	}
	dr := &entity.DonationRequest{
		RequesterName:  req.RequesterName,
		RequesterEmail: req.RequesterEmail,
		RecipientName:  req.RecipientName,
		BloodGroup:     req.BloodGroup,
		District:       req.District,
		Upazila:        req.Upazila,
		Hospital:       req.Hospital,
		Address:        req.Address,
		DonationDate:   req.DonationDate,
		DonationTime:   req.DonationTime,
		Message:        req.Message,
		Status:         req.Status,
	}
	res, err := h.Svc.Create(c.Request.Context(), email, dr)
	if err != nil {
		if errors.Is(err, donapp.ErrUserBlocked) {
			response.Message(c, http.StatusForbidden, "Sorry, you are blocked. You can't make a request.")
			return
		}
		response.ServerError(c, "could not create donation request", err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

// ListAll returns every donation request.
func (h *DonationHandler) ListAll(c *gin.Context) {
	requests, err := h.Svc.List(c.Request.Context(), "")
	if err != nil {
		response.ServerError(c, "Error retrieving donation requests", err)
		return
	}
	response.JSON(c, http.StatusOK, requests)
}

// ListPending restricts the feed to pending requests when ?status=pending.
func (h *DonationHandler) ListPending(c *gin.Context) {
	status := ""
	if c.Query("status") == entity.RequestPending {
		status = entity.RequestPending
	}
	requests, err := h.Svc.List(c.Request.Context(), status)
	if err != nil {
		response.ServerError(c, "Error retrieving donation requests", err)
		return
	}
	response.JSON(c, http.StatusOK, requests)
}

// ListByRequester returns one user's requests, optionally narrowed by
// ?filter=<status>.
func (h *DonationHandler) ListByRequester(c *gin.Context) {
	requests, err := h.Svc.ListByRequester(c.Request.Context(), c.Param("email"), c.Query("filter"))
	if err != nil {
		response.ServerError(c, "Error retrieving donation requests", err)
		return
	}
	response.JSON(c, http.StatusOK, requests)
}

func (h *DonationHandler) Get(c *gin.Context) {
	dr, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeErr(c, err, "could not fetch donation request")
		return
	}
	response.JSON(c, http.StatusOK, dr)
}

// Replace upserts the request body fields by id.
func (h *DonationHandler) Replace(c *gin.Context) {
	var req updateRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Replace(c.Request.Context(), c.Param("id"), req.fields())
	if err != nil {
		h.writeErr(c, err, "Error updating donation request")
		return
	}
	response.JSON(c, http.StatusOK, res)
}

// Patch sets the status and, when donor fields are present, binds the donor
// identity and notifies the requester.
func (h *DonationHandler) Patch(c *gin.Context) {
	var req patchRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, validation.ToDetails(err))
		return
	}
	var res repo.UpdateResult
	var err error
	if req.DonorName != "" || req.DonorEmail != "" {
		res, err = h.Svc.Fulfill(c.Request.Context(), c.Param("id"), req.Status, req.DonorName, req.DonorEmail)
	} else {
		res, err = h.Svc.Patch(c.Request.Context(), c.Param("id"), map[string]any{"status": req.Status})
	}
	if err != nil {
		h.writeErr(c, err, "Error updating donation request")
		return
	}
	response.JSON(c, http.StatusOK, res)
}

// Delete removes the request by its extracted id.
func (h *DonationHandler) Delete(c *gin.Context) {
	res, err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeErr(c, err, "could not delete donation request")
		return
	}
	response.JSON(c, http.StatusOK, res)
}

func (h *DonationHandler) writeErr(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, repo.ErrInvalidID):
		response.Message(c, http.StatusBadRequest, "invalid id")
	case errors.Is(err, donapp.ErrNotFound):
		response.Message(c, http.StatusNotFound, "donation request not found")
	default:
		response.ServerError(c, msg, err)
	}
}

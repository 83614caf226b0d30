package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	payapp "github.com/donorhive/donorhive-server/internal/application"
	"github.com/donorhive/donorhive-server/internal/domain/entity"
	"github.com/donorhive/donorhive-server/pkg/response"
	"github.com/donorhive/donorhive-server/pkg/validation"
)

type PaymentHandler struct {
	Svc    *payapp.PaymentService
	Logger *logrus.Logger
}

func NewPaymentHandler(svc *payapp.PaymentService, logger *logrus.Logger) *PaymentHandler {
	return &PaymentHandler{Svc: svc, Logger: logger}
}

type intentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

type paymentRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Price         string `json:"price" binding:"required,numeric"`
	TransactionID string `json:"transactionId"`
}

// CreateIntent authorizes the amount with the payment processor and returns
// the client-side confirmation secret.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req intentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, validation.ToDetails(err))
		return
	}
	secret, err := h.Svc.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		response.ServerError(c, "could not create payment intent", err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"clientSecret": secret})
}

// Record inserts a completed payment. Records are append-only.
func (h *PaymentHandler) Record(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, validation.ToDetails(err))
		return
	}
	p := &entity.Payment{
		Email:         req.Email,
		Price:         req.Price,
		TransactionID: req.TransactionID,
	}
	res, err := h.Svc.Record(c.Request.Context(), p)
	if err != nil {
		response.ServerError(c, "could not record payment", err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.ServerError(c, "could not list payments", err)
		return
	}
	response.JSON(c, http.StatusOK, payments)
}

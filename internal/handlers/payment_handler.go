package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sports-camp360/camp-service/internal/services"
	"github.com/sports-camp360/camp-service/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PaymentHandler struct {
	BaseHandler
	service services.PaymentService
}

func NewPaymentHandler(service services.PaymentService, logger utils.Logger) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// CreatePaymentIntent starts a card payment for the given price
// @Summary Create payment intent
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} services.PaymentIntentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req services.PaymentIntentRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.service.CreateIntent(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req services.RecordPaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}
	payment, err := h.service.Record(c.Request.Context(), callerEmail(c), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (h *PaymentHandler) PaymentHistory(c *gin.Context) {
	history, err := h.service.History(c.Request.Context(), callerEmail(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

func (h *PaymentHandler) ExportPayments(c *gin.Context) {
	h.LogRequest(c, "Exporting payments", "by", callerEmail(c))

	buf, err := h.service.Export(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("payments-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

package handlers

import (
	"net/http"

	"github.com/CodeSmart-NG/school-service/internal/services"
	"github.com/CodeSmart-NG/school-service/internal/utils"
	"github.com/gin-gonic/gin"
)

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

// CreatePayment opens a hosted checkout session
// @Summary Create a payment
// @Description Record a payment intent and return the reference the checkout widget needs
// @Tags payment
// @Accept json
// @Produce json
// @Param request body services.PaymentCreateRequest true "Payment fields"
// @Success 201 {object} map[string]interface{} "Checkout reference"
// @Failure 400 {object} models.Response "Validation failed"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /payment/create [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	h.LogRequest(c, "Creating payment")

	var req services.PaymentCreateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	checkout, err := h.service.CreateCheckout(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	// The checkout widget expects these fields at the top level.
	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"reference":    checkout.Reference,
		"amount":       checkout.Amount,
		"email":        req.Email,
		"checkout_url": checkout.CheckoutURL,
		"token":        checkout.Token,
	})
}

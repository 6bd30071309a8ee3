package handlers

import (
	"net/http"

	"github.com/CodeSmart-NG/school-service/internal/services"
	"github.com/CodeSmart-NG/school-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	BaseHandler
	service services.ContactService
}

func NewContactHandler(service services.ContactService, logger utils.Logger) *ContactHandler {
	return &ContactHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// SubmitContact stores a contact form submission
// @Summary Submit a contact enquiry
// @Description Store a contact/enquiry message from the marketing site
// @Tags contact
// @Accept json
// @Produce json
// @Param request body services.ContactRequest true "Contact form fields"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.Response "Validation failed"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	h.LogRequest(c, "Submitting contact message")

	var req services.ContactRequest
	if !h.bindJSON(c, &req) {
		return
	}

	msg, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.respondSuccess(c, http.StatusCreated, "Thank you for contacting us! We will get back to you soon.", gin.H{
		"message_id": msg.ID,
	})
}

package handlers

import (
	"net/http"

	"github.com/CodeSmart-NG/school-service/internal/services"
	"github.com/CodeSmart-NG/school-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	BaseHandler
	service services.NewsletterService
}

func NewNewsletterHandler(service services.NewsletterService, logger utils.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// Subscribe adds an email to the mailing list
// @Summary Subscribe to the newsletter
// @Description Add an email address to the mailing list; subscribing twice succeeds
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body services.SubscribeRequest true "Subscriber email"
// @Success 200 {object} models.Response "Already subscribed"
// @Success 201 {object} models.Response "Subscribed"
// @Failure 400 {object} models.Response "Validation failed"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /newsletter/subscribe [post]
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	h.LogRequest(c, "Subscribing to newsletter")

	var req services.SubscribeRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.service.Subscribe(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	if result.AlreadySubscribed {
		h.respondSuccess(c, http.StatusOK, "You are already subscribed.", nil)
		return
	}
	h.respondSuccess(c, http.StatusCreated, "Subscribed! Welcome to the CodeSmart newsletter.", nil)
}

package handlers

import (
	"net/http"

	"github.com/CodeSmart-NG/school-service/internal/services"
	"github.com/CodeSmart-NG/school-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	BaseHandler
	service services.TestimonialService
}

func NewTestimonialHandler(service services.TestimonialService, logger utils.Logger) *TestimonialHandler {
	return &TestimonialHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ListTestimonials returns approved testimonials, newest first
// @Summary List testimonials
// @Description Get up to 10 approved testimonials ordered by descending date
// @Tags testimonials
// @Produce json
// @Success 200 {object} models.Response{data=[]models.Testimonial}
// @Failure 500 {object} models.Response "Internal server error"
// @Router /testimonials [get]
func (h *TestimonialHandler) ListTestimonials(c *gin.Context) {
	h.LogRequest(c, "Listing testimonials")

	testimonials, err := h.service.ListApproved(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.respondSuccess(c, http.StatusOK, "", testimonials)
}

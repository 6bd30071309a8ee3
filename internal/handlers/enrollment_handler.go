package handlers

import (
	"net/http"

	"github.com/CodeSmart-NG/school-service/internal/services"
	"github.com/CodeSmart-NG/school-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type EnrollmentHandler struct {
	BaseHandler
	service services.EnrollmentService
}

func NewEnrollmentHandler(service services.EnrollmentService, logger utils.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// Enroll registers a student for a course
// @Summary Enroll a student
// @Description Register a student, optionally quoting a payment reference from a completed checkout
// @Tags enrollment
// @Accept json
// @Produce json
// @Param request body services.EnrollRequest true "Enrollment fields"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.Response "Validation failed"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /enroll [post]
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	h.LogRequest(c, "Enrolling student")

	var req services.EnrollRequest
	if !h.bindJSON(c, &req) {
		return
	}

	student, err := h.service.Enroll(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.respondSuccess(c, http.StatusCreated, "Enrollment successful! Check your email for next steps.", gin.H{
		"student_id":     student.ID,
		"payment_status": student.PaymentStatus,
	})
}

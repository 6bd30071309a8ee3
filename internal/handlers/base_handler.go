package handlers

import (
	"errors"
	"net/http"

	"github.com/CodeSmart-NG/school-service/internal/models"
	"github.com/CodeSmart-NG/school-service/internal/services"
	"github.com/CodeSmart-NG/school-service/internal/utils"
	"github.com/gin-gonic/gin"
)

// BaseHandler carries the shared pieces every handler embeds: logging
// with request correlation and the service error mapping.
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	args = append(args, "method", c.Request.Method, "path", c.Request.URL.Path, "request_id", c.GetString("request_id"))
	h.logger.Info(msg, args...)
}

func (h *BaseHandler) LogError(c *gin.Context, err error, msg string, args ...any) {
	args = append(args, "error", err, "method", c.Request.Method, "path", c.Request.URL.Path, "request_id", c.GetString("request_id"))
	h.logger.Error(msg, args...)
}

// respondSuccess writes the uniform success envelope.
func (h *BaseHandler) respondSuccess(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, models.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// respondError writes the uniform failure envelope. Internal details
// never reach the client.
func (h *BaseHandler) respondError(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, models.Response{
		Success: false,
		Message: message,
		Data:    data,
	})
}

// handleServiceError maps service sentinel errors to HTTP status codes.
// Validation failures include field details; everything unexpected is a
// generic 500.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var vfe *services.ValidationFailedError

	switch {
	case errors.As(err, &vfe):
		h.respondError(c, http.StatusBadRequest, "Validation failed", vfe.Errors)
	case errors.Is(err, services.ErrValidationFailed):
		h.respondError(c, http.StatusBadRequest, "Validation failed", nil)
	case errors.Is(err, services.ErrNotFound):
		h.respondError(c, http.StatusNotFound, "Resource not found", nil)
	case errors.Is(err, services.ErrUnauthorized):
		h.respondError(c, http.StatusUnauthorized, "Authentication required", nil)
	case errors.Is(err, services.ErrForbidden):
		h.respondError(c, http.StatusForbidden, "Access denied", nil)
	default:
		h.LogError(c, err, "Unexpected service error")
		h.respondError(c, http.StatusInternalServerError, "Something went wrong. Please try again.", nil)
	}
}

// bindJSON decodes the request body, answering 400 on malformed JSON.
func (h *BaseHandler) bindJSON(c *gin.Context, out interface{}) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}
	return true
}

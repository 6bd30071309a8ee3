package handlers

import (
	"net/http"
	"time"

	"github.com/CodeSmart-NG/school-service/internal/services"
	"github.com/CodeSmart-NG/school-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	BaseHandler
	service services.ScheduleService
}

func NewScheduleHandler(service services.ScheduleService, logger utils.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// GetSchedule returns the upcoming class schedule
// @Summary Get the class schedule
// @Description Get upcoming class schedule entries computed from the current date
// @Tags schedule
// @Produce json
// @Success 200 {object} models.Response{data=[]models.ScheduleEntry}
// @Failure 500 {object} models.Response "Internal server error"
// @Router /schedule [get]
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	h.LogRequest(c, "Getting schedule")

	entries, err := h.service.Upcoming(c.Request.Context(), time.Now().UTC())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.respondSuccess(c, http.StatusOK, "", entries)
}

package handlers

import (
	"net/http"
	"time"

	"github.com/CodeSmart-NG/school-service/internal/models"
	"github.com/gin-gonic/gin"
)

// HealthCheck reports service liveness
// @Summary Health check
// @Description Liveness probe for the API
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/CodeSmart-NG/school-service/internal/services"
	"github.com/CodeSmart-NG/school-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	BaseHandler
	service services.CatalogService
}

func NewCatalogHandler(service services.CatalogService, logger utils.Logger) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ListCourses returns the active course catalog
// @Summary List courses
// @Description Get all active courses in the catalog
// @Tags courses
// @Produce json
// @Success 200 {object} models.Response{data=[]models.Course}
// @Failure 500 {object} models.Response "Internal server error"
// @Router /courses [get]
func (h *CatalogHandler) ListCourses(c *gin.Context) {
	h.LogRequest(c, "Listing courses")

	courses, err := h.service.ListCourses(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.respondSuccess(c, http.StatusOK, "", courses)
}

// GetCourse returns one active course
// @Summary Get a course
// @Description Get a single active course by id
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} models.Response{data=models.Course}
// @Failure 404 {object} models.Response "Not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /courses/{id} [get]
func (h *CatalogHandler) GetCourse(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid course id", nil)
		return
	}

	h.LogRequest(c, "Getting course", "course_id", id)

	course, err := h.service.GetCourse(c.Request.Context(), uint(id))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.respondSuccess(c, http.StatusOK, "", course)
}

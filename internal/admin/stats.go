package admin

import (
	"net/http"

	"github.com/CodeSmart-NG/school-service/internal/models"
	"github.com/CodeSmart-NG/school-service/internal/repositories"
	"github.com/gin-gonic/gin"
)

// DashboardStats is the landing page summary.
type DashboardStats struct {
	UnreadMessages    int64 `json:"unread_messages"`
	TotalMessages     int64 `json:"total_messages"`
	ActiveCourses     int64 `json:"active_courses"`
	TotalStudents     int64 `json:"total_students"`
	PaidStudents      int64 `json:"paid_students"`
	ActiveSubscribers int64 `json:"active_subscribers"`
	PendingApproval   int64 `json:"pending_testimonials"`
}

func (p *Panel) stats(c *gin.Context) {
	ctx := c.Request.Context()
	var stats DashboardStats

	unread := false
	if _, total, err := p.repo.Message().List(ctx, repositories.MessageFilters{IsRead: &unread}); err == nil {
		stats.UnreadMessages = total
	}
	if _, total, err := p.repo.Message().List(ctx, repositories.MessageFilters{}); err == nil {
		stats.TotalMessages = total
	}

	active := models.CourseActive
	if _, total, err := p.repo.Course().List(ctx, repositories.CourseFilters{Status: &active}); err == nil {
		stats.ActiveCourses = total
	}

	if _, total, err := p.repo.Student().List(ctx, repositories.StudentFilters{}); err == nil {
		stats.TotalStudents = total
	}
	paid := models.PaymentPaid
	if _, total, err := p.repo.Student().List(ctx, repositories.StudentFilters{PaymentStatus: &paid}); err == nil {
		stats.PaidStudents = total
	}

	subscribed := true
	if _, total, err := p.repo.Newsletter().List(ctx, repositories.NewsletterFilters{IsActive: &subscribed}); err == nil {
		stats.ActiveSubscribers = total
	}

	unapproved := false
	if _, total, err := p.repo.Testimonial().List(ctx, repositories.TestimonialFilters{IsApproved: &unapproved}); err == nil {
		stats.PendingApproval = total
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: stats})
}

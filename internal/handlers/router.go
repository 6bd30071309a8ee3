package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/CodeSmart-NG/school-service/internal/services"
	"github.com/CodeSmart-NG/school-service/internal/utils"
)

type HandlerManager struct {
	contactHandler     *ContactHandler
	catalogHandler     *CatalogHandler
	enrollmentHandler  *EnrollmentHandler
	newsletterHandler  *NewsletterHandler
	testimonialHandler *TestimonialHandler
	scheduleHandler    *ScheduleHandler
	paymentHandler     *PaymentHandler
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		contactHandler:     NewContactHandler(serviceManager.Contact(), logger),
		catalogHandler:     NewCatalogHandler(serviceManager.Catalog(), logger),
		enrollmentHandler:  NewEnrollmentHandler(serviceManager.Enrollment(), logger),
		newsletterHandler:  NewNewsletterHandler(serviceManager.Newsletter(), logger),
		testimonialHandler: NewTestimonialHandler(serviceManager.Testimonial(), logger),
		scheduleHandler:    NewScheduleHandler(serviceManager.Schedule(), logger),
		paymentHandler:     NewPaymentHandler(serviceManager.Payment(), logger),
	}
}

// SetupRoutes sets up all public API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/health", HealthCheck)

		api.POST("/contact", hm.contactHandler.SubmitContact)

		api.GET("/courses", hm.catalogHandler.ListCourses)
		api.GET("/courses/:id", hm.catalogHandler.GetCourse)

		api.POST("/enroll", hm.enrollmentHandler.Enroll)

		api.POST("/newsletter/subscribe", hm.newsletterHandler.Subscribe)

		api.GET("/testimonials", hm.testimonialHandler.ListTestimonials)
		api.GET("/schedule", hm.scheduleHandler.GetSchedule)

		api.POST("/payment/create", hm.paymentHandler.CreatePayment)
	}
}

package services

import (
	"context"
	"errors"
	"time"

	"github.com/CodeSmart-NG/school-service/internal/models"
	"github.com/CodeSmart-NG/school-service/internal/validator"
)

// ===== SENTINEL ERRORS =====

var (
	ErrValidationFailed = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
)

// ValidationFailedError carries field details alongside the sentinel so
// handlers can return them in the response body.
type ValidationFailedError struct {
	Errors validator.ValidationErrors
}

func (e *ValidationFailedError) Error() string {
	return "validation failed: " + e.Errors.Error()
}

func (e *ValidationFailedError) Unwrap() error { return ErrValidationFailed }

// ===== REQUEST DTOs =====

// Request bodies are shared with the validator package.
type ContactRequest = validator.ContactRequest
type EnrollRequest = validator.EnrollRequest
type SubscribeRequest = validator.SubscribeRequest
type PaymentCreateRequest = validator.PaymentCreateRequest
type CourseUpsertRequest = validator.CourseUpsertRequest
type TestimonialUpsertRequest = validator.TestimonialUpsertRequest

// ===== RESPONSE DTOs =====

type SubscribeResult struct {
	Subscription *models.Newsletter `json:"subscription"`

	// AlreadySubscribed is true when the email was on the list before
	// this call. Subscribing twice is not an error.
	AlreadySubscribed bool `json:"already_subscribed"`
}

type CheckoutResponse struct {
	Reference   string  `json:"reference"`
	OrderID     string  `json:"order_id"`
	Amount      float64 `json:"amount"`
	CheckoutURL string  `json:"checkout_url,omitempty"`
	Token       string  `json:"token,omitempty"`
}

// ===== SERVICE INTERFACES =====

// ContactService accepts contact form submissions.
type ContactService interface {
	Submit(ctx context.Context, req *ContactRequest) (*models.Message, error)
}

// CatalogService serves the public course catalog.
type CatalogService interface {
	ListCourses(ctx context.Context) ([]*models.Course, error)
	GetCourse(ctx context.Context, id uint) (*models.Course, error)
}

// EnrollmentService registers students.
type EnrollmentService interface {
	Enroll(ctx context.Context, req *EnrollRequest) (*models.Student, error)
}

// NewsletterService manages mailing list subscriptions.
type NewsletterService interface {
	Subscribe(ctx context.Context, req *SubscribeRequest) (*SubscribeResult, error)
}

// TestimonialService serves approved student quotes.
type TestimonialService interface {
	ListApproved(ctx context.Context) ([]*models.Testimonial, error)
}

// ScheduleService computes the upcoming class schedule.
type ScheduleService interface {
	Upcoming(ctx context.Context, now time.Time) ([]models.ScheduleEntry, error)
}

// PaymentService opens hosted checkout sessions.
type PaymentService interface {
	CreateCheckout(ctx context.Context, req *PaymentCreateRequest) (*CheckoutResponse, error)
}

// ===== SERVICE MANAGER =====

type ServiceManager interface {
	Contact() ContactService
	Catalog() CatalogService
	Enrollment() EnrollmentService
	Newsletter() NewsletterService
	Testimonial() TestimonialService
	Schedule() ScheduleService
	Payment() PaymentService

	// Health and lifecycle
	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

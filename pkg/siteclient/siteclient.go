// Package siteclient is the typed client the marketing site (and demo
// tooling) uses to talk to the public API. The DataSource interface
// covers every logical site request; callers pick an implementation
// once at startup and never branch on the mode afterwards.
package siteclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/CodeSmart-NG/school-service/internal/config"
	"github.com/CodeSmart-NG/school-service/internal/models"
)

// Request bodies mirror the public API.
type ContactForm struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Course  *string `json:"course,omitempty"`
	Subject *string `json:"subject,omitempty"`
	Message string  `json:"message"`
}

type EnrollForm struct {
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Course           string   `json:"course"`
	PaymentReference *string  `json:"payment_reference,omitempty"`
	AmountPaid       *float64 `json:"amount_paid,omitempty"`
}

type PaymentForm struct {
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Course string  `json:"course"`
	Amount float64 `json:"amount"`
}

// PaymentSession is the flat body returned by POST /api/payment/create.
type PaymentSession struct {
	Reference string  `json:"reference"`
	Amount    float64 `json:"amount"`
	Email     string  `json:"email"`
}

// DataSource answers the logical site requests. Exactly one
// implementation is selected at startup from configuration.
type DataSource interface {
	Courses(ctx context.Context) ([]models.Course, error)
	Testimonials(ctx context.Context) ([]models.Testimonial, error)
	Schedule(ctx context.Context) ([]models.ScheduleEntry, error)
	SubmitContact(ctx context.Context, form ContactForm) error
	Subscribe(ctx context.Context, email string) error
	Enroll(ctx context.Context, form EnrollForm) (studentID uint, err error)
	CreatePayment(ctx context.Context, form PaymentForm) (*PaymentSession, error)
}

// ErrRequestFailed wraps any API-level failure (success=false or a
// non-2xx status).
var ErrRequestFailed = errors.New("site request failed")

// New selects the data source from configuration.
func New(cfg *config.Config) (DataSource, error) {
	switch cfg.DataSource {
	case "live":
		return NewLiveSource(cfg.SiteBaseURL), nil
	case "mock":
		return NewMockSource(), nil
	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.DataSource)
	}
}

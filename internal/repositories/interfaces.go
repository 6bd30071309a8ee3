package repositories

import (
	"time"

	"github.com/CodeSmart-NG/school-service/internal/models"
)

// ===== SHARED FILTER STRUCTS =====

type MessageFilters struct {
	IsRead   *bool      `json:"is_read"`
	Email    *string    `json:"email"`
	DateFrom *time.Time `json:"date_from"`
	DateTo   *time.Time `json:"date_to"`
	Limit    int        `json:"limit"`
	Offset   int        `json:"offset"`
}

type CourseFilters struct {
	Status   *models.CourseStatus `json:"status"`
	Category *string              `json:"category"`
	Limit    int                  `json:"limit"`
	Offset   int                  `json:"offset"`
}

type StudentFilters struct {
	Course        *string               `json:"course"`
	PaymentStatus *models.PaymentStatus `json:"payment_status"`
	Status        *models.StudentStatus `json:"status"`
	Limit         int                   `json:"limit"`
	Offset        int                   `json:"offset"`
}

type NewsletterFilters struct {
	IsActive *bool `json:"is_active"`
	Limit    int   `json:"limit"`
	Offset   int   `json:"offset"`
}

type TestimonialFilters struct {
	IsApproved *bool `json:"is_approved"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

type PaymentFilters struct {
	Status *models.PaymentRecordStatus `json:"status"`
	Email  *string                     `json:"email"`
	Limit  int                         `json:"limit"`
	Offset int                         `json:"offset"`
}

type UserFilters struct {
	Query  string `json:"query"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

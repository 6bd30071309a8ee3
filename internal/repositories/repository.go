package repositories

import (
	"context"
	"errors"

	"github.com/CodeSmart-NG/school-service/internal/models"
)

// ErrNotFound is returned by repositories when a record does not exist.
var ErrNotFound = errors.New("record not found")

// Repository aggregates every entity repository behind one handle.
type Repository interface {
	Message() MessageRepository
	Course() CourseRepository
	Student() StudentRepository
	Newsletter() NewsletterRepository
	Testimonial() TestimonialRepository
	Payment() PaymentRepository
	User() UserRepository

	// Transaction support
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}

// RepositoryManager manages repository lifecycle.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// MessageRepository stores contact form submissions.
type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) error
	GetByID(ctx context.Context, id uint) (*models.Message, error)
	List(ctx context.Context, filters MessageFilters) ([]*models.Message, int64, error)
	Update(ctx context.Context, msg *models.Message) error
	Delete(ctx context.Context, id uint) error

	// MarkAsRead flips isRead on a message. Calling it on an already
	// read message is a no-op.
	MarkAsRead(ctx context.Context, id uint) error
}

// CourseRepository stores catalog entries.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id uint) (*models.Course, error)
	List(ctx context.Context, filters CourseFilters) ([]*models.Course, int64, error)
	ListActive(ctx context.Context) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id uint) error
}

// StudentRepository stores enrollments.
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id uint) (*models.Student, error)
	List(ctx context.Context, filters StudentFilters) ([]*models.Student, int64, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id uint) error
}

// NewsletterRepository stores mailing list subscriptions.
type NewsletterRepository interface {
	Create(ctx context.Context, sub *models.Newsletter) error
	GetByEmail(ctx context.Context, email string) (*models.Newsletter, error)
	GetByID(ctx context.Context, id uint) (*models.Newsletter, error)
	List(ctx context.Context, filters NewsletterFilters) ([]*models.Newsletter, int64, error)
	Update(ctx context.Context, sub *models.Newsletter) error
	Delete(ctx context.Context, id uint) error
}

// TestimonialRepository stores student quotes.
type TestimonialRepository interface {
	Create(ctx context.Context, tst *models.Testimonial) error
	GetByID(ctx context.Context, id uint) (*models.Testimonial, error)
	List(ctx context.Context, filters TestimonialFilters) ([]*models.Testimonial, int64, error)
	// ListApproved returns approved testimonials, newest first, at most limit.
	ListApproved(ctx context.Context, limit int) ([]*models.Testimonial, error)
	Update(ctx context.Context, tst *models.Testimonial) error
	Delete(ctx context.Context, id uint) error
}

// PaymentRepository stores hosted checkout records.
type PaymentRepository interface {
	Create(ctx context.Context, p *models.Payment) error
	GetByID(ctx context.Context, id uint) (*models.Payment, error)
	GetByReference(ctx context.Context, reference string) (*models.Payment, error)
	List(ctx context.Context, filters PaymentFilters) ([]*models.Payment, int64, error)
	Update(ctx context.Context, p *models.Payment) error
	Delete(ctx context.Context, id uint) error
}

// UserRepository stores admin credentials.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, filters UserFilters) ([]*models.User, int64, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
}

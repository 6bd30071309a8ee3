package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/CodeSmart-NG/school-service/internal/events"
	"github.com/CodeSmart-NG/school-service/internal/models"
	"github.com/CodeSmart-NG/school-service/internal/repositories"
	"github.com/CodeSmart-NG/school-service/internal/validator"
)

type enrollmentService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewEnrollmentService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.EventPublisher) EnrollmentService {
	return &enrollmentService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: publisher,
	}
}

// Enroll registers a student for a course. An enrollment carrying a
// non-empty payment reference is recorded as paid; the reference is
// taken at face value and not verified against the gateway.
func (s *enrollmentService) Enroll(ctx context.Context, req *EnrollRequest) (*models.Student, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, &ValidationFailedError{Errors: verrs}
	}

	student := &models.Student{
		Name:           req.Name,
		Email:          req.Email,
		Course:         req.Course,
		PaymentStatus:  models.PaymentPending,
		EnrollmentDate: time.Now().UTC(),
		Status:         models.StudentActive,
	}

	if req.PaymentReference != nil && *req.PaymentReference != "" {
		student.PaymentStatus = models.PaymentPaid
		student.PaymentReference = req.PaymentReference
		student.AmountPaid = req.AmountPaid
	}

	if err := s.repo.Student().Create(ctx, student); err != nil {
		return nil, fmt.Errorf("failed to create enrollment: %w", err)
	}

	if student.PaymentReference != nil {
		s.settleCheckout(ctx, *student.PaymentReference)
	}

	s.logger.Info("Student enrolled",
		"student_id", student.ID,
		"course", student.Course,
		"payment_status", student.PaymentStatus,
	)

	event := events.NewEvent(events.EventStudentEnrolled, map[string]any{
		"student_id":     student.ID,
		"name":           student.Name,
		"email":          student.Email,
		"course":         student.Course,
		"payment_status": student.PaymentStatus,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("Failed to publish enrollment event", "error", err, "student_id", student.ID)
	}

	return student, nil
}

// settleCheckout marks the matching checkout record settled when one
// exists. Unknown references are left alone; enrollment already
// succeeded and the reference may come from an out-of-band payment.
func (s *enrollmentService) settleCheckout(ctx context.Context, reference string) {
	payment, err := s.repo.Payment().GetByReference(ctx, reference)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			s.logger.Error("Failed to look up checkout record", "error", err, "reference", reference)
		}
		return
	}

	payment.Status = models.PaymentSettled
	if err := s.repo.Payment().Update(ctx, payment); err != nil {
		s.logger.Error("Failed to settle checkout record", "error", err, "reference", reference)
	}
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/CodeSmart-NG/school-service/internal/events"
	"github.com/CodeSmart-NG/school-service/internal/models"
	"github.com/CodeSmart-NG/school-service/internal/repositories"
	"github.com/CodeSmart-NG/school-service/internal/validator"
)

type contactService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewContactService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.EventPublisher) ContactService {
	return &contactService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: publisher,
	}
}

// Submit stores a contact form submission. New messages always start
// unread with a server-assigned timestamp.
func (s *contactService) Submit(ctx context.Context, req *ContactRequest) (*models.Message, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, &ValidationFailedError{Errors: verrs}
	}

	msg := &models.Message{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Course:  req.Course,
		Subject: req.Subject,
		Body:    req.Message,
		Date:    time.Now().UTC(),
		IsRead:  false,
	}

	if err := s.repo.Message().Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	s.logger.Info("Contact message received", "message_id", msg.ID, "email", msg.Email)

	event := events.NewEvent(events.EventContactReceived, map[string]any{
		"message_id": msg.ID,
		"name":       msg.Name,
		"email":      msg.Email,
		"course":     msg.Course,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		// Event delivery must not fail the submission.
		s.logger.Error("Failed to publish contact event", "error", err, "message_id", msg.ID)
	}

	return msg, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/CodeSmart-NG/school-service/internal/events"
	"github.com/CodeSmart-NG/school-service/internal/models"
	"github.com/CodeSmart-NG/school-service/internal/repositories"
	"github.com/CodeSmart-NG/school-service/internal/validator"
)

type newsletterService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewNewsletterService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.EventPublisher) NewsletterService {
	return &newsletterService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: publisher,
	}
}

// Subscribe adds an email to the mailing list. Subscribing an address
// that is already on the list succeeds and reports AlreadySubscribed;
// an address that previously unsubscribed is reactivated.
func (s *newsletterService) Subscribe(ctx context.Context, req *SubscribeRequest) (*SubscribeResult, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, &ValidationFailedError{Errors: verrs}
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.Newsletter().GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up subscription: %w", err)
	}

	if existing != nil {
		if existing.IsActive {
			return &SubscribeResult{Subscription: existing, AlreadySubscribed: true}, nil
		}

		existing.IsActive = true
		existing.SubscribedAt = time.Now().UTC()
		if err := s.repo.Newsletter().Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to reactivate subscription: %w", err)
		}

		s.logger.Info("Newsletter subscription reactivated", "email", email)
		s.publishSubscribed(ctx, existing)
		return &SubscribeResult{Subscription: existing}, nil
	}

	sub := &models.Newsletter{
		Email:        email,
		SubscribedAt: time.Now().UTC(),
		IsActive:     true,
	}
	if err := s.repo.Newsletter().Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	s.logger.Info("Newsletter subscription created", "email", email)
	s.publishSubscribed(ctx, sub)
	return &SubscribeResult{Subscription: sub}, nil
}

func (s *newsletterService) publishSubscribed(ctx context.Context, sub *models.Newsletter) {
	event := events.NewEvent(events.EventNewsletterSubscribed, map[string]any{
		"subscription_id": sub.ID,
		"email":           sub.Email,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("Failed to publish subscription event", "error", err, "email", sub.Email)
	}
}

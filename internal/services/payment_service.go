package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/CodeSmart-NG/school-service/internal/events"
	"github.com/CodeSmart-NG/school-service/internal/models"
	"github.com/CodeSmart-NG/school-service/internal/repositories"
	"github.com/CodeSmart-NG/school-service/internal/validator"
	"github.com/google/uuid"
)

type paymentService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
	gateway   CheckoutGateway
}

func NewPaymentService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.EventPublisher, gateway CheckoutGateway) PaymentService {
	return &paymentService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: publisher,
		gateway:   gateway,
	}
}

// CreateCheckout records a payment intent and opens a hosted checkout
// session. The returned reference is what the client quotes back when
// it enrolls.
func (s *paymentService) CreateCheckout(ctx context.Context, req *PaymentCreateRequest) (*CheckoutResponse, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, &ValidationFailedError{Errors: verrs}
	}

	reference := uuid.New().String()
	orderID := fmt.Sprintf("CSN-%s", reference[:8])

	session, err := s.gateway.CreateSession(ctx, orderID, req.Amount, req.Name, req.Email)
	if err != nil {
		return nil, fmt.Errorf("checkout session failed: %w", err)
	}

	payment := &models.Payment{
		Reference: reference,
		OrderID:   orderID,
		Name:      req.Name,
		Email:     req.Email,
		Course:    req.Course,
		Amount:    req.Amount,
		Status:    models.PaymentInitiated,
	}
	if session.RedirectURL != "" {
		payment.CheckoutURL = &session.RedirectURL
	}

	if err := s.repo.Payment().Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment record: %w", err)
	}

	s.logger.Info("Checkout session created",
		"reference", reference,
		"order_id", orderID,
		"amount", req.Amount,
	)

	event := events.NewEvent(events.EventPaymentCreated, map[string]any{
		"payment_id": payment.ID,
		"reference":  reference,
		"email":      req.Email,
		"amount":     req.Amount,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("Failed to publish payment event", "error", err, "reference", reference)
	}

	return &CheckoutResponse{
		Reference:   reference,
		OrderID:     orderID,
		Amount:      req.Amount,
		CheckoutURL: session.RedirectURL,
		Token:       session.Token,
	}, nil
}

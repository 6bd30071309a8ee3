package services

import (
	"context"
	"errors"
	"testing"

	"github.com/CodeSmart-NG/school-service/internal/events"
	"github.com/CodeSmart-NG/school-service/internal/models"
	"github.com/CodeSmart-NG/school-service/internal/repositories"
	"github.com/CodeSmart-NG/school-service/internal/repositories/inmem"
	"github.com/CodeSmart-NG/school-service/internal/validator"
)

type fakeGateway struct {
	session *CheckoutSession
	err     error
	calls   int
}

func (g *fakeGateway) CreateSession(ctx context.Context, orderID string, amount float64, name, email string) (*CheckoutSession, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.session, nil
}

func TestPaymentService_CreateCheckout(t *testing.T) {
	logger := newTestLogger()
	repo := inmem.NewRepository()
	publisher := events.NewMockEventPublisher(logger)
	gateway := &fakeGateway{session: &CheckoutSession{Token: "tok-1", RedirectURL: "https://pay.example/abc"}}
	service := NewPaymentService(repo, logger, validator.New(), publisher, gateway)
	ctx := context.Background()

	resp, err := service.CreateCheckout(ctx, &PaymentCreateRequest{
		Name:   "Ahmed Musa",
		Email:  "ahmed@email.com",
		Course: "Frontend Development",
		Amount: 50000,
	})
	if err != nil {
		t.Fatalf("CreateCheckout failed: %v", err)
	}

	if resp.Reference == "" {
		t.Error("reference must be set")
	}
	if resp.Amount != 50000 {
		t.Errorf("expected amount 50000, got %v", resp.Amount)
	}
	if resp.CheckoutURL != "https://pay.example/abc" || resp.Token != "tok-1" {
		t.Error("gateway session fields should pass through")
	}
	if gateway.calls != 1 {
		t.Errorf("expected 1 gateway call, got %d", gateway.calls)
	}

	stored, err := repo.Payment().GetByReference(ctx, resp.Reference)
	if err != nil {
		t.Fatalf("payment record not stored: %v", err)
	}
	if stored.Status != models.PaymentInitiated {
		t.Errorf("expected initiated status, got %q", stored.Status)
	}
	if stored.CheckoutURL == nil || *stored.CheckoutURL != "https://pay.example/abc" {
		t.Error("checkout URL should be persisted")
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 || published[0].Type != events.EventPaymentCreated {
		t.Errorf("expected one %s event, got %v", events.EventPaymentCreated, published)
	}
}

func TestPaymentService_CreateCheckout_StubGateway(t *testing.T) {
	logger := newTestLogger()
	repo := inmem.NewRepository()
	publisher := events.NewMockEventPublisher(logger)
	service := NewPaymentService(repo, logger, validator.New(), publisher, NewStubGateway())

	resp, err := service.CreateCheckout(context.Background(), &PaymentCreateRequest{
		Name:   "Ngozi Eze",
		Email:  "ngozi@email.com",
		Course: "Computer Basics",
		Amount: 20000,
	})
	if err != nil {
		t.Fatalf("CreateCheckout failed: %v", err)
	}
	if resp.Reference == "" {
		t.Error("offline checkout still needs a reference")
	}
	if resp.CheckoutURL != "" {
		t.Error("stub gateway should not produce a checkout URL")
	}
}

func TestPaymentService_CreateCheckout_GatewayError(t *testing.T) {
	logger := newTestLogger()
	repo := inmem.NewRepository()
	publisher := events.NewMockEventPublisher(logger)
	gateway := &fakeGateway{err: errors.New("gateway down")}
	service := NewPaymentService(repo, logger, validator.New(), publisher, gateway)
	ctx := context.Background()

	if _, err := service.CreateCheckout(ctx, &PaymentCreateRequest{
		Name:   "Ahmed Musa",
		Email:  "ahmed@email.com",
		Course: "Frontend Development",
		Amount: 50000,
	}); err == nil {
		t.Fatal("expected gateway error to propagate")
	}

	// No record and no event when the session never opened.
	_, total, err := repo.Payment().List(ctx, repositories.PaymentFilters{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 0 {
		t.Errorf("expected no payment records, got %d", total)
	}
	if got := publisher.GetPublishedEvents(); len(got) != 0 {
		t.Errorf("expected no events, got %d", len(got))
	}
}

func TestPaymentService_CreateCheckout_Validation(t *testing.T) {
	logger := newTestLogger()
	repo := inmem.NewRepository()
	publisher := events.NewMockEventPublisher(logger)
	service := NewPaymentService(repo, logger, validator.New(), publisher, NewStubGateway())

	_, err := service.CreateCheckout(context.Background(), &PaymentCreateRequest{
		Name:   "Ahmed Musa",
		Email:  "ahmed@email.com",
		Course: "Frontend Development",
		Amount: 0,
	})
	if !errors.Is(err, ErrValidationFailed) {
		t.Errorf("zero amount should fail validation, got %v", err)
	}
}

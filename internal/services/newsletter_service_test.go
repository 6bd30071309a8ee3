package services

import (
	"context"
	"testing"
	"time"

	"github.com/CodeSmart-NG/school-service/internal/events"
	"github.com/CodeSmart-NG/school-service/internal/models"
	"github.com/CodeSmart-NG/school-service/internal/repositories"
	"github.com/CodeSmart-NG/school-service/internal/repositories/inmem"
	"github.com/CodeSmart-NG/school-service/internal/validator"
)

func TestNewsletterService_Subscribe_Idempotent(t *testing.T) {
	logger := newTestLogger()
	repo := inmem.NewRepository()
	publisher := events.NewMockEventPublisher(logger)
	service := NewNewsletterService(repo, logger, validator.New(), publisher)
	ctx := context.Background()

	first, err := service.Subscribe(ctx, &SubscribeRequest{Email: "ada@email.com"})
	if err != nil {
		t.Fatalf("first subscribe failed: %v", err)
	}
	if first.AlreadySubscribed {
		t.Error("first subscribe should not report already subscribed")
	}

	second, err := service.Subscribe(ctx, &SubscribeRequest{Email: "ada@email.com"})
	if err != nil {
		t.Fatalf("second subscribe failed: %v", err)
	}
	if !second.AlreadySubscribed {
		t.Error("second subscribe should report already subscribed")
	}

	subs, total, err := repo.Newsletter().List(ctx, repositories.NewsletterFilters{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(subs) != 1 {
		t.Errorf("expected exactly one stored subscription, got %d", total)
	}

	// Only the first call publishes.
	if got := publisher.GetPublishedEvents(); len(got) != 1 {
		t.Errorf("expected 1 event, got %d", len(got))
	}
}

func TestNewsletterService_Subscribe_CaseInsensitive(t *testing.T) {
	logger := newTestLogger()
	repo := inmem.NewRepository()
	publisher := events.NewMockEventPublisher(logger)
	service := NewNewsletterService(repo, logger, validator.New(), publisher)
	ctx := context.Background()

	if _, err := service.Subscribe(ctx, &SubscribeRequest{Email: "Ada@Email.com"}); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	result, err := service.Subscribe(ctx, &SubscribeRequest{Email: "ada@email.com"})
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	if !result.AlreadySubscribed {
		t.Error("address differing only in case should count as subscribed")
	}
}

func TestNewsletterService_Subscribe_ReactivatesInactive(t *testing.T) {
	logger := newTestLogger()
	repo := inmem.NewRepository()
	publisher := events.NewMockEventPublisher(logger)
	service := NewNewsletterService(repo, logger, validator.New(), publisher)
	ctx := context.Background()

	seed := &models.Newsletter{
		Email:        "old@email.com",
		SubscribedAt: time.Now().UTC().Add(-30 * 24 * time.Hour),
		IsActive:     false,
	}
	if err := repo.Newsletter().Create(ctx, seed); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	result, err := service.Subscribe(ctx, &SubscribeRequest{Email: "old@email.com"})
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	if result.AlreadySubscribed {
		t.Error("reactivation should not report already subscribed")
	}
	if !result.Subscription.IsActive {
		t.Error("subscription should be active after resubscribe")
	}

	_, total, err := repo.Newsletter().List(ctx, repositories.NewsletterFilters{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 {
		t.Errorf("reactivation must not create a second row, got %d", total)
	}
}

package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/CodeSmart-NG/school-service/internal/events"
	"github.com/CodeSmart-NG/school-service/internal/repositories/inmem"
	"github.com/CodeSmart-NG/school-service/internal/validator"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestContactService_Submit(t *testing.T) {
	logger := newTestLogger()
	repo := inmem.NewRepository()
	publisher := events.NewMockEventPublisher(logger)
	service := NewContactService(repo, logger, validator.New(), publisher)

	ctx := context.Background()
	phone := "+2348012345678"
	course := "Frontend Development"

	before := time.Now().UTC()
	msg, err := service.Submit(ctx, &ContactRequest{
		Name:    "Ahmed Musa",
		Email:   "ahmed@email.com",
		Phone:   &phone,
		Course:  &course,
		Message: "I want to learn React",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if msg.ID == 0 {
		t.Error("expected message to get an ID")
	}
	if msg.IsRead {
		t.Error("new messages must start unread")
	}
	if msg.Date.Before(before) || msg.Date.After(time.Now().UTC()) {
		t.Errorf("message date %v should be the submission time", msg.Date)
	}

	stored, err := repo.Message().GetByID(ctx, msg.ID)
	if err != nil {
		t.Fatalf("stored message not found: %v", err)
	}
	if stored.IsRead {
		t.Error("stored message must be unread")
	}
	if stored.Body != "I want to learn React" {
		t.Errorf("unexpected body %q", stored.Body)
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(published))
	}
	if published[0].Type != events.EventContactReceived {
		t.Errorf("expected event type %q, got %q", events.EventContactReceived, published[0].Type)
	}
}

func TestContactService_Submit_ValidationFailure(t *testing.T) {
	logger := newTestLogger()
	repo := inmem.NewRepository()
	publisher := events.NewMockEventPublisher(logger)
	service := NewContactService(repo, logger, validator.New(), publisher)

	tests := []struct {
		name string
		req  *ContactRequest
	}{
		{"missing name", &ContactRequest{Email: "a@b.com", Message: "hi"}},
		{"missing email", &ContactRequest{Name: "Ada", Message: "hi"}},
		{"invalid email", &ContactRequest{Name: "Ada", Email: "not-an-email", Message: "hi"}},
		{"missing message", &ContactRequest{Name: "Ada", Email: "a@b.com"}},
		{"bad phone", &ContactRequest{Name: "Ada", Email: "a@b.com", Phone: strPtr("12345"), Message: "hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Submit(context.Background(), tt.req)
			if !errors.Is(err, ErrValidationFailed) {
				t.Fatalf("expected validation failure, got %v", err)
			}

			var vfe *ValidationFailedError
			if !errors.As(err, &vfe) || len(vfe.Errors) == 0 {
				t.Error("expected field details on the validation error")
			}
		})
	}

	if got := publisher.GetPublishedEvents(); len(got) != 0 {
		t.Errorf("no events should be published for rejected submissions, got %d", len(got))
	}
}

func strPtr(s string) *string { return &s }

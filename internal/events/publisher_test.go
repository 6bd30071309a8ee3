package events

import (
	"context"
	"log/slog"
	"os"
	"testing"
)

func TestNewEvent_Envelope(t *testing.T) {
	event := NewEvent(EventContactReceived, map[string]any{"message_id": uint(7)})

	if event.ID == "" {
		t.Error("event ID should not be empty")
	}
	if event.Type != EventContactReceived {
		t.Errorf("expected type %q, got %q", EventContactReceived, event.Type)
	}
	if event.Source != "school-service" {
		t.Errorf("expected source 'school-service', got %q", event.Source)
	}
	if event.Version != "1.0" {
		t.Errorf("expected version '1.0', got %q", event.Version)
	}
	if event.Timestamp.IsZero() {
		t.Error("event timestamp should not be zero")
	}
}

func TestMockEventPublisher_RecordsAndClears(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	publisher := NewMockEventPublisher(logger)
	ctx := context.Background()

	if err := publisher.Publish(ctx, NewEvent(EventStudentEnrolled, nil)); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if err := publisher.Publish(ctx, NewEvent(EventPaymentCreated, nil)); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 2 {
		t.Fatalf("expected 2 events, got %d", len(published))
	}
	if published[0].Type != EventStudentEnrolled {
		t.Errorf("expected first event %q, got %q", EventStudentEnrolled, published[0].Type)
	}

	publisher.ClearEvents()
	if remaining := publisher.GetPublishedEvents(); len(remaining) != 0 {
		t.Errorf("expected no events after clear, got %d", len(remaining))
	}
}

func TestNoopEventPublisher_DropsSilently(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	publisher := NewNoopEventPublisher(logger)

	if err := publisher.Publish(context.Background(), NewEvent(EventNewsletterSubscribed, nil)); err != nil {
		t.Errorf("noop publish should never fail: %v", err)
	}
	if err := publisher.Close(); err != nil {
		t.Errorf("noop close should never fail: %v", err)
	}
}

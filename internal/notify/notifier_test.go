package notify

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/CodeSmart-NG/school-service/internal/events"
)

type recordingEmailService struct {
	mu   sync.Mutex
	sent []EmailMessage
}

func (r *recordingEmailService) Send(ctx context.Context, msg EmailMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, msg)
	return nil
}

func (r *recordingEmailService) messages() []EmailMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]EmailMessage, len(r.sent))
	copy(out, r.sent)
	return out
}

func newNotifierForTest(adminEmail string) (*Notifier, *events.MockEventPublisher, *recordingEmailService) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	publisher := events.NewMockEventPublisher(logger)
	mail := &recordingEmailService{}
	return NewNotifier(publisher, mail, adminEmail, logger), publisher, mail
}

func TestNotifier_ContactAlert(t *testing.T) {
	notifier, publisher, mail := newNotifierForTest("admin@codesmart.ng")

	event := events.NewEvent(events.EventContactReceived, map[string]any{
		"name":   "Ahmed Musa",
		"email":  "ahmed@email.com",
		"course": "Frontend Development",
	})
	if err := notifier.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	// Event still reaches the wrapped publisher.
	if got := publisher.GetPublishedEvents(); len(got) != 1 {
		t.Fatalf("expected 1 forwarded event, got %d", len(got))
	}

	sent := mail.messages()
	if len(sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(sent))
	}
	if sent[0].ToEmail != "admin@codesmart.ng" {
		t.Errorf("contact alert should go to the admin inbox, got %q", sent[0].ToEmail)
	}
}

func TestNotifier_ContactAlert_NoAdminConfigured(t *testing.T) {
	notifier, _, mail := newNotifierForTest("")

	event := events.NewEvent(events.EventContactReceived, map[string]any{
		"name":  "Ada",
		"email": "ada@email.com",
	})
	if err := notifier.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if len(mail.messages()) != 0 {
		t.Error("no alert should be sent without an admin inbox")
	}
}

func TestNotifier_WelcomeAndReceipt(t *testing.T) {
	notifier, _, mail := newNotifierForTest("admin@codesmart.ng")
	ctx := context.Background()

	subscribe := events.NewEvent(events.EventNewsletterSubscribed, map[string]any{
		"email": "ada@email.com",
	})
	enroll := events.NewEvent(events.EventStudentEnrolled, map[string]any{
		"name":   "Ada Obi",
		"email":  "ada@email.com",
		"course": "Backend Development",
	})
	for _, event := range []events.Event{subscribe, enroll} {
		if err := notifier.Publish(ctx, event); err != nil {
			t.Fatalf("publish failed: %v", err)
		}
	}

	sent := mail.messages()
	if len(sent) != 2 {
		t.Fatalf("expected 2 emails, got %d", len(sent))
	}
	if sent[0].Subject != "Welcome to the CodeSmart newsletter" {
		t.Errorf("unexpected welcome subject %q", sent[0].Subject)
	}
	if sent[1].ToEmail != "ada@email.com" || sent[1].Subject != "Enrollment received" {
		t.Errorf("unexpected receipt %+v", sent[1])
	}
}

func TestNotifier_IgnoresUnknownEvents(t *testing.T) {
	notifier, publisher, mail := newNotifierForTest("admin@codesmart.ng")

	event := events.NewEvent(events.EventPaymentCreated, map[string]any{
		"reference": "ref-1",
	})
	if err := notifier.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if len(mail.messages()) != 0 {
		t.Error("payment events should not produce mail")
	}
	if got := publisher.GetPublishedEvents(); len(got) != 1 {
		t.Error("event should still be forwarded")
	}
}

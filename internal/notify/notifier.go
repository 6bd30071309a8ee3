package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/CodeSmart-NG/school-service/internal/events"
)

// Notifier turns domain events into email. It implements
// events.EventPublisher as a decorator: every event is forwarded to the
// wrapped publisher and, for the types it knows, also mailed.
type Notifier struct {
	next       events.EventPublisher
	email      EmailService
	adminEmail string
	logger     *slog.Logger
}

// NewNotifier decorates next with email side effects. adminEmail
// receives contact enquiry alerts; an empty adminEmail disables them.
func NewNotifier(next events.EventPublisher, email EmailService, adminEmail string, logger *slog.Logger) *Notifier {
	return &Notifier{
		next:       next,
		email:      email,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

func (n *Notifier) Publish(ctx context.Context, event events.Event) error {
	if err := n.next.Publish(ctx, event); err != nil {
		return err
	}

	// Mail failures are logged, never propagated. The triggering
	// operation already succeeded.
	if err := n.notify(ctx, event); err != nil {
		n.logger.Error("Failed to send notification email", "error", err, "event_type", event.Type)
	}
	return nil
}

func (n *Notifier) Close() error { return n.next.Close() }

func (n *Notifier) notify(ctx context.Context, event events.Event) error {
	data := eventData(event)

	switch event.Type {
	case events.EventContactReceived:
		if n.adminEmail == "" {
			return nil
		}
		return n.email.Send(ctx, EmailMessage{
			ToName:  "Admin",
			ToEmail: n.adminEmail,
			Subject: "New contact enquiry",
			Text: fmt.Sprintf("New enquiry from %s (%s).\nCourse: %s",
				data["name"], data["email"], stringOr(data["course"], "not specified")),
		})

	case events.EventNewsletterSubscribed:
		email, _ := data["email"].(string)
		if email == "" {
			return nil
		}
		return n.email.Send(ctx, EmailMessage{
			ToEmail: email,
			Subject: "Welcome to the CodeSmart newsletter",
			Text:    "Thanks for subscribing. You will hear from us about new courses, schedules and events.",
		})

	case events.EventStudentEnrolled:
		email, _ := data["email"].(string)
		name, _ := data["name"].(string)
		if email == "" {
			return nil
		}
		return n.email.Send(ctx, EmailMessage{
			ToName:  name,
			ToEmail: email,
			Subject: "Enrollment received",
			Text: fmt.Sprintf("Hi %s,\n\nYour enrollment for %s has been received. We will contact you with the next steps.",
				name, data["course"]),
		})
	}

	return nil
}

// eventData normalizes the envelope payload to a map. Events built in
// process carry map payloads already; anything else is round-tripped
// through JSON.
func eventData(event events.Event) map[string]any {
	if m, ok := event.Data.(map[string]any); ok {
		return m
	}
	raw, err := json.Marshal(event.Data)
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]any{}
	}
	return m
}

func stringOr(v any, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	if p, ok := v.(*string); ok && p != nil && *p != "" {
		return *p
	}
	return def
}

package siteclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/CodeSmart-NG/school-service/internal/models"
)

const liveRequestTimeout = 15 * time.Second

// LiveSource performs real HTTP calls against the public API.
type LiveSource struct {
	baseURL string
	client  *http.Client
}

// NewLiveSource builds a live data source. baseURL includes the /api
// prefix, e.g. "http://localhost:8080/api".
func NewLiveSource(baseURL string) *LiveSource {
	return &LiveSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: liveRequestTimeout},
	}
}

// envelope is the uniform response wrapper of the public API.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (s *LiveSource) call(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	if resp.StatusCode >= 400 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = resp.Status
		}
		return fmt.Errorf("%w: %s %s: %s", ErrRequestFailed, method, path, msg)
	}

	if out != nil {
		// Flat responses carry their fields beside "success" rather
		// than under "data".
		src := raw
		if len(env.Data) > 0 {
			src = env.Data
		}
		if err := json.Unmarshal(src, out); err != nil {
			return fmt.Errorf("%s %s: decode payload: %w", method, path, err)
		}
	}
	return nil
}

func listFrom[T any](s *LiveSource, ctx context.Context, path string) ([]T, error) {
	var items []T
	if err := s.call(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *LiveSource) Courses(ctx context.Context) ([]models.Course, error) {
	return listFrom[models.Course](s, ctx, "/courses")
}

func (s *LiveSource) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	return listFrom[models.Testimonial](s, ctx, "/testimonials")
}

func (s *LiveSource) Schedule(ctx context.Context) ([]models.ScheduleEntry, error) {
	return listFrom[models.ScheduleEntry](s, ctx, "/schedule")
}

func (s *LiveSource) SubmitContact(ctx context.Context, form ContactForm) error {
	return s.call(ctx, http.MethodPost, "/contact", form, nil)
}

func (s *LiveSource) Subscribe(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return s.call(ctx, http.MethodPost, "/newsletter/subscribe", body, nil)
}

func (s *LiveSource) Enroll(ctx context.Context, form EnrollForm) (uint, error) {
	var out struct {
		StudentID uint `json:"student_id"`
	}
	if err := s.call(ctx, http.MethodPost, "/enroll", form, &out); err != nil {
		return 0, err
	}
	return out.StudentID, nil
}

func (s *LiveSource) CreatePayment(ctx context.Context, form PaymentForm) (*PaymentSession, error) {
	var session PaymentSession
	if err := s.call(ctx, http.MethodPost, "/payment/create", form, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

package siteclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CodeSmart-NG/school-service/internal/config"
	"github.com/CodeSmart-NG/school-service/internal/models"
)

// testAPIServer emulates the public API closely enough for the live
// source: list endpoints wrap their payload in the uniform envelope,
// payment/create returns its fields flat.
func testAPIServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	writeEnvelope := func(w http.ResponseWriter, data any) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
	}

	mux.HandleFunc("GET /api/courses", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, []models.Course{
			{ID: 1, Name: "Frontend Development", Fee: 50000, Status: models.CourseActive},
		})
	})
	mux.HandleFunc("GET /api/testimonials", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, []models.Testimonial{{ID: 1, Name: "Adaeze O.", IsApproved: true}})
	})
	mux.HandleFunc("GET /api/schedule", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, []models.ScheduleEntry{{Course: "Frontend Development", SeatsLeft: 8}})
	})
	mux.HandleFunc("POST /api/contact", func(w http.ResponseWriter, r *http.Request) {
		var form ContactForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil || form.Email == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Validation failed"})
			return
		}
		w.WriteHeader(http.StatusCreated)
		writeEnvelope(w, nil)
	})
	mux.HandleFunc("POST /api/newsletter/subscribe", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, nil)
	})
	mux.HandleFunc("POST /api/enroll", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		writeEnvelope(w, map[string]any{"student_id": 42, "payment_status": "pending"})
	})
	mux.HandleFunc("POST /api/payment/create", func(w http.ResponseWriter, r *http.Request) {
		var form PaymentForm
		json.NewDecoder(r.Body).Decode(&form)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"success":   true,
			"reference": "REF-1234",
			"amount":    form.Amount,
			"email":     form.Email,
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// Both implementations must satisfy the same contract; callers never
// branch on which one answered.
func TestDataSourceContract(t *testing.T) {
	server := testAPIServer(t)

	sources := map[string]DataSource{
		"live": NewLiveSource(server.URL + "/api"),
		"mock": NewMockSource(),
	}

	for name, source := range sources {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			courses, err := source.Courses(ctx)
			if err != nil {
				t.Fatalf("Courses: %v", err)
			}
			if len(courses) == 0 || courses[0].Name == "" {
				t.Error("expected at least one named course")
			}

			testimonials, err := source.Testimonials(ctx)
			if err != nil {
				t.Fatalf("Testimonials: %v", err)
			}
			for _, ts := range testimonials {
				if !ts.IsApproved {
					t.Errorf("unapproved testimonial %d served", ts.ID)
				}
			}

			schedule, err := source.Schedule(ctx)
			if err != nil {
				t.Fatalf("Schedule: %v", err)
			}
			if len(schedule) == 0 {
				t.Error("expected schedule entries")
			}

			if err := source.SubmitContact(ctx, ContactForm{
				Name: "A", Email: "a@a.com", Message: "hi",
			}); err != nil {
				t.Errorf("SubmitContact: %v", err)
			}

			if err := source.Subscribe(ctx, "x@x.com"); err != nil {
				t.Errorf("Subscribe: %v", err)
			}

			studentID, err := source.Enroll(ctx, EnrollForm{
				Name: "A", Email: "a@a.com", Course: "Frontend Development",
			})
			if err != nil {
				t.Fatalf("Enroll: %v", err)
			}
			if studentID == 0 {
				t.Error("expected a student id")
			}

			session, err := source.CreatePayment(ctx, PaymentForm{
				Name: "A", Email: "a@a.com", Course: "Frontend Development", Amount: 50000,
			})
			if err != nil {
				t.Fatalf("CreatePayment: %v", err)
			}
			if session.Reference == "" || session.Amount != 50000 || session.Email != "a@a.com" {
				t.Errorf("bad payment session: %+v", session)
			}
		})
	}
}

func TestLiveSource_SurfacesAPIErrors(t *testing.T) {
	server := testAPIServer(t)
	source := NewLiveSource(server.URL + "/api")

	// Missing email fails validation server-side.
	err := source.SubmitContact(context.Background(), ContactForm{Name: "A", Message: "hi"})
	if !errors.Is(err, ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got %v", err)
	}
}

func TestLiveSource_EnrollReturnsStudentID(t *testing.T) {
	server := testAPIServer(t)
	source := NewLiveSource(server.URL + "/api")

	id, err := source.Enroll(context.Background(), EnrollForm{
		Name: "A", Email: "a@a.com", Course: "Backend Development",
	})
	if err != nil {
		t.Fatalf("Enroll: %v", err)
	}
	if id != 42 {
		t.Errorf("student id = %d, want 42", id)
	}
}

func TestNew_SelectsSourceFromConfig(t *testing.T) {
	live, err := New(&config.Config{DataSource: "live", SiteBaseURL: "http://localhost:8080/api"})
	if err != nil {
		t.Fatalf("live: %v", err)
	}
	if _, ok := live.(*LiveSource); !ok {
		t.Errorf("expected *LiveSource, got %T", live)
	}

	mock, err := New(&config.Config{DataSource: "mock"})
	if err != nil {
		t.Fatalf("mock: %v", err)
	}
	if _, ok := mock.(*MockSource); !ok {
		t.Errorf("expected *MockSource, got %T", mock)
	}

	if _, err := New(&config.Config{DataSource: "csv"}); err == nil {
		t.Error("unknown source must be rejected")
	}
}

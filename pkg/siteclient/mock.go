package siteclient

import (
	"context"
	"sync"
	"time"

	"github.com/CodeSmart-NG/school-service/internal/models"
	"gorm.io/datatypes"
)

// MockSource answers every request from a fixed in-memory table, for
// offline demos and frontend development without a running API.
type MockSource struct {
	mu            sync.Mutex
	nextStudentID uint
	nextReference int
}

func NewMockSource() *MockSource {
	return &MockSource{nextStudentID: 1, nextReference: 1}
}

// Canned catalog mirroring the public seed data.
func mockCourses() []models.Course {
	return []models.Course{
		{
			ID: 1, Name: "Frontend Development", Category: "frontend",
			Duration: "3 Months", Fee: 50000, Language: "English",
			Status:      models.CourseActive,
			Description: "Build modern, responsive websites from scratch.",
			Learn:       datatypes.NewJSONSlice([]string{"HTML5", "CSS3", "JavaScript", "React", "Responsive Design"}),
		},
		{
			ID: 2, Name: "Backend Development", Category: "backend",
			Duration: "4 Months", Fee: 75000, Language: "English",
			Status:      models.CourseActive,
			Description: "Design APIs and data models that power real products.",
			Learn:       datatypes.NewJSONSlice([]string{"Node.js", "Databases", "REST APIs", "Authentication"}),
		},
		{
			ID: 3, Name: "Full Stack Development", Category: "fullstack",
			Duration: "6 Months", Fee: 120000, Language: "English",
			Status:      models.CourseActive,
			Description: "Everything from the browser to the database.",
			Learn:       datatypes.NewJSONSlice([]string{"HTML5", "JavaScript", "React", "Node.js", "Databases", "Deployment"}),
		},
	}
}

func mockTestimonials() []models.Testimonial {
	base := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	return []models.Testimonial{
		{
			ID: 1, Name: "Adaeze O.", Position: "Frontend Developer",
			Body:       "I came in knowing nothing and left with a job offer.",
			Rating:     5, IsApproved: true, Date: base.AddDate(0, 1, 0),
		},
		{
			ID: 2, Name: "Ibrahim S.", Position: "Software Engineer",
			Body:       "The instructors actually care whether you understand.",
			Rating:     5, IsApproved: true, Date: base,
		},
	}
}

func mockSchedule() []models.ScheduleEntry {
	start := time.Now().UTC().Truncate(24 * time.Hour)
	return []models.ScheduleEntry{
		{Course: "Frontend Development", Date: start.AddDate(0, 0, 3), Time: "10:00 AM - 1:00 PM", Instructor: "Mr. Johnson", Mode: "Onsite", SeatsLeft: 8},
		{Course: "Backend Development", Date: start.AddDate(0, 0, 7), Time: "2:00 PM - 5:00 PM", Instructor: "Mrs. Adebayo", Mode: "Online", SeatsLeft: 12},
		{Course: "Full Stack Development", Date: start.AddDate(0, 0, 14), Time: "10:00 AM - 4:00 PM", Instructor: "Mr. Okafor", Mode: "Hybrid", SeatsLeft: 5},
	}
}

func (m *MockSource) Courses(ctx context.Context) ([]models.Course, error) {
	return mockCourses(), nil
}

func (m *MockSource) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	return mockTestimonials(), nil
}

func (m *MockSource) Schedule(ctx context.Context) ([]models.ScheduleEntry, error) {
	return mockSchedule(), nil
}

func (m *MockSource) SubmitContact(ctx context.Context, form ContactForm) error {
	return nil
}

func (m *MockSource) Subscribe(ctx context.Context, email string) error {
	return nil
}

func (m *MockSource) Enroll(ctx context.Context, form EnrollForm) (uint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextStudentID
	m.nextStudentID++
	return id, nil
}

func (m *MockSource) CreatePayment(ctx context.Context, form PaymentForm) (*PaymentSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ref := mockReference(m.nextReference)
	m.nextReference++
	return &PaymentSession{Reference: ref, Amount: form.Amount, Email: form.Email}, nil
}

func mockReference(n int) string {
	const digits = "0123456789"
	buf := []byte("MOCK-00000000")
	for i := len(buf) - 1; i >= 5 && n > 0; i-- {
		buf[i] = digits[n%10]
		n /= 10
	}
	return string(buf)
}

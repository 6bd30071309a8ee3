package admin

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/CodeSmart-NG/school-service/internal/models"
	"github.com/CodeSmart-NG/school-service/internal/repositories"
	"github.com/CodeSmart-NG/school-service/internal/validator"
)

// BuildResources wires every managed entity into the registry. The
// panel grows a new section by adding an entry here.
func BuildResources(repo repositories.Repository, v *validator.Validator) (*Registry, error) {
	registry := NewRegistry()

	resources := []*Resource{
		messagesResource(repo),
		coursesResource(repo, v),
		studentsResource(repo),
		newslettersResource(repo),
		testimonialsResource(repo, v),
		paymentsResource(repo),
		usersResource(repo, v),
	}
	for _, res := range resources {
		if err := registry.Register(res); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// validateAs decodes the body into the request type carrying the
// validate tags and runs it through the validator. On update the store
// passes the merged record, so required fields are always present.
func validateAs[R any](v *validator.Validator) func(body []byte) error {
	return func(body []byte) error {
		var req R
		if err := json.Unmarshal(body, &req); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		}
		if verrs := v.Validate(&req); verrs != nil {
			return &InvalidRecordError{Fields: verrs}
		}
		return nil
	}
}

func messagesResource(repo repositories.Repository) *Resource {
	return &Resource{
		Name:  "messages",
		Title: "Messages",
		Store: NewStore(
			nil,
			func(ctx context.Context) ([]*models.Message, error) {
				msgs, _, err := repo.Message().List(ctx, repositories.MessageFilters{})
				return msgs, err
			},
			repo.Message().GetByID,
			repo.Message().Create,
			repo.Message().Update,
			repo.Message().Delete,
		),
		Actions: []Action{
			{
				Name:  "mark-as-read",
				Title: "Mark as read",
				Handler: func(ctx context.Context, id uint) error {
					return repo.Message().MarkAsRead(ctx, id)
				},
			},
		},
		ExportHeaders: []string{"ID", "Name", "Email", "Phone", "Course", "Subject", "Message", "Date", "Read"},
		ExportRows: func(records interface{}) [][]interface{} {
			msgs := records.([]*models.Message)
			rows := make([][]interface{}, 0, len(msgs))
			for _, m := range msgs {
				rows = append(rows, []interface{}{
					m.ID, m.Name, m.Email, strOrEmpty(m.Phone), strOrEmpty(m.Course),
					strOrEmpty(m.Subject), m.Body, m.Date.Format("2006-01-02 15:04"), m.IsRead,
				})
			}
			return rows
		},
	}
}

func coursesResource(repo repositories.Repository, v *validator.Validator) *Resource {
	return &Resource{
		Name:  "courses",
		Title: "Courses",
		Store: NewStore(
			validateAs[validator.CourseUpsertRequest](v),
			func(ctx context.Context) ([]*models.Course, error) {
				courses, _, err := repo.Course().List(ctx, repositories.CourseFilters{})
				return courses, err
			},
			repo.Course().GetByID,
			repo.Course().Create,
			repo.Course().Update,
			repo.Course().Delete,
		),
		ExportHeaders: []string{"ID", "Name", "Category", "Duration", "Fee", "Language", "Status"},
		ExportRows: func(records interface{}) [][]interface{} {
			courses := records.([]*models.Course)
			rows := make([][]interface{}, 0, len(courses))
			for _, c := range courses {
				rows = append(rows, []interface{}{c.ID, c.Name, c.Category, c.Duration, c.Fee, c.Language, string(c.Status)})
			}
			return rows
		},
	}
}

func studentsResource(repo repositories.Repository) *Resource {
	return &Resource{
		Name:  "students",
		Title: "Students",
		Store: NewStore(
			nil,
			func(ctx context.Context) ([]*models.Student, error) {
				students, _, err := repo.Student().List(ctx, repositories.StudentFilters{})
				return students, err
			},
			repo.Student().GetByID,
			repo.Student().Create,
			repo.Student().Update,
			repo.Student().Delete,
		),
		ExportHeaders: []string{"ID", "Name", "Email", "Course", "Payment Status", "Amount Paid", "Reference", "Enrolled", "Status"},
		ExportRows: func(records interface{}) [][]interface{} {
			students := records.([]*models.Student)
			rows := make([][]interface{}, 0, len(students))
			for _, s := range students {
				amount := ""
				if s.AmountPaid != nil {
					amount = fmt.Sprintf("%.2f", *s.AmountPaid)
				}
				rows = append(rows, []interface{}{
					s.ID, s.Name, s.Email, s.Course, string(s.PaymentStatus), amount,
					strOrEmpty(s.PaymentReference), s.EnrollmentDate.Format("2006-01-02"), string(s.Status),
				})
			}
			return rows
		},
	}
}

func newslettersResource(repo repositories.Repository) *Resource {
	return &Resource{
		Name:  "newsletters",
		Title: "Newsletter Subscriptions",
		Store: NewStore(
			nil,
			func(ctx context.Context) ([]*models.Newsletter, error) {
				subs, _, err := repo.Newsletter().List(ctx, repositories.NewsletterFilters{})
				return subs, err
			},
			repo.Newsletter().GetByID,
			repo.Newsletter().Create,
			repo.Newsletter().Update,
			repo.Newsletter().Delete,
		),
		ExportHeaders: []string{"ID", "Email", "Subscribed At", "Active"},
		ExportRows: func(records interface{}) [][]interface{} {
			subs := records.([]*models.Newsletter)
			rows := make([][]interface{}, 0, len(subs))
			for _, n := range subs {
				rows = append(rows, []interface{}{n.ID, n.Email, n.SubscribedAt.Format("2006-01-02 15:04"), n.IsActive})
			}
			return rows
		},
	}
}

func testimonialsResource(repo repositories.Repository, v *validator.Validator) *Resource {
	return &Resource{
		Name:  "testimonials",
		Title: "Testimonials",
		Store: NewStore(
			validateAs[validator.TestimonialUpsertRequest](v),
			func(ctx context.Context) ([]*models.Testimonial, error) {
				tsts, _, err := repo.Testimonial().List(ctx, repositories.TestimonialFilters{})
				return tsts, err
			},
			repo.Testimonial().GetByID,
			repo.Testimonial().Create,
			repo.Testimonial().Update,
			repo.Testimonial().Delete,
		),
		ExportHeaders: []string{"ID", "Name", "Position", "Message", "Rating", "Approved", "Date"},
		ExportRows: func(records interface{}) [][]interface{} {
			tsts := records.([]*models.Testimonial)
			rows := make([][]interface{}, 0, len(tsts))
			for _, t := range tsts {
				rows = append(rows, []interface{}{t.ID, t.Name, t.Position, t.Body, t.Rating, t.IsApproved, t.Date.Format("2006-01-02")})
			}
			return rows
		},
	}
}

func paymentsResource(repo repositories.Repository) *Resource {
	return &Resource{
		Name:  "payments",
		Title: "Payments",
		Store: NewStore(
			nil,
			func(ctx context.Context) ([]*models.Payment, error) {
				payments, _, err := repo.Payment().List(ctx, repositories.PaymentFilters{})
				return payments, err
			},
			repo.Payment().GetByID,
			repo.Payment().Create,
			repo.Payment().Update,
			repo.Payment().Delete,
		),
		ExportHeaders: []string{"ID", "Reference", "Order", "Name", "Email", "Course", "Amount", "Status"},
		ExportRows: func(records interface{}) [][]interface{} {
			payments := records.([]*models.Payment)
			rows := make([][]interface{}, 0, len(payments))
			for _, p := range payments {
				rows = append(rows, []interface{}{p.ID, p.Reference, p.OrderID, p.Name, p.Email, p.Course, p.Amount, string(p.Status)})
			}
			return rows
		},
	}
}

func usersResource(repo repositories.Repository, v *validator.Validator) *Resource {
	return &Resource{
		Name:  "users",
		Title: "Admin Users",
		Store: newUsersStore(repo.User(), v),
		ExportHeaders: []string{"ID", "Name", "Email", "Role"},
		ExportRows: func(records interface{}) [][]interface{} {
			users := records.([]*models.User)
			rows := make([][]interface{}, 0, len(users))
			for _, u := range users {
				rows = append(rows, []interface{}{u.ID, u.Name, u.Email, string(u.Role)})
			}
			return rows
		},
	}
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

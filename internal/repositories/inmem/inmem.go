// Package inmem provides an in-memory Repository used by tests. It
// mirrors the behavior the postgres implementations rely on from the
// store: per-record atomicity, unique email indexes, and insertion
// order listing.
package inmem

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/CodeSmart-NG/school-service/internal/models"
	"github.com/CodeSmart-NG/school-service/internal/repositories"
)

type Repository struct {
	mu sync.RWMutex

	messages     map[uint]*models.Message
	courses      map[uint]*models.Course
	students     map[uint]*models.Student
	newsletters  map[uint]*models.Newsletter
	testimonials map[uint]*models.Testimonial
	payments     map[uint]*models.Payment
	users        map[uint]*models.User

	nextID map[string]uint
}

func NewRepository() *Repository {
	return &Repository{
		messages:     make(map[uint]*models.Message),
		courses:      make(map[uint]*models.Course),
		students:     make(map[uint]*models.Student),
		newsletters:  make(map[uint]*models.Newsletter),
		testimonials: make(map[uint]*models.Testimonial),
		payments:     make(map[uint]*models.Payment),
		users:        make(map[uint]*models.User),
		nextID:       make(map[string]uint),
	}
}

func (r *Repository) allocID(kind string) uint {
	r.nextID[kind]++
	return r.nextID[kind]
}

func (r *Repository) Message() repositories.MessageRepository         { return (*messageRepo)(r) }
func (r *Repository) Course() repositories.CourseRepository           { return (*courseRepo)(r) }
func (r *Repository) Student() repositories.StudentRepository         { return (*studentRepo)(r) }
func (r *Repository) Newsletter() repositories.NewsletterRepository   { return (*newsletterRepo)(r) }
func (r *Repository) Testimonial() repositories.TestimonialRepository { return (*testimonialRepo)(r) }
func (r *Repository) Payment() repositories.PaymentRepository         { return (*paymentRepo)(r) }
func (r *Repository) User() repositories.UserRepository               { return (*userRepo)(r) }

func (r *Repository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(r)
}

func (r *Repository) Ping(ctx context.Context) error { return nil }
func (r *Repository) Close() error                   { return nil }

// ===== MESSAGES =====

type messageRepo Repository

func (m *messageRepo) Create(ctx context.Context, msg *models.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if msg.Name == "" || msg.Email == "" || msg.Body == "" {
		return fmt.Errorf("message validation failed: required field missing")
	}
	msg.ID = (*Repository)(m).allocID("message")
	cp := *msg
	m.messages[msg.ID] = &cp
	return nil
}

func (m *messageRepo) GetByID(ctx context.Context, id uint) (*models.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	msg, ok := m.messages[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *msg
	return &cp, nil
}

func (m *messageRepo) List(ctx context.Context, filters repositories.MessageFilters) ([]*models.Message, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*models.Message
	for _, msg := range m.messages {
		if filters.IsRead != nil && msg.IsRead != *filters.IsRead {
			continue
		}
		if filters.Email != nil && msg.Email != *filters.Email {
			continue
		}
		cp := *msg
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return page(out, filters.Limit, filters.Offset), int64(len(out)), nil
}

func (m *messageRepo) Update(ctx context.Context, msg *models.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.messages[msg.ID]; !ok {
		return repositories.ErrNotFound
	}
	cp := *msg
	m.messages[msg.ID] = &cp
	return nil
}

func (m *messageRepo) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.messages[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.messages, id)
	return nil
}

func (m *messageRepo) MarkAsRead(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg, ok := m.messages[id]
	if !ok {
		return repositories.ErrNotFound
	}
	msg.IsRead = true
	return nil
}

// ===== COURSES =====

type courseRepo Repository

func (c *courseRepo) Create(ctx context.Context, course *models.Course) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	course.ID = (*Repository)(c).allocID("course")
	if course.Status == "" {
		course.Status = models.CourseActive
	}
	cp := *course
	c.courses[course.ID] = &cp
	return nil
}

func (c *courseRepo) GetByID(ctx context.Context, id uint) (*models.Course, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	course, ok := c.courses[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *course
	return &cp, nil
}

func (c *courseRepo) List(ctx context.Context, filters repositories.CourseFilters) ([]*models.Course, int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []*models.Course
	for _, course := range c.courses {
		if filters.Status != nil && course.Status != *filters.Status {
			continue
		}
		if filters.Category != nil && course.Category != *filters.Category {
			continue
		}
		cp := *course
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, filters.Limit, filters.Offset), int64(len(out)), nil
}

func (c *courseRepo) ListActive(ctx context.Context) ([]*models.Course, error) {
	status := models.CourseActive
	out, _, err := c.List(ctx, repositories.CourseFilters{Status: &status})
	return out, err
}

func (c *courseRepo) Update(ctx context.Context, course *models.Course) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.courses[course.ID]; !ok {
		return repositories.ErrNotFound
	}
	cp := *course
	c.courses[course.ID] = &cp
	return nil
}

func (c *courseRepo) Delete(ctx context.Context, id uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.courses[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(c.courses, id)
	return nil
}

// ===== STUDENTS =====

type studentRepo Repository

func (s *studentRepo) Create(ctx context.Context, student *models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	student.ID = (*Repository)(s).allocID("student")
	cp := *student
	s.students[student.ID] = &cp
	return nil
}

func (s *studentRepo) GetByID(ctx context.Context, id uint) (*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	student, ok := s.students[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *student
	return &cp, nil
}

func (s *studentRepo) List(ctx context.Context, filters repositories.StudentFilters) ([]*models.Student, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Student
	for _, student := range s.students {
		if filters.Course != nil && student.Course != *filters.Course {
			continue
		}
		if filters.PaymentStatus != nil && student.PaymentStatus != *filters.PaymentStatus {
			continue
		}
		if filters.Status != nil && student.Status != *filters.Status {
			continue
		}
		cp := *student
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, filters.Limit, filters.Offset), int64(len(out)), nil
}

func (s *studentRepo) Update(ctx context.Context, student *models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.students[student.ID]; !ok {
		return repositories.ErrNotFound
	}
	cp := *student
	s.students[student.ID] = &cp
	return nil
}

func (s *studentRepo) Delete(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.students[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.students, id)
	return nil
}

// ===== NEWSLETTERS =====

type newsletterRepo Repository

func (n *newsletterRepo) Create(ctx context.Context, sub *models.Newsletter) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, existing := range n.newsletters {
		if strings.EqualFold(existing.Email, sub.Email) {
			return fmt.Errorf("duplicate key: newsletters.email")
		}
	}
	sub.ID = (*Repository)(n).allocID("newsletter")
	cp := *sub
	n.newsletters[sub.ID] = &cp
	return nil
}

func (n *newsletterRepo) GetByEmail(ctx context.Context, email string) (*models.Newsletter, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, sub := range n.newsletters {
		if strings.EqualFold(sub.Email, email) {
			cp := *sub
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (n *newsletterRepo) GetByID(ctx context.Context, id uint) (*models.Newsletter, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	sub, ok := n.newsletters[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *sub
	return &cp, nil
}

func (n *newsletterRepo) List(ctx context.Context, filters repositories.NewsletterFilters) ([]*models.Newsletter, int64, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	var out []*models.Newsletter
	for _, sub := range n.newsletters {
		if filters.IsActive != nil && sub.IsActive != *filters.IsActive {
			continue
		}
		cp := *sub
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, filters.Limit, filters.Offset), int64(len(out)), nil
}

func (n *newsletterRepo) Update(ctx context.Context, sub *models.Newsletter) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.newsletters[sub.ID]; !ok {
		return repositories.ErrNotFound
	}
	cp := *sub
	n.newsletters[sub.ID] = &cp
	return nil
}

func (n *newsletterRepo) Delete(ctx context.Context, id uint) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.newsletters[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(n.newsletters, id)
	return nil
}

// ===== TESTIMONIALS =====

type testimonialRepo Repository

func (t *testimonialRepo) Create(ctx context.Context, tst *models.Testimonial) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	tst.ID = (*Repository)(t).allocID("testimonial")
	cp := *tst
	t.testimonials[tst.ID] = &cp
	return nil
}

func (t *testimonialRepo) GetByID(ctx context.Context, id uint) (*models.Testimonial, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	tst, ok := t.testimonials[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *tst
	return &cp, nil
}

func (t *testimonialRepo) List(ctx context.Context, filters repositories.TestimonialFilters) ([]*models.Testimonial, int64, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var out []*models.Testimonial
	for _, tst := range t.testimonials {
		if filters.IsApproved != nil && tst.IsApproved != *filters.IsApproved {
			continue
		}
		cp := *tst
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return page(out, filters.Limit, filters.Offset), int64(len(out)), nil
}

func (t *testimonialRepo) ListApproved(ctx context.Context, limit int) ([]*models.Testimonial, error) {
	approved := true
	out, _, err := t.List(ctx, repositories.TestimonialFilters{IsApproved: &approved, Limit: limit})
	return out, err
}

func (t *testimonialRepo) Update(ctx context.Context, tst *models.Testimonial) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.testimonials[tst.ID]; !ok {
		return repositories.ErrNotFound
	}
	cp := *tst
	t.testimonials[tst.ID] = &cp
	return nil
}

func (t *testimonialRepo) Delete(ctx context.Context, id uint) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.testimonials[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(t.testimonials, id)
	return nil
}

// ===== PAYMENTS =====

type paymentRepo Repository

func (p *paymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, existing := range p.payments {
		if existing.Reference == payment.Reference {
			return fmt.Errorf("duplicate key: payments.reference")
		}
	}
	payment.ID = (*Repository)(p).allocID("payment")
	cp := *payment
	p.payments[payment.ID] = &cp
	return nil
}

func (p *paymentRepo) GetByID(ctx context.Context, id uint) (*models.Payment, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	payment, ok := p.payments[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *payment
	return &cp, nil
}

func (p *paymentRepo) GetByReference(ctx context.Context, reference string) (*models.Payment, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, payment := range p.payments {
		if payment.Reference == reference {
			cp := *payment
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (p *paymentRepo) List(ctx context.Context, filters repositories.PaymentFilters) ([]*models.Payment, int64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var out []*models.Payment
	for _, payment := range p.payments {
		if filters.Status != nil && payment.Status != *filters.Status {
			continue
		}
		if filters.Email != nil && payment.Email != *filters.Email {
			continue
		}
		cp := *payment
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, filters.Limit, filters.Offset), int64(len(out)), nil
}

func (p *paymentRepo) Update(ctx context.Context, payment *models.Payment) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.payments[payment.ID]; !ok {
		return repositories.ErrNotFound
	}
	cp := *payment
	p.payments[payment.ID] = &cp
	return nil
}

func (p *paymentRepo) Delete(ctx context.Context, id uint) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.payments[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(p.payments, id)
	return nil
}

// ===== USERS =====

type userRepo Repository

func (u *userRepo) Create(ctx context.Context, user *models.User) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, existing := range u.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return fmt.Errorf("duplicate key: users.email")
		}
	}
	user.ID = (*Repository)(u).allocID("user")
	if user.Role == "" {
		user.Role = models.RoleAdmin
	}
	cp := *user
	u.users[user.ID] = &cp
	return nil
}

func (u *userRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	user, ok := u.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (u *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	for _, user := range u.users {
		if strings.EqualFold(user.Email, email) {
			cp := *user
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (u *userRepo) List(ctx context.Context, filters repositories.UserFilters) ([]*models.User, int64, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	var out []*models.User
	for _, user := range u.users {
		if filters.Query != "" {
			q := strings.ToLower(filters.Query)
			if !strings.Contains(strings.ToLower(user.Name), q) && !strings.Contains(strings.ToLower(user.Email), q) {
				continue
			}
		}
		cp := *user
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, filters.Limit, filters.Offset), int64(len(out)), nil
}

func (u *userRepo) Count(ctx context.Context) (int64, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return int64(len(u.users)), nil
}

func (u *userRepo) Update(ctx context.Context, user *models.User) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.users[user.ID]; !ok {
		return repositories.ErrNotFound
	}
	cp := *user
	u.users[user.ID] = &cp
	return nil
}

func (u *userRepo) Delete(ctx context.Context, id uint) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.users[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(u.users, id)
	return nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(items) {
			return nil
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

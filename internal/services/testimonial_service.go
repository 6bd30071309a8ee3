package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/CodeSmart-NG/school-service/internal/models"
	"github.com/CodeSmart-NG/school-service/internal/repositories"
)

// publicTestimonialLimit caps the testimonials endpoint. The marketing
// page shows a carousel; older approved quotes stay in the store.
const publicTestimonialLimit = 10

type testimonialService struct {
	repo   repositories.Repository
	logger *slog.Logger
	limit  int
}

func NewTestimonialService(repo repositories.Repository, logger *slog.Logger, limit int) TestimonialService {
	if limit <= 0 {
		limit = publicTestimonialLimit
	}
	return &testimonialService{
		repo:   repo,
		logger: logger,
		limit:  limit,
	}
}

// ListApproved returns approved testimonials, newest first.
func (s *testimonialService) ListApproved(ctx context.Context) ([]*models.Testimonial, error) {
	testimonials, err := s.repo.Testimonial().ListApproved(ctx, s.limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	if testimonials == nil {
		testimonials = []*models.Testimonial{}
	}
	return testimonials, nil
}

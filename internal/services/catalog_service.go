package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/CodeSmart-NG/school-service/internal/models"
	"github.com/CodeSmart-NG/school-service/internal/repositories"
)

type catalogService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewCatalogService(repo repositories.Repository, logger *slog.Logger) CatalogService {
	return &catalogService{
		repo:   repo,
		logger: logger,
	}
}

// ListCourses returns the active catalog entries. Inactive courses are
// never exposed publicly.
func (s *catalogService) ListCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.repo.Course().ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	if courses == nil {
		courses = []*models.Course{}
	}
	return courses, nil
}

func (s *catalogService) GetCourse(ctx context.Context, id uint) (*models.Course, error) {
	course, err := s.repo.Course().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("course %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	if course.Status != models.CourseActive {
		return nil, fmt.Errorf("course %d: %w", id, ErrNotFound)
	}
	return course, nil
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/CodeSmart-NG/school-service/internal/models"
	"github.com/CodeSmart-NG/school-service/internal/repositories/inmem"
)

func TestCatalogService_ListCourses_ActiveOnly(t *testing.T) {
	logger := newTestLogger()
	repo := inmem.NewRepository()
	service := NewCatalogService(repo, logger)
	ctx := context.Background()

	seed := []*models.Course{
		{Name: "Frontend Development", Category: "frontend", Fee: 50000, Status: models.CourseActive},
		{Name: "Backend Development", Category: "backend", Fee: 75000, Status: models.CourseActive},
		{Name: "Retired Course", Category: "misc", Fee: 10000, Status: models.CourseInactive},
	}
	for _, course := range seed {
		if err := repo.Course().Create(ctx, course); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	got, err := service.ListCourses(ctx)
	if err != nil {
		t.Fatalf("ListCourses failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 active courses, got %d", len(got))
	}
	for _, course := range got {
		if course.Status != models.CourseActive {
			t.Errorf("inactive course %q leaked into listing", course.Name)
		}
	}
}

func TestCatalogService_GetCourse(t *testing.T) {
	logger := newTestLogger()
	repo := inmem.NewRepository()
	service := NewCatalogService(repo, logger)
	ctx := context.Background()

	active := &models.Course{Name: "Frontend Development", Fee: 50000, Status: models.CourseActive}
	inactive := &models.Course{Name: "Retired Course", Fee: 10000, Status: models.CourseInactive}
	for _, course := range []*models.Course{active, inactive} {
		if err := repo.Course().Create(ctx, course); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	got, err := service.GetCourse(ctx, active.ID)
	if err != nil {
		t.Fatalf("GetCourse failed: %v", err)
	}
	if got.Name != "Frontend Development" {
		t.Errorf("unexpected course %q", got.Name)
	}

	if _, err := service.GetCourse(ctx, inactive.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("inactive course should read as not found, got %v", err)
	}
	if _, err := service.GetCourse(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing course should be not found, got %v", err)
	}
}

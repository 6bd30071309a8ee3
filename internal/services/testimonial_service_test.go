package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/CodeSmart-NG/school-service/internal/models"
	"github.com/CodeSmart-NG/school-service/internal/repositories/inmem"
)

func TestTestimonialService_ListApproved(t *testing.T) {
	logger := newTestLogger()
	repo := inmem.NewRepository()
	service := NewTestimonialService(repo, logger, 10)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	// 12 approved plus 3 unapproved, interleaved.
	for i := 0; i < 15; i++ {
		tst := &models.Testimonial{
			Name:       fmt.Sprintf("Student %d", i),
			Body:       "Great course",
			Rating:     5,
			IsApproved: i%5 != 0,
			Date:       base.AddDate(0, 0, i),
		}
		if err := repo.Testimonial().Create(ctx, tst); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	got, err := service.ListApproved(ctx)
	if err != nil {
		t.Fatalf("ListApproved failed: %v", err)
	}

	if len(got) != 10 {
		t.Fatalf("expected at most 10 testimonials, got %d", len(got))
	}
	for i, tst := range got {
		if !tst.IsApproved {
			t.Errorf("unapproved testimonial %q leaked", tst.Name)
		}
		if i > 0 && got[i-1].Date.Before(tst.Date) {
			t.Errorf("testimonials not in descending date order at index %d", i)
		}
	}
}

func TestTestimonialService_ListApproved_Empty(t *testing.T) {
	logger := newTestLogger()
	repo := inmem.NewRepository()
	service := NewTestimonialService(repo, logger, 10)

	got, err := service.ListApproved(context.Background())
	if err != nil {
		t.Fatalf("ListApproved failed: %v", err)
	}
	if got == nil {
		t.Error("expected empty slice, not nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no testimonials, got %d", len(got))
	}
}

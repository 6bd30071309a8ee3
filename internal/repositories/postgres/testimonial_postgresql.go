package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/CodeSmart-NG/school-service/internal/cache"
	"github.com/CodeSmart-NG/school-service/internal/models"
	"github.com/CodeSmart-NG/school-service/internal/repositories"
)

type TestimonialPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewTestimonialPostgreSQL(db *gorm.DB, cacheManager *cache.CacheManager) repositories.TestimonialRepository {
	return &TestimonialPostgreSQL{db: db, cacheManager: cacheManager}
}

func (t *TestimonialPostgreSQL) Create(ctx context.Context, tst *models.Testimonial) error {
	if err := t.db.WithContext(ctx).Create(tst).Error; err != nil {
		return fmt.Errorf("failed to create testimonial: %w", err)
	}
	cache.InvalidateTestimonialCache(ctx, t.cacheManager)
	return nil
}

func (t *TestimonialPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Testimonial, error) {
	var tst models.Testimonial
	if err := t.db.WithContext(ctx).First(&tst, id).Error; err != nil {
		return nil, wrapNotFound(err, "testimonial")
	}
	return &tst, nil
}

func (t *TestimonialPostgreSQL) List(ctx context.Context, filters repositories.TestimonialFilters) ([]*models.Testimonial, int64, error) {
	query := t.db.WithContext(ctx).Model(&models.Testimonial{})

	if filters.IsApproved != nil {
		query = query.Where("is_approved = ?", *filters.IsApproved)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count testimonials: %w", err)
	}

	var testimonials []*models.Testimonial
	err := applyPaging(query, filters.Limit, filters.Offset).
		Order("date DESC").
		Find(&testimonials).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list testimonials: %w", err)
	}

	return testimonials, total, nil
}

// ListApproved serves the marketing page carousel, cached.
func (t *TestimonialPostgreSQL) ListApproved(ctx context.Context, limit int) ([]*models.Testimonial, error) {
	var testimonials []*models.Testimonial

	cacheKey := fmt.Sprintf("approved:%d", limit)
	err := t.cacheManager.Testimonial.CacheOrExecute(ctx, cacheKey, &testimonials, cache.TestimonialCacheConfig.TTL, func() (interface{}, error) {
		var dbTestimonials []*models.Testimonial
		err := t.db.WithContext(ctx).
			Where("is_approved = ?", true).
			Order("date DESC").
			Limit(limit).
			Find(&dbTestimonials).Error
		if err != nil {
			return nil, fmt.Errorf("failed to list approved testimonials: %w", err)
		}
		return dbTestimonials, nil
	})
	if err != nil {
		return nil, err
	}

	return testimonials, nil
}

func (t *TestimonialPostgreSQL) Update(ctx context.Context, tst *models.Testimonial) error {
	if err := t.db.WithContext(ctx).Save(tst).Error; err != nil {
		return fmt.Errorf("failed to update testimonial: %w", err)
	}
	cache.InvalidateTestimonialCache(ctx, t.cacheManager)
	return nil
}

func (t *TestimonialPostgreSQL) Delete(ctx context.Context, id uint) error {
	res := t.db.WithContext(ctx).Delete(&models.Testimonial{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete testimonial: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	cache.InvalidateTestimonialCache(ctx, t.cacheManager)
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/CodeSmart-NG/school-service/internal/cache"
	"github.com/CodeSmart-NG/school-service/internal/models"
	"github.com/CodeSmart-NG/school-service/internal/repositories"
)

type CoursePostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewCoursePostgreSQL(db *gorm.DB, cacheManager *cache.CacheManager) repositories.CourseRepository {
	return &CoursePostgreSQL{db: db, cacheManager: cacheManager}
}

func (c *CoursePostgreSQL) Create(ctx context.Context, course *models.Course) error {
	if err := c.db.WithContext(ctx).Create(course).Error; err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	cache.InvalidateCatalogCache(ctx, c.cacheManager)
	return nil
}

func (c *CoursePostgreSQL) GetByID(ctx context.Context, id uint) (*models.Course, error) {
	var course models.Course
	if err := c.db.WithContext(ctx).First(&course, id).Error; err != nil {
		return nil, wrapNotFound(err, "course")
	}
	return &course, nil
}

func (c *CoursePostgreSQL) List(ctx context.Context, filters repositories.CourseFilters) ([]*models.Course, int64, error) {
	query := c.db.WithContext(ctx).Model(&models.Course{})

	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.Category != nil {
		query = query.Where("category = ?", *filters.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count courses: %w", err)
	}

	var courses []*models.Course
	err := applyPaging(query, filters.Limit, filters.Offset).
		Order("id ASC").
		Find(&courses).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list courses: %w", err)
	}

	return courses, total, nil
}

// ListActive serves the public catalog, cached because the marketing
// pages fetch it on every visit.
func (c *CoursePostgreSQL) ListActive(ctx context.Context) ([]*models.Course, error) {
	var courses []*models.Course

	err := c.cacheManager.Catalog.CacheOrExecute(ctx, "list:active", &courses, cache.CatalogCacheConfig.TTL, func() (interface{}, error) {
		var dbCourses []*models.Course
		err := c.db.WithContext(ctx).
			Where("status = ?", models.CourseActive).
			Order("id ASC").
			Find(&dbCourses).Error
		if err != nil {
			return nil, fmt.Errorf("failed to list active courses: %w", err)
		}
		return dbCourses, nil
	})
	if err != nil {
		return nil, err
	}

	return courses, nil
}

func (c *CoursePostgreSQL) Update(ctx context.Context, course *models.Course) error {
	if err := c.db.WithContext(ctx).Save(course).Error; err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}
	cache.InvalidateCatalogCache(ctx, c.cacheManager)
	return nil
}

func (c *CoursePostgreSQL) Delete(ctx context.Context, id uint) error {
	res := c.db.WithContext(ctx).Delete(&models.Course{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete course: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	cache.InvalidateCatalogCache(ctx, c.cacheManager)
	return nil
}

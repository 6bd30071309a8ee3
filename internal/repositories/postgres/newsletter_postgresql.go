package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/CodeSmart-NG/school-service/internal/models"
	"github.com/CodeSmart-NG/school-service/internal/repositories"
)

type NewsletterPostgreSQL struct {
	db *gorm.DB
}

func NewNewsletterPostgreSQL(db *gorm.DB) repositories.NewsletterRepository {
	return &NewsletterPostgreSQL{db: db}
}

func (n *NewsletterPostgreSQL) Create(ctx context.Context, sub *models.Newsletter) error {
	if err := n.db.WithContext(ctx).Create(sub).Error; err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

func (n *NewsletterPostgreSQL) GetByEmail(ctx context.Context, email string) (*models.Newsletter, error) {
	var sub models.Newsletter
	if err := n.db.WithContext(ctx).Where("email = ?", email).First(&sub).Error; err != nil {
		return nil, wrapNotFound(err, "subscription")
	}
	return &sub, nil
}

func (n *NewsletterPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Newsletter, error) {
	var sub models.Newsletter
	if err := n.db.WithContext(ctx).First(&sub, id).Error; err != nil {
		return nil, wrapNotFound(err, "subscription")
	}
	return &sub, nil
}

func (n *NewsletterPostgreSQL) List(ctx context.Context, filters repositories.NewsletterFilters) ([]*models.Newsletter, int64, error) {
	query := n.db.WithContext(ctx).Model(&models.Newsletter{})

	if filters.IsActive != nil {
		query = query.Where("is_active = ?", *filters.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	var subs []*models.Newsletter
	err := applyPaging(query, filters.Limit, filters.Offset).
		Order("subscribed_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return subs, total, nil
}

func (n *NewsletterPostgreSQL) Update(ctx context.Context, sub *models.Newsletter) error {
	if err := n.db.WithContext(ctx).Save(sub).Error; err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}
	return nil
}

func (n *NewsletterPostgreSQL) Delete(ctx context.Context, id uint) error {
	res := n.db.WithContext(ctx).Delete(&models.Newsletter{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete subscription: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

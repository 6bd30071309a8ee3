package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/CodeSmart-NG/school-service/internal/models"
	"github.com/CodeSmart-NG/school-service/internal/repositories"
)

type PaymentPostgreSQL struct {
	db *gorm.DB
}

func NewPaymentPostgreSQL(db *gorm.DB) repositories.PaymentRepository {
	return &PaymentPostgreSQL{db: db}
}

func (p *PaymentPostgreSQL) Create(ctx context.Context, payment *models.Payment) error {
	if err := p.db.WithContext(ctx).Create(payment).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

func (p *PaymentPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := p.db.WithContext(ctx).First(&payment, id).Error; err != nil {
		return nil, wrapNotFound(err, "payment")
	}
	return &payment, nil
}

func (p *PaymentPostgreSQL) GetByReference(ctx context.Context, reference string) (*models.Payment, error) {
	var payment models.Payment
	if err := p.db.WithContext(ctx).Where("reference = ?", reference).First(&payment).Error; err != nil {
		return nil, wrapNotFound(err, "payment")
	}
	return &payment, nil
}

func (p *PaymentPostgreSQL) List(ctx context.Context, filters repositories.PaymentFilters) ([]*models.Payment, int64, error) {
	query := p.db.WithContext(ctx).Model(&models.Payment{})

	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.Email != nil {
		query = query.Where("email = ?", *filters.Email)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	var payments []*models.Payment
	err := applyPaging(query, filters.Limit, filters.Offset).
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}

	return payments, total, nil
}

func (p *PaymentPostgreSQL) Update(ctx context.Context, payment *models.Payment) error {
	if err := p.db.WithContext(ctx).Save(payment).Error; err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	return nil
}

func (p *PaymentPostgreSQL) Delete(ctx context.Context, id uint) error {
	res := p.db.WithContext(ctx).Delete(&models.Payment{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete payment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

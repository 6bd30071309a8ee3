package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/CodeSmart-NG/school-service/internal/models"
	"github.com/CodeSmart-NG/school-service/internal/repositories"
)

type MessagePostgreSQL struct {
	db *gorm.DB
}

func NewMessagePostgreSQL(db *gorm.DB) repositories.MessageRepository {
	return &MessagePostgreSQL{db: db}
}

func (m *MessagePostgreSQL) Create(ctx context.Context, msg *models.Message) error {
	if err := m.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (m *MessagePostgreSQL) GetByID(ctx context.Context, id uint) (*models.Message, error) {
	var msg models.Message
	if err := m.db.WithContext(ctx).First(&msg, id).Error; err != nil {
		return nil, wrapNotFound(err, "message")
	}
	return &msg, nil
}

func (m *MessagePostgreSQL) List(ctx context.Context, filters repositories.MessageFilters) ([]*models.Message, int64, error) {
	query := m.db.WithContext(ctx).Model(&models.Message{})

	if filters.IsRead != nil {
		query = query.Where("is_read = ?", *filters.IsRead)
	}
	if filters.Email != nil {
		query = query.Where("email = ?", *filters.Email)
	}
	if filters.DateFrom != nil {
		query = query.Where("date >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("date <= ?", *filters.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count messages: %w", err)
	}

	var messages []*models.Message
	err := applyPaging(query, filters.Limit, filters.Offset).
		Order("date DESC").
		Find(&messages).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list messages: %w", err)
	}

	return messages, total, nil
}

func (m *MessagePostgreSQL) Update(ctx context.Context, msg *models.Message) error {
	if err := m.db.WithContext(ctx).Save(msg).Error; err != nil {
		return fmt.Errorf("failed to update message: %w", err)
	}
	return nil
}

func (m *MessagePostgreSQL) Delete(ctx context.Context, id uint) error {
	res := m.db.WithContext(ctx).Delete(&models.Message{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete message: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// MarkAsRead sets is_read on a message. Re-running it on a read message
// changes nothing, so the action stays idempotent.
func (m *MessagePostgreSQL) MarkAsRead(ctx context.Context, id uint) error {
	res := m.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("id = ?", id).
		Update("is_read", true)
	if res.Error != nil {
		return fmt.Errorf("failed to mark message as read: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Either missing or already read; distinguish the two.
		var count int64
		if err := m.db.WithContext(ctx).Model(&models.Message{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check message: %w", err)
		}
		if count == 0 {
			return repositories.ErrNotFound
		}
	}
	return nil
}

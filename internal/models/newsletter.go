package models

import (
	"time"
)

// Newsletter is a mailing list subscription. Rows are never physically
// removed; unsubscribing only flips IsActive.
type Newsletter struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	SubscribedAt time.Time `json:"subscribed_at" gorm:"not null"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
}

func (Newsletter) TableName() string {
	return "newsletters"
}

package models

import (
	"time"
)

// Testimonial is a student quote shown on the marketing pages once an
// admin approves it.
type Testimonial struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null;size:100"`
	Position string `json:"position" gorm:"size:100"`
	Body     string `json:"message" gorm:"column:message;not null;type:text"`
	Avatar   string `json:"avatar" gorm:"size:500"`
	Rating   int    `json:"rating" gorm:"not null;default:5"`

	IsApproved bool      `json:"is_approved" gorm:"default:false;index"`
	Date       time.Time `json:"date" gorm:"not null;index"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}

package models

import (
	"time"
)

// Message is a contact form / enquiry submission.
type Message struct {
	ID      uint    `json:"id" gorm:"primaryKey"`
	Name    string  `json:"name" gorm:"not null;size:100"`
	Email   string  `json:"email" gorm:"not null;size:255"`
	Phone   *string `json:"phone" gorm:"size:30"`
	Course  *string `json:"course" gorm:"size:100"`
	Subject *string `json:"subject" gorm:"size:200"`
	Body    string  `json:"message" gorm:"column:message;not null;type:text"`

	Date   time.Time `json:"date" gorm:"not null"`
	IsRead bool      `json:"is_read" gorm:"default:false"`
}

func (Message) TableName() string {
	return "messages"
}

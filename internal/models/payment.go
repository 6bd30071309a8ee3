package models

import (
	"time"
)

type PaymentRecordStatus string

const (
	PaymentInitiated PaymentRecordStatus = "initiated"
	PaymentSettled   PaymentRecordStatus = "settled"
)

// Payment is the server-side record behind a hosted checkout session.
// The reference is handed to the payment widget and later quoted back
// by the client when it enrolls.
type Payment struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	Reference string  `json:"reference" gorm:"uniqueIndex;not null;size:100"`
	OrderID   string  `json:"order_id" gorm:"size:100"`
	Name      string  `json:"name" gorm:"size:100"`
	Email     string  `json:"email" gorm:"not null;size:255"`
	Course    string  `json:"course" gorm:"size:100"`
	Amount    float64 `json:"amount" gorm:"not null"`

	Status      PaymentRecordStatus `json:"status" gorm:"size:20;default:initiated"`
	CheckoutURL *string             `json:"checkout_url" gorm:"size:500"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}

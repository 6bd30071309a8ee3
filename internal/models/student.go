package models

import (
	"time"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type StudentStatus string

const (
	StudentActive   StudentStatus = "active"
	StudentInactive StudentStatus = "inactive"
)

// Student is an enrollment record created when a prospective learner
// registers for a course, optionally after paying through the hosted
// checkout.
type Student struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"not null;size:100"`
	Email  string `json:"email" gorm:"not null;size:255;index"`
	Course string `json:"course" gorm:"not null;size:100"`

	PaymentStatus    PaymentStatus `json:"payment_status" gorm:"size:20;default:pending"`
	AmountPaid       *float64      `json:"amount_paid"`
	PaymentReference *string       `json:"payment_reference" gorm:"size:100"`

	EnrollmentDate time.Time     `json:"enrollment_date" gorm:"not null"`
	Status         StudentStatus `json:"status" gorm:"size:20;default:active"`
}

func (Student) TableName() string {
	return "students"
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

type CourseStatus string

const (
	CourseActive   CourseStatus = "active"
	CourseInactive CourseStatus = "inactive"
)

// Course is a catalog entry. Only active courses are served publicly.
type Course struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"not null;size:100"`
	Category    string       `json:"category" gorm:"size:50"`
	Duration    string       `json:"duration" gorm:"size:50"`
	Fee         float64      `json:"fee" gorm:"not null"`
	Language    string       `json:"language" gorm:"size:20"`
	Status      CourseStatus `json:"status" gorm:"size:20;default:active;index"`
	Description string       `json:"description" gorm:"type:text"`

	// Free-form lists, stored as JSON columns.
	Learn         datatypes.JSONSlice[string] `json:"learn"`
	Prerequisites datatypes.JSONSlice[string] `json:"prerequisites"`

	Image   *string `json:"image" gorm:"size:500"`
	Outline *string `json:"outline" gorm:"size:500"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Course) TableName() string {
	return "courses"
}

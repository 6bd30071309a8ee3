package models

import (
	"time"
)

// Response is the uniform envelope every public API endpoint returns.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ScheduleEntry is a computed class schedule row. Entries are generated
// from the current time on every request and never persisted.
type ScheduleEntry struct {
	Course     string    `json:"course"`
	Date       time.Time `json:"date"`
	Time       string    `json:"time"`
	Instructor string    `json:"instructor"`
	Mode       string    `json:"mode"`
	SeatsLeft  int       `json:"seats_left"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

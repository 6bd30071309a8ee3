package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/CodeSmart-NG/school-service/internal/models"
)

// scheduleSlot is one row of the class timetable. Slots are fixed;
// only the concrete date is computed, relative to the request time.
type scheduleSlot struct {
	Course     string
	DayOffset  int
	Time       string
	Instructor string
	Mode       string
	SeatsLeft  int
}

// scheduleTable drives GET /api/schedule. Entries are never persisted.
var scheduleTable = []scheduleSlot{
	{Course: "Frontend Development", DayOffset: 2, Time: "10:00 AM - 1:00 PM", Instructor: "Amina Bello", Mode: "Online", SeatsLeft: 12},
	{Course: "Backend Development", DayOffset: 4, Time: "2:00 PM - 5:00 PM", Instructor: "Chinedu Okafor", Mode: "Hybrid", SeatsLeft: 8},
	{Course: "Full Stack Development", DayOffset: 7, Time: "10:00 AM - 2:00 PM", Instructor: "Ibrahim Sani", Mode: "On-site", SeatsLeft: 5},
	{Course: "Computer Basics", DayOffset: 9, Time: "9:00 AM - 12:00 PM", Instructor: "Ngozi Eze", Mode: "On-site", SeatsLeft: 20},
	{Course: "Frontend Development", DayOffset: 14, Time: "2:00 PM - 5:00 PM", Instructor: "Amina Bello", Mode: "Online", SeatsLeft: 15},
	{Course: "Backend Development", DayOffset: 16, Time: "10:00 AM - 1:00 PM", Instructor: "Chinedu Okafor", Mode: "Online", SeatsLeft: 10},
}

type scheduleService struct {
	logger *slog.Logger
}

func NewScheduleService(logger *slog.Logger) ScheduleService {
	return &scheduleService{logger: logger}
}

// Upcoming computes the schedule entries relative to now. Dates are
// normalized to midnight UTC so two calls on the same day agree.
func (s *scheduleService) Upcoming(ctx context.Context, now time.Time) ([]models.ScheduleEntry, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	entries := make([]models.ScheduleEntry, 0, len(scheduleTable))
	for _, slot := range scheduleTable {
		entries = append(entries, models.ScheduleEntry{
			Course:     slot.Course,
			Date:       today.AddDate(0, 0, slot.DayOffset),
			Time:       slot.Time,
			Instructor: slot.Instructor,
			Mode:       slot.Mode,
			SeatsLeft:  slot.SeatsLeft,
		})
	}
	return entries, nil
}

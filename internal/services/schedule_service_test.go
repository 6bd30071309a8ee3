package services

import (
	"context"
	"testing"
	"time"
)

func TestScheduleService_Upcoming(t *testing.T) {
	service := NewScheduleService(newTestLogger())
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

	entries, err := service.Upcoming(context.Background(), now)
	if err != nil {
		t.Fatalf("Upcoming failed: %v", err)
	}
	if len(entries) != len(scheduleTable) {
		t.Fatalf("expected %d entries, got %d", len(scheduleTable), len(entries))
	}

	for i, entry := range entries {
		slot := scheduleTable[i]
		wantDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC).AddDate(0, 0, slot.DayOffset)
		if !entry.Date.Equal(wantDate) {
			t.Errorf("entry %d: expected date %v, got %v", i, wantDate, entry.Date)
		}
		if entry.Course != slot.Course || entry.Instructor != slot.Instructor {
			t.Errorf("entry %d does not match its slot", i)
		}
		if entry.SeatsLeft <= 0 {
			t.Errorf("entry %d: seats left must be positive", i)
		}
	}
}

func TestScheduleService_Upcoming_StableWithinDay(t *testing.T) {
	service := NewScheduleService(newTestLogger())
	ctx := context.Background()

	morning := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 3, 10, 22, 45, 0, 0, time.UTC)

	a, err := service.Upcoming(ctx, morning)
	if err != nil {
		t.Fatalf("Upcoming failed: %v", err)
	}
	b, err := service.Upcoming(ctx, evening)
	if err != nil {
		t.Fatalf("Upcoming failed: %v", err)
	}

	for i := range a {
		if !a[i].Date.Equal(b[i].Date) {
			t.Errorf("entry %d: dates differ within the same day: %v vs %v", i, a[i].Date, b[i].Date)
		}
	}
}

// Package schedule generates the bookable calendar dates and time-of-day
// slot grid offered when booking an appointment with a doctor.
package schedule

import (
	"fmt"
	"time"
)

// DateValueFormat is the wire format for calendar dates ("2025-03-12").
const DateValueFormat = "2006-01-02"

// DateOption is a selectable calendar date.
type DateOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SlotOption is a selectable time-of-day slot.
type SlotOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// AvailableDates walks the next horizonDays calendar days starting tomorrow
// and keeps the days whose weekday name appears in weekdays. The result is
// strictly chronological; an empty weekday set yields an empty result.
func AvailableDates(weekdays []string, now time.Time, horizonDays int) []DateOption {
	available := make(map[string]bool, len(weekdays))
	for _, day := range weekdays {
		available[day] = true
	}

	var dates []DateOption
	for i := 1; i <= horizonDays; i++ {
		date := now.AddDate(0, 0, i)
		if !available[date.Weekday().String()] {
			continue
		}
		dates = append(dates, DateOption{
			Value: date.Format(DateValueFormat),
			Label: date.Format("Mon, Jan 2"),
		})
	}
	return dates
}

// TimeSlots produces the slot grid between startHour and endHour in
// stepMinutes increments. The interval is closed on the opening hour and
// half-open past the closing hour: endHour:00 is included, anything after
// it is dropped.
func TimeSlots(startHour, endHour, stepMinutes int) []SlotOption {
	var slots []SlotOption
	for hour := startHour; hour <= endHour; hour++ {
		for minute := 0; minute < 60; minute += stepMinutes {
			if hour == endHour && minute > 0 {
				continue
			}
			slots = append(slots, SlotOption{
				Value: fmt.Sprintf("%d:%02d", hour, minute),
				Label: slotLabel(hour, minute),
			})
		}
	}
	return slots
}

func slotLabel(hour, minute int) string {
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, meridiem)
}

package service

import (
	"clinic/shared/constant"
	"fmt"
	"time"
)

const (
	defaultFirstSlot   = "09:00"
	defaultLastSlot    = "18:00"
	defaultSlotMinutes = 60
)

// Grid is the fixed daily slot grid. First and Last are minutes after midnight; Last is the
// start of the final slot.
type Grid struct {
	First int
	Last  int
	Step  int
}

// NewGrid parses the grid bounds, falling back to 09:00, 18:00 and 60 minutes for empty values.
func NewGrid(first, last string, slotMinutes int) (Grid, error) {
	if first == "" {
		first = defaultFirstSlot
	}

	if last == "" {
		last = defaultLastSlot
	}

	if slotMinutes <= 0 {
		slotMinutes = defaultSlotMinutes
	}

	firstMinute, err := clockMinutes(first)
	if err != nil {
		return Grid{}, err
	}

	lastMinute, err := clockMinutes(last)
	if err != nil {
		return Grid{}, err
	}

	if lastMinute < firstMinute {
		return Grid{}, fmt.Errorf("last slot %s is before first slot %s", last, first)
	}

	return Grid{First: firstMinute, Last: lastMinute, Step: slotMinutes}, nil
}

// Slots returns the slot start instants for the calendar day of day, in its location.
func (g Grid) Slots(day time.Time) []time.Time {
	slots := make([]time.Time, 0, (g.Last-g.First)/g.Step+1)

	for minute := g.First; minute <= g.Last; minute += g.Step {
		slots = append(slots, time.Date(day.Year(), day.Month(), day.Day(), 0, minute, 0, 0, day.Location()))
	}

	return slots
}

// Length is the duration of one slot.
func (g Grid) Length() time.Duration {
	return time.Duration(g.Step) * time.Minute
}

func clockMinutes(raw string) (int, error) {
	parsed, err := time.Parse(constant.ClockLayout, raw)
	if err != nil {
		return 0, fmt.Errorf("invalid slot time %q: %w", raw, err)
	}

	return parsed.Hour()*60 + parsed.Minute(), nil
}

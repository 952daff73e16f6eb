package model

import (
	"fmt"
	"slices"
)

// Status is the closed set of appointment states.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: nil,
	StatusCancelled: nil,
}

// ParseStatus accepts exactly the four status names.
func ParseStatus(raw string) (Status, error) {
	status := Status(raw)
	if _, ok := transitions[status]; !ok {
		return "", fmt.Errorf("unknown appointment status %q", raw)
	}

	return status, nil
}

func (s Status) String() string {
	return string(s)
}

// CanTransition reports whether the lifecycle allows moving from s to target.
func (s Status) CanTransition(target Status) bool {
	return slices.Contains(transitions[s], target)
}

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

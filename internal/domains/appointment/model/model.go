package model

import (
	"clinic/shared/model"
	"time"
)

const (
	TableName  = "appointments"
	EntityName = "appointment"

	FieldID             = "id"
	FieldPatientID      = "patient_id"
	FieldPsychologistID = "psychologist_id"
	FieldSpecialtyID    = "specialty_id"
	FieldStartAt        = "start_at"
	FieldEndAt          = "end_at"
	FieldStatus         = "status"
)

type Appointment struct {
	ID              int64     `db:"id"`
	PatientID       int64     `db:"patient_id"`
	PsychologistID  int64     `db:"psychologist_id"`
	SpecialtyID     int64     `db:"specialty_id"`
	StartAt         time.Time `db:"start_at"`
	EndAt           time.Time `db:"end_at"`
	DurationMinutes int       `db:"duration_minutes"`
	Reason          *string   `db:"reason"`
	Status          Status    `db:"status"`
	model.Metadata
}

// Schedule sets the start, duration and derived end of the appointment.
func (a *Appointment) Schedule(start time.Time, durationMinutes int) {
	a.StartAt = start
	a.DurationMinutes = durationMinutes
	a.EndAt = start.Add(time.Duration(durationMinutes) * time.Minute)
}

// Overlaps reports whether the appointment's half-open interval intersects [start, end).
func (a Appointment) Overlaps(start, end time.Time) bool {
	return a.StartAt.Before(end) && start.Before(a.EndAt)
}

// Blocks reports whether the appointment occupies its interval.
func (a Appointment) Blocks() bool {
	return a.Status != StatusCancelled
}

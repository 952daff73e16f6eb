package model

import (
	"clinic/internal/domains/appointment/model"
	"time"
)

// Row is an appointment joined with the display names the views need.
type Row struct {
	ID               int64        `db:"id"`
	PatientID        int64        `db:"patient_id"`
	PsychologistID   int64        `db:"psychologist_id"`
	StartAt          time.Time    `db:"start_at"`
	EndAt            time.Time    `db:"end_at"`
	DurationMinutes  int          `db:"duration_minutes"`
	Reason           *string      `db:"reason"`
	Status           model.Status `db:"status"`
	SpecialtyName    string       `db:"specialty_name"`
	PatientName      string       `db:"patient_name"`
	PsychologistName string       `db:"psychologist_name"`
}

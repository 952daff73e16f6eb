package dto

import (
	"clinic/internal/domains/listing/model"
	"clinic/shared/constant"
	"clinic/shared/timezone"
	"time"
)

// Counterpart selects whose name a view shows.
type Counterpart int

const (
	CounterpartPsychologist Counterpart = iota
	CounterpartPatient
)

type AppointmentView struct {
	ID              int64   `json:"id"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	DurationMinutes int     `json:"durationMinutes"`
	PatientID       int64   `json:"patientId"`
	PsychologistID  int64   `json:"psychologistId"`
	SpecialtyName   string  `json:"specialtyName"`
	CounterpartName string  `json:"counterpartName"`
	Status          string  `json:"status"`
	Reason          *string `json:"reason"`
	Upcoming        bool    `json:"upcoming"`
}

func (v *AppointmentView) FromModel(row model.Row, counterpart Counterpart, now time.Time) {
	start := timezone.ToAppTime(row.StartAt)

	v.ID = row.ID
	v.Date = start.Format(constant.DateLayout)
	v.Time = start.Format(constant.ClockLayout)
	v.DurationMinutes = row.DurationMinutes
	v.PatientID = row.PatientID
	v.PsychologistID = row.PsychologistID
	v.SpecialtyName = row.SpecialtyName
	v.Status = row.Status.String()
	v.Reason = row.Reason
	v.Upcoming = !row.StartAt.Before(now)

	switch counterpart {
	case CounterpartPatient:
		v.CounterpartName = row.PatientName
	default:
		v.CounterpartName = row.PsychologistName
	}
}

func ViewsFromModels(rows []model.Row, counterpart Counterpart, now time.Time) []AppointmentView {
	res := make([]AppointmentView, len(rows))
	for i, row := range rows {
		res[i].FromModel(row, counterpart, now)
	}

	return res
}

// CalendarEvent is the feed entry consumed by the calendar widget.
type CalendarEvent struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Status string `json:"status"`
}

func (e *CalendarEvent) FromModel(row model.Row, counterpart Counterpart) {
	e.ID = row.ID
	e.Start = timezone.Format(row.StartAt, constant.DateFormat)
	e.End = timezone.Format(row.EndAt, constant.DateFormat)
	e.Status = row.Status.String()

	if counterpart == CounterpartPatient {
		e.Title = row.PatientName + " - " + row.SpecialtyName
	} else {
		e.Title = row.PsychologistName + " - " + row.SpecialtyName
	}
}

func EventsFromModels(rows []model.Row, counterpart Counterpart) []CalendarEvent {
	res := make([]CalendarEvent, len(rows))
	for i, row := range rows {
		res[i].FromModel(row, counterpart)
	}

	return res
}

// MineRequest narrows the scope=mine listing. Admins name the patient or psychologist.
type MineRequest struct {
	PatientID      int64
	PsychologistID int64
}

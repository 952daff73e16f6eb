package dto

import (
	"clinic/shared/constant"
	"clinic/shared/timezone"
	"strings"
	"time"
)

type CreateAppointmentRequest struct {
	PatientID       *int64  `json:"patientId"       validate:"omitempty,gt=0"`
	PsychologistID  int64   `json:"psychologistId"  validate:"required,gt=0"`
	SpecialtyID     int64   `json:"specialtyId"     validate:"required,gt=0"`
	Date            string  `json:"date"            validate:"required,date"`
	Time            string  `json:"time"            validate:"required,clock"`
	DurationMinutes *int    `json:"durationMinutes" validate:"omitempty,gt=0"`
	Reason          *string `json:"reason"          validate:"omitempty,max=500"`
}

// Start combines date and time in the application timezone.
func (c *CreateAppointmentRequest) Start() (time.Time, error) {
	return parseStart(c.Date, c.Time)
}

// CleanReason returns the trimmed reason, or nil when it is blank.
func (c *CreateAppointmentRequest) CleanReason() *string {
	if c.Reason == nil {
		return nil
	}

	reason := strings.TrimSpace(*c.Reason)
	if reason == constant.Empty {
		return nil
	}

	return &reason
}

type CreateAppointmentResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

type RescheduleAppointmentRequest struct {
	Date            string `json:"date"            validate:"required,date"`
	Time            string `json:"time"            validate:"required,clock"`
	PsychologistID  *int64 `json:"psychologistId"  validate:"omitempty,gt=0"`
	SpecialtyID     *int64 `json:"specialtyId"     validate:"omitempty,gt=0"`
	DurationMinutes *int   `json:"durationMinutes" validate:"omitempty,gt=0"`
}

func (r *RescheduleAppointmentRequest) Start() (time.Time, error) {
	return parseStart(r.Date, r.Time)
}

func parseStart(date, clock string) (time.Time, error) {
	return timezone.Parse(constant.SlotLayout, date+" "+clock) //nolint:wrapcheck
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"clinic/config"
	"clinic/infras/otel"
	"clinic/internal/domains/appointment/model"
	"clinic/internal/domains/appointment/repository"
	availability "clinic/internal/domains/availability/service"
	"clinic/internal/domains/booking/model/dto"
	directory "clinic/internal/domains/directory/repository"
	lifecycle "clinic/internal/domains/lifecycle/service"
	"clinic/shared/actor"
	"clinic/shared/constant"
	"clinic/shared/failure"
	"clinic/shared/timezone"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultDurationMinutes = 60
	maxDurationMinutes     = 480
)

// Booking creates, reschedules and cancels appointments without ever letting two non-cancelled
// appointments of the same psychologist overlap.
type Booking interface {
	Create(ctx context.Context, who actor.Actor, req dto.CreateAppointmentRequest) (int64, error)
	Reschedule(ctx context.Context, who actor.Actor, id int64, req dto.RescheduleAppointmentRequest) error
	Cancel(ctx context.Context, who actor.Actor, id int64) error
}

type serviceImpl struct {
	repo         repository.Appointment
	directory    directory.Directory
	availability availability.Availability
	lifecycle    lifecycle.Lifecycle
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Appointment,
	directory directory.Directory,
	availability availability.Availability,
	lifecycle lifecycle.Lifecycle,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		directory:    directory,
		availability: availability,
		lifecycle:    lifecycle,
		cfg:          cfg,
		otel:         otel,
	}
}

type createdPayload struct {
	PsychologistID  int64     `json:"psychologistId"`
	StartAt         time.Time `json:"startAt"`
	DurationMinutes int       `json:"durationMinutes"`
}

type rescheduledPayload struct {
	FromPsychologistID int64     `json:"fromPsychologistId"`
	FromStartAt        time.Time `json:"fromStartAt"`
	ToPsychologistID   int64     `json:"toPsychologistId"`
	ToStartAt          time.Time `json:"toStartAt"`
	DurationMinutes    int       `json:"durationMinutes"`
}

func (s *serviceImpl) Create(ctx context.Context, who actor.Actor, req dto.CreateAppointmentRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	patientID, err := s.bookingPatient(who, req)
	if err != nil {
		return 0, err
	}

	if who.IsPsychologist() && !who.IsPsychologistOf(req.PsychologistID) {
		return 0, failure.Forbidden("psychologists can only book into their own calendar") // nolint:wrapcheck
	}

	duration, err := s.duration(req.DurationMinutes, s.defaultDuration())
	if err != nil {
		return 0, err
	}

	start, err := s.start(req.Start())
	if err != nil {
		return 0, err
	}

	if err = s.checkPsychologist(ctx, req.PsychologistID, req.SpecialtyID); err != nil {
		return 0, err
	}

	patient, err := s.directory.GetPatient(ctx, patientID)
	if err != nil {
		log.Error().Err(err).Int64("patientId", patientID).Msg("failed to get patient")

		return 0, fmt.Errorf("failed to get patient: %w", err)
	}

	if patient.ID == 0 {
		return 0, failure.NotFound("patient not found") // nolint:wrapcheck
	}

	appt := model.Appointment{
		PatientID:      patientID,
		PsychologistID: req.PsychologistID,
		SpecialtyID:    req.SpecialtyID,
		Reason:         req.CleanReason(),
		Status:         model.StatusPending,
	}
	appt.Schedule(start, duration)

	event := model.NewEvent(model.EventCreated, who.AccountID, who.Role.String(), createdPayload{
		PsychologistID:  appt.PsychologistID,
		StartAt:         appt.StartAt,
		DurationMinutes: appt.DurationMinutes,
	})

	if err = s.repo.Reserve(ctx, &appt, event); err != nil {
		if errors.Is(err, repository.ErrOverlap) {
			return 0, failure.SlotConflict("the requested time is no longer available") // nolint:wrapcheck
		}

		log.Error().Err(err).Int64("psychologistId", appt.PsychologistID).Msg("failed to reserve appointment")

		return 0, fmt.Errorf("failed to reserve appointment: %w", err)
	}

	s.availability.Invalidate(ctx, appt.PsychologistID, appt.StartAt)

	log.Info().
		Int64("appointmentId", appt.ID).
		Int64("psychologistId", appt.PsychologistID).
		Time("start", appt.StartAt).
		Str("actor", who.AccountID).
		Msg("appointment created")

	return appt.ID, nil
}

// Reschedule moves an appointment, optionally to another psychologist, keeping its status.
// The appointment never conflicts with its own current interval.
func (s *serviceImpl) Reschedule(ctx context.Context, who actor.Actor, id int64, req dto.RescheduleAppointmentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Reschedule")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id <= 0 {
		return failure.BadRequestFromString("appointment id must be a positive integer") // nolint:wrapcheck
	}

	current, err := s.repo.GetByIDFresh(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("appointmentId", id).Msg("failed to get appointment")

		return fmt.Errorf("failed to get appointment: %w", err)
	}

	if current.ID == 0 {
		return failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	if !owns(who, current) {
		return failure.ForbiddenError
	}

	if current.Status.Terminal() {
		return failure.InvalidTransition(fmt.Sprintf("a %s appointment cannot be rescheduled", current.Status)) // nolint:wrapcheck
	}

	updated := current

	if req.PsychologistID != nil {
		updated.PsychologistID = *req.PsychologistID
	}

	if req.SpecialtyID != nil {
		updated.SpecialtyID = *req.SpecialtyID
	}

	if who.IsPsychologist() && !who.IsPsychologistOf(updated.PsychologistID) {
		return failure.Forbidden("psychologists can only book into their own calendar") // nolint:wrapcheck
	}

	duration, err := s.duration(req.DurationMinutes, current.DurationMinutes)
	if err != nil {
		return err
	}

	start, err := s.start(req.Start())
	if err != nil {
		return err
	}

	if updated.PsychologistID != current.PsychologistID || updated.SpecialtyID != current.SpecialtyID {
		if err = s.checkPsychologist(ctx, updated.PsychologistID, updated.SpecialtyID); err != nil {
			return err
		}
	}

	updated.Schedule(start, duration)

	event := model.NewEvent(model.EventRescheduled, who.AccountID, who.Role.String(), rescheduledPayload{
		FromPsychologistID: current.PsychologistID,
		FromStartAt:        current.StartAt,
		ToPsychologistID:   updated.PsychologistID,
		ToStartAt:          updated.StartAt,
		DurationMinutes:    updated.DurationMinutes,
	})

	err = s.repo.Reschedule(ctx, updated, current.Status, event)

	switch {
	case errors.Is(err, repository.ErrOverlap):
		return failure.SlotConflict("the requested time is no longer available") // nolint:wrapcheck
	case errors.Is(err, repository.ErrStatusChanged):
		return failure.Conflict("appointment status changed concurrently, reload and try again") // nolint:wrapcheck
	case err != nil:
		log.Error().Err(err).Int64("appointmentId", id).Msg("failed to reschedule appointment")

		return fmt.Errorf("failed to reschedule appointment: %w", err)
	}

	s.availability.Invalidate(ctx, current.PsychologistID, current.StartAt)

	if updated.PsychologistID != current.PsychologistID || !sameDay(current.StartAt, updated.StartAt) {
		s.availability.Invalidate(ctx, updated.PsychologistID, updated.StartAt)
	}

	log.Info().
		Int64("appointmentId", id).
		Time("from", current.StartAt).
		Time("to", updated.StartAt).
		Str("actor", who.AccountID).
		Msg("appointment rescheduled")

	return nil
}

// Cancel is idempotent: an appointment that is already cancelled stays cancelled and the call succeeds.
func (s *serviceImpl) Cancel(ctx context.Context, who actor.Actor, id int64) error {
	return s.lifecycle.Transition(ctx, who, id, model.StatusCancelled) //nolint:wrapcheck
}

// bookingPatient decides whose appointment is being created. Patients book for themselves;
// every other role names the patient.
func (s *serviceImpl) bookingPatient(who actor.Actor, req dto.CreateAppointmentRequest) (int64, error) {
	switch {
	case !who.Valid():
		return 0, failure.ForbiddenError
	case who.IsPatient():
		if req.PatientID != nil && *req.PatientID != who.ID {
			return 0, failure.Forbidden("patients can only book appointments for themselves") // nolint:wrapcheck
		}

		return who.ID, nil
	case req.PatientID == nil:
		return 0, failure.BadRequestFromString("patientId is required") // nolint:wrapcheck
	default:
		return *req.PatientID, nil
	}
}

func (s *serviceImpl) checkPsychologist(ctx context.Context, psychologistID, specialtyID int64) error {
	psychologist, err := s.directory.GetPsychologist(ctx, psychologistID)
	if err != nil {
		log.Error().Err(err).Int64("psychologistId", psychologistID).Msg("failed to get psychologist")

		return fmt.Errorf("failed to get psychologist: %w", err)
	}

	if psychologist.ID == 0 {
		return failure.NotFound("psychologist not found") // nolint:wrapcheck
	}

	if psychologist.SpecialtyID != specialtyID {
		return failure.BadRequestFromString("the psychologist does not offer this specialty") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) duration(requested *int, fallback int) (int, error) {
	if requested == nil {
		return fallback, nil
	}

	limit := s.cfg.Booking.MaxDurationMinutes
	if limit <= 0 {
		limit = maxDurationMinutes
	}

	if *requested <= 0 || *requested > limit {
		return 0, failure.BadRequestFromString(fmt.Sprintf("durationMinutes must be between 1 and %d", limit)) // nolint:wrapcheck
	}

	return *requested, nil
}

func (s *serviceImpl) defaultDuration() int {
	if s.cfg.Booking.DefaultDurationMinutes > 0 {
		return s.cfg.Booking.DefaultDurationMinutes
	}

	return defaultDurationMinutes
}

func (s *serviceImpl) start(start time.Time, err error) (time.Time, error) {
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("date and time must be formatted as YYYY-MM-DD and HH:MM") // nolint:wrapcheck
	}

	if !s.cfg.Booking.AllowPastStart && !start.After(timezone.Now()) {
		return time.Time{}, failure.BadRequestFromString("the appointment must start in the future") // nolint:wrapcheck
	}

	return start, nil
}

func owns(who actor.Actor, appt model.Appointment) bool {
	return who.IsAdmin() || who.IsPatientOf(appt.PatientID) || who.IsPsychologistOf(appt.PsychologistID)
}

func sameDay(a, b time.Time) bool {
	return timezone.StartOfDay(a).Equal(timezone.StartOfDay(b))
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"clinic/infras/otel"
	"clinic/internal/domains/appointment/model"
	"clinic/internal/domains/appointment/repository"
	availability "clinic/internal/domains/availability/service"
	"clinic/shared/actor"
	"clinic/shared/constant"
	"clinic/shared/failure"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Lifecycle moves appointments along the status transition table.
type Lifecycle interface {
	Transition(ctx context.Context, who actor.Actor, id int64, target model.Status) error
}

type serviceImpl struct {
	repo         repository.Appointment
	availability availability.Availability
	otel         otel.Otel
}

func New(repo repository.Appointment, availability availability.Availability, otel otel.Otel) Lifecycle {
	return &serviceImpl{
		repo:         repo,
		availability: availability,
		otel:         otel,
	}
}

type transitionPayload struct {
	From model.Status `json:"from"`
	To   model.Status `json:"to"`
}

// Transition authorizes the actor before consulting the table, so a patient asking for a
// forward status is refused even when the edge itself would be invalid. Cancelling an
// appointment that is already cancelled succeeds without writing.
func (s *serviceImpl) Transition(ctx context.Context, who actor.Actor, id int64, target model.Status) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".lifecycle.Transition")
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

	if !allowed(who, current, target) {
		return failure.ForbiddenError
	}

	if target == model.StatusCancelled && current.Status == model.StatusCancelled {
		return nil
	}

	if !current.Status.CanTransition(target) {
		return failure.InvalidTransition(fmt.Sprintf("cannot change status from %s to %s", current.Status, target)) // nolint:wrapcheck
	}

	event := model.NewEvent(model.EventStatusChanged, who.AccountID, who.Role.String(),
		transitionPayload{From: current.Status, To: target})

	updated, err := s.repo.UpdateStatus(ctx, id, current.Status, target, event)
	if err != nil {
		log.Error().Err(err).Int64("appointmentId", id).Msg("failed to update appointment status")

		return fmt.Errorf("failed to update appointment status: %w", err)
	}

	if !updated {
		return s.lostRace(ctx, id, target)
	}

	if target == model.StatusCancelled {
		s.availability.Invalidate(ctx, current.PsychologistID, current.StartAt)
	}

	log.Info().
		Int64("appointmentId", id).
		Str("from", current.Status.String()).
		Str("to", target.String()).
		Str("actor", who.AccountID).
		Msg("appointment status changed")

	return nil
}

// lostRace decides the outcome when the guarded update matched no row.
func (s *serviceImpl) lostRace(ctx context.Context, id int64, target model.Status) error {
	latest, err := s.repo.GetByIDFresh(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("appointmentId", id).Msg("failed to reload appointment")

		return fmt.Errorf("failed to reload appointment: %w", err)
	}

	if target == model.StatusCancelled && latest.Status == model.StatusCancelled {
		return nil
	}

	return failure.Conflict("appointment status changed concurrently, reload and try again") // nolint:wrapcheck
}

func allowed(who actor.Actor, appt model.Appointment, target model.Status) bool {
	switch {
	case who.IsAdmin():
		return true
	case who.IsPsychologist():
		return who.IsPsychologistOf(appt.PsychologistID)
	case who.IsPatient():
		return target == model.StatusCancelled && who.IsPatientOf(appt.PatientID)
	default:
		return false
	}
}

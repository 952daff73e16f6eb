package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"clinic/infras/otel"
	"clinic/internal/domains/listing/model"
	"clinic/internal/domains/listing/model/dto"
	"clinic/internal/domains/listing/repository"
	"clinic/shared/actor"
	"clinic/shared/constant"
	gDto "clinic/shared/dto"
	"clinic/shared/failure"
	"clinic/shared/timezone"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Listing projects appointments for the patient and psychologist dashboards.
type Listing interface {
	ListForPatient(ctx context.Context, patientID int64) ([]dto.AppointmentView, error)
	ListForPsychologist(ctx context.Context, psychologistID int64, dateRange gDto.DateRange) ([]dto.AppointmentView, error)
	ListMine(ctx context.Context, who actor.Actor, req dto.MineRequest, dateRange gDto.DateRange) ([]dto.AppointmentView, error)
	Get(ctx context.Context, who actor.Actor, id int64) (dto.AppointmentView, error)
	Calendar(ctx context.Context, who actor.Actor, dateRange gDto.DateRange) ([]dto.CalendarEvent, error)
}

type serviceImpl struct {
	repo repository.Listing
	otel otel.Otel
}

func New(repo repository.Listing, otel otel.Otel) Listing {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) ListForPatient(ctx context.Context, patientID int64) ([]dto.AppointmentView, error) {
	return s.listForPatient(ctx, patientID, gDto.DateRange{})
}

func (s *serviceImpl) ListForPsychologist(ctx context.Context, psychologistID int64, dateRange gDto.DateRange) (res []dto.AppointmentView, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".listing.ListForPsychologist")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if psychologistID <= 0 {
		return nil, failure.BadRequestFromString("psychologistId must be a positive integer") // nolint:wrapcheck
	}

	rows, err := s.repo.ListByPsychologist(ctx, psychologistID, dateRange)
	if err != nil {
		log.Error().Err(err).Int64("psychologistId", psychologistID).Msg("failed to list psychologist appointments")

		return nil, fmt.Errorf("failed to list psychologist appointments: %w", err)
	}

	return dto.ViewsFromModels(rows, dto.CounterpartPatient, timezone.Now()), nil
}

// ListMine lists the actor's own appointments. Admins have no caseload and must name a patient
// or a psychologist.
func (s *serviceImpl) ListMine(ctx context.Context, who actor.Actor, req dto.MineRequest, dateRange gDto.DateRange) ([]dto.AppointmentView, error) {
	switch {
	case who.IsPatient() && who.ID > 0:
		return s.listForPatient(ctx, who.ID, dateRange)
	case who.IsPsychologist() && who.ID > 0:
		return s.ListForPsychologist(ctx, who.ID, dateRange)
	case who.IsAdmin() && req.PsychologistID > 0:
		return s.ListForPsychologist(ctx, req.PsychologistID, dateRange)
	case who.IsAdmin() && req.PatientID > 0:
		return s.listForPatient(ctx, req.PatientID, dateRange)
	case who.IsAdmin():
		return nil, failure.BadRequestFromString("patientId or psychologistId is required") // nolint:wrapcheck
	default:
		return nil, failure.ForbiddenError
	}
}

func (s *serviceImpl) Get(ctx context.Context, who actor.Actor, id int64) (res dto.AppointmentView, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".listing.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id <= 0 {
		return res, failure.BadRequestFromString("appointment id must be a positive integer") // nolint:wrapcheck
	}

	row, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("appointmentId", id).Msg("failed to get appointment")

		return res, fmt.Errorf("failed to get appointment: %w", err)
	}

	if row.ID == 0 {
		return res, failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	switch {
	case who.IsPsychologistOf(row.PsychologistID):
		res.FromModel(row, dto.CounterpartPatient, timezone.Now())
	case who.IsPatientOf(row.PatientID), who.IsAdmin():
		res.FromModel(row, dto.CounterpartPsychologist, timezone.Now())
	default:
		return res, failure.ForbiddenError
	}

	return res, nil
}

// Calendar returns the actor's appointments in the window as calendar events.
func (s *serviceImpl) Calendar(ctx context.Context, who actor.Actor, dateRange gDto.DateRange) (res []dto.CalendarEvent, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".listing.Calendar")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var (
		rows        []model.Row
		counterpart dto.Counterpart
	)

	switch {
	case who.IsPsychologist() && who.ID > 0:
		rows, err = s.repo.ListByPsychologist(ctx, who.ID, dateRange)
		counterpart = dto.CounterpartPatient
	case who.IsPatient() && who.ID > 0:
		rows, err = s.repo.ListByPatient(ctx, who.ID, dateRange)
		counterpart = dto.CounterpartPsychologist
	default:
		return nil, failure.Forbidden("the calendar is only available to patients and psychologists") // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("actor", who.AccountID).Msg("failed to load calendar")

		return nil, fmt.Errorf("failed to load calendar: %w", err)
	}

	return dto.EventsFromModels(rows, counterpart), nil
}

func (s *serviceImpl) listForPatient(ctx context.Context, patientID int64, dateRange gDto.DateRange) (res []dto.AppointmentView, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".listing.ListForPatient")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if patientID <= 0 {
		return nil, failure.BadRequestFromString("patientId must be a positive integer") // nolint:wrapcheck
	}

	rows, err := s.repo.ListByPatient(ctx, patientID, dateRange)
	if err != nil {
		log.Error().Err(err).Int64("patientId", patientID).Msg("failed to list patient appointments")

		return nil, fmt.Errorf("failed to list patient appointments: %w", err)
	}

	return dto.ViewsFromModels(rows, dto.CounterpartPsychologist, timezone.Now()), nil
}

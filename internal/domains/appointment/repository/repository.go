package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"clinic/infras/otel"
	"clinic/infras/postgres"
	"clinic/internal/domains/appointment/model"
	"clinic/shared"
	"clinic/shared/constant"
	gDto "clinic/shared/dto"
	"clinic/shared/logger"
	gRepo "clinic/shared/repository"
	"clinic/shared/timezone"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" //nolint:revive
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	// ErrOverlap is returned when the interval intersects another non-cancelled appointment
	// of the same psychologist.
	ErrOverlap = errors.New("appointment interval overlaps an existing appointment")
	// ErrStatusChanged is returned when the row no longer has the status the caller observed.
	ErrStatusChanged = errors.New("appointment status changed concurrently")
)

const (
	queryAdvisoryLock = `SELECT pg_advisory_xact_lock($1)`

	queryInsert = `INSERT INTO appointments
		(patient_id, psychologist_id, specialty_id, start_at, end_at, duration_minutes, reason, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id`

	queryReschedule = `UPDATE appointments
		SET psychologist_id = $1, specialty_id = $2, start_at = $3, end_at = $4, duration_minutes = $5, updated_at = $6
		WHERE id = $7 AND status = $8`

	queryUpdateStatus = `UPDATE appointments SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`

	queryInsertEvent = `INSERT INTO appointment_events
		(appointment_id, event_type, actor_account_id, actor_role, payload)
		VALUES ($1, $2, $3, $4, $5)`
)

// Appointment persists appointments. Every write that can create an overlap runs in a single
// transaction serialized per psychologist with a transaction scoped advisory lock; the
// appointments_no_overlap exclusion constraint backs it up.
type Appointment interface {
	GetByID(ctx context.Context, id int64) (model.Appointment, error)
	GetByIDFresh(ctx context.Context, id int64) (model.Appointment, error)
	ListBlocking(ctx context.Context, psychologistID int64, from, to time.Time) ([]model.Appointment, error)
	Reserve(ctx context.Context, appt *model.Appointment, event model.Event) error
	Reschedule(ctx context.Context, appt model.Appointment, expected model.Status, event model.Event) error
	UpdateStatus(ctx context.Context, id int64, from, to model.Status, event model.Event) (bool, error)
}

type repositoryImpl struct {
	base    gRepo.Repository[model.Appointment]
	db      *postgres.Connection
	otel    otel.Otel
	dialect goqu.DialectWrapper
}

func New(db *postgres.Connection, otel otel.Otel) Appointment {
	return &repositoryImpl{
		base:    gRepo.NewRepository[model.Appointment](model.EntityName, model.TableName, db, otel),
		db:      db,
		otel:    otel,
		dialect: goqu.Dialect("postgres"),
	}
}

func (r *repositoryImpl) GetByID(ctx context.Context, id int64) (model.Appointment, error) {
	return r.base.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetByIDFresh(ctx context.Context, id int64) (model.Appointment, error) {
	return r.base.GetFresh(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

// ListBlocking returns the non-cancelled appointments of a psychologist intersecting [from, to).
// It reads the primary so that an answer cached right after a write never predates that write.
func (r *repositoryImpl) ListBlocking(ctx context.Context, psychologistID int64, from, to time.Time) ([]model.Appointment, error) {
	filter := gDto.And(
		gDto.Filter{Field: model.FieldPsychologistID, Value: psychologistID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldStatus, Value: model.StatusCancelled, Operator: gDto.FilterOperatorNotEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldStartAt, Value: to, Operator: gDto.FilterOperatorLess, Table: model.TableName},
		gDto.Filter{Field: model.FieldEndAt, Value: from, Operator: gDto.FilterOperatorGreater, Table: model.TableName},
	)

	params := gDto.QueryParams{SortBy: model.FieldStartAt, SortDir: gDto.SortDirAsc}

	return r.base.GetAllFresh(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Reserve(ctx context.Context, appt *model.Appointment, event model.Event) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.Reserve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := timezone.Now()

	err = r.db.WithTx(ctx, nil, func(tx *sqlx.Tx) error {
		if err := r.lockPsychologist(ctx, tx, appt.PsychologistID); err != nil {
			return err
		}

		if err := r.ensureFree(ctx, tx, appt.PsychologistID, appt.StartAt, appt.EndAt, 0); err != nil {
			return err
		}

		err := tx.GetContext(ctx, &appt.ID, queryInsert,
			appt.PatientID, appt.PsychologistID, appt.SpecialtyID, appt.StartAt, appt.EndAt,
			appt.DurationMinutes, appt.Reason, appt.Status, now)
		if err != nil {
			return mapWriteError("insert appointment", err)
		}

		event.AppointmentID = appt.ID

		return r.insertEvent(ctx, tx, event)
	})
	if err != nil {
		return err
	}

	appt.CreatedAt = now
	appt.UpdatedAt = now

	return nil
}

func (r *repositoryImpl) Reschedule(ctx context.Context, appt model.Appointment, expected model.Status, event model.Event) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.Reschedule")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return r.db.WithTx(ctx, nil, func(tx *sqlx.Tx) error {
		if err := r.lockPsychologist(ctx, tx, appt.PsychologistID); err != nil {
			return err
		}

		if err := r.ensureFree(ctx, tx, appt.PsychologistID, appt.StartAt, appt.EndAt, appt.ID); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, queryReschedule,
			appt.PsychologistID, appt.SpecialtyID, appt.StartAt, appt.EndAt, appt.DurationMinutes,
			timezone.Now(), appt.ID, expected)
		if err != nil {
			return mapWriteError("reschedule appointment", err)
		}

		if affected, err := res.RowsAffected(); err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		} else if affected == 0 {
			return ErrStatusChanged
		}

		event.AppointmentID = appt.ID

		return r.insertEvent(ctx, tx, event)
	})
}

// UpdateStatus moves the appointment from one status to another and reports false, without
// writing, when the row is not in the from status anymore.
func (r *repositoryImpl) UpdateStatus(ctx context.Context, id int64, from, to model.Status, event model.Event) (updated bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{"appointment.id": id, "status.from": from.String(), "status.to": to.String()})

	err = r.db.WithTx(ctx, nil, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, queryUpdateStatus, to, timezone.Now(), id, from)
		if err != nil {
			return mapWriteError("update appointment status", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}

		if affected == 0 {
			return nil
		}

		updated = true
		event.AppointmentID = id

		return r.insertEvent(ctx, tx, event)
	})
	if err != nil {
		return false, err
	}

	return updated, nil
}

func (r *repositoryImpl) lockPsychologist(ctx context.Context, tx *sqlx.Tx, psychologistID int64) error {
	if _, err := tx.ExecContext(ctx, queryAdvisoryLock, psychologistID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to lock psychologist calendar: %w", err)
	}

	return nil
}

func (r *repositoryImpl) ensureFree(ctx context.Context, tx *sqlx.Tx, psychologistID int64, start, end time.Time, excludeID int64) error {
	query, args, err := r.dialect.
		From(model.TableName).
		Select(goqu.COUNT("*")).
		Where(
			goqu.C(model.FieldPsychologistID).Eq(psychologistID),
			goqu.C(model.FieldStatus).Neq(model.StatusCancelled.String()),
			goqu.C(model.FieldStartAt).Lt(end),
			goqu.C(model.FieldEndAt).Gt(start),
			goqu.C(model.FieldID).Neq(excludeID),
		).
		Prepared(true).
		ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build overlap query: %w", err)
	}

	var overlapping int
	if err = tx.GetContext(ctx, &overlapping, query, args...); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to check overlapping appointments: %w", err)
	}

	if overlapping > 0 {
		return ErrOverlap
	}

	return nil
}

func (r *repositoryImpl) insertEvent(ctx context.Context, tx *sqlx.Tx, event model.Event) error {
	_, err := tx.ExecContext(ctx, queryInsertEvent,
		event.AppointmentID, event.Type, event.ActorAccountID, event.ActorRole, string(event.Payload))
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to insert appointment event: %w", err)
	}

	return nil
}

func mapWriteError(action string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case constant.PqErrorCodeExclusionViolation, constant.PqErrorCodeUniqueViolation:
			return ErrOverlap
		}
	}

	logger.ErrorWithStack(err)

	return fmt.Errorf("failed to %s: %w", action, err)
}

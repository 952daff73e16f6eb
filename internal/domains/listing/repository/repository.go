package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"clinic/infras/otel"
	"clinic/infras/postgres"
	"clinic/internal/domains/listing/model"
	"clinic/shared/constant"
	gDto "clinic/shared/dto"
	"clinic/shared/logger"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" //nolint:revive
	"github.com/doug-martin/goqu/v9/exp"
)

// Listing reads appointment projections. It never writes and takes no locks.
type Listing interface {
	ListByPatient(ctx context.Context, patientID int64, dateRange gDto.DateRange) ([]model.Row, error)
	ListByPsychologist(ctx context.Context, psychologistID int64, dateRange gDto.DateRange) ([]model.Row, error)
	Get(ctx context.Context, id int64) (model.Row, error)
}

type repositoryImpl struct {
	db      *postgres.Connection
	otel    otel.Otel
	dialect goqu.DialectWrapper
}

func New(db *postgres.Connection, otel otel.Otel) Listing {
	return &repositoryImpl{
		db:      db,
		otel:    otel,
		dialect: goqu.Dialect("postgres"),
	}
}

func (r *repositoryImpl) ListByPatient(ctx context.Context, patientID int64, dateRange gDto.DateRange) ([]model.Row, error) {
	return r.list(ctx, "ListByPatient", goqu.I("a.patient_id").Eq(patientID), dateRange)
}

func (r *repositoryImpl) ListByPsychologist(ctx context.Context, psychologistID int64, dateRange gDto.DateRange) ([]model.Row, error) {
	return r.list(ctx, "ListByPsychologist", goqu.I("a.psychologist_id").Eq(psychologistID), dateRange)
}

// Get returns the zero Row when the appointment does not exist.
func (r *repositoryImpl) Get(ctx context.Context, id int64) (row model.Row, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".listing.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query, args, err := r.base().Where(goqu.I("a.id").Eq(id)).Limit(1).Prepared(true).ToSQL()
	if err != nil {
		return row, fmt.Errorf("failed to build appointment query: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = r.db.Read.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Row{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return row, fmt.Errorf("failed to get appointment view: %w", err)
	}

	return row, nil
}

func (r *repositoryImpl) list(ctx context.Context, method string, owner exp.Expression, dateRange gDto.DateRange) (rows []model.Row, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".listing."+method)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	where := []exp.Expression{owner}

	if !dateRange.From.IsZero() {
		where = append(where, goqu.I("a.start_at").Gte(dateRange.From))
	}

	if !dateRange.To.IsZero() {
		where = append(where, goqu.I("a.start_at").Lt(dateRange.To))
	}

	query, args, err := r.base().Where(where...).Order(goqu.I("a.start_at").Asc()).Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build appointment listing query: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows = []model.Row{}

	if err = r.db.Read.SelectContext(ctx, &rows, query, args...); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	return rows, nil
}

func (r *repositoryImpl) base() *goqu.SelectDataset {
	return r.dialect.
		From(goqu.T("appointments").As("a")).
		Select(
			goqu.I("a.id"),
			goqu.I("a.patient_id"),
			goqu.I("a.psychologist_id"),
			goqu.I("a.start_at"),
			goqu.I("a.end_at"),
			goqu.I("a.duration_minutes"),
			goqu.I("a.reason"),
			goqu.I("a.status"),
			goqu.I("s.name").As("specialty_name"),
			goqu.I("pt.full_name").As("patient_name"),
			goqu.I("ps.full_name").As("psychologist_name"),
		).
		Join(goqu.T("specialties").As("s"), goqu.On(goqu.I("s.id").Eq(goqu.I("a.specialty_id")))).
		Join(goqu.T("patients").As("pt"), goqu.On(goqu.I("pt.id").Eq(goqu.I("a.patient_id")))).
		Join(goqu.T("psychologists").As("ps"), goqu.On(goqu.I("ps.id").Eq(goqu.I("a.psychologist_id"))))
}

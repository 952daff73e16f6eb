package repository_test

import (
	"clinic/infras/otel/mocks"
	"clinic/infras/postgres"
	apptModel "clinic/internal/domains/appointment/model"
	"clinic/internal/domains/listing/repository"
	gDto "clinic/shared/dto"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rowColumns = []string{
	"id", "patient_id", "psychologist_id", "start_at", "end_at", "duration_minutes",
	"reason", "status", "specialty_name", "patient_name", "psychologist_name",
}

func newRepository(t *testing.T) (repository.Listing, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "postgres")

	return repository.New(&postgres.Connection{Read: db, Write: db}, mocks.NewOtel()), mock
}

func TestRepository_ListByPatient(t *testing.T) {
	repo, mock := newRepository(t)

	start := time.Date(2030, 12, 9, 10, 0, 0, 0, time.UTC)
	reason := "follow-up"

	mock.ExpectQuery(`SELECT .* FROM "appointments" AS "a" INNER JOIN "specialties" AS "s" .* WHERE \("a"."patient_id" = \$1\) ORDER BY "a"."start_at" ASC`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(rowColumns).
			AddRow(int64(42), int64(3), int64(5), start, start.Add(time.Hour), 60, reason, "Confirmed", "Child psychology", "Budi", "Dr. Ana"))

	rows, err := repo.ListByPatient(context.Background(), 3, gDto.DateRange{})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, int64(42), rows[0].ID)
	assert.Equal(t, apptModel.StatusConfirmed, rows[0].Status)
	assert.Equal(t, "Dr. Ana", rows[0].PsychologistName)
	require.NotNil(t, rows[0].Reason)
	assert.Equal(t, reason, *rows[0].Reason)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByPsychologist_Range(t *testing.T) {
	repo, mock := newRepository(t)

	from := time.Date(2030, 12, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	mock.ExpectQuery(`WHERE \(\("a"."psychologist_id" = \$1\) AND \("a"."start_at" >= \$2\) AND \("a"."start_at" < \$3\)\)`).
		WithArgs(int64(5), from, to).
		WillReturnRows(sqlmock.NewRows(rowColumns))

	rows, err := repo.ListByPsychologist(context.Background(), 5, gDto.DateRange{From: from, To: to})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByPatient_Error(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("connection refused"))

	_, err := repo.ListByPatient(context.Background(), 3, gDto.DateRange{})
	assert.ErrorContains(t, err, "failed to list appointments")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Get_Missing(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(`WHERE \("a"."id" = \$1\) LIMIT \$2`).
		WithArgs(int64(99), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(rowColumns))

	row, err := repo.Get(context.Background(), 99)
	assert.NoError(t, err)
	assert.Zero(t, row.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

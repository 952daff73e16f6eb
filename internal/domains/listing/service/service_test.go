package service_test

import (
	otelMocks "clinic/infras/otel/mocks"
	apptModel "clinic/internal/domains/appointment/model"
	"clinic/internal/domains/listing/mocks"
	"clinic/internal/domains/listing/model"
	"clinic/internal/domains/listing/model/dto"
	"clinic/internal/domains/listing/service"
	"clinic/shared/actor"
	gDto "clinic/shared/dto"
	"clinic/shared/failure"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	patient      = actor.Actor{AccountID: "acc-3", ID: 3, Role: actor.RolePatient}
	psychologist = actor.Actor{AccountID: "acc-5", ID: 5, Role: actor.RolePsychologist}
	admin        = actor.Actor{AccountID: "acc-1", Role: actor.RoleAdmin}
)

func newService(t *testing.T) (service.Listing, *mocks.MockListing) {
	t.Helper()

	repo := mocks.NewMockListing(gomock.NewController(t))

	return service.New(repo, otelMocks.NewOtel()), repo
}

func rowAt(start time.Time) model.Row {
	return model.Row{
		ID:               42,
		PatientID:        3,
		PsychologistID:   5,
		StartAt:          start,
		EndAt:            start.Add(time.Hour),
		DurationMinutes:  60,
		Status:           apptModel.StatusConfirmed,
		SpecialtyName:    "Child psychology",
		PatientName:      "Budi",
		PsychologistName: "Dr. Ana",
	}
}

func TestListing_ListForPatient(t *testing.T) {
	svc, repo := newService(t)

	past := time.Date(2020, 1, 2, 9, 0, 0, 0, time.UTC)
	future := time.Now().Add(72 * time.Hour).UTC().Truncate(time.Hour)

	repo.EXPECT().ListByPatient(gomock.Any(), int64(3), gDto.DateRange{}).Return([]model.Row{rowAt(past), rowAt(future)}, nil)

	got, err := svc.ListForPatient(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "2020-01-02", got[0].Date)
	assert.Equal(t, "09:00", got[0].Time)
	assert.Equal(t, "Dr. Ana", got[0].CounterpartName)
	assert.Equal(t, "Child psychology", got[0].SpecialtyName)
	assert.Equal(t, "Confirmed", got[0].Status)
	assert.False(t, got[0].Upcoming)
	assert.True(t, got[1].Upcoming)
}

func TestListing_ListForPsychologist(t *testing.T) {
	t.Run("shows the patient as counterpart", func(t *testing.T) {
		svc, repo := newService(t)

		dateRange := gDto.DateRange{From: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)}
		repo.EXPECT().ListByPsychologist(gomock.Any(), int64(5), dateRange).
			Return([]model.Row{rowAt(time.Date(2025, 12, 9, 10, 0, 0, 0, time.UTC))}, nil)

		got, err := svc.ListForPsychologist(context.Background(), 5, dateRange)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Budi", got[0].CounterpartName)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.ListForPsychologist(context.Background(), 0, gDto.DateRange{})
		assert.True(t, failure.Is(err, failure.KindInvalidArgument))
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, repo := newService(t)
		repo.EXPECT().ListByPsychologist(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := svc.ListForPsychologist(context.Background(), 5, gDto.DateRange{})
		assert.Equal(t, failure.KindUnavailable, failure.GetKind(err))
	})
}

func TestListing_ListMine(t *testing.T) {
	tests := []struct {
		name      string
		who       actor.Actor
		req       dto.MineRequest
		setupMock func(repo *mocks.MockListing)
		wantKind  failure.Kind
	}{
		{
			name: "patient",
			who:  patient,
			setupMock: func(repo *mocks.MockListing) {
				repo.EXPECT().ListByPatient(gomock.Any(), int64(3), gomock.Any()).Return([]model.Row{}, nil)
			},
		},
		{
			name: "patient cannot peek at someone else",
			who:  patient,
			req:  dto.MineRequest{PatientID: 4},
			setupMock: func(repo *mocks.MockListing) {
				repo.EXPECT().ListByPatient(gomock.Any(), int64(3), gomock.Any()).Return([]model.Row{}, nil)
			},
		},
		{
			name: "psychologist",
			who:  psychologist,
			setupMock: func(repo *mocks.MockListing) {
				repo.EXPECT().ListByPsychologist(gomock.Any(), int64(5), gomock.Any()).Return([]model.Row{}, nil)
			},
		},
		{
			name: "admin naming a psychologist",
			who:  admin,
			req:  dto.MineRequest{PsychologistID: 6},
			setupMock: func(repo *mocks.MockListing) {
				repo.EXPECT().ListByPsychologist(gomock.Any(), int64(6), gomock.Any()).Return([]model.Row{}, nil)
			},
		},
		{
			name: "admin naming a patient",
			who:  admin,
			req:  dto.MineRequest{PatientID: 4},
			setupMock: func(repo *mocks.MockListing) {
				repo.EXPECT().ListByPatient(gomock.Any(), int64(4), gomock.Any()).Return([]model.Row{}, nil)
			},
		},
		{name: "admin naming nobody", who: admin, wantKind: failure.KindInvalidArgument},
		{name: "unresolved actor", who: actor.Actor{Role: actor.RolePatient}, wantKind: failure.KindForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := svc.ListMine(context.Background(), tt.who, tt.req, gDto.DateRange{})
			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}

func TestListing_Get(t *testing.T) {
	start := time.Date(2025, 12, 9, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		who             actor.Actor
		row             model.Row
		wantCounterpart string
		wantKind        failure.Kind
	}{
		{name: "owning patient", who: patient, row: rowAt(start), wantCounterpart: "Dr. Ana"},
		{name: "assigned psychologist", who: psychologist, row: rowAt(start), wantCounterpart: "Budi"},
		{name: "admin", who: admin, row: rowAt(start), wantCounterpart: "Dr. Ana"},
		{name: "stranger", who: actor.Actor{ID: 9, Role: actor.RolePatient}, row: rowAt(start), wantKind: failure.KindForbidden},
		{name: "missing", who: admin, row: model.Row{}, wantKind: failure.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			repo.EXPECT().Get(gomock.Any(), int64(42)).Return(tt.row, nil)

			got, err := svc.Get(context.Background(), tt.who, 42)
			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCounterpart, got.CounterpartName)
			assert.Equal(t, int64(42), got.ID)
		})
	}
}

func TestListing_Calendar(t *testing.T) {
	t.Run("psychologist feed", func(t *testing.T) {
		svc, repo := newService(t)

		start := time.Date(2025, 12, 9, 10, 0, 0, 0, time.UTC)
		repo.EXPECT().ListByPsychologist(gomock.Any(), int64(5), gomock.Any()).Return([]model.Row{rowAt(start)}, nil)

		got, err := svc.Calendar(context.Background(), psychologist, gDto.DateRange{})
		require.NoError(t, err)
		assert.Equal(t, []dto.CalendarEvent{{
			ID:     42,
			Title:  "Budi - Child psychology",
			Start:  "2025-12-09T10:00:00Z",
			End:    "2025-12-09T11:00:00Z",
			Status: "Confirmed",
		}}, got)
	})

	t.Run("admins have no calendar", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Calendar(context.Background(), admin, gDto.DateRange{})
		assert.True(t, failure.Is(err, failure.KindForbidden))
	})
}

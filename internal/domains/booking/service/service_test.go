package service_test

import (
	"clinic/config"
	otelMocks "clinic/infras/otel/mocks"
	apptMocks "clinic/internal/domains/appointment/mocks"
	"clinic/internal/domains/appointment/model"
	"clinic/internal/domains/appointment/repository"
	availabilityMocks "clinic/internal/domains/availability/service/mocks"
	"clinic/internal/domains/booking/model/dto"
	"clinic/internal/domains/booking/service"
	dirMocks "clinic/internal/domains/directory/mocks"
	dirModel "clinic/internal/domains/directory/model"
	lifecycleMocks "clinic/internal/domains/lifecycle/service/mocks"
	"clinic/shared/actor"
	"clinic/shared/failure"
	"clinic/shared/timezone"
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
	otherPsych   = actor.Actor{AccountID: "acc-6", ID: 6, Role: actor.RolePsychologist}
	admin        = actor.Actor{AccountID: "acc-1", Role: actor.RoleAdmin}
)

type fixture struct {
	repo         *apptMocks.MockAppointment
	directory    *dirMocks.MockDirectory
	availability *availabilityMocks.MockAvailability
	lifecycle    *lifecycleMocks.MockLifecycle
	svc          service.Booking
}

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Booking.DefaultDurationMinutes = 60
	cfg.Booking.MaxDurationMinutes = 480

	return cfg
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:         apptMocks.NewMockAppointment(ctrl),
		directory:    dirMocks.NewMockDirectory(ctrl),
		availability: availabilityMocks.NewMockAvailability(ctrl),
		lifecycle:    lifecycleMocks.NewMockLifecycle(ctrl),
	}
	f.svc = service.New(f.repo, f.directory, f.availability, f.lifecycle, newConfig(), otelMocks.NewOtel())

	return f
}

func futureDate() string {
	return timezone.Now().AddDate(0, 1, 0).Format("2006-01-02")
}

func futureStart(clock string) time.Time {
	start, err := timezone.Parse("2006-01-02 15:04", futureDate()+" "+clock)
	if err != nil {
		panic(err)
	}

	return start
}

func ptr[T any](v T) *T {
	return &v
}

func createRequest() dto.CreateAppointmentRequest {
	return dto.CreateAppointmentRequest{
		PsychologistID: 5,
		SpecialtyID:    2,
		Date:           futureDate(),
		Time:           "10:00",
		Reason:         ptr("  first visit "),
	}
}

func (f fixture) expectDirectory() {
	f.directory.EXPECT().GetPsychologist(gomock.Any(), int64(5)).Return(dirModel.Psychologist{ID: 5, SpecialtyID: 2}, nil)
	f.directory.EXPECT().GetPatient(gomock.Any(), int64(3)).Return(dirModel.Patient{ID: 3}, nil)
}

func TestBooking_Create(t *testing.T) {
	t.Run("patient books for themselves", func(t *testing.T) {
		f := newFixture(t)
		f.expectDirectory()

		start := futureStart("10:00")

		f.repo.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, appt *model.Appointment, event model.Event) error {
				assert.Equal(t, int64(3), appt.PatientID)
				assert.Equal(t, model.StatusPending, appt.Status)
				assert.Equal(t, start, appt.StartAt)
				assert.Equal(t, start.Add(time.Hour), appt.EndAt)
				assert.Equal(t, 60, appt.DurationMinutes)
				assert.Equal(t, "first visit", *appt.Reason)
				assert.Equal(t, model.EventCreated, event.Type)
				assert.Equal(t, "patient", event.ActorRole)

				appt.ID = 42

				return nil
			})
		f.availability.EXPECT().Invalidate(gomock.Any(), int64(5), start)

		id, err := f.svc.Create(context.Background(), patient, createRequest())
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("psychologist books a patient into their own calendar", func(t *testing.T) {
		f := newFixture(t)
		f.expectDirectory()

		f.repo.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.availability.EXPECT().Invalidate(gomock.Any(), int64(5), gomock.Any())

		req := createRequest()
		req.PatientID = ptr(int64(3))
		req.DurationMinutes = ptr(90)

		_, err := f.svc.Create(context.Background(), psychologist, req)
		assert.NoError(t, err)
	})

	tests := []struct {
		name      string
		who       actor.Actor
		mutate    func(req *dto.CreateAppointmentRequest)
		setupMock func(f fixture)
		wantKind  failure.Kind
	}{
		{
			name:     "patient books for someone else",
			who:      patient,
			mutate:   func(req *dto.CreateAppointmentRequest) { req.PatientID = ptr(int64(4)) },
			wantKind: failure.KindForbidden,
		},
		{
			name:     "admin without patient",
			who:      admin,
			wantKind: failure.KindInvalidArgument,
		},
		{
			name:     "psychologist books into another calendar",
			who:      otherPsych,
			mutate:   func(req *dto.CreateAppointmentRequest) { req.PatientID = ptr(int64(3)) },
			wantKind: failure.KindForbidden,
		},
		{
			name:     "patient without resolved profile",
			who:      actor.Actor{AccountID: "acc-x", Role: actor.RolePatient},
			wantKind: failure.KindForbidden,
		},
		{
			name:     "zero duration",
			who:      patient,
			mutate:   func(req *dto.CreateAppointmentRequest) { req.DurationMinutes = ptr(0) },
			wantKind: failure.KindInvalidArgument,
		},
		{
			name:     "duration over the limit",
			who:      patient,
			mutate:   func(req *dto.CreateAppointmentRequest) { req.DurationMinutes = ptr(481) },
			wantKind: failure.KindInvalidArgument,
		},
		{
			name:     "malformed time",
			who:      patient,
			mutate:   func(req *dto.CreateAppointmentRequest) { req.Time = "25:00" },
			wantKind: failure.KindInvalidArgument,
		},
		{
			name:     "start in the past",
			who:      patient,
			mutate:   func(req *dto.CreateAppointmentRequest) { req.Date = "2020-01-01" },
			wantKind: failure.KindInvalidArgument,
		},
		{
			name: "unknown psychologist",
			who:  patient,
			setupMock: func(f fixture) {
				f.directory.EXPECT().GetPsychologist(gomock.Any(), int64(5)).Return(dirModel.Psychologist{}, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "psychologist does not offer the specialty",
			who:  patient,
			setupMock: func(f fixture) {
				f.directory.EXPECT().GetPsychologist(gomock.Any(), int64(5)).Return(dirModel.Psychologist{ID: 5, SpecialtyID: 7}, nil)
			},
			wantKind: failure.KindInvalidArgument,
		},
		{
			name: "unknown patient",
			who:  admin,
			mutate: func(req *dto.CreateAppointmentRequest) {
				req.PatientID = ptr(int64(99))
			},
			setupMock: func(f fixture) {
				f.directory.EXPECT().GetPsychologist(gomock.Any(), int64(5)).Return(dirModel.Psychologist{ID: 5, SpecialtyID: 2}, nil)
				f.directory.EXPECT().GetPatient(gomock.Any(), int64(99)).Return(dirModel.Patient{}, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "overlap",
			who:  patient,
			setupMock: func(f fixture) {
				f.expectDirectory()
				f.repo.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.ErrOverlap)
			},
			wantKind: failure.KindSlotConflict,
		},
		{
			name: "storage failure",
			who:  patient,
			setupMock: func(f fixture) {
				f.expectDirectory()
				f.repo.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("pq: deadlock detected"))
			},
			wantKind: failure.KindUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			req := createRequest()
			if tt.mutate != nil {
				tt.mutate(&req)
			}

			_, err := f.svc.Create(context.Background(), tt.who, req)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, failure.GetKind(err))
		})
	}
}

func existing(status model.Status) model.Appointment {
	appt := model.Appointment{ID: 42, PatientID: 3, PsychologistID: 5, SpecialtyID: 2, Status: status}
	appt.Schedule(futureStart("10:00"), 60)

	return appt
}

func rescheduleRequest(clock string) dto.RescheduleAppointmentRequest {
	return dto.RescheduleAppointmentRequest{Date: futureDate(), Time: clock}
}

func TestBooking_Reschedule(t *testing.T) {
	t.Run("same day keeps status and duration", func(t *testing.T) {
		f := newFixture(t)
		current := existing(model.StatusConfirmed)

		f.repo.EXPECT().GetByIDFresh(gomock.Any(), int64(42)).Return(current, nil)
		f.repo.EXPECT().Reschedule(gomock.Any(), gomock.Any(), model.StatusConfirmed, gomock.Any()).
			DoAndReturn(func(_ context.Context, appt model.Appointment, _ model.Status, event model.Event) error {
				assert.Equal(t, futureStart("10:30"), appt.StartAt)
				assert.Equal(t, 60, appt.DurationMinutes)
				assert.Equal(t, model.StatusConfirmed, appt.Status)
				assert.Equal(t, model.EventRescheduled, event.Type)

				return nil
			})
		f.availability.EXPECT().Invalidate(gomock.Any(), int64(5), current.StartAt)

		assert.NoError(t, f.svc.Reschedule(context.Background(), patient, 42, rescheduleRequest("10:30")))
	})

	t.Run("moving to another psychologist invalidates both calendars", func(t *testing.T) {
		f := newFixture(t)
		current := existing(model.StatusPending)

		f.repo.EXPECT().GetByIDFresh(gomock.Any(), int64(42)).Return(current, nil)
		f.directory.EXPECT().GetPsychologist(gomock.Any(), int64(6)).Return(dirModel.Psychologist{ID: 6, SpecialtyID: 2}, nil)
		f.repo.EXPECT().Reschedule(gomock.Any(), gomock.Any(), model.StatusPending, gomock.Any()).Return(nil)
		f.availability.EXPECT().Invalidate(gomock.Any(), int64(5), current.StartAt)
		f.availability.EXPECT().Invalidate(gomock.Any(), int64(6), futureStart("14:00"))

		req := rescheduleRequest("14:00")
		req.PsychologistID = ptr(int64(6))

		assert.NoError(t, f.svc.Reschedule(context.Background(), admin, 42, req))
	})

	tests := []struct {
		name      string
		who       actor.Actor
		current   model.Appointment
		req       dto.RescheduleAppointmentRequest
		setupMock func(f fixture)
		wantKind  failure.Kind
	}{
		{
			name:     "not found",
			who:      admin,
			current:  model.Appointment{},
			req:      rescheduleRequest("11:00"),
			wantKind: failure.KindNotFound,
		},
		{
			name:     "other patient",
			who:      actor.Actor{AccountID: "acc-4", ID: 4, Role: actor.RolePatient},
			current:  existing(model.StatusPending),
			req:      rescheduleRequest("11:00"),
			wantKind: failure.KindForbidden,
		},
		{
			name:     "unassigned psychologist",
			who:      otherPsych,
			current:  existing(model.StatusPending),
			req:      rescheduleRequest("11:00"),
			wantKind: failure.KindForbidden,
		},
		{
			name:     "assigned psychologist moves it to a colleague",
			who:      psychologist,
			current:  existing(model.StatusPending),
			req:      dto.RescheduleAppointmentRequest{Date: futureDate(), Time: "11:00", PsychologistID: ptr(int64(6))},
			wantKind: failure.KindForbidden,
		},
		{
			name:     "completed appointment",
			who:      admin,
			current:  existing(model.StatusCompleted),
			req:      rescheduleRequest("11:00"),
			wantKind: failure.KindInvalidTransition,
		},
		{
			name:     "cancelled appointment",
			who:      patient,
			current:  existing(model.StatusCancelled),
			req:      rescheduleRequest("11:00"),
			wantKind: failure.KindInvalidTransition,
		},
		{
			name:     "bad date",
			who:      patient,
			current:  existing(model.StatusPending),
			req:      dto.RescheduleAppointmentRequest{Date: "2025-13-01", Time: "11:00"},
			wantKind: failure.KindInvalidArgument,
		},
		{
			name:    "new specialty not offered",
			who:     patient,
			current: existing(model.StatusPending),
			req:     dto.RescheduleAppointmentRequest{Date: futureDate(), Time: "11:00", SpecialtyID: ptr(int64(9))},
			setupMock: func(f fixture) {
				f.directory.EXPECT().GetPsychologist(gomock.Any(), int64(5)).Return(dirModel.Psychologist{ID: 5, SpecialtyID: 2}, nil)
			},
			wantKind: failure.KindInvalidArgument,
		},
		{
			name:    "overlap with another appointment",
			who:     patient,
			current: existing(model.StatusPending),
			req:     rescheduleRequest("11:00"),
			setupMock: func(f fixture) {
				f.repo.EXPECT().Reschedule(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.ErrOverlap)
			},
			wantKind: failure.KindSlotConflict,
		},
		{
			name:    "status changed concurrently",
			who:     patient,
			current: existing(model.StatusPending),
			req:     rescheduleRequest("11:00"),
			setupMock: func(f fixture) {
				f.repo.EXPECT().Reschedule(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.ErrStatusChanged)
			},
			wantKind: failure.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().GetByIDFresh(gomock.Any(), int64(42)).Return(tt.current, nil)

			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			err := f.svc.Reschedule(context.Background(), tt.who, 42, tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, failure.GetKind(err))
		})
	}
}

func TestBooking_Cancel(t *testing.T) {
	f := newFixture(t)

	f.lifecycle.EXPECT().Transition(gomock.Any(), patient, int64(42), model.StatusCancelled).Return(nil)

	assert.NoError(t, f.svc.Cancel(context.Background(), patient, 42))
}

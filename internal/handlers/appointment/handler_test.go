package appointment_test

import (
	otelMocks "clinic/infras/otel/mocks"
	apptModel "clinic/internal/domains/appointment/model"
	bookingDto "clinic/internal/domains/booking/model/dto"
	bookingMocks "clinic/internal/domains/booking/service/mocks"
	lifecycleMocks "clinic/internal/domains/lifecycle/service/mocks"
	listingDto "clinic/internal/domains/listing/model/dto"
	listingMocks "clinic/internal/domains/listing/service/mocks"
	"clinic/internal/handlers/appointment"
	"clinic/shared/actor"
	gDto "clinic/shared/dto"
	"clinic/shared/failure"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var patient = actor.Actor{AccountID: "acc-3", ID: 3, Role: actor.RolePatient}

type fixture struct {
	booking   *bookingMocks.MockBooking
	lifecycle *lifecycleMocks.MockLifecycle
	listing   *listingMocks.MockListing
	router    chi.Router
}

func newFixture(t *testing.T, who *actor.Actor) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		booking:   bookingMocks.NewMockBooking(ctrl),
		lifecycle: lifecycleMocks.NewMockLifecycle(ctrl),
		listing:   listingMocks.NewMockListing(ctrl),
	}

	handler := appointment.New(f.booking, f.lifecycle, f.listing, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if who != nil {
				r = r.WithContext(actor.WithContext(r.Context(), *who))
			}

			next.ServeHTTP(w, r)
		})
	})
	handler.Router(router)

	f.router = router

	return f
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))

	return rec
}

func TestHandler_CreateAppointment(t *testing.T) {
	const body = `{"psychologistId":5,"specialtyId":2,"date":"2030-12-09","time":"10:00"}`

	tests := []struct {
		name      string
		who       *actor.Actor
		body      string
		setupMock func(f *fixture)
		wantCode  int
		wantBody  string
	}{
		{
			name: "created",
			who:  &patient,
			body: body,
			setupMock: func(f *fixture) {
				f.booking.EXPECT().Create(gomock.Any(), patient, bookingDto.CreateAppointmentRequest{
					PsychologistID: 5,
					SpecialtyID:    2,
					Date:           "2030-12-09",
					Time:           "10:00",
				}).Return(int64(42), nil)
			},
			wantCode: http.StatusCreated,
			wantBody: `{"success":true,"id":42}`,
		},
		{
			name: "slot taken",
			who:  &patient,
			body: body,
			setupMock: func(f *fixture) {
				f.booking.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), failure.SlotConflict("the requested time is no longer available"))
			},
			wantCode: http.StatusConflict,
			wantBody: `{"success":false,"message":"the requested time is no longer available"}`,
		},
		{
			name:     "bad clock",
			who:      &patient,
			body:     `{"psychologistId":5,"specialtyId":2,"date":"2030-12-09","time":"10am"}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"success":false,"message":"time must be a time formatted as HH:MM"}`,
		},
		{
			name:     "missing psychologist",
			who:      &patient,
			body:     `{"specialtyId":2,"date":"2030-12-09","time":"10:00"}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"success":false,"message":"psychologistId is required"}`,
		},
		{
			name:     "no identity",
			body:     body,
			wantCode: http.StatusUnauthorized,
			wantBody: `{"success":false,"message":"no session identity"}`,
		},
		{
			name: "storage failure is not leaked",
			who:  &patient,
			body: body,
			setupMock: func(f *fixture) {
				f.booking.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("failed to reserve appointment: pq: deadlock detected"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"success":false,"message":"service temporarily unavailable, please try again"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.who)
			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			rec := f.do(http.MethodPost, "/appointments", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHandler_RescheduleAppointment(t *testing.T) {
	f := newFixture(t, &patient)

	psychologistID := int64(6)
	f.booking.EXPECT().Reschedule(gomock.Any(), patient, int64(42), bookingDto.RescheduleAppointmentRequest{
		Date:           "2030-12-10",
		Time:           "11:00",
		PsychologistID: &psychologistID,
	}).Return(nil)

	rec := f.do(http.MethodPost, "/appointments/42/reschedule", `{"date":"2030-12-10","time":"11:00","psychologistId":6}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Appointment rescheduled successfully"}`, rec.Body.String())
}

func TestHandler_CancelAppointment(t *testing.T) {
	t.Run("cancelled", func(t *testing.T) {
		f := newFixture(t, &patient)
		f.booking.EXPECT().Cancel(gomock.Any(), patient, int64(42)).Return(nil)

		rec := f.do(http.MethodPost, "/appointments/42/cancel", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		f := newFixture(t, &patient)

		rec := f.do(http.MethodPost, "/appointments/abc/cancel", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not yours", func(t *testing.T) {
		f := newFixture(t, &patient)
		f.booking.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any()).Return(failure.ForbiddenError)

		rec := f.do(http.MethodPost, "/appointments/42/cancel", "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestHandler_UpdateAppointmentStatus(t *testing.T) {
	psychologist := actor.Actor{AccountID: "acc-5", ID: 5, Role: actor.RolePsychologist}

	tests := []struct {
		name      string
		body      string
		setupMock func(f *fixture)
		wantCode  int
	}{
		{
			name: "confirmed",
			body: `{"status":"Confirmed"}`,
			setupMock: func(f *fixture) {
				f.lifecycle.EXPECT().Transition(gomock.Any(), psychologist, int64(42), apptModel.StatusConfirmed).Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "transition refused",
			body: `{"status":"Completed"}`,
			setupMock: func(f *fixture) {
				f.lifecycle.EXPECT().Transition(gomock.Any(), gomock.Any(), gomock.Any(), apptModel.StatusCompleted).
					Return(failure.InvalidTransition("cannot change status from Pending to Completed"))
			},
			wantCode: http.StatusConflict,
		},
		{
			name:     "pending is not a target",
			body:     `{"status":"Pending"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown status",
			body:     `{"status":"Archived"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "broken json",
			body:     `{"status":`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, &psychologist)
			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			rec := f.do(http.MethodPost, "/appointments/42/status", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_GetAppointments(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		f := newFixture(t, &patient)

		from := time.Date(2030, 12, 1, 0, 0, 0, 0, time.UTC)
		f.listing.EXPECT().ListMine(gomock.Any(), patient, listingDto.MineRequest{}, gDto.DateRange{From: from, To: from.AddDate(0, 0, 31)}).
			Return([]listingDto.AppointmentView{{
				ID:              42,
				Date:            "2030-12-09",
				Time:            "10:00",
				DurationMinutes: 60,
				PatientID:       3,
				PsychologistID:  5,
				SpecialtyName:   "Child psychology",
				CounterpartName: "Dr. Ana",
				Status:          "Pending",
				Upcoming:        true,
			}}, nil)

		rec := f.do(http.MethodGet, "/appointments?scope=mine&from=2030-12-01&to=2030-12-31", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"id":42,"date":"2030-12-09","time":"10:00","durationMinutes":60,"patientId":3,"psychologistId":5,
			"specialtyName":"Child psychology","counterpartName":"Dr. Ana","status":"Pending","reason":null,"upcoming":true}]`,
			rec.Body.String())
	})

	t.Run("admin names a psychologist", func(t *testing.T) {
		admin := actor.Actor{AccountID: "acc-1", Role: actor.RoleAdmin}
		f := newFixture(t, &admin)

		f.listing.EXPECT().ListMine(gomock.Any(), admin, listingDto.MineRequest{PsychologistID: 5}, gDto.DateRange{}).
			Return([]listingDto.AppointmentView{}, nil)

		rec := f.do(http.MethodGet, "/appointments?psychologistId=5", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("unsupported scope", func(t *testing.T) {
		f := newFixture(t, &patient)

		rec := f.do(http.MethodGet, "/appointments?scope=all", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("reversed range", func(t *testing.T) {
		f := newFixture(t, &patient)

		rec := f.do(http.MethodGet, "/appointments?from=2030-12-31&to=2030-12-01", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_GetCalendarAndDetail(t *testing.T) {
	f := newFixture(t, &patient)

	f.listing.EXPECT().Calendar(gomock.Any(), patient, gDto.DateRange{}).Return([]listingDto.CalendarEvent{{
		ID:     42,
		Title:  "Dr. Ana - Child psychology",
		Start:  "2030-12-09T10:00:00Z",
		End:    "2030-12-09T11:00:00Z",
		Status: "Confirmed",
	}}, nil)
	f.listing.EXPECT().Get(gomock.Any(), patient, int64(42)).Return(listingDto.AppointmentView{ID: 42, Status: "Confirmed"}, nil)

	rec := f.do(http.MethodGet, "/appointments/calendar", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Dr. Ana - Child psychology"`)

	rec = f.do(http.MethodGet, "/appointments/42", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"id":42`)
}

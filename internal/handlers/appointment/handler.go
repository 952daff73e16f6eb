package appointment

import (
	"clinic/infras/otel"
	bookingDto "clinic/internal/domains/booking/model/dto"
	booking "clinic/internal/domains/booking/service"
	lifecycleDto "clinic/internal/domains/lifecycle/model/dto"
	lifecycle "clinic/internal/domains/lifecycle/service"
	listingDto "clinic/internal/domains/listing/model/dto"
	listing "clinic/internal/domains/listing/service"
	"clinic/shared"
	"clinic/shared/actor"
	"clinic/shared/constant"
	gDto "clinic/shared/dto"
	"clinic/shared/failure"
	"clinic/shared/validator"
	"clinic/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	booking   booking.Booking
	lifecycle lifecycle.Lifecycle
	listing   listing.Listing
	otel      otel.Otel
}

func New(booking booking.Booking, lifecycle lifecycle.Lifecycle, listing listing.Listing, otel otel.Otel) Handler {
	return Handler{
		booking:   booking,
		lifecycle: lifecycle,
		listing:   listing,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/appointments", handler.CreateAppointment)
	router.Get("/appointments", handler.GetAppointments)
	router.Get("/appointments/calendar", handler.GetCalendar)
	router.Get("/appointments/{id}", handler.GetAppointmentByID)
	router.Post("/appointments/{id}/reschedule", handler.RescheduleAppointment)
	router.Post("/appointments/{id}/cancel", handler.CancelAppointment)
	router.Post("/appointments/{id}/status", handler.UpdateAppointmentStatus)
}

// CreateAppointment books a new appointment.
// @Summary Create an appointment
// @Description Book an interval with a psychologist. Patients book for themselves; other roles name the patient.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param request body bookingDto.CreateAppointmentRequest true "Create Appointment Request"
// @Success 201 {object} response.Created
// @Failure 400 {object} response.Message
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 409 {object} response.Message "The interval overlaps an existing appointment"
// @Failure 500 {object} response.Message
// @Router /appointments [post]
// @Security BearerAuth
func (handler *Handler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAppointment")
	defer scope.End()

	who, err := actor.Require(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := bookingDto.CreateAppointmentRequest{}

	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id, err := handler.booking.Create(ctx, who, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("actor", who.AccountID).Msg("failed to create appointment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointment created by " + who.AccountID)

	response.WithCreated(w, id)
}

// GetAppointments lists the caller's appointments.
// @Summary List my appointments
// @Description Appointments of the calling patient or psychologist, ordered by start. Admins name a patient or a psychologist.
// @Tags Appointment
// @Produce json
// @Param scope query string false "Only 'mine' is supported" default(mine)
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day, inclusive (YYYY-MM-DD)"
// @Param patientId query int false "Patient ID (admin only)"
// @Param psychologistId query int false "Psychologist ID (admin only)"
// @Success 200 {array} listingDto.AppointmentView
// @Failure 400 {object} response.Message
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /appointments [get]
// @Security BearerAuth
func (handler *Handler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointments")
	defer scope.End()

	who, err := actor.Require(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if s := r.URL.Query().Get(constant.RequestParamScope); s != "" && s != constant.ScopeMine {
		response.WithError(w, failure.BadRequestFromString("scope must be 'mine'"))

		return
	}

	req, err := mineRequest(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	dateRange, err := gDto.DateRangeFromRequest(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	views, err := handler.listing.ListMine(ctx, who, req, dateRange)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("actor", who.AccountID).Msg("failed to list appointments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, views)
}

// GetCalendar returns the caller's appointments as calendar events.
// @Summary Calendar feed
// @Description Appointments of the calling patient or psychologist within the window, as calendar events.
// @Tags Appointment
// @Produce json
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day, inclusive (YYYY-MM-DD)"
// @Success 200 {array} listingDto.CalendarEvent
// @Failure 400 {object} response.Message
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /appointments/calendar [get]
// @Security BearerAuth
func (handler *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendar")
	defer scope.End()

	who, err := actor.Require(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	dateRange, err := gDto.DateRangeFromRequest(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	events, err := handler.listing.Calendar(ctx, who, dateRange)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("actor", who.AccountID).Msg("failed to load calendar")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, events)
}

// GetAppointmentByID returns one appointment visible to the caller.
// @Summary Get an appointment
// @Tags Appointment
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} response.Data[listingDto.AppointmentView]
// @Failure 400 {object} response.Message
// @Failure 403 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /appointments/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAppointmentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointmentByID")
	defer scope.End()

	who, id, err := handler.target(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	view, err := handler.listing.Get(ctx, who, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("appointmentId", id).Msg("failed to get appointment")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, view)
}

// RescheduleAppointment moves an appointment to a new start, optionally to another psychologist.
// @Summary Reschedule an appointment
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param request body bookingDto.RescheduleAppointmentRequest true "Reschedule Appointment Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Message
// @Failure 403 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 409 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /appointments/{id}/reschedule [post]
// @Security BearerAuth
func (handler *Handler) RescheduleAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RescheduleAppointment")
	defer scope.End()

	who, id, err := handler.target(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := bookingDto.RescheduleAppointmentRequest{}

	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err = handler.booking.Reschedule(ctx, who, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("appointmentId", id).Msg("failed to reschedule appointment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointment rescheduled by " + who.AccountID)

	response.WithMessage(w, http.StatusOK, "Appointment rescheduled successfully")
}

// CancelAppointment cancels an appointment. Cancelling twice succeeds.
// @Summary Cancel an appointment
// @Tags Appointment
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Message
// @Failure 403 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 409 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /appointments/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelAppointment")
	defer scope.End()

	who, id, err := handler.target(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err = handler.booking.Cancel(ctx, who, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("appointmentId", id).Msg("failed to cancel appointment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointment cancelled by " + who.AccountID)

	response.WithMessage(w, http.StatusOK, "Appointment cancelled successfully")
}

// UpdateAppointmentStatus moves an appointment along its lifecycle.
// @Summary Change appointment status
// @Description Pending to Confirmed or Cancelled, Confirmed to Completed or Cancelled. Psychologists and admins only.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param request body lifecycleDto.StatusRequest true "Status Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Message
// @Failure 403 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 409 {object} response.Message "The transition is not allowed"
// @Failure 500 {object} response.Message
// @Router /appointments/{id}/status [post]
// @Security BearerAuth
func (handler *Handler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAppointmentStatus")
	defer scope.End()

	who, id, err := handler.target(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := lifecycleDto.StatusRequest{}

	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	target, err := req.Target()
	if err != nil {
		response.WithError(w, failure.BadRequest(err))

		return
	}

	if err = handler.lifecycle.Transition(ctx, who, id, target); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("appointmentId", id).Str("target", target.String()).Msg("failed to change appointment status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointment moved to " + target.String() + " by " + who.AccountID)

	response.WithMessage(w, http.StatusOK, "Appointment status updated successfully")
}

// target reads the caller and the {id} path parameter.
func (handler *Handler) target(r *http.Request) (actor.Actor, int64, error) {
	who, err := actor.Require(r.Context())
	if err != nil {
		return who, 0, err //nolint:wrapcheck
	}

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "appointment id")
	if err != nil {
		return who, 0, err //nolint:wrapcheck
	}

	return who, id, nil
}

func mineRequest(r *http.Request) (listingDto.MineRequest, error) {
	var (
		req   listingDto.MineRequest
		err   error
		query = r.URL.Query()
	)

	if raw := query.Get(constant.RequestParamPatientID); raw != "" {
		if req.PatientID, err = shared.ParseID(raw, constant.RequestParamPatientID); err != nil {
			return req, err //nolint:wrapcheck
		}
	}

	if raw := query.Get(constant.RequestParamPsychologistID); raw != "" {
		if req.PsychologistID, err = shared.ParseID(raw, constant.RequestParamPsychologistID); err != nil {
			return req, err //nolint:wrapcheck
		}
	}

	return req, nil
}

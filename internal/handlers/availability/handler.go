package availability

import (
	"clinic/infras/otel"
	"clinic/internal/domains/availability/service"
	"clinic/shared"
	"clinic/shared/constant"
	"clinic/transport/http/response"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/availability", handler.GetOccupiedSlots)
	router.Get("/availability/free", handler.GetFreeSlots)
}

// GetOccupiedSlots lists the grid slots of a day that are blocked by an appointment.
// @Summary Get occupied slots
// @Description Grid slot labels (HH:MM) of the day that overlap a non-cancelled appointment of the psychologist.
// @Tags Availability
// @Produce json
// @Param psychologistId query int true "Psychologist ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} response.Slots
// @Failure 400 {object} response.Message
// @Failure 401 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /availability [get]
// @Security BearerAuth
func (handler *Handler) GetOccupiedSlots(w http.ResponseWriter, r *http.Request) {
	handler.slots(w, r, "GetOccupiedSlots", handler.service.OccupiedSlots)
}

// GetFreeSlots lists the grid slots of a day that can still be booked.
// @Summary Get free slots
// @Description Grid slot labels (HH:MM) of the day that no appointment of the psychologist overlaps.
// @Tags Availability
// @Produce json
// @Param psychologistId query int true "Psychologist ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} response.Slots
// @Failure 400 {object} response.Message
// @Failure 401 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /availability/free [get]
// @Security BearerAuth
func (handler *Handler) GetFreeSlots(w http.ResponseWriter, r *http.Request) {
	handler.slots(w, r, "GetFreeSlots", handler.service.FreeSlots)
}

type slotQuery func(ctx context.Context, psychologistID int64, date string) ([]string, error)

func (handler *Handler) slots(w http.ResponseWriter, r *http.Request, name string, query slotQuery) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	psychologistID, err := shared.ParseID(r.URL.Query().Get(constant.RequestParamPsychologistID), constant.RequestParamPsychologistID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	slots, err := query(ctx, psychologistID, r.URL.Query().Get(constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("psychologistId", psychologistID).Msg("failed to get slots")

		response.WithError(w, err)

		return
	}

	response.WithSlots(w, slots)
}

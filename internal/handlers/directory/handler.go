package directory

import (
	"clinic/infras/otel"
	"clinic/internal/domains/directory/service"
	"clinic/shared"
	"clinic/shared/constant"
	"clinic/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Directory
	otel    otel.Otel
}

func New(service service.Directory, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/specialties", handler.GetSpecialties)
	router.Get("/specialties/{id}/psychologists", handler.GetPsychologistsBySpecialty)
}

// GetSpecialties lists every specialty.
// @Summary List specialties
// @Tags Directory
// @Produce json
// @Success 200 {object} response.Data[[]dto.SpecialtyResponse]
// @Failure 401 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /specialties [get]
// @Security BearerAuth
func (handler *Handler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSpecialties")
	defer scope.End()

	specialties, err := handler.service.ListSpecialties(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list specialties")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, specialties)
}

// GetPsychologistsBySpecialty lists the psychologists offering a specialty.
// @Summary List psychologists of a specialty
// @Tags Directory
// @Produce json
// @Param id path int true "Specialty ID"
// @Success 200 {object} response.Data[[]dto.PsychologistResponse]
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /specialties/{id}/psychologists [get]
// @Security BearerAuth
func (handler *Handler) GetPsychologistsBySpecialty(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPsychologistsBySpecialty")
	defer scope.End()

	specialtyID, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "specialty id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	psychologists, err := handler.service.PsychologistsBySpecialty(ctx, specialtyID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("specialtyId", specialtyID).Msg("failed to list psychologists")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, psychologists)
}

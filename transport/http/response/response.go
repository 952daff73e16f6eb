package response

import (
	"clinic/shared/constant"
	"clinic/shared/failure"
	"clinic/shared/logger"
	"encoding/json"
	"net/http"
)

// Message is the envelope of every mutating endpoint and of every error.
type Message struct {
	Success bool    `json:"success"`
	Message *string `json:"message,omitempty"`
}

type Data[T any] struct {
	Success bool `json:"success"`
	Data    *T   `json:"data,omitempty"`
}

type Slots struct {
	Success bool     `json:"success"`
	Slots   []string `json:"slots"`
}

type Created struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

// WithSuccess sends {"success": true}.
func WithSuccess(writer http.ResponseWriter, code int) {
	response(writer, code, Message{Success: true})
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Success: code < http.StatusBadRequest, Message: &message})
}

// WithCreated sends the identifier of a newly created resource.
func WithCreated(writer http.ResponseWriter, id int64) {
	response(writer, http.StatusCreated, Created{Success: true, ID: id})
}

// WithSlots sends a list of HH:MM slots.
func WithSlots(writer http.ResponseWriter, slots []string) {
	if slots == nil {
		slots = []string{}
	}

	response(writer, http.StatusOK, Slots{Success: true, Slots: slots})
}

// WithData wraps payload in the success envelope.
func WithData[T any](writer http.ResponseWriter, code int, payload T) {
	response(writer, code, Data[T]{Success: true, Data: &payload})
}

// WithJSON sends payload as is. Listings are bare arrays for the calendar widgets.
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	response(writer, code, payload)
}

// WithError sends the public form of err. Anything that is not a failure.Failure is replaced
// by a generic message.
func WithError(writer http.ResponseWriter, err error) {
	fail := failure.Public(err)

	response(writer, fail.Code, Message{Success: false, Message: &fail.Message})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}

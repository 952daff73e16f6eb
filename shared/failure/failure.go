package failure

import (
	"errors"
	"net/http"
)

// Kind classifies a Failure independently of its HTTP code.
type Kind string

const (
	KindInvalidArgument   Kind = "InvalidArgument"
	KindUnauthorized      Kind = "Unauthorized"
	KindForbidden         Kind = "Forbidden"
	KindNotFound          Kind = "NotFound"
	KindSlotConflict      Kind = "SlotConflict"
	KindInvalidTransition Kind = "InvalidTransition"
	KindConflict          Kind = "Conflict"
	KindUnavailable       Kind = "Unavailable"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Kind: KindForbidden, Message: "You don't have the required permissions"}
var unavailable = &Failure{Code: http.StatusInternalServerError, Kind: KindUnavailable, Message: "service temporarily unavailable, please try again"}
var NoProfileLinked = &Failure{Code: http.StatusNotFound, Kind: KindNotFound, Message: "no profile linked to this account"}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindInvalidArgument,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidArgument,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Kind:    KindUnauthorized,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: msg,
	}
}

// Conflict returns a new Failure for a write that lost a race against a concurrent change.
func Conflict(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindConflict,
		Message: msg,
	}
}

// SlotConflict returns a new Failure for a time interval that overlaps an existing appointment.
func SlotConflict(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindSlotConflict,
		Message: msg,
	}
}

// InvalidTransition returns a new Failure for a status change the lifecycle does not allow.
func InvalidTransition(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindInvalidTransition,
		Message: msg,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Kind:    KindForbidden,
		Message: msg,
	}
}

// GetKind returns the kind of an error, Unavailable for anything that is not a Failure.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindUnavailable
}

// Is reports whether err is a Failure of the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && GetKind(err) == kind
}

// Public returns err when it is a Failure and the generic Unavailable failure otherwise,
// so that storage error text never reaches a client.
func Public(err error) *Failure {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail
	}

	return unavailable
}

// Package actor describes who is performing an operation. Services receive an Actor explicitly
// on every call; the HTTP layer builds it from the session token and the directory.
package actor

import (
	"clinic/shared/constant"
	"clinic/shared/failure"
	"context"
	"fmt"
	"strings"
)

// Role is the closed set of roles an account can hold.
type Role int

const (
	RoleUnknown Role = iota
	RolePatient
	RolePsychologist
	RoleAdmin
)

// legacy numeric role codes issued by older sessions
var legacyCodes = map[string]Role{
	"1": RoleAdmin,
	"2": RolePsychologist,
	"3": RolePatient,
}

// ParseRole accepts the role names and the legacy numeric codes.
func ParseRole(raw string) (Role, error) {
	value := strings.ToLower(strings.TrimSpace(raw))

	switch value {
	case constant.RolePatient:
		return RolePatient, nil
	case constant.RolePsychologist:
		return RolePsychologist, nil
	case constant.RoleAdmin:
		return RoleAdmin, nil
	}

	if role, ok := legacyCodes[value]; ok {
		return role, nil
	}

	return RoleUnknown, fmt.Errorf("unknown role %q", raw)
}

func (r Role) String() string {
	switch r {
	case RolePatient:
		return constant.RolePatient
	case RolePsychologist:
		return constant.RolePsychologist
	case RoleAdmin:
		return constant.RoleAdmin
	default:
		return "unknown"
	}
}

// Actor is the authenticated caller. ID is the patient id for patients, the psychologist id for
// psychologists and zero for admins.
type Actor struct {
	AccountID string
	ID        int64
	Role      Role
}

func (a Actor) IsPatient() bool {
	return a.Role == RolePatient
}

func (a Actor) IsPsychologist() bool {
	return a.Role == RolePsychologist
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// IsPatientOf reports whether the actor is the patient with the given id.
func (a Actor) IsPatientOf(patientID int64) bool {
	return a.IsPatient() && a.ID == patientID
}

// IsPsychologistOf reports whether the actor is the psychologist with the given id.
func (a Actor) IsPsychologistOf(psychologistID int64) bool {
	return a.IsPsychologist() && a.ID == psychologistID
}

// Valid reports whether the actor carries a known role and, unless admin, a resolved profile.
func (a Actor) Valid() bool {
	switch a.Role {
	case RoleAdmin:
		return true
	case RolePatient, RolePsychologist:
		return a.ID > 0
	default:
		return false
	}
}

func WithContext(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, constant.ContextKeyActor, a)
}

func FromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(constant.ContextKeyActor).(Actor)

	return a, ok
}

// Require returns the actor stored by the identity middleware, or Unauthorized.
func Require(ctx context.Context) (Actor, error) {
	a, ok := FromContext(ctx)
	if !ok || !a.Valid() {
		return Actor{}, failure.Unauthorized("no session identity") //nolint:wrapcheck
	}

	return a, nil
}

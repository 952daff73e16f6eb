package model

import "encoding/json"

const (
	EventTableName = "appointment_events"

	EventCreated       = "created"
	EventRescheduled   = "rescheduled"
	EventStatusChanged = "status_changed"
)

// Event is an audit row written in the same transaction as the change it records.
type Event struct {
	ID             int64           `db:"id"`
	AppointmentID  int64           `db:"appointment_id"`
	Type           string          `db:"event_type"`
	ActorAccountID string          `db:"actor_account_id"`
	ActorRole      string          `db:"actor_role"`
	Payload        json.RawMessage `db:"payload"`
}

// NewEvent marshals payload; a payload that cannot be encoded is stored as an empty object.
func NewEvent(eventType, accountID, role string, payload any) Event {
	raw, err := json.Marshal(payload)
	if err != nil || payload == nil {
		raw = json.RawMessage(`{}`)
	}

	return Event{
		Type:           eventType,
		ActorAccountID: accountID,
		ActorRole:      role,
		Payload:        raw,
	}
}

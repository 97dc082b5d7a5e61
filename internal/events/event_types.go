package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered  EventType = "user_registered"
	EventUserLoggedIn    EventType = "user_logged_in"
	EventUserLoggedOut   EventType = "user_logged_out"
	EventPasswordChanged EventType = "password_changed"
	EventProfileUpdated  EventType = "profile_updated"
)

// Event represents an account-lifecycle event emitted by services.
// Payloads never carry credentials or password hashes.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// ProfileUpdatedPayload lists the profile fields touched by an update.
type ProfileUpdatedPayload struct {
	Fields []string `json:"fields"`
}

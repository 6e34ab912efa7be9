// Package event holds the domain model for organizer-created events.
package event

import "time"

// Event represents an event created by an organizer. ParticipantsCount is
// stored as text and incremented as an integer, matching the persisted format.
type Event struct {
	ID                string    `json:"id"`
	OrganizerID       string    `json:"organizer_id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Location          string    `json:"location,omitzero"`
	IsTokenGated      bool      `json:"is_token_gated"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	ParticipantsCount string    `json:"participants_count"`
	CreatedAt         time.Time `json:"created_at"`
}

// Ended reports whether the event's stored end date and time are both in the
// past relative to the given instant.
func (e *Event) Ended(now time.Time) bool {
	if e.EndTime.Before(now) && e.EndDate.Before(now) {
		return true
	}
	return false
}

// CreateRequest is the validated payload for event creation. All timestamps
// are RFC 3339; the end must be after the start.
type CreateRequest struct {
	Title        string    `json:"title" validate:"required,min=3,max=200"`
	Description  string    `json:"description" validate:"required"`
	Location     string    `json:"location" validate:"required"`
	IsTokenGated bool      `json:"is_token_gated"`
	StartDate    time.Time `json:"start_date" validate:"required"`
	EndDate      time.Time `json:"end_date" validate:"required,gtefield=StartDate"`
	StartTime    time.Time `json:"start_time" validate:"required"`
	EndTime      time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
}

// MyEventsResponse splits the caller's registered events into upcoming and
// past by comparing the stored date and time fields against now.
type MyEventsResponse struct {
	Upcoming []*Event `json:"upcoming"`
	Past     []*Event `json:"past"`
}

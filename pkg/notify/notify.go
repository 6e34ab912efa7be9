// Package notify carries the registration-confirmation mail pipeline: a
// publisher on the service side, an AMQP queue in between, and a consumer
// worker that renders and sends the email.
package notify

import "time"

// RegistrationConfirmation is the message published for every successful
// registration and consumed by the mail worker.
type RegistrationConfirmation struct {
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	EventID       string    `json:"event_id"`
	EventTitle    string    `json:"event_title"`
	EventLocation string    `json:"event_location"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
}

package entities

import "time"

// Event is a track day / race event open for registration.
//
// Storage model (DynamoDB):
//   - PK: id

type Event struct {
	ID                   string     `json:"id"`
	Title                string     `json:"title"`
	Subtitle             string     `json:"subtitle,omitempty"`
	ShortDescription     string     `json:"short_description,omitempty"`
	Description          string     `json:"description,omitempty"`
	Image                string     `json:"image,omitempty"`
	TrackImage           string     `json:"track_image,omitempty"`
	Regulation           string     `json:"regulation,omitempty"`
	ExternalTickets      string     `json:"external_tickets,omitempty"`
	ChatLink             string     `json:"chat_link,omitempty"`
	MembershipRequired   bool       `json:"membership_required"`
	RegistrationPossible bool       `json:"registration_possible"`
	LastDay              string     `json:"last_day,omitempty"`
	PossibleDays         []EventDay `json:"possible_days,omitempty"`
	Result               string     `json:"result,omitempty"`
	ResultClass          string     `json:"result_class,omitempty"`
	ResultLap            string     `json:"result_lap,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

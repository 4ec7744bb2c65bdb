package response

import (
	"time"

	"distrito_racing/internal/domain/entities"
)

type EventResponse struct {
	ID                   string             `json:"id"`
	Title                string             `json:"title"`
	Subtitle             string             `json:"subtitle,omitempty"`
	ShortDescription     string             `json:"short_description,omitempty"`
	Description          string             `json:"description,omitempty"`
	Image                string             `json:"image,omitempty"`
	TrackImage           string             `json:"track_image,omitempty"`
	Regulation           string             `json:"regulation,omitempty"`
	ExternalTickets      string             `json:"external_tickets,omitempty"`
	ChatLink             string             `json:"chat_link,omitempty"`
	MembershipRequired   bool               `json:"membership_required"`
	RegistrationPossible bool               `json:"registration_possible"`
	LastDay              string             `json:"last_day,omitempty"`
	PossibleDays         []EventDayResponse `json:"possible_days,omitempty"`
	Result               string             `json:"result,omitempty"`
	ResultClass          string             `json:"result_class,omitempty"`
	ResultLap            string             `json:"result_lap,omitempty"`
	CreatedAt            time.Time          `json:"created_at"`
}

func FromEvent(e entities.Event) EventResponse {
	days := make([]EventDayResponse, 0, len(e.PossibleDays))
	for _, d := range e.PossibleDays {
		days = append(days, EventDayResponse{Date: d.Date, Description: d.Description})
	}
	return EventResponse{
		ID:                   e.ID,
		Title:                e.Title,
		Subtitle:             e.Subtitle,
		ShortDescription:     e.ShortDescription,
		Description:          e.Description,
		Image:                e.Image,
		TrackImage:           e.TrackImage,
		Regulation:           e.Regulation,
		ExternalTickets:      e.ExternalTickets,
		ChatLink:             e.ChatLink,
		MembershipRequired:   e.MembershipRequired,
		RegistrationPossible: e.RegistrationPossible,
		LastDay:              e.LastDay,
		PossibleDays:         days,
		Result:               e.Result,
		ResultClass:          e.ResultClass,
		ResultLap:            e.ResultLap,
		CreatedAt:            e.CreatedAt,
	}
}

func FromEvents(events []entities.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, FromEvent(e))
	}
	return out
}

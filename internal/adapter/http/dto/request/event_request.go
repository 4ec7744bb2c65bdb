package request

import (
	"distrito_racing/internal/domain/entities"
)

// EventRequest creates or updates an event.
type EventRequest struct {
	Title                string            `json:"title" binding:"required"`
	Subtitle             string            `json:"subtitle"`
	ShortDescription     string            `json:"short_description"`
	Description          string            `json:"description"`
	Image                string            `json:"image"`
	TrackImage           string            `json:"track_image"`
	Regulation           string            `json:"regulation"`
	ExternalTickets      string            `json:"external_tickets"`
	ChatLink             string            `json:"chat_link"`
	MembershipRequired   bool              `json:"membership_required"`
	RegistrationPossible bool              `json:"registration_possible"`
	LastDay              string            `json:"last_day"`
	PossibleDays         []EventDayRequest `json:"possible_days"`
	Result               string            `json:"result"`
	ResultClass          string            `json:"result_class"`
	ResultLap            string            `json:"result_lap"`
}

func (r EventRequest) ToEntity() entities.Event {
	days := make([]entities.EventDay, 0, len(r.PossibleDays))
	for _, d := range r.PossibleDays {
		days = append(days, entities.EventDay{Date: d.Date, Description: d.Description})
	}
	return entities.Event{
		Title:                r.Title,
		Subtitle:             r.Subtitle,
		ShortDescription:     r.ShortDescription,
		Description:          r.Description,
		Image:                r.Image,
		TrackImage:           r.TrackImage,
		Regulation:           r.Regulation,
		ExternalTickets:      r.ExternalTickets,
		ChatLink:             r.ChatLink,
		MembershipRequired:   r.MembershipRequired,
		RegistrationPossible: r.RegistrationPossible,
		LastDay:              r.LastDay,
		PossibleDays:         days,
		Result:               r.Result,
		ResultClass:          r.ResultClass,
		ResultLap:            r.ResultLap,
	}
}

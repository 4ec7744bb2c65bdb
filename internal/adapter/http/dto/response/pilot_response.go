package response

import (
	"distrito_racing/internal/domain/entities"
)

type PilotVerificationResponse struct {
	Found            bool   `json:"found"`
	License          string `json:"license,omitempty"`
	Name             string `json:"name,omitempty"`
	Pseudonym        string `json:"pseudonym,omitempty"`
	Category         string `json:"category,omitempty"`
	Federation       string `json:"federation,omitempty"`
	Year             int    `json:"year,omitempty"`
	Situation        string `json:"situation,omitempty"`
	Photo            string `json:"photo,omitempty"`
	IsValidForEvents bool   `json:"is_valid_for_events"`
}

func FromPilotVerification(v entities.PilotVerification) PilotVerificationResponse {
	return PilotVerificationResponse(v)
}

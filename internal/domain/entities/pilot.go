package entities

// Pilot-certification data returned by the national federation registry (CBA).
// The registry is an external collaborator reached over HTTP; nothing here is
// persisted.

// AcceptedPilotCategories are the CBA license categories admitted to events.
var AcceptedPilotCategories = []string{"PTD", "PC", "PGC-B", "PGC-A"}

// PilotVerification is the parsed result of a registry lookup by CPF.
type PilotVerification struct {
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

// IsAcceptedPilotCategory reports whether a CBA category grants event access.
func IsAcceptedPilotCategory(category string) bool {
	for _, c := range AcceptedPilotCategories {
		if c == category {
			return true
		}
	}
	return false
}

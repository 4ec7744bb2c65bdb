package response

import (
	"time"

	"distrito_racing/internal/domain/entities"
)

type AddressResponse struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	Zipcode           string    `json:"zipcode,omitempty"`
	StreetAddress     string    `json:"street_address,omitempty"`
	AdditionalAddress string    `json:"additional_address,omitempty"`
	District          string    `json:"district,omitempty"`
	City              string    `json:"city,omitempty"`
	State             string    `json:"state,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func FromAddress(a entities.Address) AddressResponse {
	return AddressResponse(a)
}

func FromAddresses(addresses []entities.Address) []AddressResponse {
	out := make([]AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, FromAddress(a))
	}
	return out
}

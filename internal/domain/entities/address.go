package entities

import "time"

// Address is a user's mailing address, reused as payer address on boleto
// charges.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id

type Address struct {
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

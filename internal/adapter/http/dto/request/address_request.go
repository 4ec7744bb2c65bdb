package request

import (
	"distrito_racing/internal/domain/entities"
)

// AddressRequest creates or updates one of the caller's mailing addresses.
type AddressRequest struct {
	Zipcode           string `json:"zipcode" binding:"required"`
	StreetAddress     string `json:"street_address"`
	AdditionalAddress string `json:"additional_address"`
	District          string `json:"district"`
	City              string `json:"city"`
	State             string `json:"state"`
}

func (r AddressRequest) ToEntity() entities.Address {
	return entities.Address{
		Zipcode:           r.Zipcode,
		StreetAddress:     r.StreetAddress,
		AdditionalAddress: r.AdditionalAddress,
		District:          r.District,
		City:              r.City,
		State:             r.State,
	}
}

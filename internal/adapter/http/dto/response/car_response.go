package response

import (
	"distrito_racing/internal/domain/entities"
)

type CarResponse struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Version  string `json:"version,omitempty"`
	CarClass string `json:"car_class,omitempty"`
}

func FromCar(c entities.Car) CarResponse {
	return CarResponse(c)
}

func FromCars(cars []entities.Car) []CarResponse {
	out := make([]CarResponse, 0, len(cars))
	for _, c := range cars {
		out = append(out, FromCar(c))
	}
	return out
}

package request

import (
	"distrito_racing/internal/domain/entities"
)

// CarRequest creates or updates one of the caller's vehicles.
type CarRequest struct {
	Brand    string `json:"brand" binding:"required"`
	Model    string `json:"model" binding:"required"`
	Version  string `json:"version"`
	CarClass string `json:"car_class"`
}

func (r CarRequest) ToEntity() entities.Car {
	return entities.Car{
		Brand:    r.Brand,
		Model:    r.Model,
		Version:  r.Version,
		CarClass: r.CarClass,
	}
}

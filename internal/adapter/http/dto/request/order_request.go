package request

import (
	"distrito_racing/internal/domain/entities"
	"distrito_racing/internal/usecase"
)

type EventDayRequest struct {
	Date        string `json:"date" binding:"required"`
	Description string `json:"description"`
}

// CreateOrderRequest is the cart payload submitted when registering for an
// event.
type CreateOrderRequest struct {
	EventID         string            `json:"event_id" binding:"required"`
	Car             string            `json:"car"`
	CarClass        string            `json:"car_class"`
	Number          int               `json:"number"`
	Days            []EventDayRequest `json:"days"`
	PaymentMethod   string            `json:"payment_method"`
	FirstDriverName string            `json:"first_driver_name"`
	IsFirstDriver   bool              `json:"is_first_driver"`
	ProductIDs      []string          `json:"product_ids" binding:"required,min=1"`
}

func (r CreateOrderRequest) ToCommand() usecase.CreateOrderCommand {
	days := make([]entities.EventDay, 0, len(r.Days))
	for _, d := range r.Days {
		days = append(days, entities.EventDay{Date: d.Date, Description: d.Description})
	}
	return usecase.CreateOrderCommand{
		EventID:         r.EventID,
		Car:             r.Car,
		CarClass:        r.CarClass,
		Number:          r.Number,
		Days:            days,
		PaymentMethod:   r.PaymentMethod,
		FirstDriverName: r.FirstDriverName,
		IsFirstDriver:   r.IsFirstDriver,
		ProductIDs:      r.ProductIDs,
	}
}

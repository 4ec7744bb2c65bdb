package request

import (
	"distrito_racing/internal/domain/entities"
)

// ProductRequest creates or updates a ticket tier.
type ProductRequest struct {
	EventID       string `json:"event_id" binding:"required"`
	Name          string `json:"name" binding:"required"`
	PriceCents    int64  `json:"price_cents" binding:"required"`
	NumberDays    int    `json:"number_days"`
	StartDate     string `json:"start_date"`
	FinalDate     string `json:"final_date"`
	Tier          string `json:"tier"`
	Quantity      *int   `json:"quantity"`
	IsFirstDriver bool   `json:"is_first_driver"`
}

func (r ProductRequest) ToEntity() entities.Product {
	return entities.Product{
		EventID:       r.EventID,
		Name:          r.Name,
		PriceCents:    r.PriceCents,
		NumberDays:    r.NumberDays,
		StartDate:     r.StartDate,
		FinalDate:     r.FinalDate,
		Tier:          r.Tier,
		Quantity:      r.Quantity,
		IsFirstDriver: r.IsFirstDriver,
	}
}

package response

import (
	"time"

	"distrito_racing/internal/domain/entities"
)

type ProductResponse struct {
	ID            string    `json:"id"`
	EventID       string    `json:"event_id"`
	Name          string    `json:"name"`
	PriceCents    int64     `json:"price_cents"`
	NumberDays    int       `json:"number_days,omitempty"`
	StartDate     string    `json:"start_date,omitempty"`
	FinalDate     string    `json:"final_date,omitempty"`
	Tier          string    `json:"tier,omitempty"`
	Quantity      *int      `json:"quantity,omitempty"`
	IsFirstDriver bool      `json:"is_first_driver"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		EventID:       p.EventID,
		Name:          p.Name,
		PriceCents:    p.PriceCents,
		NumberDays:    p.NumberDays,
		StartDate:     p.StartDate,
		FinalDate:     p.FinalDate,
		Tier:          p.Tier,
		Quantity:      p.Quantity,
		IsFirstDriver: p.IsFirstDriver,
		CreatedAt:     p.CreatedAt,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

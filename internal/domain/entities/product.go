package entities

import "time"

// Product is a ticket tier sold for an event.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (event_id-index): event_id
//
// Monetary representation:
//   - PriceCents is the price in minor currency units (centavos).
//
// Quantity is nil when the tier has no stock tracking (unlimited sales). When
// tracked it never goes below zero: the only mutation path is the conditional
// decrement performed inside the order-creation transaction.

type Product struct {
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

// HasTrackedQuantity reports whether stock is limited for this tier.
func (p Product) HasTrackedQuantity() bool { return p.Quantity != nil }

// AvailableOn reports whether the sales window covers the given date
// (YYYY-MM-DD). Open-ended bounds are treated as always satisfied.
func (p Product) AvailableOn(date string) bool {
	if p.StartDate != "" && date < p.StartDate {
		return false
	}
	if p.FinalDate != "" && date > p.FinalDate {
		return false
	}
	return true
}

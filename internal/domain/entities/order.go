package entities

import "time"

// EventDay is one selected racing day of an event.
type EventDay struct {
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
}

// PaymentInfo is the gateway-facing payment state embedded in an order.
//
// ChargeID references the charge owned by the external gateway; Status and
// StatusDetail retain the gateway's vocabulary for display. Method-specific
// artifacts (PIX QR payload, boleto barcode/URL, hosted-checkout URL) are kept
// so clients can resume an in-flight payment.

type PaymentInfo struct {
	ChargeID        string       `json:"charge_id,omitempty"`
	Status          ChargeStatus `json:"status,omitempty"`
	StatusDetail    string       `json:"status_detail,omitempty"`
	PixQRCode       string       `json:"pix_qr_code,omitempty"`
	PixQRCodeBase64 string       `json:"pix_qr_code_base64,omitempty"`
	PixTicketURL    string       `json:"pix_ticket_url,omitempty"`
	BoletoURL       string       `json:"boleto_url,omitempty"`
	BoletoBarcode   string       `json:"boleto_barcode,omitempty"`
	CheckoutURL     string       `json:"checkout_url,omitempty"`
	ExpiresAt       string       `json:"expires_at,omitempty"`
}

// Order is a user's registration/purchase record for an event.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//   - GSI2 (event_id-index): event_id
//   - GSI3 (charge_id-index): charge_id, used by webhook reconciliation
//
// IsPaid is a one-way latch: the repository only applies payment-state writes
// while is_paid is still false, so a settled order can never be downgraded by
// late or duplicate gateway notifications.

type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	EventID         string      `json:"event_id"`
	CreatedAt       time.Time   `json:"created_at"`
	IsPaid          bool        `json:"is_paid"`
	Car             string      `json:"car"`
	CarClass        string      `json:"car_class"`
	Number          int         `json:"number"`
	Days            []EventDay  `json:"days"`
	PaymentMethod   string      `json:"payment_method,omitempty"`
	FirstDriverName string      `json:"first_driver_name,omitempty"`
	IsFirstDriver   bool        `json:"is_first_driver"`
	Payment         PaymentInfo `json:"payment"`
}

// OrderLine associates an order with one purchased product.
//
// PriceCents is a snapshot taken at purchase time; the order total is always
// the sum of its line snapshots and is never recomputed from current product
// prices.

type OrderLine struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	ProductID  string    `json:"product_id"`
	PriceCents int64     `json:"price_cents"`
	Quantity   int       `json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
}

// SumLineTotalCents computes the authoritative order total from line snapshots.
func SumLineTotalCents(lines []OrderLine) int64 {
	var total int64
	for _, l := range lines {
		qty := l.Quantity
		if qty <= 0 {
			qty = 1
		}
		total += l.PriceCents * int64(qty)
	}
	return total
}

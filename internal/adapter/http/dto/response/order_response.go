package response

import (
	"time"

	"distrito_racing/internal/domain/entities"
)

type EventDayResponse struct {
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
}

type PaymentInfoResponse struct {
	ChargeID        string `json:"charge_id,omitempty"`
	Status          string `json:"status,omitempty"`
	StatusDetail    string `json:"status_detail,omitempty"`
	PixQRCode       string `json:"pix_qr_code,omitempty"`
	PixQRCodeBase64 string `json:"pix_qr_code_base64,omitempty"`
	PixTicketURL    string `json:"pix_ticket_url,omitempty"`
	BoletoURL       string `json:"boleto_url,omitempty"`
	BoletoBarcode   string `json:"boleto_barcode,omitempty"`
	CheckoutURL     string `json:"checkout_url,omitempty"`
	ExpiresAt       string `json:"expires_at,omitempty"`
}

type OrderResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"user_id"`
	EventID         string              `json:"event_id"`
	CreatedAt       time.Time           `json:"created_at"`
	IsPaid          bool                `json:"is_paid"`
	Car             string              `json:"car,omitempty"`
	CarClass        string              `json:"car_class,omitempty"`
	Number          int                 `json:"number,omitempty"`
	Days            []EventDayResponse  `json:"days,omitempty"`
	PaymentMethod   string              `json:"payment_method,omitempty"`
	FirstDriverName string              `json:"first_driver_name,omitempty"`
	IsFirstDriver   bool                `json:"is_first_driver"`
	Payment         PaymentInfoResponse `json:"payment"`
}

func FromOrder(o entities.Order) OrderResponse {
	days := make([]EventDayResponse, 0, len(o.Days))
	for _, d := range o.Days {
		days = append(days, EventDayResponse{Date: d.Date, Description: d.Description})
	}
	return OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		EventID:         o.EventID,
		CreatedAt:       o.CreatedAt,
		IsPaid:          o.IsPaid,
		Car:             o.Car,
		CarClass:        o.CarClass,
		Number:          o.Number,
		Days:            days,
		PaymentMethod:   o.PaymentMethod,
		FirstDriverName: o.FirstDriverName,
		IsFirstDriver:   o.IsFirstDriver,
		Payment:         fromPaymentInfo(o.Payment),
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

type OrderLineResponse struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	ProductID  string    `json:"product_id"`
	PriceCents int64     `json:"price_cents"`
	Quantity   int       `json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromOrderLines(lines []entities.OrderLine) []OrderLineResponse {
	out := make([]OrderLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, OrderLineResponse{
			ID:         l.ID,
			OrderID:    l.OrderID,
			ProductID:  l.ProductID,
			PriceCents: l.PriceCents,
			Quantity:   l.Quantity,
			CreatedAt:  l.CreatedAt,
		})
	}
	return out
}

func fromPaymentInfo(p entities.PaymentInfo) PaymentInfoResponse {
	return PaymentInfoResponse{
		ChargeID:        p.ChargeID,
		Status:          string(p.Status),
		StatusDetail:    p.StatusDetail,
		PixQRCode:       p.PixQRCode,
		PixQRCodeBase64: p.PixQRCodeBase64,
		PixTicketURL:    p.PixTicketURL,
		BoletoURL:       p.BoletoURL,
		BoletoBarcode:   p.BoletoBarcode,
		CheckoutURL:     p.CheckoutURL,
		ExpiresAt:       p.ExpiresAt,
	}
}

// FirstDriverCheckResponse answers the shared-car first-driver lookup.
type FirstDriverCheckResponse struct {
	Registered bool   `json:"registered"`
	DriverName string `json:"driver_name,omitempty"`
}

// NumberAvailabilityResponse answers the race-number availability lookup.
type NumberAvailabilityResponse struct {
	Number    int  `json:"number"`
	Available bool `json:"available"`
}

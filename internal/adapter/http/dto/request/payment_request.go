package request

import (
	"distrito_racing/internal/domain/entities"
	"distrito_racing/internal/usecase"
)

type PayerIdentificationRequest struct {
	Type   string `json:"type" binding:"required"`
	Number string `json:"number" binding:"required"`
}

type PayerAddressRequest struct {
	ZipCode      string `json:"zip_code" binding:"required"`
	StreetName   string `json:"street_name" binding:"required"`
	StreetNumber string `json:"street_number" binding:"required"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city" binding:"required"`
	FederalUnit  string `json:"federal_unit" binding:"required"`
}

type PayerRequest struct {
	Email          string                     `json:"email" binding:"required,email"`
	FirstName      string                     `json:"first_name"`
	LastName       string                     `json:"last_name"`
	Identification PayerIdentificationRequest `json:"identification" binding:"required"`
	Address        *PayerAddressRequest       `json:"address"`
}

type CardRequest struct {
	Token           string `json:"token"`
	Installments    int    `json:"installments"`
	PaymentMethodID string `json:"payment_method_id"`
	IssuerID        string `json:"issuer_id"`
}

// ProcessPaymentRequest starts one charge attempt against an existing order.
type ProcessPaymentRequest struct {
	OrderID       string       `json:"order_id" binding:"required"`
	PaymentMethod string       `json:"payment_method" binding:"required"`
	Payer         PayerRequest `json:"payer" binding:"required"`
	Card          *CardRequest `json:"card"`
}

func (r ProcessPaymentRequest) ToCommand() usecase.ProcessPaymentCommand {
	payer := entities.Payer{
		Email:     r.Payer.Email,
		FirstName: r.Payer.FirstName,
		LastName:  r.Payer.LastName,
		Identification: entities.PayerIdentification{
			Type:   r.Payer.Identification.Type,
			Number: r.Payer.Identification.Number,
		},
	}
	if r.Payer.Address != nil {
		payer.Address = &entities.PayerAddress{
			ZipCode:      r.Payer.Address.ZipCode,
			StreetName:   r.Payer.Address.StreetName,
			StreetNumber: r.Payer.Address.StreetNumber,
			Neighborhood: r.Payer.Address.Neighborhood,
			City:         r.Payer.Address.City,
			FederalUnit:  r.Payer.Address.FederalUnit,
		}
	}

	var card *entities.CardData
	if r.Card != nil {
		card = &entities.CardData{
			Token:           r.Card.Token,
			Installments:    r.Card.Installments,
			PaymentMethodID: r.Card.PaymentMethodID,
			IssuerID:        r.Card.IssuerID,
		}
	}

	return usecase.ProcessPaymentCommand{
		OrderID: r.OrderID,
		Method:  entities.PaymentMethod(r.PaymentMethod),
		Payer:   payer,
		Card:    card,
	}
}

// WebhookNotificationRequest is the Mercado Pago notification body. The charge
// reference may also arrive as the data.id query parameter; ResolveDataID
// prefers the body.
type WebhookNotificationRequest struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (r WebhookNotificationRequest) ResolveDataID(queryDataID string) string {
	if r.Data.ID != "" {
		return r.Data.ID
	}
	return queryDataID
}

// ResolveType returns the notification topic, preferring the body over the
// type query parameter like ResolveDataID.
func (r WebhookNotificationRequest) ResolveType(queryType string) string {
	if r.Type != "" {
		return r.Type
	}
	return queryType
}

package interfaces

import (
	"context"

	"distrito_racing/internal/domain/entities"
)

// ChargeRequest is the gateway-agnostic charge attempt built by the payment
// use case. Exactly one method branch applies: Card is set for card methods,
// Payer.Address is required for boleto.
type ChargeRequest struct {
	OrderID     string
	AmountCents int64
	Description string
	Method      entities.PaymentMethod
	Payer       entities.Payer
	Card        *entities.CardData
}

// ChargeResult is the normalized gateway response. Status is already mapped to
// the internal vocabulary; method-specific artifacts are populated when the
// gateway sent them.
type ChargeResult struct {
	ID string
	// ExternalReference echoes the order id the charge was created with.
	// Notifications may carry a charge id the store has never seen (hosted
	// checkout stores the preference id, the webhook delivers the payment id);
	// this field is how reconciliation finds the order anyway.
	ExternalReference string
	Status            entities.ChargeStatus
	StatusDetail      string
	PixQRCode         string
	PixQRCodeBase64   string
	PixTicketURL      string
	BoletoURL         string
	BoletoBarcode     string
	CheckoutURL       string
	ExpiresAt         string
}

// IsPaid is the binary projection of a charge result.
func (r ChargeResult) IsPaid() bool { return r.Status.IsPaid() }

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
//
// Two implementations exist behind this single port: the direct Orders-API
// charge flow and the hosted redirect-checkout flow; which one runs is a
// startup configuration choice, never a per-request one.
//
// CreateCharge must key every attempt with a fresh idempotency token so that
// network-level retries cannot duplicate external charges. Non-success HTTP
// responses surface as *GatewayError.

type IPaymentGateway interface {
	CreateCharge(ctx context.Context, req ChargeRequest) (ChargeResult, error)
	GetCharge(ctx context.Context, id string) (ChargeResult, error)
	VerifySignature(signatureHeader, requestIDHeader, dataID string) bool
}

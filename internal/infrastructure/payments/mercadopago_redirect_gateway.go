package payments

import (
	"context"
	"encoding/json"
	"log"
	"strconv"

	"distrito_racing/internal/domain/entities"
	"distrito_racing/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

// MercadoPagoRedirectGateway charges through a hosted checkout: CreateCharge
// opens a checkout preference and hands the payer its init point URL, the
// actual payment happens on Mercado Pago's page and comes back through the
// webhook.
type MercadoPagoRedirectGateway struct {
	preferences     preference.Client
	payments        payment.Client
	notificationURL string
	verifier        SignatureVerifier
}

var _ interfaces.IPaymentGateway = (*MercadoPagoRedirectGateway)(nil)

func NewMercadoPagoRedirectGateway(accessToken, notificationURL string, verifier SignatureVerifier) (*MercadoPagoRedirectGateway, error) {
	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] redirect gateway initialized")

	return &MercadoPagoRedirectGateway{
		preferences:     preference.NewClient(cfg),
		payments:        payment.NewClient(cfg),
		notificationURL: notificationURL,
		verifier:        verifier,
	}, nil
}

func (g *MercadoPagoRedirectGateway) CreateCharge(ctx context.Context, req interfaces.ChargeRequest) (interfaces.ChargeResult, error) {
	prefReq := preference.Request{
		ExternalReference: req.OrderID,
		NotificationURL:   g.notificationURL,
		Items: []preference.ItemRequest{
			{
				ID:        req.OrderID,
				Title:     req.Description,
				Quantity:  1,
				UnitPrice: float64(req.AmountCents) / 100,
			},
		},
	}
	if req.Payer.Email != "" {
		prefReq.Payer = &preference.PayerRequest{
			Email:   req.Payer.Email,
			Name:    req.Payer.FirstName,
			Surname: req.Payer.LastName,
		}
	}

	log.Printf("[payment][gateway] create preference start order_id=%s amount_cents=%d", req.OrderID, req.AmountCents)

	resp, err := g.preferences.Create(ctx, prefReq)
	if err != nil {
		log.Printf("[payment][gateway] create preference failed order_id=%s err=%v", req.OrderID, err)
		return interfaces.ChargeResult{}, err
	}
	log.Printf("[payment][gateway] create preference success order_id=%s preference_id=%s", req.OrderID, resp.ID)

	return interfaces.ChargeResult{
		ID:                resp.ID,
		ExternalReference: req.OrderID,
		Status:            entities.ChargeStatusPending,
		CheckoutURL:       resp.InitPoint,
	}, nil
}

// GetCharge resolves a numeric payment id, which is what webhooks deliver,
// and carries the payment's external reference (the order id) so the
// reconciliation can match notifications against orders that still hold the
// checkout-time preference id. A preference id itself stays pending here; the
// first applied notification replaces it with the payment id.
func (g *MercadoPagoRedirectGateway) GetCharge(ctx context.Context, id string) (interfaces.ChargeResult, error) {
	paymentID, err := strconv.Atoi(id)
	if err != nil {
		return interfaces.ChargeResult{ID: id, Status: entities.ChargeStatusPending}, nil
	}

	resp, err := g.payments.Get(ctx, paymentID)
	if err != nil {
		log.Printf("[payment][gateway] get payment failed payment_id=%d err=%v", paymentID, err)
		return interfaces.ChargeResult{}, err
	}

	return paymentToChargeResult(resp), nil
}

func (g *MercadoPagoRedirectGateway) VerifySignature(signatureHeader, requestIDHeader, dataID string) bool {
	return g.verifier.Verify(signatureHeader, requestIDHeader, dataID)
}

// paymentArtifacts picks the method-specific artifacts out of the SDK payment
// response through its wire representation.
type paymentArtifacts struct {
	DateOfExpiration   string `json:"date_of_expiration"`
	PointOfInteraction struct {
		TransactionData struct {
			QRCode       string `json:"qr_code"`
			QRCodeBase64 string `json:"qr_code_base64"`
			TicketURL    string `json:"ticket_url"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
	TransactionDetails struct {
		ExternalResourceURL string `json:"external_resource_url"`
		DigitableLine       string `json:"digitable_line"`
	} `json:"transaction_details"`
	Barcode struct {
		Content string `json:"content"`
	} `json:"barcode"`
}

func paymentToChargeResult(resp *payment.Response) interfaces.ChargeResult {
	result := interfaces.ChargeResult{
		ID:                strconv.Itoa(resp.ID),
		ExternalReference: resp.ExternalReference,
		Status:            mapPaymentStatus(resp.Status),
		StatusDetail:      resp.StatusDetail,
	}

	var artifacts paymentArtifacts
	if raw, err := json.Marshal(resp); err == nil {
		if err := json.Unmarshal(raw, &artifacts); err == nil {
			result.PixQRCode = artifacts.PointOfInteraction.TransactionData.QRCode
			result.PixQRCodeBase64 = artifacts.PointOfInteraction.TransactionData.QRCodeBase64
			result.PixTicketURL = artifacts.PointOfInteraction.TransactionData.TicketURL
			result.BoletoURL = artifacts.TransactionDetails.ExternalResourceURL
			result.BoletoBarcode = artifacts.Barcode.Content
			if result.BoletoBarcode == "" {
				result.BoletoBarcode = artifacts.TransactionDetails.DigitableLine
			}
			result.ExpiresAt = artifacts.DateOfExpiration
		}
	}

	return result
}

func mapPaymentStatus(status string) entities.ChargeStatus {
	switch status {
	case "approved":
		return entities.ChargeStatusApproved
	case "in_process", "in_mediation":
		return entities.ChargeStatusInProcess
	case "rejected":
		return entities.ChargeStatusRejected
	case "cancelled", "refunded", "charged_back":
		return entities.ChargeStatusCancelled
	default:
		return entities.ChargeStatusPending
	}
}

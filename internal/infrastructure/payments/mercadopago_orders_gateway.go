package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"distrito_racing/internal/domain/entities"
	"distrito_racing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

const defaultMercadoPagoBaseURL = "https://api.mercadopago.com"

// mpOrderRequest is the Orders API create payload.
type mpOrderRequest struct {
	Type              string              `json:"type"`
	ProcessingMode    string              `json:"processing_mode"`
	TotalAmount       string              `json:"total_amount"`
	ExternalReference string              `json:"external_reference"`
	Description       string              `json:"description"`
	Payer             mpPayer             `json:"payer"`
	Transactions      mpOrderTransactions `json:"transactions"`
}

type mpPayer struct {
	Email          string           `json:"email"`
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	Identification mpIdentification `json:"identification"`
	Address        *mpPayerAddress  `json:"address,omitempty"`
}

type mpIdentification struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type mpPayerAddress struct {
	ZipCode      string `json:"zip_code"`
	StreetName   string `json:"street_name"`
	StreetNumber string `json:"street_number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

type mpOrderTransactions struct {
	Payments []mpOrderPayment `json:"payments"`
}

type mpOrderPayment struct {
	Amount         string          `json:"amount"`
	PaymentMethod  mpPaymentMethod `json:"payment_method"`
	ExpirationTime string          `json:"expiration_time,omitempty"`
}

type mpPaymentMethod struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Token        string `json:"token,omitempty"`
	Installments int    `json:"installments,omitempty"`
}

// mpOrderResponse covers the subset of the Orders API response the service
// reads back.
type mpOrderResponse struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	StatusDetail      string `json:"status_detail"`
	ExternalReference string `json:"external_reference"`
	Message           string `json:"message"`
	Error             string `json:"error"`
	Transactions      struct {
		Payments []struct {
			Status        string `json:"status"`
			StatusDetail  string `json:"status_detail"`
			PaymentMethod struct {
				ID             string `json:"id"`
				Type           string `json:"type"`
				QRCode         string `json:"qr_code"`
				QRCodeBase64   string `json:"qr_code_base64"`
				TicketURL      string `json:"ticket_url"`
				BarcodeContent string `json:"barcode_content"`
				DigitableLine  string `json:"digitable_line"`
			} `json:"payment_method"`
			DateOfExpiration string `json:"date_of_expiration"`
		} `json:"payments"`
	} `json:"transactions"`
}

// MercadoPagoOrdersGateway charges through the Mercado Pago Orders API over
// plain HTTP. The official Go SDK has no Orders client yet, so requests are
// built by hand.
type MercadoPagoOrdersGateway struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	verifier    SignatureVerifier
}

var _ interfaces.IPaymentGateway = (*MercadoPagoOrdersGateway)(nil)

func NewMercadoPagoOrdersGateway(accessToken, baseURL string, verifier SignatureVerifier) (*MercadoPagoOrdersGateway, error) {
	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}
	if baseURL == "" {
		baseURL = defaultMercadoPagoBaseURL
	}
	log.Printf("[payment][gateway] orders gateway initialized base_url=%s", baseURL)

	return &MercadoPagoOrdersGateway{
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		baseURL:     baseURL,
		accessToken: accessToken,
		verifier:    verifier,
	}, nil
}

func (g *MercadoPagoOrdersGateway) CreateCharge(ctx context.Context, req interfaces.ChargeRequest) (interfaces.ChargeResult, error) {
	payload, err := g.buildOrderPayload(req)
	if err != nil {
		return interfaces.ChargeResult{}, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return interfaces.ChargeResult{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return interfaces.ChargeResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.accessToken)
	// A fresh key per attempt: retried requests must not duplicate charges.
	httpReq.Header.Set("X-Idempotency-Key", uuid.NewString())

	log.Printf("[payment][gateway] create order start order_id=%s method=%s amount_cents=%d", req.OrderID, req.Method, req.AmountCents)

	resp, err := g.do(httpReq)
	if err != nil {
		log.Printf("[payment][gateway] create order failed order_id=%s err=%v", req.OrderID, err)
		return interfaces.ChargeResult{}, err
	}
	log.Printf("[payment][gateway] create order success order_id=%s charge_id=%s status=%s", req.OrderID, resp.ID, resp.Status)

	return toChargeResult(resp), nil
}

func (g *MercadoPagoOrdersGateway) GetCharge(ctx context.Context, id string) (interfaces.ChargeResult, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/v1/orders/"+id, nil)
	if err != nil {
		return interfaces.ChargeResult{}, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.accessToken)

	resp, err := g.do(httpReq)
	if err != nil {
		log.Printf("[payment][gateway] get order failed charge_id=%s err=%v", id, err)
		return interfaces.ChargeResult{}, err
	}

	return toChargeResult(resp), nil
}

func (g *MercadoPagoOrdersGateway) VerifySignature(signatureHeader, requestIDHeader, dataID string) bool {
	return g.verifier.Verify(signatureHeader, requestIDHeader, dataID)
}

func (g *MercadoPagoOrdersGateway) do(req *http.Request) (mpOrderResponse, error) {
	httpResp, err := g.httpClient.Do(req)
	if err != nil {
		return mpOrderResponse{}, err
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return mpOrderResponse{}, err
	}

	var resp mpOrderResponse
	if err := json.Unmarshal(raw, &resp); err != nil && httpResp.StatusCode < 300 {
		return mpOrderResponse{}, err
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		msg := resp.Message
		if msg == "" {
			msg = resp.Error
		}
		if msg == "" {
			msg = string(raw)
		}
		return mpOrderResponse{}, &interfaces.GatewayError{StatusCode: httpResp.StatusCode, Message: msg}
	}

	return resp, nil
}

func (g *MercadoPagoOrdersGateway) buildOrderPayload(req interfaces.ChargeRequest) (mpOrderRequest, error) {
	amount := formatAmountCents(req.AmountCents)

	payer := mpPayer{
		Email:     req.Payer.Email,
		FirstName: req.Payer.FirstName,
		LastName:  req.Payer.LastName,
		Identification: mpIdentification{
			Type:   req.Payer.Identification.Type,
			Number: req.Payer.Identification.Number,
		},
	}
	if payer.FirstName == "" {
		payer.FirstName = "Cliente"
	}
	if payer.LastName == "" {
		payer.LastName = "Distrito Racing"
	}

	var pay mpOrderPayment
	pay.Amount = amount

	switch req.Method {
	case entities.PaymentMethodCreditCard, entities.PaymentMethodDebitCard:
		methodType := "credit_card"
		if req.Method == entities.PaymentMethodDebitCard {
			methodType = "debit_card"
		}
		installments := req.Card.Installments
		if installments <= 0 {
			installments = 1
		}
		pay.PaymentMethod = mpPaymentMethod{
			ID:           req.Card.PaymentMethodID,
			Type:         methodType,
			Token:        req.Card.Token,
			Installments: installments,
		}
	case entities.PaymentMethodPix:
		pay.PaymentMethod = mpPaymentMethod{ID: "pix", Type: "bank_transfer"}
	case entities.PaymentMethodBoleto:
		pay.PaymentMethod = mpPaymentMethod{ID: "bolbradesco", Type: "ticket"}
		pay.ExpirationTime = "P3D"
		if req.Payer.Address != nil {
			payer.Address = &mpPayerAddress{
				ZipCode:      req.Payer.Address.ZipCode,
				StreetName:   req.Payer.Address.StreetName,
				StreetNumber: req.Payer.Address.StreetNumber,
				Neighborhood: req.Payer.Address.Neighborhood,
				City:         req.Payer.Address.City,
				State:        req.Payer.Address.FederalUnit,
			}
		}
	default:
		return mpOrderRequest{}, fmt.Errorf("unsupported payment method: %s", req.Method)
	}

	return mpOrderRequest{
		Type:              "online",
		ProcessingMode:    "automatic",
		TotalAmount:       amount,
		ExternalReference: req.OrderID,
		Description:       req.Description,
		Payer:             payer,
		Transactions:      mpOrderTransactions{Payments: []mpOrderPayment{pay}},
	}, nil
}

func toChargeResult(resp mpOrderResponse) interfaces.ChargeResult {
	result := interfaces.ChargeResult{
		ID:                resp.ID,
		ExternalReference: resp.ExternalReference,
		Status:            mapOrderStatus(resp.Status),
		StatusDetail:      resp.StatusDetail,
	}

	if len(resp.Transactions.Payments) > 0 {
		p := resp.Transactions.Payments[0]
		if result.StatusDetail == "" {
			result.StatusDetail = p.StatusDetail
		}
		result.PixQRCode = p.PaymentMethod.QRCode
		result.PixQRCodeBase64 = p.PaymentMethod.QRCodeBase64
		result.PixTicketURL = p.PaymentMethod.TicketURL
		result.BoletoURL = p.PaymentMethod.TicketURL
		result.BoletoBarcode = p.PaymentMethod.BarcodeContent
		if result.BoletoBarcode == "" {
			result.BoletoBarcode = p.PaymentMethod.DigitableLine
		}
		result.ExpiresAt = p.DateOfExpiration
	}

	return result
}

// mapOrderStatus folds the Orders API status vocabulary into the internal one.
func mapOrderStatus(orderStatus string) entities.ChargeStatus {
	switch orderStatus {
	case "processed":
		return entities.ChargeStatusApproved
	case "open", "action_required":
		return entities.ChargeStatusPending
	case "expired", "cancelled":
		return entities.ChargeStatusCancelled
	default:
		return entities.ChargeStatusPending
	}
}

func formatAmountCents(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}

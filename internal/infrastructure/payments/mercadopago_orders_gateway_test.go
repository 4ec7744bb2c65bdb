package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"distrito_racing/internal/domain/entities"
	"distrito_racing/internal/usecase/interfaces"
)

func TestNewMercadoPagoOrdersGateway(t *testing.T) {
	t.Run("missing access token", func(t *testing.T) {
		_, err := NewMercadoPagoOrdersGateway("", "", SignatureVerifier{})
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("default base url", func(t *testing.T) {
		g, err := NewMercadoPagoOrdersGateway("TEST-token", "", SignatureVerifier{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.baseURL != defaultMercadoPagoBaseURL {
			t.Fatalf("expected default base url, got %s", g.baseURL)
		}
	})
}

func TestMercadoPagoOrdersGateway_CreateCharge(t *testing.T) {
	t.Run("pix payload and headers", func(t *testing.T) {
		var captured mpOrderRequest
		var idempotencyKeys []string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/v1/orders" {
				t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			if r.Header.Get("Authorization") != "Bearer TEST-token" {
				t.Fatalf("missing bearer token")
			}
			key := r.Header.Get("X-Idempotency-Key")
			if key == "" {
				t.Fatalf("missing idempotency key")
			}
			idempotencyKeys = append(idempotencyKeys, key)
			if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
				t.Fatalf("bad payload: %v", err)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"id":     "ORD123",
				"status": "action_required",
				"transactions": map[string]any{
					"payments": []map[string]any{{
						"status": "pending",
						"payment_method": map[string]any{
							"id":             "pix",
							"qr_code":        "qr-payload",
							"qr_code_base64": "cXI=",
							"ticket_url":     "https://mp/ticket",
						},
						"date_of_expiration": "2026-09-02T10:00:00.000-03:00",
					}},
				},
			})
		}))
		defer srv.Close()

		g, err := NewMercadoPagoOrdersGateway("TEST-token", srv.URL, SignatureVerifier{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		req := interfaces.ChargeRequest{
			OrderID:     "ord-1",
			AmountCents: 15050,
			Description: "Inscrição Distrito Racing - Pedido ord-1",
			Method:      entities.PaymentMethodPix,
			Payer:       entities.Payer{Email: "x@test.com"},
		}

		res, err := g.CreateCharge(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if captured.Type != "online" || captured.ProcessingMode != "automatic" {
			t.Fatalf("unexpected order envelope: %+v", captured)
		}
		if captured.TotalAmount != "150.50" || captured.ExternalReference != "ord-1" {
			t.Fatalf("unexpected amount or reference: %+v", captured)
		}
		if captured.Payer.FirstName != "Cliente" || captured.Payer.LastName != "Distrito Racing" {
			t.Fatalf("expected payer name defaults, got %+v", captured.Payer)
		}
		if len(captured.Transactions.Payments) != 1 {
			t.Fatalf("expected one payment, got %d", len(captured.Transactions.Payments))
		}
		pm := captured.Transactions.Payments[0].PaymentMethod
		if pm.ID != "pix" || pm.Type != "bank_transfer" {
			t.Fatalf("unexpected payment method: %+v", pm)
		}

		if res.ID != "ORD123" || res.Status != entities.ChargeStatusPending {
			t.Fatalf("unexpected result: %+v", res)
		}
		if res.PixQRCode != "qr-payload" || res.PixQRCodeBase64 != "cXI=" || res.PixTicketURL != "https://mp/ticket" {
			t.Fatalf("missing pix artifacts: %+v", res)
		}
		if res.ExpiresAt == "" {
			t.Fatalf("expected expiration passthrough")
		}

		// Second attempt must carry a different idempotency key.
		if _, err := g.CreateCharge(context.Background(), req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(idempotencyKeys) != 2 || idempotencyKeys[0] == idempotencyKeys[1] {
			t.Fatalf("expected unique idempotency keys, got %v", idempotencyKeys)
		}
	})

	t.Run("card payload", func(t *testing.T) {
		var captured mpOrderRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
				t.Fatalf("bad payload: %v", err)
			}
			json.NewEncoder(w).Encode(map[string]any{"id": "ORD124", "status": "processed"})
		}))
		defer srv.Close()

		g, _ := NewMercadoPagoOrdersGateway("TEST-token", srv.URL, SignatureVerifier{})

		res, err := g.CreateCharge(context.Background(), interfaces.ChargeRequest{
			OrderID:     "ord-1",
			AmountCents: 20000,
			Method:      entities.PaymentMethodCreditCard,
			Payer:       entities.Payer{Email: "x@test.com", FirstName: "Ayrton", LastName: "Senna"},
			Card:        &entities.CardData{Token: "tok-1", Installments: 3, PaymentMethodID: "master"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		pm := captured.Transactions.Payments[0].PaymentMethod
		if pm.ID != "master" || pm.Type != "credit_card" || pm.Token != "tok-1" || pm.Installments != 3 {
			t.Fatalf("unexpected payment method: %+v", pm)
		}
		if captured.Payer.FirstName != "Ayrton" {
			t.Fatalf("payer name must not be overridden: %+v", captured.Payer)
		}
		if res.Status != entities.ChargeStatusApproved {
			t.Fatalf("expected approved, got %s", res.Status)
		}
	})

	t.Run("boleto payload", func(t *testing.T) {
		var captured mpOrderRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
				t.Fatalf("bad payload: %v", err)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"id":     "ORD125",
				"status": "open",
				"transactions": map[string]any{
					"payments": []map[string]any{{
						"payment_method": map[string]any{
							"id":             "bolbradesco",
							"ticket_url":     "https://mp/boleto",
							"digitable_line": "34191.79001 01043.510047",
						},
					}},
				},
			})
		}))
		defer srv.Close()

		g, _ := NewMercadoPagoOrdersGateway("TEST-token", srv.URL, SignatureVerifier{})

		res, err := g.CreateCharge(context.Background(), interfaces.ChargeRequest{
			OrderID:     "ord-1",
			AmountCents: 20000,
			Method:      entities.PaymentMethodBoleto,
			Payer: entities.Payer{
				Email: "x@test.com",
				Address: &entities.PayerAddress{
					ZipCode:     "70000-000",
					StreetName:  "Eixo Monumental",
					City:        "Brasília",
					FederalUnit: "DF",
				},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		pay := captured.Transactions.Payments[0]
		if pay.PaymentMethod.ID != "bolbradesco" || pay.PaymentMethod.Type != "ticket" || pay.ExpirationTime != "P3D" {
			t.Fatalf("unexpected boleto payment: %+v", pay)
		}
		if captured.Payer.Address == nil || captured.Payer.Address.State != "DF" {
			t.Fatalf("expected payer address with state, got %+v", captured.Payer.Address)
		}
		if res.BoletoURL != "https://mp/boleto" {
			t.Fatalf("expected boleto url, got %+v", res)
		}
		if res.BoletoBarcode != "34191.79001 01043.510047" {
			t.Fatalf("expected digitable line fallback, got %q", res.BoletoBarcode)
		}
	})

	t.Run("non-2xx surfaces gateway error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{"message": "invalid card token"})
		}))
		defer srv.Close()

		g, _ := NewMercadoPagoOrdersGateway("TEST-token", srv.URL, SignatureVerifier{})

		_, err := g.CreateCharge(context.Background(), interfaces.ChargeRequest{
			OrderID:     "ord-1",
			AmountCents: 100,
			Method:      entities.PaymentMethodPix,
			Payer:       entities.Payer{Email: "x@test.com"},
		})

		var gwErr *interfaces.GatewayError
		if !errors.As(err, &gwErr) {
			t.Fatalf("expected *GatewayError, got %v", err)
		}
		if gwErr.StatusCode != http.StatusBadRequest || gwErr.Message != "invalid card token" {
			t.Fatalf("unexpected gateway error: %+v", gwErr)
		}
	})

	t.Run("unsupported method", func(t *testing.T) {
		g, _ := NewMercadoPagoOrdersGateway("TEST-token", "http://unused", SignatureVerifier{})
		_, err := g.CreateCharge(context.Background(), interfaces.ChargeRequest{
			OrderID: "ord-1",
			Method:  "cash",
			Payer:   entities.Payer{Email: "x@test.com"},
		})
		if err == nil {
			t.Fatalf("expected error for unsupported method")
		}
	})
}

func TestMercadoPagoOrdersGateway_GetCharge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/v1/orders/ORD123" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{"id": "ORD123", "status": "processed", "status_detail": "accredited"})
	}))
	defer srv.Close()

	g, _ := NewMercadoPagoOrdersGateway("TEST-token", srv.URL, SignatureVerifier{})

	res, err := g.GetCharge(context.Background(), "ORD123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ID != "ORD123" || res.Status != entities.ChargeStatusApproved || res.StatusDetail != "accredited" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestMapOrderStatus(t *testing.T) {
	cases := []struct {
		in   string
		want entities.ChargeStatus
	}{
		{in: "processed", want: entities.ChargeStatusApproved},
		{in: "open", want: entities.ChargeStatusPending},
		{in: "action_required", want: entities.ChargeStatusPending},
		{in: "expired", want: entities.ChargeStatusCancelled},
		{in: "cancelled", want: entities.ChargeStatusCancelled},
		{in: "anything-else", want: entities.ChargeStatusPending},
	}
	for _, tc := range cases {
		if got := mapOrderStatus(tc.in); got != tc.want {
			t.Fatalf("mapOrderStatus(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestFormatAmountCents(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{cents: 15050, want: "150.50"},
		{cents: 100, want: "1.00"},
		{cents: 5, want: "0.05"},
	}
	for _, tc := range cases {
		if got := formatAmountCents(tc.cents); got != tc.want {
			t.Fatalf("formatAmountCents(%d) = %s, want %s", tc.cents, got, tc.want)
		}
	}
}

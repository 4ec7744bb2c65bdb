package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"distrito_racing/internal/domain/entities"
	"distrito_racing/internal/usecase/interfaces"
)

var (
	ErrInvalidPaymentInput     = errors.New("invalid payment input")
	ErrInvalidOrderAmount      = errors.New("invalid order amount")
	ErrMissingCardToken        = errors.New("card token is required")
	ErrMissingPayerAddress     = errors.New("payer address is required for boleto")
	ErrUnsupportedMethod       = errors.New("payment method not supported")
	ErrPaymentNotStarted       = errors.New("payment not started")
	ErrPaymentGatewayUpstream  = errors.New("payment gateway failure")
	ErrPaymentGatewayConfigNil = errors.New("payment gateway not configured")
)

// ProcessPaymentCommand carries everything needed to drive one charge attempt
// for an existing unpaid order.
type ProcessPaymentCommand struct {
	OrderID string
	Method  entities.PaymentMethod
	Payer   entities.Payer
	Card    *entities.CardData
}

// PaymentStatusResult is the polling projection returned to clients.
type PaymentStatusResult struct {
	OrderID      string
	ChargeID     string
	Status       entities.ChargeStatus
	StatusDetail string
	IsPaid       bool
	Payment      entities.PaymentInfo
}

// PaymentMethodInfo describes one selectable payment method.
type PaymentMethodInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

// IPaymentUseCase is the payment orchestration service plus the
// reconciliation entry points (webhook processing and status polling).
//
// Orchestration and reconciliation are the only two writers of an order's
// payment state, and both go through the repository's conditional update so
// the paid latch holds regardless of notification ordering.

type IPaymentUseCase interface {
	ProcessPayment(ctx context.Context, userID string, cmd ProcessPaymentCommand) (PaymentStatusResult, error)
	GetPaymentStatus(ctx context.Context, userID, orderID string) (PaymentStatusResult, error)
	HandleNotification(ctx context.Context, dataID string) error
	VerifyWebhookSignature(signatureHeader, requestIDHeader, dataID string) bool
	ListPaymentMethods() []PaymentMethodInfo
}

type PaymentUseCase struct {
	orderRepo interfaces.IOrderRepository
	gateway   interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(orderRepo interfaces.IOrderRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{orderRepo: orderRepo, gateway: gateway}
}

// ProcessPayment builds a gateway charge for the order's line total and
// writes the normalized outcome back through the conditional update.
func (u *PaymentUseCase) ProcessPayment(ctx context.Context, userID string, cmd ProcessPaymentCommand) (PaymentStatusResult, error) {
	if u.gateway == nil {
		return PaymentStatusResult{}, ErrPaymentGatewayConfigNil
	}
	cmd.OrderID = strings.TrimSpace(cmd.OrderID)
	if cmd.OrderID == "" || cmd.Payer.Email == "" {
		return PaymentStatusResult{}, ErrInvalidPaymentInput
	}
	log.Printf("[payment][usecase] process start order_id=%s user_id=%s method=%s", cmd.OrderID, userID, cmd.Method)

	order, err := u.orderRepo.GetByID(ctx, cmd.OrderID)
	if err != nil {
		return PaymentStatusResult{}, err
	}
	if order.ID == "" || order.UserID != userID {
		return PaymentStatusResult{}, ErrOrderNotFound
	}
	if order.IsPaid {
		log.Printf("[payment][usecase] process rejected (already paid) order_id=%s", order.ID)
		return PaymentStatusResult{}, ErrOrderAlreadyPaid
	}

	switch cmd.Method {
	case entities.PaymentMethodCreditCard, entities.PaymentMethodDebitCard:
		if cmd.Card == nil || strings.TrimSpace(cmd.Card.Token) == "" {
			return PaymentStatusResult{}, ErrMissingCardToken
		}
		if cmd.Card.Installments <= 0 {
			cmd.Card.Installments = 1
		}
	case entities.PaymentMethodPix:
		cmd.Card = nil
	case entities.PaymentMethodBoleto:
		cmd.Card = nil
		if cmd.Payer.Address == nil {
			return PaymentStatusResult{}, ErrMissingPayerAddress
		}
	default:
		return PaymentStatusResult{}, ErrUnsupportedMethod
	}

	lines, err := u.orderRepo.ListLines(ctx, order.ID)
	if err != nil {
		return PaymentStatusResult{}, err
	}
	// The snapshot sum is the authoritative amount; current product prices are
	// irrelevant from here on.
	total := entities.SumLineTotalCents(lines)
	if total <= 0 {
		log.Printf("[payment][usecase] process rejected (amount) order_id=%s total_cents=%d", order.ID, total)
		return PaymentStatusResult{}, ErrInvalidOrderAmount
	}

	result, err := u.gateway.CreateCharge(ctx, interfaces.ChargeRequest{
		OrderID:     order.ID,
		AmountCents: total,
		Description: fmt.Sprintf("Inscrição Distrito Racing - Pedido %s", order.ID),
		Method:      cmd.Method,
		Payer:       cmd.Payer,
		Card:        cmd.Card,
	})
	if err != nil {
		log.Printf("[payment][usecase] gateway create failed order_id=%s err=%v", order.ID, err)
		var gwErr *interfaces.GatewayError
		if errors.As(err, &gwErr) {
			return PaymentStatusResult{}, fmt.Errorf("%w: %s", ErrPaymentGatewayUpstream, gwErr.Message)
		}
		return PaymentStatusResult{}, fmt.Errorf("%w: %v", ErrPaymentGatewayUpstream, err)
	}

	info := paymentInfoFromResult(result)
	isPaid := result.IsPaid()
	if err := u.orderRepo.UpdatePaymentInfo(ctx, order.ID, info, isPaid, string(cmd.Method)); err != nil {
		if errors.Is(err, interfaces.ErrOrderAlreadyPaid) {
			// Latch already set by a racing notification; the settled state wins.
			log.Printf("[payment][usecase] latch held during write order_id=%s charge_id=%s", order.ID, result.ID)
			isPaid = true
		} else {
			log.Printf("[payment][usecase] payment write failed order_id=%s err=%v", order.ID, err)
			return PaymentStatusResult{}, err
		}
	}

	log.Printf("[payment][usecase] process success order_id=%s charge_id=%s status=%s is_paid=%t", order.ID, result.ID, result.Status, isPaid)
	return PaymentStatusResult{
		OrderID:      order.ID,
		ChargeID:     result.ID,
		Status:       result.Status,
		StatusDetail: result.StatusDetail,
		IsPaid:       isPaid,
		Payment:      info,
	}, nil
}

// GetPaymentStatus polls the gateway for the order's charge and converges the
// stored state with it. This is the fallback for missed webhooks: when the
// gateway now reports paid and the order is not, the same conditional update
// as the webhook path is applied.
func (u *PaymentUseCase) GetPaymentStatus(ctx context.Context, userID, orderID string) (PaymentStatusResult, error) {
	if u.gateway == nil {
		return PaymentStatusResult{}, ErrPaymentGatewayConfigNil
	}
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return PaymentStatusResult{}, err
	}
	if order.ID == "" || order.UserID != userID {
		return PaymentStatusResult{}, ErrOrderNotFound
	}
	if order.Payment.ChargeID == "" {
		return PaymentStatusResult{}, ErrPaymentNotStarted
	}

	result, err := u.gateway.GetCharge(ctx, order.Payment.ChargeID)
	if err != nil {
		log.Printf("[payment][usecase] gateway query failed order_id=%s charge_id=%s err=%v", order.ID, order.Payment.ChargeID, err)
		return PaymentStatusResult{}, fmt.Errorf("%w: %v", ErrPaymentGatewayUpstream, err)
	}

	isPaid := result.IsPaid()
	if isPaid && !order.IsPaid {
		if err := u.applyChargeResult(ctx, order, result); err != nil {
			return PaymentStatusResult{}, err
		}
		log.Printf("[payment][usecase] order settled via polling order_id=%s charge_id=%s", order.ID, result.ID)
	}

	return PaymentStatusResult{
		OrderID:      order.ID,
		ChargeID:     result.ID,
		Status:       result.Status,
		StatusDetail: result.StatusDetail,
		IsPaid:       isPaid || order.IsPaid,
		Payment:      paymentInfoFromResult(result),
	}, nil
}

// HandleNotification applies one asynchronous gateway notification. It is
// idempotent: unknown references and already-settled orders are discarded
// without error, since the ack has long been sent and the gateway will not
// learn of a rejection.
func (u *PaymentUseCase) HandleNotification(ctx context.Context, dataID string) error {
	if u.gateway == nil {
		return ErrPaymentGatewayConfigNil
	}
	dataID = strings.TrimSpace(dataID)
	if dataID == "" {
		return ErrInvalidPaymentInput
	}
	log.Printf("[payment][reconcile] notification start charge_id=%s", dataID)

	order, err := u.orderRepo.GetByChargeID(ctx, dataID)
	if err != nil {
		return err
	}

	var (
		result  interfaces.ChargeResult
		fetched bool
	)
	if order.ID == "" {
		// Redirect checkouts store the preference id at charge time while the
		// notification carries the payment id, so the charge-id lookup misses.
		// The payment's external reference is the order id; resolve through it
		// and let the conditional write below swap the stored charge id.
		result, err = u.gateway.GetCharge(ctx, dataID)
		if err != nil {
			log.Printf("[payment][reconcile] gateway query failed charge_id=%s err=%v", dataID, err)
			return fmt.Errorf("%w: %v", ErrPaymentGatewayUpstream, err)
		}
		fetched = true
		if result.ExternalReference != "" {
			order, err = u.orderRepo.GetByID(ctx, result.ExternalReference)
			if err != nil {
				return err
			}
		}
		if order.ID == "" {
			log.Printf("[payment][reconcile] no order for charge_id=%s; discarding", dataID)
			return nil
		}
	}
	if order.IsPaid {
		log.Printf("[payment][reconcile] order already paid order_id=%s; discarding replay", order.ID)
		return nil
	}

	if !fetched {
		result, err = u.gateway.GetCharge(ctx, dataID)
		if err != nil {
			log.Printf("[payment][reconcile] gateway query failed charge_id=%s err=%v", dataID, err)
			return fmt.Errorf("%w: %v", ErrPaymentGatewayUpstream, err)
		}
	}

	if err := u.applyChargeResult(ctx, order, result); err != nil {
		return err
	}
	log.Printf("[payment][reconcile] notification applied order_id=%s status=%s is_paid=%t", order.ID, result.Status, result.IsPaid())
	return nil
}

// applyChargeResult performs the shared conditional write used by both the
// webhook and polling paths; the two must converge on identical final state.
func (u *PaymentUseCase) applyChargeResult(ctx context.Context, order entities.Order, result interfaces.ChargeResult) error {
	err := u.orderRepo.UpdatePaymentInfo(ctx, order.ID, paymentInfoFromResult(result), result.IsPaid(), order.PaymentMethod)
	if errors.Is(err, interfaces.ErrOrderAlreadyPaid) {
		// Lost the race to another notification or the orchestration write;
		// the latch held, nothing to do.
		log.Printf("[payment][reconcile] latch held order_id=%s charge_id=%s", order.ID, result.ID)
		return nil
	}
	return err
}

func (u *PaymentUseCase) VerifyWebhookSignature(signatureHeader, requestIDHeader, dataID string) bool {
	if u.gateway == nil {
		return false
	}
	return u.gateway.VerifySignature(signatureHeader, requestIDHeader, dataID)
}

func (u *PaymentUseCase) ListPaymentMethods() []PaymentMethodInfo {
	return []PaymentMethodInfo{
		{ID: "credit_card", Name: "Cartão de Crédito", Icon: "credit-card", Description: "Pague em até 12x", Enabled: true},
		{ID: "debit_card", Name: "Cartão de Débito", Icon: "credit-card", Description: "Débito à vista", Enabled: true},
		{ID: "pix", Name: "PIX", Icon: "qrcode", Description: "Pagamento instantâneo", Enabled: true},
		{ID: "boleto", Name: "Boleto Bancário", Icon: "barcode", Description: "Vencimento em 3 dias", Enabled: true},
	}
}

func paymentInfoFromResult(r interfaces.ChargeResult) entities.PaymentInfo {
	return entities.PaymentInfo{
		ChargeID:        r.ID,
		Status:          r.Status,
		StatusDetail:    r.StatusDetail,
		PixQRCode:       r.PixQRCode,
		PixQRCodeBase64: r.PixQRCodeBase64,
		PixTicketURL:    r.PixTicketURL,
		BoletoURL:       r.BoletoURL,
		BoletoBarcode:   r.BoletoBarcode,
		CheckoutURL:     r.CheckoutURL,
		ExpiresAt:       r.ExpiresAt,
	}
}

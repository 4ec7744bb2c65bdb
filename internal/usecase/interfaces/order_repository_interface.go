package interfaces

import (
	"context"

	"distrito_racing/internal/domain/entities"
)

// StockDecrement asks the store to atomically consume tracked quantity for one
// product inside the order-creation transaction.
type StockDecrement struct {
	ProductID string
	Quantity  int
}

// IOrderRepository abstracts DynamoDB persistence for Order and OrderLine.
//
// CreateWithReservation is the single unit of work of order creation: the
// order put, every line put and every conditional stock decrement are one
// TransactWriteItems call. A failed quantity condition surfaces as
// ErrInventoryExhausted and nothing is written.
//
// UpdatePaymentInfo is conditioned on is_paid = false (the paid latch); when
// the condition fails it returns ErrOrderAlreadyPaid and the order is left
// untouched.

type IOrderRepository interface {
	CreateWithReservation(ctx context.Context, o entities.Order, lines []entities.OrderLine, decrements []StockDecrement) error
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByChargeID(ctx context.Context, chargeID string) (entities.Order, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Order, error)
	ListByEventID(ctx context.Context, eventID string) ([]entities.Order, error)
	ListLines(ctx context.Context, orderID string) ([]entities.OrderLine, error)
	UpdatePaymentInfo(ctx context.Context, orderID string, info entities.PaymentInfo, isPaid bool, paymentMethod string) error
	Delete(ctx context.Context, orderID string) error
}

package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"distrito_racing/internal/domain/entities"
	"distrito_racing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidOrderInput  = errors.New("invalid order input")
	ErrOrderNotFound      = errors.New("order not found")
	ErrProductNotFound    = errors.New("one or more products not found")
	ErrInventoryExhausted = errors.New("product not available")
	ErrOrderAlreadyPaid   = errors.New("order already paid")
)

// CreateOrderCommand is the cart submitted by a registering user.
type CreateOrderCommand struct {
	EventID         string
	Car             string
	CarClass        string
	Number          int
	Days            []entities.EventDay
	PaymentMethod   string
	FirstDriverName string
	IsFirstDriver   bool
	ProductIDs      []string
}

// IOrderUseCase is the order-creation service plus the owner-scoped order
// reads the registration flow needs.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, userID string, cmd CreateOrderCommand) (entities.Order, error)
	GetUserOrders(ctx context.Context, userID string) ([]entities.Order, error)
	GetOrderByID(ctx context.Context, orderID, userID string) (entities.Order, error)
	GetOrderLines(ctx context.Context, orderID, userID string) ([]entities.OrderLine, error)
	DeleteOrder(ctx context.Context, orderID, userID string) error
	GetEventRegistrations(ctx context.Context, eventID string) ([]entities.Order, error)
	CheckFirstDriverRegistration(ctx context.Context, eventID, email string) (bool, string, error)
	CheckCarNumberAvailability(ctx context.Context, eventID string, number int) (bool, error)
}

type OrderUseCase struct {
	orderRepo   interfaces.IOrderRepository
	productRepo interfaces.IProductRepository
	profileRepo interfaces.IProfileRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orderRepo interfaces.IOrderRepository, productRepo interfaces.IProductRepository, profileRepo interfaces.IProfileRepository) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, productRepo: productRepo, profileRepo: profileRepo}
}

// CreateOrder validates the cart against inventory and persists the order,
// its lines and the stock decrements as one transaction.
//
// The availability read below is only a fast-fail courtesy; the authoritative
// check is the conditional decrement inside CreateWithReservation. Two
// concurrent carts racing for the last unit both pass the read, but only one
// transaction commits.
func (u *OrderUseCase) CreateOrder(ctx context.Context, userID string, cmd CreateOrderCommand) (entities.Order, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" || cmd.EventID == "" || len(cmd.ProductIDs) == 0 {
		log.Printf("[order][usecase] create rejected user_id=%q event_id=%q products=%d", userID, cmd.EventID, len(cmd.ProductIDs))
		return entities.Order{}, ErrInvalidOrderInput
	}
	log.Printf("[order][usecase] create start user_id=%s event_id=%s products=%d", userID, cmd.EventID, len(cmd.ProductIDs))

	products, err := u.productRepo.FindByIDs(ctx, cmd.ProductIDs)
	if err != nil {
		log.Printf("[order][usecase] product lookup failed user_id=%s err=%v", userID, err)
		return entities.Order{}, err
	}
	// All-or-nothing: a partially resolved cart is a hard failure. The lookup
	// dedups ids, so a cart listing the same product twice also lands here.
	if len(products) != len(cmd.ProductIDs) {
		log.Printf("[order][usecase] unresolved products user_id=%s requested=%d found=%d", userID, len(cmd.ProductIDs), len(products))
		return entities.Order{}, ErrProductNotFound
	}

	for _, p := range products {
		if p.HasTrackedQuantity() && *p.Quantity <= 0 {
			log.Printf("[order][usecase] product sold out user_id=%s product_id=%s", userID, p.ID)
			return entities.Order{}, ErrInventoryExhausted
		}
	}

	now := time.Now().UTC()
	order := entities.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		EventID:         cmd.EventID,
		CreatedAt:       now,
		Car:             cmd.Car,
		CarClass:        cmd.CarClass,
		Number:          cmd.Number,
		Days:            cmd.Days,
		PaymentMethod:   cmd.PaymentMethod,
		FirstDriverName: cmd.FirstDriverName,
		IsFirstDriver:   cmd.IsFirstDriver,
	}

	lines := make([]entities.OrderLine, 0, len(products))
	decrements := make([]interfaces.StockDecrement, 0, len(products))
	for _, p := range products {
		lines = append(lines, entities.OrderLine{
			ID:         uuid.NewString(),
			OrderID:    order.ID,
			ProductID:  p.ID,
			PriceCents: p.PriceCents,
			Quantity:   1,
			CreatedAt:  now,
		})
		if p.HasTrackedQuantity() {
			decrements = append(decrements, interfaces.StockDecrement{ProductID: p.ID, Quantity: 1})
		}
	}

	if err := u.orderRepo.CreateWithReservation(ctx, order, lines, decrements); err != nil {
		if errors.Is(err, interfaces.ErrInventoryExhausted) {
			log.Printf("[order][usecase] reservation lost user_id=%s order_id=%s", userID, order.ID)
			return entities.Order{}, ErrInventoryExhausted
		}
		log.Printf("[order][usecase] create failed user_id=%s order_id=%s err=%v", userID, order.ID, err)
		return entities.Order{}, err
	}

	log.Printf("[order][usecase] create success user_id=%s order_id=%s lines=%d", userID, order.ID, len(lines))
	return order, nil
}

func (u *OrderUseCase) GetUserOrders(ctx context.Context, userID string) ([]entities.Order, error) {
	return u.orderRepo.ListByUserID(ctx, userID)
}

func (u *OrderUseCase) GetOrderByID(ctx context.Context, orderID, userID string) (entities.Order, error) {
	o, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" || o.UserID != userID {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) GetOrderLines(ctx context.Context, orderID, userID string) ([]entities.OrderLine, error) {
	if _, err := u.GetOrderByID(ctx, orderID, userID); err != nil {
		return nil, err
	}
	return u.orderRepo.ListLines(ctx, orderID)
}

// DeleteOrder removes an unpaid order and restocks its tracked lines. Paid
// orders are permanent.
func (u *OrderUseCase) DeleteOrder(ctx context.Context, orderID, userID string) error {
	o, err := u.GetOrderByID(ctx, orderID, userID)
	if err != nil {
		return err
	}
	if o.IsPaid {
		log.Printf("[order][usecase] delete rejected (paid) order_id=%s user_id=%s", orderID, userID)
		return ErrOrderAlreadyPaid
	}

	lines, err := u.orderRepo.ListLines(ctx, orderID)
	if err != nil {
		return err
	}
	if err := u.orderRepo.Delete(ctx, orderID); err != nil {
		log.Printf("[order][usecase] delete failed order_id=%s err=%v", orderID, err)
		return err
	}

	for _, l := range lines {
		p, err := u.productRepo.GetByID(ctx, l.ProductID)
		if err != nil || p.ID == "" || !p.HasTrackedQuantity() {
			continue
		}
		if err := u.productRepo.IncrementQuantity(ctx, l.ProductID, l.Quantity); err != nil {
			// The order is already gone; a missed restock only understates
			// availability, so log and keep going.
			log.Printf("[order][usecase] restock failed order_id=%s product_id=%s err=%v", orderID, l.ProductID, err)
		}
	}

	log.Printf("[order][usecase] delete success order_id=%s user_id=%s", orderID, userID)
	return nil
}

func (u *OrderUseCase) GetEventRegistrations(ctx context.Context, eventID string) ([]entities.Order, error) {
	return u.orderRepo.ListByEventID(ctx, eventID)
}

// CheckFirstDriverRegistration reports whether the holder of the given email
// already registered for the event, returning their name when they did.
func (u *OrderUseCase) CheckFirstDriverRegistration(ctx context.Context, eventID, email string) (bool, string, error) {
	profile, err := u.profileRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return false, "", err
	}
	if profile.UserID == "" {
		return false, "", nil
	}

	orders, err := u.orderRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return false, "", err
	}
	for _, o := range orders {
		if o.UserID == profile.UserID {
			return true, profile.Name, nil
		}
	}
	return false, "", nil
}

// CheckCarNumberAvailability reports whether a race number is still free for
// the event.
func (u *OrderUseCase) CheckCarNumberAvailability(ctx context.Context, eventID string, number int) (bool, error) {
	orders, err := u.orderRepo.ListByEventID(ctx, eventID)
	if err != nil {
		// Fail open: a lookup failure must not block registration.
		log.Printf("[order][usecase] number check failed event_id=%s err=%v", eventID, err)
		return true, nil
	}
	for _, o := range orders {
		if o.Number == number {
			return false, nil
		}
	}
	return true, nil
}

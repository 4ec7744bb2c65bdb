package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"distrito_racing/internal/domain/entities"
	"distrito_racing/internal/usecase/interfaces"
	mock_interfaces "distrito_racing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int { return &v }

func TestOrderUseCase_CreateOrder_Validations(t *testing.T) {
	t.Run("empty user id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.CreateOrder(context.Background(), " ", CreateOrderCommand{EventID: "ev-1", ProductIDs: []string{"p1"}})
		if !errors.Is(err, ErrInvalidOrderInput) {
			t.Fatalf("expected ErrInvalidOrderInput, got %v", err)
		}
	})

	t.Run("empty event id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.CreateOrder(context.Background(), "user-1", CreateOrderCommand{ProductIDs: []string{"p1"}})
		if !errors.Is(err, ErrInvalidOrderInput) {
			t.Fatalf("expected ErrInvalidOrderInput, got %v", err)
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.CreateOrder(context.Background(), "user-1", CreateOrderCommand{EventID: "ev-1"})
		if !errors.Is(err, ErrInvalidOrderInput) {
			t.Fatalf("expected ErrInvalidOrderInput, got %v", err)
		}
	})
}

func TestOrderUseCase_CreateOrder_ProductResolution(t *testing.T) {
	t.Run("lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewOrderUseCase(orderRepo, productRepo, nil)

		productRepo.EXPECT().FindByIDs(gomock.Any(), []string{"p1"}).Return(nil, errors.New("db"))

		_, err := uc.CreateOrder(context.Background(), "user-1", CreateOrderCommand{EventID: "ev-1", ProductIDs: []string{"p1"}})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("unresolved products", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewOrderUseCase(orderRepo, productRepo, nil)

		productRepo.EXPECT().FindByIDs(gomock.Any(), []string{"p1", "p2"}).Return([]entities.Product{{ID: "p1"}}, nil)

		_, err := uc.CreateOrder(context.Background(), "user-1", CreateOrderCommand{EventID: "ev-1", ProductIDs: []string{"p1", "p2"}})
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("duplicate product ids rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewOrderUseCase(orderRepo, productRepo, nil)

		// The lookup dedups, so two copies of one id resolve to one product.
		productRepo.EXPECT().FindByIDs(gomock.Any(), []string{"p1", "p1"}).Return([]entities.Product{{ID: "p1"}}, nil)

		_, err := uc.CreateOrder(context.Background(), "user-1", CreateOrderCommand{EventID: "ev-1", ProductIDs: []string{"p1", "p1"}})
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("sold out before reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewOrderUseCase(orderRepo, productRepo, nil)

		productRepo.EXPECT().FindByIDs(gomock.Any(), []string{"p1"}).Return([]entities.Product{{ID: "p1", Quantity: intPtr(0)}}, nil)

		_, err := uc.CreateOrder(context.Background(), "user-1", CreateOrderCommand{EventID: "ev-1", ProductIDs: []string{"p1"}})
		if !errors.Is(err, ErrInventoryExhausted) {
			t.Fatalf("expected ErrInventoryExhausted, got %v", err)
		}
	})
}

func TestOrderUseCase_CreateOrder_Reservation(t *testing.T) {
	t.Run("reservation lost", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewOrderUseCase(orderRepo, productRepo, nil)

		productRepo.EXPECT().FindByIDs(gomock.Any(), []string{"p1"}).Return([]entities.Product{{ID: "p1", Quantity: intPtr(1)}}, nil)
		orderRepo.EXPECT().CreateWithReservation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.ErrInventoryExhausted)

		_, err := uc.CreateOrder(context.Background(), "user-1", CreateOrderCommand{EventID: "ev-1", ProductIDs: []string{"p1"}})
		if !errors.Is(err, ErrInventoryExhausted) {
			t.Fatalf("expected ErrInventoryExhausted, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewOrderUseCase(orderRepo, productRepo, nil)

		productRepo.EXPECT().FindByIDs(gomock.Any(), []string{"p1"}).Return([]entities.Product{{ID: "p1"}}, nil)
		orderRepo.EXPECT().CreateWithReservation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db"))

		_, err := uc.CreateOrder(context.Background(), "user-1", CreateOrderCommand{EventID: "ev-1", ProductIDs: []string{"p1"}})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success snapshots prices and decrements tracked only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewOrderUseCase(orderRepo, productRepo, nil)

		products := []entities.Product{
			{ID: "p1", PriceCents: 15000, Quantity: intPtr(3)},
			{ID: "p2", PriceCents: 5000},
		}
		productRepo.EXPECT().FindByIDs(gomock.Any(), []string{"p1", "p2"}).Return(products, nil)

		orderRepo.EXPECT().CreateWithReservation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order, lines []entities.OrderLine, decrements []interfaces.StockDecrement) error {
				if o.ID == "" || o.UserID != "user-1" || o.EventID != "ev-1" {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.CreatedAt.IsZero() {
					t.Fatalf("created_at must be set")
				}
				if len(lines) != 2 {
					t.Fatalf("expected 2 lines, got %d", len(lines))
				}
				if lines[0].OrderID != o.ID || lines[0].ProductID != "p1" || lines[0].PriceCents != 15000 || lines[0].Quantity != 1 {
					t.Fatalf("unexpected first line: %+v", lines[0])
				}
				if lines[1].ProductID != "p2" || lines[1].PriceCents != 5000 {
					t.Fatalf("unexpected second line: %+v", lines[1])
				}
				if lines[0].ID == lines[1].ID {
					t.Fatalf("line ids must be unique")
				}
				if len(decrements) != 1 || decrements[0].ProductID != "p1" || decrements[0].Quantity != 1 {
					t.Fatalf("expected single tracked decrement, got %+v", decrements)
				}
				return nil
			},
		)

		order, err := uc.CreateOrder(context.Background(), "user-1", CreateOrderCommand{
			EventID:    "ev-1",
			Car:        "Civic",
			CarClass:   "Street A",
			Number:     42,
			ProductIDs: []string{"p1", "p2"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Car != "Civic" || order.Number != 42 {
			t.Fatalf("unexpected order: %+v", order)
		}
	})
}

func TestOrderUseCase_GetOrderByID(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orderRepo, nil, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, errors.New("db"))

		_, err := uc.GetOrderByID(context.Background(), "ord-1", "user-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orderRepo, nil, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, nil)

		_, err := uc.GetOrderByID(context.Background(), "ord-1", "user-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("owner mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orderRepo, nil, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", UserID: "other"}, nil)

		_, err := uc.GetOrderByID(context.Background(), "ord-1", "user-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orderRepo, nil, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", UserID: "user-1"}, nil)

		o, err := uc.GetOrderByID(context.Background(), "ord-1", "user-1")
		if err != nil || o.ID != "ord-1" {
			t.Fatalf("unexpected result err=%v order=%+v", err, o)
		}
	})
}

func TestOrderUseCase_DeleteOrder(t *testing.T) {
	t.Run("paid order rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orderRepo, nil, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", UserID: "user-1", IsPaid: true}, nil)

		err := uc.DeleteOrder(context.Background(), "ord-1", "user-1")
		if !errors.Is(err, ErrOrderAlreadyPaid) {
			t.Fatalf("expected ErrOrderAlreadyPaid, got %v", err)
		}
	})

	t.Run("delete restocks tracked lines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewOrderUseCase(orderRepo, productRepo, nil)

		lines := []entities.OrderLine{
			{ID: "l1", OrderID: "ord-1", ProductID: "p1", Quantity: 1},
			{ID: "l2", OrderID: "ord-1", ProductID: "p2", Quantity: 1},
		}
		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", UserID: "user-1"}, nil)
		orderRepo.EXPECT().ListLines(gomock.Any(), "ord-1").Return(lines, nil)
		orderRepo.EXPECT().Delete(gomock.Any(), "ord-1").Return(nil)
		productRepo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Quantity: intPtr(2)}, nil)
		productRepo.EXPECT().IncrementQuantity(gomock.Any(), "p1", 1).Return(nil)
		productRepo.EXPECT().GetByID(gomock.Any(), "p2").Return(entities.Product{ID: "p2"}, nil)

		if err := uc.DeleteOrder(context.Background(), "ord-1", "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("restock failure does not fail delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewOrderUseCase(orderRepo, productRepo, nil)

		lines := []entities.OrderLine{{ID: "l1", OrderID: "ord-1", ProductID: "p1", Quantity: 1}}
		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", UserID: "user-1"}, nil)
		orderRepo.EXPECT().ListLines(gomock.Any(), "ord-1").Return(lines, nil)
		orderRepo.EXPECT().Delete(gomock.Any(), "ord-1").Return(nil)
		productRepo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Quantity: intPtr(0)}, nil)
		productRepo.EXPECT().IncrementQuantity(gomock.Any(), "p1", 1).Return(errors.New("db"))

		if err := uc.DeleteOrder(context.Background(), "ord-1", "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orderRepo, nil, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", UserID: "user-1"}, nil)
		orderRepo.EXPECT().ListLines(gomock.Any(), "ord-1").Return(nil, nil)
		orderRepo.EXPECT().Delete(gomock.Any(), "ord-1").Return(errors.New("db"))

		err := uc.DeleteOrder(context.Background(), "ord-1", "user-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestOrderUseCase_CheckFirstDriverRegistration(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profileRepo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewOrderUseCase(nil, nil, profileRepo)

		profileRepo.EXPECT().GetByEmail(gomock.Any(), "x@test.com").Return(entities.Profile{}, nil)

		registered, name, err := uc.CheckFirstDriverRegistration(context.Background(), "ev-1", " x@test.com ")
		if err != nil || registered || name != "" {
			t.Fatalf("unexpected result registered=%t name=%q err=%v", registered, name, err)
		}
	})

	t.Run("registered driver found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		profileRepo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewOrderUseCase(orderRepo, nil, profileRepo)

		profileRepo.EXPECT().GetByEmail(gomock.Any(), "x@test.com").Return(entities.Profile{UserID: "user-1", Name: "Ayrton"}, nil)
		orderRepo.EXPECT().ListByEventID(gomock.Any(), "ev-1").Return([]entities.Order{
			{ID: "ord-9", UserID: "other"},
			{ID: "ord-1", UserID: "user-1"},
		}, nil)

		registered, name, err := uc.CheckFirstDriverRegistration(context.Background(), "ev-1", "x@test.com")
		if err != nil || !registered || name != "Ayrton" {
			t.Fatalf("unexpected result registered=%t name=%q err=%v", registered, name, err)
		}
	})

	t.Run("profile exists without order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		profileRepo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewOrderUseCase(orderRepo, nil, profileRepo)

		profileRepo.EXPECT().GetByEmail(gomock.Any(), "x@test.com").Return(entities.Profile{UserID: "user-1", Name: "Ayrton"}, nil)
		orderRepo.EXPECT().ListByEventID(gomock.Any(), "ev-1").Return([]entities.Order{{ID: "ord-9", UserID: "other"}}, nil)

		registered, _, err := uc.CheckFirstDriverRegistration(context.Background(), "ev-1", "x@test.com")
		if err != nil || registered {
			t.Fatalf("unexpected result registered=%t err=%v", registered, err)
		}
	})
}

func TestOrderUseCase_CheckCarNumberAvailability(t *testing.T) {
	t.Run("number taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orderRepo, nil, nil)

		orderRepo.EXPECT().ListByEventID(gomock.Any(), "ev-1").Return([]entities.Order{{ID: "ord-1", Number: 42}}, nil)

		available, err := uc.CheckCarNumberAvailability(context.Background(), "ev-1", 42)
		if err != nil || available {
			t.Fatalf("expected taken, got available=%t err=%v", available, err)
		}
	})

	t.Run("number free", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orderRepo, nil, nil)

		orderRepo.EXPECT().ListByEventID(gomock.Any(), "ev-1").Return([]entities.Order{{ID: "ord-1", Number: 7}}, nil)

		available, err := uc.CheckCarNumberAvailability(context.Background(), "ev-1", 42)
		if err != nil || !available {
			t.Fatalf("expected free, got available=%t err=%v", available, err)
		}
	})

	t.Run("lookup failure fails open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orderRepo, nil, nil)

		orderRepo.EXPECT().ListByEventID(gomock.Any(), "ev-1").Return(nil, errors.New("db"))

		available, err := uc.CheckCarNumberAvailability(context.Background(), "ev-1", 42)
		if err != nil || !available {
			t.Fatalf("expected fail open, got available=%t err=%v", available, err)
		}
	})
}

func TestOrderUseCase_GetOrderLines(t *testing.T) {
	t.Run("owner check applies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orderRepo, nil, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", UserID: "other"}, nil)

		_, err := uc.GetOrderLines(context.Background(), "ord-1", "user-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orderRepo, nil, nil)

		expected := []entities.OrderLine{{ID: "l1", OrderID: "ord-1", PriceCents: 15000, Quantity: 1, CreatedAt: time.Now()}}
		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", UserID: "user-1"}, nil)
		orderRepo.EXPECT().ListLines(gomock.Any(), "ord-1").Return(expected, nil)

		lines, err := uc.GetOrderLines(context.Background(), "ord-1", "user-1")
		if err != nil || len(lines) != 1 || lines[0].ID != "l1" {
			t.Fatalf("unexpected result err=%v lines=%+v", err, lines)
		}
	})
}

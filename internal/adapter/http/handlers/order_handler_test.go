package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"distrito_racing/internal/adapter/http/handlers/mocks"
	"distrito_racing/internal/adapter/http/middleware"
	"distrito_racing/internal/domain/entities"
	"distrito_racing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func authedRouter(userID string) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextUserEmail, "x@test.com")
	})
	return r
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := authedRouter("user-1")
		r.POST("/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(`{"event_id":"ev-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("sold out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := authedRouter("user-1")
		r.POST("/orders", h.CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), "user-1", gomock.Any()).Return(entities.Order{}, usecase.ErrInventoryExhausted)

		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(`{"event_id":"ev-1","product_ids":["p1"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["code"] != "PRODUCT_SOLD_OUT" {
			t.Fatalf("unexpected error code: %v", body["code"])
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := authedRouter("user-1")
		r.POST("/orders", h.CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), "user-1", gomock.Any()).Return(entities.Order{}, usecase.ErrProductNotFound)

		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(`{"event_id":"ev-1","product_ids":["p1"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := authedRouter("user-1")
		r.POST("/orders", h.CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, cmd usecase.CreateOrderCommand) (entities.Order, error) {
				if cmd.EventID != "ev-1" || len(cmd.ProductIDs) != 2 || cmd.Number != 42 {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Order{ID: "ord-1", UserID: "user-1", EventID: "ev-1", Number: 42}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(`{"event_id":"ev-1","number":42,"product_ids":["p1","p2"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["id"] != "ord-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := authedRouter("user-1")
		r.GET("/orders/:order_id", h.GetOrder)

		uc.EXPECT().GetOrderByID(gomock.Any(), "ord-1", "user-1").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/orders/ord-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := authedRouter("user-1")
		r.GET("/orders/:order_id", h.GetOrder)

		uc.EXPECT().GetOrderByID(gomock.Any(), "ord-1", "user-1").Return(entities.Order{ID: "ord-1", UserID: "user-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/orders/ord-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_DeleteOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("paid order conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := authedRouter("user-1")
		r.DELETE("/orders/:order_id", h.DeleteOrder)

		uc.EXPECT().DeleteOrder(gomock.Any(), "ord-1", "user-1").Return(usecase.ErrOrderAlreadyPaid)

		req := httptest.NewRequest(http.MethodDelete, "/orders/ord-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := authedRouter("user-1")
		r.DELETE("/orders/:order_id", h.DeleteOrder)

		uc.EXPECT().DeleteOrder(gomock.Any(), "ord-1", "user-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/orders/ord-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestOrderHandler_CheckFirstDriver(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/events/:event_id/first-driver", h.CheckFirstDriver)

		req := httptest.NewRequest(http.MethodGet, "/events/ev-1/first-driver", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("registered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/events/:event_id/first-driver", h.CheckFirstDriver)

		uc.EXPECT().CheckFirstDriverRegistration(gomock.Any(), "ev-1", "x@test.com").Return(true, "Ayrton", nil)

		req := httptest.NewRequest(http.MethodGet, "/events/ev-1/first-driver?email=x%40test.com", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["registered"] != true || body["driver_name"] != "Ayrton" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestOrderHandler_CheckNumberAvailability(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/events/:event_id/number-availability", h.CheckNumberAvailability)

		for _, q := range []string{"", "?number=abc", "?number=0", "?number=-4"} {
			req := httptest.NewRequest(http.MethodGet, "/events/ev-1/number-availability"+q, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("query %q: expected 400, got %d", q, w.Code)
			}
		}
	})

	t.Run("taken number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/events/:event_id/number-availability", h.CheckNumberAvailability)

		uc.EXPECT().CheckCarNumberAvailability(gomock.Any(), "ev-1", 42).Return(false, nil)

		req := httptest.NewRequest(http.MethodGet, "/events/ev-1/number-availability?number=42", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["available"] != false || body["number"] != float64(42) {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestOrderHandler_ListMyOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := authedRouter("user-1")
		r.GET("/orders", h.ListMyOrders)

		uc.EXPECT().GetUserOrders(gomock.Any(), "user-1").Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := authedRouter("user-1")
		r.GET("/orders", h.ListMyOrders)

		uc.EXPECT().GetUserOrders(gomock.Any(), "user-1").Return([]entities.Order{{ID: "ord-1"}, {ID: "ord-2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body) != 2 {
			t.Fatalf("expected 2 orders, got %d", len(body))
		}
	})
}

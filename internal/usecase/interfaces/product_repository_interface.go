package interfaces

import (
	"context"

	"distrito_racing/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for Product.
//
// IncrementQuantity exists only for the pre-payment order-deletion restock
// path; the decrement direction never goes through it (it is part of the
// order-creation transaction, see IOrderRepository.CreateWithReservation).

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	FindByIDs(ctx context.Context, ids []string) ([]entities.Product, error)
	ListByEventID(ctx context.Context, eventID string) ([]entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	IncrementQuantity(ctx context.Context, id string, by int) error
	Delete(ctx context.Context, id string) error
}

package interfaces

import (
	"context"

	"distrito_racing/internal/domain/entities"
)

// IAddressRepository abstracts DynamoDB persistence for Address.

type IAddressRepository interface {
	Create(ctx context.Context, a entities.Address) (entities.Address, error)
	GetByID(ctx context.Context, id string) (entities.Address, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Address, error)
	Update(ctx context.Context, a entities.Address) (entities.Address, error)
	Delete(ctx context.Context, id string) error
}

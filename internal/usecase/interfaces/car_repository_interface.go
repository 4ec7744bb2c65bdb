package interfaces

import (
	"context"

	"distrito_racing/internal/domain/entities"
)

// ICarRepository abstracts DynamoDB persistence for Car.

type ICarRepository interface {
	Create(ctx context.Context, c entities.Car) (entities.Car, error)
	GetByID(ctx context.Context, id string) (entities.Car, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Car, error)
	Update(ctx context.Context, c entities.Car) (entities.Car, error)
	Delete(ctx context.Context, id string) error
}

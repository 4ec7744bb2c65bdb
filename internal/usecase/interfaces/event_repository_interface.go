package interfaces

import (
	"context"

	"distrito_racing/internal/domain/entities"
)

// IEventRepository abstracts DynamoDB persistence for Event.

type IEventRepository interface {
	Create(ctx context.Context, e entities.Event) (entities.Event, error)
	GetByID(ctx context.Context, id string) (entities.Event, error)
	List(ctx context.Context) ([]entities.Event, error)
	Update(ctx context.Context, e entities.Event) (entities.Event, error)
	Delete(ctx context.Context, id string) error
}

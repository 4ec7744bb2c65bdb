package interfaces

import (
	"context"

	"distrito_racing/internal/domain/entities"
)

// IProfileRepository abstracts DynamoDB persistence for Profile.

type IProfileRepository interface {
	Create(ctx context.Context, p entities.Profile) (entities.Profile, error)
	GetByUserID(ctx context.Context, userID string) (entities.Profile, error)
	GetByEmail(ctx context.Context, email string) (entities.Profile, error)
	Update(ctx context.Context, p entities.Profile) (entities.Profile, error)
	List(ctx context.Context) ([]entities.Profile, error)
}

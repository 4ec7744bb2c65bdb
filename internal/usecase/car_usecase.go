package usecase

import (
	"context"
	"errors"
	"strings"

	"distrito_racing/internal/domain/entities"
	"distrito_racing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCarInput = errors.New("invalid car input")
	ErrCarNotFound     = errors.New("car not found")
)

// ICarUseCase manages a user's registered vehicles. Every operation is
// owner-scoped.

type ICarUseCase interface {
	Create(ctx context.Context, userID string, c entities.Car) (entities.Car, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Car, error)
	Update(ctx context.Context, userID string, c entities.Car) (entities.Car, error)
	Delete(ctx context.Context, userID, carID string) error
}

type CarUseCase struct {
	repo interfaces.ICarRepository
}

var _ ICarUseCase = (*CarUseCase)(nil)

func NewCarUseCase(repo interfaces.ICarRepository) *CarUseCase {
	return &CarUseCase{repo: repo}
}

func (u *CarUseCase) Create(ctx context.Context, userID string, c entities.Car) (entities.Car, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(c.Brand) == "" || strings.TrimSpace(c.Model) == "" {
		return entities.Car{}, ErrInvalidCarInput
	}
	c.ID = uuid.NewString()
	c.UserID = userID
	return u.repo.Create(ctx, c)
}

func (u *CarUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Car, error) {
	return u.repo.ListByUserID(ctx, userID)
}

func (u *CarUseCase) getOwned(ctx context.Context, userID, carID string) (entities.Car, error) {
	c, err := u.repo.GetByID(ctx, strings.TrimSpace(carID))
	if err != nil {
		return entities.Car{}, err
	}
	if c.ID == "" || c.UserID != userID {
		return entities.Car{}, ErrCarNotFound
	}
	return c, nil
}

func (u *CarUseCase) Update(ctx context.Context, userID string, c entities.Car) (entities.Car, error) {
	existing, err := u.getOwned(ctx, userID, c.ID)
	if err != nil {
		return entities.Car{}, err
	}
	c.UserID = existing.UserID
	return u.repo.Update(ctx, c)
}

func (u *CarUseCase) Delete(ctx context.Context, userID, carID string) error {
	if _, err := u.getOwned(ctx, userID, carID); err != nil {
		return err
	}
	return u.repo.Delete(ctx, carID)
}

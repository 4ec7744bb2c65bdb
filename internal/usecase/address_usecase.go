package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"distrito_racing/internal/domain/entities"
	"distrito_racing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidAddressInput = errors.New("invalid address input")
	ErrAddressNotFound     = errors.New("address not found")
)

// IAddressUseCase manages a user's mailing addresses. Every operation is
// owner-scoped.

type IAddressUseCase interface {
	Create(ctx context.Context, userID string, a entities.Address) (entities.Address, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Address, error)
	Update(ctx context.Context, userID string, a entities.Address) (entities.Address, error)
	Delete(ctx context.Context, userID, addressID string) error
}

type AddressUseCase struct {
	repo interfaces.IAddressRepository
}

var _ IAddressUseCase = (*AddressUseCase)(nil)

func NewAddressUseCase(repo interfaces.IAddressRepository) *AddressUseCase {
	return &AddressUseCase{repo: repo}
}

func (u *AddressUseCase) Create(ctx context.Context, userID string, a entities.Address) (entities.Address, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(a.Zipcode) == "" {
		return entities.Address{}, ErrInvalidAddressInput
	}
	a.ID = uuid.NewString()
	a.UserID = userID
	a.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, a)
}

func (u *AddressUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Address, error) {
	return u.repo.ListByUserID(ctx, userID)
}

func (u *AddressUseCase) getOwned(ctx context.Context, userID, addressID string) (entities.Address, error) {
	a, err := u.repo.GetByID(ctx, strings.TrimSpace(addressID))
	if err != nil {
		return entities.Address{}, err
	}
	if a.ID == "" || a.UserID != userID {
		return entities.Address{}, ErrAddressNotFound
	}
	return a, nil
}

func (u *AddressUseCase) Update(ctx context.Context, userID string, a entities.Address) (entities.Address, error) {
	existing, err := u.getOwned(ctx, userID, a.ID)
	if err != nil {
		return entities.Address{}, err
	}
	a.UserID = existing.UserID
	a.CreatedAt = existing.CreatedAt
	return u.repo.Update(ctx, a)
}

func (u *AddressUseCase) Delete(ctx context.Context, userID, addressID string) error {
	if _, err := u.getOwned(ctx, userID, addressID); err != nil {
		return err
	}
	return u.repo.Delete(ctx, addressID)
}

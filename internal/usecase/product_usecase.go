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
	ErrInvalidProductInput = errors.New("invalid product input")
	ErrSingleProductLookup = errors.New("product not found")
)

// IProductUseCase manages ticket tiers. Listing is public and filtered by the
// sales window; mutations are organizer (admin) operations.

type IProductUseCase interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	ListAvailableByEvent(ctx context.Context, eventID string) ([]entities.Product, error)
	ListAllByEvent(ctx context.Context, eventID string) ([]entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProductUseCase struct {
	repo interfaces.IProductRepository
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func (u *ProductUseCase) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	if strings.TrimSpace(p.EventID) == "" || strings.TrimSpace(p.Name) == "" || p.PriceCents <= 0 {
		return entities.Product{}, ErrInvalidProductInput
	}
	if p.Quantity != nil && *p.Quantity < 0 {
		return entities.Product{}, ErrInvalidProductInput
	}
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[product][usecase] create failed event_id=%s err=%v", p.EventID, err)
		return entities.Product{}, err
	}
	log.Printf("[product][usecase] create success product_id=%s event_id=%s price_cents=%d", created.ID, created.EventID, created.PriceCents)
	return created, nil
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	p, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrSingleProductLookup
	}
	return p, nil
}

// ListAvailableByEvent returns the tiers whose sales window covers today.
func (u *ProductUseCase) ListAvailableByEvent(ctx context.Context, eventID string) ([]entities.Product, error) {
	all, err := u.repo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	today := time.Now().UTC().Format("2006-01-02")
	available := make([]entities.Product, 0, len(all))
	for _, p := range all {
		if p.AvailableOn(today) {
			available = append(available, p)
		}
	}
	return available, nil
}

func (u *ProductUseCase) ListAllByEvent(ctx context.Context, eventID string) ([]entities.Product, error) {
	return u.repo.ListByEventID(ctx, eventID)
}

func (u *ProductUseCase) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	if strings.TrimSpace(p.ID) == "" {
		return entities.Product{}, ErrInvalidProductInput
	}
	existing, err := u.GetByID(ctx, p.ID)
	if err != nil {
		return entities.Product{}, err
	}
	p.EventID = existing.EventID
	p.CreatedAt = existing.CreatedAt
	return u.repo.Update(ctx, p)
}

func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

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
	ErrInvalidEventInput = errors.New("invalid event input")
	ErrEventNotFound     = errors.New("event not found")
)

// IEventUseCase manages events. Reads are public; mutations are organizer
// (admin) operations.

type IEventUseCase interface {
	Create(ctx context.Context, e entities.Event) (entities.Event, error)
	GetByID(ctx context.Context, id string) (entities.Event, error)
	List(ctx context.Context) ([]entities.Event, error)
	Update(ctx context.Context, e entities.Event) (entities.Event, error)
	Delete(ctx context.Context, id string) error
}

type EventUseCase struct {
	repo interfaces.IEventRepository
}

var _ IEventUseCase = (*EventUseCase)(nil)

func NewEventUseCase(repo interfaces.IEventRepository) *EventUseCase {
	return &EventUseCase{repo: repo}
}

func (u *EventUseCase) Create(ctx context.Context, e entities.Event) (entities.Event, error) {
	if strings.TrimSpace(e.Title) == "" {
		return entities.Event{}, ErrInvalidEventInput
	}
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		log.Printf("[event][usecase] create failed title=%q err=%v", e.Title, err)
		return entities.Event{}, err
	}
	log.Printf("[event][usecase] create success event_id=%s", created.ID)
	return created, nil
}

func (u *EventUseCase) GetByID(ctx context.Context, id string) (entities.Event, error) {
	e, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Event{}, err
	}
	if e.ID == "" {
		return entities.Event{}, ErrEventNotFound
	}
	return e, nil
}

func (u *EventUseCase) List(ctx context.Context) ([]entities.Event, error) {
	return u.repo.List(ctx)
}

func (u *EventUseCase) Update(ctx context.Context, e entities.Event) (entities.Event, error) {
	existing, err := u.GetByID(ctx, e.ID)
	if err != nil {
		return entities.Event{}, err
	}
	e.CreatedAt = existing.CreatedAt
	return u.repo.Update(ctx, e)
}

func (u *EventUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

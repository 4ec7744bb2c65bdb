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
	ErrInvalidProfileInput = errors.New("invalid profile input")
	ErrProfileNotFound     = errors.New("profile not found")
)

// IProfileUseCase manages user profiles keyed by the identity provider uid.

type IProfileUseCase interface {
	Create(ctx context.Context, p entities.Profile) (entities.Profile, error)
	GetByUserID(ctx context.Context, userID string) (entities.Profile, error)
	Update(ctx context.Context, userID string, p entities.Profile) (entities.Profile, error)
	List(ctx context.Context) ([]entities.Profile, error)
	SetActive(ctx context.Context, userID string, active bool) (entities.Profile, error)
}

type ProfileUseCase struct {
	repo interfaces.IProfileRepository
}

var _ IProfileUseCase = (*ProfileUseCase)(nil)

func NewProfileUseCase(repo interfaces.IProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

func (u *ProfileUseCase) Create(ctx context.Context, p entities.Profile) (entities.Profile, error) {
	p.UserID = strings.TrimSpace(p.UserID)
	if p.UserID == "" || strings.TrimSpace(p.Email) == "" || strings.TrimSpace(p.Name) == "" {
		return entities.Profile{}, ErrInvalidProfileInput
	}
	// Role is never caller-controlled on create.
	p.ID = uuid.NewString()
	p.Role = entities.RoleUser
	p.IsActive = true
	p.UpdatedAt = time.Now().UTC()
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[profile][usecase] create failed user_id=%s err=%v", p.UserID, err)
		return entities.Profile{}, err
	}
	log.Printf("[profile][usecase] create success user_id=%s", created.UserID)
	return created, nil
}

func (u *ProfileUseCase) GetByUserID(ctx context.Context, userID string) (entities.Profile, error) {
	p, err := u.repo.GetByUserID(ctx, strings.TrimSpace(userID))
	if err != nil {
		return entities.Profile{}, err
	}
	if p.UserID == "" {
		return entities.Profile{}, ErrProfileNotFound
	}
	return p, nil
}

func (u *ProfileUseCase) Update(ctx context.Context, userID string, p entities.Profile) (entities.Profile, error) {
	existing, err := u.GetByUserID(ctx, userID)
	if err != nil {
		return entities.Profile{}, err
	}
	// Identity, role and active flag are not self-service fields.
	p.ID = existing.ID
	p.UserID = existing.UserID
	p.Role = existing.Role
	p.IsActive = existing.IsActive
	p.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, p)
}

func (u *ProfileUseCase) List(ctx context.Context) ([]entities.Profile, error) {
	return u.repo.List(ctx)
}

func (u *ProfileUseCase) SetActive(ctx context.Context, userID string, active bool) (entities.Profile, error) {
	p, err := u.GetByUserID(ctx, userID)
	if err != nil {
		return entities.Profile{}, err
	}
	p.IsActive = active
	p.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, p)
}

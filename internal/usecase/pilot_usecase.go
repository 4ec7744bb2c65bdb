package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"distrito_racing/internal/domain/entities"
	"distrito_racing/internal/usecase/interfaces"
)

var ErrInvalidPilotCPF = errors.New("invalid pilot cpf")

// IPilotUseCase exposes the federation-license verification used during
// registration.

type IPilotUseCase interface {
	Verify(ctx context.Context, cpf string, year int) (entities.PilotVerification, error)
}

type PilotUseCase struct {
	registry interfaces.IPilotRegistry
}

var _ IPilotUseCase = (*PilotUseCase)(nil)

func NewPilotUseCase(registry interfaces.IPilotRegistry) *PilotUseCase {
	return &PilotUseCase{registry: registry}
}

func (u *PilotUseCase) Verify(ctx context.Context, cpf string, year int) (entities.PilotVerification, error) {
	cleaned := digitsOnly(cpf)
	if len(cleaned) != 11 {
		return entities.PilotVerification{}, ErrInvalidPilotCPF
	}
	if year <= 0 {
		year = time.Now().UTC().Year()
	}
	log.Printf("[pilot][usecase] verify start cpf=%s*** year=%d", cleaned[:3], year)
	return u.registry.VerifyPilot(ctx, cleaned, year)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

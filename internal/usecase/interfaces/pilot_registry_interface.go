package interfaces

import (
	"context"

	"distrito_racing/internal/domain/entities"
)

// IPilotRegistry abstracts the national federation's pilot-license lookup.
// Lookups are best-effort: a registry outage yields a not-found result, never
// an error that blocks registration flows.

type IPilotRegistry interface {
	VerifyPilot(ctx context.Context, cpf string, year int) (entities.PilotVerification, error)
}

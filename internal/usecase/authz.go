package usecase

import "distrito_racing/internal/domain/entities"

// Action names a capability on a shared resource.
type Action string

// Resource names a protected resource kind.
type Resource string

const (
	ActionManage Action = "manage"
	ActionRead   Action = "read"

	ResourceEvents        Resource = "events"
	ResourceProducts      Resource = "products"
	ResourceRegistrations Resource = "registrations"
	ResourceProfiles      Resource = "profiles"
	ResourceStorage       Resource = "storage"
)

// Authorize is the single policy-evaluation step for capability checks on
// shared resources. Keeping the rule here, rather than scattered across
// routes, means the whole policy reads in one place: mutating shared
// resources requires an active admin; everything else is owner-scoped at the
// use-case layer and passes through.
func Authorize(p entities.Profile, action Action, resource Resource) bool {
	if !p.IsActive {
		return false
	}
	switch resource {
	case ResourceEvents, ResourceProducts, ResourceStorage:
		if action == ActionManage {
			return p.IsAdmin()
		}
		return true
	case ResourceRegistrations, ResourceProfiles:
		return p.IsAdmin()
	default:
		return false
	}
}

package ports

import (
	"context"

	"github.com/openvillage/village-api/internal/core/domain"
)

// VillageRepository defines persistence operations for villages.
type VillageRepository interface {
	Create(ctx context.Context, v *domain.Village) (*domain.Village, error)
	// ListByOwner returns all villages owned by ownerID in creation order.
	// An owner with no villages yields an empty slice, not an error.
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Village, error)
}

package ports

import (
	"context"

	"github.com/openvillage/village-api/internal/core/domain"
)

// CreateVillageInput carries all data needed to found a new village.
type CreateVillageInput struct {
	OwnerID int64
	Name    string
	X       int
	Y       int
}

// VillageService defines use-case operations for villages.
type VillageService interface {
	CreateVillage(ctx context.Context, input CreateVillageInput) (*domain.Village, error)
	ListVillages(ctx context.Context, ownerID int64) ([]*domain.Village, error)
}

package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/openvillage/village-api/internal/core/domain"
	"github.com/openvillage/village-api/internal/core/ports"
)

type VillageService struct {
	repo   ports.VillageRepository
	logger zerolog.Logger
}

func NewVillageService(repo ports.VillageRepository, logger zerolog.Logger) *VillageService {
	return &VillageService{repo: repo, logger: logger}
}

// CreateVillage founds a new village for input.OwnerID. The owner must exist;
// a missing owner surfaces as domain.ErrOwnerNotFound from the repository.
func (s *VillageService) CreateVillage(ctx context.Context, input ports.CreateVillageInput) (*domain.Village, error) {
	village := domain.NewVillage(input.OwnerID, input.Name, input.X, input.Y)

	created, err := s.repo.Create(ctx, village)
	if err != nil {
		s.logger.Error().Err(err).Int64("owner_id", input.OwnerID).Msg("failed to create village")
		return nil, err
	}

	s.logger.Info().Int64("village_id", created.ID).Int64("owner_id", created.OwnerID).Str("name", created.Name).Msg("village created")

	return created, nil
}

// ListVillages returns the owner's villages in creation order.
func (s *VillageService) ListVillages(ctx context.Context, ownerID int64) ([]*domain.Village, error) {
	villages, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error().Err(err).Int64("owner_id", ownerID).Msg("failed to list villages")
		return nil, err
	}
	return villages, nil
}

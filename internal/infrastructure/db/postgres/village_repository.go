package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/openvillage/village-api/internal/core/domain"
)

type VillageRepository struct {
	db *sql.DB
}

func NewVillageRepository(db *sql.DB) *VillageRepository {
	return &VillageRepository{db: db}
}

func (r *VillageRepository) Create(ctx context.Context, v *domain.Village) (*domain.Village, error) {
	const q = `
INSERT INTO villages (owner_id, name, x, y, population)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at`

	created := *v
	err := r.db.QueryRowContext(ctx, q, v.OwnerID, v.Name, v.X, v.Y, v.Population).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == codeForeignKeyViolation {
			return nil, domain.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("insert village: %w", err)
	}

	return &created, nil
}

func (r *VillageRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Village, error) {
	const q = `
SELECT id, owner_id, name, x, y, population, created_at
FROM villages
WHERE owner_id = $1
ORDER BY id`

	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query villages: %w", err)
	}
	defer rows.Close()

	villages := make([]*domain.Village, 0)
	for rows.Next() {
		var v domain.Village
		if err := rows.Scan(&v.ID, &v.OwnerID, &v.Name, &v.X, &v.Y, &v.Population, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan village: %w", err)
		}
		villages = append(villages, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate villages: %w", err)
	}

	return villages, nil
}

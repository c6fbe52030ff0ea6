package ports

import (
	"context"

	"github.com/openvillage/village-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (string, *domain.User, error)
}

package auth

import (
	"context"

	"drivemind/internal/domain"
)

type AdminRepositoryInterface interface {
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
}

type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vedran77/skillswap/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// SwapRepository owns the swap-request ledger. Lookups return (nil, nil)
// when the id is unknown; Delete is unconditional, callers decide which
// records may be removed.
type SwapRepository interface {
	Create(ctx context.Context, req *domain.SwapRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SwapRequest, error)
	Update(ctx context.Context, req *domain.SwapRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListBySender(ctx context.Context, userID uuid.UUID) ([]domain.SwapRequest, error)
	ListByReceiver(ctx context.Context, userID uuid.UUID) ([]domain.SwapRequest, error)
}

package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/vedran77/skillswap/internal/domain"
)

// SwapRepo holds the swap-request ledger as an insertion-ordered slice.
// Per-user listings keep ledger order, they are not re-sorted by time or
// status.
type SwapRepo struct {
	mu       sync.RWMutex
	requests []*domain.SwapRequest
}

func NewSwapRepo() *SwapRepo {
	return &SwapRepo{}
}

func (r *SwapRepo) Create(ctx context.Context, req *domain.SwapRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := *req
	r.requests = append(r.requests, &c)
	return nil
}

func (r *SwapRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SwapRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, req := range r.requests {
		if req.ID == id {
			c := *req
			return &c, nil
		}
	}
	return nil, nil
}

func (r *SwapRepo) Update(ctx context.Context, req *domain.SwapRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.requests {
		if existing.ID == req.ID {
			c := *req
			r.requests[i] = &c
			return nil
		}
	}
	return nil
}

func (r *SwapRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, req := range r.requests {
		if req.ID == id {
			r.requests = append(r.requests[:i], r.requests[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *SwapRepo) ListBySender(ctx context.Context, userID uuid.UUID) ([]domain.SwapRequest, error) {
	return r.list(func(req *domain.SwapRequest) bool { return req.FromUserID == userID })
}

func (r *SwapRepo) ListByReceiver(ctx context.Context, userID uuid.UUID) ([]domain.SwapRequest, error) {
	return r.list(func(req *domain.SwapRequest) bool { return req.ToUserID == userID })
}

func (r *SwapRepo) list(match func(*domain.SwapRequest) bool) ([]domain.SwapRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.SwapRequest
	for _, req := range r.requests {
		if match(req) {
			out = append(out, *req)
		}
	}
	return out, nil
}
